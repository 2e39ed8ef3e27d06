package flex

// Grid arranges children into a fixed number of columns, filling
// left-to-right, top-to-bottom, adapted from the teacher's
// GridComponent onto the Node/CalculateLayout engine: a grid is a
// row-wrapping container whose children are each pinned to 1/cols of
// its width, so the real flex algorithm does the row-breaking and
// cross-axis sizing that the teacher's GridComponent computed by hand.
func Grid(cols int, children ...*ContentNode) *ContentNode {
	n := FRow(children...)
	n.Node.SetFlexWrap(WrapWrap)
	if cols > 0 {
		pct := 100.0 / float32(cols)
		for _, c := range children {
			c.Node.SetWidthPercent(pct)
		}
	}
	return n
}

// Cols2 creates a 2-column grid.
func Cols2(children ...*ContentNode) *ContentNode { return Grid(2, children...) }

// Cols3 creates a 3-column grid.
func Cols3(children ...*ContentNode) *ContentNode { return Grid(3, children...) }
