package flex

// VStack creates a vertical stack from children — a thin alias for FCol
// kept for the teacher's naming, since the rest of the pack's widget
// code (and hosts migrating off it) spells it VStack/HStack rather than
// FCol/FRow.
func VStack(children ...*ContentNode) *ContentNode {
	return FCol(children...)
}

// HStack creates a horizontal stack from children.
func HStack(children ...*ContentNode) *ContentNode {
	return FRow(children...)
}

// Background stores a fill color in the node's CellStyle (Fill), adapted
// from the teacher's StackComponent.Background. draw does not paint
// Fill; the color is kept on the style only.
func (n *ContentNode) Background(c Color) *ContentNode {
	n.style.Fill = c
	return n
}

// Color sets the foreground color used for the node's own text/border.
func (n *ContentNode) Color(c Color) *ContentNode {
	n.style.FG = c
	return n
}
