package flex

// Spacer creates a flexible empty content node that expands to fill
// whatever room its container has left over, adapted from the teacher's
// SpacerComponent onto the new flex-grow machinery: growing is now a
// property of the layout Node itself rather than something Render has to
// special-case.
func Spacer() *ContentNode {
	n := newContentNode(ContentContainer)
	n.Node.SetFlexGrow(1)
	return n
}

// FixedSpacer creates a spacer with a fixed size in the main axis and no
// growth, used to reserve a gap a Gap() call can't express (e.g. a
// one-off irregular space between two particular children).
func FixedSpacer(size float32) *ContentNode {
	n := newContentNode(ContentContainer)
	n.Node.SetWidth(Point(size))
	n.Node.SetHeight(Point(size))
	n.Node.SetFlexGrow(0)
	n.Node.SetFlexShrink(0)
	return n
}
