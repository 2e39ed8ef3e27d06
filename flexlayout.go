package flex

// flexlayout.go is the demo content-tree layer: a thin drawable wrapper
// around the core engine's Node, in the spirit of the teacher's original
// FlexNode/FlexTree three-phase system (Update → Layout → Draw) but with
// "Update" and "Layout" delegated entirely to CalculateLayout (component
// C8/C9) instead of the teacher's bespoke VerticalLayout/HorizontalLayout
// distribution. Only "Draw" — walking the already-computed tree and
// painting a Buffer — remains this file's own responsibility.

// ContentKind tags what a leaf ContentNode draws.
type ContentKind uint8

const (
	ContentContainer ContentKind = iota
	ContentText
	ContentRichText
	ContentMeter
	ContentBar
	ContentLeader
)

// ContentNode pairs a layout Node with something to draw. Containers
// carry no content of their own (Display happens via their children);
// leaves carry one of the Content* payloads below.
type ContentNode struct {
	Node *Node

	kind    ContentKind
	text    string
	spans   []Span
	meter   [2]int
	bar     [2]int
	leader  [2]string
	style   CellStyle
	title   string // panel title, drawn in the border
	bordered bool
}

// newContentNode allocates a ContentNode with a fresh Node child-less of
// any parent; callers wire it into a tree via FCol/FRow's variadic
// children.
func newContentNode(kind ContentKind) *ContentNode {
	n := &ContentNode{Node: New(), kind: kind}
	n.Node.SetContext(n)
	return n
}

// contentOf recovers the ContentNode wrapping a layout Node, or nil if
// the node wasn't built through one of the F* constructors.
func contentOf(n *Node) *ContentNode {
	c, _ := n.Context().(*ContentNode)
	return c
}

func attachChildren(parent *ContentNode, children []*ContentNode) *ContentNode {
	for _, c := range children {
		parent.Node.AppendChild(c.Node)
	}
	return parent
}

// FCol creates a vertical (column) container.
func FCol(children ...*ContentNode) *ContentNode {
	n := newContentNode(ContentContainer)
	n.Node.SetFlexDirection(FlexDirectionColumn)
	return attachChildren(n, children)
}

// FRow creates a horizontal (row) container.
func FRow(children ...*ContentNode) *ContentNode {
	n := newContentNode(ContentContainer)
	n.Node.SetFlexDirection(FlexDirectionRow)
	return attachChildren(n, children)
}

// FText creates a text leaf. Its natural size comes from the default
// measure function installed in textmeasure.go.
func FText(content string) *ContentNode {
	n := newContentNode(ContentText)
	n.text = content
	n.Node.SetMeasureFunc(textMeasureFunc(n))
	return n
}

// FRich creates a rich-text leaf mixing independently styled spans.
func FRich(spans []Span) *ContentNode {
	n := newContentNode(ContentRichText)
	n.spans = spans
	n.Node.SetMeasureFunc(richTextMeasureFunc(n))
	return n
}

// FMeter creates an analog-meter leaf, fixed at one row tall and a
// caller-chosen width (defaulting to 20 columns, matching the teacher's
// original default).
func FMeter(value, max int) *ContentNode {
	n := newContentNode(ContentMeter)
	n.meter = [2]int{value, max}
	n.Node.SetWidth(Point(20))
	n.Node.SetHeight(Point(1))
	return n
}

// FBar creates a segmented-bar leaf.
func FBar(filled, total int) *ContentNode {
	n := newContentNode(ContentBar)
	n.bar = [2]int{filled, total}
	n.Node.SetWidth(Point(float32(total)))
	n.Node.SetHeight(Point(1))
	return n
}

// FLeader creates a dot-leader "label.......value" leaf. Width must be
// set by the caller (via Width) since a leader's natural content width
// is ambiguous — it stretches to fill whatever space it's given.
func FLeader(label, value string) *ContentNode {
	n := newContentNode(ContentLeader)
	n.leader = [2]string{label, value}
	n.Node.SetHeight(Point(1))
	return n
}

// FPanel creates a bordered vertical container with a title drawn in the
// top border: ┌─ TITLE ─────┐.
func FPanel(title string, children ...*ContentNode) *ContentNode {
	n := FCol(children...)
	n.bordered = true
	n.title = title
	n.Node.SetBorder(EdgeAll, Point(1))
	n.Node.SetPadding(EdgeAll, Point(0))
	return n
}

// FLED creates a single LED-indicator leaf.
func FLED(on bool) *ContentNode {
	return FText(LED(on))
}

// FLEDs creates a run of LED indicators in one leaf.
func FLEDs(states ...bool) *ContentNode {
	return FText(LEDs(states...))
}

// Chainable modifiers, generalizing the teacher's Gap/Pad/Border/Width/
// Height/MinWidth/MinHeight/Percent/Grow/Style/Bold to the full style
// surface of the new engine.

func (n *ContentNode) Gap(g float32) *ContentNode {
	n.Node.SetGap(GutterAll, Point(g))
	return n
}

func (n *ContentNode) Pad(h, v float32) *ContentNode {
	n.Node.SetPadding(EdgeHorizontal, Point(h))
	n.Node.SetPadding(EdgeVertical, Point(v))
	return n
}

func (n *ContentNode) Border(width float32) *ContentNode {
	n.bordered = width > 0
	n.Node.SetBorder(EdgeAll, Point(width))
	return n
}

func (n *ContentNode) Width(w float32) *ContentNode {
	n.Node.SetWidth(Point(w))
	return n
}

func (n *ContentNode) Height(h float32) *ContentNode {
	n.Node.SetHeight(Point(h))
	return n
}

func (n *ContentNode) MinWidth(w float32) *ContentNode {
	n.Node.SetMinWidth(Point(w))
	return n
}

func (n *ContentNode) MinHeight(h float32) *ContentNode {
	n.Node.SetMinHeight(Point(h))
	return n
}

func (n *ContentNode) Percent(p float32) *ContentNode {
	n.Node.SetWidthPercent(p * 100)
	return n
}

func (n *ContentNode) Grow(factor float32) *ContentNode {
	n.Node.SetFlexGrow(factor)
	return n
}

func (n *ContentNode) Shrink(factor float32) *ContentNode {
	n.Node.SetFlexShrink(factor)
	return n
}

func (n *ContentNode) Style(s CellStyle) *ContentNode {
	n.style = s
	return n
}

func (n *ContentNode) Bold() *ContentNode {
	n.style.Attr = n.style.Attr.With(AttrBold)
	return n
}

func (n *ContentNode) Justify(j Justify) *ContentNode {
	n.Node.SetJustifyContent(j)
	return n
}

func (n *ContentNode) AlignItems(a Align) *ContentNode {
	n.Node.SetAlignItems(a)
	return n
}

func (n *ContentNode) AlignSelf(a Align) *ContentNode {
	n.Node.SetAlignSelf(a)
	return n
}

func (n *ContentNode) Wrap() *ContentNode {
	n.Node.SetFlexWrap(WrapWrap)
	return n
}

// ContentTree drives layout and drawing for a ContentNode root, the
// equivalent of the teacher's FlexTree.
type ContentTree struct {
	root *ContentNode
}

// NewContentTree wraps root for repeated Execute calls.
func NewContentTree(root *ContentNode) *ContentTree {
	return &ContentTree{root: root}
}

// Execute runs CalculateLayout for the given viewport and renders the
// result into buf.
func (t *ContentTree) Execute(buf *Buffer, w, h int) {
	if t.root == nil {
		return
	}
	CalculateLayout(t.root.Node, float32(w), float32(h), DirectionLTR)
	draw(buf, t.root, 0, 0, w, h)
}

// draw walks the content tree painting each node at its absolute
// position, absX/absY being the accumulated offset of ancestors (Layout
// stores each node's position relative to its own parent, per Yoga
// convention, so absolute screen coordinates are built up on the way
// down).
func draw(buf *Buffer, n *ContentNode, absX, absY, clipW, clipH int) {
	x := absX + int(n.Node.Layout.Left)
	y := absY + int(n.Node.Layout.Top)
	w := int(n.Node.Layout.Width)
	h := int(n.Node.Layout.Height)

	if x >= clipW || y >= clipH || x+w < 0 || y+h < 0 {
		return
	}

	innerX, innerY := x, y
	if n.bordered {
		buf.DrawBorder(x, y, w, h, BorderSingle, n.style)
		if n.title != "" {
			titleStr := string(BorderSingle.Horizontal) + " " + n.title + " "
			buf.WriteString(x+1, y, titleStr, n.style)
		}
		innerX++
		innerY++
	}

	switch n.kind {
	case ContentText:
		buf.WriteString(innerX, innerY, n.text, n.style)
	case ContentRichText:
		buf.WriteSpans(innerX, innerY, n.spans, clipW)
	case ContentMeter:
		buf.WriteString(innerX, innerY, Meter(n.meter[0], n.meter[1], w), n.style)
	case ContentBar:
		buf.WriteString(innerX, innerY, Bar(n.bar[0], n.bar[1]), n.style)
	case ContentLeader:
		buf.WriteString(innerX, innerY, LeaderStr(n.leader[0], n.leader[1], w), n.style)
	}

	// Children's Left/Top are relative to this node's content box, so
	// step in past its border and padding.
	s := n.Node.Style()
	childAbsX := x + int(borderFor(s, EdgeLeft, DirectionLTR, float32NaN())+paddingFor(s, EdgeLeft, DirectionLTR, float32NaN()))
	childAbsY := y + int(borderFor(s, EdgeTop, DirectionLTR, float32NaN())+paddingFor(s, EdgeTop, DirectionLTR, float32NaN()))
	for _, c := range n.Node.Children() {
		child := contentOf(c)
		if child != nil {
			draw(buf, child, childAbsX, childAbsY, clipW, clipH)
		}
	}
}
