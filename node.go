package flex

// MeasureFunc is the host-supplied intrinsic measurement callback for a
// leaf node (spec.md §4.2, §6). It must be pure with respect to the
// node's current content for a given call within one CalculateLayout —
// mutating the node's content between calls inside a single layout pass
// is forbidden.
type MeasureFunc func(node *Node, availW, availH float32, widthMode, heightMode MeasureMode) (width, height float32)

// Node is one element in a layout tree: style in, computed Layout out,
// plus the incremental-layout bookkeeping of spec.md §3/§4.4.
//
// Ownership is strict: a node has exactly one parent at a time.
// Reinserting a node elsewhere first detaches it from its previous
// parent (spec.md §3 "Relationships").
type Node struct {
	style  Style
	Layout Layout

	parent   *Node
	children []*Node

	measure MeasureFunc
	context any

	cache nodeCache
	dirty bool
	freed bool

	// flex carries per-layout intermediate state written by the layout
	// pass (§4.3 step 5): the child's pre-distribution basis (baseSize)
	// and its post-distribution main size (mainSize). No cache decision
	// reads it; the distribution-change guard (§4.4) re-sums style bases
	// instead (see canSkip).
	flex flexState
}

type flexState struct {
	baseSize float32
	mainSize float32
}

// New creates a node with default style, no parent, and no children
// (spec.md §3 "Lifecycle").
func New() *Node {
	return &Node{
		style: DefaultStyle(),
		cache: newNodeCache(),
		dirty: true,
	}
}

// Free releases a node, detaching it from its owner. A freed node must
// not be used again; operating on one panics. A node that was merely
// removed from its owner (not freed) stays usable. This engine does not
// pool nodes for reuse (spec.md §7 "operating on freed node").
func (n *Node) Free() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
	n.freed = true
}

// FreeRecursive releases a node and its entire subtree.
func (n *Node) FreeRecursive() {
	children := n.children
	n.children = nil
	for _, c := range children {
		c.parent = nil
		c.FreeRecursive()
	}
	n.Free()
}

func (n *Node) checkLive() {
	if n.freed {
		panic(errContract("operation on a freed node"))
	}
}

// Owner returns the node's current parent, or nil for a root.
func (n *Node) Owner() *Node {
	return n.parent
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at index i.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// Children returns the node's children in insertion order. The returned
// slice must not be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// InsertChild inserts child at index, detaching it from any previous
// owner first, so a node never ends up with two owners. Inserting a node
// as its own child, or inserting an ancestor as its own descendant, is a
// programming error and panics (spec.md §4.5, §7).
func (n *Node) InsertChild(child *Node, index int) {
	n.checkLive()
	child.checkLive()

	if child == n {
		panic(errContract("cannot insert a node as its own child"))
	}
	if isAncestor(child, n) {
		panic(errContract("cannot insert an ancestor as a descendant (cycle)"))
	}

	if child.parent != nil {
		child.parent.RemoveChild(child)
	}

	if index < 0 || index > len(n.children) {
		index = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n

	n.markDirty()
}

// AppendChild inserts child at the end of n's children.
func (n *Node) AppendChild(child *Node) {
	n.InsertChild(child, len(n.children))
}

// RemoveChild removes child from n's children, if present, and marks n
// dirty. Reports whether the child was found.
func (n *Node) RemoveChild(child *Node) bool {
	n.checkLive()
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			n.markDirty()
			return true
		}
	}
	return false
}

// isAncestor reports whether candidate is p or an ancestor of p.
func isAncestor(candidate, p *Node) bool {
	for cur := p; cur != nil; cur = cur.parent {
		if cur == candidate {
			return true
		}
	}
	return false
}

// MarkDirty marks this node and its ancestors dirty and invalidates their
// caches, per the dirty-propagation protocol of spec.md §4.4: walking
// stops *setting* dirty/layoutValid flags at the first already-dirty
// ancestor, but keeps clearing caches all the way to the root, because a
// content change below an already-dirty node can still invalidate a
// cached parent layout that depended on child measurements.
func (n *Node) MarkDirty() {
	n.checkLive()
	n.markDirty()
}

func (n *Node) markDirty() {
	cur := n
	stoppedSettingFlags := false
	for cur != nil {
		alreadyDirty := cur.dirty
		if !stoppedSettingFlags {
			cur.dirty = true
			cur.cache.print.layoutValid = false
		}
		cur.cache.clearAll()
		if alreadyDirty {
			stoppedSettingFlags = true
		}
		cur = cur.parent
	}
}

// IsDirty reports whether the node needs recalculation.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// SetMeasureFunc installs (or clears, with nil) the host measurement
// callback for a leaf node.
func (n *Node) SetMeasureFunc(fn MeasureFunc) {
	if n.measure == nil && fn == nil {
		return
	}
	n.measure = fn
	n.markDirty()
}

// HasMeasureFunc reports whether a measure function is installed.
func (n *Node) HasMeasureFunc() bool {
	return n.measure != nil
}

// SetContext attaches an arbitrary host-owned value to the node (Yoga's
// node context pattern) — the demo content layer uses it to recover the
// ContentNode wrapping a given Node while walking a computed tree.
func (n *Node) SetContext(ctx any) { n.context = ctx }

// Context returns the value last passed to SetContext, or nil.
func (n *Node) Context() any { return n.context }

// Style returns a copy of the node's current style.
func (n *Node) Style() Style {
	return n.style
}

// setStyleField is the single choke point every style setter below
// routes through: it no-ops (no dirty, no fingerprint loss) when the new
// value equals the old one, satisfying spec.md §8's "setting a style to
// its current value must not dirty the node."
func (n *Node) setStyleField(apply func(*Style) bool) {
	n.checkLive()
	if apply(&n.style) {
		n.markDirty()
	}
}

func setIfChanged[T comparable](field *T, v T) bool {
	if *field == v {
		return false
	}
	*field = v
	return true
}

// setValueIfChanged is setIfChanged specialized for Value fields: plain
// == would treat re-setting an Undefined (or Auto) field as a change,
// since Value's payload is NaN in both cases and NaN != NaN. Every style
// setter below that takes a Value routes through this instead.
func setValueIfChanged(field *Value, v Value) bool {
	if field.Equal(v) {
		return false
	}
	*field = v
	return true
}

func (n *Node) SetFlexDirection(v FlexDirection) *Node {
	n.setStyleField(func(s *Style) bool { return setIfChanged(&s.FlexDirection, v) })
	return n
}

func (n *Node) SetFlexWrap(v Wrap) *Node {
	n.setStyleField(func(s *Style) bool { return setIfChanged(&s.FlexWrap, v) })
	return n
}

func (n *Node) SetJustifyContent(v Justify) *Node {
	n.setStyleField(func(s *Style) bool { return setIfChanged(&s.JustifyContent, v) })
	return n
}

func (n *Node) SetAlignItems(v Align) *Node {
	n.setStyleField(func(s *Style) bool { return setIfChanged(&s.AlignItems, v) })
	return n
}

func (n *Node) SetAlignSelf(v Align) *Node {
	n.setStyleField(func(s *Style) bool { return setIfChanged(&s.AlignSelf, v) })
	return n
}

func (n *Node) SetAlignContent(v Align) *Node {
	n.setStyleField(func(s *Style) bool { return setIfChanged(&s.AlignContent, v) })
	return n
}

func (n *Node) SetPositionType(v PositionType) *Node {
	n.setStyleField(func(s *Style) bool { return setIfChanged(&s.PositionType, v) })
	return n
}

func (n *Node) SetDisplay(v Display) *Node {
	n.setStyleField(func(s *Style) bool { return setIfChanged(&s.Display, v) })
	return n
}

func (n *Node) SetOverflow(v Overflow) *Node {
	n.setStyleField(func(s *Style) bool { return setIfChanged(&s.Overflow, v) })
	return n
}

func (n *Node) SetFlexGrow(v float32) *Node {
	n.setStyleField(func(s *Style) bool { return setIfChanged(&s.FlexGrow, v) })
	return n
}

func (n *Node) SetFlexShrink(v float32) *Node {
	n.setStyleField(func(s *Style) bool { return setIfChanged(&s.FlexShrink, v) })
	return n
}

func (n *Node) SetFlexBasis(v Value) *Node {
	n.setStyleField(func(s *Style) bool { return setValueIfChanged(&s.FlexBasis, v) })
	return n
}

func (n *Node) SetFlexBasisAuto() *Node { return n.SetFlexBasis(Auto()) }

func (n *Node) SetWidth(v Value) *Node {
	n.setStyleField(func(s *Style) bool { return setValueIfChanged(&s.Width, v) })
	return n
}
func (n *Node) SetWidthPercent(p float32) *Node { return n.SetWidth(Percent(p)) }
func (n *Node) SetWidthAuto() *Node             { return n.SetWidth(Auto()) }

func (n *Node) SetHeight(v Value) *Node {
	n.setStyleField(func(s *Style) bool { return setValueIfChanged(&s.Height, v) })
	return n
}
func (n *Node) SetHeightPercent(p float32) *Node { return n.SetHeight(Percent(p)) }
func (n *Node) SetHeightAuto() *Node             { return n.SetHeight(Auto()) }

func (n *Node) SetMinWidth(v Value) *Node {
	n.setStyleField(func(s *Style) bool { return setValueIfChanged(&s.MinWidth, v) })
	return n
}
func (n *Node) SetMinWidthPercent(p float32) *Node { return n.SetMinWidth(Percent(p)) }

func (n *Node) SetMinHeight(v Value) *Node {
	n.setStyleField(func(s *Style) bool { return setValueIfChanged(&s.MinHeight, v) })
	return n
}
func (n *Node) SetMinHeightPercent(p float32) *Node { return n.SetMinHeight(Percent(p)) }

func (n *Node) SetMaxWidth(v Value) *Node {
	n.setStyleField(func(s *Style) bool { return setValueIfChanged(&s.MaxWidth, v) })
	return n
}
func (n *Node) SetMaxWidthPercent(p float32) *Node { return n.SetMaxWidth(Percent(p)) }

func (n *Node) SetMaxHeight(v Value) *Node {
	n.setStyleField(func(s *Style) bool { return setValueIfChanged(&s.MaxHeight, v) })
	return n
}
func (n *Node) SetMaxHeightPercent(p float32) *Node { return n.SetMaxHeight(Percent(p)) }

func (n *Node) SetAspectRatio(v Value) *Node {
	n.setStyleField(func(s *Style) bool { return setValueIfChanged(&s.AspectRatio, v) })
	return n
}

func (n *Node) SetMargin(edge Edge, v Value) *Node {
	n.setStyleField(func(s *Style) bool { return setValueIfChanged(&s.Margin[edge], v) })
	return n
}
func (n *Node) SetMarginPercent(edge Edge, p float32) *Node { return n.SetMargin(edge, Percent(p)) }
func (n *Node) SetMarginAuto(edge Edge) *Node               { return n.SetMargin(edge, Auto()) }

func (n *Node) SetPadding(edge Edge, v Value) *Node {
	n.setStyleField(func(s *Style) bool { return setValueIfChanged(&s.Padding[edge], v) })
	return n
}
func (n *Node) SetPaddingPercent(edge Edge, p float32) *Node { return n.SetPadding(edge, Percent(p)) }

func (n *Node) SetBorder(edge Edge, v Value) *Node {
	n.setStyleField(func(s *Style) bool { return setValueIfChanged(&s.Border[edge], v) })
	return n
}

func (n *Node) SetPosition(edge Edge, v Value) *Node {
	n.setStyleField(func(s *Style) bool { return setValueIfChanged(&s.Position[edge], v) })
	return n
}
func (n *Node) SetPositionPercent(edge Edge, p float32) *Node { return n.SetPosition(edge, Percent(p)) }

func (n *Node) SetGap(g Gutter, v Value) *Node {
	n.setStyleField(func(s *Style) bool { return setValueIfChanged(&s.Gap[g], v) })
	return n
}

// Readback operations (spec.md §6).

func (n *Node) ComputedLeft() float32   { return n.Layout.Left }
func (n *Node) ComputedTop() float32    { return n.Layout.Top }
func (n *Node) ComputedWidth() float32  { return n.Layout.Width }
func (n *Node) ComputedHeight() float32 { return n.Layout.Height }

func (n *Node) ComputedPadding(edge Edge) float32 { return n.Layout.Padding.Get(edge) }
func (n *Node) ComputedBorder(edge Edge) float32  { return n.Layout.Border.Get(edge) }
func (n *Node) ComputedMargin(edge Edge) float32  { return n.Layout.Margin.Get(edge) }
func (n *Node) ComputedDirection() Direction      { return n.Layout.Direction }
