package flex

// calculate.go implements component C8, the full flex layout algorithm:
// basis resolution, free-space distribution (grow/shrink), line wrapping,
// cross-axis sizing (including stretch), justify/align, absolute
// children, and final rounding. Grounded in the teacher's
// VerticalLayout/HorizontalLayout two-phase DistributeWidths +
// LayoutChildren split (flexlayout.go), generalized here to a single
// Yoga-shaped algorithm that handles both axes uniformly by working in
// "main" and "cross" terms rather than separate vertical/horizontal
// functions.

// flexItem is the per-child working state for one line of the flex
// algorithm. Sizes are outer (content + padding + border), matching the
// convention measureNode returns; margins are tracked separately since
// CSS margins contribute to line extent but not to flex-basis math.
type flexItem struct {
	node *Node

	marginMainLead, marginMainTrail   float32
	marginCrossLead, marginCrossTrail float32

	basis         float32 // outer hypothetical main size before grow/shrink
	minMain       float32
	maxMain       float32
	growFactor   float32
	shrinkFactor float32
	frozen       bool

	mainSize  float32 // final outer main size, after grow/shrink
	crossSize float32 // final outer cross size, after stretch

	mainPos  float32 // leading edge along the main axis, content-box relative
	crossPos float32 // leading edge along the cross axis, content-box relative
}

type flexLine struct {
	items     []*flexItem
	mainSize  float32 // sum of item outer main sizes + margins + gaps
	crossSize float32 // max item outer cross size + margins in the line

	// leadOffset/gapAfter are filled in by alignContentLines; crossPos is
	// filled in by finalizeChildLayouts from them, which uses all three to
	// place this line's items at the right cross-axis offset.
	leadOffset float32
	gapAfter   float32
	crossPos   float32
}

// calculateNodeLayout computes n's own border-box Width/Height and, for
// every in-flow and absolutely-positioned child, a complete Layout
// (including Left/Top relative to n's content-box origin). availW/availH
// are outer available space (before n's own padding/border is
// subtracted); widthMode/heightMode describe how to interpret them.
func calculateNodeLayout(n *Node, availW, availH float32, ownerDir Direction, widthMode, heightMode MeasureMode, ownerWidth, ownerHeight float32) Layout {
	style := n.style
	dir := resolveDirection(style.Direction, ownerDir)

	padBorderW := paddingAndBorderAxisSum(style, true, dir, ownerWidth)
	padBorderH := paddingAndBorderAxisSum(style, false, dir, ownerWidth)

	innerAvailW := deflate(availW, padBorderW)
	innerAvailH := deflate(availH, padBorderH)

	pctBaseW := float32NaN()
	if widthMode == MeasureModeExactly {
		pctBaseW = innerAvailW
	}
	pctBaseH := float32NaN()
	if heightMode == MeasureModeExactly {
		pctBaseH = innerAvailH
	}

	mainIsRow := style.FlexDirection.IsRow()

	var availableMain, availableCross float32
	var mainMode, crossMode MeasureMode
	var pctMain, pctCross float32
	if mainIsRow {
		availableMain, availableCross = innerAvailW, innerAvailH
		mainMode, crossMode = widthMode, heightMode
		pctMain, pctCross = pctBaseW, pctBaseH
	} else {
		availableMain, availableCross = innerAvailH, innerAvailW
		mainMode, crossMode = heightMode, widthMode
		pctMain, pctCross = pctBaseH, pctBaseW
	}

	flowChildren := make([]*Node, 0, len(n.children))
	var absoluteChildren []*Node
	for _, c := range n.children {
		if c.style.Display == DisplayNone {
			continue
		}
		if c.style.PositionType == PositionTypeAbsolute {
			absoluteChildren = append(absoluteChildren, c)
			continue
		}
		flowChildren = append(flowChildren, c)
	}

	mainGap := style.gap(mainGutter(style.FlexDirection))
	crossGap := style.gap(crossGutter(style.FlexDirection))

	lines := collectLines(flowChildren, style.FlexWrap, mainIsRow, dir, availableMain, mainMode, pctMain, pctCross, mainGap)
	if style.FlexWrap == WrapWrapReverse {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}

	for _, line := range lines {
		resolveFlexFactors(line, availableMain, mainMode, mainGap)
	}

	contentMain := availableMain
	if mainMode != MeasureModeExactly {
		var maxLine float32
		for _, line := range lines {
			if line.mainSize > maxLine {
				maxLine = line.mainSize
			}
		}
		contentMain = boundAxis(style, mainIsRow, maxLine, pctMainOwner(mainIsRow, ownerWidth, ownerHeight))
		if isUndefinedFloat(contentMain) {
			contentMain = maxLine
		}
	}

	sizeLineCrossDimensions(lines, mainIsRow, dir, contentMain, crossMode, pctMain, pctCross, crossGap)

	contentCross := availableCross
	if crossMode != MeasureModeExactly {
		var sum float32
		for i, line := range lines {
			if i > 0 {
				sum += crossGap
			}
			sum += line.crossSize
		}
		contentCross = boundAxis(style, !mainIsRow, sum, pctMainOwner(!mainIsRow, ownerWidth, ownerHeight))
		if isUndefinedFloat(contentCross) {
			contentCross = sum
		}
	}

	alignContentLines(lines, style.AlignContent, contentCross, crossGap)

	placeItemsInLines(lines, style, mainIsRow, dir, contentMain, style.JustifyContent, mainGap)

	finalizeChildLayouts(lines, mainIsRow, dir)

	var outW, outH float32
	if mainIsRow {
		outW, outH = contentMain, contentCross
	} else {
		outW, outH = contentCross, contentMain
	}
	outW = clampNonNegative(outW + padBorderW)
	outH = clampNonNegative(outH + padBorderH)

	layoutAbsoluteChildren(n, absoluteChildren, dir, outW-padBorderW, outH-padBorderH, pctBaseW, pctBaseH)

	roundLayoutTree(n, outW, outH, padBorderW, padBorderH, dir)

	n.dirty = false
	return n.Layout
}

// pctMainOwner picks the owner reference (width or height) matching
// whichever axis "isRow" denotes, for boundAxis calls against the
// node's own resolved content size.
func pctMainOwner(isRow bool, ownerWidth, ownerHeight float32) float32 {
	if isRow {
		return ownerWidth
	}
	return ownerHeight
}

// collectLines resolves each flow child's flex-basis and groups children
// into wrap lines. A line accumulates children until adding the next one
// would exceed availableMain (only when wrapping is enabled and
// availableMain is a concrete bound).
func collectLines(children []*Node, wrap Wrap, mainIsRow bool, dir Direction, availableMain float32, mainMode MeasureMode, pctMain, pctCross float32, mainGap float32) []*flexLine {
	var lines []*flexLine
	cur := &flexLine{}
	var curExtent float32

	for _, child := range children {
		item := buildFlexItem(child, mainIsRow, dir, pctMain, pctCross)

		itemExtent := item.basis + item.marginMainLead + item.marginMainTrail
		gapIfAdded := float32(0)
		if len(cur.items) > 0 {
			gapIfAdded = mainGap
		}

		shouldWrap := wrap != WrapNoWrap &&
			mainMode != MeasureModeUndefined &&
			!isUndefinedFloat(availableMain) &&
			len(cur.items) > 0 &&
			curExtent+gapIfAdded+itemExtent > availableMain

		if shouldWrap {
			lines = append(lines, cur)
			cur = &flexLine{}
			curExtent = 0
			gapIfAdded = 0
		}

		cur.items = append(cur.items, item)
		curExtent += gapIfAdded + itemExtent
		cur.mainSize = curExtent
	}
	lines = append(lines, cur)
	return lines
}

func buildFlexItem(child *Node, mainIsRow bool, dir Direction, pctMain, pctCross float32) *flexItem {
	s := child.style

	item := &flexItem{node: child}
	item.marginMainLead = marginFor(s, mainAxisEdgeStart(flexDirFor(mainIsRow)), dir, pctCrossOrMain(mainIsRow, pctMain, pctCross))
	item.marginMainTrail = marginFor(s, mainAxisEdgeEnd(flexDirFor(mainIsRow)), dir, pctCrossOrMain(mainIsRow, pctMain, pctCross))
	item.marginCrossLead = marginFor(s, crossAxisEdgeStart(flexDirFor(mainIsRow)), dir, pctCrossOrMain(mainIsRow, pctMain, pctCross))
	item.marginCrossTrail = marginFor(s, crossAxisEdgeEnd(flexDirFor(mainIsRow)), dir, pctCrossOrMain(mainIsRow, pctMain, pctCross))

	padBorderMain := paddingAndBorderAxisSum(s, mainIsRow, dir, pctCrossOrMain(mainIsRow, pctMain, pctCross))

	contentBasis := resolveFlexBasis(s, mainIsRow, pctMain)
	if isUndefinedFloat(contentBasis) {
		availW, availH := intrinsicQuery(mainIsRow, pctMain, pctCross)
		wMode, hMode := intrinsicModes(mainIsRow)
		w, h := measureNode(child, availW, availH, wMode, hMode, dir, pctMain, pctCross)
		if mainIsRow {
			contentBasis = w - padBorderMain
		} else {
			contentBasis = h - padBorderMain
		}
	}

	ownerMain := pctMain
	contentMin := minMainValue(s, mainIsRow).Resolve(ownerMain)
	contentMax := maxMainValue(s, mainIsRow).Resolve(ownerMain)
	contentBasis = resolveMinMax(contentBasis, contentMin, contentMax)

	item.basis = clampNonNegative(contentBasis + padBorderMain)
	item.minMain = clampNonNegative(contentMin + padBorderMain)
	if isUndefinedFloat(contentMax) {
		item.maxMain = contentMax
	} else {
		item.maxMain = contentMax + padBorderMain
	}
	item.growFactor = s.FlexGrow
	item.shrinkFactor = s.FlexShrink
	return item
}

func minMainValue(s Style, mainIsRow bool) Value {
	if mainIsRow {
		return s.MinWidth
	}
	return s.MinHeight
}

func maxMainValue(s Style, mainIsRow bool) Value {
	if mainIsRow {
		return s.MaxWidth
	}
	return s.MaxHeight
}

func flexDirFor(mainIsRow bool) FlexDirection {
	if mainIsRow {
		return FlexDirectionRow
	}
	return FlexDirectionColumn
}

func pctCrossOrMain(mainIsRow bool, pctMain, pctCross float32) float32 {
	// Margin/padding/border percentages always resolve against the
	// containing block's WIDTH regardless of which physical edge (CSS
	// rule, see resolve.go:marginFor). pctMain/pctCross here are already
	// labeled by axis-role, not by physical width/height, so translate
	// back to "whichever of the two is the width".
	if mainIsRow {
		return pctMain
	}
	return pctCross
}

// intrinsicQuery/intrinsicModes build the (availW, availH, widthMode,
// heightMode) query used to discover a child's content-driven main size
// when its flex-basis is auto and it carries no explicit main dimension:
// AtMost on the cross axis against whatever cross space is known,
// Undefined on the main axis (let the child report its natural size).
func intrinsicQuery(mainIsRow bool, pctMain, pctCross float32) (float32, float32) {
	if mainIsRow {
		return float32NaN(), pctCross
	}
	return pctCross, float32NaN()
}

func intrinsicModes(mainIsRow bool) (MeasureMode, MeasureMode) {
	crossMode := MeasureModeAtMost
	if mainIsRow {
		return MeasureModeUndefined, crossMode
	}
	return crossMode, MeasureModeUndefined
}

// resolveFlexFactors runs the grow/shrink distribution for one line,
// iteratively freezing items that hit a min/max bound and redistributing
// the remainder among the rest, matching the CSS flexbox resolution
// algorithm (spec.md §4.3 step 3).
func resolveFlexFactors(line *flexLine, availableMain float32, mainMode MeasureMode, mainGap float32) {
	n := len(line.items)
	if n == 0 {
		line.mainSize = 0
		return
	}

	var used float32
	for i, item := range line.items {
		if i > 0 {
			used += mainGap
		}
		used += item.basis + item.marginMainLead + item.marginMainTrail
		item.mainSize = item.basis
	}

	if mainMode == MeasureModeUndefined || isUndefinedFloat(availableMain) {
		line.mainSize = used
		return
	}

	freeSpace := availableMain - used
	growing := freeSpace > 0

	for i := 0; i < n; i++ {
		anyUnfrozen := false
		var factorSum float32
		for _, item := range line.items {
			if item.frozen {
				continue
			}
			anyUnfrozen = true
			if growing {
				factorSum += item.growFactor
			} else {
				factorSum += item.shrinkFactor * item.basis
			}
		}
		if !anyUnfrozen || factorSum <= 0 {
			break
		}

		var space float32
		if growing {
			space = freeSpace
		} else {
			space = -freeSpace
		}

		anyFrozeThisRound := false
		for _, item := range line.items {
			if item.frozen {
				continue
			}
			var share float32
			if growing {
				share = space * (item.growFactor / factorSum)
				item.mainSize = item.basis + share
				if !isUndefinedFloat(item.maxMain) && item.mainSize > item.maxMain {
					item.mainSize = item.maxMain
					item.frozen = true
					anyFrozeThisRound = true
				}
			} else {
				share = space * ((item.shrinkFactor * item.basis) / factorSum)
				item.mainSize = item.basis - share
				if item.mainSize < item.minMain {
					item.mainSize = item.minMain
					item.frozen = true
					anyFrozeThisRound = true
				}
			}
		}

		var newUsed float32
		for i, item := range line.items {
			if i > 0 {
				newUsed += mainGap
			}
			newUsed += item.mainSize + item.marginMainLead + item.marginMainTrail
		}
		freeSpace = availableMain - newUsed

		if !anyFrozeThisRound {
			break
		}
	}

	var final float32
	for i, item := range line.items {
		if i > 0 {
			final += mainGap
		}
		final += item.mainSize + item.marginMainLead + item.marginMainTrail
	}
	line.mainSize = final
}

// sizeLineCrossDimensions computes each item's cross size (resolving
// align-self/stretch) and each line's cross size: the max over its
// items, or, for a nowrap container whose cross size is Exactly known,
// the container's inner cross size.
func sizeLineCrossDimensions(lines []*flexLine, mainIsRow bool, dir Direction, contentMain float32, crossMode MeasureMode, pctMain, pctCross float32, crossGap float32) {
	for _, line := range lines {
		var maxCross float32
		var stretchItems []*flexItem
		for _, item := range line.items {
			s := item.node.style
			align := s.AlignSelf
			if align == AlignAuto {
				align = item.node.parent.style.AlignItems
			}

			crossDim := crossDimValue(s, mainIsRow)
			stretch := align == AlignStretch && crossDim.IsAuto() && s.PositionType != PositionTypeAbsolute
			if stretch {
				stretchItems = append(stretchItems, item)
			}

			var mainQueryMode MeasureMode = MeasureModeExactly
			mainQueryVal := item.mainSize

			var crossQueryMode MeasureMode
			var crossQueryVal float32
			if stretch {
				crossQueryMode = MeasureModeUndefined
			} else if crossDim.IsDefined() {
				crossQueryMode = MeasureModeExactly
				crossQueryVal = crossDim.Resolve(pctCross)
			} else {
				crossQueryMode = MeasureModeAtMost
				crossQueryVal = pctCross
			}

			var availW, availH float32
			var wMode, hMode MeasureMode
			if mainIsRow {
				availW, availH = mainQueryVal, crossQueryVal
				wMode, hMode = mainQueryMode, crossQueryMode
			} else {
				availW, availH = crossQueryVal, mainQueryVal
				wMode, hMode = crossQueryMode, mainQueryMode
			}

			w, h := measureNode(item.node, availW, availH, wMode, hMode, dir, pctMain, pctCross)
			var crossOuter float32
			if mainIsRow {
				crossOuter = h
			} else {
				crossOuter = w
			}

			item.crossSize = crossOuter
			total := crossOuter + item.marginCrossLead + item.marginCrossTrail
			if total > maxCross {
				maxCross = total
			}
		}
		line.crossSize = maxCross
		if crossMode == MeasureModeExactly && !isUndefinedFloat(pctCross) &&
			len(line.items) > 0 && line.items[0].node.parent.style.FlexWrap == WrapNoWrap {
			line.crossSize = pctCross
		}

		for _, item := range stretchItems {
			stretchedOuter := clampNonNegative(line.crossSize - item.marginCrossLead - item.marginCrossTrail)

			var availW, availH float32
			var wMode, hMode MeasureMode
			if mainIsRow {
				availW, availH = item.mainSize, stretchedOuter
				wMode, hMode = MeasureModeExactly, MeasureModeExactly
			} else {
				availW, availH = stretchedOuter, item.mainSize
				wMode, hMode = MeasureModeExactly, MeasureModeExactly
			}
			w, h := measureNode(item.node, availW, availH, wMode, hMode, dir, pctMain, pctCross)
			if mainIsRow {
				item.crossSize = h
			} else {
				item.crossSize = w
			}
		}
	}
}

func crossDimValue(s Style, mainIsRow bool) Value {
	if mainIsRow {
		return s.Height
	}
	return s.Width
}

// alignContentLines distributes extra cross-axis space among multiple
// wrapped lines per AlignContent. Rather than bumping items' leading
// margins, it records offsets on the lines (leadOffset/gapAfter, or a
// grown crossSize for stretch) that finalizeChildLayouts consumes.
func alignContentLines(lines []*flexLine, align Align, contentCross float32, crossGap float32) {
	if len(lines) == 0 {
		return
	}
	var used float32
	for i, l := range lines {
		if i > 0 {
			used += crossGap
		}
		used += l.crossSize
	}
	free := contentCross - used
	if free < 0 {
		free = 0
	}

	n := len(lines)
	switch align {
	case AlignFlexEnd:
		lines[0].leadOffset = free
	case AlignCenter:
		lines[0].leadOffset = free / 2
	case AlignStretch:
		if n > 0 {
			extra := free / float32(n)
			for _, l := range lines {
				l.crossSize += extra
			}
		}
	case AlignSpaceBetween:
		if n > 1 {
			lines[0].gapAfter = free / float32(n-1)
		}
	case AlignSpaceAround:
		if n > 0 {
			each := free / float32(n)
			lines[0].leadOffset = each / 2
			lines[0].gapAfter = each
		}
	default: // AlignFlexStart and unhandled fall back to packed-start
	}
}

// placeItemsInLines resolves each item's main-axis leading position
// within its line per justify-content (and main-axis gap), handling
// flex-direction reversal by placing items in document order and then
// mirroring each position across contentMain when the direction is
// *-reverse (or a row under RTL).
func placeItemsInLines(lines []*flexLine, style Style, mainIsRow bool, dir Direction, contentMain float32, justify Justify, mainGap float32) {
	reverse := style.FlexDirection.IsReverse()
	if mainIsRow && dir == DirectionRTL {
		// A row's main axis runs along the writing direction: under RTL
		// the first child in document order sits at the right edge, the
		// same visual mirroring *-reverse gives under LTR, so the two
		// flip together rather than compounding (row-reverse + RTL reads
		// left-to-right again).
		reverse = !reverse
	}

	for _, line := range lines {
		n := len(line.items)
		if n == 0 {
			continue
		}

		var used float32
		for i, item := range line.items {
			if i > 0 {
				used += mainGap
			}
			used += item.mainSize + item.marginMainLead + item.marginMainTrail
		}
		free := contentMain - used
		if isUndefinedFloat(free) || free < 0 {
			free = 0
		}

		lead, between := justifyOffsets(justify, free, n)

		pos := lead
		for idx, item := range line.items {
			if idx > 0 {
				pos += mainGap + between
			}
			item.mainPos = pos
			pos += item.marginMainLead + item.mainSize + item.marginMainTrail
			if reverse {
				item.mainPos = contentMain - pos
			}
		}
	}
}

// justifyOffsets returns the leading offset before the first item and
// the extra spacing inserted between each pair of items.
func justifyOffsets(justify Justify, free float32, n int) (lead, between float32) {
	switch justify {
	case JustifyFlexEnd:
		return free, 0
	case JustifyCenter:
		return free / 2, 0
	case JustifySpaceBetween:
		if n > 1 {
			return 0, free / float32(n-1)
		}
		return 0, 0
	case JustifySpaceAround:
		if n > 0 {
			each := free / float32(n)
			return each / 2, each
		}
		return 0, 0
	case JustifySpaceEvenly:
		each := free / float32(n+1)
		return each, each
	default: // JustifyFlexStart
		return 0, 0
	}
}

// finalizeChildLayouts writes every in-flow child's resolved Layout: its
// position (content-box relative, converting main/cross back to
// left/top), its size, and its own resolved padding/border/margin edges
// for readback.
func finalizeChildLayouts(lines []*flexLine, mainIsRow bool, dir Direction) {
	leadOffset, gapAfter := float32(0), float32(0)
	if len(lines) > 0 {
		leadOffset = lines[0].leadOffset
		gapAfter = lines[0].gapAfter
	}

	crossCursor := leadOffset
	for li, line := range lines {
		if li > 0 {
			crossCursor += gapAfter
		}
		line.crossPos = crossCursor

		for _, item := range line.items {
			align := item.node.style.AlignSelf
			if align == AlignAuto {
				align = item.node.parent.style.AlignItems
			}

			crossFree := line.crossSize - item.crossSize - item.marginCrossLead - item.marginCrossTrail
			if crossFree < 0 {
				crossFree = 0
			}
			var crossOffset float32
			switch align {
			case AlignFlexEnd:
				crossOffset = crossFree
			case AlignCenter:
				crossOffset = crossFree / 2
			default:
				crossOffset = 0
			}
			item.crossPos = line.crossPos + crossOffset

			writeChildLayout(item, mainIsRow, dir)
		}

		crossCursor += line.crossSize
	}
}

func writeChildLayout(item *flexItem, mainIsRow bool, dir Direction) {
	child := item.node
	s := child.style
	pctRef := float32NaN()

	if mainIsRow {
		child.Layout.Left = item.mainPos + item.marginMainLead
		child.Layout.Top = item.crossPos + item.marginCrossLead
		child.Layout.Width = item.mainSize
		child.Layout.Height = item.crossSize
	} else {
		child.Layout.Left = item.crossPos + item.marginCrossLead
		child.Layout.Top = item.mainPos + item.marginMainLead
		child.Layout.Width = item.crossSize
		child.Layout.Height = item.mainSize
	}

	child.flex.baseSize = item.basis
	child.flex.mainSize = item.mainSize

	child.Layout.Direction = resolveDirection(s.Direction, dir)
	child.Layout.Padding = Edges4{
		Left:   paddingFor(s, EdgeLeft, dir, pctRef),
		Top:    paddingFor(s, EdgeTop, dir, pctRef),
		Right:  paddingFor(s, EdgeRight, dir, pctRef),
		Bottom: paddingFor(s, EdgeBottom, dir, pctRef),
	}
	child.Layout.Border = Edges4{
		Left:   borderFor(s, EdgeLeft, dir, pctRef),
		Top:    borderFor(s, EdgeTop, dir, pctRef),
		Right:  borderFor(s, EdgeRight, dir, pctRef),
		Bottom: borderFor(s, EdgeBottom, dir, pctRef),
	}
	child.Layout.Margin = Edges4{
		Left:   marginFor(s, EdgeLeft, dir, pctRef),
		Top:    marginFor(s, EdgeTop, dir, pctRef),
		Right:  marginFor(s, EdgeRight, dir, pctRef),
		Bottom: marginFor(s, EdgeBottom, dir, pctRef),
	}
	child.dirty = false
}

// layoutAbsoluteChildren positions out-of-flow children against the
// parent's content box, resolving each inset edge and falling back to
// the parent's justify-content/align-items for the axis an item leaves
// auto on both sides (spec.md §4.3 step 6, "Non-goals" does not exclude
// absolute positioning — only grid layout).
func layoutAbsoluteChildren(parent *Node, children []*Node, dir Direction, contentW, contentH, pctBaseW, pctBaseH float32) {
	for _, child := range children {
		s := child.style

		left := s.Position.Get(EdgeLeft, dir)
		right := s.Position.Get(EdgeRight, dir)
		top := s.Position.Get(EdgeTop, dir)
		bottom := s.Position.Get(EdgeBottom, dir)

		widthMode, heightMode := MeasureModeAtMost, MeasureModeAtMost
		availW, availH := contentW, contentH

		if s.Width.IsDefined() {
			widthMode = MeasureModeExactly
			availW = s.Width.Resolve(pctBaseW)
		} else if left.IsDefined() && right.IsDefined() {
			widthMode = MeasureModeExactly
			availW = clampNonNegative(contentW - left.Resolve(pctBaseW) - right.Resolve(pctBaseW))
		}
		if s.Height.IsDefined() {
			heightMode = MeasureModeExactly
			availH = s.Height.Resolve(pctBaseH)
		} else if top.IsDefined() && bottom.IsDefined() {
			heightMode = MeasureModeExactly
			availH = clampNonNegative(contentH - top.Resolve(pctBaseH) - bottom.Resolve(pctBaseH))
		}

		w, h := measureNode(child, availW, availH, widthMode, heightMode, dir, pctBaseW, pctBaseH)

		var x float32
		switch {
		case left.IsDefined():
			x = left.Resolve(pctBaseW)
		case right.IsDefined():
			x = contentW - right.Resolve(pctBaseW) - w
		default:
			x = absoluteAutoOffset(parent.style.JustifyContent, contentW, w)
		}

		var y float32
		switch {
		case top.IsDefined():
			y = top.Resolve(pctBaseH)
		case bottom.IsDefined():
			y = contentH - bottom.Resolve(pctBaseH) - h
		default:
			y = absoluteAutoOffset(alignAsJustify(parent.style.AlignItems), contentH, h)
		}

		child.Layout.Left = x
		child.Layout.Top = y
		child.Layout.Width = w
		child.Layout.Height = h
		child.Layout.Direction = resolveDirection(s.Direction, dir)
		child.Layout.Padding = Edges4{
			Left:   paddingFor(s, EdgeLeft, dir, pctBaseW),
			Top:    paddingFor(s, EdgeTop, dir, pctBaseW),
			Right:  paddingFor(s, EdgeRight, dir, pctBaseW),
			Bottom: paddingFor(s, EdgeBottom, dir, pctBaseW),
		}
		child.dirty = false
	}
}

// absoluteAutoOffset falls back an absolutely-positioned child with both
// insets auto on an axis to the parent's justify-content (or align-items,
// translated) for that axis, per the CSS "static position" rule.
func absoluteAutoOffset(justify Justify, contentSize, itemSize float32) float32 {
	free := contentSize - itemSize
	if free < 0 {
		free = 0
	}
	lead, _ := justifyOffsets(justify, free, 1)
	return lead
}

// alignAsJustify maps an Align value onto the closest Justify value so
// absoluteAutoOffset can share one offset table for both axes.
func alignAsJustify(a Align) Justify {
	switch a {
	case AlignCenter:
		return JustifyCenter
	case AlignFlexEnd:
		return JustifyFlexEnd
	default:
		return JustifyFlexStart
	}
}

// roundLayoutTree applies pixel-perfect rounding to a node's own box and
// every in-flow/absolute child already written into n.Layout, per
// spec.md §4.3 step 7: for each child it rounds the edges (left, top,
// right, bottom) rather than each width/height independently, which
// would let 1px gaps or overlaps creep in between neighbors whose
// unrounded edges coincided exactly. The edges rounded are the child's
// coordinates relative to n; they are not first accumulated into
// absolute (root-relative) coordinates, and n's own width/height are
// rounded directly.
func roundLayoutTree(n *Node, outW, outH, padBorderW, padBorderH float32, dir Direction) {
	n.Layout.Width = roundTiesToEven(outW)
	n.Layout.Height = roundTiesToEven(outH)

	for _, c := range n.children {
		if c.style.Display == DisplayNone {
			continue
		}
		left := c.Layout.Left
		top := c.Layout.Top
		right := left + c.Layout.Width
		bottom := top + c.Layout.Height

		rLeft := roundTiesToEven(left)
		rTop := roundTiesToEven(top)
		rRight := roundTiesToEven(right)
		rBottom := roundTiesToEven(bottom)

		c.Layout.Left = rLeft
		c.Layout.Top = rTop
		c.Layout.Width = rRight - rLeft
		c.Layout.Height = rBottom - rTop
	}
}

// roundTiesToEven rounds to the nearest integer pixel, breaking exact
// .5 ties to the even neighbor — avoids the small directional bias a
// naive round-half-up would accumulate across a wide tree of adjacent
// edges (spec.md §4.3 step 7).
func roundTiesToEven(v float32) float32 {
	if isUndefinedFloat(v) {
		return v
	}
	floor := float32(int32(v))
	if v < 0 && floor != v {
		floor -= 1
	}
	diff := v - floor
	switch {
	case diff < 0.5:
		return floor
	case diff > 0.5:
		return floor + 1
	default:
		if int64(floor)%2 == 0 {
			return floor
		}
		return floor + 1
	}
}
