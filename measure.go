package flex

// measureNode computes a node's content-box size under the given
// available space and measure modes, applying the node's own aspect
// ratio and min/max clamps, then adding padding+border back to report an
// outer (border-box) size — component C7 of spec.md §4.2.
//
// For a leaf with a host MeasureFunc, the callback supplies the content
// size directly. For a container (or a leaf with no MeasureFunc), the
// full flex algorithm in calculate.go stands in as the "measurement": a
// container's intrinsic size is whatever CalculateLayout would give its
// children. measureNode consults the node's measurement cache first; on
// a miss, that recursion is further gated by the node's own layout
// cache (cache.go's findLayout/insertLayout, spec.md §3's "up to two
// layout cache slots"), so a node whose parent asks the same
// (availW, availH, widthMode, heightMode) question more than once during
// one arrange pass (e.g. a hypothetical-size probe immediately followed
// by the real one) only walks its subtree once.
func measureNode(n *Node, availW, availH float32, widthMode, heightMode MeasureMode, ownerDir Direction, ownerWidth, ownerHeight float32) (width, height float32) {
	if n.style.Display == DisplayNone {
		return 0, 0
	}

	if cw, ch, _, ok := n.cache.findMeasurement(availW, availH, widthMode, heightMode); ok {
		return cw, ch
	}

	width, height = measureNodeUncached(n, availW, availH, widthMode, heightMode, ownerDir, ownerWidth, ownerHeight)

	n.cache.insertMeasurement(availW, availH, widthMode, heightMode, width, height)
	return width, height
}

func measureNodeUncached(n *Node, availW, availH float32, widthMode, heightMode MeasureMode, ownerDir Direction, ownerWidth, ownerHeight float32) (float32, float32) {
	dir := resolveDirection(n.style.Direction, ownerDir)

	padBorderW := paddingAndBorderAxisSum(n.style, true, dir, ownerWidth)
	padBorderH := paddingAndBorderAxisSum(n.style, false, dir, ownerWidth)

	innerAvailW := deflate(availW, padBorderW)
	innerAvailH := deflate(availH, padBorderH)

	var contentW, contentH float32

	switch {
	case n.measure != nil:
		contentW, contentH = n.measure(n, innerAvailW, innerAvailH, widthMode, heightMode)
	case len(n.children) == 0:
		contentW, contentH = resolveEmptyContainerSize(innerAvailW, innerAvailH, widthMode, heightMode)
	default:
		if w, h, ok := n.cache.findLayout(availW, availH, widthMode, heightMode); ok {
			return w, h
		}
		lay := calculateNodeLayout(n, availW, availH, dir, widthMode, heightMode, ownerWidth, ownerHeight)
		n.cache.insertLayout(availW, availH, widthMode, heightMode, lay.Width, lay.Height)
		return lay.Width, lay.Height
	}

	contentW = applyAspectRatio(n.style, true, contentW, contentH)
	contentH = applyAspectRatio(n.style, false, contentH, contentW)

	contentW = boundAxis(n.style, true, contentW, ownerWidth)
	contentH = boundAxis(n.style, false, contentH, ownerHeight)

	outerW := clampNonNegative(contentW + padBorderW)
	outerH := clampNonNegative(contentH + padBorderH)
	return outerW, outerH
}

// resolveEmptyContainerSize returns the intrinsic size of a childless,
// measure-func-less node: zero on each axis, except that an axis in
// Exactly mode with a defined available size takes that size.
func resolveEmptyContainerSize(availW, availH float32, widthMode, heightMode MeasureMode) (float32, float32) {
	w := 0.0
	h := 0.0
	if widthMode == MeasureModeExactly && !isUndefinedFloat(availW) {
		w = float64(availW)
	}
	if heightMode == MeasureModeExactly && !isUndefinedFloat(availH) {
		h = float64(availH)
	}
	return float32(w), float32(h)
}

// applyAspectRatio fills in a missing dimension from its companion plus
// the node's AspectRatio (width/height), when the style's own dimension
// for the axis being computed is not already defined. horizontal=true
// computes width from height.
func applyAspectRatio(s Style, horizontal bool, value, companion float32) float32 {
	if !s.AspectRatio.IsDefined() {
		return value
	}
	ratio := s.AspectRatio.Resolve(0)
	if isUndefinedFloat(companion) {
		return value
	}
	var dim Value
	if horizontal {
		dim = s.Width
	} else {
		dim = s.Height
	}
	if dim.IsDefined() {
		return value
	}
	if horizontal {
		return companion * ratio
	}
	return companion / ratio
}

// deflate subtracts a padding+border figure from an available space,
// preserving NaN ("unconstrained") and never going negative.
func deflate(avail, padBorder float32) float32 {
	if isUndefinedFloat(avail) {
		return avail
	}
	return clampNonNegative(avail - padBorder)
}

// resolveDirection inherits the owner's resolved direction when a node
// leaves Direction at its default (spec.md §3 "Direction inherits").
func resolveDirection(d Direction, ownerDir Direction) Direction {
	if d == DirectionInherit {
		if ownerDir == DirectionInherit {
			return DirectionLTR
		}
		return ownerDir
	}
	return d
}

