package flex

// resolve.go gathers the small cross-cutting helpers component C6 of
// spec.md names: main/cross axis selection, margin/padding/border
// resolution against a reference size, and the clamp rules shared by
// measurement and the full layout algorithm.

// mainAxisEdgeStart/End and crossAxisEdgeStart/End return the physical
// edges bounding a node along its parent's main or cross axis, given the
// parent's FlexDirection. Used to pick which Margin/Padding/Border slot
// governs "leading" vs "trailing" space for a given axis.
func mainAxisEdgeStart(dir FlexDirection) Edge {
	switch dir {
	case FlexDirectionRow, FlexDirectionRowReverse:
		return EdgeLeft
	default:
		return EdgeTop
	}
}

func mainAxisEdgeEnd(dir FlexDirection) Edge {
	switch dir {
	case FlexDirectionRow, FlexDirectionRowReverse:
		return EdgeRight
	default:
		return EdgeBottom
	}
}

func crossAxisEdgeStart(dir FlexDirection) Edge {
	if dir.IsRow() {
		return EdgeTop
	}
	return EdgeLeft
}

func crossAxisEdgeEnd(dir FlexDirection) Edge {
	if dir.IsRow() {
		return EdgeBottom
	}
	return EdgeRight
}

// marginFor resolves one edge of a node's margin against the parent's
// main-axis reference width, per spec.md §9's resolution of the open
// question "what does percent margin-top/bottom resolve against": CSS
// (and Yoga) resolve ALL percentage margins — including vertical ones —
// against the containing block's width, never its height. ownerWidth is
// NaN when the parent's own width is not yet known, in which case the
// percentage itself resolves to NaN and the caller's Auto-as-zero
// fallback applies.
func marginFor(s Style, edge Edge, dir Direction, ownerWidth float32) float32 {
	v := s.Margin.Get(edge, dir)
	if v.IsAuto() {
		return 0
	}
	return v.ResolveOr(ownerWidth, 0)
}

func paddingFor(s Style, edge Edge, dir Direction, ownerWidth float32) float32 {
	v := s.Padding.Get(edge, dir)
	return v.ResolveOr(ownerWidth, 0)
}

func borderFor(s Style, edge Edge, dir Direction, ownerWidth float32) float32 {
	v := s.Border.Get(edge, dir)
	return v.ResolveOr(ownerWidth, 0)
}

// marginAxisSum, paddingAxisSum and borderAxisSum total the resolved value of both edges of an axis
// (horizontal: left+right, vertical: top+bottom) for margin, padding, or
// border combined — the figure subtracted from a content box to get an
// available inner size, or added to a content size to get an outer size.
func marginAxisSum(s Style, horizontal bool, dir Direction, ownerWidth float32) float32 {
	if horizontal {
		return marginFor(s, EdgeLeft, dir, ownerWidth) + marginFor(s, EdgeRight, dir, ownerWidth)
	}
	return marginFor(s, EdgeTop, dir, ownerWidth) + marginFor(s, EdgeBottom, dir, ownerWidth)
}

func paddingAxisSum(s Style, horizontal bool, dir Direction, ownerWidth float32) float32 {
	if horizontal {
		return paddingFor(s, EdgeLeft, dir, ownerWidth) + paddingFor(s, EdgeRight, dir, ownerWidth)
	}
	return paddingFor(s, EdgeTop, dir, ownerWidth) + paddingFor(s, EdgeBottom, dir, ownerWidth)
}

func borderAxisSum(s Style, horizontal bool, dir Direction, ownerWidth float32) float32 {
	if horizontal {
		return borderFor(s, EdgeLeft, dir, ownerWidth) + borderFor(s, EdgeRight, dir, ownerWidth)
	}
	return borderFor(s, EdgeTop, dir, ownerWidth) + borderFor(s, EdgeBottom, dir, ownerWidth)
}

// paddingAndBorderAxisSum is the figure subtracted from a node's border
// box to get its content box along one axis.
func paddingAndBorderAxisSum(s Style, horizontal bool, dir Direction, ownerWidth float32) float32 {
	return paddingAxisSum(s, horizontal, dir, ownerWidth) + borderAxisSum(s, horizontal, dir, ownerWidth)
}

// resolveMinMax clamps value between a style's resolved min/max for one
// axis, skipping any bound that is undefined. NaN input passes through
// unclamped on either side that is itself undefined, preserving NaN's
// "unconstrained" meaning.
func resolveMinMax(value, min, max float32) float32 {
	if isUndefinedFloat(value) {
		return value
	}
	if !isUndefinedFloat(max) && value > max {
		value = max
	}
	if !isUndefinedFloat(min) && value < min {
		value = min
	}
	return value
}

// boundAxis resolves and applies a node's min/max for the given axis
// against ownerSize (the reference for percentage min/max), then clamps
// value against the result.
func boundAxis(s Style, horizontal bool, value, ownerSize float32) float32 {
	var minV, maxV Value
	if horizontal {
		minV, maxV = s.MinWidth, s.MaxWidth
	} else {
		minV, maxV = s.MinHeight, s.MaxHeight
	}
	min := minV.Resolve(ownerSize)
	max := maxV.Resolve(ownerSize)
	return resolveMinMax(value, min, max)
}

// clampNonNegative clamps a plain float to [0, +inf) — computed sizes are
// never negative (spec.md §4.5).
func clampNonNegative(v float32) float32 {
	if isUndefinedFloat(v) {
		return v
	}
	if v < 0 {
		return 0
	}
	return v
}

// resolveFlexBasis returns a node's flex-basis resolved against the
// available main-axis size, falling back to the node's main-axis Width
// or Height (whichever is the main dimension) when FlexBasis is Auto, per
// spec.md §4.3 step 2 ("basis per child").
func resolveFlexBasis(s Style, mainIsRow bool, availMain float32) float32 {
	if s.FlexBasis.IsDefined() {
		return s.FlexBasis.Resolve(availMain)
	}
	var dim Value
	if mainIsRow {
		dim = s.Width
	} else {
		dim = s.Height
	}
	if dim.IsDefined() {
		return dim.Resolve(availMain)
	}
	return float32NaN()
}

func float32NaN() float32 {
	v := Undefined()
	return v.value
}
