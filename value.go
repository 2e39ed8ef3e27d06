package flex

import "math"

// unit tags a Value's variant (spec.md §3 "Length value").
type unit uint8

const (
	unitUndefined unit = iota
	unitPoint
	unitPercent
	unitAuto
)

// Value is a tagged length: a finite point size, a percentage resolved
// against a reference size at layout time, an auto default, or undefined
// (propagate the caller's default). Arithmetic uses float32; NaN is the
// sentinel for "unconstrained" and must compare NaN-safe in cache keys
// (see isNaNSafeEqual).
type Value struct {
	unit  unit
	value float32
}

// Point creates a fixed-length value. Negative input is not a valid
// CSS length; callers are expected to pass non-negative sizes, but the
// engine does not itself reject negative points — they simply clamp to
// zero at the final write of a computed size (spec.md §4.5).
func Point(v float32) Value { return Value{unit: unitPoint, value: v} }

// Percent creates a value resolved against a reference size at layout
// time: p/100 * ref.
func Percent(p float32) Value { return Value{unit: unitPercent, value: p} }

// Auto creates a context-dependent default value.
func Auto() Value { return Value{unit: unitAuto} }

// Undefined creates an unset value; callers resolve it to their own
// default.
func Undefined() Value { return Value{unit: unitUndefined, value: float32(math.NaN())} }

// IsAuto reports whether v is the Auto variant.
func (v Value) IsAuto() bool { return v.unit == unitAuto }

// IsUndefined reports whether v is the Undefined variant.
func (v Value) IsUndefined() bool { return v.unit == unitUndefined }

// IsDefined reports whether v carries a concrete point or percent value.
func (v Value) IsDefined() bool { return v.unit == unitPoint || v.unit == unitPercent }

// IsPercent reports whether v is a Percent variant.
func (v Value) IsPercent() bool { return v.unit == unitPercent }

// IsPoint reports whether v is a Point variant.
func (v Value) IsPoint() bool { return v.unit == unitPoint }

// Resolve returns the value's length against the given reference size.
// Point ignores ref. Percent computes ref * value/100. Auto and Undefined
// both resolve to NaN — callers that need a concrete fallback (e.g. "Auto
// means 0 for margin but means intrinsic size for width") must branch on
// IsAuto/IsUndefined themselves and supply their own default; NaN then
// propagates through arithmetic exactly as spec.md §3 requires.
func (v Value) Resolve(ref float32) float32 {
	switch v.unit {
	case unitPoint:
		return v.value
	case unitPercent:
		if isUndefinedFloat(ref) {
			return float32(math.NaN())
		}
		return ref * v.value / 100
	default:
		return float32(math.NaN())
	}
}

// ResolveOr is Resolve but substitutes def whenever the result would be
// NaN (covers Auto, Undefined, and Percent-against-an-undefined-reference
// uniformly).
func (v Value) ResolveOr(ref, def float32) float32 {
	r := v.Resolve(ref)
	if isUndefinedFloat(r) {
		return def
	}
	return r
}

// isUndefinedFloat reports whether f is the "unconstrained" sentinel.
// NaN is a legitimate, valid value for available-space parameters
// throughout this engine (spec.md §3), never an error condition.
func isUndefinedFloat(f float32) bool {
	return f != f // NaN != NaN under IEEE-754; this is the cheapest isNaN test
}

// isNaNSafeEqual compares two float32s where NaN equals NaN, which cache
// keys require (spec.md §3, §4.2) but which Go's == operator does not
// provide.
func isNaNSafeEqual(a, b float32) bool {
	if isUndefinedFloat(a) && isUndefinedFloat(b) {
		return true
	}
	return a == b
}

// Equal reports whether two Values are the same variant carrying the
// same number, comparing that number NaN-safe. Undefined's payload is
// always NaN (see Undefined above), so plain == would make re-setting an
// already-Undefined field look like a change and dirty the node for
// nothing (spec.md §8 "setting a style to its current value must not
// dirty the node").
func (v Value) Equal(other Value) bool {
	return v.unit == other.unit && isNaNSafeEqual(v.value, other.value)
}

// Edges is an edge-indexed array of Values: margin, padding, border, or
// inset (position), one slot per Edge constant.
type Edges [edgeCount]Value

// NewEdges returns an Edges array with every slot Undefined.
func NewEdges() Edges {
	var e Edges
	for i := range e {
		e[i] = Undefined()
	}
	return e
}

// Get looks up the value for a concrete physical edge, following the
// fallback chain physical → logical(under direction) → axis → all, with
// the first defined entry winning (spec.md §3 "Edge index").
//
// physical must be one of EdgeLeft/EdgeTop/EdgeRight/EdgeBottom.
func (e Edges) Get(physical Edge, dir Direction) Value {
	if v := e[physical]; v.IsDefined() {
		return v
	}

	if logical, ok := logicalEdgeFor(physical, dir); ok {
		if v := e[logical]; v.IsDefined() {
			return v
		}
	}

	if axis, ok := axisEdgeFor(physical); ok {
		if v := e[axis]; v.IsDefined() {
			return v
		}
	}

	if e[EdgeAll].IsDefined() {
		return e[EdgeAll]
	}

	// Nothing defined on the chain: Auto falls through as Auto (margin's
	// context-dependent default), everything else as Undefined.
	if e[physical].IsAuto() {
		return e[physical]
	}
	return Undefined()
}

// logicalEdgeFor maps a physical edge to its logical (start/end) name
// under the given direction. Row directions map left/right to start/end
// per the writing direction; column directions never logically remap
// top/bottom.
func logicalEdgeFor(physical Edge, dir Direction) (Edge, bool) {
	switch physical {
	case EdgeLeft:
		if dir == DirectionRTL {
			return EdgeEnd, true
		}
		return EdgeStart, true
	case EdgeRight:
		if dir == DirectionRTL {
			return EdgeStart, true
		}
		return EdgeEnd, true
	default:
		return 0, false
	}
}

// axisEdgeFor maps a physical edge to its axis shorthand (horizontal or
// vertical).
func axisEdgeFor(physical Edge) (Edge, bool) {
	switch physical {
	case EdgeLeft, EdgeRight:
		return EdgeHorizontal, true
	case EdgeTop, EdgeBottom:
		return EdgeVertical, true
	default:
		return 0, false
	}
}
