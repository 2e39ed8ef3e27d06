package flex

// Public integer identifiers. Numeric values are chosen to match the Yoga
// reference implementation so that test fixtures can be shared between the
// two engines (spec.md §6).

// Direction is the writing direction a layout was (or should be) computed
// under.
type Direction uint8

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

// FlexDirection selects the main axis of a container.
type FlexDirection uint8

const (
	FlexDirectionColumn FlexDirection = iota
	FlexDirectionColumnReverse
	FlexDirectionRow
	FlexDirectionRowReverse
)

// IsRow reports whether the main axis runs horizontally.
func (d FlexDirection) IsRow() bool {
	return d == FlexDirectionRow || d == FlexDirectionRowReverse
}

// IsReverse reports whether main-axis placement should be flipped.
func (d FlexDirection) IsReverse() bool {
	return d == FlexDirectionRowReverse || d == FlexDirectionColumnReverse
}

// Wrap controls whether children are forced onto one line or allowed to
// wrap onto several.
type Wrap uint8

const (
	WrapNoWrap Wrap = iota
	WrapWrap
	WrapWrapReverse
)

// Justify controls distribution of free space along the main axis.
type Justify uint8

const (
	JustifyFlexStart Justify = iota
	JustifyCenter
	JustifyFlexEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align controls placement on the cross axis, both for individual items
// (align-self) and for whole lines (align-content).
type Align uint8

const (
	AlignAuto Align = iota
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignStretch
	AlignBaseline
	AlignSpaceBetween
	AlignSpaceAround
)

// Edge identifies one physical/logical edge, axis, or the "all" fallback
// used to look up edge-indexed style values (margin, padding, border,
// position).
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeStart
	EdgeEnd
	EdgeHorizontal
	EdgeVertical
	EdgeAll
	edgeCount
)

// Gutter identifies which axis a gap value applies to.
type Gutter uint8

const (
	GutterColumn Gutter = iota
	GutterRow
	GutterAll
)

// Display toggles whether a node participates in layout at all.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone
)

// PositionType controls whether a node is laid out in-flow or removed from
// the flow and positioned against its containing block.
type PositionType uint8

const (
	PositionTypeStatic PositionType = iota
	PositionTypeRelative
	PositionTypeAbsolute
)

// Overflow affects whether a child that doesn't fit is still honored at
// its computed size (clipped) or allowed to overflow the parent visually.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// MeasureMode tells a measurement pass (or a host measure function) how to
// interpret an available-space dimension.
type MeasureMode uint8

const (
	MeasureModeUndefined MeasureMode = iota
	MeasureModeExactly
	MeasureModeAtMost
)

func (m MeasureMode) String() string {
	switch m {
	case MeasureModeExactly:
		return "exactly"
	case MeasureModeAtMost:
		return "at-most"
	default:
		return "undefined"
	}
}
