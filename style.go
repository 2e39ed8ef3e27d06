package flex

// Style holds every per-node flex attribute named in spec.md §3. It is a
// plain, comparable value type: setters on Node compare old vs new before
// writing so that "setting a style to its current value" never dirties a
// node (spec.md §8, round-trip law).
type Style struct {
	Direction      Direction
	FlexDirection  FlexDirection
	FlexWrap       Wrap
	JustifyContent Justify
	AlignItems     Align
	AlignSelf      Align
	AlignContent   Align
	PositionType   PositionType
	Display        Display
	Overflow       Overflow

	FlexGrow   float32
	FlexShrink float32
	FlexBasis  Value

	Width, Height       Value
	MinWidth, MinHeight Value
	MaxWidth, MaxHeight Value

	Margin   Edges
	Padding  Edges
	Border   Edges
	Position Edges

	// Gap holds gutter values indexed by Gutter; GutterAll is the
	// fallback for an axis with no gutter-specific value set.
	Gap [3]Value

	AspectRatio Value
}

// DefaultStyle returns the classic Yoga default attribute matrix: column
// main axis, items stretched on the cross axis, lines packed at
// flex-start, nothing growing or shrinking, static positioning, visible
// overflow. (Yoga's "useWebDefaults" mode flips FlexDirection to row and
// FlexShrink to 1 to match the CSS spec; this engine does not offer that
// mode since the teacher's own layouts are always built with explicit
// FCol/FRow-style direction, so there is no ambiguous caller to serve.)
func DefaultStyle() Style {
	return Style{
		Direction:      DirectionInherit,
		FlexDirection:  FlexDirectionColumn,
		FlexWrap:       WrapNoWrap,
		JustifyContent: JustifyFlexStart,
		AlignItems:     AlignStretch,
		AlignSelf:      AlignAuto,
		AlignContent:   AlignFlexStart,
		PositionType:   PositionTypeStatic,
		Display:        DisplayFlex,
		Overflow:       OverflowVisible,
		FlexGrow:       0,
		FlexShrink:     0,
		FlexBasis:      Auto(),
		Width:          Auto(),
		Height:         Auto(),
		MinWidth:       Undefined(),
		MinHeight:      Undefined(),
		MaxWidth:       Undefined(),
		MaxHeight:      Undefined(),
		Margin:         NewEdges(),
		Padding:        NewEdges(),
		Border:         NewEdges(),
		Position:       NewEdges(),
		Gap:            [3]Value{Undefined(), Undefined(), Undefined()},
		AspectRatio:    Undefined(),
	}
}

// gap returns the resolved gutter value for the given axis, falling back
// to GutterAll, then to 0.
func (s Style) gap(g Gutter) float32 {
	if v := s.Gap[g]; v.IsDefined() {
		return v.Resolve(0)
	}
	if v := s.Gap[GutterAll]; v.IsDefined() {
		return v.Resolve(0)
	}
	return 0
}

// mainGutter/crossGutter pick the right Gutter constant for the node's
// flex direction. Row-direction items sit side by side, so the space
// between them is a column-gap; column-direction items stack, so the
// space between them is a row-gap (matches CSS row-gap/column-gap
// semantics, not the axis name).
func mainGutter(dir FlexDirection) Gutter {
	if dir.IsRow() {
		return GutterColumn
	}
	return GutterRow
}

func crossGutter(dir FlexDirection) Gutter {
	if dir.IsRow() {
		return GutterRow
	}
	return GutterColumn
}
