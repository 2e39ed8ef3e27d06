package flex

// cellstyle.go carries the terminal-rendering style vocabulary the demo
// renderer (flexlayout.go) and Buffer use to paint cells: colors, text
// attributes, and spans. This is deliberately a separate type family
// from Style (the flex layout style in style.go) even though both
// repos' authors called their version "Style" — merging the node-facade
// package and the rendering package into one module means the two could
// not keep the same name (spec.md §1 scopes the engine itself to
// layout only; text color/attributes are a rendering-layer concern one
// level up, grounded in the teacher's tui.go).

// CellAttr is a bitset of combinable text attributes.
type CellAttr uint8

const (
	AttrNone CellAttr = 0
	AttrBold CellAttr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrInverse
	AttrStrikethrough
)

// Has reports whether attr is set.
func (a CellAttr) Has(attr CellAttr) bool { return a&attr != 0 }

// With returns a new attribute set with attr added.
func (a CellAttr) With(attr CellAttr) CellAttr { return a | attr }

// Without returns a new attribute set with attr removed.
func (a CellAttr) Without(attr CellAttr) CellAttr { return a &^ attr }

// TextAlign controls how text is placed within an allocated cell width.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
)

// ColorMode selects how a Color's channels should be interpreted.
type ColorMode uint8

const (
	ColorDefault ColorMode = iota
	Color16
	Color256
	ColorRGB
)

// Color is a terminal color in one of four modes.
type Color struct {
	Mode    ColorMode
	R, G, B uint8
	Index   uint8
}

// Equal reports whether two colors are identical.
func (c Color) Equal(other Color) bool { return c == other }

func DefaultColor() Color               { return Color{Mode: ColorDefault} }
func BasicColor(index uint8) Color      { return Color{Mode: Color16, Index: index} }
func PaletteColor(index uint8) Color    { return Color{Mode: Color256, Index: index} }
func RGB(r, g, b uint8) Color           { return Color{Mode: ColorRGB, R: r, G: g, B: b} }
func Hex(hex uint32) Color {
	return Color{Mode: ColorRGB, R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex)}
}

var (
	Black   = BasicColor(0)
	Red     = BasicColor(1)
	Green   = BasicColor(2)
	Yellow  = BasicColor(3)
	Blue    = BasicColor(4)
	Magenta = BasicColor(5)
	Cyan    = BasicColor(6)
	White   = BasicColor(7)

	BrightBlack   = BasicColor(8)
	BrightRed     = BasicColor(9)
	BrightGreen   = BasicColor(10)
	BrightYellow  = BasicColor(11)
	BrightBlue    = BasicColor(12)
	BrightMagenta = BasicColor(13)
	BrightCyan    = BasicColor(14)
	BrightWhite   = BasicColor(15)
)

// CellStyle combines foreground/background color and attributes for one
// run of text or one container's fill.
type CellStyle struct {
	FG    Color
	BG    Color
	Fill  Color
	Attr  CellAttr
	Align TextAlign
}

// DefaultCellStyle returns a style with terminal-default colors and no
// attributes.
func DefaultCellStyle() CellStyle {
	return CellStyle{FG: DefaultColor(), BG: DefaultColor()}
}

func (s CellStyle) Foreground(c Color) CellStyle { s.FG = c; return s }
func (s CellStyle) Background(c Color) CellStyle { s.BG = c; return s }
func (s CellStyle) FillColor(c Color) CellStyle  { s.Fill = c; return s }
func (s CellStyle) Bold() CellStyle              { s.Attr = s.Attr.With(AttrBold); return s }
func (s CellStyle) Dim() CellStyle               { s.Attr = s.Attr.With(AttrDim); return s }
func (s CellStyle) Underline() CellStyle         { s.Attr = s.Attr.With(AttrUnderline); return s }
func (s CellStyle) Inverse() CellStyle           { s.Attr = s.Attr.With(AttrInverse); return s }

// Equal reports whether two styles are identical.
func (s CellStyle) Equal(other CellStyle) bool { return s == other }

// Cell is a single character cell on the terminal, grounded in the
// teacher's Buffer (buffer.go).
type Cell struct {
	Rune  rune
	Style CellStyle
}

// EmptyCell returns a cell with a space and the default style.
func EmptyCell() Cell { return Cell{Rune: ' ', Style: DefaultCellStyle()} }

// NewCell creates a cell with the given rune and style.
func NewCell(r rune, style CellStyle) Cell { return Cell{Rune: r, Style: style} }

// Equal reports whether two cells are identical.
func (c Cell) Equal(other Cell) bool { return c == other }

// Span is one run of text within a RichText node, carrying its own
// style.
type Span struct {
	Text  string
	Style CellStyle
}

func Styled(text string, style CellStyle) Span { return Span{Text: text, Style: style} }
func BoldSpan(text string) Span                { return Span{Text: text, Style: CellStyle{Attr: AttrBold}} }
func DimSpan(text string) Span                 { return Span{Text: text, Style: CellStyle{Attr: AttrDim}} }
func UnderlineSpan(text string) Span {
	return Span{Text: text, Style: CellStyle{Attr: AttrUnderline}}
}
func FGSpan(text string, c Color) Span { return Span{Text: text, Style: CellStyle{FG: c}} }
