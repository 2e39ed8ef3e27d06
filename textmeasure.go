package flex

import "github.com/mattn/go-runewidth"

// textmeasure.go supplies the default MeasureFunc implementations wired
// into FText/FRich (flexlayout.go), using the same
// mattn/go-runewidth width table buffer.go uses for CJK-aware cell
// placement, so a leaf's intrinsic size matches how it will actually be
// painted onto a Buffer.

// textWidth sums display columns, treating zero-width runes as 1 for
// layout purposes — an isolated combining mark still needs a cell to
// attach to.
func textWidth(s string) int {
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			rw = 1
		}
		w += rw
	}
	return w
}

// wrapWidth greedily wraps s to fit within maxWidth columns, returning
// the number of lines it would occupy. Used only to answer "at most"
// measurement queries; actual line breaking for drawing happens in
// Buffer.WriteString, which clips rather than wraps (display.go/demo
// content is expected to size its containers to its text, not the other
// way around — multi-line wrap is a flexlayout.go measurement concern
// only).
func wrapWidth(s string, maxWidth int) int {
	if maxWidth <= 0 {
		return 1
	}
	lines := 1
	col := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			rw = 1
		}
		if col+rw > maxWidth {
			lines++
			col = 0
		}
		col += rw
	}
	return lines
}

// textMeasureFunc builds the MeasureFunc for an FText leaf: exact mode
// reports the requested size, at-most mode reports its natural size
// clamped to the available space (wrapping onto more rows if it
// overflows), undefined mode reports its single-line natural size.
func textMeasureFunc(n *ContentNode) MeasureFunc {
	return func(_ *Node, availW, availH float32, widthMode, heightMode MeasureMode) (float32, float32) {
		naturalW := float32(textWidth(n.text))

		var w float32
		switch widthMode {
		case MeasureModeExactly:
			w = availW
		case MeasureModeAtMost:
			w = naturalW
			if w > availW {
				w = availW
			}
		default:
			w = naturalW
		}

		lines := 1
		if w > 0 {
			lines = wrapWidth(n.text, int(w))
		}
		h := float32(lines)

		switch heightMode {
		case MeasureModeExactly:
			h = availH
		case MeasureModeAtMost:
			if h > availH {
				h = availH
			}
		}

		return w, h
	}
}

// richTextMeasureFunc builds the MeasureFunc for an FRich leaf: spans
// are laid out on a single row (rich text here means "mixed styling,"
// not "mixed line wrap" — matching the teacher's WriteSpans, which is
// itself single-row).
func richTextMeasureFunc(n *ContentNode) MeasureFunc {
	return func(_ *Node, availW, availH float32, widthMode, heightMode MeasureMode) (float32, float32) {
		naturalW := 0
		for _, s := range n.spans {
			naturalW += textWidth(s.Text)
		}

		var w float32
		switch widthMode {
		case MeasureModeExactly:
			w = availW
		case MeasureModeAtMost:
			w = float32(naturalW)
			if w > availW {
				w = availW
			}
		default:
			w = float32(naturalW)
		}

		h := float32(1)
		if heightMode == MeasureModeExactly {
			h = availH
		} else if heightMode == MeasureModeAtMost && h > availH {
			h = availH
		}

		return w, h
	}
}
