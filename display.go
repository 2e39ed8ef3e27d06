package flex

import "strings"

// display.go holds small pure-string widget renderers used by the demo
// content nodes in flexlayout.go — leaders, LEDs, bars, meters — adapted
// from the teacher's display.go to the CellStyle rename.

// LeaderStr creates a dot-leader string: "LABEL.......VALUE".
func LeaderStr(label, value string, width int) string {
	dots := width - len(label) - len(value)
	if dots < 1 {
		dots = 1
	}
	return label + strings.Repeat(".", dots) + value
}

// LED returns a single LED indicator: ● (on) or ○ (off).
func LED(on bool) string {
	if on {
		return "●"
	}
	return "○"
}

// LEDs returns a run of LED indicators.
func LEDs(states ...bool) string {
	var b strings.Builder
	for _, on := range states {
		b.WriteString(LED(on))
	}
	return b.String()
}

// Bar returns a segmented bar: ▮▮▮▯▯.
func Bar(filled, total int) string {
	var b strings.Builder
	for i := 0; i < total; i++ {
		if i < filled {
			b.WriteRune('▮')
		} else {
			b.WriteRune('▯')
		}
	}
	return b.String()
}

// Meter returns an analog-style meter: ├──●──────┤.
func Meter(value, max, width int) string {
	if width < 3 {
		width = 3
	}
	inner := width - 2
	pos := 0
	if max > 0 {
		pos = (value * (inner - 1)) / max
	}
	if pos >= inner {
		pos = inner - 1
	}
	if pos < 0 {
		pos = 0
	}

	var b strings.Builder
	b.WriteRune('├')
	for i := 0; i < inner; i++ {
		if i == pos {
			b.WriteRune('●')
		} else {
			b.WriteRune('─')
		}
	}
	b.WriteRune('┤')
	return b.String()
}
