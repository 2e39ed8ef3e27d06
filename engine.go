package flex

import (
	"log"
	"os"
	"time"
)

// engine.go is component C9: the incremental-layout orchestrator sitting
// in front of calculateNodeLayout. It decides whether a previous result
// can be reused outright (fingerprint skip), otherwise runs a full
// layout pass and records a new fingerprint for next time.

// Debug timing, following the teacher's own DebugFullRedraw/DebugFlush
// init-time env toggles: set FLEX_DEBUG_TIMING=1 to log how long each
// CalculateLayout call spends, and whether it hit the fingerprint skip.
var (
	DebugTiming   bool
	lastSkipped   bool
	lastCalcTime  time.Duration
)

func init() {
	if os.Getenv("FLEX_DEBUG_TIMING") != "" {
		DebugTiming = true
	}
}

// CalculateLayout computes (or reuses) the layout of root and its entire
// subtree for the given available space and direction, the single public
// entry point named in spec.md §6. availW/availH may be NaN
// (Undefined()'s sentinel) to mean "no constraint on this axis."
func CalculateLayout(root *Node, availW, availH float32, dir Direction) {
	root.checkLive()

	var start time.Time
	if DebugTiming {
		start = time.Now()
	}

	widthMode := modeFor(availW)
	heightMode := modeFor(availH)

	if canSkip(root, availW, availH, dir) {
		if DebugTiming {
			lastSkipped = true
			lastCalcTime = time.Since(start)
			log.Printf("flex: CalculateLayout skipped (fingerprint hit) in %s", lastCalcTime)
		}
		return
	}

	// The fingerprint skip failed, so a real recompute is about to walk
	// the tree: clear root's own layout cache slots first (spec.md §4.4
	// "clear the layout cache along the entry path"). Measurement caches
	// of still-clean subtrees are left alone — only root's slots are keyed
	// off the (availW, availH, dir) this call is about to change.
	root.cache.clearLayouts()

	calculateNodeLayout(root, availW, availH, dir, widthMode, heightMode, float32NaN(), float32NaN())
	root.Layout.Left = 0
	root.Layout.Top = 0

	fp := &root.cache.print
	fp.lastAvailW, fp.lastAvailH = availW, availH
	fp.lastOffsetX, fp.lastOffsetY = 0, 0
	fp.lastDir = dir
	fp.mainSize = root.Layout.Width
	fp.crossSize = root.Layout.Height
	fp.baseSize = quickBaseSizeSum(root)
	fp.layoutValid = true

	if DebugTiming {
		lastSkipped = false
		lastCalcTime = time.Since(start)
		log.Printf("flex: CalculateLayout recomputed in %s", lastCalcTime)
	}
}

func modeFor(avail float32) MeasureMode {
	if isUndefinedFloat(avail) {
		return MeasureModeUndefined
	}
	return MeasureModeExactly
}

// canSkip reports whether the cached layout from the last CalculateLayout
// call on root is still valid: root must be clean, the fingerprint's
// recorded inputs must match exactly, and the distribution-change guard
// (a cheap re-sum of children's flex-basis) must still agree with what
// was true when the fingerprint was recorded. The guard re-sums only the
// style-declared flex-basis (FlexBasis, or the main-axis Width/Height) of
// root's immediate in-flow children, so it catches a host writing those
// style fields without routing through Node.MarkDirty. It does not detect
// a change in the content a MeasureFunc reports, nor any change deeper
// in the tree; those still need MarkDirty.
func canSkip(root *Node, availW, availH float32, dir Direction) bool {
	if root.dirty {
		return false
	}
	fp := &root.cache.print
	if !fp.layoutValid {
		return false
	}
	if !isNaNSafeEqual(fp.lastAvailW, availW) || !isNaNSafeEqual(fp.lastAvailH, availH) {
		return false
	}
	if fp.lastDir != dir {
		return false
	}
	if fp.baseSize != quickBaseSizeSum(root) {
		return false
	}
	return true
}

// quickBaseSizeSum sums the flex-basis of root's immediate in-flow
// children without running the layout algorithm, the signal the
// distribution-change guard compares across calls.
func quickBaseSizeSum(root *Node) float32 {
	mainIsRow := root.style.FlexDirection.IsRow()
	var sum float32
	for _, c := range root.children {
		if c.style.Display == DisplayNone || c.style.PositionType == PositionTypeAbsolute {
			continue
		}
		basis := resolveFlexBasis(c.style, mainIsRow, float32NaN())
		if !isUndefinedFloat(basis) {
			sum += basis
		}
	}
	return sum
}
