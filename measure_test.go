package flex

import (
	"math"
	"testing"
)

func TestMeasureNodeUsesHostMeasureFunc(t *testing.T) {
	n := New()
	n.SetMeasureFunc(func(_ *Node, availW, availH float32, wMode, hMode MeasureMode) (float32, float32) {
		return 12, 4
	})

	w, h := measureNode(n, float32(math.NaN()), float32(math.NaN()), MeasureModeUndefined, MeasureModeUndefined, DirectionLTR, float32(math.NaN()), float32(math.NaN()))
	if w != 12 || h != 4 {
		t.Errorf("got (%v, %v), want (12, 4)", w, h)
	}
}

func TestMeasureNodeAddsPaddingAndBorderToHostMeasurement(t *testing.T) {
	n := New()
	n.SetPadding(EdgeAll, Point(2))
	n.SetBorder(EdgeAll, Point(1))
	n.SetMeasureFunc(func(_ *Node, _, _ float32, _, _ MeasureMode) (float32, float32) {
		return 10, 10
	})

	w, h := measureNode(n, float32(math.NaN()), float32(math.NaN()), MeasureModeUndefined, MeasureModeUndefined, DirectionLTR, float32(math.NaN()), float32(math.NaN()))
	if w != 16 || h != 16 {
		t.Errorf("got (%v, %v), want (16, 16): content 10 + 2*(padding 2 + border 1)", w, h)
	}
}

func TestMeasureNodeCachesResult(t *testing.T) {
	n := New()
	calls := 0
	n.SetMeasureFunc(func(_ *Node, _, _ float32, _, _ MeasureMode) (float32, float32) {
		calls++
		return 5, 5
	})

	measureNode(n, 100, 100, MeasureModeExactly, MeasureModeExactly, DirectionLTR, float32(math.NaN()), float32(math.NaN()))
	measureNode(n, 100, 100, MeasureModeExactly, MeasureModeExactly, DirectionLTR, float32(math.NaN()), float32(math.NaN()))

	if calls != 1 {
		t.Errorf("the measure func should run once and be served from cache on the second call, ran %d times", calls)
	}
}

func TestMeasureNodeContainerDelegatesToFullLayout(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	child := New().SetWidth(Point(30)).SetHeight(Point(20))
	root.AppendChild(child)

	w, h := measureNode(root, float32(math.NaN()), float32(math.NaN()), MeasureModeUndefined, MeasureModeUndefined, DirectionLTR, float32(math.NaN()), float32(math.NaN()))
	if w != 30 || h != 20 {
		t.Errorf("a container without a measure func should size to its children's extent, got (%v, %v), want (30, 20)", w, h)
	}
}

func TestMeasureNodeEmptyContainerSizing(t *testing.T) {
	n := New()
	w, h := measureNode(n, 50, 50, MeasureModeExactly, MeasureModeExactly, DirectionLTR, float32(math.NaN()), float32(math.NaN()))
	if w != 50 || h != 50 {
		t.Errorf("an empty container under Exactly mode should take the full available space, got (%v, %v)", w, h)
	}

	n2 := New()
	w2, h2 := measureNode(n2, float32(math.NaN()), float32(math.NaN()), MeasureModeUndefined, MeasureModeUndefined, DirectionLTR, float32(math.NaN()), float32(math.NaN()))
	if w2 != 0 || h2 != 0 {
		t.Errorf("an empty container under Undefined mode should collapse to zero, got (%v, %v)", w2, h2)
	}
}

func TestApplyAspectRatioFillsMissingDimension(t *testing.T) {
	s := DefaultStyle()
	s.AspectRatio = Point(2) // width = 2 * height
	got := applyAspectRatio(s, true, 0, 10)
	if got != 20 {
		t.Errorf("width from aspect ratio = %v, want 20 (2 * height 10)", got)
	}
}

func TestApplyAspectRatioSkippedWhenDimensionAlreadySet(t *testing.T) {
	s := DefaultStyle()
	s.AspectRatio = Point(2)
	s.Width = Point(5)
	got := applyAspectRatio(s, true, 5, 10)
	if got != 5 {
		t.Errorf("an explicit width must not be overridden by aspect ratio, got %v", got)
	}
}

func TestDeflatePreservesUndefinedAndClampsNonNegative(t *testing.T) {
	if got := deflate(float32(math.NaN()), 5); !isUndefinedFloat(got) {
		t.Error("deflate must preserve an undefined available size")
	}
	if got := deflate(3, 10); got != 0 {
		t.Errorf("deflate must clamp to zero instead of going negative, got %v", got)
	}
	if got := deflate(20, 5); got != 15 {
		t.Errorf("deflate(20, 5) = %v, want 15", got)
	}
}

func TestResolveDirectionInheritance(t *testing.T) {
	if got := resolveDirection(DirectionInherit, DirectionRTL); got != DirectionRTL {
		t.Errorf("Inherit should take the owner's direction, got %v", got)
	}
	if got := resolveDirection(DirectionInherit, DirectionInherit); got != DirectionLTR {
		t.Errorf("a root with Inherit direction defaults to LTR, got %v", got)
	}
	if got := resolveDirection(DirectionRTL, DirectionLTR); got != DirectionRTL {
		t.Errorf("an explicit direction must override the owner's, got %v", got)
	}
}
