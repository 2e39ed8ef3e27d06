package flex

import (
	"math"
	"testing"
)

func TestValueVariants(t *testing.T) {
	if !Auto().IsAuto() {
		t.Error("Auto() should report IsAuto")
	}
	if !Undefined().IsUndefined() {
		t.Error("Undefined() should report IsUndefined")
	}
	if !Point(10).IsDefined() || !Point(10).IsPoint() {
		t.Error("Point(10) should be defined and IsPoint")
	}
	if !Percent(50).IsDefined() || !Percent(50).IsPercent() {
		t.Error("Percent(50) should be defined and IsPercent")
	}
	if Auto().IsDefined() || Undefined().IsDefined() {
		t.Error("Auto/Undefined must not report IsDefined")
	}
}

func TestValueResolve(t *testing.T) {
	if got := Point(42).Resolve(100); got != 42 {
		t.Errorf("Point(42).Resolve(100) = %v, want 42", got)
	}
	if got := Percent(50).Resolve(200); got != 100 {
		t.Errorf("Percent(50).Resolve(200) = %v, want 100", got)
	}
	if got := Percent(50).Resolve(float32(math.NaN())); !isUndefinedFloat(got) {
		t.Errorf("Percent against an undefined reference must resolve to NaN, got %v", got)
	}
	if got := Auto().Resolve(100); !isUndefinedFloat(got) {
		t.Errorf("Auto().Resolve must be NaN, got %v", got)
	}
	if got := Undefined().Resolve(100); !isUndefinedFloat(got) {
		t.Errorf("Undefined().Resolve must be NaN, got %v", got)
	}
}

func TestValueResolveOr(t *testing.T) {
	if got := Auto().ResolveOr(100, 7); got != 7 {
		t.Errorf("Auto().ResolveOr(100, 7) = %v, want 7", got)
	}
	if got := Point(3).ResolveOr(100, 7); got != 3 {
		t.Errorf("Point(3).ResolveOr(100, 7) = %v, want 3", got)
	}
}

func TestNaNSafeEqual(t *testing.T) {
	nan := float32(math.NaN())
	if !isNaNSafeEqual(nan, nan) {
		t.Error("NaN must compare equal to NaN under isNaNSafeEqual")
	}
	if !isNaNSafeEqual(5, 5) {
		t.Error("5 must compare equal to 5")
	}
	if isNaNSafeEqual(5, nan) || isNaNSafeEqual(nan, 5) {
		t.Error("NaN must not compare equal to a defined value")
	}
}

func TestEdgesGetFallbackChain(t *testing.T) {
	e := NewEdges()
	e[EdgeAll] = Point(1)
	if got := e.Get(EdgeTop, DirectionLTR); got.Resolve(0) != 1 {
		t.Errorf("EdgeAll fallback: Get(EdgeTop) = %v, want 1", got.Resolve(0))
	}

	e = NewEdges()
	e[EdgeHorizontal] = Point(2)
	e[EdgeAll] = Point(1)
	if got := e.Get(EdgeLeft, DirectionLTR); got.Resolve(0) != 2 {
		t.Errorf("axis overrides all: Get(EdgeLeft) = %v, want 2", got.Resolve(0))
	}

	e = NewEdges()
	e[EdgeStart] = Point(3)
	e[EdgeHorizontal] = Point(2)
	if got := e.Get(EdgeLeft, DirectionLTR); got.Resolve(0) != 3 {
		t.Errorf("logical overrides axis in LTR: Get(EdgeLeft) = %v, want 3", got.Resolve(0))
	}
	if got := e.Get(EdgeRight, DirectionRTL); got.Resolve(0) != 3 {
		t.Errorf("EdgeStart maps to EdgeRight under RTL: got %v, want 3", got.Resolve(0))
	}

	e = NewEdges()
	e[EdgeLeft] = Point(9)
	e[EdgeStart] = Point(3)
	if got := e.Get(EdgeLeft, DirectionLTR); got.Resolve(0) != 9 {
		t.Errorf("physical beats logical: Get(EdgeLeft) = %v, want 9", got.Resolve(0))
	}

	e = NewEdges()
	e[EdgeLeft] = Auto()
	if got := e.Get(EdgeLeft, DirectionLTR); !got.IsAuto() {
		t.Error("an explicit Auto on the physical edge itself must survive the chain")
	}

	e = NewEdges()
	if got := e.Get(EdgeTop, DirectionLTR); !got.IsUndefined() {
		t.Error("nothing defined anywhere must resolve to Undefined")
	}
}
