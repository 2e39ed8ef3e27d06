package flex

import "testing"

func TestCalculateRowExactChildren(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	a := New().SetWidth(Point(30)).SetHeight(Point(10))
	b := New().SetWidth(Point(40)).SetHeight(Point(10))
	root.AppendChild(a)
	root.AppendChild(b)

	CalculateLayout(root, 100, 50, DirectionLTR)

	if a.Layout.Left != 0 || a.Layout.Width != 30 {
		t.Errorf("a: Left=%v Width=%v, want 0/30", a.Layout.Left, a.Layout.Width)
	}
	if b.Layout.Left != 30 || b.Layout.Width != 40 {
		t.Errorf("b: Left=%v Width=%v, want 30/40", b.Layout.Left, b.Layout.Width)
	}
}

func TestCalculateFlexGrowDistributesRemainingSpace(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	fixed := New().SetWidth(Point(20)).SetHeight(Point(10))
	grow := New().SetHeight(Point(10)).SetFlexGrow(1)
	root.AppendChild(fixed)
	root.AppendChild(grow)

	CalculateLayout(root, 100, 50, DirectionLTR)

	if grow.Layout.Width != 80 {
		t.Errorf("grow child width = %v, want 80 (100 - 20 fixed)", grow.Layout.Width)
	}
	if grow.Layout.Left != 20 {
		t.Errorf("grow child left = %v, want 20", grow.Layout.Left)
	}
}

func TestCalculateFlexGrowSplitsProportionally(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	a := New().SetHeight(Point(10)).SetFlexGrow(1)
	b := New().SetHeight(Point(10)).SetFlexGrow(3)
	root.AppendChild(a)
	root.AppendChild(b)

	CalculateLayout(root, 100, 50, DirectionLTR)

	if a.Layout.Width != 25 {
		t.Errorf("a width = %v, want 25 (1/4 of 100)", a.Layout.Width)
	}
	if b.Layout.Width != 75 {
		t.Errorf("b width = %v, want 75 (3/4 of 100)", b.Layout.Width)
	}
}

func TestCalculateFlexShrinkClampsToMainSpace(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	a := New().SetWidth(Point(80)).SetHeight(Point(10)).SetFlexShrink(1)
	b := New().SetWidth(Point(80)).SetHeight(Point(10)).SetFlexShrink(1)
	root.AppendChild(a)
	root.AppendChild(b)

	CalculateLayout(root, 100, 50, DirectionLTR)

	total := a.Layout.Width + b.Layout.Width
	if total > 100.001 {
		t.Errorf("shrunk children must fit available space, total = %v > 100", total)
	}
	if a.Layout.Width != b.Layout.Width {
		t.Errorf("equal basis/shrink-factor children should shrink equally: a=%v b=%v", a.Layout.Width, b.Layout.Width)
	}
}

func TestCalculateColumnStacksVertically(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionColumn)
	a := New().SetWidth(Point(50)).SetHeight(Point(10))
	b := New().SetWidth(Point(50)).SetHeight(Point(15))
	root.AppendChild(a)
	root.AppendChild(b)

	CalculateLayout(root, 50, 100, DirectionLTR)

	if a.Layout.Top != 0 || b.Layout.Top != 10 {
		t.Errorf("a.Top=%v b.Top=%v, want 0/10", a.Layout.Top, b.Layout.Top)
	}
}

func TestCalculateJustifyContentCenter(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetJustifyContent(JustifyCenter)
	a := New().SetWidth(Point(20)).SetHeight(Point(10))
	root.AppendChild(a)

	CalculateLayout(root, 100, 50, DirectionLTR)

	if a.Layout.Left != 40 {
		t.Errorf("centered child Left = %v, want 40 ((100-20)/2)", a.Layout.Left)
	}
}

func TestCalculateJustifyContentSpaceBetween(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetJustifyContent(JustifySpaceBetween)
	a := New().SetWidth(Point(10)).SetHeight(Point(10))
	b := New().SetWidth(Point(10)).SetHeight(Point(10))
	c := New().SetWidth(Point(10)).SetHeight(Point(10))
	root.AppendChild(a)
	root.AppendChild(b)
	root.AppendChild(c)

	CalculateLayout(root, 100, 50, DirectionLTR)

	if a.Layout.Left != 0 {
		t.Errorf("first child Left = %v, want 0", a.Layout.Left)
	}
	if c.Layout.Left != 90 {
		t.Errorf("last child Left = %v, want 90", c.Layout.Left)
	}
	if b.Layout.Left != 45 {
		t.Errorf("middle child Left = %v, want 45 (evenly split gap)", b.Layout.Left)
	}
}

func TestCalculateAlignItemsStretch(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	// AlignItems defaults to stretch per DefaultStyle.
	a := New().SetWidth(Point(20))
	root.AppendChild(a)

	CalculateLayout(root, 100, 40, DirectionLTR)

	if a.Layout.Height != 40 {
		t.Errorf("stretched child height = %v, want 40", a.Layout.Height)
	}
}

func TestCalculatePercentWidthResolvesAgainstParent(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	a := New().SetWidthPercent(50).SetHeight(Point(10))
	root.AppendChild(a)

	CalculateLayout(root, 200, 50, DirectionLTR)

	if a.Layout.Width != 100 {
		t.Errorf("50%% of 200 = %v, want 100", a.Layout.Width)
	}
}

func TestCalculateWrapStartsNewLine(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetFlexWrap(WrapWrap)
	a := New().SetWidth(Point(60)).SetHeight(Point(10))
	b := New().SetWidth(Point(60)).SetHeight(Point(10))
	root.AppendChild(a)
	root.AppendChild(b)

	CalculateLayout(root, 100, 50, DirectionLTR)

	if a.Layout.Top != 0 {
		t.Errorf("first item should be on line 0, Top = %v", a.Layout.Top)
	}
	if b.Layout.Top != 10 {
		t.Errorf("second item should wrap onto a new line at Top = %v, want 10", b.Layout.Top)
	}
	if b.Layout.Left != 0 {
		t.Errorf("wrapped item should restart at Left = %v, want 0", b.Layout.Left)
	}
}

func TestCalculatePaddingAndBorderReduceContentBox(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetPadding(EdgeAll, Point(5))
	root.SetBorder(EdgeAll, Point(1))
	a := New().SetWidth(Point(10)).SetHeight(Point(10))
	root.AppendChild(a)

	CalculateLayout(root, 100, 50, DirectionLTR)

	if a.Layout.Left != 0 || a.Layout.Top != 0 {
		t.Errorf("child origin = (%v, %v), want (0, 0): positions are relative to the content box inside 5 padding + 1 border", a.Layout.Left, a.Layout.Top)
	}
}

func TestCalculateGapAddsSpaceBetweenItems(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetGap(GutterAll, Point(5))
	a := New().SetWidth(Point(10)).SetHeight(Point(10))
	b := New().SetWidth(Point(10)).SetHeight(Point(10))
	root.AppendChild(a)
	root.AppendChild(b)

	CalculateLayout(root, 100, 50, DirectionLTR)

	if b.Layout.Left != 15 {
		t.Errorf("second item Left = %v, want 15 (10 + 5 gap)", b.Layout.Left)
	}
}

func TestCalculateRTLMirrorsRowMainAxisPlacement(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	a := New().SetWidth(Point(30)).SetHeight(Point(10))
	b := New().SetWidth(Point(30)).SetHeight(Point(10))
	root.AppendChild(a)
	root.AppendChild(b)

	CalculateLayout(root, 100, 50, DirectionRTL)

	if a.Layout.Left != 70 {
		t.Errorf("in RTL, the first document-order child sits at the right edge: a.Left = %v, want 70", a.Layout.Left)
	}
	if b.Layout.Left != 40 {
		t.Errorf("second document-order RTL item Left = %v, want 40", b.Layout.Left)
	}
}

func TestCalculateRTLRowReverseCancelsOut(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRowReverse)
	a := New().SetWidth(Point(30)).SetHeight(Point(10))
	b := New().SetWidth(Point(30)).SetHeight(Point(10))
	root.AppendChild(a)
	root.AppendChild(b)

	CalculateLayout(root, 100, 50, DirectionRTL)

	if a.Layout.Left != 0 {
		t.Errorf("row-reverse under RTL should read left-to-right again: first item Left = %v, want 0", a.Layout.Left)
	}
	if b.Layout.Left != 30 {
		t.Errorf("second item Left = %v, want 30", b.Layout.Left)
	}
}

func TestCalculateLogicalEdgeUnderRTLResolvesToPhysicalRight(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	a := New().SetWidth(Point(30)).SetHeight(Point(10))
	a.SetPadding(EdgeStart, Point(4))
	root.AppendChild(a)

	CalculateLayout(root, 100, 50, DirectionRTL)

	if a.Layout.Padding.Get(EdgeRight) != 4 {
		t.Errorf("EdgeStart padding under RTL should resolve to the physical right edge, got Right=%v", a.Layout.Padding.Get(EdgeRight))
	}
	if a.Layout.Padding.Get(EdgeLeft) != 0 {
		t.Errorf("EdgeStart padding under RTL must not land on the physical left edge, got Left=%v", a.Layout.Padding.Get(EdgeLeft))
	}
}

func TestCalculateAbsoluteChildIgnoresFlow(t *testing.T) {
	root := New()
	root.SetFlexDirection(FlexDirectionRow)
	inflow := New().SetWidth(Point(20)).SetHeight(Point(10))
	abs := New().SetPositionType(PositionTypeAbsolute).
		SetWidth(Point(10)).SetHeight(Point(10)).
		SetPosition(EdgeLeft, Point(5)).SetPosition(EdgeTop, Point(5))
	root.AppendChild(inflow)
	root.AppendChild(abs)

	CalculateLayout(root, 100, 50, DirectionLTR)

	if inflow.Layout.Left != 0 {
		t.Errorf("the absolute sibling must not shift the in-flow child: Left = %v, want 0", inflow.Layout.Left)
	}
	if abs.Layout.Left != 5 || abs.Layout.Top != 5 {
		t.Errorf("absolute child = (%v, %v), want (5, 5) from its inset", abs.Layout.Left, abs.Layout.Top)
	}
}
