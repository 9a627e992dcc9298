// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import "testing"

func TestStripLayoutSingleRow(t *testing.T) {
	c := newTestControl(t)
	addTabs(c, "T0", "T1", "T2")

	// 2 runes * 7 + 2 * 6 padding + 6
	const tabLen = 32
	// 14 line + 2 * 3 padding + 4
	const extent = 24

	if got := c.metrics.RowExtent(); got != extent {
		t.Fatalf("RowExtent() = %d, want %d", got, extent)
	}
	for i := range 3 {
		want := R(stripOrigin+i*tabLen, stripOrigin, tabLen, extent)
		if got := c.metrics.TabBounds(i); got != want {
			t.Errorf("TabBounds(%d) = %v, want %v", i, got, want)
		}
	}
	if got := c.metrics.HitTest(Pt(40, 10)); got != 1 {
		t.Errorf("HitTest(40,10) = %d, want 1", got)
	}
	if got := c.metrics.HitTest(Pt(200, 10)); got != -1 {
		t.Errorf("HitTest(200,10) = %d, want -1", got)
	}
}

func TestStripLayoutImageRaisesExtent(t *testing.T) {
	c := newTestControl(t, WithMeasurer(fixedMeasurer{advance: 7, line: 8}))
	tabs := addTabs(c, "T0")
	if got := c.metrics.RowExtent(); got != 8+6+4 {
		t.Fatalf("RowExtent() = %d, want 18", got)
	}
	tabs[0].Image = solidImage(16)
	c.layoutChanged()
	if got := c.metrics.RowExtent(); got != imageSize+6+4 {
		t.Errorf("RowExtent() with image = %d, want 26", got)
	}
	// The image adds its width and a gap to the tab.
	if got := c.metrics.TabBounds(0).Width; got != 32+imageSize+4 {
		t.Errorf("tab width with image = %d, want 52", got)
	}
}

func TestMultilineRows(t *testing.T) {
	c := newTestControl(t, WithSize(100, 100), WithMultiline(true))
	addTabs(c, "T0", "T1", "T2", "T3", "T4")

	if got := c.metrics.RowCount(); got != 2 {
		t.Fatalf("RowCount() = %d, want 2", got)
	}
	tests := []struct {
		index    int
		row, col int
		first    bool
	}{
		{0, 0, 0, true},
		{1, 0, 1, false},
		{2, 0, 2, false},
		{3, 1, 0, true},
		{4, 1, 1, false},
	}
	for _, tt := range tests {
		if got := c.TabRow(tt.index); got != tt.row {
			t.Errorf("TabRow(%d) = %d, want %d", tt.index, got, tt.row)
		}
		row, col := c.TabPosition(tt.index)
		if row != tt.row || col != tt.col {
			t.Errorf("TabPosition(%d) = (%d,%d), want (%d,%d)", tt.index, row, col, tt.row, tt.col)
		}
		if got := c.IsFirstTabInRow(tt.index); got != tt.first {
			t.Errorf("IsFirstTabInRow(%d) = %v, want %v", tt.index, got, tt.first)
		}
	}

	// 5 + 24 * 2
	if got, want := c.DisplayRect(), R(4, 53, 92, 43); got != want {
		t.Errorf("DisplayRect() = %v, want %v", got, want)
	}
}

func TestTabRowBottomAndRight(t *testing.T) {
	for _, a := range []Alignment{Bottom, Right} {
		c := newTestControl(t, WithSize(100, 100), WithMultiline(true), WithAlignment(a))
		addTabs(c, "T0", "T1", "T2", "T3", "T4")
		if got := c.TabRow(0); got != 0 {
			t.Errorf("%v: TabRow(0) = %d, want 0", a, got)
		}
		if got := c.TabRow(4); got != 1 {
			t.Errorf("%v: TabRow(4) = %d, want 1", a, got)
		}
	}
}

func TestVerticalStripsWrap(t *testing.T) {
	c := newTestControl(t, WithSize(200, 80), WithAlignment(Left))
	addTabs(c, "T0", "T1", "T2")
	if got := c.metrics.RowCount(); got != 2 {
		t.Errorf("RowCount() = %d, want 2", got)
	}
	if c.CanScroll() {
		t.Error("vertical strip reports scrolling")
	}
}

func TestDisplayRect(t *testing.T) {
	tests := []struct {
		style Style
		align Alignment
		want  Rect
	}{
		{StyleDefault, Top, R(4, 29, 392, 67)},
		{StyleDefault, Bottom, R(4, 4, 392, 67)},
		{StyleDefault, Left, R(29, 4, 367, 92)},
		{StyleDefault, Right, R(4, 4, 367, 92)},
		{StyleNone, Top, R(0, 0, 400, 100)},
	}
	for _, tt := range tests {
		c := newTestControl(t, WithStyle(tt.style), WithAlignment(tt.align))
		addTabs(c, "T0")
		if got := c.DisplayRect(); got != tt.want {
			t.Errorf("%v/%v: DisplayRect() = %v, want %v", tt.style, tt.align, got, tt.want)
		}
	}
}

func TestTabRectRaisesSelected(t *testing.T) {
	c := newTestControl(t)
	addTabs(c, "T0", "T1", "T2")
	c.SelectIndex(1)
	p := c.Provider()

	// Host bounds (34,2,32,24) grown by 2 towards the page.
	if got, want := p.TabRect(1), R(33, 1, 34, 27); got != want {
		t.Errorf("selected TabRect(1) = %v, want %v", got, want)
	}
	if got, want := p.TabRect(2), R(66, 3, 32, 25); got != want {
		t.Errorf("TabRect(2) = %v, want %v", got, want)
	}
	if got := p.TabRect(7); !got.Empty() {
		t.Errorf("TabRect(7) = %v, want empty", got)
	}
}

func TestTabRectOverlap(t *testing.T) {
	c := newTestControl(t, WithStyle(StyleRounded))
	addTabs(c, "T0", "T1")
	p := c.Provider()
	if err := p.SetOverlap(5); err != nil {
		t.Fatal(err)
	}
	if got := p.TabRect(1); got.X != c.metrics.TabBounds(1).X-5 {
		t.Errorf("TabRect(1).X = %d, want host X - 5", got.X)
	}
	// The first tab is flush with the page instead.
	if got := p.TabRect(0); got.X != c.PageBounds().X {
		t.Errorf("TabRect(0).X = %d, want page X %d", got.X, c.PageBounds().X)
	}
}

func TestRightToLeftMirrorsTabs(t *testing.T) {
	c := newTestControl(t, WithRightToLeft(true), WithStyle(StyleRounded))
	addTabs(c, "T0", "T1")
	r := c.Provider().TabRect(0)
	host := c.metrics.TabBounds(0)
	if r.X != c.width-host.Right() {
		t.Errorf("mirrored TabRect(0) = %v, want left edge %d", r, c.width-host.Right())
	}

	// Hit testing flips the pointer back.
	c.MouseMove(center(r), false)
	if got := c.ActiveIndex(); got != 0 {
		t.Errorf("ActiveIndex() over mirrored tab 0 = %d", got)
	}
}

func TestImageAlignTextAvoidance(t *testing.T) {
	c := newTestControl(t)
	tabs := addTabs(c, "Docs")
	tabs[0].Image = solidImage(16)
	c.layoutChanged()

	img := c.TabImageRect(0)
	text := c.TabTextRect(0)
	if text.X < img.Right() {
		t.Errorf("text %v overlaps leading image %v", text, img)
	}

	c.Provider().SetImageAlign(ImageAlignRight)
	img = c.TabImageRect(0)
	text = c.TabTextRect(0)
	if text.Right() > img.X {
		t.Errorf("text %v overlaps trailing image %v", text, img)
	}
}

func TestCloserTrailingAndMirrored(t *testing.T) {
	c := newTestControl(t, WithStyle(StyleChrome))
	addTabs(c, "Docs")
	cr := c.TabCloserRect(0)
	tab := c.Provider().TabRect(0)
	if cr.X < tab.X+tab.Width/2 {
		t.Errorf("closer %v not in the trailing half of %v", cr, tab)
	}
	if text := c.TabTextRect(0); text.Right() > cr.X {
		t.Errorf("text %v overlaps closer %v", text, cr)
	}

	c.SetRightToLeft(true)
	cr = c.TabCloserRect(0)
	tab = c.Provider().TabRect(0)
	if cr.Right() > tab.X+tab.Width/2 {
		t.Errorf("mirrored closer %v not in the leading half of %v", cr, tab)
	}
}

func TestRectsOutOfRange(t *testing.T) {
	c := newTestControl(t, WithStyle(StyleChrome))
	addTabs(c, "Docs")
	for _, i := range []int{-1, 1, 5} {
		if r := c.Provider().TabRect(i); r != (Rect{}) {
			t.Errorf("TabRect(%d) = %v, want empty", i, r)
		}
		if r := c.TabTextRect(i); r != (Rect{}) {
			t.Errorf("TabTextRect(%d) = %v, want empty", i, r)
		}
		if r := c.TabImageRect(i); r != (Rect{}) {
			t.Errorf("TabImageRect(%d) = %v, want empty", i, r)
		}
		if r := c.TabCloserRect(i); r != (Rect{}) {
			t.Errorf("TabCloserRect(%d) = %v, want empty", i, r)
		}
	}
}
