// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"errors"
	"slices"
	"testing"
)

func TestNewRejectsInvalidOptions(t *testing.T) {
	if _, err := New(WithStyle(Style(99)), WithMeasurer(fixedMeasurer{})); !errors.Is(err, ErrUnknownName) {
		t.Errorf("New(style 99) error = %v, want ErrUnknownName", err)
	}
	if _, err := New(WithAlignment(Alignment(7)), WithMeasurer(fixedMeasurer{})); !errors.Is(err, ErrUnknownName) {
		t.Errorf("New(alignment 7) error = %v, want ErrUnknownName", err)
	}
	if _, err := New(WithCanvasBackend("plotter"), WithMeasurer(fixedMeasurer{})); err == nil {
		t.Error("New(unknown backend) succeeded")
	}
}

func TestAddInsertRemove(t *testing.T) {
	c := newTestControl(t)
	if c.SelectedIndex() != -1 {
		t.Fatalf("empty control selects %d", c.SelectedIndex())
	}
	tabs := addTabs(c, "A", "B", "C")
	if c.SelectedIndex() != 0 {
		t.Errorf("first tab not selected, got %d", c.SelectedIndex())
	}
	if tabs[1].Owner() != c {
		t.Error("Owner() not set")
	}

	d := NewTabWithKey("D", "D")
	c.InsertTab(1, d)
	if got := keys(c.Tabs()); !slices.Equal(got, []string{"A", "D", "B", "C"}) {
		t.Errorf("after insert: %v", got)
	}

	c.SelectTab(tabs[2])
	if !c.RemoveTab(d) {
		t.Fatal("RemoveTab(D) = false")
	}
	if c.SelectedTab() != tabs[2] {
		t.Errorf("selection moved off C: %v", c.SelectedTab())
	}
	if d.Owner() != nil {
		t.Error("removed tab keeps its owner")
	}
	if c.RemoveTab(d) {
		t.Error("second RemoveTab(D) = true")
	}

	if got, err := c.TabByKey("b"); err != nil || got != tabs[1] {
		t.Errorf("TabByKey(b) = %v, %v", got, err)
	}
	if _, err := c.TabByKey("zz"); !errors.Is(err, ErrTabNotFound) {
		t.Errorf("TabByKey(zz) error = %v, want ErrTabNotFound", err)
	}
}

func TestRemoveSelectedSelectsNeighbour(t *testing.T) {
	c := newTestControl(t)
	tabs := addTabs(c, "A", "B", "C")
	c.SelectIndex(2)

	var changed []int
	c.OnSelectedIndexChanged(func(e TabEvent) { changed = append(changed, e.Index) })

	c.RemoveTab(tabs[2])
	if c.SelectedTab() != tabs[1] {
		t.Errorf("SelectedTab() = %v, want B", c.SelectedTab())
	}
	c.RemoveTab(tabs[0])
	c.RemoveTab(tabs[1])
	if c.SelectedIndex() != -1 {
		t.Errorf("SelectedIndex() = %d on empty control", c.SelectedIndex())
	}
	// Removing a tab before the selection shifts the index silently.
	if !slices.Equal(changed, []int{1, -1}) {
		t.Errorf("selection events = %v, want [1 -1]", changed)
	}
}

func TestTabMovesBetweenControls(t *testing.T) {
	a := newTestControl(t)
	b := newTestControl(t)
	tabs := addTabs(a, "A", "B")
	b.AddTab(tabs[0])
	if a.TabCount() != 1 || b.TabCount() != 1 || tabs[0].Owner() != b {
		t.Errorf("counts a=%d b=%d owner=%p", a.TabCount(), b.TabCount(), tabs[0].Owner())
	}
}

func TestSelectingRefusesDisabled(t *testing.T) {
	c := newTestControl(t)
	tabs := addTabs(c, "A", "B")
	tabs[1].SetEnabled(false)

	if c.SelectIndex(1) {
		t.Error("disabled tab selected")
	}
	if c.SelectedIndex() != 0 {
		t.Errorf("SelectedIndex() = %d, want 0", c.SelectedIndex())
	}

	c.OnSelecting(func(e *TabCancelEvent) { e.Cancel = false })
	if !c.SelectIndex(1) {
		t.Error("handler could not override the refusal")
	}

	c.OnSelecting(func(e *TabCancelEvent) { e.Cancel = true })
	if c.SelectIndex(0) {
		t.Error("handler could not cancel selection")
	}
}

func TestActiveIndexSkipsDisabled(t *testing.T) {
	c := newTestControl(t)
	tabs := addTabs(c, "T0", "T1")
	pt := center(c.metrics.TabBounds(1))

	c.MouseMove(pt, false)
	if got := c.ActiveIndex(); got != 1 {
		t.Fatalf("ActiveIndex() = %d, want 1", got)
	}
	tabs[1].SetEnabled(false)
	if got := c.ActiveIndex(); got != -1 {
		t.Errorf("ActiveIndex() over disabled tab = %d, want -1", got)
	}

	c.MouseLeave()
	if got := c.ActiveIndex(); got != -1 {
		t.Errorf("ActiveIndex() after leave = %d, want -1", got)
	}
}

func TestHotTrackInvalidates(t *testing.T) {
	c := newTestControl(t)
	addTabs(c, "T0", "T1")
	c.dirty = false
	c.MouseMove(center(c.metrics.TabBounds(1)), false)
	if !c.NeedsPaint() {
		t.Error("moving onto a tab did not invalidate")
	}
	c.dirty = false
	c.MouseMove(Pt(300, 60), false)
	if !c.NeedsPaint() {
		t.Error("leaving a tab did not invalidate")
	}
}

func TestMouseDownSelects(t *testing.T) {
	c := newTestControl(t)
	tabs := addTabs(c, "T0", "T1")
	c.MouseDown(center(c.metrics.TabBounds(1)), true)
	if c.SelectedTab() != tabs[1] {
		t.Errorf("SelectedTab() = %v, want T1", c.SelectedTab())
	}
}

func TestCloserClick(t *testing.T) {
	c := newTestControl(t, WithStyle(StyleChrome))
	tabs := addTabs(c, "One", "Two", "Three")

	var closing []int
	cancel := true
	c.OnTabClosing(func(e *TabCancelEvent) {
		closing = append(closing, e.Index)
		e.Cancel = cancel
	})
	clicked := 0
	c.OnClick(func(TabEvent) { clicked++ })

	pt := center(c.TabCloserRect(1))
	c.Click(pt)
	if c.TabCount() != 3 || tabs[1].Disposed() {
		t.Fatalf("cancelled close removed the tab")
	}

	cancel = false
	c.Click(pt)
	if c.IndexOf(tabs[1]) != -1 || !tabs[1].Disposed() {
		t.Errorf("close did not remove and dispose the tab")
	}
	if !slices.Equal(closing, []int{1, 1}) {
		t.Errorf("closing events = %v", closing)
	}
	if clicked != 0 {
		t.Errorf("closer click raised %d click events", clicked)
	}

	c.Click(center(c.TabTextRect(0)))
	if clicked != 1 {
		t.Errorf("text click raised %d click events, want 1", clicked)
	}
}

func TestImageClick(t *testing.T) {
	c := newTestControl(t)
	tabs := addTabs(c, "Docs")
	tabs[0].Image = solidImage(16)
	c.layoutChanged()
	pt := center(c.TabImageRect(0))

	clicks := 0
	c.OnClick(func(TabEvent) { clicks++ })
	c.Click(pt)
	if clicks != 1 {
		t.Fatalf("image click without handler raised %d clicks", clicks)
	}

	var got *Tab
	c.OnTabImageClick(func(e TabEvent) { got = e.Tab })
	c.Click(pt)
	if got != tabs[0] {
		t.Errorf("image click event tab = %v", got)
	}
	if clicks != 2 {
		t.Errorf("image click did not also raise a click")
	}
}

func TestProcessMnemonic(t *testing.T) {
	c := newTestControl(t)
	tabs := addTabs(c, "&File", "E&dit", "Fish && Chips")

	if !c.ProcessMnemonic('d') {
		t.Fatal("ProcessMnemonic('d') = false")
	}
	if c.SelectedTab() != tabs[1] {
		t.Errorf("SelectedTab() = %v, want Edit", c.SelectedTab())
	}
	if c.ProcessMnemonic('c') {
		t.Error("escaped ampersand acted as a mnemonic")
	}
	if !c.ProcessMnemonic('F') || c.SelectedTab() != tabs[0] {
		t.Error("ProcessMnemonic('F') did not select File")
	}
}

func TestMnemonic(t *testing.T) {
	tests := []struct {
		in      string
		display string
		key     rune
		at      int
	}{
		{"Plain", "Plain", 0, -1},
		{"&Open", "Open", 'O', 0},
		{"Save &As", "Save As", 'A', 5},
		{"R&&D", "R&D", 0, -1},
		{"R&&&D", "R&D", 'D', 2},
		{"Trailing&", "Trailing&", 0, -1},
	}
	for _, tt := range tests {
		display, key, at := mnemonic(tt.in)
		if display != tt.display || key != tt.key || at != tt.at {
			t.Errorf("mnemonic(%q) = (%q, %q, %d), want (%q, %q, %d)",
				tt.in, display, key, at, tt.display, tt.key, tt.at)
		}
	}
}

func TestScrollSingleLine(t *testing.T) {
	c := newTestControl(t, WithSize(100, 100))
	addTabs(c, "T0", "T1", "T2", "T3", "T4")
	if !c.CanScroll() {
		t.Fatal("CanScroll() = false for an overflowing strip")
	}

	var events []ScrollEvent
	c.OnHScroll(func(e ScrollEvent) { events = append(events, e) })

	if !c.ScrollTo(1) {
		t.Fatal("ScrollTo(1) = false")
	}
	if got := c.metrics.TabBounds(1).X; got != stripOrigin {
		t.Errorf("TabBounds(1).X = %d, want %d", got, stripOrigin)
	}
	if got := c.metrics.TabBounds(0).X; got != stripOrigin-32 {
		t.Errorf("TabBounds(0).X = %d, want %d", got, stripOrigin-32)
	}

	// Five tabs of 32 in 96 pixels: two can scroll off.
	c.ScrollTo(9)
	if c.ScrollOffset() != 2 {
		t.Errorf("ScrollOffset() = %d, want 2", c.ScrollOffset())
	}
	if c.ScrollTo(2) {
		t.Error("ScrollTo(current) reported a change")
	}
	want := []ScrollEvent{{0, 1}, {1, 2}}
	if !slices.Equal(events, want) {
		t.Errorf("HScroll events = %v, want %v", events, want)
	}

	c.SelectIndex(1)
	if c.ScrollOffset() != 1 {
		t.Errorf("selecting tab 1 left offset %d, want 1", c.ScrollOffset())
	}
	c.SelectIndex(4)
	if c.ScrollOffset() != 2 {
		t.Errorf("selecting tab 4 left offset %d, want 2", c.ScrollOffset())
	}

	c.SetMultiline(true)
	if c.CanScroll() || c.ScrollOffset() != 0 {
		t.Error("multiline strip still scrolls")
	}
}

func TestCustomMetrics(t *testing.T) {
	m := &gridMetrics{size: Size{Width: 50, Height: 20}}
	c, err := New(WithMetrics(m), WithSize(300, 80), WithCanvasFactory(recorderFactory))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	addTabs(c, "A", "B")
	m.count = 2

	if got := c.DisplayRect(); got != R(4, 25, 292, 51) {
		t.Errorf("DisplayRect() = %v, want (4,25 292x51)", got)
	}
	c.MouseMove(Pt(60, 10), false)
	if c.ActiveIndex() != 1 {
		t.Errorf("ActiveIndex() = %d, want 1", c.ActiveIndex())
	}
	if c.CanScroll() || c.ScrollTo(1) {
		t.Error("custom metrics report scrolling")
	}
}

// gridMetrics lays tabs of a fixed size in one row.
type gridMetrics struct {
	size  Size
	count int
}

func (m *gridMetrics) TabBounds(i int) Rect {
	return R(stripOrigin+i*m.size.Width, stripOrigin, m.size.Width, m.size.Height)
}
func (m *gridMetrics) RowCount() int  { return 1 }
func (m *gridMetrics) RowExtent() int { return m.size.Height }
func (m *gridMetrics) HitTest(pt Point) int {
	for i := range m.count {
		if m.TabBounds(i).Contains(pt) {
			return i
		}
	}
	return -1
}
