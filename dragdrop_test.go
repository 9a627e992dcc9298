// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"slices"
	"testing"
)

func TestDropReordersWithinControl(t *testing.T) {
	c := newTestControl(t, WithAllowDrop(true))
	tabs := addTabs(c, "T0", "T1", "T2", "T3", "T4")

	// Tabs are 32 pixels wide from x=2, so x=50 is over T1.
	c.Drop(DragData{Tab: tabs[3], Source: c}, Pt(50, 12))
	if got := keys(c.Tabs()); !slices.Equal(got, []string{"T0", "T3", "T1", "T2", "T4"}) {
		t.Errorf("after drop = %v", got)
	}
	if c.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex() = %d, want 1", c.SelectedIndex())
	}

	// Dragging rightwards lands before the target once the source is gone.
	c.Drop(tabs[0], Pt(114, 12))
	if got := keys(c.Tabs()); !slices.Equal(got, []string{"T3", "T1", "T0", "T2", "T4"}) {
		t.Errorf("after second drop = %v", got)
	}
}

func TestDropOntoItselfIsNoop(t *testing.T) {
	c := newTestControl(t, WithAllowDrop(true))
	tabs := addTabs(c, "T0", "T1", "T2")
	c.Drop(&DragData{Tab: tabs[1]}, Pt(50, 12))
	if got := keys(c.Tabs()); !slices.Equal(got, []string{"T0", "T1", "T2"}) {
		t.Errorf("Tabs() = %v", got)
	}
	if c.SelectedIndex() != 0 {
		t.Errorf("self drop changed selection to %d", c.SelectedIndex())
	}
}

func TestDropIgnoresForeignData(t *testing.T) {
	c := newTestControl(t, WithAllowDrop(true))
	addTabs(c, "T0")
	if got := c.DragOver("text/plain"); got != DropNone {
		t.Errorf("DragOver(string) = %v", got)
	}
	if got := c.DragOver(DragData{Tab: NewTab("x")}); got != DropMove {
		t.Errorf("DragOver(tab) = %v", got)
	}
	c.Drop("text/plain", Pt(10, 10))
	c.Drop((*DragData)(nil), Pt(10, 10))
	if c.TabCount() != 1 {
		t.Errorf("TabCount() = %d", c.TabCount())
	}
}

func TestDropAcrossControls(t *testing.T) {
	a := newTestControl(t, WithAllowDrop(true))
	b := newTestControl(t, WithAllowDrop(true))
	from := addTabs(a, "A", "B")
	addTabs(b, "X", "Y")

	// "X" spans 2..27, so x=40 is over Y.
	b.Drop(DragData{Tab: from[0], Source: a}, Pt(40, 12))
	if got := keys(b.Tabs()); !slices.Equal(got, []string{"X", "A", "Y"}) {
		t.Errorf("target tabs = %v", got)
	}
	if got := keys(a.Tabs()); !slices.Equal(got, []string{"B"}) {
		t.Errorf("source tabs = %v", got)
	}
	if b.SelectedTab() != from[0] || from[0].Owner() != b {
		t.Error("dropped tab not selected and owned by the target")
	}

	// Empty strip area inserts at the front.
	a.Drop(DragData{Tab: from[0], Source: b}, Pt(390, 80))
	if got := keys(a.Tabs()); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("drop on empty area = %v", got)
	}
}

func TestDragStartsOutsideThreshold(t *testing.T) {
	c := newTestControl(t, WithAllowDrop(true))
	tabs := addTabs(c, "T0", "T1", "T2")

	var started []DragData
	c.OnDragStart(func(d DragData) { started = append(started, d) })

	press := Pt(50, 12)
	c.MouseDown(press, true)
	c.MouseMove(Pt(53, 14), true)
	if len(started) != 0 {
		t.Fatal("drag started inside the drag rectangle")
	}
	c.MouseMove(Pt(60, 12), true)
	c.MouseMove(Pt(80, 12), true)
	if len(started) != 1 {
		t.Fatalf("drag started %d times, want 1", len(started))
	}
	if started[0].Tab != tabs[1] || started[0].Source != c {
		t.Errorf("drag data = %+v", started[0])
	}

	c.MouseUp(Pt(80, 12))
	c.MouseMove(Pt(120, 12), true)
	if len(started) != 1 {
		t.Error("drag restarted without a press")
	}
}

func TestDragNeedsAllowDrop(t *testing.T) {
	c := newTestControl(t)
	addTabs(c, "T0", "T1")
	started := false
	c.OnDragStart(func(DragData) { started = true })
	c.MouseDown(Pt(50, 12), true)
	c.MouseMove(Pt(200, 12), true)
	if started {
		t.Error("drag started with drops disabled")
	}
}

func TestDropEffectString(t *testing.T) {
	if DropMove.String() != "Move" || DropNone.String() != "None" {
		t.Errorf("String() = %q, %q", DropMove, DropNone)
	}
}
