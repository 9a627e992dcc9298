// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

// DragData is the payload of a tab drag.
type DragData struct {
	Tab    *Tab
	Source *Control
}

// DropEffect is the answer to a drag hovering over a control.
type DropEffect int

const (
	DropNone DropEffect = iota
	DropMove
)

func (e DropEffect) String() string {
	if e == DropMove {
		return "Move"
	}
	return "None"
}

// draggedTab extracts the tab from a drag payload. Anything but a tab
// payload yields nil.
func draggedTab(data any) *Tab {
	switch d := data.(type) {
	case DragData:
		return d.Tab
	case *DragData:
		if d != nil {
			return d.Tab
		}
	case *Tab:
		return d
	}
	return nil
}

// startDrag hands the selected tab to the host once the pointer has
// left the drag rectangle around the press point.
func (c *Control) startDrag() {
	if c.dragStart == nil {
		return
	}
	t := c.SelectedTab()
	if t == nil {
		return
	}
	area := R(c.dragStart.X, c.dragStart.Y, 0, 0).Inflate(c.dragSize.Width, c.dragSize.Height)
	if area.Contains(c.mouse) {
		return
	}
	c.dragStart = nil
	Logger().Debug("tabstrip: drag started", "key", t.Key)
	if c.onDragStart != nil {
		c.onDragStart(DragData{Tab: t, Source: c})
	}
}

// DragOver reports whether data can be dropped here.
func (c *Control) DragOver(data any) DropEffect {
	if draggedTab(data) != nil {
		return DropMove
	}
	return DropNone
}

// Drop moves the dragged tab to the position under pt and selects it.
// The tab may come from another control; it is removed from there
// before it is inserted here. Dropping a tab onto itself and dropping
// anything that is not a tab do nothing.
func (c *Control) Drop(data any, pt Point) {
	t := draggedTab(data)
	if t == nil {
		return
	}
	c.mouse = pt
	if c.ActiveTab() == t {
		return
	}

	// The insert point is taken before removal; tab widths differ, so the
	// tab under pt may change once the dragged tab is gone.
	insert := c.ActiveIndex()
	if t.owner == c && c.IndexOf(t) < insert {
		insert--
	}
	insert = max(insert, 0)
	Logger().Debug("tabstrip: drop", "key", t.Key, "index", insert)

	if t.owner != nil {
		t.owner.RemoveTab(t)
	}
	c.InsertTab(insert, t)
	c.SelectTab(t)
}
