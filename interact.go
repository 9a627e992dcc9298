// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import "unicode"

// MousePosition returns the last pointer position reported by the host,
// in control coordinates. It is far outside the control while the
// pointer is elsewhere.
func (c *Control) MousePosition() Point { return c.mouse }

// ActiveIndex returns the enabled tab under the pointer, or -1.
func (c *Control) ActiveIndex() int {
	return c.hitTest(c.mouse)
}

// ActiveTab returns the enabled tab under the pointer, or nil.
func (c *Control) ActiveTab() *Tab { return c.Tab(c.ActiveIndex()) }

// hitTest maps pt to the enabled tab under it. Metrics work in
// left-to-right coordinates, so mirrored points are flipped first.
func (c *Control) hitTest(pt Point) int {
	if c.rtl {
		pt.X = c.width - 1 - pt.X
	}
	i := c.metrics.HitTest(pt)
	if i < 0 || i >= len(c.tabs) || !c.tabs[i].Enabled() {
		return -1
	}
	return i
}

// MouseMove records the pointer position. Hot tracking and closer hover
// repaint the control; with primary held it may start a tab drag.
func (c *Control) MouseMove(pt Point, primary bool) {
	c.mouse = pt
	hot := c.ActiveIndex()
	switch {
	case hot != c.hot:
		c.hot = hot
		if c.provider.HotTrack() || c.provider.ShowCloser() {
			c.Invalidate()
		}
	case hot >= 0 && c.provider.ShowCloser():
		if c.provider.TabRect(hot).Contains(pt) {
			c.Invalidate()
		}
	}
	if c.allowDrop && primary {
		c.startDrag()
	}
}

// MouseLeave tells the control the pointer left it.
func (c *Control) MouseLeave() {
	c.mouse = offscreen
	if c.hot >= 0 {
		c.hot = -1
		c.Invalidate()
	}
}

// MouseDown handles a button press. A primary press selects the tab
// under the pointer and, when drops are allowed, arms drag detection.
func (c *Control) MouseDown(pt Point, primary bool) {
	c.mouse = pt
	if !primary {
		return
	}
	if c.allowDrop {
		start := pt
		c.dragStart = &start
	}
	if i := c.ActiveIndex(); i >= 0 {
		c.SelectIndex(i)
	}
}

// MouseUp handles a button release.
func (c *Control) MouseUp(pt Point) {
	c.mouse = pt
	if c.allowDrop {
		c.dragStart = nil
	}
}

// Click handles a completed click at pt. A click on a tab image raises
// the image click event when a handler is set; a click on a closer
// raises TabClosing and closes the tab unless cancelled; any other click
// raises the click event.
func (c *Control) Click(pt Point) {
	c.mouse = pt
	index := c.ActiveIndex()
	if index < 0 {
		c.click(index)
		return
	}
	t := c.tabs[index]

	if c.onTabImageClick != nil && t.Image != nil && c.TabImageRect(index).Contains(pt) {
		c.onTabImageClick(TabEvent{Tab: t, Index: index})
		c.click(index)
		return
	}
	if c.provider.ShowCloser() && c.TabCloserRect(index).Contains(pt) {
		c.closeTab(t, index)
		return
	}
	c.click(index)
}

func (c *Control) click(index int) {
	if c.onClick != nil {
		c.onClick(TabEvent{Tab: c.Tab(index), Index: index})
	}
}

func (c *Control) closeTab(t *Tab, index int) {
	ev := &TabCancelEvent{Tab: t, Index: index}
	if c.onTabClosing != nil {
		c.onTabClosing(ev)
	}
	if ev.Cancel {
		Logger().Debug("tabstrip: close cancelled", "key", t.Key)
		return
	}
	Logger().Debug("tabstrip: tab closed", "key", t.Key, "index", index)
	c.RemoveTab(t)
	t.disposed = true
}

// ProcessMnemonic selects the first tab whose caption marks r as its
// mnemonic. It reports whether a tab matched.
func (c *Control) ProcessMnemonic(r rune) bool {
	r = unicode.ToUpper(r)
	for _, t := range c.tabs {
		if _, key, _ := mnemonic(t.Text); key != 0 && unicode.ToUpper(key) == r {
			c.SelectTab(t)
			return true
		}
	}
	return false
}

// ScrollOffset returns the index of the first tab shown by a scrolling
// strip.
func (c *Control) ScrollOffset() int { return c.scroll }

// CanScroll reports whether the strip is single-line and too long for
// the control.
func (c *Control) CanScroll() bool {
	if c.layout == nil {
		return false
	}
	ok, _ := c.layout.scrollable()
	return ok
}

// ScrollTo makes first the leading visible tab of a scrolling strip and
// raises HScroll. It reports whether the offset changed.
func (c *Control) ScrollTo(first int) bool {
	if c.layout == nil {
		return false
	}
	ok, limit := c.layout.scrollable()
	if !ok {
		return false
	}
	first = max(0, min(first, limit))
	if first == c.scroll {
		return false
	}
	old := c.scroll
	c.scroll = first
	c.layout.invalidate()
	c.Invalidate()
	if c.onHScroll != nil {
		c.onHScroll(ScrollEvent{OldValue: old, NewValue: first})
	}
	return true
}

// scrollIntoView scrolls a single-line strip until the tab at index is
// fully shown, or as far as the strip allows.
func (c *Control) scrollIntoView(index int) {
	if !c.CanScroll() {
		return
	}
	if index < c.scroll {
		c.ScrollTo(index)
		return
	}
	for c.metrics.TabBounds(index).Right() > c.width-stripOrigin {
		if !c.ScrollTo(c.scroll + 1) {
			return
		}
	}
}
