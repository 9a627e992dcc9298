// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import "slices"

// backupTabs records the full tab order the first time it is needed.
func (c *Control) backupTabs() {
	if c.backup == nil {
		c.backup = slices.Clone(c.tabs)
		if c.backup == nil {
			c.backup = []*Tab{}
		}
	}
}

// HideTab removes t from the strip but remembers its position so
// ShowTab can put it back.
func (c *Control) HideTab(t *Tab) {
	i := c.IndexOf(t)
	if t == nil || i < 0 {
		return
	}
	c.backupTabs()
	c.removeVisible(i)
}

// HideTabAt hides the tab at index in the full tab order, hidden tabs
// included.
func (c *Control) HideTabAt(index int) {
	if c.validBackupIndex(index) {
		c.HideTab(c.backup[index])
	}
}

// HideTabByKey hides the visible tab with key.
func (c *Control) HideTabByKey(key string) {
	if t, err := c.TabByKey(key); err == nil {
		c.HideTab(t)
	}
}

// ShowTab puts a hidden tab back directly after the nearest tab that
// preceded it in the full order and is still visible. A tab that was
// first goes first again; one with no visible predecessor is appended.
// Tabs the control never held are appended.
func (c *Control) ShowTab(t *Tab) {
	if t == nil || c.IndexOf(t) >= 0 {
		return
	}
	if c.backup == nil {
		c.InsertTab(len(c.tabs), t)
		return
	}
	at := slices.Index(c.backup, t)
	if at < 0 {
		c.InsertTab(len(c.tabs), t)
		return
	}
	if t.owner != nil {
		t.owner.RemoveTab(t)
	}

	insert := len(c.tabs)
	if at == 0 {
		insert = 0
	}
	for i := at - 1; i >= 0; i-- {
		if v := c.IndexOf(c.backup[i]); v >= 0 {
			insert = v + 1
			break
		}
	}
	c.insertVisible(insert, t)
}

// ShowTabAt shows the tab at index in the full tab order.
func (c *Control) ShowTabAt(index int) {
	if c.validBackupIndex(index) {
		c.ShowTab(c.backup[index])
	}
}

// ShowTabByKey shows the hidden tab with key, ignoring case.
func (c *Control) ShowTabByKey(key string) {
	if c.backup == nil {
		return
	}
	if i := slices.IndexFunc(c.backup, func(t *Tab) bool { return t.hasKey(key) }); i >= 0 {
		c.ShowTab(c.backup[i])
	}
}

// HiddenTabs returns the hidden tabs in their original order.
func (c *Control) HiddenTabs() []*Tab {
	var out []*Tab
	for _, t := range c.backup {
		if c.IndexOf(t) < 0 {
			out = append(out, t)
		}
	}
	return out
}

// AllTabs returns every tab, hidden or not, in the full order.
func (c *Control) AllTabs() []*Tab {
	if c.backup == nil {
		return slices.Clone(c.tabs)
	}
	return slices.Clone(c.backup)
}

func (c *Control) validBackupIndex(index int) bool {
	c.backupTabs()
	return index >= 0 && index < len(c.backup)
}
