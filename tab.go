// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"image"
	"strings"

	"github.com/google/uuid"
)

// Tab is a single entry of the strip. The control owns only its position
// and display metadata; the host owns whatever page the tab stands for.
type Tab struct {
	// Key identifies the tab for lookups; compared without case.
	Key string

	// Text is the caption. An ampersand marks the mnemonic character and
	// "&&" renders a literal ampersand.
	Text string

	// Image is drawn at 16x16 inside the tab when non-nil.
	Image image.Image

	// ToolTip is informational text for hosts that show tooltips.
	ToolTip string

	disabled bool
	owner    *Control
	disposed bool
}

// NewTab creates an enabled tab with a generated key.
func NewTab(text string) *Tab {
	return &Tab{Key: uuid.NewString(), Text: text}
}

// NewTabWithKey creates an enabled tab with the given key. An empty key
// is replaced by a generated one.
func NewTabWithKey(key, text string) *Tab {
	if key == "" {
		key = uuid.NewString()
	}
	return &Tab{Key: key, Text: text}
}

// Enabled reports whether the tab can be selected.
func (t *Tab) Enabled() bool { return !t.disabled }

// SetEnabled enables or disables the tab and repaints its owner.
func (t *Tab) SetEnabled(enabled bool) {
	if t.disabled == !enabled {
		return
	}
	t.disabled = !enabled
	if t.owner != nil {
		t.owner.Invalidate()
	}
}

// Disposed reports whether the tab was closed through its closer button.
func (t *Tab) Disposed() bool { return t.disposed }

// Owner returns the control currently showing the tab, or nil.
func (t *Tab) Owner() *Control { return t.owner }

func (t *Tab) hasKey(key string) bool {
	return strings.EqualFold(t.Key, key)
}

// mnemonic returns the display text with prefix markers removed, the
// mnemonic rune (zero if none) and its rune offset in the display text.
func mnemonic(s string) (display string, key rune, at int) {
	if !strings.ContainsRune(s, '&') {
		return s, 0, -1
	}
	var sb strings.Builder
	runes := []rune(s)
	at = -1
	n := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '&' && i+1 < len(runes) {
			i++
			r = runes[i]
			if r != '&' && key == 0 {
				key, at = r, n
			}
		}
		sb.WriteRune(r)
		n++
	}
	return sb.String(), key, at
}
