// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"fmt"
	"slices"

	"github.com/gogpu/gg/text"
	"github.com/gogpu/tabstrip/canvas"
)

// Control is an owner-drawn tab strip. It keeps the tab collection, the
// selection and the pointer state, computes geometry through its style
// Provider and paints itself into a host supplied canvas.
//
// A Control is not safe for concurrent use. All methods must be called
// from the host UI thread.
type Control struct {
	width, height int
	alignment     Alignment
	rtl           bool
	multiline     bool
	allowDrop     bool
	keyPreview    bool
	dragSize      Size
	theme         Theme

	face     text.Face
	measurer Measurer
	metrics  Metrics
	layout   *stripLayout // nil when the host supplies Metrics

	newCanvas  canvas.Factory
	background func(canvas.Canvas) error
	buffers    *bufferSet

	style    Style
	provider *Provider

	tabs     []*Tab
	backup   []*Tab // full order, created on first hide
	selected int
	scroll   int

	focused   bool
	mouse     Point
	hot       int
	dragStart *Point
	dirty     bool
	closed    bool

	onTabClosing           func(*TabCancelEvent)
	onTabImageClick        func(TabEvent)
	onSelecting            func(*TabCancelEvent)
	onSelectedIndexChanged func(TabEvent)
	onClick                func(TabEvent)
	onHScroll              func(ScrollEvent)
	onInvalidate           func()
	onDragStart            func(DragData)
}

// TabEvent describes a tab related notification.
type TabEvent struct {
	Tab   *Tab
	Index int
}

// TabCancelEvent is a TabEvent the handler may veto by setting Cancel.
type TabCancelEvent struct {
	Tab    *Tab
	Index  int
	Cancel bool
}

// ScrollEvent reports a change of the first visible tab of a scrolling
// strip.
type ScrollEvent struct {
	OldValue int
	NewValue int
}

// offscreen is the pointer position while the pointer is outside.
var offscreen = Point{X: -1 << 20, Y: -1 << 20}

// New creates a control with the given options.
func New(opts ...Option) (*Control, error) {
	o := defaultSettings()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.style.valid() {
		return nil, fmt.Errorf("%w: style %d", ErrUnknownName, int(o.style))
	}
	if !o.alignment.valid() {
		return nil, fmt.Errorf("%w: alignment %d", ErrUnknownName, int(o.alignment))
	}

	c := &Control{
		width:      o.width,
		height:     o.height,
		alignment:  o.alignment,
		rtl:        o.rtl,
		multiline:  o.multiline,
		allowDrop:  o.allowDrop,
		keyPreview: o.keyPreview,
		dragSize:   o.dragSize,
		theme:      o.theme,
		face:       o.face,
		measurer:   o.measurer,
		background: o.background,
		style:      o.style,
		selected:   -1,
		mouse:      offscreen,
		hot:        -1,
		dirty:      true,
	}

	c.newCanvas = o.factory
	if c.newCanvas == nil {
		f, err := canvas.Lookup(o.backend)
		if err != nil {
			return nil, fmt.Errorf("tabstrip: %w", err)
		}
		c.newCanvas = f
	}

	if c.face == nil && c.measurer == nil && o.metrics == nil {
		face, err := DefaultFace(DefaultFontSize)
		if err != nil {
			return nil, err
		}
		c.face = face
	}
	if c.measurer == nil {
		c.measurer = FaceMeasurer{Face: c.face}
	}
	if o.metrics != nil {
		c.metrics = o.metrics
	} else {
		c.layout = newStripLayout(c)
		c.metrics = c.layout
	}

	c.provider = newProvider(c, c.style)
	return c, nil
}

// Close releases the back buffers. The control must not be painted
// afterwards.
func (c *Control) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	old := c.buffers
	c.buffers = nil
	if old != nil {
		return old.close()
	}
	return nil
}

// Size returns the control size in pixels.
func (c *Control) Size() Size { return Size{Width: c.width, Height: c.height} }

// ClientRect returns the control area in local coordinates.
func (c *Control) ClientRect() Rect { return R(0, 0, c.width, c.height) }

// Resize changes the control size. The back buffers are reallocated and
// the cached background dropped. Non-positive sizes are recorded but
// keep the current buffers until the control becomes visible again.
func (c *Control) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	if width > 0 && height > 0 && !c.closed {
		c.swapBuffers(newBufferSet(c.newCanvas, width, height))
	}
	c.layoutChanged()
	c.Invalidate()
}

// Move tells the control its position within the parent changed, which
// stales the cached background.
func (c *Control) Move() {
	if c.width > 0 && c.height > 0 {
		c.dropBackground()
	}
	c.Invalidate()
}

// ParentBackgroundChanged drops the cached background so the next paint
// composes it again.
func (c *Control) ParentBackgroundChanged() {
	c.dropBackground()
	c.Invalidate()
}

// ParentResized repaints the control after its parent changed size.
func (c *Control) ParentResized() { c.Invalidate() }

// Style returns the active style.
func (c *Control) Style() Style { return c.style }

// SetStyle replaces the geometry provider. Tabs, selection and pointer
// state are kept; provider settings start from the new style defaults.
func (c *Control) SetStyle(s Style) error {
	if !s.valid() {
		return fmt.Errorf("%w: style %d", ErrUnknownName, int(s))
	}
	if s == c.style {
		return nil
	}
	Logger().Debug("tabstrip: style changed", "from", c.style, "to", s)
	c.style = s
	c.provider = newProvider(c, s)
	c.dropBackground()
	c.layoutChanged()
	c.Invalidate()
	return nil
}

// Provider returns the geometry provider of the active style. The
// returned value is replaced, not updated, by SetStyle.
func (c *Control) Provider() *Provider { return c.provider }

func (c *Control) Alignment() Alignment { return c.alignment }

// SetAlignment moves the strip to another edge.
func (c *Control) SetAlignment(a Alignment) error {
	if !a.valid() {
		return fmt.Errorf("%w: alignment %d", ErrUnknownName, int(a))
	}
	if a == c.alignment {
		return nil
	}
	c.alignment = a
	c.scroll = 0
	c.layoutChanged()
	c.Invalidate()
	return nil
}

func (c *Control) RightToLeft() bool { return c.rtl }

// SetRightToLeft mirrors the strip. The default image alignment of a
// style is chosen when the style is applied.
func (c *Control) SetRightToLeft(rtl bool) {
	if rtl == c.rtl {
		return
	}
	c.rtl = rtl
	c.layoutChanged()
	c.Invalidate()
}

func (c *Control) Multiline() bool { return c.multiline }

func (c *Control) SetMultiline(multiline bool) {
	if multiline == c.multiline {
		return
	}
	c.multiline = multiline
	c.scroll = 0
	c.layoutChanged()
	c.Invalidate()
}

func (c *Control) AllowDrop() bool { return c.allowDrop }

func (c *Control) SetAllowDrop(allow bool) {
	c.allowDrop = allow
	if !allow {
		c.dragStart = nil
	}
}

func (c *Control) KeyPreview() bool { return c.keyPreview }

func (c *Control) SetKeyPreview(show bool) {
	c.keyPreview = show
	c.Invalidate()
}

func (c *Control) Theme() Theme { return c.theme }

// SetTheme swaps the palette. Colours left unset follow it.
func (c *Control) SetTheme(t Theme) {
	c.theme = t
	c.dropBackground()
	c.Invalidate()
}

// Font returns the caption face, which may be nil when the control was
// built with a custom measurer.
func (c *Control) Font() text.Face { return c.face }

// SetFont changes the caption face and remeasures the tabs.
func (c *Control) SetFont(face text.Face) {
	c.face = face
	c.measurer = FaceMeasurer{Face: face}
	c.layoutChanged()
	c.Invalidate()
}

func (c *Control) Focused() bool { return c.focused }

// SetFocused records keyboard focus, which drives the focus indicator.
func (c *Control) SetFocused(focused bool) {
	if focused == c.focused {
		return
	}
	c.focused = focused
	c.Invalidate()
}

// Invalidate marks the control for repaint and notifies the host.
func (c *Control) Invalidate() {
	c.dirty = true
	if c.onInvalidate != nil {
		c.onInvalidate()
	}
}

// NeedsPaint reports whether the control changed since the last
// successful paint.
func (c *Control) NeedsPaint() bool { return c.dirty }

// wraps reports whether tabs wrap into rows rather than scroll.
func (c *Control) wraps() bool {
	return c.multiline || !c.alignment.Horizontal()
}

func (c *Control) layoutChanged() {
	if c.layout == nil {
		return
	}
	c.layout.invalidate()
	if ok, limit := c.layout.scrollable(); !ok {
		c.scroll = 0
	} else if c.scroll > limit {
		c.scroll = limit
	}
}

// OnTabClosing sets the handler run before a tab is closed through its
// closer. Setting Cancel keeps the tab.
func (c *Control) OnTabClosing(fn func(*TabCancelEvent)) { c.onTabClosing = fn }

// OnTabImageClick sets the handler for clicks on a tab image. While no
// handler is set, image clicks are ordinary clicks.
func (c *Control) OnTabImageClick(fn func(TabEvent)) { c.onTabImageClick = fn }

// OnSelecting sets the handler run before the selection changes.
// Disabled tabs arrive with Cancel already set.
func (c *Control) OnSelecting(fn func(*TabCancelEvent)) { c.onSelecting = fn }

func (c *Control) OnSelectedIndexChanged(fn func(TabEvent)) { c.onSelectedIndexChanged = fn }

// OnClick sets the handler for clicks that hit neither an image nor a
// closer.
func (c *Control) OnClick(fn func(TabEvent)) { c.onClick = fn }

func (c *Control) OnHScroll(fn func(ScrollEvent)) { c.onHScroll = fn }

// OnInvalidate sets the hook the host uses to schedule a repaint.
func (c *Control) OnInvalidate(fn func()) { c.onInvalidate = fn }

// OnDragStart sets the handler that carries a tab drag through the host.
// The host delivers the payload to the target's DragOver and Drop.
func (c *Control) OnDragStart(fn func(DragData)) { c.onDragStart = fn }

// Tabs returns the visible tabs in order.
func (c *Control) Tabs() []*Tab { return slices.Clone(c.tabs) }

// TabCount returns the number of visible tabs.
func (c *Control) TabCount() int { return len(c.tabs) }

// Tab returns the visible tab at index, or nil.
func (c *Control) Tab(index int) *Tab {
	if index < 0 || index >= len(c.tabs) {
		return nil
	}
	return c.tabs[index]
}

// TabByKey finds a visible tab by key, ignoring case.
func (c *Control) TabByKey(key string) (*Tab, error) {
	if i := c.IndexOfKey(key); i >= 0 {
		return c.tabs[i], nil
	}
	return nil, fmt.Errorf("%w: key %q", ErrTabNotFound, key)
}

// IndexOf returns the visible index of t, or -1.
func (c *Control) IndexOf(t *Tab) int { return slices.Index(c.tabs, t) }

// IndexOfKey returns the visible index of the tab with key, or -1.
func (c *Control) IndexOfKey(key string) int {
	return slices.IndexFunc(c.tabs, func(t *Tab) bool { return t.hasKey(key) })
}

// AddTab appends tabs. A tab shown by another control moves here.
func (c *Control) AddTab(tabs ...*Tab) {
	for _, t := range tabs {
		c.InsertTab(len(c.tabs), t)
	}
}

// InsertTab inserts t at index, clamped to the valid range. A tab shown
// by another control is removed from it first.
func (c *Control) InsertTab(index int, t *Tab) {
	if t == nil {
		return
	}
	if t.owner != nil {
		t.owner.RemoveTab(t)
	}
	index = max(0, min(index, len(c.tabs)))
	c.insertVisible(index, t)
	if c.backup != nil && !slices.Contains(c.backup, t) {
		c.insertBackup(t, index)
	}
}

// insertVisible places t at index without touching the backup list.
func (c *Control) insertVisible(index int, t *Tab) {
	c.tabs = slices.Insert(c.tabs, index, t)
	t.owner = c
	t.disposed = false
	switch {
	case c.selected < 0:
		c.selected = 0
		c.selectionChanged()
	case index <= c.selected:
		c.selected++
	}
	c.layoutChanged()
	c.Invalidate()
}

// insertBackup places t in the backup list right after the visible tab
// that now precedes it.
func (c *Control) insertBackup(t *Tab, index int) {
	at := 0
	if index > 0 {
		at = slices.Index(c.backup, c.tabs[index-1]) + 1
	}
	c.backup = slices.Insert(c.backup, at, t)
}

// RemoveTab removes t from the control, whether shown or hidden. It
// reports whether t was present.
func (c *Control) RemoveTab(t *Tab) bool {
	found := false
	if i := slices.Index(c.backup, t); i >= 0 {
		c.backup = slices.Delete(c.backup, i, i+1)
		found = true
	}
	i := c.IndexOf(t)
	if i < 0 {
		return found
	}
	c.removeVisible(i)
	return true
}

// RemoveTabAt removes the visible tab at index.
func (c *Control) RemoveTabAt(index int) bool {
	t := c.Tab(index)
	if t == nil {
		return false
	}
	return c.RemoveTab(t)
}

// removeVisible drops the tab at index from the visible list and fixes
// up the selection.
func (c *Control) removeVisible(index int) {
	t := c.tabs[index]
	c.tabs = slices.Delete(c.tabs, index, index+1)
	t.owner = nil
	c.layoutChanged()

	switch {
	case index < c.selected:
		c.selected--
	case index == c.selected:
		c.selected = min(index, len(c.tabs)-1)
		c.selectionChanged()
	}
	if c.hot >= len(c.tabs) {
		c.hot = -1
	}
	c.Invalidate()
}

// SelectedIndex returns the index of the selected tab, or -1.
func (c *Control) SelectedIndex() int { return c.selected }

// SelectedTab returns the selected tab, or nil.
func (c *Control) SelectedTab() *Tab { return c.Tab(c.selected) }

// SelectTab selects t. See SelectIndex.
func (c *Control) SelectTab(t *Tab) bool {
	i := c.IndexOf(t)
	if i < 0 {
		return false
	}
	return c.SelectIndex(i)
}

// SelectIndex selects the tab at index after giving the Selecting
// handler a chance to refuse. Disabled tabs are refused unless the
// handler clears Cancel. It reports whether the tab is selected
// afterwards.
func (c *Control) SelectIndex(index int) bool {
	if index < 0 || index >= len(c.tabs) {
		return false
	}
	if index == c.selected {
		return true
	}
	t := c.tabs[index]
	ev := &TabCancelEvent{Tab: t, Index: index, Cancel: !t.Enabled()}
	if c.onSelecting != nil {
		c.onSelecting(ev)
	}
	if ev.Cancel {
		return false
	}
	c.selected = index
	c.scrollIntoView(index)
	c.selectionChanged()
	c.Invalidate()
	return true
}

func (c *Control) selectionChanged() {
	if c.onSelectedIndexChanged != nil {
		c.onSelectedIndexChanged(TabEvent{Tab: c.SelectedTab(), Index: c.selected})
	}
}
