// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fynehost embeds a tabstrip.Control in a fyne window.
//
// The widget forwards hover, tap, drag and keyboard input to the control
// and shows each painted frame as an image. One control pixel maps to
// one fyne unit; fyne scales the frame to the output device.
package fynehost

import (
	"image"

	"fyne.io/fyne/v2"
	fcanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"
	"github.com/gogpu/tabstrip"
	"github.com/gogpu/tabstrip/canvas"
)

// TabStrip is a fyne widget showing a tab control.
type TabStrip struct {
	widget.BaseWidget

	ctl     *tabstrip.Control
	minSize fyne.Size

	dragging  *tabstrip.DragData
	dragPoint tabstrip.Point
	pressed   bool
}

var (
	_ fyne.Widget       = (*TabStrip)(nil)
	_ fyne.Tappable     = (*TabStrip)(nil)
	_ fyne.Draggable    = (*TabStrip)(nil)
	_ fyne.Focusable    = (*TabStrip)(nil)
	_ desktop.Hoverable = (*TabStrip)(nil)
)

// New wraps ctl. The control's current size is used as the minimum
// size. The caller keeps ownership of ctl and closes it.
func New(ctl *tabstrip.Control) *TabStrip {
	size := ctl.Size()
	w := &TabStrip{
		ctl:     ctl,
		minSize: fyne.NewSize(float32(size.Width), float32(size.Height)),
	}
	ctl.OnInvalidate(w.Refresh)
	ctl.OnDragStart(func(d tabstrip.DragData) {
		if ctl.AllowDrop() {
			w.dragging = &d
		}
	})
	w.ExtendBaseWidget(w)
	return w
}

// Control returns the wrapped control.
func (w *TabStrip) Control() *tabstrip.Control { return w.ctl }

// CreateRenderer implements fyne.Widget.
func (w *TabStrip) CreateRenderer() fyne.WidgetRenderer {
	img := fcanvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	img.FillMode = fcanvas.ImageFillStretch
	img.ScaleMode = fcanvas.ImageScalePixels
	return &tabStripRenderer{w: w, img: img}
}

func toPoint(p fyne.Position) tabstrip.Point {
	return tabstrip.Pt(int(p.X), int(p.Y))
}

// MouseIn implements desktop.Hoverable.
func (w *TabStrip) MouseIn(ev *desktop.MouseEvent) {
	w.ctl.MouseMove(toPoint(ev.Position), false)
}

// MouseMoved implements desktop.Hoverable.
func (w *TabStrip) MouseMoved(ev *desktop.MouseEvent) {
	w.ctl.MouseMove(toPoint(ev.Position), false)
}

// MouseOut implements desktop.Hoverable.
func (w *TabStrip) MouseOut() {
	w.ctl.MouseLeave()
}

// Tapped selects the tab under the pointer and clicks it, which may
// close it through its closer.
func (w *TabStrip) Tapped(ev *fyne.PointEvent) {
	pt := toPoint(ev.Position)
	w.ctl.MouseMove(pt, false)
	if i := w.ctl.ActiveIndex(); i >= 0 {
		w.ctl.SelectIndex(i)
	}
	w.ctl.Click(pt)
}

// Dragged presses on the first event and then feeds the pointer to the
// control, which starts a tab drag once it leaves the drag rectangle.
func (w *TabStrip) Dragged(ev *fyne.DragEvent) {
	pt := toPoint(ev.Position)
	if !w.pressed {
		w.pressed = true
		start := ev.Position.Subtract(ev.Dragged)
		w.ctl.MouseDown(toPoint(start), true)
	}
	w.dragPoint = pt
	w.ctl.MouseMove(pt, true)
}

// DragEnd drops a dragged tab at the release point.
func (w *TabStrip) DragEnd() {
	w.pressed = false
	w.ctl.MouseUp(w.dragPoint)
	if d := w.dragging; d != nil {
		w.dragging = nil
		w.ctl.Drop(*d, w.dragPoint)
	}
}

// FocusGained implements fyne.Focusable.
func (w *TabStrip) FocusGained() { w.ctl.SetFocused(true) }

// FocusLost implements fyne.Focusable.
func (w *TabStrip) FocusLost() { w.ctl.SetFocused(false) }

// TypedRune selects the tab with a matching mnemonic.
func (w *TabStrip) TypedRune(r rune) { w.ctl.ProcessMnemonic(r) }

// TypedKey moves the selection with the arrow, Home and End keys.
// Disabled tabs are skipped.
func (w *TabStrip) TypedKey(ev *fyne.KeyEvent) {
	n := w.ctl.TabCount()
	if n == 0 {
		return
	}
	cur := w.ctl.SelectedIndex()
	switch ev.Name {
	case fyne.KeyLeft, fyne.KeyUp:
		w.step(cur, -1)
	case fyne.KeyRight, fyne.KeyDown:
		w.step(cur, 1)
	case fyne.KeyHome:
		w.step(-1, 1)
	case fyne.KeyEnd:
		w.step(n, -1)
	}
}

func (w *TabStrip) step(from, dir int) {
	if w.ctl.RightToLeft() && w.ctl.Alignment().Horizontal() && from >= 0 && from < w.ctl.TabCount() {
		dir = -dir
	}
	for i := from + dir; i >= 0 && i < w.ctl.TabCount(); i += dir {
		if w.ctl.Tab(i).Enabled() {
			w.ctl.SelectIndex(i)
			return
		}
	}
}

type tabStripRenderer struct {
	w     *TabStrip
	img   *fcanvas.Image
	frame *canvas.Raster
}

func (r *tabStripRenderer) Layout(size fyne.Size) {
	r.img.Resize(size)
	r.w.ctl.Resize(int(size.Width+0.5), int(size.Height+0.5))
	r.render()
}

func (r *tabStripRenderer) MinSize() fyne.Size { return r.w.minSize }

func (r *tabStripRenderer) Refresh() {
	r.render()
	r.img.Refresh()
}

func (r *tabStripRenderer) Objects() []fyne.CanvasObject { return []fyne.CanvasObject{r.img} }

func (r *tabStripRenderer) Destroy() {
	if r.frame != nil {
		_ = r.frame.Close()
		r.frame = nil
	}
}

// render paints the control into the frame buffer and shows it.
func (r *tabStripRenderer) render() {
	ctl := r.w.ctl
	size := ctl.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	if r.frame == nil || r.frame.Width() != size.Width || r.frame.Height() != size.Height {
		if r.frame != nil {
			_ = r.frame.Close()
		}
		r.frame = canvas.NewRaster(size.Width, size.Height)
	}
	r.frame.Clear(gg.Transparent)
	if err := ctl.Paint(r.frame, ctl.ClientRect()); err != nil {
		fyne.LogError("tabstrip paint", err)
		return
	}
	r.img.Image = r.frame.Image()
}
