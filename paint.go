// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/tabstrip/canvas"
	"golang.org/x/image/draw"
)

// Paint draws the control into dst, which must cover the control area.
//
// The strip is always composed as a whole. When clip is not the full
// client rectangle nothing is drawn and the control invalidates itself so
// the host repaints everything. The frame is built in off-screen buffers:
// the cached background, then the tab layer blended on top at the style
// opacity, then the result is copied to dst (one pixel left when
// mirrored).
//
// If drawing panics the buffers are released before the panic
// propagates.
func (c *Control) Paint(dst canvas.Canvas, clip Rect) error {
	if clip != c.ClientRect() {
		c.Invalidate()
		return nil
	}
	if c.width <= 0 || c.height <= 0 || c.closed {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			c.releaseBuffers()
			panic(r)
		}
	}()

	bs := c.buffersForPaint()
	bg, err := bs.ensureBackground(c.paintBackground)
	if err != nil {
		return err
	}
	full := image.Rect(0, 0, c.width, c.height)

	bs.back.Clear(gg.Transparent)
	bs.back.DrawImage(bg.Image(), full, 1)

	bs.tabs.Clear(gg.Transparent)
	if err := c.drawTabs(bs.tabs); err != nil {
		Logger().Warn("tabstrip: paint tabs", "err", err)
		return err
	}
	bs.back.DrawImage(bs.tabs.Image(), full, c.provider.Opacity())

	x := 0
	if c.rtl {
		x = -1
	}
	dst.DrawImage(bs.back.Image(), full.Add(image.Pt(x, 0)), 1)
	c.dirty = false
	return nil
}

// RenderTo draws the control straight into cv without buffering or
// opacity blending. It suits vector canvases such as PDF pages.
func (c *Control) RenderTo(cv canvas.Canvas) error {
	if err := c.paintBackground(cv); err != nil {
		return err
	}
	return c.drawTabs(cv)
}

func (c *Control) paintBackground(cv canvas.Canvas) error {
	cv.Clear(gg.Transparent)
	if c.background != nil {
		return c.background(cv)
	}
	cv.Clear(c.theme.Control)
	return nil
}

// drawTabs paints every tab, back to front so overlaps stack correctly,
// with the selected tab last.
func (c *Control) drawTabs(cv canvas.Canvas) error {
	if len(c.tabs) == 0 {
		return nil
	}
	if c.alignment.Horizontal() && !c.multiline {
		cv.PushClip(image.Rect(3, 0, c.width-3, c.height))
		defer cv.PopClip()
	}
	for _, i := range c.paintOrder() {
		if err := c.drawTabPage(cv, i); err != nil {
			return err
		}
	}
	return nil
}

// paintOrder lists tab indexes in drawing order: right to left within
// each row, rows outward from the page, the selected tab last.
func (c *Control) paintOrder() []int {
	order := make([]int, 0, len(c.tabs))
	if c.wraps() {
		rows := c.metrics.RowCount()
		for row := 0; row < rows; row++ {
			for i := len(c.tabs) - 1; i >= 0; i-- {
				if i != c.selected && (rows == 1 || c.TabRow(i) == row) {
					order = append(order, i)
				}
			}
		}
	} else {
		for i := len(c.tabs) - 1; i >= 0; i-- {
			if i != c.selected {
				order = append(order, i)
			}
		}
	}
	if c.selected >= 0 && c.selected < len(c.tabs) {
		order = append(order, c.selected)
	}
	return order
}

func (c *Control) drawTabPage(cv canvas.Canvas, index int) error {
	border := c.TabPageBorder(index)
	p := c.provider
	if err := cv.FillPath(border.Path(), p.PageBackground(index)); err != nil {
		return err
	}
	if c.style != StyleNone {
		if err := p.paintTab(cv, index); err != nil {
			return err
		}
		c.drawTabImage(cv, index)
		c.drawTabText(cv, index)
	}
	return cv.StrokePath(border.Path(), c.borderColor(index), 1)
}

func (c *Control) borderColor(index int) gg.RGBA {
	p := c.provider
	switch {
	case index == c.selected:
		return p.BorderColorSelected()
	case p.HotTrack() && index == c.ActiveIndex():
		return p.BorderColorHot()
	}
	return p.BorderColor()
}

func (c *Control) textColor(index int) gg.RGBA {
	p := c.provider
	switch {
	case index == c.selected:
		return p.TextColorSelected()
	case !c.tabs[index].Enabled():
		return p.TextColorDisabled()
	}
	return p.TextColor()
}

func (c *Control) drawTabText(cv canvas.Canvas, index int) {
	r := c.TabTextRect(index)
	if r.Empty() {
		return
	}
	display, _, at := mnemonic(c.tabs[index].Text)
	if !c.keyPreview {
		at = -1
	}
	cv.DrawText(display, r.Image(), canvas.TextOptions{
		Face:      c.face,
		Color:     c.textColor(index),
		Vertical:  !c.alignment.Horizontal(),
		Underline: at,
	})
}

func (c *Control) drawTabImage(cv canvas.Canvas, index int) {
	t := c.tabs[index]
	if t.Image == nil {
		return
	}
	r := c.TabImageRect(index)
	img := scaleImage(t.Image, r.Width, r.Height, c.rtl)
	if !t.Enabled() {
		img = disabledImage(img)
	}
	cv.DrawImage(img, r.Image(), 1)
}

// scaleImage resamples src to w x h, mirrored when flip is set.
func scaleImage(src image.Image, w, h int, flip bool) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(out, out.Bounds(), src, src.Bounds(), draw.Src, nil)
	if flip {
		for y := 0; y < h; y++ {
			for x := 0; x < w/2; x++ {
				l, r := out.NRGBAAt(x, y), out.NRGBAAt(w-1-x, y)
				out.SetNRGBA(x, y, r)
				out.SetNRGBA(w-1-x, y, l)
			}
		}
	}
	return out
}

// disabledImage returns a washed out grey copy of img with the same
// alpha.
func disabledImage(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := img.NRGBAAt(x, y)
			lum := (299*uint32(p.R) + 587*uint32(p.G) + 114*uint32(p.B)) / 1000
			g := uint8(128 + lum/2)
			out.SetNRGBA(x, y, color.NRGBA{R: g, G: g, B: g, A: p.A})
		}
	}
	return out
}
