// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

func init() {
	Register("raster", func(w, h int) Canvas { return NewRaster(w, h) })
}

// Raster is a CPU canvas backed by a gg.Context.
type Raster struct {
	ctx    *gg.Context
	width  int
	height int
	closed bool
}

// NewRaster creates a transparent raster canvas. Sizes below one pixel
// are raised to one.
func NewRaster(width, height int) *Raster {
	width, height = max(width, 1), max(height, 1)
	return &Raster{
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
	}
}

// Context returns the underlying gg context for direct drawing.
func (r *Raster) Context() *gg.Context { return r.ctx }

func (r *Raster) Width() int  { return r.width }
func (r *Raster) Height() int { return r.height }

func (r *Raster) Clear(c gg.RGBA) {
	r.ctx.ClearWithColor(c)
}

// replay copies p into the context's current path.
func (r *Raster) replay(p *gg.Path) {
	r.ctx.ClearPath()
	p.Iterate(func(verb gg.PathVerb, c []float64) {
		switch verb {
		case gg.MoveTo:
			r.ctx.MoveTo(c[0], c[1])
		case gg.LineTo:
			r.ctx.LineTo(c[0], c[1])
		case gg.QuadTo:
			r.ctx.QuadraticTo(c[0], c[1], c[2], c[3])
		case gg.CubicTo:
			r.ctx.CubicTo(c[0], c[1], c[2], c[3], c[4], c[5])
		case gg.Close:
			r.ctx.ClosePath()
		}
	})
}

func (r *Raster) FillPath(p *gg.Path, b gg.Brush) error {
	r.replay(p)
	r.ctx.SetFillBrush(b)
	return r.ctx.Fill()
}

func (r *Raster) StrokePath(p *gg.Path, c gg.RGBA, width float64) error {
	r.replay(p)
	r.ctx.SetStrokeBrush(gg.Solid(c))
	r.ctx.SetLineWidth(width)
	return r.ctx.Stroke()
}

func (r *Raster) DrawImage(img image.Image, dst image.Rectangle, opacity float64) {
	if img == nil || dst.Empty() || opacity <= 0 {
		return
	}
	r.ctx.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:         float64(dst.Min.X),
		Y:         float64(dst.Min.Y),
		DstWidth:  float64(dst.Dx()),
		DstHeight: float64(dst.Dy()),
		Opacity:   opacity,
	})
}

// DrawText draws s centred in rect. Vertical text is rendered on a
// scratch canvas and composited rotated.
func (r *Raster) DrawText(s string, rect image.Rectangle, opts TextOptions) {
	if opts.Face == nil || s == "" || rect.Empty() {
		return
	}
	if !opts.Vertical {
		drawLine(r.ctx, s, rect, opts)
		return
	}
	scratch := gg.NewContext(rect.Dy(), rect.Dx())
	defer scratch.Close()
	drawLine(scratch, s, image.Rect(0, 0, rect.Dy(), rect.Dx()), opts)
	r.ctx.DrawImageEx(gg.ImageBufFromImage(rotateCW(scratch.Image())), gg.DrawImageOptions{
		X:       float64(rect.Min.X),
		Y:       float64(rect.Min.Y),
		Opacity: 1,
	})
}

func drawLine(ctx *gg.Context, s string, rect image.Rectangle, opts TextOptions) {
	m := opts.Face.Metrics()
	w := opts.Face.Advance(s)
	x := float64(rect.Min.X) + (float64(rect.Dx())-w)/2
	y := float64(rect.Min.Y) + (float64(rect.Dy())-m.Ascent-m.Descent)/2 + m.Ascent

	ctx.SetFont(opts.Face)
	ctx.SetColor(opts.Color)
	ctx.DrawString(s, x, y)

	if opts.Underline < 0 {
		return
	}
	runes := []rune(s)
	if opts.Underline >= len(runes) {
		return
	}
	x0 := x + opts.Face.Advance(string(runes[:opts.Underline]))
	x1 := x + opts.Face.Advance(string(runes[:opts.Underline+1]))
	uy := math.Round(y + 1.5)
	ctx.ClearPath()
	ctx.MoveTo(x0, uy)
	ctx.LineTo(x1, uy)
	ctx.SetStrokeBrush(gg.Solid(opts.Color))
	ctx.SetLineWidth(1)
	_ = ctx.Stroke()
}

// rotateCW returns img turned a quarter turn clockwise.
func rotateCW(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(b.Max.Y-1-y, x-b.Min.X, img.At(x, y))
		}
	}
	return out
}

func (r *Raster) PushClip(rect image.Rectangle) {
	r.ctx.Push()
	r.ctx.ClipRect(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()))
}

func (r *Raster) PopClip() {
	r.ctx.Pop()
}

func (r *Raster) Image() image.Image {
	return r.ctx.Image()
}

// SavePNG writes the canvas contents to a PNG file.
func (r *Raster) SavePNG(path string) error {
	return r.ctx.SavePNG(path)
}

func (r *Raster) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.ctx.Close()
}
