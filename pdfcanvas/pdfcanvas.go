// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pdfcanvas implements canvas.Canvas on a single PDF page using
// github.com/go-pdf/fpdf. One canvas pixel maps to one PDF point.
//
// PDF is a vector surface with no pixels to read back, so Image returns
// a blank raster. Render controls into it with Control.RenderTo rather
// than Control.Paint.
package pdfcanvas

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/gogpu/gg"
	"github.com/gogpu/tabstrip/canvas"
)

// defaultFontSize is used for text drawn without a face.
const defaultFontSize = 9

// flattenTolerance is used to turn paths into clip polygons.
const flattenTolerance = 0.25

func init() {
	canvas.Register("pdf", func(w, h int) canvas.Canvas { return New(w, h) })
}

// Canvas draws onto one PDF page.
type Canvas struct {
	pdf           *fpdf.Fpdf
	width, height int
	tr            func(string) string
	images        int
	clips         int
	closed        bool
}

var _ canvas.Canvas = (*Canvas)(nil)

// New creates a document with one page of width x height points.
func New(width, height int) *Canvas {
	width, height = max(width, 1), max(height, 1)
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", defaultFontSize)
	return &Canvas{
		pdf:    pdf,
		width:  width,
		height: height,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// Document returns the underlying fpdf document.
func (c *Canvas) Document() *fpdf.Fpdf { return c.pdf }

// SetCompression turns page stream compression on or off.
func (c *Canvas) SetCompression(on bool) { c.pdf.SetCompression(on) }

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Clear paints the whole page. A transparent colour leaves the page
// untouched since PDF content cannot be erased.
func (c *Canvas) Clear(col gg.RGBA) {
	if col.A == 0 {
		return
	}
	c.withAlpha(col.A, func() {
		c.setFill(col)
		c.pdf.Rect(0, 0, float64(c.width), float64(c.height), "F")
	})
}

// FillPath fills p. Solid brushes become native PDF fills; other
// brushes are sampled into an image clipped to the path.
func (c *Canvas) FillPath(p *gg.Path, b gg.Brush) error {
	if p == nil || p.NumVerbs() == 0 {
		return nil
	}
	if s, ok := b.(gg.SolidBrush); ok {
		if s.Color.A == 0 {
			return nil
		}
		c.withAlpha(s.Color.A, func() {
			c.setFill(s.Color)
			c.trace(p)
			c.pdf.DrawPath("F")
		})
		return c.err("fill")
	}

	poly := p.Flatten(flattenTolerance)
	if len(poly) < 3 {
		return nil
	}
	bb := p.BoundingBox()
	r := image.Rect(int(bb.Min.X), int(bb.Min.Y), int(bb.Max.X+0.999), int(bb.Max.Y+0.999))
	if r.Empty() {
		return nil
	}
	vertices := make([]fpdf.PointType, len(poly))
	for i, pt := range poly {
		vertices[i] = fpdf.PointType{X: pt.X, Y: pt.Y}
	}
	c.pdf.ClipPolygon(vertices, false)
	c.DrawImage(sample(b, r), r, 1)
	c.pdf.ClipEnd()
	return c.err("fill")
}

// StrokePath outlines p with a solid colour.
func (c *Canvas) StrokePath(p *gg.Path, col gg.RGBA, width float64) error {
	if p == nil || p.NumVerbs() == 0 || col.A == 0 {
		return nil
	}
	c.withAlpha(col.A, func() {
		c.pdf.SetDrawColor(channels(col))
		c.pdf.SetLineWidth(width)
		c.trace(p)
		c.pdf.DrawPath("D")
	})
	return c.err("stroke")
}

// DrawImage embeds img as a PNG stretched over dst.
func (c *Canvas) DrawImage(img image.Image, dst image.Rectangle, opacity float64) {
	if img == nil || dst.Empty() || opacity <= 0 {
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		c.pdf.SetError(fmt.Errorf("pdfcanvas: encode image: %w", err))
		return
	}
	c.images++
	name := fmt.Sprintf("img%d", c.images)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	c.pdf.RegisterImageOptionsReader(name, opts, &buf)
	c.withAlpha(opacity, func() {
		c.pdf.ImageOptions(name, float64(dst.Min.X), float64(dst.Min.Y),
			float64(dst.Dx()), float64(dst.Dy()), false, opts, 0, "")
	})
}

// DrawText draws s centred in r with the core Helvetica font at the
// face size. Vertical text runs top to bottom.
func (c *Canvas) DrawText(s string, r image.Rectangle, opts canvas.TextOptions) {
	if s == "" || r.Empty() {
		return
	}
	size := float64(defaultFontSize)
	if opts.Face != nil {
		size = opts.Face.Size()
	}
	c.pdf.SetFontSize(size)
	c.pdf.SetTextColor(channels(opts.Color))
	text := c.tr(s)

	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	if opts.Vertical {
		c.pdf.TransformBegin()
		c.pdf.TransformRotate(-90, cx, cy)
		defer c.pdf.TransformEnd()
	}

	w := c.pdf.GetStringWidth(text)
	x := cx - w/2
	baseline := cy + size*0.35
	c.withAlpha(opts.Color.A, func() {
		c.pdf.Text(x, baseline, text)
		if opts.Underline >= 0 && opts.Underline < len([]rune(s)) {
			runes := []rune(s)
			x0 := x + c.pdf.GetStringWidth(c.tr(string(runes[:opts.Underline])))
			x1 := x0 + c.pdf.GetStringWidth(c.tr(string(runes[opts.Underline])))
			c.pdf.SetDrawColor(channels(opts.Color))
			c.pdf.SetLineWidth(size / 14)
			c.pdf.Line(x0, baseline+1.5, x1, baseline+1.5)
		}
	})
}

func (c *Canvas) PushClip(r image.Rectangle) {
	c.clips++
	c.pdf.ClipRect(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), false)
}

func (c *Canvas) PopClip() {
	if c.clips == 0 {
		return
	}
	c.clips--
	c.pdf.ClipEnd()
}

// ClipDepth returns the number of open clips.
func (c *Canvas) ClipDepth() int { return c.clips }

// Image returns a blank raster of the page size.
func (c *Canvas) Image() image.Image {
	return image.NewRGBA(image.Rect(0, 0, c.width, c.height))
}

// Close ends any open clips. The document stays writable until output.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	for c.clips > 0 {
		c.PopClip()
	}
	return nil
}

// WriteTo writes the finished document to w.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	if err := c.Close(); err != nil {
		return 0, err
	}
	cw := &countingWriter{w: w}
	if err := c.pdf.Output(cw); err != nil {
		return cw.n, fmt.Errorf("pdfcanvas: write: %w", err)
	}
	return cw.n, nil
}

// WriteFile writes the finished document to path.
func (c *Canvas) WriteFile(path string) error {
	if err := c.Close(); err != nil {
		return err
	}
	if err := c.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdfcanvas: write %s: %w", path, err)
	}
	return nil
}

// trace replays p as the current PDF path.
func (c *Canvas) trace(p *gg.Path) {
	p.Iterate(func(verb gg.PathVerb, v []float64) {
		switch verb {
		case gg.MoveTo:
			c.pdf.MoveTo(v[0], v[1])
		case gg.LineTo:
			c.pdf.LineTo(v[0], v[1])
		case gg.QuadTo:
			c.pdf.CurveTo(v[0], v[1], v[2], v[3])
		case gg.CubicTo:
			c.pdf.CurveBezierCubicTo(v[0], v[1], v[2], v[3], v[4], v[5])
		case gg.Close:
			c.pdf.ClosePath()
		}
	})
}

func (c *Canvas) setFill(col gg.RGBA) { c.pdf.SetFillColor(channels(col)) }

func (c *Canvas) withAlpha(a float64, draw func()) {
	if a >= 1 {
		draw()
		return
	}
	c.pdf.SetAlpha(a, "Normal")
	draw()
	c.pdf.SetAlpha(1, "Normal")
}

func (c *Canvas) err(op string) error {
	if c.pdf.Ok() {
		return nil
	}
	return fmt.Errorf("pdfcanvas: %s: %w", op, c.pdf.Error())
}

func channels(col gg.RGBA) (r, g, b int) {
	return to8(col.R), to8(col.G), to8(col.B)
}

func to8(v float64) int {
	return int(max(0, min(1, v))*255 + 0.5)
}

// sample evaluates b at pixel centres over r.
func sample(b gg.Brush, r image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			col := b.ColorAt(float64(r.Min.X+x)+0.5, float64(r.Min.Y+y)+0.5)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(to8(col.R))
			img.Pix[i+1] = uint8(to8(col.G))
			img.Pix[i+2] = uint8(to8(col.B))
			img.Pix[i+3] = uint8(to8(col.A))
		}
	}
	return img
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
