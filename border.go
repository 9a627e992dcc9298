// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"math"

	"github.com/gogpu/gg"
)

// curveTension is the cardinal spline tension used for curved borders.
const curveTension = 0.5

// pathBuilder accumulates a single connected figure. Each segment joins
// the previous one with a straight line, so a border can be described as
// a sequence of lines, arcs and curves in drawing order.
type pathBuilder struct {
	p    *gg.Path
	open bool
}

func newPathBuilder() *pathBuilder {
	return &pathBuilder{p: gg.NewPath()}
}

// to moves the pen to (x, y), starting the figure or connecting to it.
func (b *pathBuilder) to(x, y float64) {
	if !b.open {
		b.p.MoveTo(x, y)
		b.open = true
		return
	}
	if cur := b.p.CurrentPoint(); cur.X != x || cur.Y != y {
		b.p.LineTo(x, y)
	}
}

func (b *pathBuilder) line(x1, y1, x2, y2 int) {
	b.to(float64(x1), float64(y1))
	b.p.LineTo(float64(x2), float64(y2))
}

// arc appends an elliptical arc inscribed in the rectangle (x, y, w, h).
// Angles are in degrees, measured clockwise from the positive x axis in
// y-down coordinates. A negative sweep runs counter-clockwise.
func (b *pathBuilder) arc(x, y, w, h int, start, sweep float64) {
	rx, ry := float64(w)/2, float64(h)/2
	cx, cy := float64(x)+rx, float64(y)+ry
	a1 := start * math.Pi / 180
	total := sweep * math.Pi / 180

	b.to(cx+rx*math.Cos(a1), cy+ry*math.Sin(a1))
	if total == 0 {
		return
	}
	n := int(math.Ceil(math.Abs(total) / (math.Pi / 2)))
	step := total / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	for i := 0; i < n; i++ {
		a2 := a1 + step
		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		cos2, sin2 := math.Cos(a2), math.Sin(a2)
		b.p.CubicTo(
			cx+rx*(cos1-k*sin1), cy+ry*(sin1+k*cos1),
			cx+rx*(cos2+k*sin2), cy+ry*(sin2-k*cos2),
			cx+rx*cos2, cy+ry*sin2,
		)
		a1 = a2
	}
}

// curve appends a cardinal spline through pts. Each span becomes one
// cubic Bezier; the end points are duplicated as outer neighbours.
func (b *pathBuilder) curve(pts []Point) {
	if len(pts) == 0 {
		return
	}
	b.to(float64(pts[0].X), float64(pts[0].Y))
	at := func(i int) gg.Point {
		i = max(0, min(i, len(pts)-1))
		return gg.Pt(float64(pts[i].X), float64(pts[i].Y))
	}
	f := curveTension / 3
	for i := 0; i+1 < len(pts); i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		b.p.CubicTo(
			p1.X+(p2.X-p0.X)*f, p1.Y+(p2.Y-p0.Y)*f,
			p2.X-(p3.X-p1.X)*f, p2.Y-(p3.Y-p1.Y)*f,
			p2.X, p2.Y,
		)
	}
}

// rect appends a closed rectangle as its own figure.
func (b *pathBuilder) rect(r Rect) {
	b.close()
	b.p.Rectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
	b.open = false
}

// ellipse appends a closed ellipse inscribed in r as its own figure.
func (b *pathBuilder) ellipse(r Rect) {
	b.close()
	rx, ry := float64(r.Width)/2, float64(r.Height)/2
	b.p.Ellipse(float64(r.X)+rx, float64(r.Y)+ry, rx, ry)
	b.open = false
}

func (b *pathBuilder) close() {
	if b.open {
		b.p.Close()
		b.open = false
	}
}

// path closes any open figure and returns the result.
func (b *pathBuilder) path() *gg.Path {
	b.close()
	return b.p
}
