// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"math"

	"github.com/gogpu/gg"
)

const (
	// outlineTolerance is the flattening tolerance for containment tests.
	outlineTolerance = 0.1

	// edgeSlack treats points this close to an edge as inside.
	edgeSlack = 0.5
)

// Outline is a flattened border path used for pixel containment tests.
// Points on or within half a pixel of the boundary count as inside.
type Outline struct {
	path *gg.Path
	poly []gg.Point
}

// NewOutline flattens p for containment queries.
func NewOutline(p *gg.Path) *Outline {
	return &Outline{path: p, poly: p.Flatten(outlineTolerance)}
}

// Path returns the source path.
func (o *Outline) Path() *gg.Path { return o.path }

// Bounds returns the bounding box with each component truncated to an
// integer.
func (o *Outline) Bounds() Rect {
	bb := o.path.BoundingBox()
	return Rect{
		X:      int(bb.Min.X),
		Y:      int(bb.Min.Y),
		Width:  int(bb.Max.X - bb.Min.X),
		Height: int(bb.Max.Y - bb.Min.Y),
	}
}

// Contains reports whether the pixel position (x, y) lies inside the
// outline or on its boundary.
func (o *Outline) Contains(x, y int) bool {
	if len(o.poly) < 2 {
		return false
	}
	px, py := float64(x), float64(y)
	n := len(o.poly)
	for i := range n {
		if segmentDistance(px, py, o.poly[i], o.poly[(i+1)%n]) <= edgeSlack {
			return true
		}
	}
	return o.path.Contains(gg.Pt(px, py))
}

// ContainsRect reports whether all four corners of r are inside. The
// right and bottom corners are tested at their exclusive coordinates.
func (o *Outline) ContainsRect(r Rect) bool {
	return o.Contains(r.X, r.Y) && o.Contains(r.Right(), r.Y) &&
		o.Contains(r.X, r.Bottom()) && o.Contains(r.Right(), r.Bottom())
}

func segmentDistance(px, py float64, a, b gg.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(px-a.X, py-a.Y)
	}
	t := ((px-a.X)*dx + (py-a.Y)*dy) / l2
	t = max(0, min(1, t))
	return math.Hypot(px-(a.X+t*dx), py-(a.Y+t*dy))
}
