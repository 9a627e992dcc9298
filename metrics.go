// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import "math"

// Metrics answers the platform-level layout queries the engine builds
// on: where each tab sits before any style adjustment, how many rows the
// strip has, and which tab lies under a point.
//
// Rectangles are in left-to-right coordinates even when the control is
// mirrored; the engine applies the mirroring itself.
type Metrics interface {
	// TabBounds returns the unadjusted rectangle of the tab at index.
	TabBounds(index int) Rect

	// RowCount returns the number of tab rows.
	RowCount() int

	// RowExtent returns the thickness of one row across the strip axis.
	RowExtent() int

	// HitTest returns the index of the tab under pt, or -1.
	HitTest(pt Point) int
}

const (
	// stripOrigin is where the first tab of a row starts on both axes.
	stripOrigin = 2

	imageSize  = 16
	closerSize = 6
)

// stripLayout is the built-in Metrics implementation. It lays tabs out
// from measured caption widths and wraps them into rows when the control
// is multiline. Vertical strips always wrap.
type stripLayout struct {
	c *Control

	valid   bool
	rects   []Rect
	lengths []int
	rows    int
	extent  int
}

func newStripLayout(c *Control) *stripLayout {
	return &stripLayout{c: c}
}

func (l *stripLayout) invalidate() { l.valid = false }

func (l *stripLayout) TabBounds(index int) Rect {
	l.update()
	if index < 0 || index >= len(l.rects) {
		return Rect{}
	}
	return l.rects[index]
}

func (l *stripLayout) RowCount() int {
	l.update()
	return l.rows
}

func (l *stripLayout) RowExtent() int {
	l.update()
	return l.extent
}

func (l *stripLayout) HitTest(pt Point) int {
	l.update()
	for i, r := range l.rects {
		if r.Contains(pt) {
			return i
		}
	}
	return -1
}

// scrollable reports whether the strip is single-line and wider than the
// control, and if so the largest useful scroll offset.
func (l *stripLayout) scrollable() (bool, int) {
	l.update()
	c := l.c
	if c.wraps() || len(l.lengths) == 0 {
		return false, 0
	}
	avail := c.width - 2*stripOrigin
	total := 0
	for _, n := range l.lengths {
		total += n
	}
	if total <= avail {
		return false, 0
	}
	limit := 0
	for rest := total; limit < len(l.lengths)-1 && rest > avail; limit++ {
		rest -= l.lengths[limit]
	}
	return true, limit
}

func (l *stripLayout) update() {
	if l.valid {
		return
	}
	l.valid = true

	c := l.c
	pad := c.provider.HostPadding()
	_, lineH := c.measurer.Measure("")
	l.extent = int(math.Ceil(lineH)) + 2*pad.Y + 4
	for _, t := range c.tabs {
		if t.Image != nil {
			l.extent = max(l.extent, imageSize+2*pad.Y+4)
			break
		}
	}

	l.lengths = l.lengths[:0]
	for _, t := range c.tabs {
		display, _, _ := mnemonic(t.Text)
		w, _ := c.measurer.Measure(display)
		n := int(math.Ceil(w)) + 2*pad.X + 6
		if t.Image != nil {
			n += imageSize + 4
		}
		l.lengths = append(l.lengths, n)
	}

	along := make([]int, len(l.lengths))
	rowOf := make([]int, len(l.lengths))
	l.rows = 1
	if c.wraps() {
		avail := c.width - 2*stripOrigin
		if !c.alignment.Horizontal() {
			avail = c.height - 2*stripOrigin
		}
		pos, row := stripOrigin, 0
		for i, n := range l.lengths {
			if pos > stripOrigin && pos+n > stripOrigin+avail {
				row++
				pos = stripOrigin
			}
			along[i], rowOf[i] = pos, row
			pos += n
		}
		l.rows = row + 1
	} else {
		first := min(c.scroll, max(len(l.lengths)-1, 0))
		pos := stripOrigin
		for i := first; i < len(l.lengths); i++ {
			along[i] = pos
			pos += l.lengths[i]
		}
		pos = stripOrigin
		for i := first - 1; i >= 0; i-- {
			pos -= l.lengths[i]
			along[i] = pos
		}
	}

	l.rects = l.rects[:0]
	for i, n := range l.lengths {
		var r Rect
		switch c.alignment {
		case Top:
			r = R(along[i], stripOrigin+rowOf[i]*l.extent, n, l.extent)
		case Bottom:
			r = R(along[i], c.height-stripOrigin-(rowOf[i]+1)*l.extent, n, l.extent)
		case Left:
			r = R(stripOrigin+rowOf[i]*l.extent, along[i], l.extent, n)
		case Right:
			r = R(c.width-stripOrigin-(rowOf[i]+1)*l.extent, along[i], l.extent, n)
		default:
			unreachable("alignment", c.alignment)
		}
		l.rects = append(l.rects, r)
	}
}
