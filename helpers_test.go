// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"image"
	"testing"

	"github.com/gogpu/tabstrip/canvas"
)

// fixedMeasurer gives every rune the same advance so layouts are exact.
type fixedMeasurer struct {
	advance, line float64
}

func (m fixedMeasurer) Measure(s string) (w, h float64) {
	return float64(len([]rune(s))) * m.advance, m.line
}

func recorderFactory(w, h int) canvas.Canvas { return canvas.NewRecorder(w, h) }

// newTestControl builds a 400x100 control with a fixed measurer and
// recording buffers.
func newTestControl(t *testing.T, opts ...Option) *Control {
	t.Helper()
	base := []Option{
		WithSize(400, 100),
		WithMeasurer(fixedMeasurer{advance: 7, line: 14}),
		WithCanvasFactory(recorderFactory),
	}
	c, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// addTabs appends one tab per caption, keyed by the caption.
func addTabs(c *Control, captions ...string) []*Tab {
	tabs := make([]*Tab, len(captions))
	for i, s := range captions {
		tabs[i] = NewTabWithKey(s, s)
	}
	c.AddTab(tabs...)
	return tabs
}

func keys(tabs []*Tab) []string {
	out := make([]string, len(tabs))
	for i, t := range tabs {
		out[i] = t.Key
	}
	return out
}

// center returns the middle of r.
func center(r Rect) Point {
	return Pt(r.X+r.Width/2, r.Y+r.Height/2)
}

// solidImage returns an opaque square image.
func solidImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}
