// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Canvas is a 2D drawing target.
//
// Canvases are NOT thread-safe. Each canvas should be used from a single
// goroutine, normally the host UI thread.
type Canvas interface {
	// Width returns the canvas width in pixels.
	Width() int

	// Height returns the canvas height in pixels.
	Height() int

	// Clear replaces every pixel with c, ignoring clips.
	Clear(c gg.RGBA)

	// FillPath fills p with b using the non-zero rule. The path is not
	// modified.
	FillPath(p *gg.Path, b gg.Brush) error

	// StrokePath strokes p with a solid colour.
	StrokePath(p *gg.Path, c gg.RGBA, width float64) error

	// DrawImage draws img scaled into dst with the given opacity.
	DrawImage(img image.Image, dst image.Rectangle, opacity float64)

	// DrawText draws s centred in r.
	DrawText(s string, r image.Rectangle, opts TextOptions)

	// PushClip intersects the clip with r until the matching PopClip.
	PushClip(r image.Rectangle)

	// PopClip restores the clip saved by the last PushClip.
	PopClip()

	// Image returns the current contents. The result may alias the canvas
	// storage and is only valid until the next drawing call.
	Image() image.Image

	// Close releases the canvas. Close is idempotent.
	Close() error
}

// TextOptions controls caption rendering.
type TextOptions struct {
	// Face is the font face. Canvases that render their own fonts may use
	// only its size.
	Face text.Face

	// Color is the text colour.
	Color gg.RGBA

	// Vertical rotates the text 90 degrees clockwise.
	Vertical bool

	// Underline is the rune offset of the character to underline, or a
	// negative value for none.
	Underline int
}

// Factory creates a canvas of the given size.
type Factory func(width, height int) Canvas
