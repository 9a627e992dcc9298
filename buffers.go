// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"errors"

	"github.com/gogpu/tabstrip/canvas"
)

// bufferSet is the off-screen state of one paint size: the cached
// background, the back buffer the frame is composed in and the tab layer
// that is blended onto it. A set is only valid for the size it was built
// with and is replaced as a whole.
type bufferSet struct {
	width, height int

	background canvas.Canvas // nil until composed
	back       canvas.Canvas
	tabs       canvas.Canvas
	factory    canvas.Factory
}

func newBufferSet(f canvas.Factory, width, height int) *bufferSet {
	return &bufferSet{
		width:   width,
		height:  height,
		back:    f(width, height),
		tabs:    f(width, height),
		factory: f,
	}
}

func (b *bufferSet) fits(width, height int) bool {
	return b.width == width && b.height == height
}

// ensureBackground returns the background canvas, creating it with
// paint when absent. A failed paint leaves no background cached.
func (b *bufferSet) ensureBackground(paint func(canvas.Canvas) error) (canvas.Canvas, error) {
	if b.background != nil {
		return b.background, nil
	}
	bg := b.factory(b.width, b.height)
	if err := paint(bg); err != nil {
		_ = bg.Close()
		return nil, err
	}
	b.background = bg
	return bg, nil
}

func (b *bufferSet) dropBackground() error {
	if b.background == nil {
		return nil
	}
	err := b.background.Close()
	b.background = nil
	return err
}

func (b *bufferSet) close() error {
	return errors.Join(b.dropBackground(), b.back.Close(), b.tabs.Close())
}

// buffersForPaint returns a buffer set matching the current size,
// replacing a stale one.
func (c *Control) buffersForPaint() *bufferSet {
	if c.buffers == nil || !c.buffers.fits(c.width, c.height) {
		c.swapBuffers(newBufferSet(c.newCanvas, c.width, c.height))
	}
	return c.buffers
}

// swapBuffers installs next and only then closes the previous set, so
// the control never holds a closed buffer.
func (c *Control) swapBuffers(next *bufferSet) {
	old := c.buffers
	c.buffers = next
	if next != nil {
		Logger().Debug("tabstrip: buffers allocated", "width", next.width, "height", next.height)
	}
	if old == nil {
		return
	}
	if err := old.close(); err != nil {
		Logger().Warn("tabstrip: release buffers", "err", err)
	}
}

func (c *Control) releaseBuffers() { c.swapBuffers(nil) }

func (c *Control) dropBackground() {
	if c.buffers == nil {
		return
	}
	if err := c.buffers.dropBackground(); err != nil {
		Logger().Warn("tabstrip: release background", "err", err)
	}
}
