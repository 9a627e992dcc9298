// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"github.com/gogpu/gg/text"
	"github.com/gogpu/tabstrip/canvas"
)

// Option configures a Control during creation.
// Use functional options to customize Control behavior.
//
// Example:
//
//	// Chrome tabs along the bottom edge
//	c, err := tabstrip.New(
//	    tabstrip.WithStyle(tabstrip.StyleChrome),
//	    tabstrip.WithAlignment(tabstrip.Bottom),
//	    tabstrip.WithSize(640, 480),
//	)
type Option func(*settings)

// settings holds the configuration collected from options before the
// control is built.
type settings struct {
	style      Style
	alignment  Alignment
	width      int
	height     int
	theme      Theme
	face       text.Face
	measurer   Measurer
	metrics    Metrics
	rtl        bool
	multiline  bool
	allowDrop  bool
	keyPreview bool
	dragSize   Size
	backend    string
	factory    canvas.Factory
	background func(canvas.Canvas) error
}

// defaultSettings returns the settings used when no option overrides
// them.
func defaultSettings() settings {
	return settings{
		style:     StyleDefault,
		alignment: Top,
		width:     200,
		height:    100,
		theme:     DefaultTheme(),
		dragSize:  Size{Width: 4, Height: 4},
		backend:   "raster",
	}
}

// WithStyle selects the visual style.
func WithStyle(s Style) Option {
	return func(o *settings) {
		o.style = s
	}
}

// WithAlignment places the strip along one edge of the control.
func WithAlignment(a Alignment) Option {
	return func(o *settings) {
		o.alignment = a
	}
}

// WithSize sets the initial pixel size.
func WithSize(width, height int) Option {
	return func(o *settings) {
		o.width, o.height = width, height
	}
}

// WithTheme sets the palette unset colours resolve against.
func WithTheme(t Theme) Option {
	return func(o *settings) {
		o.theme = t
	}
}

// WithFont sets the caption face. The built-in layout measures with it
// unless WithMeasurer is also given.
func WithFont(face text.Face) Option {
	return func(o *settings) {
		o.face = face
	}
}

// WithMeasurer replaces text measurement for the built-in layout.
func WithMeasurer(m Measurer) Option {
	return func(o *settings) {
		o.measurer = m
	}
}

// WithMetrics replaces the built-in layout entirely. Use this when a
// host platform computes tab rectangles itself.
func WithMetrics(m Metrics) Option {
	return func(o *settings) {
		o.metrics = m
	}
}

// WithRightToLeft mirrors the strip horizontally.
func WithRightToLeft(rtl bool) Option {
	return func(o *settings) {
		o.rtl = rtl
	}
}

// WithMultiline wraps tabs into rows instead of scrolling. Vertical
// strips always wrap.
func WithMultiline(multiline bool) Option {
	return func(o *settings) {
		o.multiline = multiline
	}
}

// WithAllowDrop enables drag reordering.
func WithAllowDrop(allow bool) Option {
	return func(o *settings) {
		o.allowDrop = allow
	}
}

// WithKeyPreview underlines mnemonic characters in captions.
func WithKeyPreview(show bool) Option {
	return func(o *settings) {
		o.keyPreview = show
	}
}

// WithDragSize sets how far the pointer must travel from the press
// point, in each direction, before a drag starts.
func WithDragSize(width, height int) Option {
	return func(o *settings) {
		o.dragSize = Size{Width: width, Height: height}
	}
}

// WithCanvasBackend selects a registered canvas backend by name for the
// back buffers. See canvas.Names.
func WithCanvasBackend(name string) Option {
	return func(o *settings) {
		o.backend = name
		o.factory = nil
	}
}

// WithCanvasFactory sets the constructor used for the back buffers.
// It takes precedence over WithCanvasBackend.
func WithCanvasFactory(f canvas.Factory) Option {
	return func(o *settings) {
		o.factory = f
	}
}

// WithBackground sets the function that paints what lies behind the
// control, typically the parent's background. It runs once per cached
// background; see Control.ParentBackgroundChanged.
func WithBackground(paint func(canvas.Canvas) error) Option {
	return func(o *settings) {
		o.background = paint
	}
}
