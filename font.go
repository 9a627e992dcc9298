// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is the caption size used when no face is configured.
const DefaultFontSize = 12

var defaultSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// DefaultFace returns the Go Regular face at the given size.
func DefaultFace(size float64) (text.Face, error) {
	src, err := defaultSource()
	if err != nil {
		return nil, fmt.Errorf("tabstrip: load default font: %w", err)
	}
	return src.Face(size), nil
}

// Measurer measures caption text in pixels.
type Measurer interface {
	// Measure returns the advance width and the line height of s.
	Measure(s string) (w, h float64)
}

// FaceMeasurer measures text with a gg font face.
type FaceMeasurer struct {
	Face text.Face
}

// Measure implements Measurer.
func (m FaceMeasurer) Measure(s string) (w, h float64) {
	if m.Face == nil {
		return 0, 0
	}
	w = m.Face.Advance(s)
	fm := m.Face.Metrics()
	return w, fm.Ascent + fm.Descent
}
