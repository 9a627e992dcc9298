// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"fmt"
	"strings"
)

// Alignment selects the control edge the tab strip is attached to.
type Alignment int

const (
	Top Alignment = iota
	Bottom
	Left
	Right
)

var alignmentNames = [...]string{
	Top:    "Top",
	Bottom: "Bottom",
	Left:   "Left",
	Right:  "Right",
}

func (a Alignment) String() string {
	if a >= 0 && int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// Horizontal reports whether tabs run along the x axis (Top or Bottom).
func (a Alignment) Horizontal() bool { return a <= Bottom }

func (a Alignment) valid() bool { return a >= Top && a <= Right }

// ParseAlignment parses an alignment name, ignoring case.
func ParseAlignment(s string) (Alignment, error) {
	for i, name := range alignmentNames {
		if strings.EqualFold(s, name) {
			return Alignment(i), nil
		}
	}
	return Top, fmt.Errorf("%w: alignment %q", ErrUnknownName, s)
}

// ImageAlign places the tab image relative to the text.
type ImageAlign int

const (
	ImageAlignLeft ImageAlign = iota
	ImageAlignCenter
	ImageAlignRight
)

var imageAlignNames = [...]string{
	ImageAlignLeft:   "Left",
	ImageAlignCenter: "Center",
	ImageAlignRight:  "Right",
}

func (a ImageAlign) String() string {
	if a >= 0 && int(a) < len(imageAlignNames) {
		return imageAlignNames[a]
	}
	return fmt.Sprintf("ImageAlign(%d)", int(a))
}

// ParseImageAlign parses an image alignment name, ignoring case.
func ParseImageAlign(s string) (ImageAlign, error) {
	for i, name := range imageAlignNames {
		if strings.EqualFold(s, name) {
			return ImageAlign(i), nil
		}
	}
	return ImageAlignLeft, fmt.Errorf("%w: image alignment %q", ErrUnknownName, s)
}
