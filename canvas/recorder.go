// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"image"

	"github.com/gogpu/gg"
)

func init() {
	Register("recorder", func(w, h int) Canvas { return NewRecorder(w, h) })
}

// Op identifies a recorded drawing operation.
type Op uint8

const (
	OpClear Op = iota
	OpFillPath
	OpStrokePath
	OpDrawImage
	OpDrawText
	OpPushClip
	OpPopClip
)

var opNames = [...]string{
	OpClear:      "Clear",
	OpFillPath:   "FillPath",
	OpStrokePath: "StrokePath",
	OpDrawImage:  "DrawImage",
	OpDrawText:   "DrawText",
	OpPushClip:   "PushClip",
	OpPopClip:    "PopClip",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Unknown"
}

// Command is one recorded operation.
type Command struct {
	Op Op

	// Bounds is the path bounding box, image destination, text box or
	// clip rectangle.
	Bounds image.Rectangle

	Brush   gg.Brush
	Color   gg.RGBA
	Width   float64
	Opacity float64
	Text    string
	Options TextOptions

	// Source is the drawn image for OpDrawImage.
	Source image.Image
}

// Recorder is a Canvas that records commands instead of drawing. Its
// Image is always transparent.
type Recorder struct {
	width, height int
	commands      []Command
	depth         int
	closed        bool
}

// NewRecorder creates an empty recorder of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: max(width, 1), height: max(height, 1)}
}

// Commands returns the recorded commands in call order.
func (r *Recorder) Commands() []Command { return r.commands }

// Ops returns just the operation codes of the recorded commands.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.commands))
	for i, c := range r.commands {
		ops[i] = c.Op
	}
	return ops
}

// Texts returns the strings passed to DrawText in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.commands {
		if c.Op == OpDrawText {
			out = append(out, c.Text)
		}
	}
	return out
}

// ClipDepth returns the number of clips pushed and not yet popped.
func (r *Recorder) ClipDepth() int { return r.depth }

// Closed reports whether Close has been called.
func (r *Recorder) Closed() bool { return r.closed }

// Reset discards the recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.depth = 0
}

func (r *Recorder) Width() int  { return r.width }
func (r *Recorder) Height() int { return r.height }

func (r *Recorder) Clear(c gg.RGBA) {
	r.commands = append(r.commands, Command{
		Op:     OpClear,
		Bounds: image.Rect(0, 0, r.width, r.height),
		Color:  c,
	})
}

func (r *Recorder) FillPath(p *gg.Path, b gg.Brush) error {
	r.commands = append(r.commands, Command{Op: OpFillPath, Bounds: pathBounds(p), Brush: b})
	return nil
}

func (r *Recorder) StrokePath(p *gg.Path, c gg.RGBA, width float64) error {
	r.commands = append(r.commands, Command{Op: OpStrokePath, Bounds: pathBounds(p), Color: c, Width: width})
	return nil
}

func (r *Recorder) DrawImage(img image.Image, dst image.Rectangle, opacity float64) {
	r.commands = append(r.commands, Command{Op: OpDrawImage, Bounds: dst, Opacity: opacity, Source: img})
}

func (r *Recorder) DrawText(s string, rect image.Rectangle, opts TextOptions) {
	r.commands = append(r.commands, Command{Op: OpDrawText, Bounds: rect, Text: s, Color: opts.Color, Options: opts})
}

func (r *Recorder) PushClip(rect image.Rectangle) {
	r.depth++
	r.commands = append(r.commands, Command{Op: OpPushClip, Bounds: rect})
}

func (r *Recorder) PopClip() {
	if r.depth > 0 {
		r.depth--
	}
	r.commands = append(r.commands, Command{Op: OpPopClip})
}

func (r *Recorder) Image() image.Image {
	return image.NewRGBA(image.Rect(0, 0, r.width, r.height))
}

func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// pathBounds returns the integer box enclosing p.
func pathBounds(p *gg.Path) image.Rectangle {
	if p == nil || p.NumVerbs() == 0 {
		return image.Rectangle{}
	}
	bb := p.BoundingBox()
	return image.Rect(int(bb.Min.X), int(bb.Min.Y), int(bb.Max.X+0.999), int(bb.Max.Y+0.999))
}
