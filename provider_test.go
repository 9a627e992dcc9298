// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"errors"
	"fmt"
	"image"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestHostPadding(t *testing.T) {
	tests := []struct {
		style Style
		want  Point
	}{
		{StyleNone, Pt(5, 3)},
		{StyleDefault, Pt(6, 3)},
		{StyleAngled, Pt(14, 3)},
		{StyleRounded, Pt(10, 3)},
		{StyleVisualStudio, Pt(13, 1)},
		{StyleChrome, Pt(21, 5)},
		{StyleIE8, Pt(13, 5)},
		{StyleVS2010, Pt(13, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			c := newTestControl(t, WithStyle(tt.style))
			if got := c.Provider().HostPadding(); got != tt.want {
				t.Errorf("HostPadding() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHostPaddingClamp(t *testing.T) {
	c := newTestControl(t)
	p := c.Provider()

	p.SetPadding(Pt(-10, 2))
	if got := p.HostPadding(); got != Pt(0, 2) {
		t.Errorf("no closer: HostPadding() = %v, want (0,2)", got)
	}

	p.SetShowCloser(true)
	if got := p.HostPadding(); got != Pt(0, 2) {
		t.Errorf("closer: HostPadding() = %v, want (0,2)", got)
	}

	p.SetPadding(Pt(-4, 2))
	// -4 + 1 + 6
	if got := p.HostPadding(); got != Pt(3, 2) {
		t.Errorf("closer: HostPadding() = %v, want (3,2)", got)
	}
}

func TestSetOpacityBoundaries(t *testing.T) {
	p := newTestControl(t).Provider()
	for _, v := range []float64{-0.1, 1.1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := p.SetOpacity(v); !errors.Is(err, ErrInvalidOpacity) {
			t.Errorf("SetOpacity(%g) error = %v, want ErrInvalidOpacity", v, err)
		}
		if p.Opacity() != 1 {
			t.Errorf("SetOpacity(%g) changed opacity to %g", v, p.Opacity())
		}
	}
	for _, v := range []float64{0, 1} {
		if err := p.SetOpacity(v); err != nil {
			t.Errorf("SetOpacity(%g) = %v, want nil", v, err)
		}
		if p.Opacity() != v {
			t.Errorf("Opacity() = %g, want %g", p.Opacity(), v)
		}
	}
}

func TestSetRadiusAndOverlapValidation(t *testing.T) {
	p := newTestControl(t, WithStyle(StyleRounded)).Provider()

	if err := p.SetRadius(0); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("SetRadius(0) error = %v, want ErrInvalidRadius", err)
	}
	if p.Radius() != 10 {
		t.Errorf("Radius() = %d after rejected set, want 10", p.Radius())
	}
	if err := p.SetRadius(1); err != nil {
		t.Errorf("SetRadius(1) = %v", err)
	}

	if err := p.SetOverlap(-1); !errors.Is(err, ErrInvalidOverlap) {
		t.Errorf("SetOverlap(-1) error = %v, want ErrInvalidOverlap", err)
	}
	if err := p.SetOverlap(0); err != nil {
		t.Errorf("SetOverlap(0) = %v", err)
	}
}

func TestColorFallsBackToTheme(t *testing.T) {
	c := newTestControl(t)
	p := c.Provider()

	if got := p.BorderColor(); got != c.Theme().ControlDark {
		t.Errorf("unset BorderColor() = %v, want theme ControlDark", got)
	}

	red := gg.RGB(1, 0, 0)
	p.SetBorderColor(red)
	if got := p.BorderColor(); got != red {
		t.Errorf("BorderColor() = %v, want %v", got, red)
	}

	// Writing the default stores unset, so a theme change shows through.
	p.SetBorderColor(c.Theme().ControlDark)
	c.SetTheme(DarkTheme())
	if got := p.BorderColor(); got != DarkTheme().ControlDark {
		t.Errorf("BorderColor() after theme change = %v, want %v", got, DarkTheme().ControlDark)
	}

	if got := p.TextColorDisabled(); got != DarkTheme().ControlDark {
		t.Errorf("TextColorDisabled() = %v, want theme ControlDark", got)
	}
}

func TestStyleDefaults(t *testing.T) {
	tests := []struct {
		style   Style
		radius  int
		overlap int
		closer  bool
		align   ImageAlign
	}{
		{StyleNone, 1, 0, false, ImageAlignLeft},
		{StyleDefault, 2, 0, false, ImageAlignLeft},
		{StyleAngled, 10, 7, false, ImageAlignRight},
		{StyleRounded, 10, 0, false, ImageAlignLeft},
		{StyleVisualStudio, 1, 7, false, ImageAlignRight},
		{StyleChrome, 16, 16, true, ImageAlignLeft},
		{StyleIE8, 3, 0, true, ImageAlignLeft},
		{StyleVS2010, 3, 0, true, ImageAlignLeft},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			p := newTestControl(t, WithStyle(tt.style)).Provider()
			if p.Style() != tt.style {
				t.Errorf("Style() = %v", p.Style())
			}
			if p.Radius() != tt.radius || p.Overlap() != tt.overlap ||
				p.ShowCloser() != tt.closer || p.ImageAlign() != tt.align {
				t.Errorf("got radius=%d overlap=%d closer=%v align=%v",
					p.Radius(), p.Overlap(), p.ShowCloser(), p.ImageAlign())
			}
		})
	}
}

func TestStyleChangeReplacesProvider(t *testing.T) {
	c := newTestControl(t)
	addTabs(c, "One", "Two")
	before := c.Provider()
	if err := before.SetOpacity(0.5); err != nil {
		t.Fatal(err)
	}

	if err := c.SetStyle(StyleRounded); err != nil {
		t.Fatal(err)
	}
	after := c.Provider()
	if after == before {
		t.Fatal("SetStyle kept the old provider")
	}
	if after.Opacity() != 1 {
		t.Errorf("new provider opacity = %g, want 1", after.Opacity())
	}
	if c.TabCount() != 2 || c.SelectedIndex() != 0 {
		t.Errorf("tabs=%d selected=%d after style change", c.TabCount(), c.SelectedIndex())
	}

	// The detached provider no longer drives the control.
	c.dirty = false
	before.SetHotTrack(false)
	if c.NeedsPaint() {
		t.Error("detached provider invalidated the control")
	}

	if err := c.SetStyle(Style(42)); !errors.Is(err, ErrUnknownName) {
		t.Errorf("SetStyle(42) error = %v, want ErrUnknownName", err)
	}
}

// forEachLayout runs fn for every style and alignment with three tabs,
// the middle one selected.
func forEachLayout(t *testing.T, fn func(t *testing.T, c *Control)) {
	for _, s := range Styles() {
		for _, a := range []Alignment{Top, Bottom, Left, Right} {
			t.Run(fmt.Sprintf("%v/%v", s, a), func(t *testing.T) {
				c := newTestControl(t, WithStyle(s), WithAlignment(a), WithSize(400, 400))
				addTabs(c, "First", "Second", "Third")
				c.SelectIndex(1)
				fn(t, c)
			})
		}
	}
}

func TestTabBorderEnvelope(t *testing.T) {
	forEachLayout(t, func(t *testing.T, c *Control) {
		for i := range c.TabCount() {
			tab := c.Provider().TabRect(i)
			border := c.Provider().TabBorder(i)

			verbs := border.Path().Verbs()
			if len(verbs) == 0 || verbs[len(verbs)-1] != gg.Close {
				t.Errorf("tab %d: border path is not closed", i)
			}

			b := border.Bounds()
			outer := tab.Inflate(1, 1)
			if b.X < outer.X || b.Y < outer.Y || b.Right() > outer.Right() || b.Bottom() > outer.Bottom() {
				t.Errorf("tab %d: border bounds %v escape %v", i, b, tab)
			}
			if b.Width < tab.Width-2 || b.Height < tab.Height-2 {
				t.Errorf("tab %d: border bounds %v much smaller than %v", i, b, tab)
			}
		}
	})
}

func TestTextRectInsideBorder(t *testing.T) {
	forEachLayout(t, func(t *testing.T, c *Control) {
		for i := range c.TabCount() {
			r := c.TabTextRect(i)
			if r.Empty() {
				continue
			}
			border := c.Provider().TabBorder(i)
			if !border.ContainsRect(r) {
				t.Errorf("tab %d: text rect %v escapes border %v", i, r, border.Bounds())
			}
		}
	})
}

func TestTextRectNotEmpty(t *testing.T) {
	for _, s := range []Style{StyleDefault, StyleRounded, StyleChrome} {
		c := newTestControl(t, WithStyle(s))
		addTabs(c, "First", "Second")
		for i := range c.TabCount() {
			if r := c.TabTextRect(i); r.Empty() {
				t.Errorf("%v tab %d: empty text rect", s, i)
			}
		}
	}
}

func TestImageAndCloserInsideBorder(t *testing.T) {
	forEachLayout(t, func(t *testing.T, c *Control) {
		c.Provider().SetShowCloser(true)
		for _, tab := range c.Tabs() {
			tab.Image = image.NewRGBA(image.Rect(0, 0, 16, 16))
		}
		c.layoutChanged()
		for i := range c.TabCount() {
			border := c.Provider().TabBorder(i)
			img := c.TabImageRect(i)
			if img.Width != imageSize || img.Height != imageSize {
				t.Errorf("tab %d: image rect %v is not 16x16", i, img)
			}
			cr := c.TabCloserRect(i)
			if cr.Width != closerSize || cr.Height != closerSize {
				t.Errorf("tab %d: closer rect %v is not 6x6", i, cr)
			}
			if !border.Contains(center(cr).X, center(cr).Y) {
				t.Errorf("tab %d: closer %v outside border %v", i, cr, border.Bounds())
			}
		}
	})
}
