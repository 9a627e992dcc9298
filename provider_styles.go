// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/tabstrip/canvas"
)

// boxBorder draws the three sides of r that are away from the page.
func boxBorder(b *pathBuilder, a Alignment, r Rect) {
	switch a {
	case Top:
		b.line(r.X, r.Bottom(), r.X, r.Y)
		b.line(r.X, r.Y, r.Right(), r.Y)
		b.line(r.Right(), r.Y, r.Right(), r.Bottom())
	case Bottom:
		b.line(r.Right(), r.Y, r.Right(), r.Bottom())
		b.line(r.Right(), r.Bottom(), r.X, r.Bottom())
		b.line(r.X, r.Bottom(), r.X, r.Y)
	case Left:
		b.line(r.Right(), r.Bottom(), r.X, r.Bottom())
		b.line(r.X, r.Bottom(), r.X, r.Y)
		b.line(r.X, r.Y, r.Right(), r.Y)
	case Right:
		b.line(r.X, r.Y, r.Right(), r.Y)
		b.line(r.Right(), r.Y, r.Right(), r.Bottom())
		b.line(r.Right(), r.Bottom(), r.X, r.Bottom())
	default:
		unreachable("alignment", a)
	}
}

// noneStyle hides the strip decorations; the outline is kept so the page
// border can still be welded.
type noneStyle struct{}

func (noneStyle) addTabBorder(p *Provider, b *pathBuilder, r Rect) {
	boxBorder(b, p.ctl.alignment, r)
}

// defaultStyle imitates the stock platform tabs: a plain box where the
// selected tab stands a pixel proud of its neighbours.
type defaultStyle struct{}

func (defaultStyle) addTabBorder(p *Provider, b *pathBuilder, r Rect) {
	boxBorder(b, p.ctl.alignment, r)
}

func (defaultStyle) adjustTabRect(p *Provider, index int, r Rect) Rect {
	return raiseSelected(p, index, r)
}

// raiseSelected grows the selected tab outward and along the row and
// pulls the other tabs back from the outer edge by one pixel.
func raiseSelected(p *Provider, index int, r Rect) Rect {
	c := p.ctl
	if index != c.selected {
		switch c.alignment {
		case Top:
			r.Y++
			r.Height--
		case Bottom:
			r.Height--
		case Left:
			r.X++
			r.Width--
		case Right:
			r.Width--
		default:
			unreachable("alignment", c.alignment)
		}
		return r
	}

	switch c.alignment {
	case Top:
		if r.Y > 0 {
			r.Y--
			r.Height++
		}
	case Bottom:
		if r.Bottom() < c.height {
			r.Height++
		}
	case Left:
		if r.X > 0 {
			r.X--
			r.Width++
		}
	case Right:
		if r.Right() < c.width {
			r.Width++
		}
	default:
		unreachable("alignment", c.alignment)
	}

	first := c.IsFirstTabInRow(index)
	if c.alignment.Horizontal() {
		if first {
			r.Width++
		} else {
			r.X--
			r.Width += 2
		}
	} else {
		if first {
			r.Height++
		} else {
			r.Y--
			r.Height += 2
		}
	}
	return r
}

// angledStyle chamfers both outer corners.
type angledStyle struct{}

func (angledStyle) addTabBorder(p *Provider, b *pathBuilder, r Rect) {
	k := p.cfg.radius
	switch p.ctl.alignment {
	case Top:
		b.line(r.X, r.Bottom(), r.X+k-2, r.Y+2)
		b.line(r.X+k, r.Y, r.Right()-k, r.Y)
		b.line(r.Right()-k+2, r.Y+2, r.Right(), r.Bottom())
	case Bottom:
		b.line(r.Right(), r.Y, r.Right()-k+2, r.Bottom()-2)
		b.line(r.Right()-k, r.Bottom(), r.X+k, r.Bottom())
		b.line(r.X+k-2, r.Bottom()-2, r.X, r.Y)
	case Left:
		b.line(r.Right(), r.Bottom(), r.X+2, r.Bottom()-k+2)
		b.line(r.X, r.Bottom()-k, r.X, r.Y+k)
		b.line(r.X+2, r.Y+k-2, r.Right(), r.Y)
	case Right:
		b.line(r.X, r.Y, r.Right()-2, r.Y+k-2)
		b.line(r.Right(), r.Y+k, r.Right(), r.Bottom()-k)
		b.line(r.Right()-2, r.Bottom()-k+2, r.X, r.Bottom())
	default:
		unreachable("alignment", p.ctl.alignment)
	}
}

// roundedStyle rounds both outer corners with the configured radius.
type roundedStyle struct{}

func (roundedStyle) addTabBorder(p *Provider, b *pathBuilder, r Rect) {
	roundedBorder(b, p.ctl.alignment, r, p.cfg.radius)
}

func roundedBorder(b *pathBuilder, a Alignment, r Rect, k int) {
	d := 2 * k
	switch a {
	case Top:
		b.line(r.X, r.Bottom(), r.X, r.Y+k)
		b.arc(r.X, r.Y, d, d, 180, 90)
		b.line(r.X+k, r.Y, r.Right()-k, r.Y)
		b.arc(r.Right()-d, r.Y, d, d, 270, 90)
		b.line(r.Right(), r.Y+k, r.Right(), r.Bottom())
	case Bottom:
		b.line(r.Right(), r.Y, r.Right(), r.Bottom()-k)
		b.arc(r.Right()-d, r.Bottom()-d, d, d, 0, 90)
		b.line(r.Right()-k, r.Bottom(), r.X+k, r.Bottom())
		b.arc(r.X, r.Bottom()-d, d, d, 90, 90)
		b.line(r.X, r.Bottom()-k, r.X, r.Y)
	case Left:
		b.line(r.Right(), r.Bottom(), r.X+k, r.Bottom())
		b.arc(r.X, r.Bottom()-d, d, d, 90, 90)
		b.line(r.X, r.Bottom()-k, r.X, r.Y+k)
		b.arc(r.X, r.Y, d, d, 180, 90)
		b.line(r.X+k, r.Y, r.Right(), r.Y)
	case Right:
		b.line(r.X, r.Y, r.Right()-k, r.Y)
		b.arc(r.Right()-d, r.Y, d, d, 270, 90)
		b.line(r.Right(), r.Y+k, r.Right(), r.Bottom()-k)
		b.arc(r.Right()-d, r.Bottom()-d, d, d, 0, 90)
		b.line(r.Right()-k, r.Bottom(), r.X, r.Bottom())
	default:
		unreachable("alignment", a)
	}
}

// visualStudioStyle slants the leading edge by the tab thickness and
// rounds the trailing corner.
type visualStudioStyle struct{}

func (visualStudioStyle) addTabBorder(p *Provider, b *pathBuilder, r Rect) {
	switch p.ctl.alignment {
	case Top:
		h := r.Height
		b.line(r.X, r.Bottom(), r.X+h-4, r.Y+2)
		b.line(r.X+h, r.Y, r.Right()-3, r.Y)
		b.arc(r.Right()-6, r.Y, 6, 6, 270, 90)
		b.line(r.Right(), r.Y+3, r.Right(), r.Bottom())
	case Bottom:
		h := r.Height
		b.line(r.Right(), r.Y, r.Right(), r.Bottom()-3)
		b.arc(r.Right()-6, r.Bottom()-6, 6, 6, 0, 90)
		b.line(r.Right()-3, r.Bottom(), r.X+h, r.Bottom())
		b.line(r.X+h-4, r.Bottom()-2, r.X, r.Y)
	case Left:
		w := r.Width
		b.line(r.Right(), r.Bottom(), r.X+3, r.Bottom())
		b.arc(r.X, r.Bottom()-6, 6, 6, 90, 90)
		b.line(r.X, r.Bottom()-3, r.X, r.Y+w)
		b.line(r.X+2, r.Y+w-4, r.Right(), r.Y)
	case Right:
		w := r.Width
		b.line(r.X, r.Y, r.Right()-2, r.Y+w-4)
		b.line(r.Right(), r.Y+w, r.Right(), r.Bottom()-3)
		b.arc(r.Right()-6, r.Bottom()-6, 6, 6, 0, 90)
		b.line(r.Right()-3, r.Bottom(), r.X, r.Bottom())
	default:
		unreachable("alignment", p.ctl.alignment)
	}
}

// chromeStyle draws the browser-style trapezoid with curved flanks. The
// flank breakpoints are fixed fractions of the tab thickness.
type chromeStyle struct{}

func (chromeStyle) addTabBorder(p *Provider, b *pathBuilder, r Rect) {
	a := p.ctl.alignment
	h := r.Height
	if !a.Horizontal() {
		h = r.Width
	}
	spread := h * 2 / 3
	eighth := h / 8
	sixth := h / 6
	quarter := h / 4

	switch a {
	case Top:
		b.curve([]Point{
			Pt(r.X, r.Bottom()),
			Pt(r.X+sixth, r.Bottom()-eighth),
			Pt(r.X+spread-quarter, r.Y+eighth),
			Pt(r.X+spread, r.Y),
		})
		b.line(r.X+spread, r.Y, r.Right()-spread, r.Y)
		b.curve([]Point{
			Pt(r.Right()-spread, r.Y),
			Pt(r.Right()-spread+quarter, r.Y+eighth),
			Pt(r.Right()-sixth, r.Bottom()-eighth),
			Pt(r.Right(), r.Bottom()),
		})
	case Bottom:
		b.curve([]Point{
			Pt(r.Right(), r.Y),
			Pt(r.Right()-sixth, r.Y+eighth),
			Pt(r.Right()-spread+quarter, r.Bottom()-eighth),
			Pt(r.Right()-spread, r.Bottom()),
		})
		b.line(r.Right()-spread, r.Bottom(), r.X+spread, r.Bottom())
		b.curve([]Point{
			Pt(r.X+spread, r.Bottom()),
			Pt(r.X+spread-quarter, r.Bottom()-eighth),
			Pt(r.X+sixth, r.Y+eighth),
			Pt(r.X, r.Y),
		})
	case Left:
		b.curve([]Point{
			Pt(r.Right(), r.Bottom()),
			Pt(r.Right()-eighth, r.Bottom()-sixth),
			Pt(r.X+eighth, r.Bottom()-spread+quarter),
			Pt(r.X, r.Bottom()-spread),
		})
		b.line(r.X, r.Bottom()-spread, r.X, r.Y+spread)
		b.curve([]Point{
			Pt(r.X, r.Y+spread),
			Pt(r.X+eighth, r.Y+spread-quarter),
			Pt(r.Right()-eighth, r.Y+sixth),
			Pt(r.Right(), r.Y),
		})
	case Right:
		b.curve([]Point{
			Pt(r.X, r.Y),
			Pt(r.X+eighth, r.Y+sixth),
			Pt(r.Right()-eighth, r.Y+spread-quarter),
			Pt(r.Right(), r.Y+spread),
		})
		b.line(r.Right(), r.Y+spread, r.Right(), r.Bottom()-spread)
		b.curve([]Point{
			Pt(r.Right(), r.Bottom()-spread),
			Pt(r.Right()-eighth, r.Bottom()-spread+quarter),
			Pt(r.X+eighth, r.Bottom()-sixth),
			Pt(r.X, r.Bottom()),
		})
	default:
		unreachable("alignment", a)
	}
}

// drawCloser shows a red bubble behind the cross while it is hovered.
func (chromeStyle) drawCloser(p *Provider, cv canvas.Canvas, index int) error {
	if !p.cfg.showCloser {
		return nil
	}
	r := p.ctl.TabCloserRect(index)
	if !r.Contains(p.ctl.MousePosition()) {
		return cv.StrokePath(closerPath(r), p.cfg.closerColor, 1)
	}
	bubble := newPathBuilder()
	bubble.ellipse(r.Inflate(2, 2))
	if err := cv.FillPath(bubble.path(), gg.Solid(rgb8(193, 53, 53))); err != nil {
		return err
	}
	return cv.StrokePath(closerPath(r), p.cfg.closerColorActive, 1)
}

// ie8Style uses small rounded corners and a pale blue glass fill. Like
// the default style it raises the selected tab.
type ie8Style struct{}

func (ie8Style) addTabBorder(p *Provider, b *pathBuilder, r Rect) {
	roundedBorder(b, p.ctl.alignment, r, p.cfg.radius)
}

func (ie8Style) adjustTabRect(p *Provider, index int, r Rect) Rect {
	return raiseSelected(p, index, r)
}

func (ie8Style) tabBackground(p *Provider, index int) gg.Brush {
	c := p.ctl
	light, dark := rgb8(227, 234, 244), rgb8(198, 213, 234)
	switch {
	case index == c.selected:
		light, dark = c.theme.Window, rgb8(227, 234, 244)
	case !c.tabs[index].Enabled():
		light = dark
	case p.cfg.hotTrack && index == c.ActiveIndex():
		light, dark = rgb8(234, 246, 253), rgb8(167, 217, 245)
	}
	r := p.TabRect(index).Inflate(3, 3).Offset(-1, -1)
	return alignedGradient(c.alignment, r, light, dark, glassBlend)
}

func (ie8Style) pageBackground(p *Provider, index int) gg.Brush {
	c := p.ctl
	if index == c.selected {
		return gg.Solid(c.theme.Window)
	}
	return gg.Solid(rgb8(227, 234, 244))
}

// vs2010Style renders the dark blue IDE strip: unselected tabs are
// transparent, the hot tab is lit and the selected tab is the warm
// yellow of the document well.
type vs2010Style struct{}

func (vs2010Style) addTabBorder(p *Provider, b *pathBuilder, r Rect) {
	roundedBorder(b, p.ctl.alignment, r, p.cfg.radius)
}

var (
	vs2010Selected = rgb8(255, 232, 166)
	vs2010Hot      = rgb8(155, 167, 183)
)

func (vs2010Style) tabBackground(p *Provider, index int) gg.Brush {
	c := p.ctl
	r := p.TabRect(index)
	switch {
	case index == c.selected:
		return alignedGradient(c.alignment, r, rgb8(255, 252, 242), vs2010Selected, linearBlend)
	case p.cfg.hotTrack && index == c.ActiveIndex() && c.tabs[index].Enabled():
		return alignedGradient(c.alignment, r, vs2010Hot, rgb8(110, 125, 146), linearBlend)
	}
	return gg.Solid(gg.Transparent)
}

func (vs2010Style) pageBackground(p *Provider, index int) gg.Brush {
	if index == p.ctl.selected {
		return gg.Solid(vs2010Selected)
	}
	return gg.Solid(gg.Transparent)
}

// drawCloser only shows the closer on the selected and the hot tab.
func (vs2010Style) drawCloser(p *Provider, cv canvas.Canvas, index int) error {
	c := p.ctl
	if !p.cfg.showCloser || (index != c.selected && index != c.ActiveIndex()) {
		return nil
	}
	r := c.TabCloserRect(index)
	if r.Contains(c.MousePosition()) {
		box := newPathBuilder()
		box.rect(r.Inflate(2, 2))
		if err := cv.FillPath(box.path(), gg.Solid(gg.White)); err != nil {
			return err
		}
		return cv.StrokePath(closerPath(r), p.cfg.closerColorActive, 1)
	}
	return cv.StrokePath(closerPath(r), p.cfg.closerColor, 1)
}

// alignedGradient orients a two-colour gradient so light sits on the
// outer edge of the tab.
func alignedGradient(a Alignment, r Rect, light, dark gg.RGBA, bl blend) gg.Brush {
	switch a {
	case Top:
		return gradient(r, light, dark, true, bl)
	case Bottom:
		return gradient(r, dark, light, true, bl)
	case Left:
		return gradient(r, light, dark, false, bl)
	case Right:
		return gradient(r, dark, light, false, bl)
	}
	unreachable("alignment", a)
	return nil
}
