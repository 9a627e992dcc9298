// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/tabstrip/canvas"
)

// styleConfig holds the tunables of a geometry provider. Each style
// starts from newStyleConfig and the caller may adjust it through the
// Provider setters.
type styleConfig struct {
	radius     int
	overlap    int
	padding    Point
	opacity    float64
	hotTrack   bool
	focusTrack bool
	showCloser bool
	imageAlign ImageAlign

	focusColor        gg.RGBA
	closerColor       gg.RGBA
	closerColorActive gg.RGBA

	borderColor         optColor
	borderColorSelected optColor
	borderColorHot      optColor
	textColor           optColor
	textColorSelected   optColor
	textColorDisabled   optColor
}

func newStyleConfig(s Style, rtl bool) styleConfig {
	cfg := styleConfig{
		radius:            1,
		padding:           Pt(6, 3),
		opacity:           1,
		hotTrack:          true,
		imageAlign:        ImageAlignLeft,
		focusColor:        rgb8(255, 165, 0),
		closerColor:       rgb8(169, 169, 169),
		closerColorActive: gg.Black,
	}
	if rtl {
		cfg.imageAlign = ImageAlignRight
	}
	switch s {
	case StyleNone:
	case StyleDefault:
		cfg.focusTrack = true
		cfg.radius = 2
	case StyleAngled:
		cfg.imageAlign = ImageAlignRight
		cfg.overlap = 7
		cfg.radius = 10
		cfg.padding = Pt(10, 3)
	case StyleRounded:
		cfg.radius = 10
	case StyleVisualStudio:
		cfg.imageAlign = ImageAlignRight
		cfg.overlap = 7
		cfg.padding = Pt(14, 1)
	case StyleChrome:
		cfg.overlap = 16
		cfg.radius = 16
		cfg.showCloser = true
		cfg.closerColorActive = gg.White
		cfg.padding = Pt(7, 5)
	case StyleIE8:
		cfg.radius = 3
		cfg.focusTrack = true
		cfg.showCloser = true
		cfg.closerColorActive = rgb8(255, 0, 0)
		cfg.padding = Pt(6, 5)
	case StyleVS2010:
		cfg.radius = 3
		cfg.showCloser = true
		cfg.padding = Pt(6, 5)
		cfg.closerColor = rgb8(117, 99, 61)
		cfg.textColor = optColor{c: gg.White, set: true}
		cfg.borderColor = optColor{c: gg.Transparent, set: true}
		cfg.borderColorHot = optColor{c: rgb8(155, 167, 183), set: true}
		cfg.borderColorSelected = optColor{c: rgb8(155, 167, 183), set: true}
	default:
		unreachable("style", s)
	}
	return cfg
}

// variant draws the outline that distinguishes one style from another.
// Styles that need more than an outline implement the optional
// interfaces below.
type variant interface {
	addTabBorder(p *Provider, b *pathBuilder, bounds Rect)
}

// tabRectAdjuster resizes tabs by selection state.
type tabRectAdjuster interface {
	adjustTabRect(p *Provider, index int, r Rect) Rect
}

// backgroundBrusher supplies custom tab and page fills.
type backgroundBrusher interface {
	tabBackground(p *Provider, index int) gg.Brush
	pageBackground(p *Provider, index int) gg.Brush
}

// closerPainter draws the close button.
type closerPainter interface {
	drawCloser(p *Provider, cv canvas.Canvas, index int) error
}

// Provider computes the style-specific geometry and fills of a Control.
// A provider is bound to one control and replaced, never mutated into
// another style, when the control style changes.
type Provider struct {
	style Style
	ctl   *Control
	cfg   styleConfig
	v     variant
}

func newProvider(c *Control, s Style) *Provider {
	p := &Provider{style: s, ctl: c, cfg: newStyleConfig(s, c.rtl)}
	switch s {
	case StyleNone:
		p.v = noneStyle{}
	case StyleDefault:
		p.v = defaultStyle{}
	case StyleAngled:
		p.v = angledStyle{}
	case StyleRounded:
		p.v = roundedStyle{}
	case StyleVisualStudio:
		p.v = visualStudioStyle{}
	case StyleChrome:
		p.v = chromeStyle{}
	case StyleIE8:
		p.v = ie8Style{}
	case StyleVS2010:
		p.v = vs2010Style{}
	default:
		unreachable("style", s)
	}
	return p
}

// Style returns the style this provider implements.
func (p *Provider) Style() Style { return p.style }

// Radius returns the corner radius.
func (p *Provider) Radius() int { return p.cfg.radius }

// SetRadius sets the corner radius. Values below 1 are rejected.
func (p *Provider) SetRadius(r int) error {
	if r < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRadius, r)
	}
	p.cfg.radius = r
	p.changed(true)
	return nil
}

// Overlap returns how far each tab extends under its leading neighbour.
func (p *Provider) Overlap() int { return p.cfg.overlap }

// SetOverlap sets the tab overlap. Negative values are rejected.
func (p *Provider) SetOverlap(o int) error {
	if o < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidOverlap, o)
	}
	p.cfg.overlap = o
	p.changed(false)
	return nil
}

// Padding returns the style padding before radius and closer
// compensation.
func (p *Provider) Padding() Point { return p.cfg.padding }

// SetPadding sets the style padding. The padding the layout uses is
// derived from it; see HostPadding.
func (p *Provider) SetPadding(pad Point) {
	p.cfg.padding = pad
	p.changed(true)
}

// HostPadding returns the padding applied around captions by the layout.
// It leaves room for rounded corners and for the closer button.
func (p *Provider) HostPadding() Point {
	x, half := p.cfg.padding.X, p.cfg.radius/2
	if p.cfg.showCloser {
		if x+half < -6 {
			return Pt(0, p.cfg.padding.Y)
		}
		return Pt(x+half+6, p.cfg.padding.Y)
	}
	if x+half < 1 {
		return Pt(0, p.cfg.padding.Y)
	}
	return Pt(x+half-1, p.cfg.padding.Y)
}

// Opacity returns the opacity of the tab layer.
func (p *Provider) Opacity() float64 { return p.cfg.opacity }

// SetOpacity sets the tab layer opacity. Values outside [0, 1] are
// rejected.
func (p *Provider) SetOpacity(o float64) error {
	if !(o >= 0 && o <= 1) {
		return fmt.Errorf("%w: got %g", ErrInvalidOpacity, o)
	}
	p.cfg.opacity = o
	p.changed(false)
	return nil
}

func (p *Provider) HotTrack() bool { return p.cfg.hotTrack }

func (p *Provider) SetHotTrack(v bool) {
	p.cfg.hotTrack = v
	p.changed(false)
}

func (p *Provider) FocusTrack() bool { return p.cfg.focusTrack }

func (p *Provider) SetFocusTrack(v bool) {
	p.cfg.focusTrack = v
	p.changed(false)
}

// ShowCloser reports whether tabs carry a close button.
func (p *Provider) ShowCloser() bool { return p.cfg.showCloser }

// SetShowCloser toggles the close button. Captions are re-padded.
func (p *Provider) SetShowCloser(v bool) {
	p.cfg.showCloser = v
	p.changed(true)
}

func (p *Provider) ImageAlign() ImageAlign { return p.cfg.imageAlign }

func (p *Provider) SetImageAlign(a ImageAlign) {
	p.cfg.imageAlign = a
	p.changed(false)
}

func (p *Provider) FocusColor() gg.RGBA { return p.cfg.focusColor }

func (p *Provider) SetFocusColor(c gg.RGBA) {
	p.cfg.focusColor = c
	p.changed(false)
}

func (p *Provider) CloserColor() gg.RGBA { return p.cfg.closerColor }

func (p *Provider) SetCloserColor(c gg.RGBA) {
	p.cfg.closerColor = c
	p.changed(false)
}

func (p *Provider) CloserColorActive() gg.RGBA { return p.cfg.closerColorActive }

func (p *Provider) SetCloserColorActive(c gg.RGBA) {
	p.cfg.closerColorActive = c
	p.changed(false)
}

// BorderColor returns the border of unselected tabs. Unset values
// follow the theme's ControlDark.
func (p *Provider) BorderColor() gg.RGBA {
	return p.cfg.borderColor.or(p.ctl.theme.ControlDark)
}

// SetBorderColor sets the border of unselected tabs. Passing the theme
// default clears the override.
func (p *Provider) SetBorderColor(c gg.RGBA) {
	p.cfg.borderColor.assign(c, p.ctl.theme.ControlDark)
	p.changed(false)
}

func (p *Provider) BorderColorSelected() gg.RGBA {
	return p.cfg.borderColorSelected.or(p.ctl.theme.ToolBorder)
}

func (p *Provider) SetBorderColorSelected(c gg.RGBA) {
	p.cfg.borderColorSelected.assign(c, p.ctl.theme.ToolBorder)
	p.changed(false)
}

func (p *Provider) BorderColorHot() gg.RGBA {
	return p.cfg.borderColorHot.or(p.ctl.theme.ControlDark)
}

func (p *Provider) SetBorderColorHot(c gg.RGBA) {
	p.cfg.borderColorHot.assign(c, p.ctl.theme.ControlDark)
	p.changed(false)
}

func (p *Provider) TextColor() gg.RGBA {
	return p.cfg.textColor.or(p.ctl.theme.ControlText)
}

func (p *Provider) SetTextColor(c gg.RGBA) {
	p.cfg.textColor.assign(c, p.ctl.theme.ControlText)
	p.changed(false)
}

func (p *Provider) TextColorSelected() gg.RGBA {
	return p.cfg.textColorSelected.or(p.ctl.theme.ControlText)
}

func (p *Provider) SetTextColorSelected(c gg.RGBA) {
	p.cfg.textColorSelected.assign(c, p.ctl.theme.ControlText)
	p.changed(false)
}

func (p *Provider) TextColorDisabled() gg.RGBA {
	return p.cfg.textColorDisabled.or(p.ctl.theme.ControlDark)
}

func (p *Provider) SetTextColorDisabled(c gg.RGBA) {
	p.cfg.textColorDisabled.assign(c, p.ctl.theme.ControlDark)
	p.changed(false)
}

func (p *Provider) changed(relayout bool) {
	if p.ctl.provider != p {
		return
	}
	if relayout {
		p.ctl.layoutChanged()
	}
	p.ctl.Invalidate()
}

// TabRect returns the painted rectangle of the tab at index: the host
// rectangle mirrored for right-to-left layout, stretched over the page
// edge and under the leading neighbour, then adjusted per style. An out
// of range index yields the empty rectangle.
func (p *Provider) TabRect(index int) Rect {
	c := p.ctl
	if index < 0 || index >= len(c.tabs) {
		return Rect{}
	}
	r := c.metrics.TabBounds(index)
	if c.rtl {
		r.X = c.width - r.Right()
	}
	first := c.IsFirstTabInRow(index)

	switch c.alignment {
	case Top:
		r.Height += 2
	case Bottom:
		r.Height += 2
		r.Y -= 2
	case Left:
		r.Width += 2
	case Right:
		r.X -= 2
		r.Width += 2
	default:
		unreachable("alignment", c.alignment)
	}

	if (!first || c.rtl) && p.cfg.overlap > 0 {
		if c.alignment.Horizontal() {
			r.X -= p.cfg.overlap
			r.Width += p.cfg.overlap
		} else {
			r.Y -= p.cfg.overlap
			r.Height += p.cfg.overlap
		}
	}
	r = p.ensureFirstTabIsInView(r, index)

	if a, ok := p.v.(tabRectAdjuster); ok {
		r = a.adjustTabRect(p, index, r)
		r = p.ensureFirstTabIsInView(r, index)
	}
	return r
}

// ensureFirstTabIsInView clips the first tab of a row to the page edge
// while the tab is on screen.
func (p *Provider) ensureFirstTabIsInView(r Rect, index int) Rect {
	c := p.ctl
	if !c.IsFirstTabInRow(index) {
		return r
	}
	page := c.PageBounds()
	if c.alignment.Horizontal() {
		if c.rtl {
			if r.X < c.width && r.Right() > page.Right() {
				r.Width -= r.Right() - page.Right()
			}
		} else if r.Right() > 0 && r.X < page.X {
			r.Width -= page.X - r.X
			r.X = page.X
		}
		return r
	}
	if c.rtl {
		if r.Y < c.height && r.Bottom() > page.Bottom() {
			r.Height -= r.Bottom() - page.Bottom()
		}
	} else if r.Bottom() > 0 && r.Y < page.Y {
		r.Height -= page.Y - r.Y
		r.Y = page.Y
	}
	return r
}

// TabBorder returns the closed outline of the tab at index.
func (p *Provider) TabBorder(index int) *Outline {
	b := newPathBuilder()
	p.v.addTabBorder(p, b, p.TabRect(index))
	return NewOutline(b.path())
}

// blend describes how a two-colour gradient is distributed.
type blend struct {
	factors   []float64
	positions []float64
}

var (
	defaultBlend = blend{factors: []float64{0, 0.7, 1}, positions: []float64{0, 0.6, 1}}
	glassBlend   = blend{factors: []float64{0, 0.5, 1, 1}, positions: []float64{0, 0.5, 0.51, 1}}
	linearBlend  = blend{factors: []float64{0, 1}, positions: []float64{0, 1}}
)

// gradient builds a linear brush across r from start to end.
func gradient(r Rect, start, end gg.RGBA, vertical bool, bl blend) gg.Brush {
	x, y := float64(r.X), float64(r.Y)
	var g *gg.LinearGradientBrush
	if vertical {
		g = gg.NewLinearGradientBrush(x, y, x, y+float64(r.Height))
	} else {
		g = gg.NewLinearGradientBrush(x, y, x+float64(r.Width), y)
	}
	for i, f := range bl.factors {
		g.AddColorStop(bl.positions[i], start.Lerp(end, f))
	}
	return g
}

// TabBackground returns the fill for the tab at index.
func (p *Provider) TabBackground(index int) gg.Brush {
	if bb, ok := p.v.(backgroundBrusher); ok {
		return bb.tabBackground(p, index)
	}
	c := p.ctl
	dark, light := rgb8(207, 207, 207), rgb8(242, 242, 242)
	switch {
	case index == c.selected:
		dark, light = c.theme.ControlLight, c.theme.Window
	case !c.tabs[index].Enabled():
		light = dark
	case p.cfg.hotTrack && index == c.ActiveIndex():
		light, dark = rgb8(234, 246, 253), rgb8(167, 217, 245)
	}

	r := p.TabRect(index).Inflate(3, 3).Offset(-1, -1)
	switch c.alignment {
	case Top:
		if index == c.selected {
			dark = light
		}
		return gradient(r, light, dark, true, glassBlend)
	case Bottom:
		return gradient(r, light, dark, true, defaultBlend)
	case Left:
		return gradient(r, dark, light, false, defaultBlend)
	case Right:
		return gradient(r, light, dark, false, defaultBlend)
	}
	unreachable("alignment", c.alignment)
	return nil
}

// PageBackground returns the fill for the page welded to the tab at
// index.
func (p *Provider) PageBackground(index int) gg.Brush {
	if bb, ok := p.v.(backgroundBrusher); ok {
		return bb.pageBackground(p, index)
	}
	c := p.ctl
	light := rgb8(242, 242, 242)
	if c.alignment == Top {
		light = rgb8(207, 207, 207)
	}
	switch {
	case index == c.selected:
		light = c.theme.Window
	case !c.tabs[index].Enabled():
		light = rgb8(207, 207, 207)
	case p.cfg.hotTrack && index == c.ActiveIndex():
		light = rgb8(234, 246, 253)
	}
	return gg.Solid(light)
}

// paintTab fills the tab outline and draws the focus strip and closer.
func (p *Provider) paintTab(cv canvas.Canvas, index int) error {
	border := p.TabBorder(index)
	if err := cv.FillPath(border.Path(), p.TabBackground(index)); err != nil {
		return err
	}
	if p.ctl.focused {
		if err := p.drawFocusIndicator(cv, border, index); err != nil {
			return err
		}
	}
	if cp, ok := p.v.(closerPainter); ok {
		return cp.drawCloser(p, cv, index)
	}
	return p.drawCloser(cv, index)
}

func (p *Provider) drawCloser(cv canvas.Canvas, index int) error {
	if !p.cfg.showCloser {
		return nil
	}
	r := p.ctl.TabCloserRect(index)
	col := p.cfg.closerColor
	if r.Contains(p.ctl.MousePosition()) {
		col = p.cfg.closerColorActive
	}
	return cv.StrokePath(closerPath(r), col, 1)
}

// closerPath is the cross drawn in a closer rectangle.
func closerPath(r Rect) *gg.Path {
	b := newPathBuilder()
	b.line(r.X, r.Y, r.Right(), r.Bottom())
	b.close()
	b.line(r.Right(), r.Y, r.X, r.Bottom())
	return b.path()
}

// drawFocusIndicator paints a four pixel strip along the outer edge of
// the focused selected tab, clipped to its outline.
func (p *Provider) drawFocusIndicator(cv canvas.Canvas, border *Outline, index int) error {
	c := p.ctl
	if !p.cfg.focusTrack || !c.focused || index != c.selected {
		return nil
	}
	b := border.Bounds()
	var strip Rect
	var fill gg.Brush
	switch c.alignment {
	case Top:
		strip = R(b.X, b.Y, b.Width, 4)
		fill = gradient(strip, p.cfg.focusColor, c.theme.Window, true, linearBlend)
	case Bottom:
		strip = R(b.X, b.Bottom()-4, b.Width, 4)
		fill = gradient(strip, c.theme.ControlLight, p.cfg.focusColor, true, linearBlend)
	case Left:
		strip = R(b.X, b.Y, 4, b.Height)
		fill = gradient(strip, p.cfg.focusColor, c.theme.ControlLight, false, linearBlend)
	case Right:
		strip = R(b.Right()-4, b.Y, 4, b.Height)
		fill = gradient(strip, c.theme.ControlLight, p.cfg.focusColor, false, linearBlend)
	default:
		unreachable("alignment", c.alignment)
	}
	masked := gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		if x < float64(strip.X) || x >= float64(strip.Right()) ||
			y < float64(strip.Y) || y >= float64(strip.Bottom()) {
			return gg.Transparent
		}
		return fill.ColorAt(x, y)
	})
	return cv.FillPath(border.Path(), masked)
}
