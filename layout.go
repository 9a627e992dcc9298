// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

// DisplayRect returns the page area left over by the tab strip.
func (c *Control) DisplayRect() Rect {
	if c.style == StyleNone {
		return R(0, 0, c.width, c.height)
	}
	strip := 5 + c.metrics.RowExtent()*c.metrics.RowCount()
	switch c.alignment {
	case Top:
		return R(4, strip, c.width-8, c.height-strip-4)
	case Bottom:
		return R(4, 4, c.width-8, c.height-strip-4)
	case Left:
		return R(strip, 4, c.width-strip-4, c.height-8)
	case Right:
		return R(4, 4, c.width-strip-4, c.height-8)
	}
	unreachable("alignment", c.alignment)
	return Rect{}
}

// PageBounds returns the page rectangle the tab outlines weld onto: the
// display rectangle grown by one pixel up and left and kept four pixels
// clear of the bottom edge.
func (c *Control) PageBounds() Rect {
	r := c.DisplayRect()
	r.X--
	r.Y--
	r.Width++
	r.Height++
	if r.Bottom() > c.height-4 {
		r.Height -= r.Bottom() - c.height + 4
	}
	return r
}

// IsFirstTabInRow reports whether the tab at index starts a row.
func (c *Control) IsFirstTabInRow(index int) bool {
	if index < 0 {
		return false
	}
	if index == 0 {
		return true
	}
	r := c.metrics.TabBounds(index)
	if c.alignment.Horizontal() {
		return r.X == stripOrigin
	}
	return r.Y == stripOrigin
}

// TabRow returns the row holding the tab at index, counted from the row
// nearest the control edge.
func (c *Control) TabRow(index int) int {
	r := c.metrics.TabBounds(index)
	switch c.alignment {
	case Top:
		if r.Height == 0 {
			return 0
		}
		return (r.Y - stripOrigin) / r.Height
	case Bottom:
		if r.Height == 0 {
			return 0
		}
		return (c.height-r.Y-stripOrigin)/r.Height - 1
	case Left:
		if r.Width == 0 {
			return 0
		}
		return (r.X - stripOrigin) / r.Width
	case Right:
		if r.Width == 0 {
			return 0
		}
		return (c.width-r.X-stripOrigin)/r.Width - 1
	}
	unreachable("alignment", c.alignment)
	return -1
}

// TabPosition returns the (row, column) of the tab at index. Single-row
// strips report row 0 and the index as column.
func (c *Control) TabPosition(index int) (row, column int) {
	if !c.wraps() || c.metrics.RowCount() == 1 {
		return 0, index
	}
	row = c.TabRow(index)
	r := c.metrics.TabBounds(index)
	column = -1
	for i := range c.tabs {
		t := c.metrics.TabBounds(i)
		if c.alignment.Horizontal() {
			if t.Y == r.Y {
				column++
			}
		} else if t.X == r.X {
			column++
		}
		if t.Location() == r.Location() {
			return row, column
		}
	}
	return 0, 0
}

// TabPageBorder returns the outline of the tab at index welded to the
// page rectangle.
func (c *Control) TabPageBorder(index int) *Outline {
	page := c.PageBounds()
	tab := c.provider.TabRect(index)
	b := newPathBuilder()
	c.provider.v.addTabBorder(c.provider, b, tab)
	switch c.alignment {
	case Top:
		b.line(tab.Right(), page.Y, page.Right(), page.Y)
		b.line(page.Right(), page.Y, page.Right(), page.Bottom())
		b.line(page.Right(), page.Bottom(), page.X, page.Bottom())
		b.line(page.X, page.Bottom(), page.X, page.Y)
		b.line(page.X, page.Y, tab.X, page.Y)
	case Bottom:
		b.line(tab.X, page.Bottom(), page.X, page.Bottom())
		b.line(page.X, page.Bottom(), page.X, page.Y)
		b.line(page.X, page.Y, page.Right(), page.Y)
		b.line(page.Right(), page.Y, page.Right(), page.Bottom())
		b.line(page.Right(), page.Bottom(), tab.Right(), page.Bottom())
	case Left:
		b.line(page.X, tab.Y, page.X, page.Y)
		b.line(page.X, page.Y, page.Right(), page.Y)
		b.line(page.Right(), page.Y, page.Right(), page.Bottom())
		b.line(page.Right(), page.Bottom(), page.X, page.Bottom())
		b.line(page.X, page.Bottom(), page.X, tab.Bottom())
	case Right:
		b.line(page.Right(), tab.Bottom(), page.Right(), page.Bottom())
		b.line(page.Right(), page.Bottom(), page.X, page.Bottom())
		b.line(page.X, page.Bottom(), page.X, page.Y)
		b.line(page.X, page.Y, page.Right(), page.Y)
		b.line(page.Right(), page.Y, page.Right(), tab.Y)
	default:
		unreachable("alignment", c.alignment)
	}
	return NewOutline(b.path())
}

// contentRect is the tab outline bounds less the padding that keeps
// content off the page edge and the outer edge.
func (c *Control) contentRect(border *Outline) Rect {
	r := border.Bounds()
	switch c.alignment {
	case Top:
		r.Y += 4
		r.Height -= 6
	case Bottom:
		r.Y += 2
		r.Height -= 6
	case Left:
		r.X += 4
		r.Width -= 6
	case Right:
		r.X += 2
		r.Width -= 6
	default:
		unreachable("alignment", c.alignment)
	}
	return r
}

// TabImageRect returns the 16x16 image rectangle of the tab at index, or
// an empty Rect when index is out of range.
func (c *Control) TabImageRect(index int) Rect {
	if !c.hasIndex(index) {
		return Rect{}
	}
	return c.imageRect(c.provider.TabBorder(index))
}

func (c *Control) imageRect(border *Outline) Rect {
	r := c.contentRect(border)
	p := c.provider
	var img Rect
	if c.alignment.Horizontal() {
		y := r.Y + (r.Height-imageSize)/2
		switch p.cfg.imageAlign {
		case ImageAlignLeft:
			img = R(r.X, y, imageSize, imageSize)
			for limit := r.Width; !border.Contains(img.X, img.Y) && limit > 0; limit-- {
				img.X++
			}
			img.X += 4
		case ImageAlignCenter:
			img = R(r.X+(r.Right()-r.X-r.Height+2)/2, y, imageSize, imageSize)
		case ImageAlignRight:
			img = R(r.Right(), y, imageSize, imageSize)
			for limit := r.Width; !border.Contains(img.Right(), img.Y) && limit > 0; limit-- {
				img.X--
			}
			img.X -= 4
			if p.cfg.showCloser && !c.rtl {
				img.X -= 10
			}
		default:
			unreachable("image alignment", p.cfg.imageAlign)
		}
		return img
	}

	x := r.X + (r.Width-imageSize)/2
	switch p.cfg.imageAlign {
	case ImageAlignLeft:
		img = R(x, r.Y, imageSize, imageSize)
		for limit := r.Height; !border.Contains(img.X, img.Y) && limit > 0; limit-- {
			img.Y++
		}
		img.Y += 4
	case ImageAlignCenter:
		img = R(x, r.Y+(r.Bottom()-r.Y-r.Width+2)/2, imageSize, imageSize)
	case ImageAlignRight:
		img = R(x, r.Bottom(), imageSize, imageSize)
		for limit := r.Height; !border.Contains(img.X, img.Bottom()) && limit > 0; limit-- {
			img.Y--
		}
		img.Y -= 4
		if p.cfg.showCloser && !c.rtl {
			img.Y -= 10
		}
	default:
		unreachable("image alignment", p.cfg.imageAlign)
	}
	return img
}

// TabCloserRect returns the 6x6 closer rectangle of the tab at index. It
// sits at the trailing end of the tab, or the leading end when mirrored.
func (c *Control) TabCloserRect(index int) Rect {
	if !c.hasIndex(index) {
		return Rect{}
	}
	return c.closerRect(c.provider.TabBorder(index))
}

func (c *Control) closerRect(border *Outline) Rect {
	r := c.contentRect(border)
	var cr Rect
	if c.alignment.Horizontal() {
		y := r.Y + (r.Height-closerSize)/2
		if c.rtl {
			cr = R(r.X, y, closerSize, closerSize)
			for !border.Contains(cr.X, cr.Y) && cr.Right() < c.width {
				cr.X++
			}
			cr.X += 4
		} else {
			cr = R(r.Right(), y, closerSize, closerSize)
			for !border.Contains(cr.Right(), cr.Y) && cr.Right() > -closerSize {
				cr.X--
			}
			cr.X -= 4
		}
		return cr
	}

	x := r.X + (r.Width-closerSize)/2
	if c.rtl {
		cr = R(x, r.Y, closerSize, closerSize)
		for !border.Contains(cr.X, cr.Y) && cr.Bottom() < c.height {
			cr.Y++
		}
		cr.Y += 4
	} else {
		cr = R(x, r.Bottom(), closerSize, closerSize)
		for !border.Contains(cr.X, cr.Bottom()) && cr.Y > -closerSize {
			cr.Y--
		}
		cr.Y -= 4
	}
	return cr
}

// TabTextRect returns the caption rectangle of the tab at index. It
// avoids the image and the closer and is shrunk until its corners lie
// within the tab outline.
func (c *Control) TabTextRect(index int) Rect {
	if !c.hasIndex(index) {
		return Rect{}
	}
	border := c.provider.TabBorder(index)
	bounds := border.Bounds()
	r := c.contentRect(border)
	p := c.provider
	horizontal := c.alignment.Horizontal()

	if c.tabs[index].Image != nil {
		img := c.imageRect(border)
		switch p.cfg.imageAlign {
		case ImageAlignLeft:
			if horizontal {
				r.X = img.Right() + 4
				r.Width -= r.Right() - bounds.Right()
			} else {
				r.Y = img.Bottom() + 4
				r.Height -= r.Bottom() - bounds.Bottom()
			}
		case ImageAlignCenter:
		case ImageAlignRight:
			if horizontal {
				r.Width -= bounds.Right() - img.X + 4
			} else {
				r.Height -= bounds.Bottom() - img.Y + 4
			}
		default:
			unreachable("image alignment", p.cfg.imageAlign)
		}
	}

	if p.cfg.showCloser {
		cr := c.closerRect(border)
		switch {
		case horizontal && c.rtl:
			r.Width -= cr.Right() + 4 - r.X
			r.X = cr.Right() + 4
		case horizontal:
			r.Width -= bounds.Right() - cr.X + 4
		case c.rtl:
			r.Height -= cr.Bottom() + 4 - r.Y
			r.Y = cr.Bottom() + 4
		default:
			r.Height -= bounds.Bottom() - cr.Y + 4
		}
	}

	// Pull the trailing then the leading edge in until both of its
	// corners are inside the outline.
	if horizontal {
		for r.Width > 0 && !(border.Contains(r.Right(), r.Y) && border.Contains(r.Right(), r.Bottom())) {
			r.Width--
		}
		for r.Width > 0 && !(border.Contains(r.X, r.Y) && border.Contains(r.X, r.Bottom())) {
			r.X++
			r.Width--
		}
	} else {
		for r.Height > 0 && !(border.Contains(r.X, r.Bottom()) && border.Contains(r.Right(), r.Bottom())) {
			r.Height--
		}
		for r.Height > 0 && !(border.Contains(r.X, r.Y) && border.Contains(r.Right(), r.Y)) {
			r.Y++
			r.Height--
		}
	}
	return r
}

func (c *Control) hasIndex(index int) bool {
	return index >= 0 && index < len(c.tabs)
}
