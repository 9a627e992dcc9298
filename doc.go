// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tabstrip is an owner-drawn tab strip engine built on gg.
//
// # Overview
//
// A Control keeps an ordered list of tabs, lays them out in one or more
// rows along an edge of its area and paints them through a pluggable
// visual style. It has no window of its own: the host forwards size,
// pointer and focus changes and hands the control a canvas to paint
// into.
//
// # Quick Start
//
//	c, err := tabstrip.New(
//	    tabstrip.WithStyle(tabstrip.StyleChrome),
//	    tabstrip.WithSize(480, 120),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	c.AddTab(tabstrip.NewTab("&Home"), tabstrip.NewTab("Settings"))
//
//	dst := canvas.NewRaster(480, 120)
//	defer dst.Close()
//	if err := c.Paint(dst, c.ClientRect()); err != nil {
//	    log.Fatal(err)
//	}
//	dst.SavePNG("tabs.png")
//
// # Styles
//
// Each Style maps to one geometry Provider that shapes tab outlines,
// chooses fills and places the image and closer rectangles:
//
//   - StyleNone: no strip, the page fills the control
//   - StyleDefault: plain boxes, selected tab raised
//   - StyleAngled: chamfered corners
//   - StyleRounded: rounded corners
//   - StyleVisualStudio: slanted leading edge
//   - StyleChrome: curved browser tabs with a closer
//   - StyleIE8: pale blue rounded tabs with a closer
//   - StyleVS2010: dark IDE tabs
//
// Changing the style replaces the provider. Provider settings such as
// Radius or Opacity are validated and rejected with a wrapped sentinel
// error when out of range.
//
// # Layout
//
// Tab rectangles come from a Metrics implementation. The built-in one
// measures captions with the control font; hosts with native tab
// metrics can supply their own through WithMetrics. Text, image and
// closer rectangles are fitted inside the style outline pixel by pixel,
// so they never escape curved tabs.
//
// # Painting
//
// Paint composes a cached background, the tab layer at the style
// opacity and the page border in off-screen canvases and then copies the
// frame out. Partial repaints are refused and turned into a full
// invalidate. RenderTo skips buffering for vector output.
//
// # Logging
//
// The package is silent by default. See SetLogger.
package tabstrip
