// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package canvas defines the drawing surface the tab strip paints on.
//
// A Canvas fills and strokes gg paths, composites images with opacity,
// draws captions and keeps a stack of rectangular clips. The tab strip
// never talks to a window system directly: hosts hand it a Canvas to
// blit into, and the strip allocates its own back buffers through a
// Factory.
//
// # Implementations
//
//   - Raster: CPU rendering through a gg.Context
//   - Recorder: an in-memory command log, used to inspect paint order
//
// The pdfcanvas package provides a vector implementation.
//
// # Registry
//
// Factories are registered by name so configuration can select one:
//
//	f, err := canvas.Lookup("raster")
//	c := f(800, 600)
//	defer c.Close()
package canvas
