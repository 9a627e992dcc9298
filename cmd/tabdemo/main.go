// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command tabdemo renders a tab control to PNG and, optionally, PDF.
//
// The control is described by a config file (see package config) and
// TABSTRIP_ environment variables. With -sheet it instead renders every
// style at every alignment into one contact sheet.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/tabstrip"
	"github.com/gogpu/tabstrip/canvas"
	"github.com/gogpu/tabstrip/config"
	"github.com/gogpu/tabstrip/pdfcanvas"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "config file (toml, yaml or json)")
		style   = flag.String("style", "", "override the configured style")
		output  = flag.String("output", "tabs.png", "PNG output file")
		pdfOut  = flag.String("pdf", "", "also write a PDF to this file")
		sheet   = flag.Bool("sheet", false, "render every style and alignment")
		verbose = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	if *verbose {
		tabstrip.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *style != "" {
		cfg.Style.Name = *style
	}
	if len(cfg.Tabs) == 0 {
		cfg.Tabs = sampleTabs()
		cfg.Control.Selected = 1
	}
	dir := ""
	if *cfgPath != "" {
		dir = filepath.Dir(*cfgPath)
	}

	if *sheet {
		if err := renderSheet(cfg, dir, *output); err != nil {
			log.Fatalf("Failed to render sheet: %v", err)
		}
		log.Printf("Sheet saved to %s\n", *output)
		return
	}

	ctl, err := cfg.Build(dir)
	if err != nil {
		log.Fatalf("Failed to build control: %v", err)
	}
	defer ctl.Close()

	if err := renderPNG(ctl, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Tabs saved to %s (%s, %dx%d)\n", *output, ctl.Style(), ctl.Size().Width, ctl.Size().Height)

	if *pdfOut != "" {
		if err := renderPDF(ctl, *pdfOut); err != nil {
			log.Fatalf("Failed to save PDF: %v", err)
		}
		log.Printf("PDF saved to %s\n", *pdfOut)
	}
}

func sampleTabs() []config.TabConfig {
	return []config.TabConfig{
		{Key: "home", Text: "&Home"},
		{Key: "settings", Text: "&Settings"},
		{Key: "logs", Text: "&Logs", Disabled: true},
		{Key: "about", Text: "&About"},
	}
}

func renderPNG(ctl *tabstrip.Control, path string) error {
	size := ctl.Size()
	dst := canvas.NewRaster(size.Width, size.Height)
	defer dst.Close()
	if err := ctl.Paint(dst, ctl.ClientRect()); err != nil {
		return err
	}
	return dst.SavePNG(path)
}

func renderPDF(ctl *tabstrip.Control, path string) error {
	size := ctl.Size()
	dst := pdfcanvas.New(size.Width, size.Height)
	if err := ctl.RenderTo(dst); err != nil {
		return err
	}
	return dst.WriteFile(path)
}

// renderSheet paints one cell per style and alignment, styles down the
// rows and alignments across.
func renderSheet(cfg config.Config, dir, path string) error {
	const gap = 8
	styles := tabstrip.Styles()
	aligns := []tabstrip.Alignment{tabstrip.Top, tabstrip.Bottom, tabstrip.Left, tabstrip.Right}
	cellW, cellH := cfg.Control.Width, cfg.Control.Height

	out := canvas.NewRaster(len(aligns)*(cellW+gap)+gap, len(styles)*(cellH+gap)+gap)
	defer out.Close()
	out.Clear(tabstrip.DefaultTheme().ControlDark)

	for row, s := range styles {
		for col, a := range aligns {
			c := cfg
			c.Style.Name = s.String()
			c.Control.Alignment = a.String()
			ctl, err := c.Build(dir)
			if err != nil {
				return fmt.Errorf("%s/%s: %w", s, a, err)
			}
			cell := canvas.NewRaster(cellW, cellH)
			err = ctl.Paint(cell, ctl.ClientRect())
			_ = ctl.Close()
			if err != nil {
				_ = cell.Close()
				return fmt.Errorf("%s/%s: %w", s, a, err)
			}
			x, y := gap+col*(cellW+gap), gap+row*(cellH+gap)
			out.DrawImage(cell.Image(), cell.Image().Bounds().Add(image.Pt(x, y)), 1)
			_ = cell.Close()
		}
	}
	return out.SavePNG(path)
}
