// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command tabviewer shows a configured tab control in a window. Tabs can
// be selected, closed, reordered by dragging and hidden from the menu.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/tabstrip"
	"github.com/gogpu/tabstrip/config"
	"github.com/gogpu/tabstrip/fynehost"
)

func main() {
	cfgPath := flag.String("config", "", "config file (toml, yaml or json)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if len(cfg.Tabs) == 0 {
		cfg.Tabs = []config.TabConfig{
			{Key: "inbox", Text: "&Inbox"},
			{Key: "drafts", Text: "&Drafts"},
			{Key: "sent", Text: "&Sent"},
			{Key: "archive", Text: "A&rchive"},
		}
	}
	cfg.Control.AllowDrop = true
	dir := ""
	if *cfgPath != "" {
		dir = filepath.Dir(*cfgPath)
	}

	ctl, err := cfg.Build(dir)
	if err != nil {
		log.Fatalf("Failed to build control: %v", err)
	}
	defer ctl.Close()

	application := app.NewWithID("io.gogpu.tabviewer")
	window := application.NewWindow("Tab Viewer")

	status := widget.NewLabel("")
	showStatus := func() {
		t := ctl.SelectedTab()
		if t == nil {
			status.SetText("No tab selected")
			return
		}
		status.SetText(fmt.Sprintf("%s (%d of %d, %d hidden)", t.Key, ctl.SelectedIndex()+1, ctl.TabCount(), len(ctl.HiddenTabs())))
	}
	ctl.OnSelectedIndexChanged(func(tabstrip.TabEvent) { showStatus() })
	ctl.OnTabClosing(func(e *tabstrip.TabCancelEvent) {
		// Keep at least one tab open.
		e.Cancel = ctl.TabCount() == 1
	})

	strip := fynehost.New(ctl)

	styles := widget.NewSelect(styleNames(), func(name string) {
		s, err := tabstrip.ParseStyle(name)
		if err != nil {
			return
		}
		if err := ctl.SetStyle(s); err != nil {
			fyne.LogError("set style", err)
		}
	})
	styles.SetSelected(ctl.Style().String())

	hide := widget.NewButton("Hide tab", func() {
		if t := ctl.SelectedTab(); t != nil && ctl.TabCount() > 1 {
			ctl.HideTab(t)
			showStatus()
		}
	})
	showAll := widget.NewButton("Show all", func() {
		for _, t := range ctl.HiddenTabs() {
			ctl.ShowTab(t)
		}
		showStatus()
	})
	rtl := widget.NewCheck("Right to left", ctl.SetRightToLeft)
	rtl.SetChecked(ctl.RightToLeft())

	toolbar := container.NewHBox(styles, hide, showAll, rtl)
	window.SetContent(container.NewBorder(toolbar, status, nil, nil, strip))
	window.Resize(fyne.NewSize(float32(ctl.Size().Width)+40, float32(ctl.Size().Height)+120))
	window.Canvas().Focus(strip)
	showStatus()
	window.ShowAndRun()
}

func styleNames() []string {
	var names []string
	for _, s := range tabstrip.Styles() {
		names = append(names, s.String())
	}
	return names
}
