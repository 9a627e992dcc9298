// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads tab control settings from a file and the
// environment and turns them into tabstrip options.
//
// Settings are read with viper, so TOML, YAML and JSON files all work.
// Every key can be overridden by an environment variable with the
// TABSTRIP_ prefix, dots replaced by underscores:
//
//	TABSTRIP_STYLE_NAME=Chrome TABSTRIP_CONTROL_WIDTH=640 tabdemo
package config

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // tab image decoders
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/tabstrip"
	"github.com/gogpu/tabstrip/canvas"
	"github.com/spf13/viper"
	_ "golang.org/x/image/bmp"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "TABSTRIP"

// Config is the full configuration of one control.
type Config struct {
	Control ControlConfig `mapstructure:"control"`
	Style   StyleConfig   `mapstructure:"style"`
	Tabs    []TabConfig   `mapstructure:"tabs"`
}

// ControlConfig holds control-wide settings.
type ControlConfig struct {
	Width       int     `mapstructure:"width"`
	Height      int     `mapstructure:"height"`
	Alignment   string  `mapstructure:"alignment"`
	RightToLeft bool    `mapstructure:"right_to_left"`
	Multiline   bool    `mapstructure:"multiline"`
	AllowDrop   bool    `mapstructure:"allow_drop"`
	KeyPreview  bool    `mapstructure:"key_preview"`
	Theme       string  `mapstructure:"theme"`
	FontSize    float64 `mapstructure:"font_size"`
	Backend     string  `mapstructure:"backend"`
	Selected    int     `mapstructure:"selected"`
}

// StyleConfig selects the style and overrides its defaults. Zero
// radius, overlap and padding keep the style value; unset opacity, flags
// and colours do too.
type StyleConfig struct {
	Name       string   `mapstructure:"name"`
	Radius     int      `mapstructure:"radius"`
	Overlap    int      `mapstructure:"overlap"`
	PaddingX   int      `mapstructure:"padding_x"`
	PaddingY   int      `mapstructure:"padding_y"`
	Opacity    *float64 `mapstructure:"opacity"`
	ImageAlign string   `mapstructure:"image_align"`
	HotTrack   *bool    `mapstructure:"hot_track"`
	FocusTrack *bool    `mapstructure:"focus_track"`
	ShowCloser *bool    `mapstructure:"show_closer"`

	BorderColor       string `mapstructure:"border_color"`
	TextColor         string `mapstructure:"text_color"`
	TextColorSelected string `mapstructure:"text_color_selected"`
	FocusColor        string `mapstructure:"focus_color"`
}

// TabConfig describes one tab.
type TabConfig struct {
	Key      string `mapstructure:"key"`
	Text     string `mapstructure:"text"`
	ToolTip  string `mapstructure:"tooltip"`
	Image    string `mapstructure:"image"`
	Disabled bool   `mapstructure:"disabled"`
	Hidden   bool   `mapstructure:"hidden"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("control.width", 400)
	v.SetDefault("control.height", 120)
	v.SetDefault("control.alignment", tabstrip.Top.String())
	v.SetDefault("control.right_to_left", false)
	v.SetDefault("control.multiline", false)
	v.SetDefault("control.allow_drop", false)
	v.SetDefault("control.key_preview", false)
	v.SetDefault("control.theme", "light")
	v.SetDefault("control.font_size", tabstrip.DefaultFontSize)
	v.SetDefault("control.backend", "raster")
	v.SetDefault("control.selected", 0)
	v.SetDefault("style.name", tabstrip.StyleDefault.String())
	v.SetDefault("style.radius", 0)
	v.SetDefault("style.overlap", 0)
	v.SetDefault("style.padding_x", 0)
	v.SetDefault("style.padding_y", 0)
	v.SetDefault("style.opacity", 1.0)
	v.SetDefault("style.image_align", "")
	v.SetDefault("style.border_color", "")
	v.SetDefault("style.text_color", "")
	v.SetDefault("style.text_color_selected", "")
	v.SetDefault("style.focus_color", "")
}

// Load reads the configuration. An explicit path must exist; otherwise
// $TABSTRIP_CONFIG or tabstrip.{toml,yaml,json} in the user config
// directory is read when present. Environment variables override file
// values.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPrefix + "_CONFIG")
		explicit = path != ""
	}
	if explicit {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "tabstrip"))
		}
		v.SetConfigName("tabstrip")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes c to path. The format follows the file extension.
func Save(c Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	v := viper.New()
	v.Set("control.width", c.Control.Width)
	v.Set("control.height", c.Control.Height)
	v.Set("control.alignment", c.Control.Alignment)
	v.Set("control.right_to_left", c.Control.RightToLeft)
	v.Set("control.multiline", c.Control.Multiline)
	v.Set("control.allow_drop", c.Control.AllowDrop)
	v.Set("control.key_preview", c.Control.KeyPreview)
	v.Set("control.theme", c.Control.Theme)
	v.Set("control.font_size", c.Control.FontSize)
	v.Set("control.backend", c.Control.Backend)
	v.Set("control.selected", c.Control.Selected)
	v.Set("style.name", c.Style.Name)
	v.Set("style.radius", c.Style.Radius)
	v.Set("style.overlap", c.Style.Overlap)
	v.Set("style.padding_x", c.Style.PaddingX)
	v.Set("style.padding_y", c.Style.PaddingY)
	if c.Style.Opacity != nil {
		v.Set("style.opacity", *c.Style.Opacity)
	}
	for key, flag := range map[string]*bool{
		"style.hot_track":   c.Style.HotTrack,
		"style.focus_track": c.Style.FocusTrack,
		"style.show_closer": c.Style.ShowCloser,
	} {
		if flag != nil {
			v.Set(key, *flag)
		}
	}
	for key, value := range map[string]string{
		"style.image_align":         c.Style.ImageAlign,
		"style.border_color":        c.Style.BorderColor,
		"style.text_color":          c.Style.TextColor,
		"style.text_color_selected": c.Style.TextColorSelected,
		"style.focus_color":         c.Style.FocusColor,
	} {
		if value != "" {
			v.Set(key, value)
		}
	}
	tabs := make([]map[string]any, len(c.Tabs))
	for i, t := range c.Tabs {
		tabs[i] = map[string]any{
			"key":      t.Key,
			"text":     t.Text,
			"tooltip":  t.ToolTip,
			"image":    t.Image,
			"disabled": t.Disabled,
			"hidden":   t.Hidden,
		}
	}
	v.Set("tabs", tabs)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Options converts the control and style settings into constructor
// options.
func (c Config) Options() ([]tabstrip.Option, error) {
	style, err := tabstrip.ParseStyle(c.Style.Name)
	if err != nil {
		return nil, err
	}
	align, err := tabstrip.ParseAlignment(c.Control.Alignment)
	if err != nil {
		return nil, err
	}
	theme, err := tabstrip.ThemeByName(c.Control.Theme)
	if err != nil {
		return nil, err
	}
	if _, err := canvas.Lookup(c.Control.Backend); err != nil {
		return nil, err
	}

	opts := []tabstrip.Option{
		tabstrip.WithStyle(style),
		tabstrip.WithAlignment(align),
		tabstrip.WithSize(c.Control.Width, c.Control.Height),
		tabstrip.WithTheme(theme),
		tabstrip.WithRightToLeft(c.Control.RightToLeft),
		tabstrip.WithMultiline(c.Control.Multiline),
		tabstrip.WithAllowDrop(c.Control.AllowDrop),
		tabstrip.WithKeyPreview(c.Control.KeyPreview),
		tabstrip.WithCanvasBackend(c.Control.Backend),
	}
	if c.Control.FontSize > 0 && c.Control.FontSize != tabstrip.DefaultFontSize {
		face, err := tabstrip.DefaultFace(c.Control.FontSize)
		if err != nil {
			return nil, err
		}
		opts = append(opts, tabstrip.WithFont(face))
	}
	return opts, nil
}

// Apply sets the style overrides on ctl, adds the configured tabs and
// selects the configured tab. Relative image paths resolve against dir.
func (c Config) Apply(ctl *tabstrip.Control, dir string) error {
	if err := c.Style.apply(ctl.Provider()); err != nil {
		return err
	}
	var hidden []*tabstrip.Tab
	for _, tc := range c.Tabs {
		t := tabstrip.NewTabWithKey(tc.Key, tc.Text)
		t.ToolTip = tc.ToolTip
		if tc.Image != "" {
			img, err := loadImage(tc.Image, dir)
			if err != nil {
				return err
			}
			t.Image = img
		}
		t.SetEnabled(!tc.Disabled)
		ctl.AddTab(t)
		if tc.Hidden {
			hidden = append(hidden, t)
		}
	}
	for _, t := range hidden {
		ctl.HideTab(t)
	}
	if c.Control.Selected > 0 {
		ctl.SelectIndex(c.Control.Selected)
	}
	return nil
}

// Build creates a control from the configuration.
func (c Config) Build(dir string) (*tabstrip.Control, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	ctl, err := tabstrip.New(opts...)
	if err != nil {
		return nil, err
	}
	if err := c.Apply(ctl, dir); err != nil {
		_ = ctl.Close()
		return nil, err
	}
	return ctl, nil
}

func (s StyleConfig) apply(p *tabstrip.Provider) error {
	if s.Radius != 0 {
		if err := p.SetRadius(s.Radius); err != nil {
			return err
		}
	}
	if s.Overlap != 0 {
		if err := p.SetOverlap(s.Overlap); err != nil {
			return err
		}
	}
	if s.PaddingX != 0 || s.PaddingY != 0 {
		p.SetPadding(tabstrip.Pt(s.PaddingX, s.PaddingY))
	}
	if s.Opacity != nil {
		if err := p.SetOpacity(*s.Opacity); err != nil {
			return err
		}
	}
	if s.ImageAlign != "" {
		a, err := tabstrip.ParseImageAlign(s.ImageAlign)
		if err != nil {
			return err
		}
		p.SetImageAlign(a)
	}
	if s.HotTrack != nil {
		p.SetHotTrack(*s.HotTrack)
	}
	if s.FocusTrack != nil {
		p.SetFocusTrack(*s.FocusTrack)
	}
	if s.ShowCloser != nil {
		p.SetShowCloser(*s.ShowCloser)
	}
	colors := []struct {
		value string
		set   func(string) error
	}{
		{s.BorderColor, func(v string) error { return setHex(v, p.SetBorderColor) }},
		{s.TextColor, func(v string) error { return setHex(v, p.SetTextColor) }},
		{s.TextColorSelected, func(v string) error { return setHex(v, p.SetTextColorSelected) }},
		{s.FocusColor, func(v string) error { return setHex(v, p.SetFocusColor) }},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		if err := c.set(c.value); err != nil {
			return err
		}
	}
	return nil
}

func loadImage(path, dir string) (image.Image, error) {
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tab image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode tab image %s: %w", path, err)
	}
	return img, nil
}
