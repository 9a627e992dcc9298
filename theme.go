// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// Theme supplies the system colours that unset style colours fall back
// to. Swapping the theme restyles every colour the caller left unset.
type Theme struct {
	Control      gg.RGBA
	ControlDark  gg.RGBA
	ControlLight gg.RGBA
	ControlText  gg.RGBA
	Window       gg.RGBA
	ToolBorder   gg.RGBA
}

// DefaultTheme mirrors the classic light desktop palette.
func DefaultTheme() Theme {
	return Theme{
		Control:      gg.Hex("#f0f0f0"),
		ControlDark:  gg.Hex("#a0a0a0"),
		ControlLight: gg.Hex("#e3e3e3"),
		ControlText:  gg.Black,
		Window:       gg.White,
		ToolBorder:   gg.Hex("#7f9db9"),
	}
}

// DarkTheme is a low-luminance palette for dark hosts.
func DarkTheme() Theme {
	return Theme{
		Control:      gg.Hex("#2d2d30"),
		ControlDark:  gg.Hex("#3f3f46"),
		ControlLight: gg.Hex("#505057"),
		ControlText:  gg.Hex("#f1f1f1"),
		Window:       gg.Hex("#1e1e1e"),
		ToolBorder:   gg.Hex("#007acc"),
	}
}

// ThemeByName returns "light" (or "default") and "dark".
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "", "light", "default":
		return DefaultTheme(), nil
	case "dark":
		return DarkTheme(), nil
	}
	return Theme{}, fmt.Errorf("%w: theme %q", ErrUnknownName, name)
}

// optColor is a colour that may be unset. An unset colour resolves to a
// theme default at read time.
type optColor struct {
	c   gg.RGBA
	set bool
}

func (o optColor) or(def gg.RGBA) gg.RGBA {
	if o.set {
		return o.c
	}
	return def
}

// assign stores c, or clears the value when c equals the current default.
func (o *optColor) assign(c, def gg.RGBA) {
	if c == def {
		*o = optColor{}
		return
	}
	*o = optColor{c: c, set: true}
}

// rgb8 builds an opaque colour from 8-bit channels.
func rgb8(r, g, b uint8) gg.RGBA {
	return gg.RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}
