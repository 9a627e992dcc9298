// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"fmt"
	"strings"
)

// Style selects the tab geometry provider. The numeric values are
// stable and may be persisted.
type Style int

const (
	StyleNone Style = iota
	StyleDefault
	StyleAngled
	StyleRounded
	StyleVisualStudio
	StyleChrome
	StyleIE8
	StyleVS2010
)

var styleNames = [...]string{
	StyleNone:         "None",
	StyleDefault:      "Default",
	StyleAngled:       "Angled",
	StyleRounded:      "Rounded",
	StyleVisualStudio: "VisualStudio",
	StyleChrome:       "Chrome",
	StyleIE8:          "IE8",
	StyleVS2010:       "VS2010",
}

// Styles returns every style in declaration order.
func Styles() []Style {
	out := make([]Style, len(styleNames))
	for i := range styleNames {
		out[i] = Style(i)
	}
	return out
}

func (s Style) String() string {
	if s.valid() {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

func (s Style) valid() bool { return s >= 0 && int(s) < len(styleNames) }

// ParseStyle parses a style name, ignoring case.
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if strings.EqualFold(name, n) {
			return Style(i), nil
		}
	}
	return StyleDefault, fmt.Errorf("%w: style %q", ErrUnknownName, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: style %d", ErrUnknownName, int(s))
	}
	return []byte(styleNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(b []byte) error {
	v, err := ParseStyle(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
