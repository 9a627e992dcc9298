// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// ErrBadColor is returned for colour values that are not hex strings.
var ErrBadColor = errors.New("config: bad colour")

// setHex parses a #rgb, #rrggbb or #rrggbbaa value and passes it on.
func setHex(s string, set func(gg.RGBA)) error {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return fmt.Errorf("%w: %q", ErrBadColor, s)
		}
	}
	set(gg.Hex(h))
	return nil
}
