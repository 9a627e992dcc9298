// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tabstrip

import (
	"testing"

	"github.com/gogpu/gg"
)

func squareOutline() *Outline {
	p := gg.NewPath()
	p.MoveTo(10, 10)
	p.LineTo(30, 10)
	p.LineTo(30, 30)
	p.LineTo(10, 30)
	p.Close()
	return NewOutline(p)
}

func TestOutlineContains(t *testing.T) {
	o := squareOutline()
	tests := []struct {
		x, y int
		want bool
	}{
		{20, 20, true},
		{10, 10, true},
		{30, 30, true},
		{30, 20, true},
		{9, 20, false},
		{31, 31, false},
		{50, 20, false},
	}
	for _, tt := range tests {
		if got := o.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestOutlineBoundsAndRect(t *testing.T) {
	o := squareOutline()
	if got := o.Bounds(); got != R(10, 10, 20, 20) {
		t.Errorf("Bounds() = %v", got)
	}
	if !o.ContainsRect(R(12, 12, 18, 18)) {
		t.Error("inner rectangle not contained")
	}
	if o.ContainsRect(R(12, 12, 25, 5)) {
		t.Error("overhanging rectangle contained")
	}
}

func TestEmptyOutline(t *testing.T) {
	o := NewOutline(gg.NewPath())
	if o.Contains(0, 0) {
		t.Error("empty outline contains a point")
	}
}

func TestOutlineContainsCurved(t *testing.T) {
	p := gg.NewPath()
	p.Circle(50, 50, 20)
	o := NewOutline(p)
	tests := []struct {
		x, y int
		want bool
	}{
		{50, 50, true},
		{50, 31, true},
		{70, 50, true},
		{36, 36, true},
		{34, 34, false},
		{50, 72, false},
	}
	for _, tt := range tests {
		if got := o.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
