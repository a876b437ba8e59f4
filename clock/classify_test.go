// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clock

import (
	"testing"

	"github.com/gogpu/dial"
)

func TestClassifyPartition(t *testing.T) {
	// Every ordinal on the ring belongs to exactly one class.
	counts := map[Class]int{}
	for i := range TickCount {
		counts[Classify(i)]++
	}

	if counts[ClassZero] != 1 {
		t.Errorf("ClassZero count = %d, want 1", counts[ClassZero])
	}
	if counts[ClassMajor] != 3 {
		t.Errorf("ClassMajor count = %d, want 3 (15, 30, 45)", counts[ClassMajor])
	}
	if counts[ClassMinor] != 8 {
		t.Errorf("ClassMinor count = %d, want 8", counts[ClassMinor])
	}
	if counts[ClassDefault] != 48 {
		t.Errorf("ClassDefault count = %d, want 48", counts[ClassDefault])
	}
}

func TestClassifyRules(t *testing.T) {
	tests := []struct {
		ordinal int
		want    Class
	}{
		{0, ClassZero},
		{15, ClassMajor},
		{30, ClassMajor},
		{45, ClassMajor},
		{5, ClassMinor},
		{10, ClassMinor},
		{20, ClassMinor},
		{55, ClassMinor},
		{1, ClassDefault},
		{7, ClassDefault},
		{59, ClassDefault},
	}

	for _, tt := range tests {
		if got := Classify(tt.ordinal); got != tt.want {
			t.Errorf("Classify(%d) = %v, want %v", tt.ordinal, got, tt.want)
		}
	}
}

func TestClassifyQuarterPrecedence(t *testing.T) {
	// 15, 30, 45 divide by both 15 and 5; the 15-rule must win.
	for _, ordinal := range []int{15, 30, 45} {
		if got := Classify(ordinal); got != ClassMajor {
			t.Errorf("Classify(%d) = %v, want major", ordinal, got)
		}
	}
}

func TestClassColor(t *testing.T) {
	tests := []struct {
		class Class
		want  dial.RGBA
	}{
		{ClassZero, dial.RGB(1, 1, 0)},
		{ClassMajor, dial.RGB(0, 1, 0)},
		{ClassMinor, dial.RGB(1, 0, 0)},
		{ClassDefault, dial.RGB(0, 0, 1)},
	}

	for _, tt := range tests {
		if got := tt.class.Color(); got != tt.want {
			t.Errorf("%v.Color() = %+v, want %+v", tt.class, got, tt.want)
		}
	}
}

func TestClassString(t *testing.T) {
	if got := ClassMajor.String(); got != "major" {
		t.Errorf("ClassMajor.String() = %q, want %q", got, "major")
	}
	if got := Class(99).String(); got != "Class(99)" {
		t.Errorf("Class(99).String() = %q", got)
	}
}
