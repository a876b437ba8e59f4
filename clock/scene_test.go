// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clock

import "testing"

func TestNewScene(t *testing.T) {
	s, err := NewScene()
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}

	if !s.Ticks.Populated() {
		t.Error("new scene tick table not populated")
	}
	if s.Camera.Populated() {
		t.Error("new scene camera should start unpopulated")
	}
	if s.Face.Texture != nil {
		t.Error("new scene should not carry a texture")
	}
	if s.Face.Mask != MaskNone {
		t.Errorf("new scene mask = %v, want none", s.Face.Mask)
	}
	if s.Overlay != nil {
		t.Error("new scene should have no overlay")
	}
}

func TestSceneHandOrder(t *testing.T) {
	s, err := NewScene()
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}

	// Draw order: hour, minute, second — the second hand lands on top.
	want := []HandKind{HandHour, HandMinute, HandSecond}
	for i, kind := range want {
		if s.Hands[i].Kind != kind {
			t.Errorf("Hands[%d].Kind = %v, want %v", i, s.Hands[i].Kind, kind)
		}
	}

	if s.Hand(HandMinute).Kind != HandMinute {
		t.Error("Hand(HandMinute) returned the wrong hand")
	}
}
