// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "testing"

func TestNormalizeAdvancedOptionsDeepCopies(t *testing.T) {
	src := map[string]any{
		"nested": map[string]any{"bg": "#000"},
		"n":      float64(2),
	}

	out, err := NormalizeAdvancedOptions(src)
	if err != nil {
		t.Fatalf("NormalizeAdvancedOptions: %v", err)
	}

	src["n"] = float64(99)
	src["nested"].(map[string]any)["bg"] = "#fff"

	if out["n"] != float64(2) {
		t.Errorf("n = %v, want 2", out["n"])
	}
	if out["nested"].(map[string]any)["bg"] != "#000" {
		t.Errorf("nested leaked caller mutation")
	}
}

func TestNormalizeAdvancedOptionsNil(t *testing.T) {
	out, err := NormalizeAdvancedOptions(nil)
	if err != nil || out != nil {
		t.Errorf("NormalizeAdvancedOptions(nil) = (%v, %v), want (nil, nil)", out, err)
	}
}

func TestNormalizeAdvancedOptionsRejectsUnencodable(t *testing.T) {
	_, err := NormalizeAdvancedOptions(map[string]any{"ch": make(chan int)})
	if err == nil {
		t.Error("unencodable value should fail")
	}
}

func TestMarshalAdvancedOptions(t *testing.T) {
	raw, err := MarshalAdvancedOptions(nil)
	if err != nil || raw != "{}" {
		t.Errorf("MarshalAdvancedOptions(nil) = (%q, %v), want ({}, nil)", raw, err)
	}

	raw, err = MarshalAdvancedOptions(map[string]any{"a": float64(1)})
	if err != nil || raw != `{"a":1}` {
		t.Errorf("MarshalAdvancedOptions = (%q, %v)", raw, err)
	}
}

func TestUnmarshalAdvancedOptions(t *testing.T) {
	out, err := UnmarshalAdvancedOptions("")
	if err != nil || len(out) != 0 {
		t.Errorf("UnmarshalAdvancedOptions(\"\") = (%v, %v)", out, err)
	}

	out, err = UnmarshalAdvancedOptions(`{"a":1}`)
	if err != nil || out["a"] != float64(1) {
		t.Errorf("UnmarshalAdvancedOptions = (%v, %v)", out, err)
	}

	if _, err := UnmarshalAdvancedOptions("not json"); err == nil {
		t.Error("invalid JSON should fail")
	}
}

func TestIsValidHeaderLayout(t *testing.T) {
	for _, layout := range []string{HeaderLayoutInline, HeaderLayoutStacked, HeaderLayoutCentered} {
		if !IsValidHeaderLayout(layout) {
			t.Errorf("IsValidHeaderLayout(%q) = false", layout)
		}
	}
	for _, layout := range []string{"", "diagonal", "INLINE"} {
		if IsValidHeaderLayout(layout) {
			t.Errorf("IsValidHeaderLayout(%q) = true", layout)
		}
	}
}

func TestIsValidFooterAlignment(t *testing.T) {
	for _, alignment := range []string{FooterAlignLeft, FooterAlignCenter, FooterAlignRight} {
		if !IsValidFooterAlignment(alignment) {
			t.Errorf("IsValidFooterAlignment(%q) = false", alignment)
		}
	}
	for _, alignment := range []string{"", "justified", "Left"} {
		if IsValidFooterAlignment(alignment) {
			t.Errorf("IsValidFooterAlignment(%q) = true", alignment)
		}
	}
}

func TestIsValidTarget(t *testing.T) {
	for _, target := range ValidTargets {
		if !IsValidTarget(target) {
			t.Errorf("IsValidTarget(%q) = false", target)
		}
	}
	if IsValidTarget("_popup") {
		t.Error("IsValidTarget(_popup) = true")
	}
}
