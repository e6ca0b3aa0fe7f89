// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Header style layouts
const (
	HeaderLayoutInline   = "inline"
	HeaderLayoutStacked  = "stacked"
	HeaderLayoutCentered = "centered"
)

// Footer style alignments
const (
	FooterAlignLeft   = "left"
	FooterAlignCenter = "center"
	FooterAlignRight  = "right"
)

// HeaderStyle holds the presentation record attached to a menu's header
// slot. At most one exists per menu.
type HeaderStyle struct {
	ID              int64
	MenuID          int64
	Transparency    int64
	Layout          string
	ShowBorder      bool
	AdvancedOptions map[string]any
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FooterStyle holds the presentation record attached to a menu's footer
// slot. At most one exists per menu.
type FooterStyle struct {
	ID              int64
	MenuID          int64
	Transparency    int64
	Alignment       string
	ShowBorder      bool
	AdvancedOptions map[string]any
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NormalizeAdvancedOptions deep-copies an opaque style options payload by
// round-tripping it through JSON. The engine never interprets the contents;
// the round trip guarantees the stored value is detached from caller memory
// and contains only JSON-representable types.
func NormalizeAdvancedOptions(opts map[string]any) (map[string]any, error) {
	if opts == nil {
		return nil, nil
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("encoding advanced options: %w", err)
	}
	out := make(map[string]any, len(opts))
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding advanced options: %w", err)
	}
	return out, nil
}

// MarshalAdvancedOptions serializes an options map for storage.
// A nil map is stored as an empty JSON object.
func MarshalAdvancedOptions(opts map[string]any) (string, error) {
	if opts == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return "", fmt.Errorf("encoding advanced options: %w", err)
	}
	return string(raw), nil
}

// UnmarshalAdvancedOptions parses a stored options payload.
func UnmarshalAdvancedOptions(raw string) (map[string]any, error) {
	if raw == "" {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decoding advanced options: %w", err)
	}
	return out, nil
}

// IsValidHeaderLayout checks if a header layout value is valid.
func IsValidHeaderLayout(layout string) bool {
	switch layout {
	case HeaderLayoutInline, HeaderLayoutStacked, HeaderLayoutCentered:
		return true
	}
	return false
}

// IsValidFooterAlignment checks if a footer alignment value is valid.
func IsValidFooterAlignment(alignment string) bool {
	switch alignment {
	case FooterAlignLeft, FooterAlignCenter, FooterAlignRight:
		return true
	}
	return false
}
