// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and types used throughout the application.
package model

import (
	"database/sql"
	"time"
)

// Well-known menu locations
const (
	LocationMain   = "main"
	LocationHeader = "header"
	LocationFooter = "footer"
)

// Menu item link target values
const (
	TargetSelf   = "_self"
	TargetBlank  = "_blank"
	TargetParent = "_parent"
	TargetTop    = "_top"
)

// ValidTargets contains all valid link target values.
var ValidTargets = []string{TargetSelf, TargetBlank, TargetParent, TargetTop}

// Menu represents a navigation menu. A menu owns a tree of items and at most
// one header style and one footer style record.
type Menu struct {
	ID        int64
	Name      string
	Location  sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MenuItem represents a single node in a menu's tree. An item links either to
// a CMS page (PageID set, URL derived from the page slug) or to an explicit
// URL. Position orders items within their sibling group (MenuID, ParentID).
type MenuItem struct {
	ID        int64
	MenuID    int64
	ParentID  sql.NullInt64
	Title     string
	URL       sql.NullString
	PageID    sql.NullInt64
	Target    sql.NullString
	Icon      sql.NullString
	Position  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidTarget checks if a target value is valid.
func IsValidTarget(target string) bool {
	for _, t := range ValidTargets {
		if t == target {
			return true
		}
	}
	return false
}
