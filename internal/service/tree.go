// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"database/sql"
	"sort"

	"github.com/olegiv/onav-go/internal/store"
)

// MenuItemNode is a menu item with resolved link data and nested children.
type MenuItemNode struct {
	Item     store.MenuItem
	URL      string
	PageSlug string
	Children []MenuItemNode
}

// parentKey maps a nullable parent id onto a map key. Item ids start at 1,
// so 0 is free to stand for the implicit root.
func parentKey(p sql.NullInt64) int64 {
	if p.Valid {
		return p.Int64
	}
	return 0
}

// buildTree converts flat item rows into a nested tree. Children are grouped
// by parent id and ordered by position; traversal uses an explicit stack so
// pathological nesting depth cannot exhaust the goroutine stack.
func buildTree(rows []store.ListMenuItemsWithPageRow) []MenuItemNode {
	byParent := make(map[int64][]store.ListMenuItemsWithPageRow)
	for _, row := range rows {
		key := parentKey(row.ParentID)
		byParent[key] = append(byParent[key], row)
	}
	for key := range byParent {
		group := byParent[key]
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].Position != group[j].Position {
				return group[i].Position < group[j].Position
			}
			return group[i].ID < group[j].ID
		})
	}

	// Depth-first discovery order, roots first
	order := make([]store.ListMenuItemsWithPageRow, 0, len(rows))
	stack := make([]store.ListMenuItemsWithPageRow, 0, len(rows))
	roots := byParent[0]
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, roots[i])
	}
	for len(stack) > 0 {
		row := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, row)
		children := byParent[row.ID]
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	// Assemble bottom-up: reverse discovery order guarantees children are
	// built before their parent needs them.
	built := make(map[int64][]MenuItemNode)
	for i := len(order) - 1; i >= 0; i-- {
		row := order[i]
		node := MenuItemNode{
			Item: store.MenuItem{
				ID:        row.ID,
				MenuID:    row.MenuID,
				ParentID:  row.ParentID,
				Title:     row.Title,
				Url:       row.Url,
				PageID:    row.PageID,
				Target:    row.Target,
				Icon:      row.Icon,
				Position:  row.Position,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			Children: built[row.ID],
		}
		if row.PageID.Valid && row.PageSlug.Valid {
			node.PageSlug = row.PageSlug.String
			node.URL = "/" + row.PageSlug.String
		} else if row.Url.Valid {
			node.URL = row.Url.String
		}
		key := parentKey(row.ParentID)
		built[key] = append([]MenuItemNode{node}, built[key]...)
	}

	return built[0]
}

// subtreeIDs returns the ids of the subtree rooted at rootID, children
// before parents, computed over the flat item list with an explicit stack.
func subtreeIDs(items []store.MenuItem, rootID int64) []int64 {
	byParent := make(map[int64][]int64)
	for _, item := range items {
		key := parentKey(item.ParentID)
		byParent[key] = append(byParent[key], item.ID)
	}

	discovery := []int64{}
	stack := []int64{rootID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		discovery = append(discovery, id)
		stack = append(stack, byParent[id]...)
	}

	// Reverse discovery order deletes leaves first.
	out := make([]int64, 0, len(discovery))
	for i := len(discovery) - 1; i >= 0; i-- {
		out = append(out, discovery[i])
	}
	return out
}
