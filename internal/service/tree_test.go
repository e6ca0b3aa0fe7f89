// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"database/sql"
	"testing"

	"github.com/olegiv/onav-go/internal/store"
)

func row(id int64, parent sql.NullInt64, title string, position int64) store.ListMenuItemsWithPageRow {
	return store.ListMenuItemsWithPageRow{
		ID:       id,
		MenuID:   1,
		ParentID: parent,
		Title:    title,
		Position: position,
	}
}

func TestBuildTreeNesting(t *testing.T) {
	rows := []store.ListMenuItemsWithPageRow{
		row(1, sql.NullInt64{}, "root-b", 2),
		row(2, sql.NullInt64{}, "root-a", 1),
		row(3, nullInt(2), "a-child-2", 2),
		row(4, nullInt(2), "a-child-1", 1),
		row(5, nullInt(4), "a-grandchild", 1),
	}

	tree := buildTree(rows)

	if len(tree) != 2 {
		t.Fatalf("len(tree) = %d, want 2", len(tree))
	}
	if tree[0].Item.Title != "root-a" || tree[1].Item.Title != "root-b" {
		t.Fatalf("roots not ordered by position: %q, %q", tree[0].Item.Title, tree[1].Item.Title)
	}

	children := tree[0].Children
	if len(children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(children))
	}
	if children[0].Item.Title != "a-child-1" || children[1].Item.Title != "a-child-2" {
		t.Errorf("children not ordered: %q, %q", children[0].Item.Title, children[1].Item.Title)
	}

	if len(children[0].Children) != 1 || children[0].Children[0].Item.Title != "a-grandchild" {
		t.Errorf("grandchild missing: %+v", children[0].Children)
	}
	if len(tree[1].Children) != 0 {
		t.Errorf("root-b should have no children")
	}
}

func TestBuildTreeURLDerivation(t *testing.T) {
	linked := row(1, sql.NullInt64{}, "page item", 1)
	linked.PageID = nullInt(10)
	linked.PageSlug = nullStr("contact")
	linked.Url = nullStr("/stale")

	explicit := row(2, sql.NullInt64{}, "url item", 2)
	explicit.Url = nullStr("https://example.com")

	tree := buildTree([]store.ListMenuItemsWithPageRow{linked, explicit})
	if len(tree) != 2 {
		t.Fatalf("len(tree) = %d, want 2", len(tree))
	}

	// Page slug wins over the stored URL
	if tree[0].URL != "/contact" || tree[0].PageSlug != "contact" {
		t.Errorf("linked node = (%q, %q), want (/contact, contact)", tree[0].URL, tree[0].PageSlug)
	}
	if tree[1].URL != "https://example.com" || tree[1].PageSlug != "" {
		t.Errorf("explicit node = (%q, %q)", tree[1].URL, tree[1].PageSlug)
	}
}

func TestBuildTreePositionTiesBreakByID(t *testing.T) {
	rows := []store.ListMenuItemsWithPageRow{
		row(5, sql.NullInt64{}, "second", 1),
		row(3, sql.NullInt64{}, "first", 1),
	}

	tree := buildTree(rows)
	if tree[0].Item.ID != 3 || tree[1].Item.ID != 5 {
		t.Errorf("tie not broken by id: %d, %d", tree[0].Item.ID, tree[1].Item.ID)
	}
}

func TestBuildTreeDeepNesting(t *testing.T) {
	// A 500-level chain must not blow the stack.
	rows := make([]store.ListMenuItemsWithPageRow, 0, 500)
	rows = append(rows, row(1, sql.NullInt64{}, "level-0", 1))
	for i := int64(2); i <= 500; i++ {
		rows = append(rows, row(i, nullInt(i-1), "level-n", 1))
	}

	tree := buildTree(rows)
	if len(tree) != 1 {
		t.Fatalf("len(tree) = %d, want 1", len(tree))
	}

	depth := 0
	node := tree[0]
	for len(node.Children) > 0 {
		node = node.Children[0]
		depth++
	}
	if depth != 499 {
		t.Errorf("depth = %d, want 499", depth)
	}
}

func TestSubtreeIDsChildrenFirst(t *testing.T) {
	items := []store.MenuItem{
		{ID: 1, ParentID: sql.NullInt64{}},
		{ID: 2, ParentID: nullInt(1)},
		{ID: 3, ParentID: nullInt(1)},
		{ID: 4, ParentID: nullInt(2)},
		{ID: 5, ParentID: sql.NullInt64{}}, // outside the subtree
	}

	ids := subtreeIDs(items, 1)
	if len(ids) != 4 {
		t.Fatalf("len(ids) = %d, want 4", len(ids))
	}

	pos := make(map[int64]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	if pos[4] > pos[2] {
		t.Errorf("child 4 deleted after parent 2: %v", ids)
	}
	if pos[2] > pos[1] || pos[3] > pos[1] {
		t.Errorf("children deleted after root: %v", ids)
	}
	if _, ok := pos[5]; ok {
		t.Errorf("unrelated item included: %v", ids)
	}
}

func TestSubtreeIDsLeafOnly(t *testing.T) {
	items := []store.MenuItem{
		{ID: 1, ParentID: sql.NullInt64{}},
		{ID: 2, ParentID: nullInt(1)},
	}

	ids := subtreeIDs(items, 2)
	if len(ids) != 1 || ids[0] != 2 {
		t.Errorf("ids = %v, want [2]", ids)
	}
}
