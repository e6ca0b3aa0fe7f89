// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/olegiv/onav-go/internal/model"
	"github.com/olegiv/onav-go/internal/store"
)

func TestCreateMenuWithHeaderStyle(t *testing.T) {
	_, svc := newTestMenuService(t)

	detail, err := svc.CreateMenu(context.Background(), CreateMenuInput{
		Name:     "Main",
		Location: nullStr("main"),
		HeaderStyle: &HeaderStyleInput{
			Transparency: 30,
			Layout:       model.HeaderLayoutCentered,
			ShowBorder:   true,
		},
	})
	if err != nil {
		t.Fatalf("CreateMenu: %v", err)
	}
	if detail.Menu.ID == 0 {
		t.Error("menu.ID should not be 0")
	}
	if detail.HeaderStyle == nil {
		t.Fatal("HeaderStyle should be attached")
	}
	if detail.HeaderStyle.Layout != model.HeaderLayoutCentered {
		t.Errorf("Layout = %q, want centered", detail.HeaderStyle.Layout)
	}
}

func TestCreateMenuValidation(t *testing.T) {
	_, svc := newTestMenuService(t)
	ctx := context.Background()

	_, err := svc.CreateMenu(ctx, CreateMenuInput{})
	if !errors.Is(err, model.ErrValidation) {
		t.Errorf("missing name err = %v, want ErrValidation", err)
	}

	_, err = svc.CreateMenu(ctx, CreateMenuInput{
		Name:        "Main",
		HeaderStyle: &HeaderStyleInput{Layout: "diagonal"},
	})
	if !errors.Is(err, model.ErrValidation) {
		t.Errorf("bad layout err = %v, want ErrValidation", err)
	}
}

func TestUpdateMenuClearsLocation(t *testing.T) {
	_, svc := newTestMenuService(t)
	menu := createMenu(t, svc, "Main", "main")

	empty := ""
	detail, err := svc.UpdateMenu(context.Background(), menu.ID, UpdateMenuInput{Location: &empty})
	if err != nil {
		t.Fatalf("UpdateMenu: %v", err)
	}
	if detail.Menu.Location.Valid {
		t.Errorf("Location = %v, want cleared", detail.Menu.Location)
	}
	if detail.Menu.Name != "Main" {
		t.Errorf("Name = %q, want unchanged", detail.Menu.Name)
	}
}

func TestGetMenuAggregate(t *testing.T) {
	db, svc := newTestMenuService(t)
	ctx := context.Background()
	page := createPage(t, db, "About", "about", "published")
	menu := createMenu(t, svc, "Main", "main")

	root := createItem(t, svc, CreateItemInput{MenuID: menu.ID, Title: "About", PageID: nullInt(page.ID)})
	createItem(t, svc, CreateItemInput{MenuID: menu.ID, ParentID: nullInt(root.ID), Title: "Team", URL: nullStr("/team")})

	if _, err := svc.Styles().UpdateFooterStyle(ctx, menu.ID, FooterStyleInput{Alignment: model.FooterAlignRight}); err != nil {
		t.Fatalf("UpdateFooterStyle: %v", err)
	}

	detail, err := svc.GetMenu(ctx, menu.ID)
	if err != nil {
		t.Fatalf("GetMenu: %v", err)
	}
	if len(detail.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1 root", len(detail.Items))
	}
	if detail.Items[0].URL != "/about" || detail.Items[0].PageSlug != "about" {
		t.Errorf("root node = (%q, %q)", detail.Items[0].URL, detail.Items[0].PageSlug)
	}
	if len(detail.Items[0].Children) != 1 {
		t.Fatalf("root should have one child")
	}
	if detail.HeaderStyle != nil {
		t.Error("HeaderStyle should be nil")
	}
	if detail.FooterStyle == nil || detail.FooterStyle.Alignment != model.FooterAlignRight {
		t.Errorf("FooterStyle = %+v", detail.FooterStyle)
	}
}

func TestGetMenuByLocationOldestWins(t *testing.T) {
	_, svc := newTestMenuService(t)
	first := createMenu(t, svc, "First", "header")
	createMenu(t, svc, "Second", "header")

	detail, err := svc.GetMenuByLocation(context.Background(), "header")
	if err != nil {
		t.Fatalf("GetMenuByLocation: %v", err)
	}
	if detail.Menu.ID != first.ID {
		t.Errorf("menu.ID = %d, want %d", detail.Menu.ID, first.ID)
	}
}

func TestDeleteMenuCascades(t *testing.T) {
	db, svc := newTestMenuService(t)
	ctx := context.Background()
	menu := createMenu(t, svc, "Main", "main")

	root := createItem(t, svc, CreateItemInput{MenuID: menu.ID, Title: "root", URL: nullStr("/r")})
	child := createItem(t, svc, CreateItemInput{MenuID: menu.ID, ParentID: nullInt(root.ID), Title: "child", URL: nullStr("/c")})
	createItem(t, svc, CreateItemInput{MenuID: menu.ID, ParentID: nullInt(child.ID), Title: "grandchild", URL: nullStr("/g")})

	if _, err := svc.Styles().UpdateHeaderStyle(ctx, 1, menu.ID, HeaderStyleInput{}); err != nil {
		t.Fatalf("UpdateHeaderStyle: %v", err)
	}
	if _, err := svc.Styles().UpdateFooterStyle(ctx, menu.ID, FooterStyleInput{}); err != nil {
		t.Fatalf("UpdateFooterStyle: %v", err)
	}

	if err := svc.DeleteMenu(ctx, menu.ID); err != nil {
		t.Fatalf("DeleteMenu: %v", err)
	}

	if _, err := svc.GetMenu(ctx, menu.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("GetMenu after delete err = %v, want ErrNotFound", err)
	}

	q := store.New(db)
	count, err := q.CountMenuItemsByMenu(ctx, menu.ID)
	if err != nil {
		t.Fatalf("CountMenuItemsByMenu: %v", err)
	}
	if count != 0 {
		t.Errorf("orphaned items remain: %d", count)
	}
	if _, err := q.GetHeaderStyleByMenu(ctx, menu.ID); err != sql.ErrNoRows {
		t.Errorf("header style survived the cascade: %v", err)
	}
	if _, err := q.GetFooterStyleByMenu(ctx, menu.ID); err != sql.ErrNoRows {
		t.Errorf("footer style survived the cascade: %v", err)
	}
}

func TestDeleteMenuMissing(t *testing.T) {
	_, svc := newTestMenuService(t)
	if err := svc.DeleteMenu(context.Background(), 404); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestReorderItems(t *testing.T) {
	_, svc := newTestMenuService(t)
	ctx := context.Background()
	menu := createMenu(t, svc, "Main", "main")

	a := createItem(t, svc, CreateItemInput{MenuID: menu.ID, Title: "a", URL: nullStr("/a")})
	b := createItem(t, svc, CreateItemInput{MenuID: menu.ID, Title: "b", URL: nullStr("/b")})
	c := createItem(t, svc, CreateItemInput{MenuID: menu.ID, Title: "c", URL: nullStr("/c")})

	err := svc.ReorderItems(ctx, []ReorderUpdate{
		{ID: c.ID, Position: 1},
		{ID: a.ID, Position: 2},
		{ID: b.ID, Position: 3},
	})
	if err != nil {
		t.Fatalf("ReorderItems: %v", err)
	}

	items, err := svc.Items().Children(ctx, menu.ID, sql.NullInt64{})
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	got := []int64{items[0].ID, items[1].ID, items[2].ID}
	want := []int64{c.ID, a.ID, b.ID}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestReorderItemsAtomicRollback(t *testing.T) {
	_, svc := newTestMenuService(t)
	ctx := context.Background()
	menu := createMenu(t, svc, "Main", "main")

	items := make([]store.MenuItem, 0, 5)
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		items = append(items, createItem(t, svc, CreateItemInput{MenuID: menu.ID, Title: title, URL: nullStr("/" + title)}))
	}

	updates := []ReorderUpdate{
		{ID: items[0].ID, Position: 50},
		{ID: items[1].ID, Position: 40},
		{ID: items[2].ID, Position: 30},
		{ID: 9999, Position: 20}, // unknown id poisons the batch
		{ID: items[4].ID, Position: 10},
	}

	err := svc.ReorderItems(ctx, updates)
	if !errors.Is(err, model.ErrTransaction) {
		t.Fatalf("err = %v, want ErrTransaction", err)
	}

	// Every item keeps its original position
	after, err := svc.Items().Children(ctx, menu.ID, sql.NullInt64{})
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	for i, item := range after {
		if item.Position != int64(i+1) {
			t.Errorf("item %q position = %d, want %d", item.Title, item.Position, i+1)
		}
	}
}

func TestReorderItemsParentSemantics(t *testing.T) {
	_, svc := newTestMenuService(t)
	ctx := context.Background()
	menu := createMenu(t, svc, "Main", "main")

	root := createItem(t, svc, CreateItemInput{MenuID: menu.ID, Title: "root", URL: nullStr("/r")})
	childA := createItem(t, svc, CreateItemInput{MenuID: menu.ID, ParentID: nullInt(root.ID), Title: "a", URL: nullStr("/a")})
	childB := createItem(t, svc, CreateItemInput{MenuID: menu.ID, ParentID: nullInt(root.ID), Title: "b", URL: nullStr("/b")})

	// Omitted parent keeps the current one; explicit null promotes to root.
	err := svc.ReorderItems(ctx, []ReorderUpdate{
		{ID: childA.ID, Position: 5},
		{ID: childB.ID, Position: 2, ParentSet: true},
	})
	if err != nil {
		t.Fatalf("ReorderItems: %v", err)
	}

	q := svc.Items()
	a, err := q.Children(ctx, menu.ID, nullInt(root.ID))
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	if len(a) != 1 || a[0].ID != childA.ID || a[0].Position != 5 {
		t.Errorf("children of root = %+v, want only a at position 5", a)
	}

	top, err := q.Children(ctx, menu.ID, sql.NullInt64{})
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("top-level = %d items, want 2", len(top))
	}
	if top[0].ID != root.ID || top[1].ID != childB.ID || top[1].Position != 2 {
		t.Errorf("top-level = %+v, want root then the promoted item at position 2", top)
	}
}

func TestReorderItemsRejectsCycle(t *testing.T) {
	_, svc := newTestMenuService(t)
	ctx := context.Background()
	menu := createMenu(t, svc, "Main", "main")

	a := createItem(t, svc, CreateItemInput{MenuID: menu.ID, Title: "a", URL: nullStr("/a")})
	b := createItem(t, svc, CreateItemInput{MenuID: menu.ID, ParentID: nullInt(a.ID), Title: "b", URL: nullStr("/b")})

	err := svc.ReorderItems(ctx, []ReorderUpdate{
		{ID: a.ID, Position: 1, ParentSet: true, ParentID: nullInt(b.ID)},
	})
	if !errors.Is(err, model.ErrTransaction) {
		t.Errorf("err = %v, want ErrTransaction", err)
	}

	got, err := svc.Items().Children(ctx, menu.ID, sql.NullInt64{})
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	if len(got) != 1 || got[0].ID != a.ID {
		t.Errorf("tree changed despite rejected cycle: %+v", got)
	}
}

func TestReorderUpdateUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		parentSet bool
		parentID  sql.NullInt64
	}{
		{"omitted", `{"id":1,"order":2}`, false, sql.NullInt64{}},
		{"null", `{"id":1,"order":2,"parent_id":null}`, true, sql.NullInt64{}},
		{"set", `{"id":1,"order":2,"parent_id":7}`, true, nullInt(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u ReorderUpdate
			if err := json.Unmarshal([]byte(tt.payload), &u); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if u.ID != 1 || u.Position != 2 {
				t.Errorf("decoded = %+v", u)
			}
			if u.ParentSet != tt.parentSet {
				t.Errorf("ParentSet = %v, want %v", u.ParentSet, tt.parentSet)
			}
			if u.ParentID != tt.parentID {
				t.Errorf("ParentID = %v, want %v", u.ParentID, tt.parentID)
			}
		})
	}
}

// End-to-end flow: create a menu, attach items, reorder, and read the final
// tree back by location.
func TestMenuLifecycleEndToEnd(t *testing.T) {
	db, svc := newTestMenuService(t)
	ctx := context.Background()

	home := createPage(t, db, "Home", "home", "published")

	detail, err := svc.CreateMenu(ctx, CreateMenuInput{Name: "Main", Location: nullStr("header")})
	if err != nil {
		t.Fatalf("CreateMenu: %v", err)
	}
	menuID := detail.Menu.ID

	a := createItem(t, svc, CreateItemInput{MenuID: menuID, Title: "A", PageID: nullInt(home.ID)})
	b := createItem(t, svc, CreateItemInput{MenuID: menuID, Title: "B", URL: nullStr("/b")})
	c := createItem(t, svc, CreateItemInput{MenuID: menuID, Title: "C", URL: nullStr("/c")})

	if a.Position != 1 || b.Position != 2 || c.Position != 3 {
		t.Fatalf("positions = %d, %d, %d", a.Position, b.Position, c.Position)
	}

	if _, err := svc.Items().DeleteItem(ctx, b.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if err := svc.ReorderItems(ctx, []ReorderUpdate{
		{ID: c.ID, Position: 1},
		{ID: a.ID, Position: 2},
	}); err != nil {
		t.Fatalf("ReorderItems: %v", err)
	}

	got, err := svc.GetMenuByLocation(ctx, "header")
	if err != nil {
		t.Fatalf("GetMenuByLocation: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(got.Items))
	}
	if got.Items[0].Item.Title != "C" || got.Items[1].Item.Title != "A" {
		t.Errorf("order = [%s, %s], want [C, A]", got.Items[0].Item.Title, got.Items[1].Item.Title)
	}
	if got.Items[1].URL != "/home" {
		t.Errorf("A.URL = %q, want /home", got.Items[1].URL)
	}
}
