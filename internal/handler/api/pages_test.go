// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"testing"
)

func TestListPages(t *testing.T) {
	db, h := testSetup(t)
	createTestPage(t, db, "About", "about", "published")
	createTestPage(t, db, "Contact", "contact", "published")
	createTestPage(t, db, "Draft", "draft", "draft")

	w := executeHandler(t, h.ListPages, newGetRequest(t, "/pages", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	pages := unmarshalField[[]PageResponse](t, w, "pages")
	if len(pages) != 2 {
		t.Fatalf("len(pages) = %d, want 2 (drafts excluded)", len(pages))
	}
	// Pages come back ordered by title.
	if pages[0].Title != "About" || pages[1].Title != "Contact" {
		t.Errorf("pages = [%s, %s], want [About, Contact]", pages[0].Title, pages[1].Title)
	}
	if pages[0].Slug != "about" || pages[0].Status != "published" {
		t.Errorf("page = %+v, want about/published", pages[0])
	}
}

func TestListPagesEmpty(t *testing.T) {
	_, h := testSetup(t)

	w := executeHandler(t, h.ListPages, newGetRequest(t, "/pages", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	pages := unmarshalField[[]PageResponse](t, w, "pages")
	if len(pages) != 0 {
		t.Errorf("len(pages) = %d, want 0", len(pages))
	}
}
