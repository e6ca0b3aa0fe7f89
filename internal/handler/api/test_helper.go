// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "modernc.org/sqlite"

	"github.com/olegiv/onav-go/internal/service"
	"github.com/olegiv/onav-go/internal/store"
)

// testDB creates an in-memory SQLite database with the full schema.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// A second connection would see an empty in-memory database.
	db.SetMaxOpenConns(1)

	if err := store.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// testSetup creates a test database and API handler for testing.
func testSetup(t *testing.T) (*sql.DB, *Handler) {
	t.Helper()
	db := testDB(t)
	catalog := service.NewPageCatalog(db)
	menus := service.NewMenuService(db, catalog, nil)
	return db, NewHandler(db, menus, catalog)
}

// createTestPage creates a page in the database.
func createTestPage(t *testing.T, db *sql.DB, title, slug, status string) store.Page {
	t.Helper()
	now := time.Now()
	page, err := store.New(db).CreatePage(context.Background(), store.CreatePageParams{
		Title:     title,
		Slug:      slug,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("failed to create test page: %v", err)
	}
	return page
}

// createTestMenu creates a menu in the database.
func createTestMenu(t *testing.T, db *sql.DB, name, location string) store.Menu {
	t.Helper()
	now := time.Now()
	menu, err := store.New(db).CreateMenu(context.Background(), store.CreateMenuParams{
		Name:      name,
		Location:  sql.NullString{String: location, Valid: location != ""},
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("failed to create test menu: %v", err)
	}
	return menu
}

// createTestItem creates a menu item through the service so positions are
// assigned the same way as in production.
func createTestItem(t *testing.T, h *Handler, input service.CreateItemInput) store.MenuItem {
	t.Helper()
	item, err := h.menus.Items().CreateItem(context.Background(), input)
	if err != nil {
		t.Fatalf("failed to create test item: %v", err)
	}
	return item
}

// requestWithURLParams adds chi URL parameters to a request.
func requestWithURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newJSONRequest creates an HTTP request with JSON body and optional URL params.
func newJSONRequest(t *testing.T, method, path string, body string, params map[string]string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if len(params) > 0 {
		req = requestWithURLParams(req, params)
	}
	return req
}

// newGetRequest creates an HTTP GET request with optional URL params.
func newGetRequest(t *testing.T, path string, params map[string]string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if len(params) > 0 {
		req = requestWithURLParams(req, params)
	}
	return req
}

// newDeleteRequest creates an HTTP DELETE request with optional URL params.
func newDeleteRequest(t *testing.T, path string, params map[string]string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	if len(params) > 0 {
		req = requestWithURLParams(req, params)
	}
	return req
}

// executeHandler executes a handler and returns the response recorder.
func executeHandler(t *testing.T, handler func(http.ResponseWriter, *http.Request), req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

// decodeBody unmarshals a JSON response body into a generic envelope.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return body
}

// unmarshalField unmarshals one field of a response envelope into T.
func unmarshalField[T any](t *testing.T, w *httptest.ResponseRecorder, field string) T {
	t.Helper()
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	raw, ok := envelope[field]
	if !ok {
		t.Fatalf("response has no %q field: %s", field, w.Body.String())
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("failed to unmarshal %q: %v", field, err)
	}
	return out
}

// wantError asserts an error envelope with the given status.
func wantError(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d: %s", w.Code, status, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if msg, _ := body["error"].(string); msg == "" {
		t.Error("error message is empty")
	}
}
