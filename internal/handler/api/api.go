// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the REST surface of the navigation engine.
package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/onav-go/internal/handler"
	"github.com/olegiv/onav-go/internal/middleware"
	"github.com/olegiv/onav-go/internal/model"
	"github.com/olegiv/onav-go/internal/service"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	db      *sql.DB
	menus   *service.MenuService
	catalog service.PageCatalog
}

// NewHandler creates a new API handler.
func NewHandler(db *sql.DB, menus *service.MenuService, catalog service.PageCatalog) *Handler {
	return &Handler{
		db:      db,
		menus:   menus,
		catalog: catalog,
	}
}

// Routes returns the /api/v1 router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/menus", h.ListMenus)
	r.Post("/menus", h.CreateMenu)
	r.Get("/menus/{id}", h.GetMenu)
	r.Put("/menus/{id}", h.UpdateMenu)
	r.Delete("/menus/{id}", h.DeleteMenu)
	r.Get("/menus/by-location/{location}", h.GetMenuByLocation)
	r.Get("/menus/by-name/{name}", h.GetMenuByName)

	r.Post("/menus/{id}/items", h.CreateItem)
	r.Put("/items/{id}", h.UpdateItem)
	r.Delete("/items/{id}", h.DeleteItem)
	r.Put("/items/{id}/order", h.SetItemOrder)
	r.Post("/items/reorder", h.ReorderItems)

	r.With(middleware.APIKeyAuth(h.db)).Put("/menus/{id}/header-style", h.UpdateHeaderStyle)
	r.Put("/menus/{id}/footer-style", h.UpdateFooterStyle)

	r.Get("/pages", h.ListPages)

	return r
}

// writeServiceError maps a service error onto the JSON error envelope.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		handler.WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrNotFound):
		handler.WriteJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrAuth):
		handler.WriteJSONError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, model.ErrTransaction):
		handler.WriteJSONError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("request failed", "error", err)
		handler.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		handler.WriteJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
