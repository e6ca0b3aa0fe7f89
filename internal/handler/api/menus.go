// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/onav-go/internal/handler"
	"github.com/olegiv/onav-go/internal/model"
	"github.com/olegiv/onav-go/internal/service"
	"github.com/olegiv/onav-go/internal/store"
	"github.com/olegiv/onav-go/internal/util"
)

// MenuResponse represents a menu row in API responses.
type MenuResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  *string   `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MenuDetailResponse is the full menu aggregate: the menu row, its nested
// item tree, and both style records when present.
type MenuDetailResponse struct {
	MenuResponse
	Items       []ItemNodeResponse   `json:"items"`
	HeaderStyle *StyleRecordResponse `json:"header_style,omitempty"`
	FooterStyle *StyleRecordResponse `json:"footer_style,omitempty"`
}

// ItemNodeResponse represents one node of the item tree with its resolved
// URL and nested children.
type ItemNodeResponse struct {
	ID       int64              `json:"id"`
	ParentID *int64             `json:"parent_id,omitempty"`
	Title    string             `json:"title"`
	URL      string             `json:"url"`
	PageID   *int64             `json:"page_id,omitempty"`
	PageSlug string             `json:"page_slug,omitempty"`
	Target   string             `json:"target,omitempty"`
	Icon     string             `json:"icon,omitempty"`
	Position int64              `json:"order"`
	Children []ItemNodeResponse `json:"children"`
}

// StyleRecordResponse represents a header or footer style record. Layout is
// set for header styles, Alignment for footer styles.
type StyleRecordResponse struct {
	ID              int64          `json:"id"`
	MenuID          int64          `json:"menu_id"`
	Transparency    int64          `json:"transparency"`
	Layout          string         `json:"layout,omitempty"`
	Alignment       string         `json:"alignment,omitempty"`
	ShowBorder      bool           `json:"show_border"`
	AdvancedOptions map[string]any `json:"advanced_options"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// StyleInputRequest is the request body for header and footer style upserts,
// standalone or embedded in a menu mutation.
type StyleInputRequest struct {
	Transparency    int64          `json:"transparency"`
	Layout          string         `json:"layout,omitempty"`
	Alignment       string         `json:"alignment,omitempty"`
	ShowBorder      bool           `json:"show_border"`
	AdvancedOptions map[string]any `json:"advanced_options,omitempty"`
}

// CreateMenuRequest is the request body for creating a menu.
type CreateMenuRequest struct {
	Name        string             `json:"name"`
	Location    string             `json:"location,omitempty"`
	HeaderStyle *StyleInputRequest `json:"header_style,omitempty"`
}

// UpdateMenuRequest is the request body for updating a menu. Omitted fields
// keep their current value; an empty location clears the slot.
type UpdateMenuRequest struct {
	Name        *string            `json:"name,omitempty"`
	Location    *string            `json:"location,omitempty"`
	HeaderStyle *StyleInputRequest `json:"header_style,omitempty"`
}

func menuToResponse(m store.Menu) MenuResponse {
	return MenuResponse{
		ID:        m.ID,
		Name:      m.Name,
		Location:  util.NullStringToPtr(m.Location),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func itemNodeToResponse(node service.MenuItemNode) ItemNodeResponse {
	children := make([]ItemNodeResponse, 0, len(node.Children))
	for _, child := range node.Children {
		children = append(children, itemNodeToResponse(child))
	}
	return ItemNodeResponse{
		ID:       node.Item.ID,
		ParentID: util.NullInt64ToPtr(node.Item.ParentID),
		Title:    node.Item.Title,
		URL:      node.URL,
		PageID:   util.NullInt64ToPtr(node.Item.PageID),
		PageSlug: node.PageSlug,
		Target:   node.Item.Target.String,
		Icon:     node.Item.Icon.String,
		Position: node.Item.Position,
		Children: children,
	}
}

func headerStyleToResponse(hs *model.HeaderStyle) *StyleRecordResponse {
	if hs == nil {
		return nil
	}
	return &StyleRecordResponse{
		ID:              hs.ID,
		MenuID:          hs.MenuID,
		Transparency:    hs.Transparency,
		Layout:          hs.Layout,
		ShowBorder:      hs.ShowBorder,
		AdvancedOptions: hs.AdvancedOptions,
		CreatedAt:       hs.CreatedAt,
		UpdatedAt:       hs.UpdatedAt,
	}
}

func footerStyleToResponse(fs *model.FooterStyle) *StyleRecordResponse {
	if fs == nil {
		return nil
	}
	return &StyleRecordResponse{
		ID:              fs.ID,
		MenuID:          fs.MenuID,
		Transparency:    fs.Transparency,
		Alignment:       fs.Alignment,
		ShowBorder:      fs.ShowBorder,
		AdvancedOptions: fs.AdvancedOptions,
		CreatedAt:       fs.CreatedAt,
		UpdatedAt:       fs.UpdatedAt,
	}
}

func menuDetailToResponse(detail service.MenuDetail) MenuDetailResponse {
	items := make([]ItemNodeResponse, 0, len(detail.Items))
	for _, node := range detail.Items {
		items = append(items, itemNodeToResponse(node))
	}
	return MenuDetailResponse{
		MenuResponse: menuToResponse(detail.Menu),
		Items:        items,
		HeaderStyle:  headerStyleToResponse(detail.HeaderStyle),
		FooterStyle:  footerStyleToResponse(detail.FooterStyle),
	}
}

func headerStyleInput(req StyleInputRequest) service.HeaderStyleInput {
	return service.HeaderStyleInput{
		Transparency:    req.Transparency,
		Layout:          req.Layout,
		ShowBorder:      req.ShowBorder,
		AdvancedOptions: req.AdvancedOptions,
	}
}

// ListMenus handles GET /menus.
func (h *Handler) ListMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.menus.ListMenus(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]MenuResponse, 0, len(menus))
	for _, m := range menus {
		out = append(out, menuToResponse(m))
	}
	handler.WriteJSONSuccess(w, map[string]any{"menus": out})
}

// GetMenu handles GET /menus/{id}.
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	id, err := handler.ParseIDParam(r)
	if err != nil {
		handler.WriteJSONError(w, http.StatusBadRequest, "invalid menu ID")
		return
	}

	detail, err := h.menus.GetMenu(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	handler.WriteJSONSuccess(w, map[string]any{"menu": menuDetailToResponse(detail)})
}

// GetMenuByLocation handles GET /menus/by-location/{location}.
func (h *Handler) GetMenuByLocation(w http.ResponseWriter, r *http.Request) {
	location := chi.URLParam(r, "location")
	if location == "" {
		handler.WriteJSONError(w, http.StatusBadRequest, "location is required")
		return
	}

	detail, err := h.menus.GetMenuByLocation(r.Context(), location)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	handler.WriteJSONSuccess(w, map[string]any{"menu": menuDetailToResponse(detail)})
}

// GetMenuByName handles GET /menus/by-name/{name}.
func (h *Handler) GetMenuByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		handler.WriteJSONError(w, http.StatusBadRequest, "name is required")
		return
	}

	detail, err := h.menus.GetMenuByName(r.Context(), name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	handler.WriteJSONSuccess(w, map[string]any{"menu": menuDetailToResponse(detail)})
}

// CreateMenu handles POST /menus.
func (h *Handler) CreateMenu(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := service.CreateMenuInput{
		Name:     req.Name,
		Location: util.NullStringFromValue(util.Slugify(req.Location)),
	}
	if req.HeaderStyle != nil {
		hs := headerStyleInput(*req.HeaderStyle)
		input.HeaderStyle = &hs
	}

	detail, err := h.menus.CreateMenu(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	handler.WriteJSONSuccessStatus(w, http.StatusCreated, map[string]any{"menu": menuDetailToResponse(detail)})
}

// UpdateMenu handles PUT /menus/{id}.
func (h *Handler) UpdateMenu(w http.ResponseWriter, r *http.Request) {
	id, err := handler.ParseIDParam(r)
	if err != nil {
		handler.WriteJSONError(w, http.StatusBadRequest, "invalid menu ID")
		return
	}

	var req UpdateMenuRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := service.UpdateMenuInput{Name: req.Name}
	if req.Location != nil {
		loc := util.Slugify(*req.Location)
		input.Location = &loc
	}
	if req.HeaderStyle != nil {
		hs := headerStyleInput(*req.HeaderStyle)
		input.HeaderStyle = &hs
	}

	detail, err := h.menus.UpdateMenu(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	handler.WriteJSONSuccess(w, map[string]any{"menu": menuDetailToResponse(detail)})
}

// DeleteMenu handles DELETE /menus/{id}. The menu's items and style records
// are removed with it.
func (h *Handler) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	id, err := handler.ParseIDParam(r)
	if err != nil {
		handler.WriteJSONError(w, http.StatusBadRequest, "invalid menu ID")
		return
	}

	if err := h.menus.DeleteMenu(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	handler.WriteJSONSuccess(w, nil)
}
