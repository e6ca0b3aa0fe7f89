// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/olegiv/onav-go/internal/handler"
	"github.com/olegiv/onav-go/internal/middleware"
	"github.com/olegiv/onav-go/internal/service"
)

// UpdateHeaderStyle handles PUT /menus/{id}/header-style. The route sits
// behind API key authentication; the key's user id becomes the verified
// caller identity.
func (h *Handler) UpdateHeaderStyle(w http.ResponseWriter, r *http.Request) {
	menuID, err := handler.ParseIDParam(r)
	if err != nil {
		handler.WriteJSONError(w, http.StatusBadRequest, "invalid menu ID")
		return
	}

	var req StyleInputRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var userID int64
	if apiKey := middleware.GetAPIKey(r); apiKey != nil {
		userID = apiKey.UserID
	}

	hs, err := h.menus.Styles().UpdateHeaderStyle(r.Context(), userID, menuID, headerStyleInput(req))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	handler.WriteJSONSuccess(w, map[string]any{"header_style": headerStyleToResponse(&hs)})
}

// FooterStyleResultResponse is the footer upsert's result envelope. Unlike
// every other endpoint a missing menu is reported inside the envelope with
// status 200.
type FooterStyleResultResponse struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message"`
	FooterStyle *StyleRecordResponse `json:"footer_style,omitempty"`
}

// UpdateFooterStyle handles PUT /menus/{id}/footer-style.
func (h *Handler) UpdateFooterStyle(w http.ResponseWriter, r *http.Request) {
	menuID, err := handler.ParseIDParam(r)
	if err != nil {
		handler.WriteJSONError(w, http.StatusBadRequest, "invalid menu ID")
		return
	}

	var req StyleInputRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.menus.Styles().UpdateFooterStyle(r.Context(), menuID, service.FooterStyleInput{
		Transparency:    req.Transparency,
		Alignment:       req.Alignment,
		ShowBorder:      req.ShowBorder,
		AdvancedOptions: req.AdvancedOptions,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	handler.WriteJSON(w, http.StatusOK, FooterStyleResultResponse{
		Success:     result.Success,
		Message:     result.Message,
		FooterStyle: footerStyleToResponse(result.FooterStyle),
	})
}
