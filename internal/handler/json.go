// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides shared HTTP plumbing: the JSON response
// envelope, parameter parsing, and the health endpoint.
package handler

import (
	"encoding/json"
	"net/http"
)

// WriteJSONError writes a JSON error response.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   message,
	})
}

// WriteJSONSuccess writes a JSON success response with status 200.
func WriteJSONSuccess(w http.ResponseWriter, data map[string]any) {
	WriteJSONSuccessStatus(w, http.StatusOK, data)
}

// WriteJSONSuccessStatus writes a JSON success response with the given status.
func WriteJSONSuccessStatus(w http.ResponseWriter, statusCode int, data map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data == nil {
		data = make(map[string]any)
	}
	data["success"] = true
	_ = json.NewEncoder(w).Encode(data)
}

// WriteJSON writes an arbitrary value as JSON with the given status.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}
