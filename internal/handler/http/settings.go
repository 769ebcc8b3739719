// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/kp-refresher/internal/config"
	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/MKhiriev/kp-refresher/internal/utils"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, h.settings.Settings(), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing settings")
	}
}

// putSettings replaces the whole snapshot. Omitted fields take their zero
// value; delays are clamped and the stored snapshot is echoed back.
func (h *Handler) putSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var settings config.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	stored := h.settings.Replace(settings)
	log.Info().Any("settings", stored).Msg("settings replaced")

	if _, err := utils.WriteJSON(w, stored, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing settings")
	}
}
