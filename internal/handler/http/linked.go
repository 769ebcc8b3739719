// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/MKhiriev/kp-refresher/internal/utils"
	"github.com/MKhiriev/kp-refresher/models"
)

func (h *Handler) refreshLinked(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	// count is served from the cache filled by the refresh itself
	message := h.services.RefreshService.RefreshLinkedAccounts(ctx)
	count := h.services.RefreshService.LinkedAccountCount(ctx)

	log.Info().Int("count", count).Msg("linked accounts refreshed")

	if _, err := utils.WriteJSON(w, models.LinkedRefreshResponse{
		Count:   count,
		Message: message,
	}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing linked refresh response")
	}
}

func (h *Handler) linkedCount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	count := h.services.RefreshService.LinkedAccountCount(r.Context())

	if _, err := utils.WriteJSON(w, models.LinkedCountResponse{Count: count}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing linked count response")
	}
}
