// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net/http"

	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/MKhiriev/kp-refresher/internal/utils"
	"github.com/MKhiriev/kp-refresher/models"
)

// refresh always answers 200: the outcome, including failures, travels in
// the body so the overlay can show the message as is.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	result := h.services.RefreshService.Refresh(r.Context())

	event := log.Info()
	if result.Err != nil {
		event = log.Warn().Err(result.Err)
	}
	event.Stringer("outcome", result.Outcome).
		Bool("retry_scheduled", result.RetryScheduled).
		Msg("refresh finished")

	if _, err := utils.WriteJSON(w, newRefreshResponse(result), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing refresh response")
	}
}

func newRefreshResponse(result models.RefreshResult) models.RefreshResponse {
	resp := models.RefreshResponse{
		Outcome:        result.Outcome,
		Message:        result.Message,
		RetryScheduled: result.RetryScheduled,
	}
	if result.RetryScheduled {
		resp.RetryInSeconds = int64(math.Ceil(result.RetryIn.Seconds()))
	}
	return resp
}
