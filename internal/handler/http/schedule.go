// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/MKhiriev/kp-refresher/internal/utils"
	"github.com/MKhiriev/kp-refresher/models"
)

const (
	msgScheduleCancelled = "Scheduled refresh disabled!"
	msgNoSchedule        = "No scheduled refresh"
)

func (h *Handler) scheduleStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	status := h.services.RefreshService.ScheduleStatus()

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing schedule status")
	}
}

func (h *Handler) cancelSchedule(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	resp := models.CancelScheduleResponse{Message: msgNoSchedule}
	if h.services.RefreshService.CancelSchedule() {
		resp = models.CancelScheduleResponse{Cancelled: true, Message: msgScheduleCancelled}
		log.Info().Msg("scheduled refresh cancelled")
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing cancel schedule response")
	}
}

func (h *Handler) mapChange(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.MapChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	svc := h.services.RefreshService
	resp := models.MapChangeResponse{}
	if svc.HandleMapChange(r.Context(), req.FromMapID, req.ToMapID) {
		resp.Scheduled = true
		resp.Message = svc.ScheduleStatus().Message
	}

	log.Debug().
		Int("from", req.FromMapID).
		Int("to", req.ToMapID).
		Bool("scheduled", resp.Scheduled).
		Msg("map change received")

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing map change response")
	}
}
