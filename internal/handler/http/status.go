// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/MKhiriev/kp-refresher/internal/service"
	"github.com/MKhiriev/kp-refresher/internal/utils"
	"github.com/MKhiriev/kp-refresher/models"
)

func (h *Handler) fullStatus(w http.ResponseWriter, r *http.Request) {
	h.writeDelta(w, r, h.services.RefreshService.ComputeFullStatus, "full status")
}

func (h *Handler) recentStatus(w http.ResponseWriter, r *http.Request) {
	h.writeDelta(w, r, h.services.RefreshService.ComputeRecentDelta, "recent status")
}

func (h *Handler) writeDelta(
	w http.ResponseWriter,
	r *http.Request,
	compute func(ctx context.Context) ([]models.DeltaEntry, error),
	name string,
) {
	log := logger.FromRequest(r)

	delta, err := compute(r.Context())
	if err != nil {
		writeError(w, r, err, "error computing "+name)
		return
	}

	resp := service.NewDeltaResponse(delta)
	log.Debug().Int("entries", resp.Length).Int("pending", resp.Pending).Msg(name + " computed")

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing " + name + " response")
	}
}

func (h *Handler) accomplishments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	report, err := h.services.RefreshService.ListCurrentAccomplishments(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing accomplishments")
		return
	}

	if _, err = utils.WriteText(w, report, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing accomplishments")
	}
}
