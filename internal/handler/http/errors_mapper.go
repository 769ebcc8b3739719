// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/kp-refresher/internal/adapter"
	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/MKhiriev/kp-refresher/internal/service"
	"github.com/MKhiriev/kp-refresher/internal/utils"
	"github.com/MKhiriev/kp-refresher/models"
)

// statusClientClosedRequest is the nginx convention for a request abandoned
// by its caller.
const statusClientClosedRequest = 499

var errorStatusMap = map[error]int{
	service.ErrMissingAPIKey:         http.StatusPreconditionFailed,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	adapter.ErrRateLimited: http.StatusTooManyRequests,
	adapter.ErrBadResponse: http.StatusBadGateway,

	context.Canceled:         statusClientClosedRequest,
	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

var kindStatusMap = map[service.ErrorKind]int{
	service.KindAuth:      http.StatusUnauthorized,
	service.KindNotFound:  http.StatusNotFound,
	service.KindTransient: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	if status, ok := kindStatusMap[service.Classify(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	log.Err(err).Int("status", status).Msg(msg)

	if _, werr := utils.WriteJSON(w, models.ErrorResponse{
		Error: service.UserMessage(err),
		Kind:  service.Classify(err).String(),
	}, status); werr != nil {
		log.Err(werr).Msg("error writing error response")
	}
}
