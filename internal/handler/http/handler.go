// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-dav-sync/internal/logger"
	"github.com/MKhiriev/go-dav-sync/internal/store"
)

// Handler serves the status API.
type Handler struct {
	stats    store.SyncStatsRepository
	gatherer prometheus.Gatherer

	logger *logger.Logger
}

// NewHandler creates a Handler. A nil gatherer disables the /metrics route.
func NewHandler(stats store.SyncStatsRepository, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		stats:    stats,
		gatherer: gatherer,
		logger:   logger,
	}
}
