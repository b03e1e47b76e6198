// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the prometheus collectors of go-dav-sync.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Run outcomes used as the "outcome" label of the runs counter.
const (
	OutcomeCompleted         = "completed"
	OutcomeSoftFailed        = "soft_failed"
	OutcomeIgnored           = "ignored"
	OutcomeHardFailed        = "hard_failed"
	OutcomeAcquisitionFailed = "acquisition_failed"
)

// Metrics groups the collectors shared by the orchestrator and the
// strategies. A nil *Metrics is valid and records nothing.
type Metrics struct {
	syncRuns     *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		syncRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "davsync_sync_runs_total",
				Help: "Total number of sync runs by resolved authority and outcome",
			},
			[]string{"authority", "outcome"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "davsync_cache_lookups_total",
				Help: "Total number of HEAD response cache lookups by result",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(m.syncRuns, m.cacheLookups)
	return m
}

// RecordRun counts one finished run.
func (m *Metrics) RecordRun(authority, outcome string) {
	if m == nil {
		return
	}
	m.syncRuns.WithLabelValues(authority, outcome).Inc()
}

// RecordCacheLookup counts one cache lookup.
func (m *Metrics) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
