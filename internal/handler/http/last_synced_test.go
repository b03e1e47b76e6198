// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-dav-sync/internal/app"
	"github.com/MKhiriev/go-dav-sync/internal/logger"
	"github.com/MKhiriev/go-dav-sync/internal/metrics"
	"github.com/MKhiriev/go-dav-sync/internal/mock"
	"github.com/MKhiriev/go-dav-sync/internal/store"
	"github.com/MKhiriev/go-dav-sync/internal/utils"
	"github.com/MKhiriev/go-dav-sync/models"
)

func TestAppName(t *testing.T) {
	tests := []struct {
		authority string
		want      string
	}{
		{models.AuthorityEvents, "Calendar"},
		{models.AuthorityContacts, "Contacts"},
		{models.AuthorityTasks, "Tasks"},
		{models.AuthorityWebDAVDocuments, "Documents"},
		{"journals", "journals"},
	}
	for _, tt := range tests {
		t.Run(tt.authority, func(t *testing.T) {
			assert.Equal(t, tt.want, appName(tt.authority))
		})
	}
}

func TestLastSynced(t *testing.T) {
	t1 := time.UnixMilli(1_700_000_000_000).UTC()
	t2 := time.UnixMilli(1_700_000_500_000).UTC()

	tests := []struct {
		name       string
		stats      []models.SyncStats
		err        error
		wantStatus int
		wantMsg    string
		want       []models.LastSynced
	}{
		{
			name: "sorted by app name",
			stats: []models.SyncStats{
				{CollectionID: "c1", Authority: models.AuthorityTasks, LastSync: t1},
				{CollectionID: "c1", Authority: "journals", LastSync: t2},
				{CollectionID: "c1", Authority: models.AuthorityEvents, LastSync: t2},
			},
			wantStatus: http.StatusOK,
			want: []models.LastSynced{
				{AppName: "Calendar", LastSynced: t2},
				{AppName: "journals", LastSynced: t2},
				{AppName: "Tasks", LastSynced: t1},
			},
		},
		{
			name:       "no stats",
			wantStatus: http.StatusOK,
			want:       []models.LastSynced{},
		},
		{
			name:       "store unavailable",
			err:        fmt.Errorf("%w: %w", store.ErrExecutingQuery, store.ErrConnectionLost),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    app.MsgStoreUnavailable,
		},
		{
			name:       "permission denied",
			err:        fmt.Errorf("%w: %w", store.ErrExecutingQuery, store.ErrPermissionDenied),
			wantStatus: http.StatusForbidden,
			wantMsg:    app.MsgStoreAccessDenied,
		},
		{
			name:       "query error",
			err:        store.ErrScanningRows,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			stats := mock.NewMockSyncStatsRepository(ctrl)
			stats.EXPECT().GetLastSynced(gomock.Any(), "c1").Return(tt.stats, tt.err)

			router := NewHandler(stats, nil, logger.Nop()).Init()
			srv := httptest.NewServer(router)
			defer srv.Close()

			resp, err := http.Get(srv.URL + "/api/collections/c1/last-synced")
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get(traceIDHeader))

			if tt.err != nil {
				var body utils.ErrorResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, tt.wantMsg, body.Error)
				return
			}

			var got []models.LastSynced
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].AppName, got[i].AppName)
				assert.True(t, tt.want[i].LastSynced.Equal(got[i].LastSynced))
			}
		})
	}
}

func TestMetricsRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.RecordRun(models.AuthorityEvents, metrics.OutcomeCompleted)

	ctrl := gomock.NewController(t)
	router := NewHandler(mock.NewMockSyncStatsRepository(ctrl), reg, logger.Nop()).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `davsync_sync_runs_total{authority="events",outcome="completed"} 1`)
}

func TestMetricsRoute_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := NewHandler(mock.NewMockSyncStatsRepository(ctrl), nil, logger.Nop()).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
