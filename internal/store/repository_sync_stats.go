// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-dav-sync/models"
)

type syncStatsRepository struct {
	*DB
}

// NewSyncStatsRepository returns a [SyncStatsRepository] backed by db.
func NewSyncStatsRepository(db *DB) SyncStatsRepository {
	return &syncStatsRepository{DB: db}
}

func (r *syncStatsRepository) GetLastSynced(ctx context.Context, collectionID string) ([]models.SyncStats, error) {
	query, args, err := r.builder.
		Select("authority", "last_sync").
		From(tableSyncStats).
		Where(sq.Eq{"collection_id": collectionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "syncStatsRepository.GetLastSynced").Msg("error selecting sync stats")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.wrapError(err))
	}
	defer rows.Close()

	var stats []models.SyncStats
	for rows.Next() {
		var (
			s        models.SyncStats
			lastSync int64
		)
		if err = rows.Scan(&s.Authority, &lastSync); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		s.CollectionID = collectionID
		s.LastSync = time.UnixMilli(lastSync)
		stats = append(stats, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stats, nil
}
