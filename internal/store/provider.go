// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-dav-sync/internal/logger"
)

type providerResolver struct {
	db     *DB
	logger *logger.Logger
}

// NewProviderResolver returns a [ProviderResolver] handing out sessions
// backed by dedicated connections of db.
func NewProviderResolver(db *DB, log *logger.Logger) ProviderResolver {
	return &providerResolver{db: db, logger: log}
}

func (p *providerResolver) Acquire(ctx context.Context, authority string) (Session, error) {
	log := p.logger.WithFields("func", "providerResolver.Acquire", "authority", authority)

	query, args, err := p.db.builder.
		Select("enabled", "granted").
		From(tableAuthorities).
		Where(sq.Eq{"name": authority}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	conn, err := p.db.Conn(ctx)
	if err != nil {
		log.Err(err).Msg("error reserving database connection")
		return nil, p.acquireError(authority, err)
	}

	var enabled, granted bool
	err = conn.QueryRowContext(ctx, query, args...).Scan(&enabled, &granted)
	if err != nil {
		_ = conn.Close()
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Msg("authority is not registered")
			return nil, fmt.Errorf("%w: unknown authority %q", ErrProviderUnavailable, authority)
		}
		log.Err(err).Msg("error reading authority state")
		return nil, p.acquireError(authority, err)
	}

	if !enabled {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: authority %q is disabled", ErrProviderUnavailable, authority)
	}
	if !granted {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %q", ErrPermissionDenied, authority)
	}

	return newSession(conn, p.db, authority, p.logger), nil
}

// acquireError reports database failures during acquisition. Refused access
// stays a permission error, everything else means there is no provider.
func (p *providerResolver) acquireError(authority string, err error) error {
	wrapped := p.db.wrapError(err)
	if errors.Is(wrapped, ErrPermissionDenied) {
		return fmt.Errorf("acquire %q: %w", authority, wrapped)
	}
	return fmt.Errorf("%w: acquire %q: %w", ErrProviderUnavailable, authority, err)
}
