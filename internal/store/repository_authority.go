// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

type authorityRepository struct {
	*DB
}

// NewAuthorityRepository returns an [AuthorityRepository] backed by db.
func NewAuthorityRepository(db *DB) AuthorityRepository {
	return &authorityRepository{DB: db}
}

func (r *authorityRepository) RevokeAuthority(ctx context.Context, name string) error {
	log := r.logger.WithFields("func", "authorityRepository.RevokeAuthority", "authority", name)

	query, args, err := r.builder.
		Update(tableAuthorities).
		Set("granted", false).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error revoking authority")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, r.wrapError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: unknown authority %q", ErrProviderUnavailable, name)
	}

	log.Debug().Msg("authority revoked")
	return nil
}
