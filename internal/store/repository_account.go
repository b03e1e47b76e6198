// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

type accountRepository struct {
	*DB
}

// NewAccountRepository returns an [AccountRepository] backed by db.
func NewAccountRepository(db *DB) AccountRepository {
	return &accountRepository{DB: db}
}

func (r *accountRepository) EnsureAccount(ctx context.Context, name string) error {
	query, args, err := r.builder.
		Insert(tableAccounts).
		Columns("name").
		Values(name).
		Suffix(insertAccountSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "accountRepository.EnsureAccount").Str("account", name).Msg("error inserting account")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, r.wrapError(err))
	}
	return nil
}

// RemoveAccount deletes the account and all local data stored for it.
func (r *accountRepository) RemoveAccount(ctx context.Context, name string) error {
	log := r.logger.WithFields("func", "accountRepository.RemoveAccount", "account", name)

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, r.wrapError(err))
	}
	defer tx.Rollback()

	// nested into the deletes below, so it keeps the '?' placeholders and
	// lets the outer builder number them
	collectionsOfAccount := sq.
		Select("id").
		From(tableCollections).
		Where(sq.Eq{"account": name})

	subquery, subqueryArgs, err := collectionsOfAccount.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	statements := []sq.Sqlizer{
		r.builder.Delete(tableEntries).Where("collection_id IN ("+subquery+")", subqueryArgs...),
		r.builder.Delete(tableSyncStats).Where("collection_id IN ("+subquery+")", subqueryArgs...),
		r.builder.Delete(tableCollections).Where(sq.Eq{"account": name}),
		r.builder.Delete(tableAccounts).Where(sq.Eq{"name": name}),
	}
	for _, stmt := range statements {
		query, args, err := stmt.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Msg("error removing account data")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, r.wrapError(err))
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, r.wrapError(err))
	}
	return nil
}
