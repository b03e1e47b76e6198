// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-dav-sync/internal/logger"
	"github.com/MKhiriev/go-dav-sync/internal/utils"
	"github.com/MKhiriev/go-dav-sync/models"
)

type sqlSession struct {
	conn      *sql.Conn
	db        *DB
	authority string
	logger    *logger.Logger

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

func newSession(conn *sql.Conn, db *DB, authority string, log *logger.Logger) *sqlSession {
	return &sqlSession{
		conn:      conn,
		db:        db,
		authority: authority,
		logger:    log.WithFields("authority", authority),
	}
}

func (s *sqlSession) Authority() string {
	return s.authority
}

func (s *sqlSession) Collections(ctx context.Context, account string) ([]models.Collection, error) {
	log := s.logger.WithFields("func", "sqlSession.Collections", "account", account)

	if err := s.checkAccount(ctx, account); err != nil {
		return nil, err
	}

	query, args, err := s.db.builder.
		Select(collectionColumns...).
		From(tableCollections).
		Where(sq.Eq{"account": account, "authority": s.authority}).
		OrderBy("url").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error selecting collections")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, s.db.wrapError(err))
	}
	defer rows.Close()

	var collections []models.Collection
	for rows.Next() {
		var c models.Collection
		if err = rows.Scan(&c.ID, &c.Account, &c.Authority, &c.URL, &c.DisplayName, &c.SyncToken); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		collections = append(collections, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, s.db.wrapError(err))
	}

	return collections, nil
}

func (s *sqlSession) checkAccount(ctx context.Context, account string) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}

	query, args, err := s.db.builder.
		Select("name").
		From(tableAccounts).
		Where(sq.Eq{"name": account}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var name string
	err = s.conn.QueryRowContext(ctx, query, args...).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %q", ErrAccountRemoved, account)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, s.db.wrapError(err))
	}
	return nil
}

func (s *sqlSession) SaveCollection(ctx context.Context, c *models.Collection) error {
	if c.ID == "" {
		c.ID = utils.NewUUID()
	}
	if c.Authority == "" {
		c.Authority = s.authority
	}

	query, args, err := s.db.builder.
		Insert(tableCollections).
		Columns(collectionColumns...).
		Values(c.ID, c.Account, c.Authority, c.URL, c.DisplayName, c.SyncToken).
		Suffix(upsertCollectionSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.exec(ctx, "sqlSession.SaveCollection", query, args...)
}

func (s *sqlSession) DeleteCollection(ctx context.Context, collectionID string) error {
	log := s.logger.WithFields("func", "sqlSession.DeleteCollection", "collection_id", collectionID)

	if s.closed.Load() {
		return ErrSessionClosed
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, s.db.wrapError(err))
	}
	defer tx.Rollback()

	for _, del := range []sq.DeleteBuilder{
		s.db.builder.Delete(tableEntries).Where(sq.Eq{"collection_id": collectionID}),
		s.db.builder.Delete(tableSyncStats).Where(sq.Eq{"collection_id": collectionID}),
		s.db.builder.Delete(tableCollections).Where(sq.Eq{"id": collectionID}),
	} {
		query, args, err := del.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Msg("error deleting collection")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, s.db.wrapError(err))
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, s.db.wrapError(err))
	}
	return nil
}

func (s *sqlSession) Entries(ctx context.Context, collectionID string) ([]models.Entry, error) {
	if s.closed.Load() {
		return nil, ErrSessionClosed
	}

	query, args, err := s.db.builder.
		Select("href", "etag", "data").
		From(tableEntries).
		Where(sq.Eq{"collection_id": collectionID}).
		OrderBy("href").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "sqlSession.Entries").Msg("error selecting entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, s.db.wrapError(err))
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var (
			e    models.Entry
			data string
		)
		if err = rows.Scan(&e.Href, &e.ETag, &data); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		e.CollectionID = collectionID
		e.Data = []byte(data)
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, s.db.wrapError(err))
	}

	return entries, nil
}

func (s *sqlSession) SaveEntry(ctx context.Context, entry models.Entry) error {
	query, args, err := s.db.builder.
		Insert(tableEntries).
		Columns("collection_id", "href", "etag", "data").
		Values(entry.CollectionID, entry.Href, entry.ETag, string(entry.Data)).
		Suffix(upsertEntrySuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.exec(ctx, "sqlSession.SaveEntry", query, args...)
}

func (s *sqlSession) DeleteEntry(ctx context.Context, collectionID, href string) error {
	query, args, err := s.db.builder.
		Delete(tableEntries).
		Where(sq.Eq{"collection_id": collectionID, "href": href}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.exec(ctx, "sqlSession.DeleteEntry", query, args...)
}

func (s *sqlSession) RecordLastSync(ctx context.Context, collectionID string, at time.Time) error {
	query, args, err := s.db.builder.
		Insert(tableSyncStats).
		Columns("collection_id", "authority", "last_sync").
		Values(collectionID, s.authority, at.UnixMilli()).
		Suffix(upsertSyncStatsSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.exec(ctx, "sqlSession.RecordLastSync", query, args...)
}

func (s *sqlSession) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}

func (s *sqlSession) exec(ctx context.Context, funcName, query string, args ...any) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", funcName).Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, s.db.wrapError(err))
	}
	return nil
}
