// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncer

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-dav-sync/internal/store"
)

// FailureKind is the closed set of failure kinds the orchestrator knows how
// to handle.
type FailureKind int

const (
	// FailureUnclassified is any failure not matching a recognised kind.
	FailureUnclassified FailureKind = iota

	// FailureRemoteProcessGone means the process or connection backing the
	// local store died during the run.
	FailureRemoteProcessGone

	// FailurePermissionDenied means access to the local store was refused.
	FailurePermissionDenied

	// FailureUnavailable means the local store provider is absent or
	// disabled.
	FailureUnavailable

	// FailureIdentityGone means the account was removed while syncing.
	FailureIdentityGone
)

func (k FailureKind) String() string {
	switch k {
	case FailureRemoteProcessGone:
		return "remote_process_gone"
	case FailurePermissionDenied:
		return "permission_denied"
	case FailureUnavailable:
		return "unavailable"
	case FailureIdentityGone:
		return "identity_gone"
	default:
		return "unclassified"
	}
}

// Outcome tells the orchestrator how to account for a failure.
type Outcome int

const (
	// HardFatal failures are counted in SyncResult.HardErrors.
	HardFatal Outcome = iota
	// SoftTransient failures are counted in SyncResult.SoftErrors.
	SoftTransient
	// Ignorable failures are logged and not counted.
	Ignorable
)

func (o Outcome) String() string {
	switch o {
	case SoftTransient:
		return "soft_transient"
	case Ignorable:
		return "ignorable"
	default:
		return "hard_fatal"
	}
}

// Classify maps a failure kind to its outcome. It is total: kinds it does
// not know about are hard failures.
func Classify(kind FailureKind) Outcome {
	switch kind {
	case FailureRemoteProcessGone:
		return SoftTransient
	case FailureIdentityGone:
		return Ignorable
	default:
		return HardFatal
	}
}

// Failure is an error tagged with its [FailureKind]. Strategies may return a
// *Failure to pick the kind explicitly; any other error is tagged by
// [NewFailure].
type Failure struct {
	Kind FailureKind
	Err  error
}

// Fail returns err tagged with kind.
func Fail(kind FailureKind, err error) *Failure {
	return &Failure{Kind: kind, Err: err}
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return f.Kind.String()
	}
	return fmt.Sprintf("%s: %v", f.Kind, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// NewFailure tags err with the kind derived from its chain:
//   - store.ErrAccountRemoved: FailureIdentityGone
//   - store.ErrConnectionLost, broken driver connections and context
//     cancellation: FailureRemoteProcessGone
//   - store.ErrPermissionDenied: FailurePermissionDenied
//   - store.ErrProviderUnavailable: FailureUnavailable
//
// Everything else is FailureUnclassified. A *Failure already present in the
// chain is returned unchanged.
func NewFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}

	switch {
	case errors.Is(err, store.ErrAccountRemoved):
		return Fail(FailureIdentityGone, err)
	case errors.Is(err, store.ErrConnectionLost),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return Fail(FailureRemoteProcessGone, err)
	case errors.Is(err, store.ErrPermissionDenied):
		return Fail(FailurePermissionDenied, err)
	case errors.Is(err, store.ErrProviderUnavailable):
		return Fail(FailureUnavailable, err)
	default:
		return Fail(FailureUnclassified, err)
	}
}
