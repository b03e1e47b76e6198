// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net"
)

var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("access forbidden")
	ErrNotFound     = errors.New("resource not found")
	ErrClientClosed = errors.New("client is closed")

	// ErrServerUnavailable wraps 5xx responses.
	ErrServerUnavailable = errors.New("remote server unavailable")
)

// IsTransient reports whether err is a remote failure that is expected to
// go away on a later attempt: a 5xx response, a failed dial or read, or a
// timeout. Canceled or expired contexts are not transient, and neither are
// request errors that never reached the network.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrServerUnavailable) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
