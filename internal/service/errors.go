// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrUnknownAuthority is returned by [Strategies.ForAuthority] when no
	// strategy is registered for an authority.
	ErrUnknownAuthority = errors.New("no strategy for authority")

	// ErrInvalidPayload marks an entry whose payload does not hold the
	// component the strategy expects.
	ErrInvalidPayload = errors.New("invalid entry payload")
)
