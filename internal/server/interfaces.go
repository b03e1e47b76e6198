// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the status server.
type Server interface {
	// Run serves requests until ctx is canceled or serving fails.
	Run(ctx context.Context) error
}
