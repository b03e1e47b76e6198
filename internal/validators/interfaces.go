// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks remote data before it reaches the local store.
//
// A Validator accepts a value and an optional list of field names. With no
// fields every rule for the value's type is applied; otherwise only the
// named ones are.
package validators

import "context"

// Validator validates arbitrary values, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
