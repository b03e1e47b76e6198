// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyHref          = errors.New("href is required")
	ErrEmptyETag          = errors.New("etag is required")
	ErrEmptyData          = errors.New("data is required")
	ErrMissingComponent   = errors.New("payload has no expected component")
	ErrEmptyCollectionURL = errors.New("collection url is required")
)
