// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HeadResponse holds the metadata of a remote document as returned by a HEAD
// request.
type HeadResponse struct {
	ETag           string    `json:"etag"`
	Size           int64     `json:"size"`
	LastModified   time.Time `json:"last_modified"`
	SupportsRanges bool      `json:"supports_ranges"`
}
