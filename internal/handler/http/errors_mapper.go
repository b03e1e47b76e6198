// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-dav-sync/internal/app"
	"github.com/MKhiriev/go-dav-sync/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// classified store errors come first, since query errors wrap them
var errorResponses = []struct {
	target error
	errorResponse
}{
	{store.ErrPermissionDenied, errorResponse{http.StatusForbidden, app.MsgStoreAccessDenied}},
	{store.ErrConnectionLost, errorResponse{http.StatusServiceUnavailable, app.MsgStoreUnavailable}},
	{store.ErrProviderUnavailable, errorResponse{http.StatusServiceUnavailable, app.MsgStoreUnavailable}},
}

func responseFromError(err error) errorResponse {
	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			return r.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}
