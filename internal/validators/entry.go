// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/go-dav-sync/models"
)

// Field names accepted by [EntryValidator].
const (
	FieldHref = "href"
	FieldETag = "etag"
	FieldData = "data"
	FieldURL  = "url"
)

// EntryValidator validates collections, remote listing members and
// downloaded entries of one component type ("VEVENT", "VCARD", ...).
type EntryValidator struct {
	beginLine []byte
}

// NewEntryValidator returns a validator whose entries must contain a
// "BEGIN:<component>" line. Matching ignores case.
func NewEntryValidator(component string) Validator {
	return &EntryValidator{beginLine: bytes.ToUpper([]byte("BEGIN:" + component))}
}

func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Entry:
		return v.validateEntry(value, fields...)
	case *models.Entry:
		return v.validateEntry(*value, fields...)

	case models.RemoteEntry:
		return v.validateRemoteEntry(value, fields...)

	case models.Collection:
		return v.validateCollection(value, fields...)
	case *models.Collection:
		return v.validateCollection(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateEntry(entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHref, FieldETag, FieldData}
	}

	for _, f := range fields {
		switch f {
		case FieldHref:
			if entry.Href == "" {
				return ErrEmptyHref
			}
		case FieldETag:
			if entry.ETag == "" {
				return ErrEmptyETag
			}
		case FieldData:
			if len(entry.Data) == 0 {
				return ErrEmptyData
			}
			if !bytes.Contains(bytes.ToUpper(entry.Data), v.beginLine) {
				return fmt.Errorf("%w: want %s", ErrMissingComponent, v.beginLine)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntryValidator) validateRemoteEntry(entry models.RemoteEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHref}
	}

	for _, f := range fields {
		switch f {
		case FieldHref:
			if entry.Href == "" {
				return ErrEmptyHref
			}
		case FieldETag:
			// deleted members carry no etag
			if entry.ETag == "" && !entry.Deleted {
				return ErrEmptyETag
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntryValidator) validateCollection(c models.Collection, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldURL}
	}

	for _, f := range fields {
		switch f {
		case FieldURL:
			if c.URL == "" {
				return ErrEmptyCollectionURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
