// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Authorities known to the local store. AuthorityVirtualWebDAV is not an
// authority of its own: documents are hosted by AuthorityWebDAVDocuments and
// the alias is resolved before a session is acquired.
const (
	AuthorityEvents          = "events"
	AuthorityContacts        = "contacts"
	AuthorityTasks           = "tasks"
	AuthorityWebDAVDocuments = "webdav-documents"
	AuthorityVirtualWebDAV   = "virtual-webdav"
)
