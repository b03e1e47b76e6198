// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-dav-sync/internal/logger"
	"github.com/MKhiriev/go-dav-sync/internal/utils"
	"github.com/MKhiriev/go-dav-sync/models"
)

var appNames = map[string]string{
	models.AuthorityEvents:          "Calendar",
	models.AuthorityContacts:        "Contacts",
	models.AuthorityTasks:           "Tasks",
	models.AuthorityWebDAVDocuments: "Documents",
}

// appName returns the readable name of authority, or the authority itself
// when it has none.
func appName(authority string) string {
	if name, ok := appNames[authority]; ok {
		return name
	}
	return authority
}

func (h *Handler) lastSynced(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	collectionID := chi.URLParam(r, "collectionID")

	stats, err := h.stats.GetLastSynced(r.Context(), collectionID)
	if err != nil {
		log.Err(err).Str("collection_id", collectionID).Msg("error getting last synced stats")
		resp := responseFromError(err)
		utils.WriteError(w, resp.message, resp.status)
		return
	}

	result := make([]models.LastSynced, 0, len(stats))
	for _, s := range stats {
		result = append(result, models.LastSynced{
			AppName:    appName(s.Authority),
			LastSynced: s.LastSync,
		})
	}

	c := collate.New(language.Und)
	sort.SliceStable(result, func(i, j int) bool {
		return c.CompareString(result[i].AppName, result[j].AppName) < 0
	})

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing last synced stats")
	}
}
