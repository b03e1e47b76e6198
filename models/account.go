// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is the opaque identity a sync run is performed for.
type Account struct {
	Name string `json:"name"`
}

func (a Account) String() string {
	return a.Name
}
