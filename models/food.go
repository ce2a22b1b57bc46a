// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FoodItem is a single catalog entry as served by the food API.
//
// Identity is [FoodItem.ID]; every other field is a replaceable snapshot of
// server state. Items are kept in display order, and the struct is
// JSON-serializable both for the wire and for the local cache.
type FoodItem struct {
	// ID is the stable, server-assigned identifier of the item.
	ID int64 `json:"id"`

	// Name is the display name of the dish.
	Name string `json:"name"`

	// Liked reports whether the current user has liked the item.
	// The wire name is isLiked. Locally the field may run ahead of the
	// server while a like or unlike is still queued.
	Liked bool `json:"isLiked"`

	// PhotoURL points to the item's picture. Image loading is the
	// presentation layer's concern.
	PhotoURL string `json:"photoUrl"`

	// Description is the free-form dish description.
	Description string `json:"description"`

	// CountryCode is the 2-letter country of origin, best-effort valid.
	CountryCode string `json:"countryCode"`

	// LastUpdated is the server-side modification timestamp, kept verbatim
	// as the string the server sent.
	LastUpdated string `json:"lastUpdatedDate"`
}

// FoodPage is one page of the catalog together with the total number of
// items known to the server. Pages hold up to ten items and are 0-indexed.
// Consumed by the sync engine to update the cached collection and its
// pagination counters; never persisted as-is.
type FoodPage struct {
	Foods      []FoodItem `json:"foods"`
	TotalCount int        `json:"totalCount"`
}
