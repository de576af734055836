// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package avatar derives deterministic placeholder image URLs for records
// registered without an uploaded photo. Same inputs always produce the same
// URL.
package avatar

import (
	"net/url"
	"strings"
)

const (
	userStyle     = "https://api.dicebear.com/7.x/avataaars/svg?seed="
	businessStyle = "https://api.dicebear.com/7.x/shapes/svg?seed="
)

// UserURL seeds the avatar with the concatenated name parts.
func UserURL(firstName, lastName string) string {
	return userStyle + url.QueryEscape(firstName+lastName)
}

// BusinessURL seeds the avatar with the business name, spaces stripped.
func BusinessURL(name string) string {
	return businessStyle + url.QueryEscape(strings.ReplaceAll(name, " ", ""))
}
