// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package avatar

import (
	"testing"
)

func TestUserURLDeterministic(t *testing.T) {
	a := UserURL("Jean", "Mugisha")
	b := UserURL("Jean", "Mugisha")
	if a != b {
		t.Errorf("expected identical URLs, got %q and %q", a, b)
	}
	if a != "https://api.dicebear.com/7.x/avataaars/svg?seed=JeanMugisha" {
		t.Errorf("unexpected URL %q", a)
	}
}

func TestBusinessURLStripsSpaces(t *testing.T) {
	got := BusinessURL("Kigali Fresh Market")
	want := "https://api.dicebear.com/7.x/shapes/svg?seed=KigaliFreshMarket"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
