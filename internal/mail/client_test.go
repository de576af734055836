// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestEncodeMessage(t *testing.T) {
	raw := encodeMessage("StockWise", "noreply@stockwise.rw", "owner@example.com", "Welcome", "<p>hello</p>")

	if strings.ContainsAny(raw, "=+/") {
		t.Errorf("expected unpadded base64url, got %q", raw)
	}

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		t.Fatalf("failed to decode message: %v", err)
	}

	msg := string(decoded)
	for _, want := range []string{
		"From: StockWise <noreply@stockwise.rw>",
		"To: owner@example.com",
		"Subject: Welcome",
		"Content-Type: text/html; charset=UTF-8",
		"<p>hello</p>",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}
