// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package testhelper contains helpers shared by the package tests.
package testhelper

import (
	"net/http"
	"os"
	"testing"
)

// TestOnlineAPIURL is a public endpoint used by tests that need real network access.
const TestOnlineAPIURL = "https://marine-api.open-meteo.com/v1/marine?latitude=40.5897&longitude=-72.8675&hourly=wave_height"

// MockRoundTripper lets tests stub out HTTP responses.
type MockRoundTripper struct {
	Fn func(*http.Request) (*http.Response, error)
}

func (m MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.Fn(req)
}

// PerformIntegrationTests skips the calling test unless online tests were requested.
func PerformIntegrationTests(t *testing.T) {
	t.Helper()
	if os.Getenv("PERFORM_ONLINE_TESTS") != "true" {
		t.Skip("skipping online test, set PERFORM_ONLINE_TESTS=true to run it")
	}
}
