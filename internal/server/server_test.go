package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"termguard/internal/config"
)

func TestErrorHandlerReturnsJSONEnvelope(t *testing.T) {
	s := New(&config.Config{Env: "development"})

	req, _ := http.NewRequest("GET", "/no-such-route", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}

	var body struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.Status != "error" || body.Error == "" {
		t.Errorf("body = %+v, want error envelope", body)
	}
}

func TestRateLimiter(t *testing.T) {
	s := New(&config.Config{Env: "development"})

	// Exhaust the per-IP budget; even 404s count against it.
	var last int
	for i := 0; i < 61; i++ {
		req, _ := http.NewRequest("GET", "/healthz-miss", nil)
		resp, err := s.App.Test(req)
		if err != nil {
			t.Fatalf("request %d failed: %v", i, err)
		}
		last = resp.StatusCode
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("request 61 status = %d, want %d", last, http.StatusTooManyRequests)
	}
}
