package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestTranslateSuccess(t *testing.T) {
	var gotBody translateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(translateResponse{TranslatedText: "cheese"})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	got, err := client.Translate(context.Background(), "fromage", "fr", "en", "du fromage et du pain")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "cheese" {
		t.Errorf("translation = %q, want %q", got, "cheese")
	}
	if gotBody.Query != "fromage" || gotBody.Source != "fr" || gotBody.Target != "en" {
		t.Errorf("request body = %+v", gotBody)
	}
	if gotBody.Context != "du fromage et du pain" {
		t.Errorf("context = %q", gotBody.Context)
	}
}

func TestTranslateRetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(translateResponse{TranslatedText: "bread"})
	}))
	defer server.Close()

	var slept []time.Duration
	client := NewClient(Config{BaseURL: server.URL},
		WithRetryMaxAttempts(3),
		WithRetryBackoff(time.Millisecond, 10*time.Millisecond),
		WithSleeper(func(d time.Duration) { slept = append(slept, d) }),
	)

	got, err := client.Translate(context.Background(), "pain", "fr", "en", "")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "bread" {
		t.Errorf("translation = %q, want %q", got, "bread")
	}
	if calls.Load() != 3 {
		t.Errorf("server saw %d calls, want 3", calls.Load())
	}
	if len(slept) != 2 {
		t.Errorf("slept %d times, want 2", len(slept))
	}
}

func TestTranslateDoesNotRetryClientError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL},
		WithRetryMaxAttempts(3),
		WithSleeper(func(time.Duration) {}),
	)

	if _, err := client.Translate(context.Background(), "mot", "fr", "en", ""); err == nil {
		t.Fatal("expected error for 400 response")
	}
	if calls.Load() != 1 {
		t.Errorf("server saw %d calls, want 1", calls.Load())
	}
}

func TestTranslateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(translateResponse{Error: "unsupported language pair"})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	if _, err := client.Translate(context.Background(), "mot", "fr", "xx", ""); err == nil {
		t.Fatal("expected api error to surface")
	}
}

func TestTranslateValidatesInput(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:0"})
	if _, err := client.Translate(context.Background(), "  ", "fr", "en", ""); err == nil {
		t.Error("expected error for empty word")
	}
	if _, err := client.Translate(context.Background(), "mot", "", "en", ""); err == nil {
		t.Error("expected error for missing source language")
	}
}
