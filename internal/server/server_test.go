package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/collection/memory"
)

func do(t *testing.T, h http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestHandler_CRUD(t *testing.T) {
	h := New(Config{}, memory.New()).Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/collections/habits", `{"id":"h1","habitName":"Meditate","streakCount":0,"isCompleted":false}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST status = %d, body %s", rec.Code, rec.Body)
	}

	rec = do(t, h, http.MethodPatch, "/api/v1/collections/habits/h1", `{"isCompleted":true,"streakCount":1}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("PATCH status = %d, body %s", rec.Code, rec.Body)
	}
	updated := decodeBody[collection.Document](t, rec)
	if updated["habitName"] != "Meditate" || updated["isCompleted"] != true {
		t.Errorf("PATCH result = %v", updated)
	}

	rec = do(t, h, http.MethodGet, "/api/v1/collections/habits?isCompleted=true&limit=5", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rec.Code)
	}
	res := decodeBody[collection.Result](t, rec)
	if len(res.Items) != 1 || res.Items[0].ID() != "h1" {
		t.Errorf("GET items = %v", res.Items)
	}

	rec = do(t, h, http.MethodDelete, "/api/v1/collections/habits/h1", "", nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("DELETE status = %d", rec.Code)
	}
}

func TestHandler_Errors(t *testing.T) {
	h := New(Config{}, memory.New()).Handler()
	do(t, h, http.MethodPost, "/api/v1/collections/goals", `{"id":"g1","goalTitle":"Run"}`, nil)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"unknown collection", http.MethodGet, "/api/v1/collections/spaceships", "", http.StatusNotFound, CodeUnknownCollection},
		{"missing record", http.MethodDelete, "/api/v1/collections/goals/nope", "", http.StatusNotFound, CodeNotFound},
		{"duplicate id", http.MethodPost, "/api/v1/collections/goals", `{"id":"g1"}`, http.StatusConflict, CodeConflict},
		{"missing id", http.MethodPost, "/api/v1/collections/goals", `{"goalTitle":"x"}`, http.StatusBadRequest, CodeMissingID},
		{"bad body", http.MethodPost, "/api/v1/collections/goals", `{`, http.StatusBadRequest, codeBadRequest},
		{"bad limit", http.MethodGet, "/api/v1/collections/goals?limit=-1", "", http.StatusBadRequest, codeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body, nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body)
			}
			body := decodeBody[ErrorBody](t, rec)
			if body.Code != tt.wantCode || body.Error == "" {
				t.Errorf("error body = %+v, want code %q", body, tt.wantCode)
			}
		})
	}
}

func TestHandler_Token(t *testing.T) {
	h := New(Config{Token: "abc"}, memory.New()).Handler()

	if rec := do(t, h, http.MethodGet, "/healthz", "", nil); rec.Code != http.StatusOK {
		t.Errorf("healthz should not need a token, status = %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/api/v1/collections/habits", "", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("missing token status = %d, want 401", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/api/v1/collections/habits", "", map[string]string{"Authorization": "Bearer wrong"}); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong token status = %d, want 401", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/api/v1/collections/habits", "", map[string]string{"Authorization": "bearer abc"}); rec.Code != http.StatusOK {
		t.Errorf("valid token status = %d, want 200", rec.Code)
	}
}

func TestHandler_RateLimit(t *testing.T) {
	// 2 per minute gives a burst of one request.
	h := New(Config{RatePerMinute: 2}, memory.New()).Handler()

	if rec := do(t, h, http.MethodGet, "/api/v1/collections/habits", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d", rec.Code)
	}
	rec := do(t, h, http.MethodGet, "/api/v1/collections/habits", "", nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", rec.Code)
	}
}

func TestLimiterSet_ExpiresIdleClients(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := newLimiterSet(60)
	l.now = func() time.Time { return now }

	l.allow("10.0.0.1")
	if len(l.clients) != 1 {
		t.Fatalf("clients = %d, want 1", len(l.clients))
	}

	now = now.Add(limiterTTL + time.Second)
	l.allow("10.0.0.2")
	if _, ok := l.clients["10.0.0.1"]; ok {
		t.Error("idle client should have been dropped")
	}
}

func TestServer_RunShutsDown(t *testing.T) {
	s := New(Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second}, memory.New())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
