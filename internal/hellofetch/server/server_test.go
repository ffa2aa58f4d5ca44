package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mistakeknot/hellofetch/internal/hellofetch/api"
	"github.com/mistakeknot/hellofetch/internal/hellofetch/fetch"
)

func TestDataEndpointRoundTripsThroughClient(t *testing.T) {
	srv := httptest.NewServer(New("/api/data", DefaultFixture(), nil).Handler())
	defer srv.Close()

	payload, err := api.NewClient(srv.URL).Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if payload.Message != "Hello from API" {
		t.Fatalf("unexpected message %q", payload.Message)
	}
	if len(payload.Items) != 3 || payload.Items[0].Name != "Item 1" {
		t.Fatalf("unexpected items %+v", payload.Items)
	}
}

func TestFailingFixtureSurfacesStatusError(t *testing.T) {
	f := DefaultFixture()
	f.Status = http.StatusInternalServerError
	srv := httptest.NewServer(New("/api/data", f, nil).Handler())
	defer srv.Close()

	_, err := api.NewClient(srv.URL).Get(context.Background())
	var statusErr *api.StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 status error, got %v", err)
	}
}

func TestFullCycleAgainstServer(t *testing.T) {
	srv := httptest.NewServer(New("/api/data", DefaultFixture(), nil).Handler())
	defer srv.Close()

	store := fetch.NewMemoryStore()
	o := fetch.NewOrchestrator(store, api.NewClient(srv.URL))
	if err := o.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if s := store.State(); s.Message != "Hello from API" || len(s.Items) != 3 {
		t.Fatalf("unexpected state %+v", s)
	}
}

func TestDataEndpointRejectsPost(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/data", nil)
	New("", DefaultFixture(), nil).Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	New("", DefaultFixture(), nil).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	raw := "message: Hello from file\nitems:\n  - id: 7\n    name: Seven\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.Message != "Hello from file" || f.Status != http.StatusOK {
		t.Fatalf("unexpected fixture %+v", f)
	}
	if len(f.Items) != 1 || f.Items[0] != (fetch.Item{ID: 7, Name: "Seven"}) {
		t.Fatalf("unexpected items %+v", f.Items)
	}
}

func TestLoadFixtureRejectsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	raw := "items:\n  - id: 1\n    name: a\n  - id: 1\n    name: b\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFixture(path); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestListenRejectsPublicAddr(t *testing.T) {
	if err := New("", DefaultFixture(), nil).ListenAndServe("0.0.0.0:0"); err == nil {
		t.Fatalf("expected non-loopback bind to be refused")
	}
}

func TestShutdownStopsServerStartedConcurrently(t *testing.T) {
	srv := New("", DefaultFixture(), nil)
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe("127.0.0.1:0") }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	select {
	case err := <-done:
		if !errors.Is(err, http.ErrServerClosed) {
			t.Fatalf("expected ErrServerClosed, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("server still running after Shutdown")
	}
}

func TestEndpointWithoutLeadingSlash(t *testing.T) {
	s := New("api/data", DefaultFixture(), nil)
	if s.Endpoint() != "/api/data" {
		t.Fatalf("unexpected endpoint %q", s.Endpoint())
	}
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	payload, err := api.NewClient(srv.URL, api.WithEndpoint("api/data")).Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if payload.Message != "Hello from API" {
		t.Fatalf("unexpected message %q", payload.Message)
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	New("", DefaultFixture(), nil).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"not_found"`) {
		t.Fatalf("expected not_found code, got %s", rec.Body.String())
	}
}
