package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mistakeknot/hellofetch/internal/hellofetch/config"
	"github.com/mistakeknot/hellofetch/internal/hellofetch/fetch"
	"github.com/mistakeknot/hellofetch/internal/hellofetch/server"
)

func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	raw := "[api]\nbase_url = \"" + baseURL + "\"\ntimeout = \"2s\"\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRoot()
	cmd.SetArgs(args)
	out := bytes.NewBuffer(nil)
	cmd.SetOut(out)
	cmd.SetErr(bytes.NewBuffer(nil))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRoot()
	if cmd.Use != "hellofetch" {
		t.Fatalf("unexpected root %q", cmd.Use)
	}
	want := map[string]bool{"fetch": false, "serve": false, "config": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("expected %s command", name)
		}
	}
}

func TestFetchCommandPrintsMessage(t *testing.T) {
	srv := httptest.NewServer(server.New("/api/data", server.DefaultFixture(), nil).Handler())
	defer srv.Close()

	out, err := execute(t, "fetch", "--config", writeConfig(t, srv.URL))
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	for _, want := range []string{"Hello World", "Fetch Data", "Hello from API", "Item 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestFetchCommandFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	out, err := execute(t, "fetch", "--config", writeConfig(t, srv.URL))
	if !errors.Is(err, fetch.ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
	if !strings.Contains(out, "Failed to fetch data") {
		t.Fatalf("expected failure text:\n%s", out)
	}
	if strings.Contains(out, "boom") {
		t.Fatalf("raw error leaked:\n%s", out)
	}
}

func TestFetchCommandJSON(t *testing.T) {
	srv := httptest.NewServer(server.New("/api/data", server.DefaultFixture(), nil).Handler())
	defer srv.Close()

	out, err := execute(t, "fetch", "--json", "--config", writeConfig(t, "http://unused.invalid"), "--base-url", srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	var state fetch.State
	if err := json.Unmarshal([]byte(out), &state); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if state.Loading || state.Error != "" || state.Message != "Hello from API" {
		t.Fatalf("unexpected state %+v", state)
	}
}

func TestRootRunsTUI(t *testing.T) {
	orig := runTUI
	called := false
	runTUI = func(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
		called = true
		if cfg.API.BaseURL != "http://example.test" {
			t.Fatalf("expected base-url override, got %q", cfg.API.BaseURL)
		}
		return nil
	}
	defer func() { runTUI = orig }()

	if _, err := execute(t, "--config", writeConfig(t, "http://other.test"), "--base-url", "http://example.test"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("expected tui to run")
	}
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	out, err := execute(t, "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "[api]") {
		t.Fatalf("expected default config:\n%s", out)
	}
}

func TestMissingConfigFails(t *testing.T) {
	if _, err := execute(t, "fetch", "--config", filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected config error")
	}
}
