package server

import (
	"fmt"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mistakeknot/hellofetch/internal/hellofetch/fetch"
)

// Fixture is what the demo endpoint serves.
type Fixture struct {
	Message string       `yaml:"message"`
	Items   []fetch.Item `yaml:"items"`
	// Status forces the reply code; anything outside 2xx makes the
	// endpoint fail, which is how the error path is exercised by hand.
	Status int `yaml:"status"`
}

// DefaultFixture is served when no fixture file is configured.
func DefaultFixture() Fixture {
	return Fixture{
		Message: "Hello from API",
		Items: []fetch.Item{
			{ID: 1, Name: "Item 1"},
			{ID: 2, Name: "Item 2"},
			{ID: 3, Name: "Item 3"},
		},
		Status: http.StatusOK,
	}
}

// LoadFixture reads a YAML fixture. An empty path yields DefaultFixture.
func LoadFixture(path string) (Fixture, error) {
	if path == "" {
		return DefaultFixture(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, err
	}
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if f.Status == 0 {
		f.Status = http.StatusOK
	}
	if err := f.validate(); err != nil {
		return Fixture{}, fmt.Errorf("fixture %s: %w", path, err)
	}
	return f, nil
}

func (f Fixture) validate() error {
	if f.Status < 100 || f.Status > 599 {
		return fmt.Errorf("invalid status %d", f.Status)
	}
	seen := make(map[int]bool, len(f.Items))
	for _, it := range f.Items {
		if seen[it.ID] {
			return fmt.Errorf("duplicate item id %d", it.ID)
		}
		seen[it.ID] = true
	}
	return nil
}

func (f Fixture) payload() fetch.Payload {
	return fetch.Payload{Message: f.Message, Items: f.Items}
}
