// Package backend holds the mutable chat parameters a session runs with:
// model name, sampling temperature, seed, and the reproducibility switch.
// Updates are validated and return a human-readable outcome message for the
// session log panel.
package backend

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/aislehq/aisle/pkg/modeladapter"
)

// Defaults applied when a config file does not override them.
const (
	DefaultURL         = "http://localhost:11434"
	DefaultModel       = "llama3"
	DefaultTemperature = 0.4
)

// Backend is the mutable parameter record for one interactive session.
// It is safe for concurrent use: setters run on the send goroutine while the
// UI loop reads the fields for rendering.
type Backend struct {
	mu           sync.Mutex
	url          string
	model        string
	stream       bool
	seed         int
	temperature  float64
	reproducible bool
}

// New creates a Backend with package defaults.
func New() *Backend {
	return &Backend{
		url:         DefaultURL,
		model:       DefaultModel,
		temperature: DefaultTemperature,
	}
}

// URL returns the backend API address.
func (b *Backend) URL() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.url
}

// Model returns the current model name.
func (b *Backend) Model() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.model
}

// Stream returns the streaming output switch.
func (b *Backend) Stream() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.stream
}

// Seed returns the current conversation seed.
func (b *Backend) Seed() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.seed
}

// Temperature returns the current temperature value.
func (b *Backend) Temperature() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.temperature
}

// Reproducible returns the reproducibility switch.
func (b *Backend) Reproducible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.reproducible
}

// SetURL overrides the backend API address. Used when applying a config
// file; runtime updates go through the panel command flags.
func (b *Backend) SetURL(url string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.url = url
}

// Options resolves the per-request sampling parameters. The seed is carried
// only when the reproducibility switch is on.
func (b *Backend) Options() modeladapter.Options {
	b.mu.Lock()
	defer b.mu.Unlock()

	opts := modeladapter.Options{
		Model:       b.model,
		Temperature: b.temperature,
	}

	if b.reproducible {
		seed := b.seed
		opts.Seed = &seed
	}

	return opts
}

// UpdateModel switches to a new model after checking it against the names
// the backend reports. The lister is consulted on every call so newly pulled
// models are picked up.
func (b *Backend) UpdateModel(ctx context.Context, lister modeladapter.ModelLister, name string) (string, error) {
	models, err := lister.ListModels(ctx)
	if err != nil {
		return "", fmt.Errorf("backend: fetch model list: %w", err)
	}

	if !slices.Contains(models, name) {
		return "", fmt.Errorf("backend: model %q is invalid, update failed", name)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.model = name
	return fmt.Sprintf("Changed backend model to %s.", b.model), nil
}

// UpdateSeed sets the conversation seed.
func (b *Backend) UpdateSeed(seed int) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seed = seed
	return fmt.Sprintf("Seed is now set to %d.", b.seed), nil
}

// UpdateTemperature sets the sampling temperature, clamping it into [0.0, 1.0].
func (b *Backend) UpdateTemperature(temperature float64) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.temperature = min(max(temperature, 0.0), 1.0)
	return fmt.Sprintf("Temperature is now set to %v.", b.temperature), nil
}

// UpdateReproducible flips the reproducibility switch.
func (b *Backend) UpdateReproducible(on bool) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.reproducible = on

	state := "disabled"
	if b.reproducible {
		state = "enabled"
	}

	return fmt.Sprintf("Conversation reproducibility has been set to %s.", state), nil
}
