package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aislehq/aisle/pkg/backend"
)

func TestAnswersFromConfig(t *testing.T) {
	temp := 0.9
	cfg := backend.Config{
		Backend: backend.BackendConfig{
			URL:    "http://ollama.internal:11434",
			APIKey: "${KEY}",
			Model:  "phi3",
		},
		Session: backend.SessionConfig{
			Temperature:  &temp,
			Seed:         7,
			Reproducible: true,
		},
	}

	a := answersFromConfig(cfg, defaultWizardAnswers())

	assert.Equal(t, "http://ollama.internal:11434", a.URL)
	assert.Equal(t, "${KEY}", a.APIKey)
	assert.Equal(t, "phi3", a.Model)
	assert.Equal(t, "0.9", a.Temperature)
	assert.Equal(t, "7", a.Seed)
	assert.True(t, a.Reproducible)
}

func TestAnswersFromConfig_KeepsDefaults(t *testing.T) {
	a := answersFromConfig(backend.Config{}, defaultWizardAnswers())

	assert.Equal(t, backend.DefaultURL, a.URL)
	assert.Equal(t, backend.DefaultModel, a.Model)
	assert.Equal(t, "0.4", a.Temperature)
	assert.Equal(t, "0", a.Seed)
	assert.False(t, a.Reproducible)
}
