package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aislehq/aisle/pkg/backend"
)

func TestMarshalWizardConfig(t *testing.T) {
	a := wizardAnswers{
		URL:          "http://localhost:11434",
		APIKey:       "${AISLE_API_KEY}",
		Model:        "llama3",
		Temperature:  "0.7",
		Seed:         "42",
		Reproducible: true,
	}

	data, err := marshalWizardConfig(a)
	require.NoError(t, err)

	var cfg backend.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))

	assert.Equal(t, "http://localhost:11434", cfg.Backend.URL)
	assert.Equal(t, "${AISLE_API_KEY}", cfg.Backend.APIKey)
	assert.Equal(t, "llama3", cfg.Backend.Model)
	require.NotNil(t, cfg.Session.Temperature)
	assert.Equal(t, 0.7, *cfg.Session.Temperature)
	assert.Equal(t, 42, cfg.Session.Seed)
	assert.True(t, cfg.Session.Reproducible)
}

func TestMarshalWizardConfig_BadNumbers(t *testing.T) {
	a := defaultWizardAnswers()
	a.Temperature = "warm"
	_, err := marshalWizardConfig(a)
	require.Error(t, err)

	a = defaultWizardAnswers()
	a.Seed = "many"
	_, err = marshalWizardConfig(a)
	require.Error(t, err)
}

func TestValidateTemperature(t *testing.T) {
	assert.NoError(t, validateTemperature("0.0"))
	assert.NoError(t, validateTemperature("0.4"))
	assert.NoError(t, validateTemperature("1.0"))
	assert.Error(t, validateTemperature("1.5"))
	assert.Error(t, validateTemperature("-0.1"))
	assert.Error(t, validateTemperature("hot"))
}

func TestValidateInt(t *testing.T) {
	assert.NoError(t, validateInt("0"))
	assert.NoError(t, validateInt("-5"))
	assert.Error(t, validateInt("1.5"))
	assert.Error(t, validateInt(""))
}

func TestDefaultWizardAnswers(t *testing.T) {
	a := defaultWizardAnswers()
	assert.Equal(t, backend.DefaultURL, a.URL)
	assert.Equal(t, backend.DefaultModel, a.Model)
	assert.Equal(t, "0.4", a.Temperature)
	assert.Equal(t, "0", a.Seed)
	assert.False(t, a.Reproducible)
}
