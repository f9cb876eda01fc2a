package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/aislehq/aisle/pkg/backend"
)

// wizardAnswers collects the raw form values. Numeric fields stay strings
// until marshaling so the form can validate them in place.
type wizardAnswers struct {
	URL          string
	APIKey       string //nolint:gosec // env var reference, not a secret
	Model        string
	Temperature  string
	Seed         string
	Reproducible bool
}

func defaultWizardAnswers() wizardAnswers {
	return wizardAnswers{
		URL:         backend.DefaultURL,
		Model:       backend.DefaultModel,
		Temperature: fmt.Sprintf("%.1f", backend.DefaultTemperature),
		Seed:        "0",
	}
}

// runWizard prompts for the initial configuration and returns it as YAML.
func runWizard() ([]byte, error) {
	a := defaultWizardAnswers()

	if err := answersForm(&a).Run(); err != nil {
		return nil, err
	}

	return marshalWizardConfig(a)
}

func answersForm(a *wizardAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Backend URL").Value(&a.URL),
			huh.NewInput().Title("API key (optional, ${VAR} references allowed)").Value(&a.APIKey),
			huh.NewInput().Title("Model").Value(&a.Model),
		),
		huh.NewGroup(
			huh.NewInput().Title("Temperature [0.0, 1.0]").Value(&a.Temperature).Validate(validateTemperature),
			huh.NewInput().Title("Seed").Value(&a.Seed).Validate(validateInt),
			huh.NewConfirm().Title("Reproducible replies?").Value(&a.Reproducible),
		),
	)
}

func marshalWizardConfig(a wizardAnswers) ([]byte, error) {
	temperature, err := strconv.ParseFloat(a.Temperature, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid temperature %q", a.Temperature)
	}

	seed, err := strconv.Atoi(a.Seed)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q", a.Seed)
	}

	cfg := backend.Config{
		Backend: backend.BackendConfig{
			URL:    a.URL,
			APIKey: a.APIKey,
			Model:  a.Model,
		},
		Session: backend.SessionConfig{
			Temperature:  &temperature,
			Seed:         seed,
			Reproducible: a.Reproducible,
		},
	}

	return yaml.Marshal(cfg)
}

func validateTemperature(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v < 0.0 || v > 1.0 {
		return fmt.Errorf("must be between 0.0 and 1.0")
	}
	return nil
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("must be an integer")
	}
	return nil
}
