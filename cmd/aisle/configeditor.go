package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/aislehq/aisle/pkg/backend"
)

// runConfigEditor loads an existing config (without expanding ${VAR}
// references so they survive the round trip), runs the same form as the init
// wizard pre-filled, and writes the result back.
func runConfigEditor(cfgPath, dirPath string) error {
	resolved := resolveConfigPath(cfgPath, dirPath)

	a := defaultWizardAnswers()

	if _, err := os.Stat(resolved); err == nil {
		cfg, loadErr := backend.LoadConfigRaw(resolved)
		if loadErr != nil {
			return fmt.Errorf("loading existing config: %w", loadErr)
		}
		a = answersFromConfig(cfg, a)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config file: %w", err)
	}

	if err := answersForm(&a).Run(); err != nil {
		return err
	}

	data, err := marshalWizardConfig(a)
	if err != nil {
		return err
	}

	if err := os.WriteFile(resolved, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Wrote %s\n", resolved)

	return nil
}

// answersFromConfig pre-fills the form values from a loaded config, keeping
// the given defaults for anything the file leaves unset.
func answersFromConfig(cfg backend.Config, a wizardAnswers) wizardAnswers {
	if cfg.Backend.URL != "" {
		a.URL = cfg.Backend.URL
	}
	if cfg.Backend.APIKey != "" {
		a.APIKey = cfg.Backend.APIKey
	}
	if cfg.Backend.Model != "" {
		a.Model = cfg.Backend.Model
	}
	if cfg.Session.Temperature != nil {
		a.Temperature = strconv.FormatFloat(*cfg.Session.Temperature, 'f', -1, 64)
	}
	a.Seed = strconv.Itoa(cfg.Session.Seed)
	a.Reproducible = cfg.Session.Reproducible

	return a
}
