package aisledir

import (
	"errors"
	"fmt"
	"os"
)

const gitignoreContent = "local/\n"

const configSkeleton = `# aisle configuration
backend:
  url: http://localhost:11434
  model: llama3

session:
  temperature: 0.4
  seed: 0
  reproducible: false
`

// EnsureStructure creates the local/ directory and .gitignore file if they
// are missing. It is safe to call multiple times (idempotent). It does NOT
// create the .aisle/ root itself; the caller decides whether to bootstrap
// from scratch or only set up an existing directory.
func EnsureStructure(d Dir) error {
	if err := os.MkdirAll(d.LocalDir(), 0o750); err != nil {
		return fmt.Errorf("aisledir: create local dir: %w", err)
	}

	if err := ensureGitignore(d); err != nil {
		return fmt.Errorf("aisledir: gitignore: %w", err)
	}

	return nil
}

// Bootstrap creates a complete .aisle/ directory from scratch: the root,
// local runtime state, .gitignore, and a skeleton config. Existing files are
// never overwritten.
func Bootstrap(d Dir) error {
	if err := os.MkdirAll(d.Root(), 0o750); err != nil {
		return fmt.Errorf("aisledir: create root: %w", err)
	}

	if err := EnsureStructure(d); err != nil {
		return err
	}

	if err := ensureFile(d.ConfigPath(), configSkeleton); err != nil {
		return fmt.Errorf("aisledir: config skeleton: %w", err)
	}

	return nil
}

// BootstrapWithConfig creates a complete .aisle/ directory and writes the
// given config instead of the skeleton. An existing config file is never
// overwritten.
func BootstrapWithConfig(d Dir, configYAML []byte) error {
	if err := os.MkdirAll(d.Root(), 0o750); err != nil {
		return fmt.Errorf("aisledir: create root: %w", err)
	}

	if err := EnsureStructure(d); err != nil {
		return err
	}

	if err := ensureFile(d.ConfigPath(), string(configYAML)); err != nil {
		return fmt.Errorf("aisledir: write config: %w", err)
	}

	return nil
}

// ensureGitignore creates the .gitignore file if it does not exist.
func ensureGitignore(d Dir) error {
	return ensureFile(d.GitignorePath(), gitignoreContent)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // already exists
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return os.WriteFile(path, []byte(content), 0o600)
}
