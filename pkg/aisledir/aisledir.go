// Package aisledir encapsulates all path knowledge for the .aisle/ project
// directory. It provides a Dir value object with accessors for the config
// file and local runtime state paths.
package aisledir

import (
	"os"
	"path/filepath"
)

// DefaultName is the conventional directory name in a project root.
const DefaultName = ".aisle"

// Dir is a value object that resolves paths within an .aisle/ directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is converted to an
// absolute path. No I/O is performed; use EnsureStructure or Bootstrap to
// create the directory layout.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Root returns the absolute path to the .aisle/ directory.
func (d Dir) Root() string { return d.root }

// ConfigPath returns the path to the main config file.
func (d Dir) ConfigPath() string { return filepath.Join(d.root, "config.yaml") }

// LocalDir returns the path to the local (gitignored) runtime state directory.
func (d Dir) LocalDir() string { return filepath.Join(d.root, "local") }

// DebugLogPath returns the path to the debug log file inside local/.
func (d Dir) DebugLogPath() string { return filepath.Join(d.root, "local", "debug.log") }

// GitignorePath returns the path to the .gitignore file inside .aisle/.
func (d Dir) GitignorePath() string { return filepath.Join(d.root, ".gitignore") }

// Exists reports whether the .aisle/ root directory exists on disk.
func (d Dir) Exists() bool {
	info, err := os.Stat(d.root)

	return err == nil && info.IsDir()
}
