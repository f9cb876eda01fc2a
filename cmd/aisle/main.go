package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aislehq/aisle/pkg/aisledir"
	"github.com/aislehq/aisle/pkg/backend"
	"github.com/aislehq/aisle/pkg/logs"
	"github.com/aislehq/aisle/pkg/providers/ollama"
	"github.com/aislehq/aisle/pkg/session"
)

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "init":
			initCmd := flag.NewFlagSet("init", flag.ExitOnError)
			initCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: aisle init [flags]\n\nInitialize a .aisle directory with default structure and config.\n\nFlags:\n")
				initCmd.PrintDefaults()
			}
			dir := initCmd.String("aisle-dir", aisledir.DefaultName, "path to .aisle directory")
			_ = initCmd.Parse(os.Args[2:])

			if err := runInit(*dir); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}

			return
		case "config":
			configCmd := flag.NewFlagSet("config", flag.ExitOnError)
			configCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: aisle config [flags]\n\nEdit an existing config file interactively.\n\nFlags:\n")
				configCmd.PrintDefaults()
			}
			cfgPath := configCmd.String("config", "", "path to configuration file")
			dir := configCmd.String("aisle-dir", aisledir.DefaultName, "path to .aisle directory")
			_ = configCmd.Parse(os.Args[2:])

			if err := runConfigEditor(*cfgPath, *dir); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}

			return
		}
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aisle [flags]\n       aisle <command> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  init    Initialize a .aisle directory with default structure and config\n  config  Edit an existing config file interactively\n")
	}

	configPath := flag.String("config", "", "path to configuration file (default: .aisle/config.yaml or aisle.yaml)")
	aisleDir := flag.String("aisle-dir", aisledir.DefaultName, "path to .aisle directory")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	debug := flag.Bool("debug", false, "write a debug log to .aisle/local/debug.log")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath, *aisleDir, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runInit(dirPath string) error {
	configYAML, err := runWizard()
	if err != nil {
		return err
	}

	d := aisledir.New(dirPath)

	if err := aisledir.BootstrapWithConfig(d, configYAML); err != nil {
		return err
	}

	fmt.Printf("Initialized %s\n", d.Root())

	return nil
}

func run(configPath, aisleDirPath string, debug bool) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Config resolution: explicit flag → .aisle/config.yaml → aisle.yaml.
	// A missing config is fine; the backend defaults cover everything.
	resolved := resolveConfigPath(configPath, aisleDirPath)

	var cfg backend.Config
	if _, err := os.Stat(resolved); err == nil {
		cfg, err = backend.LoadConfig(resolved)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config file: %w", err)
	}

	bck := backend.New()
	cfg.Apply(bck)

	store := logs.New()

	if debug || cfg.Log.File != "" {
		logPath := cfg.Log.File
		if logPath == "" {
			logPath = aisledir.New(aisleDirPath).DebugLogPath()
		}

		logger, err := logs.NewDebugLogger(logPath, debug)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		store.SetMirror(logger)
	}

	adapter := ollama.New(bck.URL(), cfg.Backend.APIKey)
	sess := session.New()

	model := newAppModel(ctx, bck, adapter, sess, store)

	p := tea.NewProgram(model)

	_, err := p.Run()
	return err
}
