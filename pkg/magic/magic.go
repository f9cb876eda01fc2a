// Package magic parses the interactive shorthand commands: the %%ai cell
// magic that sends a message to the chat backend, and the %panel line magic
// that updates session parameters and shows the status panel.
package magic

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// Kind classifies a submitted cell.
type Kind int

const (
	// KindText is a cell without a magic directive; it is sent as an %%ai
	// body with default flags.
	KindText Kind = iota
	// KindAI is a cell starting with %%ai.
	KindAI
	// KindPanel is a cell starting with %panel.
	KindPanel
)

// Cell is a submitted input split into its directive line and body.
type Cell struct {
	Kind Kind
	Args string // directive line with the magic token stripped
	Body string // remaining lines of the cell
}

// Detect splits a submitted cell into directive and body. The magic token
// must open the first line; anything else is plain text.
func Detect(input string) Cell {
	trimmed := strings.TrimSpace(input)

	first, rest, _ := strings.Cut(trimmed, "\n")
	first = strings.TrimSpace(first)

	switch {
	case first == "%%ai" || strings.HasPrefix(first, "%%ai "):
		return Cell{Kind: KindAI, Args: strings.TrimPrefix(strings.TrimPrefix(first, "%%ai"), " "), Body: rest}
	case first == "%panel" || strings.HasPrefix(first, "%panel "):
		return Cell{Kind: KindPanel, Args: strings.TrimPrefix(strings.TrimPrefix(first, "%panel"), " "), Body: rest}
	default:
		return Cell{Kind: KindText, Body: trimmed}
	}
}

// Format selects how an AI reply is rendered.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatRaw      Format = "raw"
)

// AICommand holds the parsed %%ai flags.
type AICommand struct {
	Image  string
	Format Format
	Clear  bool
}

// ParseAI parses the flag portion of an %%ai directive line.
func ParseAI(args string) (AICommand, error) {
	tokens, err := shlex.Split(args)
	if err != nil {
		return AICommand{}, fmt.Errorf("magic: split ai arguments: %w", err)
	}

	fs := newFlagSet("ai")

	var (
		image  string
		format string
		clear  bool
	)

	fs.StringVar(&image, "image", "", "path to the input image")
	fs.StringVar(&format, "format", string(FormatMarkdown), "output rendering format: markdown or raw")
	fs.BoolVar(&clear, "clear", false, "forget previous conversation history")
	fs.BoolVar(&clear, "clear-history", false, "forget previous conversation history")

	if err := fs.Parse(tokens); err != nil {
		return AICommand{}, fmt.Errorf("magic: parse ai arguments: %w", err)
	}

	if fs.NArg() > 0 {
		return AICommand{}, fmt.Errorf("magic: unexpected argument %q", fs.Arg(0))
	}

	f := Format(format)
	if f != FormatMarkdown && f != FormatRaw {
		return AICommand{}, fmt.Errorf("magic: invalid format %q (expected markdown or raw)", format)
	}

	return AICommand{Image: image, Format: f, Clear: clear}, nil
}

// PanelCommand holds the parsed %panel flags. Setter fields are pointers so
// an explicit zero value is distinguishable from an absent flag.
type PanelCommand struct {
	Model        *string
	Seed         *int
	Temperature  *float64
	Reproducible *bool
	Tab          string // empty means the default tab
}

// HasUpdates reports whether any setter flag was given.
func (p PanelCommand) HasUpdates() bool {
	return p.Model != nil || p.Seed != nil || p.Temperature != nil || p.Reproducible != nil
}

// ParsePanel parses the flag portion of a %panel directive line.
func ParsePanel(args string) (PanelCommand, error) {
	tokens, err := shlex.Split(args)
	if err != nil {
		return PanelCommand{}, fmt.Errorf("magic: split panel arguments: %w", err)
	}

	fs := newFlagSet("panel")

	var (
		model        string
		seed         int
		temperature  float64
		reproducible string
		tab          string
	)

	fs.StringVar(&model, "model", "", "set the dialogue model")
	fs.StringVar(&model, "set-model", "", "set the dialogue model")
	fs.IntVar(&seed, "seed", 0, "set the seed for reproducibility")
	fs.IntVar(&seed, "set-seed", 0, "set the seed for reproducibility")
	fs.Float64Var(&temperature, "temperature", 0, "set the model temperature in [0.0, 1.0]")
	fs.Float64Var(&temperature, "set-temperature", 0, "set the model temperature in [0.0, 1.0]")
	fs.StringVar(&reproducible, "reproducible", "", "set the reproducibility switch")
	fs.StringVar(&reproducible, "set-reproducible", "", "set the reproducibility switch")
	fs.StringVar(&tab, "tab", "", "panel tab to show: environment, control, or logs")

	if err := fs.Parse(tokens); err != nil {
		return PanelCommand{}, fmt.Errorf("magic: parse panel arguments: %w", err)
	}

	if fs.NArg() > 0 {
		return PanelCommand{}, fmt.Errorf("magic: unexpected argument %q", fs.Arg(0))
	}

	cmd := PanelCommand{Tab: tab}

	// flag.Visit reports only the flags actually present, which is what
	// turns plain values into setter pointers.
	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model", "set-model":
			cmd.Model = &model
		case "seed", "set-seed":
			cmd.Seed = &seed
		case "temperature", "set-temperature":
			cmd.Temperature = &temperature
		case "reproducible", "set-reproducible":
			v, err := strconv.ParseBool(reproducible)
			if err != nil {
				parseErr = fmt.Errorf("magic: reproducible %q type error, must be a boolean", reproducible)
				return
			}
			cmd.Reproducible = &v
		}
	})
	if parseErr != nil {
		return PanelCommand{}, parseErr
	}

	return cmd, nil
}

// newFlagSet builds a quiet FlagSet: errors are returned, not printed, and
// nothing exits the program.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
