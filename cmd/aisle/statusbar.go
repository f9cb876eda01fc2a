package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/aislehq/aisle/pkg/backend"
	"github.com/aislehq/aisle/pkg/modeladapter"
)

// statusBarModel shows the session settings, token usage, and timing.
type statusBarModel struct {
	bck       *backend.Backend
	completer modeladapter.Completer
	duration  time.Duration
}

func newStatusBar(bck *backend.Backend, completer modeladapter.Completer) statusBarModel {
	return statusBarModel{bck: bck, completer: completer}
}

func (m statusBarModel) View() string {
	seed := "seed off"
	if m.bck.Reproducible() {
		seed = fmt.Sprintf("seed %d", m.bck.Seed())
	}

	parts := []string{
		m.bck.Model(),
		fmt.Sprintf("temp %.2f", m.bck.Temperature()),
		seed,
	}

	if ur, ok := m.completer.(modeladapter.UsageReporter); ok {
		total := ur.UsageTracker().Total()
		if total.InputTokens+total.OutputTokens > 0 {
			parts = append(parts, fmt.Sprintf("↑%s ↓%s",
				fmtTokens(total.InputTokens),
				fmtTokens(total.OutputTokens),
			))
		}
	}

	if m.duration > 0 {
		parts = append(parts, fmtDuration(m.duration))
	}

	return statusStyle.Render(" " + strings.Join(parts, " · "))
}
