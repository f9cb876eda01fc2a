package main

import (
	"time"

	"github.com/aislehq/aisle/pkg/chats/message"
	"github.com/aislehq/aisle/pkg/magic"
)

// inputSubmitMsg carries the text the user submitted from the input box.
type inputSubmitMsg struct {
	text string
}

// replyMsg is returned by the tea.Cmd that sends a cell to the backend.
type replyMsg struct {
	reply    message.Message
	format   magic.Format
	duration time.Duration
	err      error
}

// panelDoneMsg is returned by the tea.Cmd that applies %panel setters. The
// view is the fully rendered panel for the requested tab.
type panelDoneMsg struct {
	view     string
	duration time.Duration
}

// imagePickerEntriesMsg delivers discovered image paths to the picker.
type imagePickerEntriesMsg struct {
	entries []string
}

// initDrainMsg fires after a short delay so that stale terminal responses
// (e.g. OSC 11 background-color replies) are discarded before focusing input.
type initDrainMsg struct{}

// tickMsg drives the processing spinner animation.
type tickMsg time.Time
