package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// cellBlock is one rendered block in the transcript: a submitted cell, a
// reply, a panel, or an error.
type cellBlock struct {
	content string
}

// cellViewModel shows the transcript of submitted cells and their output in
// a scrollable viewport.
type cellViewModel struct {
	viewport      viewport.Model
	blocks        []cellBlock
	processing    bool
	spinnerIdx    int
	processingMsg string
	width         int
	height        int
	ready         bool
}

func newCellView() cellViewModel {
	return cellViewModel{}
}

func (m cellViewModel) Update(msg tea.Msg) (cellViewModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the viewport plus the processing spinner line when a request
// is in flight.
func (m cellViewModel) View() string {
	if !m.ready {
		return ""
	}

	out := m.viewport.View()
	if m.processing {
		frame := spinnerFrames[m.spinnerIdx%len(spinnerFrames)]
		out += fmt.Sprintf("\n  %s %s",
			spinnerStyle.Render(frame),
			spinnerStyle.Render(m.processingMsg),
		)
	}

	return out
}

// addBlock appends a block and scrolls to the bottom.
func (m *cellViewModel) addBlock(content string) {
	m.blocks = append(m.blocks, cellBlock{content: content})
	m.updateViewport()
}

// updateViewport rebuilds the viewport content from the block list.
func (m *cellViewModel) updateViewport() {
	if !m.ready {
		return
	}

	parts := make([]string, len(m.blocks))
	for i, b := range m.blocks {
		parts[i] = b.content
	}

	m.viewport.SetContent(strings.Join(parts, "\n\n"))
	m.viewport.GotoBottom()
}

// setSize resizes the viewport, reserving a line for the spinner while
// processing.
func (m *cellViewModel) setSize(width, height int) {
	m.width = width
	m.height = height

	vpHeight := height
	if m.processing {
		vpHeight--
	}
	vpHeight = max(vpHeight, 1)

	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}

	m.updateViewport()
}

// setProcessing toggles the spinner and picks a fresh message.
func (m *cellViewModel) setProcessing(on bool) {
	m.processing = on
	if on {
		m.processingMsg = randomThinkingMessage()
	}
	if m.ready {
		m.setSize(m.width, m.height)
	}
}

// advanceSpinner moves the spinner one frame forward.
func (m *cellViewModel) advanceSpinner() {
	m.spinnerIdx++
}
