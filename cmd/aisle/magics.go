package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aislehq/aisle/pkg/chats/message"
	"github.com/aislehq/aisle/pkg/logs"
	"github.com/aislehq/aisle/pkg/magic"
	"github.com/aislehq/aisle/pkg/panel"
)

// handleAICell runs the %%ai flow: parse flags, optionally clear history,
// attach the cell body and image to the session, then send in the background.
func (m *appModel) handleAICell(cell magic.Cell) (tea.Model, tea.Cmd) {
	cmd := magic.AICommand{Format: magic.FormatMarkdown}

	if cell.Kind == magic.KindAI {
		parsed, err := magic.ParseAI(cell.Args)
		if err != nil {
			m.logStore.Error(err.Error())
			m.cellView.addBlock(renderErrorBlock(err))
			m.recalcLayout()
			return m, nil
		}
		cmd = parsed
	}

	if cmd.Clear {
		m.sess.Clear()
		m.adapter.UsageTracker().Reset()
		m.logStore.Info("Conversation history has been cleared.")
	}

	if err := m.sess.Assemble(cell.Body, cmd.Image); err != nil {
		m.logStore.Error(err.Error())
		m.cellView.addBlock(renderErrorBlock(err))
		m.recalcLayout()
		return m, nil
	}

	m.logStore.Info(fmt.Sprintf("Sending session request to %s.", m.bck.Model()))
	m.startProcessing()

	sess, adapter, opts := m.sess, m.adapter, m.bck.Options()
	ctx, start, format := m.ctx, m.sendStart, cmd.Format
	send := func() tea.Msg {
		reply, err := sess.Launch(ctx, adapter, opts)
		return replyMsg{reply: reply, format: format, duration: time.Since(start), err: err}
	}

	return m, tea.Batch(send, tickCmd())
}

// handlePanelCell runs the %panel flow: parse flags, apply setters in the
// background (a model change calls the backend to validate the name), then
// show the panel.
func (m *appModel) handlePanelCell(cell magic.Cell) (tea.Model, tea.Cmd) {
	parsed, err := magic.ParsePanel(cell.Args)
	if err != nil {
		m.logStore.Error(err.Error())
		m.cellView.addBlock(renderErrorBlock(err))
		m.recalcLayout()
		return m, nil
	}

	if cell.Body != "" {
		m.logStore.Warning("A %panel line magic does not accept a cell body.")
	}

	tab := panel.TabEnvironment
	if parsed.Tab != "" {
		t, err := panel.ParseTab(parsed.Tab)
		if err != nil {
			m.logStore.Error(err.Error())
			m.cellView.addBlock(renderErrorBlock(err))
			m.recalcLayout()
			return m, nil
		}
		tab = t
	}

	m.startProcessing()

	bck, adapter, store := m.bck, m.adapter, m.logStore
	ctx, start, width := m.ctx, m.sendStart, m.width
	apply := func() tea.Msg {
		if parsed.Model != nil {
			msg, err := bck.UpdateModel(ctx, adapter, *parsed.Model)
			logOutcome(store, msg, err)
		}
		if parsed.Seed != nil {
			msg, err := bck.UpdateSeed(*parsed.Seed)
			logOutcome(store, msg, err)
		}
		if parsed.Temperature != nil {
			msg, err := bck.UpdateTemperature(*parsed.Temperature)
			logOutcome(store, msg, err)
		}
		if parsed.Reproducible != nil {
			msg, err := bck.UpdateReproducible(*parsed.Reproducible)
			logOutcome(store, msg, err)
		}

		view := panel.Render(tab, bck, store, width)
		return panelDoneMsg{view: view, duration: time.Since(start)}
	}

	return m, tea.Batch(apply, tickCmd())
}

// logOutcome records a setter result: the success message as info, a failure
// as an error. A failed setter does not stop the remaining ones.
func logOutcome(store *logs.Store, msg string, err error) {
	if err != nil {
		store.Error(err.Error())
		return
	}
	store.Info(msg)
}

// renderReply formats an assistant reply for the transcript: a header with
// the render time and session label, over the body in the requested format,
// behind a left border colored by the current temperature.
func (m *appModel) renderReply(reply message.Message, format magic.Format) string {
	ts := time.Now().UTC().Format(logs.TimestampLayout) + " UTC"
	header := replyHeaderStyle.Render(fmt.Sprintf("Date:[%s] Session:[%s]", ts, m.sess.Label()))

	body := reply.TextContent()
	if format == magic.FormatMarkdown {
		body = renderMarkdown(body)
	}

	border := lipgloss.Color(panel.TemperatureColor(m.bck.Temperature()))

	return replyBlockStyle.BorderForeground(border).Render(header + "\n" + body)
}

func renderErrorBlock(err error) string {
	return errorBlockStyle.Render("error: " + err.Error())
}
