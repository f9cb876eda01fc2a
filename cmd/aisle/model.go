package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aislehq/aisle/pkg/backend"
	"github.com/aislehq/aisle/pkg/logs"
	"github.com/aislehq/aisle/pkg/magic"
	"github.com/aislehq/aisle/pkg/providers/ollama"
	"github.com/aislehq/aisle/pkg/session"
)

// appState represents the application state machine.
type appState int

const (
	stateIdle appState = iota
	stateProcessing
)

// appModel is the root bubbletea model.
type appModel struct {
	ctx       context.Context
	bck       *backend.Backend
	adapter   *ollama.Adapter
	sess      *session.Session
	logStore  *logs.Store
	cellView  cellViewModel
	inputBox  inputModel
	statusBar statusBarModel
	state     appState
	width     int
	height    int
	sendStart time.Time
}

func newAppModel(ctx context.Context, bck *backend.Backend, adapter *ollama.Adapter, sess *session.Session, store *logs.Store) appModel {
	return appModel{
		ctx:       ctx,
		bck:       bck,
		adapter:   adapter,
		sess:      sess,
		logStore:  store,
		cellView:  newCellView(),
		inputBox:  newInput(),
		statusBar: newStatusBar(bck, adapter),
		state:     stateIdle,
	}
}

func (m appModel) Init() tea.Cmd {
	// Delay focusing the input so that stale terminal escape-sequence
	// responses (e.g. OSC 11 background-color) are drained first.
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return initDrainMsg{}
	})
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case initDrainMsg:
		cmd := m.inputBox.enable()
		return m, cmd

	case inputSubmitMsg:
		return m.handleSubmit(msg)

	case replyMsg:
		return m.handleReply(msg)

	case panelDoneMsg:
		m.statusBar.duration = msg.duration
		m.cellView.addBlock(msg.view)
		return m, m.finishProcessing()

	case tickMsg:
		if m.state == stateProcessing {
			m.cellView.advanceSpinner()
			return m, tickCmd()
		}
		return m, nil
	}

	// Delegate remaining messages to the input box when idle, otherwise to
	// the transcript viewport so scrolling keeps working.
	if m.state == stateIdle {
		var cmd tea.Cmd
		m.inputBox, cmd = m.inputBox.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.cellView, cmd = m.cellView.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.cellView.View(),
		m.inputBox.View(),
		m.statusBar.View(),
	)
}

func (m *appModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	initMarkdownRenderer(m.width - 4)
	m.inputBox.setWidth(m.width)
	m.recalcLayout()

	return m, nil
}

func (m *appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Forward to the input box when idle.
	if m.state == stateIdle {
		var cmd tea.Cmd
		m.inputBox, cmd = m.inputBox.Update(msg)
		m.recalcLayout()
		return m, cmd
	}

	return m, nil
}

func (m *appModel) handleSubmit(msg inputSubmitMsg) (tea.Model, tea.Cmd) {
	text := msg.text

	switch text {
	case "/quit", "/exit":
		return m, tea.Quit
	case "/help":
		m.cellView.addBlock(helpText())
		m.recalcLayout()
		return m, nil
	}

	m.cellView.addBlock(renderUserCell(text))

	cell := magic.Detect(text)
	if cell.Kind == magic.KindPanel {
		return m.handlePanelCell(cell)
	}

	return m.handleAICell(cell)
}

// handleReply finishes an in-flight send: either the rendered reply or an
// error block joins the transcript.
func (m *appModel) handleReply(msg replyMsg) (tea.Model, tea.Cmd) {
	m.statusBar.duration = msg.duration

	if msg.err != nil {
		if m.ctx.Err() == nil {
			m.logStore.Error(msg.err.Error())
			m.cellView.addBlock(renderErrorBlock(msg.err))
		}
		return m, m.finishProcessing()
	}

	m.cellView.addBlock(m.renderReply(msg.reply, msg.format))
	return m, m.finishProcessing()
}

// finishProcessing returns the app to the idle state and refocuses input.
func (m *appModel) finishProcessing() tea.Cmd {
	m.state = stateIdle
	m.cellView.setProcessing(false)
	focusCmd := m.inputBox.enable()
	m.recalcLayout()
	return focusCmd
}

// startProcessing flips the app into the processing state.
func (m *appModel) startProcessing() {
	m.state = stateProcessing
	m.inputBox.disable()
	m.cellView.setProcessing(true)
	m.sendStart = time.Now()
	m.recalcLayout()
}

func (m *appModel) recalcLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// Status bar = 1 line, input box ~ border(2) + content lines.
	statusHeight := 1
	inputHeight := lipgloss.Height(m.inputBox.View())
	cellHeight := max(m.height-inputHeight-statusHeight, 1)
	m.cellView.setSize(m.width, cellHeight)
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func helpText() string {
	return dimStyle.Render(
		"Magics:\n" +
			"  %%ai [flags]   Send the cell body to the model\n" +
			"                 --image <path>  attach a .jpg/.jpeg/.png image\n" +
			"                 --format <markdown|raw>  reply rendering\n" +
			"                 --clear         forget the conversation so far\n" +
			"  %panel [flags] Show the status panel, optionally updating settings\n" +
			"                 --model/--seed/--temperature/--reproducible\n" +
			"                 --tab <environment|control|logs>\n\n" +
			"Commands:\n" +
			"  /help          Show this help message\n" +
			"  /quit          Exit\n\n" +
			"Shortcuts:\n" +
			"  Enter          Submit cell\n" +
			"  Alt+Enter      New line\n" +
			"  @              Pick an image file\n" +
			"  Ctrl+C         Exit",
	)
}
