package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"wordtrainer/internal/app"
	"wordtrainer/internal/domain"
)

// DefaultExportPath is used when the export path prompt is left empty
const DefaultExportPath = "words.json"

var tabs = []domain.Tab{domain.TabAdd, domain.TabTrain, domain.TabStats}

type pathMode int

const (
	pathNone pathMode = iota
	pathExport
	pathImport
)

// importResultMsg carries the result of an async import
type importResultMsg struct {
	count int
	err   error
}

// Model is the bubbletea model of the terminal trainer
type Model struct {
	app        *app.App
	statsLimit int
	logger     *zap.Logger

	native  textinput.Model
	foreign textinput.Model
	answer  textinput.Model
	path    textinput.Model
	spinner spinner.Model

	addFocus int
	pathMode pathMode
	loading  bool

	status    string
	statusErr bool

	ranked     []domain.WordPair
	statsTotal int

	width int
}

// New creates the model around a loaded trainer
func New(trainer *app.App, statsLimit int, logger *zap.Logger) Model {
	native := textinput.New()
	native.Placeholder = "native word"
	native.Prompt = "Native:  "

	foreign := textinput.New()
	foreign.Placeholder = "foreign; variant; variant"
	foreign.Prompt = "Foreign: "

	answer := textinput.New()
	answer.Placeholder = "your answer"
	answer.Prompt = "> "

	path := textinput.New()
	path.Prompt = "Path: "

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := Model{
		app:        trainer,
		statsLimit: statsLimit,
		logger:     logger,
		native:     native,
		foreign:    foreign,
		answer:     answer,
		path:       path,
		spinner:    s,
	}
	m.focusInputs()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case importResultMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Warn("Import failed", zap.Error(msg.err))
			m.setError("Import failed: " + msg.err.Error())
		} else {
			m.logger.Info("Words imported", zap.Int("count", msg.count))
			m.setStatus(fmt.Sprintf("Imported %d words", msg.count))
			m.refreshStats()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.loading {
			return m, nil
		}
		if m.app.View().ConfirmingClear {
			return m.handleClearConfirm(msg)
		}
		if m.pathMode != pathNone {
			return m.handlePathKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return m.switchTab(1), textinput.Blink
	case "shift+tab":
		return m.switchTab(len(tabs) - 1), textinput.Blink
	}

	switch m.app.View().Tab {
	case domain.TabAdd:
		return m.handleAddKey(msg)
	case domain.TabTrain:
		return m.handleTrainKey(msg)
	case domain.TabStats:
		if msg.String() == "r" {
			m.refreshStats()
		}
	}
	return m, nil
}

func (m Model) switchTab(step int) Model {
	current := 0
	for i, tab := range tabs {
		if tab == m.app.View().Tab {
			current = i
		}
	}

	next := tabs[(current+step)%len(tabs)]
	m.app.ShowTab(next)
	m.clearStatus()
	m.answer.Reset()
	if next == domain.TabStats {
		m.refreshStats()
	}
	m.focusInputs()
	return m
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+e":
		return m.askPath(pathExport, "empty for "+DefaultExportPath)
	case "ctrl+o":
		return m.askPath(pathImport, "JSON file to import")
	case "ctrl+x":
		if err := m.app.RequestClear(); err != nil {
			m.setError(err.Error())
		}
		return m, nil
	case "up", "down":
		m.addFocus = 1 - m.addFocus
		m.focusInputs()
		return m, textinput.Blink
	case "enter":
		if m.addFocus == 0 {
			m.addFocus = 1
			m.focusInputs()
			return m, textinput.Blink
		}
		return m.submitWord()
	}

	var cmd tea.Cmd
	if m.addFocus == 0 {
		m.native, cmd = m.native.Update(msg)
	} else {
		m.foreign, cmd = m.foreign.Update(msg)
	}
	return m, cmd
}

func (m Model) submitWord() (tea.Model, tea.Cmd) {
	word, err := m.app.AddWord(m.native.Value(), m.foreign.Value())
	if err != nil {
		if !app.IsValidation(err) {
			m.logger.Error("Failed to add word", zap.Error(err))
		}
		m.setError(err.Error())
		return m, nil
	}

	m.logger.Info("Word pair added",
		zap.String("native", word.Native),
		zap.String("foreign", word.Foreign),
	)
	m.native.Reset()
	m.foreign.Reset()
	m.addFocus = 0
	m.focusInputs()
	m.setStatus(fmt.Sprintf("Saved: %s → %s", word.Native, word.Foreign))
	return m, textinput.Blink
}

func (m Model) handleTrainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+n":
		m.app.NextPrompt()
		m.answer.Reset()
		return m, nil
	case "ctrl+d":
		m.app.SetDirection(m.app.View().Direction.Opposite())
		m.answer.Reset()
		return m, nil
	case "enter":
		value := m.answer.Value()
		if strings.TrimSpace(value) == "" {
			if m.app.View().Answered {
				m.app.NextPrompt()
			}
			return m, nil
		}
		outcome, err := m.app.CheckAnswer(value)
		if err != nil {
			if errors.Is(err, domain.ErrImportPending) {
				m.setError(err.Error())
			}
			return m, nil
		}
		if outcome != nil {
			m.answer.Reset()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.answer, cmd = m.answer.Update(msg)
	return m, cmd
}

func (m Model) askPath(mode pathMode, placeholder string) (tea.Model, tea.Cmd) {
	m.pathMode = mode
	m.path.Reset()
	m.path.Placeholder = placeholder
	m.native.Blur()
	m.foreign.Blur()
	m.path.Focus()
	m.clearStatus()
	return m, textinput.Blink
}

func (m Model) handlePathKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pathMode = pathNone
		m.path.Blur()
		m.focusInputs()
		return m, textinput.Blink
	case "enter":
		return m.submitPath()
	}

	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	return m, cmd
}

func (m Model) submitPath() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.path.Value())
	mode := m.pathMode

	m.pathMode = pathNone
	m.path.Reset()
	m.path.Blur()
	m.focusInputs()

	switch mode {
	case pathExport:
		if value == "" {
			value = DefaultExportPath
		}
		if err := m.app.ExportFile(value); err != nil {
			m.logger.Error("Export failed", zap.String("path", value), zap.Error(err))
			m.setError("Export failed: " + err.Error())
			return m, nil
		}
		m.logger.Info("Words exported", zap.String("path", value))
		m.setStatus("Exported to " + value)
		return m, nil

	case pathImport:
		if value == "" {
			m.setError("Enter a file to import")
			return m, nil
		}
		m.loading = true
		m.clearStatus()
		return m, tea.Batch(m.importCmd(value), m.spinner.Tick)
	}

	return m, nil
}

// importCmd reads and applies the import file off the UI goroutine
func (m Model) importCmd(path string) tea.Cmd {
	trainer := m.app
	return func() tea.Msg {
		n, err := trainer.ImportFile(path)
		return importResultMsg{count: n, err: err}
	}
}

func (m Model) handleClearConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.app.ConfirmClear(); err != nil {
			m.logger.Error("Failed to clear words", zap.Error(err))
			m.setError(err.Error())
			return m, nil
		}
		m.logger.Info("All words cleared")
		m.ranked = nil
		m.statsTotal = 0
		m.setStatus("All words deleted")
	case "n", "N", "esc":
		m.app.CancelClear()
		m.clearStatus()
	}
	return m, nil
}

func (m *Model) refreshStats() {
	m.ranked, m.statsTotal = m.app.Stats(m.statsLimit)
}

func (m *Model) focusInputs() {
	m.native.Blur()
	m.foreign.Blur()
	m.answer.Blur()

	switch m.app.View().Tab {
	case domain.TabAdd:
		if m.addFocus == 0 {
			m.native.Focus()
		} else {
			m.foreign.Focus()
		}
	case domain.TabTrain:
		m.answer.Focus()
	}
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusErr = false
}

func (m *Model) setError(text string) {
	m.status = text
	m.statusErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}
