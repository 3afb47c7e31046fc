// Package tui provides a Bubble Tea view for interactive batch extraction.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tagtools/id3json/internal/convert"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4")).
			MarginBottom(1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

const maxLogLines = 12

// Model drives the interactive batch-extract view. Progress events arrive
// on a channel fed by the traversal goroutine; the channel closing means
// the traversal has finished.
type Model struct {
	spinner spinner.Model
	events  <-chan convert.ProgressEvent
	cancel  context.CancelFunc

	logs      []convert.ProgressEvent
	processed int
	failed    int
	done      bool
	cancelled bool
}

// NewModel creates the batch-extract view. cancel aborts the traversal
// when the user quits early.
func NewModel(events <-chan convert.ProgressEvent, cancel context.CancelFunc) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))

	return Model{spinner: sp, events: events, cancel: cancel}
}

type eventMsg struct {
	event convert.ProgressEvent
	ok    bool
}

// Init starts the spinner and the event pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForEvent())
}

func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.events
		return eventMsg{event: event, ok: ok}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			// Cancel the traversal but keep draining events until the
			// channel closes, so the worker goroutine never blocks.
			m.cancel()
			m.cancelled = true
			return m, nil
		}

	case eventMsg:
		if !msg.ok {
			m.done = true
			return m, tea.Quit
		}
		switch msg.event.Level {
		case convert.LevelSuccess:
			m.processed++
		case convert.LevelError:
			m.failed++
		}
		m.logs = append(m.logs, msg.event)
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[len(m.logs)-maxLogLines:]
		}
		return m, m.waitForEvent()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the current state.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("id3json batch extract"))
	b.WriteString("\n")

	for _, e := range m.logs {
		switch e.Level {
		case convert.LevelSuccess:
			b.WriteString(successStyle.Render("  ok  " + e.Message))
		case convert.LevelError:
			b.WriteString(errorStyle.Render("  err " + e.Message))
		case convert.LevelWarning:
			b.WriteString(warningStyle.Render("  !   " + e.Message))
		default:
			b.WriteString(dimStyle.Render("      " + e.Message))
		}
		b.WriteString("\n")
	}

	counts := fmt.Sprintf("%d extracted, %d failed", m.processed, m.failed)
	switch {
	case m.cancelled:
		b.WriteString(warningStyle.Render("cancelling... " + counts))
	case m.done:
		b.WriteString(successStyle.Render("done: " + counts))
	default:
		b.WriteString(m.spinner.View() + dimStyle.Render("scanning... "+counts))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("q/esc/ctrl+c to cancel"))
	b.WriteString("\n")

	return b.String()
}
