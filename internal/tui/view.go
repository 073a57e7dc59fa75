package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wordtrainer/internal/app"
	"wordtrainer/internal/domain"
)

var tabTitles = map[domain.Tab]string{
	domain.TabAdd:   "Add",
	domain.TabTrain: "Train",
	domain.TabStats: "Stats",
}

func (m Model) View() string {
	view := m.app.View()

	var s strings.Builder
	s.WriteString(titleStyle.Render("Word Trainer") + "\n")
	s.WriteString(m.renderTabBar(view) + "\n")

	var body string
	switch {
	case view.ConfirmingClear:
		body = m.renderConfirmClear(view)
	case m.pathMode != pathNone:
		body = m.renderPath()
	case m.loading:
		body = fmt.Sprintf("%s Importing...", m.spinner.View())
	default:
		switch view.Tab {
		case domain.TabTrain:
			body = m.renderTrain(view)
		case domain.TabStats:
			body = m.renderStats()
		default:
			body = m.renderAdd()
		}
	}
	s.WriteString(bodyStyle.Render(body) + "\n")

	if m.status != "" {
		if m.statusErr {
			s.WriteString(errorStyle.Render(m.status) + "\n")
		} else {
			s.WriteString(successStyle.Render(m.status) + "\n")
		}
	}
	s.WriteString(helpStyle.Render(m.helpText(view)))
	return s.String()
}

func (m Model) renderTabBar(view domain.ViewModel) string {
	rendered := make([]string, 0, len(tabs)+1)
	for _, tab := range tabs {
		style := tabStyle
		if tab == view.Tab {
			style = activeTabStyle
		}
		rendered = append(rendered, style.Render(tabTitles[tab]))
	}
	rendered = append(rendered, pillStyle.Render(sessionPill(view)))
	return tabBarStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

// sessionPill renders asked / total words with ok and fail counts
func sessionPill(view domain.ViewModel) string {
	return fmt.Sprintf("%d / %d  ok %d  fail %d",
		view.Session.AskedCount, view.TotalWords, view.Session.CorrectCount, view.Session.IncorrectCount)
}

func (m Model) renderAdd() string {
	return m.native.View() + "\n" + m.foreign.View() + "\n\n" +
		labelStyle.Render("Separate answer variants with ;")
}

func (m Model) renderTrain(view domain.ViewModel) string {
	var s strings.Builder
	s.WriteString(labelStyle.Render(view.Direction.Label()) + "\n\n")

	if view.Prompt == nil {
		s.WriteString(infoStyle.Render(app.NoWordsText))
		return s.String()
	}

	s.WriteString(promptStyle.Render(view.Prompt.Text) + "\n\n")
	s.WriteString(m.answer.View())

	if text := renderFeedback(view.Feedback); text != "" {
		s.WriteString("\n\n" + text)
	}
	return s.String()
}

func renderFeedback(f domain.Feedback) string {
	switch f.Kind {
	case domain.FeedbackOK:
		return successStyle.Render(f.Text)
	case domain.FeedbackBad:
		return errorStyle.Render(f.Text)
	case domain.FeedbackInfo:
		return infoStyle.Render(f.Text)
	}
	return ""
}

func (m Model) renderStats() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("Words: %d\n\n", m.statsTotal))
	if m.statsTotal == 0 {
		s.WriteString(labelStyle.Render("—"))
		return s.String()
	}

	s.WriteString("Hardest words:\n")
	for i, w := range m.ranked {
		s.WriteString(fmt.Sprintf("%2d. %s → %s  %s\n",
			i+1, w.Native, w.Foreign, errorStyle.Render(fmt.Sprintf("fail: %d", w.IncorrectCount))))
	}
	return strings.TrimRight(s.String(), "\n")
}

func (m Model) renderPath() string {
	title := "Export words to"
	if m.pathMode == pathImport {
		title = "Import words from (replaces all current words)"
	}
	return title + "\n\n" + m.path.View()
}

func (m Model) renderConfirmClear(view domain.ViewModel) string {
	return errorStyle.Render(fmt.Sprintf("Delete all %d words? This cannot be undone.", view.TotalWords)) +
		"\n\n" + "y: delete • n: keep"
}

func (m Model) helpText(view domain.ViewModel) string {
	switch {
	case view.ConfirmingClear:
		return "y/n • ctrl+c: quit"
	case m.pathMode != pathNone:
		return "enter: confirm • esc: back • ctrl+c: quit"
	}

	switch view.Tab {
	case domain.TabTrain:
		return "enter: check / next • ctrl+n: next • ctrl+d: direction • tab: switch • ctrl+c: quit"
	case domain.TabStats:
		return "r: refresh • tab: switch • ctrl+c: quit"
	}
	return "enter: next field / save • ctrl+e: export • ctrl+o: import • ctrl+x: clear all • tab: switch • ctrl+c: quit"
}
