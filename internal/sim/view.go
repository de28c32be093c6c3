package sim

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const helpText = "←/→ press the device buttons, space or enter releases both, " +
	"r returns to the menu, q quits. Paging past the last screen accepts; " +
	"both buttons reject."

func (m *Model) View() string {
	accent := lipgloss.Color(m.cfg.UI.Accent)
	deviceStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)
	screen := deviceStyle.Render(strings.Join(m.display.Lines(m.cfg.UI.RowWidth), "\n"))

	parts := []string{
		titleStyle.Render("promptpager device simulator"),
		screen,
		statusStyle.Render(m.statusLine()),
	}
	if len(m.traceLog) > 0 {
		parts = append(parts, traceBoxStyle.Render(m.trace.View()))
	}
	width := m.width
	if width <= 0 {
		width = 72
	}
	parts = append(parts, helperStyle.Render(wordwrap.String(helpText, min(width-2, 70))))
	return strings.Join(parts, "\n\n")
}

func (m *Model) statusLine() string {
	switch m.stage {
	case stageMenu:
		return "menu: ←/→ cycles, space selects"
	case stageScroll:
		return fmt.Sprintf("scrolling %q, page %d of %d",
			m.cfg.Prompt.Title, m.sess.Page()+1, m.sess.PageCount())
	case stageConfirm:
		return "final confirmation: navigate to Confirm or Reject, then space"
	default:
		if m.runErr != nil {
			return fmt.Sprintf("outcome: %s (render error: %v)", m.outcome, m.runErr)
		}
		return fmt.Sprintf("outcome: %s (press r for the menu)", m.outcome)
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helperStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	traceBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#56526e")).
			Padding(0, 1)
)
