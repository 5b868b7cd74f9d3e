package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pavelanni/sharkquiz/internal/flow"
	appI18n "github.com/pavelanni/sharkquiz/internal/i18n"
	"github.com/pavelanni/sharkquiz/internal/report"
	"github.com/pavelanni/sharkquiz/internal/scoring"
)

func (m *Model) View() string {
	if m.screen == flow.ScreenSummary {
		return m.summaryView()
	}
	return m.questionView()
}

func (m *Model) questionView() string {
	q := m.step.Question()

	header := titleStyle.Render(appI18n.T(m.ctx, "AppTitle")) + "  " +
		hintStyle.Render(appI18n.Td(m.ctx, "QuestionProgress", map[string]any{
			"Number": m.step.Index() + 1,
			"Total":  m.step.Total(),
		}))

	prompt := promptStyle.Width(max(m.width-2, 10)).Render(q.Prompt)

	hint := appI18n.T(m.ctx, "SelectOne")
	if q.Type.Multi() {
		hint = appI18n.T(m.ctx, "SelectMany")
	}

	var rows []string
	for i, c := range q.Choices {
		rows = append(rows, m.choiceRow(i, c))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		prompt,
		hintStyle.Render(hint),
		strings.Join(rows, "\n"),
		buttonStyle.Render(appI18n.T(m.ctx, "Next")),
		m.help.View(m.keys),
	)
}

func (m *Model) choiceRow(i int, text string) string {
	multi := m.step.Question().Type.Multi()

	var box string
	selected := false
	if multi {
		selected = m.toggled[i]
		box = "[ ]"
		if selected {
			box = "[x]"
		}
	} else {
		selected = m.pressed == i
		box = "( )"
		if selected {
			box = "(•)"
		}
	}

	pointer := "  "
	if i == m.cursor {
		pointer = cursorStyle.Render("> ")
	}
	row := box + " " + text
	if selected {
		row = activeStyle.Render(row)
	}
	return pointer + row
}

func (m *Model) summaryView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		summaryStyle.Render(appI18n.T(m.ctx, "Summary")),
		scoreStyle.Render(report.ScoreLine(m.ctx, m.summary)),
		m.vp.View(),
		hintStyle.Render(appI18n.Tp(m.ctx, "CorrectCount", m.summary.Score)),
		m.help.View(m.keys),
	)
}

// reviewContent renders every reviewed question for the summary viewport.
func (m *Model) reviewContent() string {
	var blocks []string
	for _, q := range m.summary.Questions {
		blocks = append(blocks, m.reviewBlock(q))
	}
	return strings.Join(blocks, "\n\n")
}

func (m *Model) reviewBlock(q scoring.QuestionReview) string {
	verdict := errStyle.Render(appI18n.T(m.ctx, "Incorrect"))
	if q.Correct {
		verdict = okStyle.Render(appI18n.T(m.ctx, "Correct"))
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Width(max(m.width-2, 10)).Render(q.Prompt) + " " + verdict,
	}
	for _, c := range q.Choices {
		lines = append(lines, reviewRow(c))
	}
	return strings.Join(lines, "\n")
}

// reviewRow shows the correct-answer checkbox on every correct choice, a
// highlight on the user's picks and strikethrough on wrong picks.
func reviewRow(c scoring.ChoiceReview) string {
	box := "[ ]"
	if c.IsCorrectChoice {
		box = "[x]"
	}
	text := c.Text
	switch {
	case c.IncorrectlySelected:
		text = wrongStyle.Render(text)
	case c.UserSelected:
		text = pickedStyle.Render(text)
	}
	return "  " + box + " " + text
}
