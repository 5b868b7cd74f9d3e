// Package ui hosts the quiz screens in a Bubble Tea program.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pavelanni/sharkquiz/internal/flow"
	"github.com/pavelanni/sharkquiz/internal/model"
	"github.com/pavelanni/sharkquiz/internal/scoring"
)

// Model is the Bubble Tea model for a quiz attempt.
type Model struct {
	ctx       context.Context
	questions model.QuestionSet
	sheet     *model.AnswerSheet

	screen flow.Screen
	step   *flow.Step

	// Widget state for the current question. It is rebuilt for every step.
	cursor  int
	pressed int // -1 when nothing is pressed
	toggled map[int]bool

	summary  scoring.Summary
	finished bool
	vp       viewport.Model

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel starts an attempt over questions. ctx carries the localizer.
func NewModel(ctx context.Context, questions model.QuestionSet, sheet *model.AnswerSheet) (*Model, error) {
	step, err := flow.Start(questions, sheet)
	if err != nil {
		return nil, fmt.Errorf("start quiz: %w", err)
	}
	m := &Model{
		ctx:       ctx,
		questions: questions,
		sheet:     sheet,
		screen:    flow.ScreenQuestion,
		keys:      newKeyMap(ctx),
		help:      help.New(),
		vp:        viewport.New(80, 20),
		width:     80,
		height:    24,
	}
	m.enterStep(step)
	slog.Info("quiz started", "attempt_id", sheet.ID, "questions", questions.Len())
	return m, nil
}

// Finished reports whether the attempt reached the summary.
func (m *Model) Finished() bool { return m.finished }

// Summary returns the scored review; it is only meaningful once Finished is true.
func (m *Model) Summary() scoring.Summary { return m.summary }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == flow.ScreenSummary {
			return m.updateSummary(msg)
		}
		return m.updateQuestion(msg)
	}
	return m, nil
}

func (m *Model) updateQuestion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.step.Question()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(q.Choices)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if q.Type.Multi() {
			m.toggle(m.cursor)
		} else {
			m.pressed = m.cursor
			m.step.Press(m.cursor)
		}
	case key.Matches(msg, m.keys.Next):
		m.advance()
	}
	return m, nil
}

func (m *Model) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// toggle flips choice i and hands the complete new selection to the step,
// the way a multi-select button group reports its state.
func (m *Model) toggle(i int) {
	if m.toggled[i] {
		delete(m.toggled, i)
	} else {
		m.toggled[i] = true
	}
	set := make([]int, 0, len(m.toggled))
	for c := range m.toggled {
		set = append(set, c)
	}
	slices.Sort(set)
	m.step.SetSelection(set)
}

func (m *Model) advance() {
	t := m.step.Advance()
	if t.Screen == flow.ScreenSummary {
		m.showSummary(t)
		return
	}
	step, err := t.Next()
	if err != nil {
		slog.Error("cannot show next question", "index", t.Index, "error", err)
		m.showSummary(t)
		return
	}
	m.enterStep(step)
}

func (m *Model) enterStep(step *flow.Step) {
	m.step = step
	m.cursor = 0
	m.pressed = -1
	m.toggled = map[int]bool{}
	m.keys.multi = step.Question().Type.Multi()
	m.keys.summary = false
}

func (m *Model) showSummary(t flow.Transition) {
	m.screen = flow.ScreenSummary
	m.summary = scoring.ReviewSheet(t.Questions, t.Sheet)
	m.finished = true
	m.keys.summary = true
	m.vp.SetContent(m.reviewContent())
	m.vp.GotoTop()
	slog.Info("quiz finished", "attempt_id", t.Sheet.ID, "score", m.summary.Score, "total", m.summary.Total)
}

func (m *Model) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	m.width = w
	m.height = h
	m.help.Width = w
	m.vp.Width = w
	// Title, score line, their padding, the correct count and the help line stay outside the viewport.
	m.vp.Height = max(h-7, 1)
	if m.screen == flow.ScreenSummary {
		m.vp.SetContent(m.reviewContent())
	}
}
