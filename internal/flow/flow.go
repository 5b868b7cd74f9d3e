// Package flow drives a quiz attempt one question at a time.
package flow

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/pavelanni/sharkquiz/internal/model"
)

// ErrNoQuestion is returned when a step is requested for a position outside the question set.
var ErrNoQuestion = errors.New("no question at index")

// Screen names the destination of a transition.
type Screen string

const (
	ScreenQuestion Screen = "question"
	ScreenSummary  Screen = "summary"
)

// Transition is the handoff to the next screen. For ScreenQuestion, Index is
// the question to show next; for ScreenSummary it equals the question count.
type Transition struct {
	Screen    Screen
	Index     int
	Questions model.QuestionSet
	Sheet     *model.AnswerSheet
}

// Next builds the step for a question transition.
func (t Transition) Next() (*Step, error) {
	if t.Screen != ScreenQuestion {
		return nil, fmt.Errorf("transition to %s has no next question", t.Screen)
	}
	return NewStep(t.Questions, t.Index, t.Sheet)
}

// Step holds the selection state for the question currently shown.
// A new Step is created for every question, so selections never carry over.
type Step struct {
	index     int
	questions model.QuestionSet
	sheet     *model.AnswerSheet

	choice  *int
	choices []int

	done *Transition
}

// Start returns the step for the first question of a new attempt.
func Start(questions model.QuestionSet, sheet *model.AnswerSheet) (*Step, error) {
	return NewStep(questions, 0, sheet)
}

// NewStep returns the step for question index. The sheet is shared, not copied.
func NewStep(questions model.QuestionSet, index int, sheet *model.AnswerSheet) (*Step, error) {
	if index < 0 || index >= questions.Len() {
		return nil, fmt.Errorf("%w %d (have %d)", ErrNoQuestion, index, questions.Len())
	}
	return &Step{
		index:     index,
		questions: questions,
		sheet:     sheet,
		choices:   []int{},
	}, nil
}

// Index returns the zero-based position of the current question.
func (s *Step) Index() int { return s.index }

// Total returns the number of questions in the attempt.
func (s *Step) Total() int { return s.questions.Len() }

// Question returns the current question.
func (s *Step) Question() model.Question { return s.questions.At(s.index) }

// Sheet returns the shared answer sheet.
func (s *Step) Sheet() *model.AnswerSheet { return s.sheet }

// Press makes choice i the single active selection.
func (s *Step) Press(i int) {
	s.choice = &i
}

// SetSelection replaces the multi-selection with the complete set reported by the widget.
func (s *Step) SetSelection(set []int) {
	s.choices = slices.Clone(set)
	if s.choices == nil {
		s.choices = []int{}
	}
}

// Selected returns the answer that Advance would record.
func (s *Step) Selected() model.Answer {
	if s.Question().Type.Multi() {
		return model.Multi(s.choices...)
	}
	if s.choice == nil {
		return model.None()
	}
	return model.Single(*s.choice)
}

// Advance records the current selection on the sheet and returns the next
// transition. Advancing without a selection records an empty answer.
// Calling Advance again returns the same transition without recording twice.
func (s *Step) Advance() Transition {
	if s.done != nil {
		return *s.done
	}

	answer := s.Selected()
	s.sheet.Append(answer)
	slog.Debug("recorded answer",
		"attempt_id", s.sheet.ID,
		"question", s.index,
		"type", s.Question().Type,
		"answer", answer.String(),
	)

	next := s.index + 1
	t := Transition{
		Screen:    ScreenQuestion,
		Index:     next,
		Questions: s.questions,
		Sheet:     s.sheet,
	}
	if next >= s.questions.Len() {
		t.Screen = ScreenSummary
		slog.Info("attempt complete", "attempt_id", s.sheet.ID, "answered", s.sheet.Len())
	}
	s.done = &t
	return t
}
