package model

import (
	"slices"

	"github.com/google/uuid"
)

// AnswerSheet is the answer list threaded through a quiz attempt.
// It starts empty and grows by one Append per question. Screens share the
// sheet by pointer; it is never copied on handoff.
type AnswerSheet struct {
	ID      string
	answers []Answer
}

// NewAnswerSheet returns an empty sheet with a fresh attempt ID.
func NewAnswerSheet() *AnswerSheet {
	return &AnswerSheet{ID: uuid.NewString()}
}

// Append records the answer for the next question.
func (s *AnswerSheet) Append(a Answer) {
	s.answers = append(s.answers, a.Clone())
}

// Len returns the number of recorded answers.
func (s *AnswerSheet) Len() int {
	return len(s.answers)
}

// At returns the answer at position i, or None if it was never recorded.
func (s *AnswerSheet) At(i int) Answer {
	if i < 0 || i >= len(s.answers) {
		return None()
	}
	return s.answers[i]
}

// All returns a copy of the recorded answers in order.
func (s *AnswerSheet) All() []Answer {
	return slices.Clone(s.answers)
}
