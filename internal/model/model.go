package model

import (
	"fmt"
	"slices"
)

// QuestionType identifies how a question is answered.
type QuestionType string

const (
	// TypeSingleChoice has exactly one correct choice.
	TypeSingleChoice QuestionType = "single-choice"
	// TypeMultiChoice has a set of one or more correct choices.
	TypeMultiChoice QuestionType = "multi-choice"
	// TypeBoolean is a true/false question, answered like a single choice.
	TypeBoolean QuestionType = "boolean"
)

// Multi reports whether answers to this type are sets of choice indices.
func (t QuestionType) Multi() bool {
	return t == TypeMultiChoice
}

// Answer is a selection of choice indices. Single-selection questions use
// Choice (nil means nothing was selected); multi-selection questions use
// Choices. A question's correct key has the same shape as the answers to it.
type Answer struct {
	Choice  *int  `json:"choice,omitempty" yaml:"choice,omitempty"`
	Choices []int `json:"choices,omitempty" yaml:"choices,omitempty"`
}

// Single returns a single-selection answer for choice i.
func Single(i int) Answer {
	return Answer{Choice: &i}
}

// None returns a single-selection answer with nothing selected.
func None() Answer {
	return Answer{}
}

// Multi returns a multi-selection answer. The order of indices is not significant.
func Multi(indices ...int) Answer {
	set := make([]int, len(indices))
	copy(set, indices)
	return Answer{Choices: set}
}

// Includes reports whether choice i is selected.
func (a Answer) Includes(i int) bool {
	if a.Choice != nil {
		return *a.Choice == i
	}
	return slices.Contains(a.Choices, i)
}

// Empty reports whether nothing is selected.
func (a Answer) Empty() bool {
	return a.Choice == nil && len(a.Choices) == 0
}

// Clone returns a deep copy so callers can hand the answer off safely.
func (a Answer) Clone() Answer {
	var out Answer
	if a.Choice != nil {
		c := *a.Choice
		out.Choice = &c
	}
	if a.Choices != nil {
		out.Choices = slices.Clone(a.Choices)
	}
	return out
}

func (a Answer) String() string {
	switch {
	case a.Choice != nil:
		return fmt.Sprintf("%d", *a.Choice)
	case a.Choices != nil:
		return fmt.Sprintf("%v", a.Choices)
	default:
		return "none"
	}
}

// Question is an immutable quiz question.
type Question struct {
	Prompt  string       `json:"prompt" yaml:"prompt"`
	Type    QuestionType `json:"type" yaml:"type"`
	Choices []string     `json:"choices" yaml:"choices"`
	Correct Answer       `json:"correct" yaml:"correct"`
}

// QuestionSet is the ordered, read-only list of questions for a quiz.
// Positions in the set are the index space for answers.
type QuestionSet struct {
	questions []Question
}

// NewQuestionSet copies qs into a new set.
func NewQuestionSet(qs ...Question) QuestionSet {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = Question{
			Prompt:  q.Prompt,
			Type:    q.Type,
			Choices: slices.Clone(q.Choices),
			Correct: q.Correct.Clone(),
		}
	}
	return QuestionSet{questions: out}
}

// Len returns the number of questions.
func (s QuestionSet) Len() int {
	return len(s.questions)
}

// At returns the question at position i.
func (s QuestionSet) At(i int) Question {
	return s.questions[i]
}

// All returns a copy of the questions in order.
func (s QuestionSet) All() []Question {
	return slices.Clone(s.questions)
}
