// Package scoring computes quiz scores and the per-choice marks used to
// render the review of a finished attempt.
package scoring

import "github.com/pavelanni/sharkquiz/internal/model"

// ChoiceMark classifies one choice of a reviewed question.
type ChoiceMark struct {
	// IsCorrectChoice is set on every correct choice, whatever the user picked.
	IsCorrectChoice bool `json:"is_correct_choice" yaml:"is_correct_choice"`
	// UserSelected is set when the user's answer includes the choice.
	UserSelected bool `json:"user_selected" yaml:"user_selected"`
	// IncorrectlySelected is UserSelected && !IsCorrectChoice.
	IncorrectlySelected bool `json:"incorrectly_selected" yaml:"incorrectly_selected"`
}

// IsCorrect reports whether a is the right answer to q.
// Single-selection answers must equal the correct index; an absent
// selection never matches. Multi-selection answers must contain exactly the
// correct indices, in any order.
func IsCorrect(q model.Question, a model.Answer) bool {
	if q.Type.Multi() {
		return sameSet(q.Correct.Choices, a.Choices)
	}
	if q.Correct.Choice == nil || a.Choice == nil {
		return false
	}
	return *a.Choice == *q.Correct.Choice
}

// Score counts the questions answered correctly. answers[i] belongs to
// questions.At(i); a missing answer counts as no selection.
func Score(questions model.QuestionSet, answers []model.Answer) int {
	score := 0
	for i := 0; i < questions.Len(); i++ {
		if IsCorrect(questions.At(i), answerAt(answers, i)) {
			score++
		}
	}
	return score
}

// Classify computes the review marks for one choice of q.
func Classify(q model.Question, a model.Answer, choice int) ChoiceMark {
	correct := q.Correct.Includes(choice)
	selected := a.Includes(choice)
	return ChoiceMark{
		IsCorrectChoice:     correct,
		UserSelected:        selected,
		IncorrectlySelected: selected && !correct,
	}
}

// sameSet reports whether every element of a is in b and every element of b is in a.
func sameSet(a, b []int) bool {
	as := toSet(a)
	bs := toSet(b)
	for k := range as {
		if _, ok := bs[k]; !ok {
			return false
		}
	}
	for k := range bs {
		if _, ok := as[k]; !ok {
			return false
		}
	}
	return true
}

func toSet(xs []int) map[int]struct{} {
	m := make(map[int]struct{}, len(xs))
	for _, x := range xs {
		m[x] = struct{}{}
	}
	return m
}

func answerAt(answers []model.Answer, i int) model.Answer {
	if i < len(answers) {
		return answers[i]
	}
	return model.None()
}
