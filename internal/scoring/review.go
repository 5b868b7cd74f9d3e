package scoring

import "github.com/pavelanni/sharkquiz/internal/model"

// ChoiceReview is one rendered row of a reviewed question.
type ChoiceReview struct {
	Index      int    `json:"index" yaml:"index"`
	Text       string `json:"text" yaml:"text"`
	ChoiceMark `yaml:",inline"`
}

// QuestionReview holds the review of a single question.
type QuestionReview struct {
	Number  int                `json:"number" yaml:"number"`
	Prompt  string             `json:"prompt" yaml:"prompt"`
	Type    model.QuestionType `json:"type" yaml:"type"`
	Answer  model.Answer       `json:"answer" yaml:"answer"`
	Correct bool               `json:"correct" yaml:"correct"`
	Choices []ChoiceReview     `json:"choices" yaml:"choices"`
}

// Summary is the scored review of a finished attempt.
type Summary struct {
	AttemptID string           `json:"attempt_id,omitempty" yaml:"attempt_id,omitempty"`
	Score     int              `json:"score" yaml:"score"`
	Total     int              `json:"total" yaml:"total"`
	Questions []QuestionReview `json:"questions" yaml:"questions"`
}

// Review scores every question and classifies every choice.
func Review(questions model.QuestionSet, answers []model.Answer) Summary {
	s := Summary{
		Total:     questions.Len(),
		Questions: make([]QuestionReview, 0, questions.Len()),
	}
	for i := 0; i < questions.Len(); i++ {
		q := questions.At(i)
		a := answerAt(answers, i)
		qr := QuestionReview{
			Number:  i + 1,
			Prompt:  q.Prompt,
			Type:    q.Type,
			Answer:  a,
			Correct: IsCorrect(q, a),
			Choices: make([]ChoiceReview, len(q.Choices)),
		}
		for ci, text := range q.Choices {
			qr.Choices[ci] = ChoiceReview{
				Index:      ci,
				Text:       text,
				ChoiceMark: Classify(q, a, ci),
			}
		}
		if qr.Correct {
			s.Score++
		}
		s.Questions = append(s.Questions, qr)
	}
	return s
}

// ReviewSheet reviews the answers recorded on sheet and tags the summary with its attempt ID.
func ReviewSheet(questions model.QuestionSet, sheet *model.AnswerSheet) Summary {
	s := Review(questions, sheet.All())
	s.AttemptID = sheet.ID
	return s
}
