package model

// SharkQuestions returns the built-in shark trivia set.
//
// Correct answers: (1) bull shark, (2) whale shark and basking shark, (3) true.
func SharkQuestions() QuestionSet {
	return NewQuestionSet(
		Question{
			Prompt: "Which shark has been found in the Mississippi River as far inland as Illinois?",
			Type:   TypeSingleChoice,
			Choices: []string{
				"Tiger Shark",
				"Reef Shark",
				"Bull Shark",
				"Nurse Shark",
			},
			Correct: Single(2),
		},
		Question{
			Prompt: "Which are in the top 5 biggest shark species?",
			Type:   TypeMultiChoice,
			Choices: []string{
				"Whale Shark",
				"Spiny Dogfish",
				"Horn Shark",
				"Basking Shark",
			},
			Correct: Multi(0, 3),
		},
		Question{
			Prompt:  "Blue sharks are actually blue.",
			Type:    TypeBoolean,
			Choices: []string{"True", "False"},
			Correct: Single(0),
		},
	)
}
