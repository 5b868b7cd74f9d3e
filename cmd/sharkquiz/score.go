package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pavelanni/sharkquiz/internal/flow"
	"github.com/pavelanni/sharkquiz/internal/model"
	"github.com/pavelanni/sharkquiz/internal/scoring"
)

// parseAnswer turns "2", "0,3", "-" or "" into choice indices.
// Range is not checked: out-of-range picks just score as incorrect.
func parseAnswer(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid choice index %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}

// scoreAnswers feeds raw answers through the question flow, the same way the
// interactive UI does, and reviews the completed sheet.
func scoreAnswers(questions model.QuestionSet, raw []string) (scoring.Summary, error) {
	if len(raw) > questions.Len() {
		return scoring.Summary{}, fmt.Errorf("got %d answers for %d questions", len(raw), questions.Len())
	}

	sheet := model.NewAnswerSheet()
	step, err := flow.Start(questions, sheet)
	if err != nil {
		return scoring.Summary{}, err
	}

	for i := 0; ; i++ {
		var picks []int
		if i < len(raw) {
			picks, err = parseAnswer(raw[i])
			if err != nil {
				return scoring.Summary{}, fmt.Errorf("answer %d: %w", i+1, err)
			}
		}
		if step.Question().Type.Multi() {
			step.SetSelection(picks)
		} else {
			if len(picks) > 1 {
				slog.Debug("single-choice answer keeps the last pick",
					"question", i+1, "picks", picks, "kept", picks[len(picks)-1])
			}
			for _, p := range picks {
				step.Press(p)
			}
		}

		t := step.Advance()
		if t.Screen == flow.ScreenSummary {
			return scoring.ReviewSheet(t.Questions, t.Sheet), nil
		}
		if step, err = t.Next(); err != nil {
			return scoring.Summary{}, err
		}
	}
}
