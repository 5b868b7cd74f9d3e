package flow_test

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/pavelanni/sharkquiz/internal/flow"
	"github.com/pavelanni/sharkquiz/internal/model"
	"github.com/pavelanni/sharkquiz/internal/scoring"
)

func TestQuizFeatures(t *testing.T) {
	options := godog.Options{
		Format:    "progress",
		Paths:     []string{filepath.Join("testdata", "features")},
		Output:    io.Discard,
		TestingT:  t,
		Randomize: 0,
	}

	suite := godog.TestSuite{
		Name:                "shark-quiz",
		ScenarioInitializer: initializeScenario,
		Options:             &options,
	}

	if suite.Run() != 0 {
		t.Fatalf("quiz features failed")
	}
}

type quizState struct {
	questions model.QuestionSet
	step      *flow.Step
	last      flow.Transition
	sheet     *model.AnswerSheet
}

func initializeScenario(ctx *godog.ScenarioContext) {
	state := &quizState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*state = quizState{}
		return ctx, nil
	})

	ctx.Step(`^the shark quiz$`, state.theSharkQuiz)
	ctx.Step(`^I press choice (\d+) and advance$`, state.iPressChoiceAndAdvance)
	ctx.Step(`^I select choices "([^"]*)" and advance$`, state.iSelectChoicesAndAdvance)
	ctx.Step(`^I advance without selecting$`, state.iAdvanceWithoutSelecting)
	ctx.Step(`^question (\d+) is (correct|incorrect)$`, state.questionIs)
	ctx.Step(`^choice (\d+) of question (\d+) is marked (not correct|correct), (not selected|selected), (not wrong|wrong)$`, state.choiceIsMarked)
	ctx.Step(`^the quiz shows the summary$`, state.theQuizShowsTheSummary)
	ctx.Step(`^answer (\d+) is recorded as no selection$`, state.answerIsRecordedAsNoSelection)
	ctx.Step(`^the score is (\d+)/(\d+)$`, state.theScoreIs)
}

func (s *quizState) theSharkQuiz() error {
	s.questions = model.SharkQuestions()
	s.sheet = model.NewAnswerSheet()
	step, err := flow.Start(s.questions, s.sheet)
	if err != nil {
		return err
	}
	s.step = step
	return nil
}

func (s *quizState) advance() error {
	s.last = s.step.Advance()
	if s.last.Screen == flow.ScreenSummary {
		s.step = nil
		return nil
	}
	step, err := s.last.Next()
	if err != nil {
		return err
	}
	s.step = step
	return nil
}

func (s *quizState) iPressChoiceAndAdvance(choice int) error {
	if s.step == nil {
		return fmt.Errorf("quiz already finished")
	}
	s.step.Press(choice)
	return s.advance()
}

func (s *quizState) iSelectChoicesAndAdvance(list string) error {
	if s.step == nil {
		return fmt.Errorf("quiz already finished")
	}
	var set []int
	for _, part := range strings.Split(list, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("parse choice %q: %w", part, err)
		}
		set = append(set, n)
	}
	s.step.SetSelection(set)
	return s.advance()
}

func (s *quizState) iAdvanceWithoutSelecting() error {
	if s.step == nil {
		return fmt.Errorf("quiz already finished")
	}
	return s.advance()
}

func (s *quizState) questionIs(number int, verdict string) error {
	q := s.questions.At(number - 1)
	got := scoring.IsCorrect(q, s.sheet.At(number-1))
	if got != (verdict == "correct") {
		return fmt.Errorf("question %d: expected %s, IsCorrect = %v", number, verdict, got)
	}
	return nil
}

func (s *quizState) choiceIsMarked(choice, number int, correct, selected, wrong string) error {
	q := s.questions.At(number - 1)
	got := scoring.Classify(q, s.sheet.At(number-1), choice)
	want := scoring.ChoiceMark{
		IsCorrectChoice:     correct == "correct",
		UserSelected:        selected == "selected",
		IncorrectlySelected: wrong == "wrong",
	}
	if got != want {
		return fmt.Errorf("choice %d of question %d: got %+v, want %+v", choice, number, got, want)
	}
	return nil
}

func (s *quizState) theQuizShowsTheSummary() error {
	if s.last.Screen != flow.ScreenSummary {
		return fmt.Errorf("expected summary, last transition was to %s %d", s.last.Screen, s.last.Index)
	}
	return nil
}

func (s *quizState) answerIsRecordedAsNoSelection(number int) error {
	if s.sheet.Len() < number {
		return fmt.Errorf("only %d answers recorded", s.sheet.Len())
	}
	if a := s.sheet.At(number - 1); !a.Empty() {
		return fmt.Errorf("answer %d = %v, want no selection", number, a)
	}
	return nil
}

func (s *quizState) theScoreIs(score, total int) error {
	sum := scoring.ReviewSheet(s.questions, s.sheet)
	if sum.Score != score || sum.Total != total {
		return fmt.Errorf("score %d/%d, want %d/%d", sum.Score, sum.Total, score, total)
	}
	return nil
}
