package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"

	appI18n "github.com/pavelanni/sharkquiz/internal/i18n"
	"github.com/pavelanni/sharkquiz/internal/model"
	"github.com/pavelanni/sharkquiz/internal/scoring"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"2", []int{2}, false},
		{"0,3", []int{0, 3}, false},
		{" 3, 0 ", []int{3, 0}, false},
		{"-", nil, false},
		{"", nil, false},
		{"1,,2", []int{1, 2}, false},
		{"x", nil, true},
		{"1,b", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAnswer(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAnswer(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("parseAnswer(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestScoreAnswers(t *testing.T) {
	qs := model.SharkQuestions()

	tests := []struct {
		name    string
		raw     []string
		want    int
		wantErr bool
	}{
		{"all correct", []string{"2", "3,0", "0"}, 3, false},
		{"wrong multi", []string{"2", "0,1", "0"}, 2, false},
		{"skip boolean", []string{"2", "0,3", "-"}, 2, false},
		{"missing trailing", []string{"2"}, 1, false},
		{"none given", nil, 0, false},
		{"last press wins", []string{"0,2", "0,3", "1,0"}, 3, false},
		{"out of range", []string{"9", "0,3", "0"}, 2, false},
		{"too many answers", []string{"2", "0,3", "0", "1"}, 0, true},
		{"bad index", []string{"two"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := scoreAnswers(qs, tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("scoreAnswers error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if s.Score != tt.want || s.Total != 3 {
				t.Errorf("score = %d/%d, want %d/3", s.Score, s.Total, tt.want)
			}
			if len(s.Questions) != 3 {
				t.Errorf("expected 3 reviewed questions, got %d", len(s.Questions))
			}
			if s.AttemptID == "" {
				t.Error("expected attempt ID")
			}
		})
	}
}

func TestScoreCommand(t *testing.T) {
	var out bytes.Buffer
	root := rootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"score", "-a", "2", "-a", "3,0", "-a", "0", "--log-level", "error"})
	if err := root.Execute(); err != nil {
		t.Fatalf("score: %v", err)
	}
	if !strings.Contains(out.String(), "Score: 3/3") {
		t.Errorf("expected Score: 3/3 in output:\n%s", out.String())
	}
}

func TestScoreCommandJSON(t *testing.T) {
	var out bytes.Buffer
	root := rootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"score", "-a", "2", "-a", "0,1", "-f", "json", "--log-level", "error"})
	if err := root.Execute(); err != nil {
		t.Fatalf("score: %v", err)
	}

	var s scoring.Summary
	if err := json.Unmarshal(out.Bytes(), &s); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out.String())
	}
	if s.Score != 1 || s.Total != 3 {
		t.Errorf("expected 1/3, got %d/%d", s.Score, s.Total)
	}
}

func TestScoreCommandBadFormat(t *testing.T) {
	root := rootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"score", "-f", "pdf", "--log-level", "error"})
	if err := root.Execute(); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestScoreCommandLanguage(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     string
		want    string
		wantErr bool
	}{
		{name: "russian", args: []string{"-l", "ru"}, want: "Счёт: 3/3"},
		{name: "regional variant", args: []string{"-l", "en-GB"}, want: "Score: 3/3"},
		{name: "unsupported flag", args: []string{"-l", "fr"}, wantErr: true},
		{name: "unsupported env", env: "fr", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("SHARKQUIZ_LANG", tt.env)
			}
			var out bytes.Buffer
			root := rootCmd()
			root.SetOut(&out)
			root.SetErr(&bytes.Buffer{})
			args := append([]string{"score", "-a", "2", "-a", "3,0", "-a", "0", "--log-level", "error"}, tt.args...)
			root.SetArgs(args)

			err := root.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("score %v: error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, appI18n.ErrUnsupportedLanguage) {
					t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
				}
				if out.Len() != 0 {
					t.Errorf("expected no report output, got:\n%s", out.String())
				}
				return
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("expected %q in output:\n%s", tt.want, out.String())
			}
		})
	}
}

func TestScoreAnswersLogsDroppedPicks(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var logs bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	s, err := scoreAnswers(model.SharkQuestions(), []string{"0,2", "0,3", "0"})
	if err != nil {
		t.Fatalf("scoreAnswers: %v", err)
	}
	if s.Score != 3 {
		t.Errorf("expected 3/3, got %d/3", s.Score)
	}
	out := logs.String()
	if !strings.Contains(out, "single-choice answer keeps the last pick") {
		t.Fatalf("expected a log line for the dropped pick:\n%s", out)
	}
	if !strings.Contains(out, "question=1") || !strings.Contains(out, "kept=2") {
		t.Errorf("log line should name the question and the kept pick:\n%s", out)
	}
	if strings.Count(out, "keeps the last pick") != 1 {
		t.Errorf("only question 1 had more than one pick:\n%s", out)
	}
}

func TestQuestionsCommand(t *testing.T) {
	var out bytes.Buffer
	root := rootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"questions", "--with-key", "--log-level", "error"})
	if err := root.Execute(); err != nil {
		t.Fatalf("questions: %v", err)
	}
	if !strings.Contains(out.String(), "* 2) Bull Shark") {
		t.Errorf("expected keyed listing:\n%s", out.String())
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	root := rootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if got := out.String(); got != "sharkquiz dev\n" {
		t.Errorf("version output = %q", got)
	}
}
