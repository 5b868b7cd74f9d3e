// Package report renders a scored quiz summary for non-interactive output.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	appI18n "github.com/pavelanni/sharkquiz/internal/i18n"
	"github.com/pavelanni/sharkquiz/internal/model"
	"github.com/pavelanni/sharkquiz/internal/scoring"
)

// Format is an output format for a summary.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatHTML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %v)", s, Formats)
}

// Write renders s to w in the given format. Translated labels are taken from ctx.
func Write(ctx context.Context, w io.Writer, s scoring.Summary, f Format) error {
	switch f {
	case FormatText:
		_, err := io.WriteString(w, Text(ctx, s))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case FormatHTML:
		return SummaryPage(s).Render(ctx, w)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// Text renders the summary as plain text. Correct choices are shown as [x];
// the user's picks are suffixed with "<", wrong picks with "<!".
func Text(ctx context.Context, s scoring.Summary) string {
	var sb strings.Builder
	sb.WriteString(appI18n.T(ctx, "Summary") + "\n")
	sb.WriteString(ScoreLine(ctx, s) + "\n")
	sb.WriteString(appI18n.Tp(ctx, "CorrectCount", s.Score) + "\n")

	for _, q := range s.Questions {
		verdict := appI18n.T(ctx, "Incorrect")
		if q.Correct {
			verdict = appI18n.T(ctx, "Correct")
		}
		fmt.Fprintf(&sb, "\n%d. %s (%s)\n", q.Number, q.Prompt, verdict)
		for _, c := range q.Choices {
			box := "[ ]"
			if c.IsCorrectChoice {
				box = "[x]"
			}
			fmt.Fprintf(&sb, "   %s %s", box, c.Text)
			switch {
			case c.IncorrectlySelected:
				sb.WriteString("  <!")
			case c.UserSelected:
				sb.WriteString("  <")
			}
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "   %s\n", appI18n.Td(ctx, "YourAnswer", map[string]any{"Answer": AnswerText(ctx, q)}))
	}
	return sb.String()
}

// ScoreLine returns the localized "Score: S/N" line.
func ScoreLine(ctx context.Context, s scoring.Summary) string {
	return appI18n.Td(ctx, "ScoreLine", map[string]any{"Score": s.Score, "Total": s.Total})
}

// markClass is the CSS class of a reviewed choice in the HTML page.
func markClass(c scoring.ChoiceReview) string {
	switch {
	case c.IncorrectlySelected:
		return "wrong"
	case c.UserSelected:
		return "picked"
	}
	return ""
}

// AnswerText names the choices the user picked, or the localized "no selection".
func AnswerText(ctx context.Context, q scoring.QuestionReview) string {
	var picked []string
	for _, c := range q.Choices {
		if c.UserSelected {
			picked = append(picked, c.Text)
		}
	}
	if len(picked) == 0 {
		return appI18n.T(ctx, "NoSelection")
	}
	return strings.Join(picked, ", ")
}

// ListQuestions writes the question set in text or JSON. Correct keys are
// omitted unless withKey is set.
func ListQuestions(w io.Writer, qs model.QuestionSet, f Format, withKey bool) error {
	all := qs.All()
	if !withKey {
		for i := range all {
			all[i].Correct = model.Answer{}
		}
	}

	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(all); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		var sb strings.Builder
		for i, q := range all {
			fmt.Fprintf(&sb, "%d. %s [%s]\n", i+1, q.Prompt, q.Type)
			for ci, c := range q.Choices {
				mark := " "
				if withKey && q.Correct.Includes(ci) {
					mark = "*"
				}
				fmt.Fprintf(&sb, "  %s %d) %s\n", mark, ci, c)
			}
		}
		_, err := io.WriteString(w, sb.String())
		return err
	default:
		return fmt.Errorf("format %q not supported for question listing", f)
	}
}
