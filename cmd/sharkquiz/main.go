package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appI18n "github.com/pavelanni/sharkquiz/internal/i18n"
	"github.com/pavelanni/sharkquiz/internal/model"
	"github.com/pavelanni/sharkquiz/internal/report"
	"github.com/pavelanni/sharkquiz/internal/ui"
)

var Version = "dev"

//go:generate templ generate -path ../../internal/report

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "sharkquiz",
		Short:        "Shark trivia quiz for the terminal",
		SilenceUsage: true,
	}

	play := playCmd()
	root.AddCommand(play, scoreCmd(), questionsCmd(), versionCmd())

	// Make "play" the default when no subcommand is given.
	root.RunE = play.RunE
	root.Flags().AddFlagSet(play.Flags())

	return root
}

func addLogFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
}

func playCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Take the quiz in the terminal",
		RunE:  runPlay,
	}
	f := cmd.Flags()
	f.StringP("lang", "l", "en", "UI language ("+languageList()+")")
	f.Bool("alt-screen", true, "Use the terminal's alternate screen")
	f.String("print-summary", "", "Print the summary after quitting (text, json, yaml, html)")
	f.String("log-file", "", "Write logs to this file (logs are discarded when empty)")
	addLogFlags(cmd)
	return cmd
}

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score answers given on the command line",
		Long: `Score answers without the interactive UI.

Pass one --answer per question, in order. Each value is a comma-separated
list of choice indices, or "-" for no selection. Missing trailing answers
count as no selection.`,
		Example: `  sharkquiz score -a 2 -a 0,3 -a 0
  sharkquiz score -a 2 -a - -f json`,
		RunE: runScore,
	}
	f := cmd.Flags()
	f.StringArrayP("answer", "a", nil, "Answer for the next question (repeatable)")
	f.StringP("format", "f", "text", "Output format (text, json, yaml, html)")
	f.StringP("lang", "l", "en", "Report language ("+languageList()+")")
	addLogFlags(cmd)
	return cmd
}

func questionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the built-in questions",
		RunE:  runQuestions,
	}
	f := cmd.Flags()
	f.StringP("format", "f", "text", "Output format (text, json, yaml)")
	f.Bool("with-key", false, "Include the correct answers")
	addLogFlags(cmd)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sharkquiz %s\n", Version)
		},
	}
}

func setupLogging(v *viper.Viper, w io.Writer) {
	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(w, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(w, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// viperForCmd binds a command's flags and environment to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("SHARKQUIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("sharkquiz")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/sharkquiz")
	v.AddConfigPath("/etc/sharkquiz")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

func languageList() string {
	var names []string
	for _, tag := range appI18n.Languages() {
		names = append(names, tag.String())
	}
	return strings.Join(names, ", ")
}

// localized initializes translations and returns a context carrying the localizer.
func localized(ctx context.Context, lang string) (context.Context, error) {
	if err := appI18n.Init(lang); err != nil {
		return nil, fmt.Errorf("init i18n: %w", err)
	}
	return appI18n.WithLocalizer(ctx, appI18n.NewLocalizer(lang)), nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	v := viperForCmd(cmd)

	// The UI owns the terminal, so logs only go to a file.
	var logOut io.Writer = io.Discard
	if path := v.GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	setupLogging(v, logOut)

	var printFormat report.Format
	if s := v.GetString("print-summary"); s != "" {
		f, err := report.ParseFormat(s)
		if err != nil {
			return fmt.Errorf("print-summary: %w", err)
		}
		printFormat = f
	}

	ctx, err := localized(cmd.Context(), v.GetString("lang"))
	if err != nil {
		return err
	}

	m, err := ui.NewModel(ctx, model.SharkQuestions(), model.NewAnswerSheet())
	if err != nil {
		return err
	}
	final, err := ui.Run(ctx, m, ui.Options{AltScreen: v.GetBool("alt-screen")})
	if err != nil {
		return err
	}

	if printFormat != "" && final.Finished() {
		if err := report.Write(ctx, cmd.OutOrStdout(), final.Summary(), printFormat); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return nil
}

func runScore(cmd *cobra.Command, _ []string) error {
	v := viperForCmd(cmd)
	setupLogging(v, cmd.ErrOrStderr())

	format, err := report.ParseFormat(v.GetString("format"))
	if err != nil {
		return err
	}
	raw, err := cmd.Flags().GetStringArray("answer")
	if err != nil {
		return err
	}

	ctx, err := localized(cmd.Context(), v.GetString("lang"))
	if err != nil {
		return err
	}

	summary, err := scoreAnswers(model.SharkQuestions(), raw)
	if err != nil {
		return err
	}
	slog.Debug("scored answers", "attempt_id", summary.AttemptID, "score", summary.Score, "total", summary.Total)

	if err := report.Write(ctx, cmd.OutOrStdout(), summary, format); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	v := viperForCmd(cmd)
	setupLogging(v, cmd.ErrOrStderr())

	format, err := report.ParseFormat(v.GetString("format"))
	if err != nil {
		return err
	}
	return report.ListQuestions(cmd.OutOrStdout(), model.SharkQuestions(), format, v.GetBool("with-key"))
}
