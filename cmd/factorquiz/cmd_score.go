package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"factor_quiz_backend/internal/bank"
	"factor_quiz_backend/internal/report"
	"factor_quiz_backend/internal/scoring"
	"factor_quiz_backend/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// answerFile is the offline input: a working set and its answers.
type answerFile struct {
	Locale    string         `yaml:"locale"`
	Questions []string       `yaml:"questions"`
	Answers   map[string]int `yaml:"answers"`
}

var (
	reportPath string
	noBlend    bool
)

var scoreCmd = &cobra.Command{
	Use:   "score <answers.yaml>",
	Short: "Score an answers file and optionally write the CSV report",
	Long: `Reads a YAML document with "questions" (the working set, in order) and
"answers" (question id to a value from 1 to 5). When "questions" is empty the
whole bank is used. Use --report to write the CSV export; "-" writes it to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&reportPath, "report", "o", "", "write the CSV report to this path")
	scoreCmd.Flags().BoolVar(&noBlend, "no-blend", false, "show base scores instead of MBTI-blended ones")
}

func loadAnswerFile(path string) (*answerFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc answerFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &doc, nil
}

func runScore(cmd *cobra.Command, args []string) error {
	doc, err := loadAnswerFile(args[0])
	if err != nil {
		return err
	}

	raw := doc.Locale
	if cmd.Flags().Changed("locale") || raw == "" {
		raw = localeFlag
	}
	locale, err := bank.ParseLocale(raw)
	if err != nil {
		return err
	}

	b, err := bank.Load()
	if err != nil {
		return err
	}

	var questions []scoring.Question
	if len(doc.Questions) == 0 {
		questions = b.Questions(locale)
	} else if questions, err = b.Resolve(doc.Questions, locale); err != nil {
		return err
	}

	answers := scoring.Answers(doc.Answers)
	if err := scoring.Validate(questions, answers); err != nil {
		return err
	}

	res := scoring.Evaluate(questions, answers)
	logger.Log.Debug("Scored answers file",
		zap.String("file", args[0]),
		zap.Int("answered", res.Answered),
		zap.Int("total", res.Total),
	)

	if err := printResult(cmd, res, !noBlend); err != nil {
		return err
	}

	if reportPath == "" {
		return nil
	}
	r := report.Build(questions, answers, res, locale)
	if reportPath == "-" {
		return report.Write(cmd.OutOrStdout(), r)
	}
	if info, err := os.Stat(reportPath); err == nil && info.IsDir() {
		reportPath = filepath.Join(reportPath, report.Filename(res.Type.Code, time.Now()))
	}
	if err := os.WriteFile(reportPath, report.Bytes(r), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "report written to %s\n", reportPath)
	return nil
}

func printResult(cmd *cobra.Command, res scoring.Result, blend bool) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Type: %s (%d/%d answered)\n", res.Type.Code, res.Answered, res.Total)
	for _, s := range res.Type.Strengths {
		fmt.Fprintf(out, "  %s  %s  %+.0f  %s\n", s.Axis, s.Pole, s.Margin, s.Label)
	}
	fmt.Fprintln(out)

	label := "BASE"
	if blend {
		label = "BLENDED"
	}
	scores := res.Scores(blend)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "FACTOR\tMIX %%\t%s\t\n", label)
	for _, f := range scoring.Factors {
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t\n", f.Name, res.Mix[f.Key], scores[f.Key])
	}
	return w.Flush()
}
