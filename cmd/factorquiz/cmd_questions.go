package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"factor_quiz_backend/internal/bank"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	questionsLimit  int
	questionsSeed   uint64
	questionsFormat string
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print a working set drawn from the question bank",
	Long: `Prints the questions in presentation order. With --limit 0 the whole bank
is printed; the same --seed always gives the same order. The yaml output can be
filled in and passed to "factorquiz score".`,
	Args: cobra.NoArgs,
	RunE: runQuestions,
}

func init() {
	questionsCmd.Flags().IntVar(&questionsLimit, "limit", 0, "maximum number of questions (0 = all)")
	questionsCmd.Flags().Uint64Var(&questionsSeed, "seed", 1, "shuffle seed")
	questionsCmd.Flags().StringVar(&questionsFormat, "format", "text", "output format: text, yaml or json")
}

func runQuestions(cmd *cobra.Command, args []string) error {
	locale, err := bank.ParseLocale(localeFlag)
	if err != nil {
		return err
	}
	b, err := bank.Load()
	if err != nil {
		return err
	}

	entries := b.Select(questionsLimit, questionsSeed)
	out := cmd.OutOrStdout()

	switch questionsFormat {
	case "text":
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tID\tAXIS\tQUESTION")
		for i, e := range entries {
			q := e.Question(locale)
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, q.ID, q.Axis, q.Text)
		}
		return w.Flush()
	case "yaml":
		doc := answerFile{Locale: string(locale), Questions: bank.IDs(entries), Answers: map[string]int{}}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		qs, err := b.Resolve(bank.IDs(entries), locale)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(qs)
	default:
		return fmt.Errorf("unknown format %q", questionsFormat)
	}
}
