// Command factorquiz prints the question bank and scores answer files offline.
package main

import (
	"fmt"
	"os"

	"factor_quiz_backend/internal/bank"
	"factor_quiz_backend/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	localeFlag string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "factorquiz",
	Short:         "Personality and investment-style quiz scorer",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.InitConsole(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", string(bank.DefaultLocale), "question language (en or ko)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	rootCmd.AddCommand(questionsCmd, scoreCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
