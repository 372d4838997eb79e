package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talk-coach/internal/questions"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the practice question bank",
	RunE:  runQuestions,
}

var (
	questionsRandom bool
	questionsJSON   bool
)

func init() {
	questionsCmd.Flags().BoolVarP(&questionsRandom, "random", "r", false, "Print one random question")
	questionsCmd.Flags().BoolVar(&questionsJSON, "json", false, "Print questions as JSON")
	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	var list []questions.Question
	if questionsRandom {
		q, err := questions.Random(nil)
		if err != nil {
			return fmt.Errorf("failed to pick question: %w", err)
		}
		list = []questions.Question{q}
	} else {
		all, err := questions.All()
		if err != nil {
			return fmt.Errorf("failed to load questions: %w", err)
		}
		list = all
	}

	out := cmd.OutOrStdout()
	if questionsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}
	for i, q := range list {
		if questionsRandom {
			_, _ = fmt.Fprintf(out, "[%s] %s\n", q.ID, q.Text)
			continue
		}
		_, _ = fmt.Fprintf(out, "%2d. [%s] %s\n", i+1, q.ID, q.Text)
	}
	return nil
}
