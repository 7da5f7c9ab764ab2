package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/intervu/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Review past interview sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sessions, err := s.ResultRepo().ListSessions(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No interviews recorded yet.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-10s  %9s  %5s\n",
			"Session", "Timestamp", "Mode", "Questions", "Avg")
		fmt.Println(strings.Repeat("─", 88))
		for _, sess := range sessions {
			fmt.Printf("%-36s  %-19s  %-10s  %9d  %5.1f\n",
				sess.SessionID,
				sess.Timestamp.Local().Format("2006-01-02 15:04:05"),
				sess.Mode,
				sess.Questions,
				sess.AvgScore,
			)
		}
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <session-id>",
	Short: "Show every question, answer and score of one session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		rows, err := s.ResultRepo().SessionResults(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("session results: %w", err)
		}
		if len(rows) == 0 {
			return fmt.Errorf("session %s not found", args[0])
		}

		sep := strings.Repeat("─", 60)
		currentRound := ""
		for _, row := range rows {
			if row.RoundName != currentRound {
				currentRound = row.RoundName
				fmt.Printf("\n%s\n%s (%s)\n%s\n", sep, currentRound, row.Mode, sep)
			}
			fmt.Printf("Q: %s\n", row.Question)
			fmt.Printf("A: %s\n", row.Answer)
			fmt.Printf("Score: %d/10\n", row.Score)
			if row.Feedback != "" {
				fmt.Printf("Feedback: %s\n", row.Feedback)
			}
			if row.SuggestedAnswer != "" {
				fmt.Printf("Suggested: %s\n", row.SuggestedAnswer)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
	historyCmd.AddCommand(historyViewCmd)
}
