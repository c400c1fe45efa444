package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/llm"
	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study progress and coach usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		if err := printDayAccuracy(ctx, repo); err != nil {
			return err
		}
		if err := printRecentSessions(ctx, repo, limit); err != nil {
			return err
		}
		return printCoachUsage(ctx, repo)
	},
}

func printDayAccuracy(ctx context.Context, repo store.EventRepo) error {
	days, err := repo.DayAccuracy(ctx)
	if err != nil {
		return fmt.Errorf("query day accuracy: %w", err)
	}

	fmt.Println("Accuracy by day")
	fmt.Println(strings.Repeat("─", 44))
	if len(days) == 0 {
		fmt.Println("No graded attempts yet.")
		fmt.Println()
		return nil
	}

	fmt.Printf("%-6s  %-10s  %-8s  %s\n", "Day", "Attempts", "Correct", "Accuracy")
	for _, d := range days {
		fmt.Printf("%-6d  %-10d  %-8d  %.0f%%\n", d.Day, d.Attempts, d.Correct, d.Accuracy()*100)
	}
	fmt.Println()
	return nil
}

func printRecentSessions(ctx context.Context, repo store.EventRepo, limit int) error {
	sessions, err := repo.RecentSessions(ctx, limit)
	if err != nil {
		return fmt.Errorf("query sessions: %w", err)
	}

	fmt.Println("Recent sessions")
	fmt.Println(strings.Repeat("─", 64))
	if len(sessions) == 0 {
		fmt.Println("No sessions yet.")
		fmt.Println()
		return nil
	}

	fmt.Printf("%-19s  %-5s  %-10s  %-8s  %s\n", "Ended", "Day", "Questions", "Correct", "Score")
	for _, sess := range sessions {
		fmt.Printf("%-19s  %-5d  %-10d  %-8d  %.0f%%\n",
			sess.EndedAt.Local().Format("2006-01-02 15:04:05"),
			sess.Day,
			sess.QuestionsServed,
			sess.CorrectAnswers,
			sess.Score*100,
		)
	}
	fmt.Println()
	return nil
}

func printCoachUsage(ctx context.Context, repo store.EventRepo) error {
	usage, err := repo.CoachUsage(ctx)
	if err != nil {
		return fmt.Errorf("query coach usage: %w", err)
	}

	fmt.Println("Coach usage")
	fmt.Println(strings.Repeat("─", 72))
	if len(usage) == 0 {
		fmt.Println("No coach calls yet.")
		return nil
	}

	fmt.Printf("%-32s  %6s  %10s  %10s  %9s\n", "Model", "Calls", "In", "Out", "Est. cost")

	var totalCost float64
	var unknownModels []string
	for _, u := range usage {
		costStr := "n/a"
		if mc := llm.LookupCost(u.Model); mc != nil {
			c := mc.Cost(u.InputTokens, u.OutputTokens)
			totalCost += c
			costStr = formatCost(c)
		} else {
			unknownModels = append(unknownModels, u.Model)
		}
		fmt.Printf("%-32s  %6d  %10d  %10d  %9s\n",
			truncate(u.Model, 32), u.Calls, u.InputTokens, u.OutputTokens, costStr)
	}

	fmt.Println(strings.Repeat("─", 72))
	label := "TOTAL"
	if len(unknownModels) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Printf("%-32s  %6s  %10s  %10s  %9s\n", label, "", "", "", formatCost(totalCost))

	if len(unknownModels) > 0 {
		fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of sessions to show")
}
