package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tinkerlab/tinkeralpha/internal/activities"
	"github.com/tinkerlab/tinkeralpha/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show star totals and activity progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("recent")

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

		totals, total, err := repo.StarTotals(ctx)
		if err != nil {
			return fmt.Errorf("query star totals: %w", err)
		}
		done, err := repo.CompletedActivities(ctx)
		if err != nil {
			return fmt.Errorf("query completed activities: %w", err)
		}

		fmt.Println("Activity Progress")
		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("%-24s  %-10s  %s\n", "Activity", "Stars", "Badge")
		fmt.Println(strings.Repeat("─", 56))

		for _, a := range activities.All() {
			badge := ""
			if done[a.ID] {
				badge = "🏅 " + a.Badge
			}
			fmt.Printf("%-24s  %3d / %-3d   %s\n",
				a.Title, totals[a.ID], a.Graph.TotalStars(), badge)
		}

		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("%-24s  %3d\n", "TOTAL", total)

		if limit > 0 {
			events, err := repo.QueryStageEvents(ctx, store.QueryOpts{Limit: limit})
			if err != nil {
				return fmt.Errorf("query stage events: %w", err)
			}
			if len(events) > 0 {
				fmt.Println()
				fmt.Println("Recent Stages")
				fmt.Println(strings.Repeat("─", 56))
				for _, e := range events {
					mark := " "
					if e.ActivityComplete {
						mark = "🏅"
					}
					fmt.Printf("%-19s  %-12s  %-10s  ★ %d %s\n",
						e.Timestamp.Local().Format("2006-01-02 15:04:05"),
						e.ActivityID, e.StageName, e.Stars, mark)
				}
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("recent", "n", 10, "Number of recent stage completions to show (0 to hide)")
}
