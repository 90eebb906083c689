package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tinkerlab/tinkeralpha/internal/activities"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Browse the activity catalog",
}

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")

		all := activities.All()
		shown := 0

		fmt.Printf("%-10s  %-24s  %-14s  %s\n", "ID", "Title", "Subject", "Stars")
		fmt.Println(strings.Repeat("─", 60))
		for _, a := range all {
			if subject != "" && !strings.EqualFold(a.Subject, subject) {
				continue
			}
			fmt.Printf("%-10s  %-24s  %-14s  %d\n", a.ID, a.Title, a.Subject, a.Graph.TotalStars())
			shown++
		}

		if shown == 0 {
			fmt.Println("No activities match.")
		}
		return nil
	},
}

var activityShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an activity's stages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := activities.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", a.Title, a.Subject)
		fmt.Println(a.Tagline)
		fmt.Printf("Badge: %s\n", a.Badge)
		if a.NextActivityID != "" {
			fmt.Printf("Next adventure: %s\n", a.NextActivityID)
		}
		fmt.Println()

		fmt.Printf("%-10s  %-28s  %-10s  %s\n", "Stage", "Name", "Kind", "Stars")
		fmt.Println(strings.Repeat("─", 60))
		for _, st := range a.Graph.Stages() {
			fmt.Printf("%-10s  %-28s  %-10s  %d\n", st.ID, st.Name, st.Kind.Label(), st.RewardStars)
			for _, line := range st.Mission {
				fmt.Printf("              • %s\n", line)
			}
		}
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%-52s  %d\n", "TOTAL", a.Graph.TotalStars())
		return nil
	},
}

func init() {
	activityListCmd.Flags().String("subject", "", "Filter by subject (e.g. Electricity)")

	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activityShowCmd)
}
