package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinkerlab/tinkeralpha/internal/activities"
	"github.com/tinkerlab/tinkeralpha/internal/mascot"
	"github.com/tinkerlab/tinkeralpha/internal/stagegraph"
)

var hintCmd = &cobra.Command{
	Use:   "hint",
	Short: "Preview Sparky's hint for a stage (no database)",
	Long: `Generate a hint for a specific activity stage.

This is a stateless developer tool. No database, no progress tracking,
no events. Useful for evaluating hint quality and tuning the prompt.`,
	RunE: runHint,
}

func init() {
	hintCmd.Flags().String("activity", "", "Activity ID (required)")
	hintCmd.Flags().String("stage", "", "Stage ID within the activity (required)")
	_ = hintCmd.MarkFlagRequired("activity")
	_ = hintCmd.MarkFlagRequired("stage")
}

func runHint(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	activityID, _ := cmd.Flags().GetString("activity")
	stageID, _ := cmd.Flags().GetString("stage")

	a, err := activities.Get(activityID)
	if err != nil {
		return err
	}
	st, ok := a.Graph.Get(stagegraph.StageID(stageID))
	if !ok {
		return fmt.Errorf("stage not found: %q in activity %q", stageID, activityID)
	}

	// Nil event repo: hints here are throwaway, nothing is logged.
	provider, err := providerFromEnv(ctx, nil)
	if err != nil {
		fmt.Println("No LLM provider configured; showing the built-in hint.")
		provider = nil
	}

	svc := mascot.NewService(provider, mascot.DefaultConfig())
	hint, err := svc.Hint(ctx, a, st)
	if err != nil {
		return fmt.Errorf("generate hint: %w", err)
	}

	fmt.Printf("%s %s / %s\n\n", st.Kind.Icon(), a.Title, st.Name)
	fmt.Println(hint)
	return nil
}
