package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinkerlab/tinkeralpha/internal/auth"
	"github.com/tinkerlab/tinkeralpha/internal/store"
)

var signoutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Sign out the current learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		session, err := auth.Load(ctx, s.ProfileRepo(), s.EventRepo())
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}

		if !session.IsAuthenticated() {
			fmt.Println("Nobody is signed in.")
			return nil
		}

		name := session.LearnerName()
		if err := session.SignOut(ctx); err != nil {
			return fmt.Errorf("sign out: %w", err)
		}

		fmt.Printf("Signed out %s. See you next time!\n", name)
		return nil
	},
}
