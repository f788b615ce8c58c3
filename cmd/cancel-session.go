package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cancelSessionCmd = &cobra.Command{
	Use:   "cancel-session",
	Short: "Cancel the suspended training session without saving any data",
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshots := snapshotFile()
		if !snapshots.Exists() {
			return fmt.Errorf("No active session to cancel")
		}

		// Nothing was persisted yet, dropping the snapshot is enough.
		if err := snapshots.Clear(); err != nil {
			return fmt.Errorf("Failed to cancel session: %w", err)
		}

		fmt.Println("✅ Session cancelled successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelSessionCmd)
}
