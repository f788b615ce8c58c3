package cmd

import (
	"fmt"
	"os"

	"github.com/misterclayt0n/liftquest/internal/session"
	"github.com/spf13/cobra"
)

var resumeSessionCmd = &cobra.Command{
	Use:   "resume-session",
	Short: "Continue the session that was left with 'quit' or interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshots := snapshotFile()
		if !snapshots.Exists() {
			return fmt.Errorf("No session to resume")
		}

		state, err := snapshots.Load()
		if err != nil {
			return fmt.Errorf("Failed to load session: %w", err)
		}

		policy, err := session.ParseFinishPolicy(cfg.Session.FinishPolicy)
		if err != nil {
			return err
		}
		if blocking {
			policy = session.FinishBlocking
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		out := newConsole(os.Stdout)
		ctrl := newController(st, out, sessionOptions{Policy: policy, Snapshots: snapshots})
		if err := ctrl.Resume(*state); err != nil {
			return fmt.Errorf("Failed to resume session: %w", err)
		}

		fmt.Fprintln(out, "✅ Resumed session")
		return newPrompt(ctrl, out, cfg.Session.Units).run(cmd.Context(), os.Stdin)
	},
}

func init() {
	rootCmd.AddCommand(resumeSessionCmd)
	resumeSessionCmd.Flags().BoolVar(&blocking, "blocking", false, "Wait for the workout to be saved before showing the summary")
}
