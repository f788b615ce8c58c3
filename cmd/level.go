package cmd

import (
	"fmt"
	"os"

	"github.com/misterclayt0n/liftquest/internal/progression"
	"github.com/spf13/cobra"
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Show your level and the XP needed for the next one",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		totalXP, err := st.TotalXP(cmd.Context())
		if err != nil {
			return fmt.Errorf("Failed to read XP: %w", err)
		}

		printBoxedHeader(os.Stdout, "LEVEL")
		printLevel(totalXP)
		return nil
	},
}

func printLevel(totalXP int) {
	p := progression.LevelProgress(totalXP)

	printMetric(os.Stdout, "Level", p.CurrentLevel)
	printMetric(os.Stdout, "Total XP", totalXP)
	if p.CurrentLevel == progression.MaxLevel() {
		printMetric(os.Stdout, "Progress", progressBar(100, 20)+" max level")
		return
	}
	printMetric(os.Stdout, "Progress", fmt.Sprintf("%s %.1f%% (%d/%d XP to level %d)",
		progressBar(p.Percent, 20), p.Percent, p.XPIntoLevel, p.XPToNextLevel, p.CurrentLevel+1))
}

func init() {
	rootCmd.AddCommand(levelCmd)
}
