package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftquest/internal/models"
	"github.com/misterclayt0n/liftquest/internal/utils"
	"github.com/spf13/cobra"
)

var (
	filterWorkout string
	filterDay     string
	historyLimit  int
	showSets      bool
)

// historyCmd shows the logged workouts grouped by day.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display workout history, optionally filtered by workout name and/or day",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		logs, err := st.ListWorkoutLogs(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("failed to retrieve workouts: %w", err)
		}

		day := ""
		if filterDay != "" {
			if day, err = utils.ParseDay(filterDay); err != nil {
				return err
			}
		}
		logs = filterLogs(logs, filterWorkout, day)

		if len(logs) == 0 {
			fmt.Println("No workouts logged yet.")
			return nil
		}

		grouped := make(map[string][]models.WorkoutLog)
		for _, l := range logs {
			d := utils.Day(l.LoggedAt.Local())
			grouped[d] = append(grouped[d], l)
		}

		var days []string
		for d := range grouped {
			days = append(days, d)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(days)))

		bold := color.New(color.Bold).SprintFunc()
		for _, d := range days {
			fmt.Printf("Date: %s\n", bold(d))
			for _, l := range grouped[d] {
				fmt.Printf("  %s | %s | %d min | %d exercises\n",
					l.LoggedAt.Local().Format("15:04"), l.WorkoutName, l.DurationMinutes, len(l.Exercises))
				if !showSets {
					continue
				}
				for _, ex := range l.Exercises {
					fmt.Printf("    %s (%s)\n", ex.Name, ex.MuscleGroup)
					for i, set := range ex.Sets {
						fmt.Printf("      %d. %.1f %s x %d\n", i+1, set.Weight, cfg.Session.Units, set.Reps)
					}
					if ex.Notes != "" {
						fmt.Printf("      Note: %s\n", ex.Notes)
					}
				}
			}
			fmt.Println()
		}

		return nil
	},
}

// filterLogs keeps logs whose workout name matches (case insensitive) and that were logged on day.
// Empty filters match everything.
func filterLogs(logs []models.WorkoutLog, workout, day string) []models.WorkoutLog {
	var filtered []models.WorkoutLog
	for _, l := range logs {
		if workout != "" && !strings.EqualFold(l.WorkoutName, workout) {
			continue
		}
		if day != "" && utils.Day(l.LoggedAt.Local()) != day {
			continue
		}
		filtered = append(filtered, l)
	}
	return filtered
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&filterWorkout, "workout", "w", "", "Filter by workout name (case insensitive)")
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (e.g. 2025-02-07 or 07/02/25)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Only the most recent n workouts (0 = all)")
	historyCmd.Flags().BoolVarP(&showSets, "sets", "s", false, "Show every logged set")
}
