package cmd

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftquest/internal/models"
	"github.com/misterclayt0n/liftquest/internal/utils"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show meta data: level, total weight lifted, session count, gym hours, week streak, and sets per muscle (current week)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		logs, err := st.ListWorkoutLogs(cmd.Context(), 0)
		if err != nil {
			return fmt.Errorf("failed to retrieve workouts: %w", err)
		}
		totalXP, err := st.TotalXP(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to read XP: %w", err)
		}

		s := summarize(logs, time.Now())

		printBoxedHeader(os.Stdout, "STATUS")
		printLevel(totalXP)
		printMetric(os.Stdout, "Total weight lifted", fmt.Sprintf("%.1f %s", s.TotalWeight, cfg.Session.Units))
		printMetric(os.Stdout, "Total sessions", s.Sessions)
		printMetric(os.Stdout, "Total time at gym", s.Duration)
		printMetric(os.Stdout, "Week streak", fmt.Sprintf("%d weeks", s.WeekStreak))
		if snapshotFile().Exists() {
			printMetric(os.Stdout, "Suspended session", "yes, run resume-session")
		}
		fmt.Println()

		header := color.New(color.FgGreen, color.Bold).Sprintf("Sets per muscle (current week):")
		fmt.Println(header)
		var muscles []string
		for m := range s.MuscleSetsThisWeek {
			muscles = append(muscles, m)
		}
		sort.Strings(muscles)
		for _, m := range muscles {
			fmt.Printf("  • %s: %d sets\n", color.New(color.FgMagenta, color.Bold).Sprint(m), s.MuscleSetsThisWeek[m])
		}
		fmt.Println()

		return nil
	},
}

type summary struct {
	TotalWeight        float64
	Sessions           int
	Duration           time.Duration
	WeekStreak         int
	MuscleSetsThisWeek map[string]int
}

func summarize(logs []models.WorkoutLog, now time.Time) summary {
	s := summary{MuscleSetsThisWeek: make(map[string]int)}
	thisWeek := utils.WeekKey(now)

	var days []time.Time
	for _, l := range logs {
		s.Sessions++
		s.Duration += time.Duration(l.DurationMinutes) * time.Minute
		days = append(days, l.LoggedAt)

		inWeek := utils.WeekKey(l.LoggedAt.In(now.Location())) == thisWeek
		for _, ex := range l.Exercises {
			for _, set := range ex.Sets {
				s.TotalWeight += set.Weight * float64(set.Reps)
			}
			if inWeek {
				s.MuscleSetsThisWeek[ex.MuscleGroup] += len(ex.Sets)
			}
		}
	}

	s.WeekStreak = utils.WeekStreak(days, now)
	return s
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
