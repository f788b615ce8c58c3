package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftquest/internal/models"
	"github.com/misterclayt0n/liftquest/internal/utils"
	"github.com/spf13/cobra"
)

var dailyDay string

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Track nutrition and supplements per day",
}

var dailyAddCmd = &cobra.Command{
	Use:   "add <nutrition|supplement> <name> [amount] [unit]",
	Short: "Log a nutrition or supplement entry for a day",
	Args:  cobra.RangeArgs(2, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := models.DailyEntry{Kind: args[0], Name: args[1]}
		if len(args) > 2 {
			amount, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("Invalid amount %q: %w", args[2], err)
			}
			entry.Amount = amount
		}
		if len(args) > 3 {
			entry.Unit = args[3]
		}

		day, err := dayOrToday(dailyDay)
		if err != nil {
			return err
		}
		entry.Day = day

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		saved, err := st.AddDailyEntry(cmd.Context(), entry)
		if err != nil {
			return fmt.Errorf("Failed to log entry: %w", err)
		}

		fmt.Printf("✅ Logged %s for %s\n", saved.Name, saved.Day)
		return nil
	},
}

var dailyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the nutrition and supplement entries of a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := dayOrToday(dailyDay)
		if err != nil {
			return err
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		entries, err := st.DailyEntries(cmd.Context(), day)
		if err != nil {
			return fmt.Errorf("Failed to read entries: %w", err)
		}

		fmt.Println(color.New(color.FgGreen, color.Bold).Sprintf("Daily log for %s:", day))
		if len(entries) == 0 {
			fmt.Println("  nothing logged")
			return nil
		}
		for _, e := range entries {
			amount := ""
			if e.Amount > 0 {
				amount = fmt.Sprintf(" %g%s", e.Amount, e.Unit)
			}
			fmt.Printf("  • [%s] %s%s\n", e.Kind, color.New(color.FgMagenta, color.Bold).Sprint(e.Name), amount)
		}
		return nil
	},
}

func dayOrToday(day string) (string, error) {
	if day == "" {
		return utils.Day(time.Now()), nil
	}
	return utils.ParseDay(day)
}

func init() {
	rootCmd.AddCommand(dailyCmd)
	dailyCmd.AddCommand(dailyAddCmd)
	dailyCmd.AddCommand(dailyShowCmd)
	dailyCmd.PersistentFlags().StringVarP(&dailyDay, "day", "d", "", "Day (e.g. 2025-02-07 or 07/02/25), default today")
}
