package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftquest/internal/program"
	"github.com/spf13/cobra"
)

var showBlock string // Optional block filter.

var showProgramCmd = &cobra.Command{
	Use:   "show-program [file]",
	Short: "Display a program file (TOML or YAML), optionally a single block",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Session.DefaultProgram
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return fmt.Errorf("no program file given and session.default_program is not set")
		}

		prog, err := program.ParseFile(expandHome(path))
		if err != nil {
			return fmt.Errorf("failed to load program: %w", err)
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		fmt.Printf("\n%s\n", green(strings.ToUpper(prog.Name)))
		if prog.Description != "" {
			fmt.Printf("%s: %s\n", cyan("Description"), prog.Description)
		}
		fmt.Println(strings.Repeat("=", 60))

		shown := 0
		for _, block := range prog.Blocks {
			if showBlock != "" && !strings.EqualFold(block.Name, showBlock) {
				continue
			}
			shown++

			fmt.Printf("\n%s: %s\n", yellow("Day"), block.Name)
			if block.Description != "" {
				fmt.Printf("%s: %s\n", yellow("Notes"), block.Description)
			}
			fmt.Println(strings.Repeat("-", 60))

			for i, ex := range block.Exercises {
				fmt.Printf("%d. %s (%s)\n", i+1, ex.Name, ex.MuscleGroup)
				fmt.Printf("   %s: %d x %d\n", cyan("Target"), ex.TargetSets, ex.TargetReps)
				if ex.EstimatedOneRM > 0 {
					fmt.Printf("   %s: %.1f %s\n", cyan("Estimated 1RM"), ex.EstimatedOneRM, cfg.Session.Units)
				}
			}
			fmt.Println()
		}

		if shown == 0 {
			return fmt.Errorf("block %q not found in program %q", showBlock, prog.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showProgramCmd)
	showProgramCmd.Flags().StringVarP(&showBlock, "block", "b", "", "Show only this block (case insensitive)")
}
