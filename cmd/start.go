package cmd

import (
	"fmt"
	"os"

	"github.com/misterclayt0n/liftquest/internal/program"
	"github.com/misterclayt0n/liftquest/internal/session"
	"github.com/spf13/cobra"
)

var (
	programPath string
	blockName   string
	blocking    bool
)

var startCmd = &cobra.Command{
	Use:   "start-session",
	Short: "Starts a new live training session",
	Long: `Starts a live training session from a program file (TOML or YAML) or, without one,
from the built-in default workout. Sets are logged at an interactive prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshots := snapshotFile()
		if snapshots.Exists() {
			return fmt.Errorf("A session is already in progress, use resume-session or cancel-session")
		}

		opts, err := sessionOptionsFromFlags()
		if err != nil {
			return err
		}
		opts.Snapshots = snapshots

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		out := newConsole(os.Stdout)
		ctrl := newController(st, out, opts)
		if err := ctrl.Begin(cmd.Context()); err != nil {
			return fmt.Errorf("Failed to start session: %w", err)
		}

		fmt.Fprintln(out, "✅ Started session")
		return newPrompt(ctrl, out, cfg.Session.Units).run(cmd.Context(), os.Stdin)
	},
}

func sessionOptionsFromFlags() (sessionOptions, error) {
	policy, err := session.ParseFinishPolicy(cfg.Session.FinishPolicy)
	if err != nil {
		return sessionOptions{}, err
	}
	if blocking {
		policy = session.FinishBlocking
	}
	opts := sessionOptions{Policy: policy, WorkoutName: "Default Workout"}

	path := programPath
	if path == "" {
		path = cfg.Session.DefaultProgram
	}
	block := blockName
	if block == "" {
		block = cfg.Session.DefaultBlock
	}
	if path == "" {
		return opts, nil
	}

	source := program.FileSource{Path: expandHome(path), Block: block}
	name, err := source.WorkoutName()
	if err != nil {
		return sessionOptions{}, fmt.Errorf("Failed to read program: %w", err)
	}
	opts.Source = source
	opts.WorkoutName = name
	return opts, nil
}

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVarP(&programPath, "program", "p", "", "Program file (.toml, .yaml); defaults to session.default_program")
	startCmd.Flags().StringVarP(&blockName, "block", "b", "", "Block/day of the program (default: first block)")
	startCmd.Flags().BoolVar(&blocking, "blocking", false, "Wait for the workout to be saved before showing the summary")
}
