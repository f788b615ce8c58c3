package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftquest/internal/models"
	"github.com/misterclayt0n/liftquest/internal/session"
	"github.com/misterclayt0n/liftquest/internal/storage"
	"github.com/misterclayt0n/liftquest/internal/timer"
	"github.com/misterclayt0n/liftquest/internal/utils"
)

const promptHelp = `Commands (set numbers start at 1, they refer to the current exercise):
  set <n> <weight> <reps>   fill in a set
  w <n> <weight>            change the weight of a set
  r <n> <reps>              change the reps of a set
  done <n>                  complete (or reopen) a set
  rest <seconds>            start the rest countdown after a completed set
  skip                      skip or stop the rest countdown
  next | prev | goto <n>    move between exercises
  add | remove              add or drop the last set of the current exercise
  note <text>               note on the current exercise
  status                    show the session
  finish                    score and save the session
  retry                     re-send a session that failed to save
  cancel                    discard the session
  quit                      leave, the session can be resumed later`

type sessionOptions struct {
	Source      session.ExerciseSource
	WorkoutName string
	Policy      session.FinishPolicy
	Snapshots   session.Snapshotter
	Ticker      timer.Ticker
}

func newController(st *storage.Storage, out io.Writer, opts sessionOptions) *session.Controller {
	return session.NewController(session.Deps{
		Source:      opts.Source,
		Logger:      st,
		Awarder:     st,
		XP:          st,
		Notifier:    bellNotifier{out: out},
		Snapshots:   opts.Snapshots,
		Ticker:      opts.Ticker,
		Policy:      opts.Policy,
		WorkoutName: opts.WorkoutName,
	})
}

// prompt is the line-oriented front end of a live session.
type prompt struct {
	ctrl     *session.Controller
	out      io.Writer
	units    string
	finished bool
}

func newPrompt(ctrl *session.Controller, out io.Writer, units string) *prompt {
	return &prompt{ctrl: ctrl, out: out, units: units}
}

// run reads commands until the session is finished, cancelled or suspended.
// End of input suspends a live session.
func (p *prompt) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	p.printStatus()
	fmt.Fprintln(p.out, "Type 'help' for commands.")

	for {
		fmt.Fprint(p.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(p.out)
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("Failed to read input: %w", err)
			}
			return p.leave()
		}

		done, err := p.exec(ctx, scanner.Text())
		if err != nil {
			fmt.Fprintf(p.out, "%s %s\n", color.RedString("✗"), describe(err))
		}
		if done {
			return nil
		}
	}
}

func (p *prompt) exec(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	if p.finished {
		switch name {
		case "retry":
			return p.retry(ctx)
		case "quit", "exit", "q":
			return true, nil
		default:
			return false, fmt.Errorf("the session is over, 'retry' saving it or 'quit'")
		}
	}

	switch name {
	case "help", "h", "?":
		fmt.Fprintln(p.out, promptHelp)
	case "status", "ls":
		p.printStatus()
	case "set":
		if len(args) != 3 {
			return false, fmt.Errorf("usage: set <n> <weight> <reps>")
		}
		return false, p.logSet(args[0], args[1], args[2])
	case "w", "weight":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: w <n> <weight>")
		}
		return false, p.logField(args[0], models.FieldWeight, args[1])
	case "r", "reps":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: r <n> <reps>")
		}
		return false, p.logField(args[0], models.FieldReps, args[1])
	case "done", "d":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: done <n>")
		}
		return false, p.toggle(args[0])
	case "rest":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: rest <seconds>")
		}
		seconds, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("%w: %q is not a number of seconds", session.ErrInvalidInput, args[0])
		}
		if err := p.ctrl.ChooseRest(seconds); err != nil {
			return false, err
		}
		fmt.Fprintf(p.out, "Resting for %s.\n", utils.FormatClock(seconds))
	case "skip":
		return false, p.ctrl.SkipRest()
	case "next", "n":
		return false, p.move(1)
	case "prev", "p":
		return false, p.move(-1)
	case "goto", "g":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: goto <n>")
		}
		target, err := parseIndex(args[0])
		if err != nil {
			return false, err
		}
		return false, p.move(target - p.current())
	case "add":
		if err := p.ctrl.AddSet(p.current()); err != nil {
			return false, err
		}
		p.printStatus()
	case "remove", "rm":
		if err := p.ctrl.RemoveSet(p.current()); err != nil {
			return false, err
		}
		p.printStatus()
	case "note":
		return false, p.ctrl.SetNote(p.current(), strings.Join(args, " "))
	case "finish":
		return p.finish(ctx)
	case "retry":
		return false, fmt.Errorf("nothing to retry, the session is still running")
	case "cancel":
		if err := p.ctrl.Cancel(); err != nil {
			return false, err
		}
		fmt.Fprintln(p.out, "✅ Session cancelled, nothing was saved")
		return true, nil
	case "quit", "exit", "q":
		return true, p.leave()
	default:
		return false, fmt.Errorf("unknown command %q, type 'help'", name)
	}
	return false, nil
}

func (p *prompt) current() int {
	status, err := p.ctrl.Status()
	if err != nil {
		return 0
	}
	return status.Current
}

func (p *prompt) logSet(n, weight, reps string) error {
	setIdx, err := parseIndex(n)
	if err != nil {
		return err
	}
	return p.ctrl.LogEntry(p.current(), setIdx, weight, reps)
}

func (p *prompt) logField(n string, field models.SetField, value string) error {
	setIdx, err := parseIndex(n)
	if err != nil {
		return err
	}
	return p.ctrl.LogSet(p.current(), setIdx, field, value)
}

func (p *prompt) toggle(n string) error {
	setIdx, err := parseIndex(n)
	if err != nil {
		return err
	}
	completed, err := p.ctrl.ToggleComplete(p.current(), setIdx)
	if err != nil {
		return err
	}
	if !completed {
		fmt.Fprintf(p.out, "Set %d reopened.\n", setIdx+1)
	}
	return nil
}

func (p *prompt) move(delta int) error {
	if _, err := p.ctrl.Advance(delta); err != nil {
		return err
	}
	p.printStatus()
	return nil
}

func (p *prompt) finish(ctx context.Context) (bool, error) {
	sub, err := p.ctrl.Finish(ctx)
	if errors.Is(err, session.ErrNoProgress) {
		return false, err
	}
	if sub == nil {
		return false, err
	}

	p.finished = true
	p.printReport(sub.Report())

	if err == nil {
		fmt.Fprintln(p.out, "Saving workout...")
		err = sub.Wait()
	}
	if err != nil {
		fmt.Fprintf(p.out, "%s Failed to save the workout: %v\nType 'retry' to try again or 'quit' to give up.\n",
			color.RedString("✗"), err)
		return false, nil
	}

	p.printSaved(sub)
	return true, nil
}

func (p *prompt) retry(ctx context.Context) (bool, error) {
	if err := p.ctrl.RetrySubmit(ctx); err != nil {
		return false, fmt.Errorf("Failed to save the workout: %w", err)
	}
	p.printSaved(p.ctrl.LastSubmission())
	return true, nil
}

// leave suspends a live session so resume-session can continue it.
func (p *prompt) leave() error {
	if p.finished || !p.ctrl.Active() {
		return nil
	}
	if err := p.ctrl.Suspend(); err != nil {
		return err
	}
	fmt.Fprintln(p.out, "Session saved, run 'liftquest resume-session' to continue.")
	return nil
}

func (p *prompt) printStatus() {
	status, err := p.ctrl.Status()
	if err != nil {
		return
	}

	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	fmt.Fprintf(p.out, "%s  ⏱ %s  sets %d/%d  volume %.1f %s\n",
		bold(status.WorkoutName), utils.FormatClock(status.ElapsedSeconds),
		status.CompletedSets, status.TotalSets, status.Volume, p.units)

	switch {
	case status.Rest.Active:
		fmt.Fprintf(p.out, "Rest: %s left\n", utils.FormatClock(status.Rest.Remaining))
	case status.AwaitingRest:
		fmt.Fprintf(p.out, "Pick a rest: %s seconds, or 'skip'\n", restMenu())
	}

	if len(status.Exercises) == 0 {
		return
	}
	ex := status.Exercises[status.Current]
	fmt.Fprintf(p.out, "\n[%d/%d] %s (%s)  target %dx%d\n",
		status.Current+1, len(status.Exercises), cyan(ex.Exercise.Name), ex.Exercise.MuscleGroup,
		ex.Exercise.TargetSets, ex.Exercise.TargetReps)
	if ex.Exercise.EstimatedOneRM > 0 {
		fmt.Fprintf(p.out, "  Estimated 1RM: %.1f %s\n", ex.Exercise.EstimatedOneRM, p.units)
	}
	for i, set := range ex.Sets {
		weight, reps := set.Weight, set.Reps
		if weight == "" {
			weight = "-"
		}
		if reps == "" {
			reps = "-"
		}
		mark := ""
		if set.Completed {
			mark = green(" ✅")
		}
		fmt.Fprintf(p.out, "  %d. %s %s x %s%s\n", i+1, weight, p.units, reps, mark)
	}
	if ex.Notes != "" {
		fmt.Fprintf(p.out, "  Note: %s\n", ex.Notes)
	}
}

func (p *prompt) printReport(r models.SessionReport) {
	printBoxedHeader(p.out, "SESSION COMPLETE")
	printMetric(p.out, "Volume", fmt.Sprintf("%.1f %s", r.TotalVolume, p.units))
	printMetric(p.out, "Sets", fmt.Sprintf("%d/%d", r.CompletedSets, r.TotalSets))
	printMetric(p.out, "Duration", fmt.Sprintf("%d min", r.DurationMinutes))
	printMetric(p.out, "XP", fmt.Sprintf("+%d", r.XPAwarded))
	if r.LeveledUp {
		fmt.Fprintf(p.out, "%s\n", color.New(color.FgMagenta, color.Bold).Sprintf("🎉 Level up! You reached level %d", r.NewLevel))
	}
}

func (p *prompt) printSaved(sub *session.Submission) {
	if sub == nil {
		return
	}
	if res := sub.ServerResult(); res != nil {
		if res.LeveledUp && !sub.Report().LeveledUp {
			fmt.Fprintf(p.out, "%s\n", color.New(color.FgMagenta, color.Bold).Sprintf("🎉 Level up! You reached level %d", res.NewLevel))
		}
		fmt.Fprintf(p.out, "✅ Workout saved. Level %d, %d XP total\n", res.NewLevel, res.TotalXP)
		return
	}
	fmt.Fprintln(p.out, "✅ Workout saved")
}

// parseIndex turns a 1-based number typed by the user into an index.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q is not a positive number", session.ErrInvalidInput, s)
	}
	return n - 1, nil
}

func describe(err error) string {
	switch {
	case errors.Is(err, session.ErrNoProgress):
		return "Complete at least one set before finishing."
	case errors.Is(err, session.ErrMissingData):
		return "Fill in weight and reps before completing the set."
	case errors.Is(err, session.ErrLockedSet):
		return "That set is completed, reopen it with 'done' before editing."
	case errors.Is(err, session.ErrNoRestPending):
		return "Complete a set first, then pick a rest."
	case errors.Is(err, timer.ErrInvalidDuration):
		return "Rest must be a positive number of seconds."
	default:
		return err.Error()
	}
}
