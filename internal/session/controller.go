package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/liftquest/internal/models"
	"github.com/misterclayt0n/liftquest/internal/program"
	"github.com/misterclayt0n/liftquest/internal/scoring"
	"github.com/misterclayt0n/liftquest/internal/timer"

	log "github.com/sirupsen/logrus"
)

// FinishPolicy decides whether Finish waits for persistence.
type FinishPolicy string

const (
	// FinishOptimistic returns as soon as the session is scored; I/O continues in the background.
	FinishOptimistic FinishPolicy = "optimistic"
	// FinishBlocking returns only after the workout log and XP award calls are done.
	FinishBlocking FinishPolicy = "blocking"
)

func ParseFinishPolicy(s string) (FinishPolicy, error) {
	switch FinishPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", FinishOptimistic:
		return FinishOptimistic, nil
	case FinishBlocking:
		return FinishBlocking, nil
	default:
		return "", fmt.Errorf("%w: unknown finish policy %q", ErrInvalidInput, s)
	}
}

type Deps struct {
	Source      ExerciseSource
	Logger      WorkoutLogger
	Awarder     XPAwarder
	XP          XPReader
	Notifier    Notifier
	Snapshots   Snapshotter
	Ticker      timer.Ticker
	Policy      FinishPolicy
	WorkoutName string
	Now         func() time.Time
}

// Status is a read-only view of the live session.
type Status struct {
	SessionID      string
	WorkoutName    string
	Exercises      []models.ExerciseProgress
	Current        int
	ElapsedSeconds int
	Rest           timer.RestState
	AwaitingRest   bool
	CompletedSets  int
	TotalSets      int
	Volume         float64
}

// Controller drives one workout session at a time: begin, log sets, rest, finish or cancel.
// Callers use it from a single goroutine; only the timers tick in the background.
type Controller struct {
	deps Deps

	model        *Model
	clock        *timer.ElapsedClock
	rest         *timer.RestScheduler
	awaitingRest bool

	last *Submission
}

func NewController(deps Deps) *Controller {
	if deps.Ticker == nil {
		deps.Ticker = timer.SystemTicker{}
	}
	if deps.Policy == "" {
		deps.Policy = FinishOptimistic
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.WorkoutName == "" {
		deps.WorkoutName = "Workout"
	}
	return &Controller{deps: deps}
}

// Begin loads the exercises and starts the session clock.
func (c *Controller) Begin(ctx context.Context) error {
	if c.model != nil {
		return ErrSessionActive
	}

	var exercises []models.Exercise
	if c.deps.Source != nil {
		var err error
		exercises, err = c.deps.Source.Exercises(ctx)
		if err != nil {
			return fmt.Errorf("Failed to load exercises: %w", err)
		}
	}
	if len(exercises) == 0 {
		log.WithField("workout", c.deps.WorkoutName).Warn("no exercises supplied, using the default workout")
	}

	model, err := NewModel(c.deps.WorkoutName, exercises, program.DefaultExercises(), c.deps.Now().UTC())
	if err != nil {
		return err
	}

	c.start(model, 0)
	log.WithFields(log.Fields{
		"session":   model.ID,
		"workout":   model.Name,
		"exercises": model.Len(),
	}).Info("session started")
	return nil
}

// Resume continues a session from a snapshot, clock included.
func (c *Controller) Resume(state models.SessionState) error {
	if c.model != nil {
		return ErrSessionActive
	}

	model, err := RestoreModel(state)
	if err != nil {
		return err
	}

	c.start(model, state.ElapsedSeconds)
	log.WithFields(log.Fields{
		"session": model.ID,
		"elapsed": state.ElapsedSeconds,
	}).Info("session resumed")
	return nil
}

func (c *Controller) start(model *Model, elapsed int) {
	c.model = model
	c.awaitingRest = false
	c.last = nil
	c.clock = timer.StartClockAt(c.deps.Ticker, elapsed)
	c.rest = timer.NewRestScheduler(c.deps.Ticker, timer.WithOnFinish(func() {
		if c.deps.Notifier != nil {
			c.deps.Notifier.RestFinished()
		}
	}))
	c.snapshot()
}

func (c *Controller) Active() bool {
	return c.model != nil
}

func (c *Controller) LogSet(exIdx, setIdx int, field models.SetField, value string) error {
	if c.model == nil {
		return ErrNoSession
	}
	if err := c.model.UpdateSet(exIdx, setIdx, field, value); err != nil {
		return err
	}
	c.snapshot()
	return nil
}

// LogEntry sets weight and reps of one set in a single step.
func (c *Controller) LogEntry(exIdx, setIdx int, weight, reps string) error {
	if c.model == nil {
		return ErrNoSession
	}
	if err := c.model.UpdateEntry(exIdx, setIdx, weight, reps); err != nil {
		return err
	}
	c.snapshot()
	return nil
}

// ToggleComplete flips a set. Completing one emits "set completed" and waits for a rest choice.
func (c *Controller) ToggleComplete(exIdx, setIdx int) (bool, error) {
	if c.model == nil {
		return false, ErrNoSession
	}

	completed, err := c.model.ToggleSetComplete(exIdx, setIdx)
	if err != nil {
		return false, err
	}

	if completed {
		c.awaitingRest = true
		if c.deps.Notifier != nil {
			c.deps.Notifier.SetCompleted(exIdx, setIdx)
		}
	} else {
		c.awaitingRest = false
	}
	c.snapshot()
	return completed, nil
}

// AwaitingRest is true between a set completion and the rest choice.
func (c *Controller) AwaitingRest() bool {
	return c.awaitingRest
}

// ChooseRest starts the countdown picked after a completed set.
func (c *Controller) ChooseRest(seconds int) error {
	if c.model == nil {
		return ErrNoSession
	}
	if !c.awaitingRest {
		return ErrNoRestPending
	}
	if err := c.rest.Start(seconds); err != nil {
		return err
	}
	c.awaitingRest = false
	return nil
}

// SkipRest declines the rest prompt or cuts a running countdown short.
func (c *Controller) SkipRest() error {
	if c.model == nil {
		return ErrNoSession
	}
	c.awaitingRest = false
	c.rest.Skip()
	return nil
}

func (c *Controller) AddSet(exIdx int) error {
	if c.model == nil {
		return ErrNoSession
	}
	if err := c.model.AddSet(exIdx); err != nil {
		return err
	}
	c.snapshot()
	return nil
}

func (c *Controller) RemoveSet(exIdx int) error {
	if c.model == nil {
		return ErrNoSession
	}
	if err := c.model.RemoveSet(exIdx); err != nil {
		return err
	}
	c.snapshot()
	return nil
}

func (c *Controller) Advance(delta int) (int, error) {
	if c.model == nil {
		return 0, ErrNoSession
	}
	idx := c.model.Advance(delta)
	c.snapshot()
	return idx, nil
}

func (c *Controller) SetNote(exIdx int, note string) error {
	if c.model == nil {
		return ErrNoSession
	}
	if err := c.model.SetNote(exIdx, note); err != nil {
		return err
	}
	c.snapshot()
	return nil
}

func (c *Controller) Status() (Status, error) {
	if c.model == nil {
		return Status{}, ErrNoSession
	}

	exercises := c.model.Exercises()
	completed, total := scoring.CountSets(exercises)
	return Status{
		SessionID:      c.model.ID,
		WorkoutName:    c.model.Name,
		Exercises:      exercises,
		Current:        c.model.Current(),
		ElapsedSeconds: c.clock.Seconds(),
		Rest:           c.rest.State(),
		AwaitingRest:   c.awaitingRest,
		CompletedSets:  completed,
		TotalSets:      total,
		Volume:         scoring.ComputeVolume(exercises),
	}, nil
}

// Cancel stops both timers before returning and throws the session away. Nothing is persisted.
func (c *Controller) Cancel() error {
	if c.model == nil {
		return ErrNoSession
	}

	id := c.model.ID
	c.teardown()
	c.model = nil

	if c.deps.Snapshots != nil {
		if err := c.deps.Snapshots.Clear(); err != nil {
			return fmt.Errorf("Failed to clear session snapshot: %w", err)
		}
	}

	log.WithField("session", id).Info("session cancelled")
	return nil
}

// Suspend stops both timers but keeps the snapshot, so Resume can pick the session up later.
func (c *Controller) Suspend() error {
	if c.model == nil {
		return ErrNoSession
	}

	c.snapshot()
	id := c.model.ID
	c.teardown()
	c.model = nil

	log.WithField("session", id).Info("session suspended")
	return nil
}

// Finish scores the session and submits it. With ErrNoProgress the session stays live.
// Under FinishOptimistic the returned Submission may still be in flight; under FinishBlocking
// its outcome is also returned as the error, and the report is kept for RetrySubmit either way.
func (c *Controller) Finish(ctx context.Context) (*Submission, error) {
	if c.model == nil {
		return nil, ErrNoSession
	}

	exercises := c.model.Exercises()
	if completed, _ := scoring.CountSets(exercises); completed == 0 {
		return nil, ErrNoProgress
	}

	c.teardown()
	elapsed := c.clock.Seconds()

	oldXP, knownXP := 0, false
	if c.deps.XP != nil {
		xp, err := c.deps.XP.TotalXP(ctx)
		if err != nil {
			log.WithError(err).Warn("could not read current XP, level-up estimate skipped")
		} else {
			oldXP, knownXP = xp, true
		}
	}

	report, err := scoring.Finish(exercises, elapsed, oldXP)
	if err != nil {
		return nil, err
	}
	if !knownXP {
		report.LeveledUp = false
		report.NewLevel = 0
	}

	payload := c.model.WorkoutLog(report.DurationMinutes, c.deps.Now().UTC())
	sub := newSubmission(c.deps.Logger, c.deps.Awarder, report, payload)

	log.WithFields(log.Fields{
		"session": c.model.ID,
		"volume":  report.TotalVolume,
		"xp":      report.XPAwarded,
		"minutes": report.DurationMinutes,
	}).Info("session finished")

	c.model = nil
	c.last = sub
	if c.deps.Snapshots != nil {
		if err := c.deps.Snapshots.Clear(); err != nil {
			log.WithError(err).Warn("could not clear session snapshot")
		}
	}

	if c.deps.Policy == FinishBlocking {
		sub.run(ctx)
		return sub, sub.Wait()
	}

	go sub.run(context.WithoutCancel(ctx))
	return sub, nil
}

// LastSubmission is the most recent finished session, nil if none.
func (c *Controller) LastSubmission() *Submission {
	return c.last
}

// RetrySubmit re-sends the parts of the last finished session that failed.
func (c *Controller) RetrySubmit(ctx context.Context) error {
	if c.last == nil {
		return ErrNoSession
	}
	return c.last.Retry(ctx)
}

func (c *Controller) teardown() {
	c.awaitingRest = false
	c.rest.Cancel()
	c.clock.Stop()
}

func (c *Controller) snapshot() {
	if c.deps.Snapshots == nil || c.model == nil {
		return
	}
	if err := c.deps.Snapshots.Save(c.model.State(c.clock.Seconds())); err != nil {
		log.WithError(err).Warn("could not save session snapshot")
	}
}
