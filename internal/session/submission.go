package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/misterclayt0n/liftquest/internal/models"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Submission hands a finished session to the workout log and the XP authority.
// The report and payload are kept, so a failed attempt can be retried without rescoring.
type Submission struct {
	logger  WorkoutLogger
	awarder XPAwarder

	report models.SessionReport
	log    models.WorkoutLog
	award  models.XPAward

	mu      sync.Mutex
	logged  bool
	awarded bool
	server  *models.XPResult
	err     error
	done    chan struct{}
}

func newSubmission(logger WorkoutLogger, awarder XPAwarder, report models.SessionReport, payload models.WorkoutLog) *Submission {
	s := &Submission{
		logger:  logger,
		awarder: awarder,
		report:  report,
		log:     payload,
		award: models.XPAward{
			ActionType: models.ActionWorkoutComplete,
			XPAmount:   report.XPAwarded,
		},
		logged:  logger == nil,
		awarded: awarder == nil,
		done:    make(chan struct{}),
	}
	return s
}

// Wait blocks until the current attempt is over and returns its error.
func (s *Submission) Wait() error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	<-done

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Report is the scored session. Once the XP authority has answered, its level-up verdict
// replaces the local estimate.
func (s *Submission) Report() models.SessionReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := s.report
	if s.server != nil {
		report.LeveledUp = s.server.LeveledUp
		report.NewLevel = 0
		if s.server.LeveledUp {
			report.NewLevel = s.server.NewLevel
		}
	}
	return report
}

func (s *Submission) WorkoutLog() models.WorkoutLog {
	return s.log
}

// ServerResult is the XP authority's answer, nil until it has been received.
func (s *Submission) ServerResult() *models.XPResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server == nil {
		return nil
	}
	res := *s.server
	return &res
}

// Delivered reports whether both collaborators accepted the session.
func (s *Submission) Delivered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logged && s.awarded
}

// Retry re-sends whatever failed last time. It blocks.
func (s *Submission) Retry(ctx context.Context) error {
	s.mu.Lock()
	select {
	case <-s.done:
	default:
		s.mu.Unlock()
		return fmt.Errorf("submission still in flight")
	}
	if s.logged && s.awarded {
		s.mu.Unlock()
		return nil
	}
	s.done = make(chan struct{})
	s.mu.Unlock()

	s.run(ctx)
	return s.Wait()
}

func (s *Submission) run(ctx context.Context) {
	s.mu.Lock()
	needLog, needAward := !s.logged, !s.awarded
	done := s.done
	s.mu.Unlock()

	var (
		wg       sync.WaitGroup
		logErr   error
		awardErr error
		result   models.XPResult
	)

	if needLog {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.logger.SaveWorkoutLog(ctx, s.log); err != nil {
				logErr = fmt.Errorf("Failed to save workout log: %w", err)
			}
		}()
	}

	if needAward {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := s.awarder.AwardXP(ctx, s.award)
			if err != nil {
				awardErr = fmt.Errorf("Failed to award XP: %w", err)
				return
			}
			result = res
		}()
	}

	wg.Wait()

	s.mu.Lock()
	if needLog && logErr == nil {
		s.logged = true
	}
	if needAward && awardErr == nil {
		s.awarded = true
		s.server = &result
	}
	s.err = multierr.Combine(logErr, awardErr)
	err := s.err
	s.mu.Unlock()

	entry := log.WithFields(log.Fields{
		"workout_log": s.log.ID,
		"xp":          s.award.XPAmount,
	})
	if err != nil {
		entry.WithError(err).Warn("session submission failed")
	} else {
		entry.Info("session submitted")
	}

	close(done)
}
