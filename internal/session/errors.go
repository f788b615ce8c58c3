package session

import (
	"errors"

	"github.com/misterclayt0n/liftquest/internal/scoring"
)

var (
	ErrMissingData     = errors.New("weight and reps must both be filled in with numbers")
	ErrLockedSet       = errors.New("set is completed, un-complete it before editing")
	ErrInvalidInput    = errors.New("invalid input")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNoProgress      = scoring.ErrNoProgress
	ErrNoSession       = errors.New("no active session")
	ErrSessionActive   = errors.New("a session is already active")
	ErrNoRestPending   = errors.New("no rest timer is waiting to be chosen")
)
