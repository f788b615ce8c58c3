package scoring

import (
	"errors"
	"math"

	"github.com/misterclayt0n/liftquest/internal/models"
	"github.com/misterclayt0n/liftquest/internal/progression"
)

var ErrNoProgress = errors.New("no completed sets in this session")

const (
	BaseXP            = 100
	VolumePerXP       = 100 // Volume units per bonus XP point.
	DurationStepMins  = 10
	DurationStepBonus = 5

	// MaxBonusXP caps each bonus so absurd entries cannot overflow the award.
	MaxBonusXP = math.MaxInt32
)

// ComputeVolume sums weight × reps over completed sets. Malformed entries count as zero.
func ComputeVolume(exercises []models.ExerciseProgress) float64 {
	var volume float64
	for _, ex := range exercises {
		for _, set := range ex.Sets {
			if !set.Completed {
				continue
			}
			weight, reps, ok := set.Values()
			if !ok {
				continue
			}
			volume += weight * float64(reps)
		}
	}
	return volume
}

func ComputeXP(volume float64, durationMinutes int) int {
	if volume < 0 || math.IsNaN(volume) {
		volume = 0
	}
	if durationMinutes < 0 {
		durationMinutes = 0
	}

	volumeBonus := MaxBonusXP
	if b := math.Floor(volume / VolumePerXP); b < MaxBonusXP {
		volumeBonus = int(b)
	}
	durationBonus := MaxBonusXP
	if steps := durationMinutes / DurationStepMins; steps < MaxBonusXP/DurationStepBonus {
		durationBonus = steps * DurationStepBonus
	}
	return BaseXP + volumeBonus + durationBonus
}

// CountSets returns completed and total set counts.
func CountSets(exercises []models.ExerciseProgress) (completed, total int) {
	for _, ex := range exercises {
		for _, set := range ex.Sets {
			total++
			if set.Completed {
				completed++
			}
		}
	}
	return completed, total
}

// Finish scores a session. oldXP is the cumulative XP before this award and only feeds the
// level-up echo; the XP authority has the final word on levels.
func Finish(exercises []models.ExerciseProgress, elapsedSeconds, oldXP int) (models.SessionReport, error) {
	completed, total := CountSets(exercises)
	if completed == 0 {
		return models.SessionReport{}, ErrNoProgress
	}

	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	if oldXP < 0 {
		oldXP = 0
	}

	volume := ComputeVolume(exercises)
	minutes := elapsedSeconds / 60
	xp := ComputeXP(volume, minutes)

	report := models.SessionReport{
		TotalVolume:     volume,
		CompletedSets:   completed,
		TotalSets:       total,
		DurationMinutes: minutes,
		XPAwarded:       xp,
	}

	if up, level := progression.LeveledUp(oldXP, xp); up {
		report.LeveledUp = true
		report.NewLevel = level
	}

	return report, nil
}
