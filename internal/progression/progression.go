package progression

// Thresholds holds the cumulative XP needed to reach each level.
// Level L (1-based) requires Thresholds[L-1].
var Thresholds = [...]int{0, 500, 1200, 2000, 3000, 4500, 6500, 9000, 12000, 15500, 20000}

type Progress struct {
	CurrentLevel  int     `json:"current_level"`
	XPIntoLevel   int     `json:"xp_into_level"`
	XPToNextLevel int     `json:"xp_to_next_level"`
	Percent       float64 `json:"percent"`
}

// MaxLevel is the terminal tier.
func MaxLevel() int {
	return len(Thresholds)
}

// LevelFor returns the level reached with totalXP.
func LevelFor(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}

	level := 1
	for i, threshold := range Thresholds {
		if threshold <= totalXP {
			level = i + 1
		}
	}
	return level
}

// LevelProgress reports where totalXP sits inside its level.
// Every screen showing a level (status, level command, session scoring) goes through here.
func LevelProgress(totalXP int) Progress {
	if totalXP < 0 {
		totalXP = 0
	}

	level := LevelFor(totalXP)
	if level == MaxLevel() {
		return Progress{
			CurrentLevel:  level,
			XPIntoLevel:   totalXP,
			XPToNextLevel: totalXP,
			Percent:       100,
		}
	}

	into := totalXP - Thresholds[level-1]
	span := Thresholds[level] - Thresholds[level-1]
	percent := float64(into) / float64(span) * 100

	return Progress{
		CurrentLevel:  level,
		XPIntoLevel:   into,
		XPToNextLevel: span,
		Percent:       clamp(percent, 0, 100),
	}
}

// LeveledUp compares the level before and after an award.
func LeveledUp(oldXP, award int) (bool, int) {
	before := LevelFor(oldXP)
	after := LevelFor(oldXP + award)
	return after > before, after
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
