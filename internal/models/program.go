package models

type Program struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Blocks      []ProgramBlock `json:"blocks"`
}

type ProgramBlock struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
}

//
// For TOML/YAML parsing only
//

type ProgramFile struct {
	Name        string      `toml:"name" yaml:"name"`
	Description string      `toml:"description" yaml:"description"`
	Blocks      []BlockFile `toml:"block" yaml:"blocks"`
}

type BlockFile struct {
	Name        string         `toml:"name" yaml:"name"`
	Description string         `toml:"description" yaml:"description"`
	Exercises   []ExerciseFile `toml:"exercise" yaml:"exercises"`
}

type ExerciseFile struct {
	Name          string  `toml:"name" yaml:"name"`
	Sets          int     `toml:"sets" yaml:"sets"`
	Reps          int     `toml:"reps" yaml:"reps"`
	PrimaryMuscle string  `toml:"primary_muscle" yaml:"primary_muscle"`
	Estimate1RM   float64 `toml:"estimate_1rm,omitempty" yaml:"estimate_1rm,omitempty"`
}
