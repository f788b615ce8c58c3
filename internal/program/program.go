package program

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/liftquest/internal/models"
	"gopkg.in/yaml.v3"
)

// DefaultExercises is the workout used when no program supplies one.
func DefaultExercises() []models.Exercise {
	return []models.Exercise{
		{Name: "Bench Press", TargetSets: 4, TargetReps: 10, MuscleGroup: "Chest"},
		{Name: "Squat", TargetSets: 4, TargetReps: 8, MuscleGroup: "Legs"},
		{Name: "Deadlift", TargetSets: 3, TargetReps: 6, MuscleGroup: "Back"},
	}
}

// Parse decodes a program file. The format follows the extension: .toml, .yaml or .yml.
func Parse(name string, data []byte) (*models.Program, error) {
	var file models.ProgramFile

	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("Invalid TOML format: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("Invalid YAML format: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported program file %q (want .toml, .yaml or .yml)", name)
	}

	return fromFile(file)
}

func ParseFile(path string) (*models.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

func fromFile(file models.ProgramFile) (*models.Program, error) {
	if strings.TrimSpace(file.Name) == "" {
		return nil, fmt.Errorf("program name is required")
	}

	program := &models.Program{
		Name:        file.Name,
		Description: file.Description,
	}

	for _, b := range file.Blocks {
		block := models.ProgramBlock{
			Name:        b.Name,
			Description: b.Description,
		}
		for _, ex := range b.Exercises {
			if strings.TrimSpace(ex.Name) == "" {
				return nil, fmt.Errorf("block %q: exercise without a name", b.Name)
			}
			block.Exercises = append(block.Exercises, models.Exercise{
				Name:           ex.Name,
				TargetSets:     max(ex.Sets, 1),
				TargetReps:     max(ex.Reps, 1),
				MuscleGroup:    muscleOrDefault(ex.PrimaryMuscle),
				EstimatedOneRM: ex.Estimate1RM,
			})
		}
		program.Blocks = append(program.Blocks, block)
	}

	return program, nil
}

func muscleOrDefault(m string) string {
	if strings.TrimSpace(m) == "" {
		return models.DefaultMuscleGroup
	}
	return m
}

// Block finds a block by name, case insensitive. An empty name picks the first block.
func Block(p *models.Program, name string) (*models.ProgramBlock, error) {
	if len(p.Blocks) == 0 {
		return nil, fmt.Errorf("program %q has no blocks", p.Name)
	}
	if name == "" {
		return &p.Blocks[0], nil
	}
	for i := range p.Blocks {
		if strings.EqualFold(p.Blocks[i].Name, name) {
			return &p.Blocks[i], nil
		}
	}
	return nil, fmt.Errorf("block %q not found in program %q", name, p.Name)
}

// FileSource reads one block of a program file each time a session begins.
type FileSource struct {
	Path  string
	Block string
}

func (s FileSource) Exercises(_ context.Context) ([]models.Exercise, error) {
	p, err := ParseFile(s.Path)
	if err != nil {
		return nil, err
	}
	block, err := Block(p, s.Block)
	if err != nil {
		return nil, err
	}
	return append([]models.Exercise(nil), block.Exercises...), nil
}

// WorkoutName is the label a session from this source is logged under.
func (s FileSource) WorkoutName() (string, error) {
	p, err := ParseFile(s.Path)
	if err != nil {
		return "", err
	}
	block, err := Block(p, s.Block)
	if err != nil {
		return "", err
	}
	if block.Name == "" {
		return p.Name, nil
	}
	return p.Name + " - " + block.Name, nil
}
