package entity

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty of a roadmap.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// IsValid checks if the Difficulty is a valid value.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

// Roadmap is a curated learning path for one domain.
type Roadmap struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Duration    string        `json:"duration"`
	Difficulty  Difficulty    `json:"difficulty"`
	TotalSteps  int           `json:"totalSteps"`
	Steps       []RoadmapStep `json:"steps"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type RoadmapStep struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Resources   []RoadmapResource `json:"resources"`
}

type RoadmapResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}
