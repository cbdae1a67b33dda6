package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RoadmapModel mirrors the 'roadmaps' table. Steps are stored as JSONB.
type RoadmapModel struct {
	ID          uuid.UUID                            `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string                               `gorm:"type:varchar(255);not null"`
	Description string                               `gorm:"type:text;not null"`
	Category    string                               `gorm:"type:varchar(100);not null;index"`
	Duration    string                               `gorm:"type:varchar(100);not null"`
	Difficulty  string                               `gorm:"type:varchar(16);not null"`
	TotalSteps  int                                  `gorm:"not null"`
	Steps       datatypes.JSONSlice[RoadmapStepJSON] `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoadmapModel) TableName() string {
	return "roadmaps"
}

// RoadmapStepJSON is the JSON shape of one roadmap step.
type RoadmapStepJSON struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Resources   []RoadmapResourceJSON `json:"resources"`
}

type RoadmapResourceJSON struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}
