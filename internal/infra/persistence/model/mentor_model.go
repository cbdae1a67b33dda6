package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MentorModel mirrors the 'mentors' table. user_id carries a unique index so
// a user can own at most one profile; NULLs are allowed for unlinked profiles.
type MentorModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       *uuid.UUID     `gorm:"type:uuid;uniqueIndex"`
	Name         string         `gorm:"type:varchar(100);not null"`
	Title        string         `gorm:"type:varchar(255);not null"`
	Company      string         `gorm:"type:varchar(255);not null"`
	Avatar       string         `gorm:"type:varchar(512);not null"`
	Rating       float64        `gorm:"type:numeric(2,1);not null;default:0"`
	Sessions     int            `gorm:"not null;default:0"`
	Skills       pq.StringArray `gorm:"type:text[]"`
	Domain       string         `gorm:"type:varchar(100);not null"`
	HourlyRate   float64        `gorm:"type:numeric(10,2);not null;default:0"`
	Bio          string         `gorm:"type:text;not null"`
	LinkedIn     string         `gorm:"column:linkedin;type:varchar(255)"`
	GitHub       string         `gorm:"column:github;type:varchar(255)"`
	Experience   int
	Availability string         `gorm:"type:varchar(100)"`
	Languages    pq.StringArray `gorm:"type:text[]"`
	Education    pq.StringArray `gorm:"type:text[]"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (MentorModel) TableName() string {
	return "mentors"
}
