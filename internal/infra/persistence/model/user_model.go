// Package model holds the GORM structs that mirror the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	Role         string    `gorm:"type:varchar(16);not null;default:learner"`

	Expertise  string `gorm:"type:varchar(255)"`
	Experience int
	Domain     string `gorm:"type:varchar(100)"`
	LinkedIn   string `gorm:"column:linkedin;type:varchar(255)"`
	GitHub     string `gorm:"column:github;type:varchar(255)"`
	WhyMentor  string `gorm:"type:text"`
	College    string `gorm:"type:varchar(255)"`
	GradYear   int

	DomainInterest pq.StringArray `gorm:"type:text[]"`

	IsVerified   bool       `gorm:"not null;default:false"`
	OTPHash      string     `gorm:"column:otp_hash;type:varchar(64)"`
	OTPExpiresAt *time.Time `gorm:"column:otp_expires_at"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
