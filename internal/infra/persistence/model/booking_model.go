package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel mirrors the 'bookings' table.
type BookingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MentorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	LearnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Domain    string    `gorm:"type:varchar(100);not null"`
	Date      string    `gorm:"type:varchar(64);not null"`
	Topic     string    `gorm:"type:text"`
	Link      string    `gorm:"type:varchar(512);not null;default:''"`
	Completed bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Mentor  *MentorModel `gorm:"foreignKey:MentorID"`
	Learner *UserModel   `gorm:"foreignKey:LearnerID"`
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
