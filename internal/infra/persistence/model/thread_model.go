package model

import (
	"time"

	"github.com/google/uuid"
)

// ThreadModel mirrors the 'threads' table.
type ThreadModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MentorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	LearnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Messages []ThreadMessageModel `gorm:"foreignKey:ThreadID"`
	Mentor   *MentorModel         `gorm:"foreignKey:MentorID"`
	Learner  *UserModel           `gorm:"foreignKey:LearnerID"`
}

// TableName explicitly sets the table name for GORM.
func (ThreadModel) TableName() string {
	return "threads"
}

// ThreadMessageModel mirrors the 'thread_messages' table. Seq is a bigserial
// and defines append order within a thread.
type ThreadMessageModel struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement"`
	ThreadID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Sender    string    `gorm:"type:varchar(16);not null"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ThreadMessageModel) TableName() string {
	return "thread_messages"
}
