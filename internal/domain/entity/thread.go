package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sender tags which side of a thread wrote a message.
type Sender string

const (
	SenderLearner Sender = "learner"
	SenderMentor  Sender = "mentor"
)

// Thread is a conversation between one mentor profile and one learner.
type Thread struct {
	ID        uuid.UUID       `json:"id"`
	MentorID  uuid.UUID       `json:"mentorId"`
	LearnerID uuid.UUID       `json:"learnerId"`
	Subject   string          `json:"subject"`
	Messages  []ThreadMessage `json:"messages"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`

	// Display names of the counterpart, filled on list queries.
	MentorName  string `json:"mentorName,omitempty"`
	LearnerName string `json:"learnerName,omitempty"`
}

// ThreadMessage is one entry of a thread's append-only log.
type ThreadMessage struct {
	From      Sender    `json:"from"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
