package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is one scheduled mentorship session. Link and Completed may only be
// changed by the mentor owning the booking.
type Booking struct {
	ID        uuid.UUID `json:"id"`
	MentorID  uuid.UUID `json:"mentorId"`
	LearnerID uuid.UUID `json:"learnerId"`
	Domain    string    `json:"domain"`
	Date      string    `json:"date"`
	Topic     string    `json:"topic,omitempty"`
	Link      string    `json:"link"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`

	// Counterpart details, filled on list queries.
	MentorName   string `json:"mentorName,omitempty"`
	MentorAvatar string `json:"mentorAvatar,omitempty"`
	LearnerName  string `json:"learnerName,omitempty"`
}

// SessionDate joins the date and time fields into the single display string
// stored on a booking.
func SessionDate(date, clock string) string {
	return date + " " + clock
}
