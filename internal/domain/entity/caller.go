package entity

import "github.com/google/uuid"

// Caller is the authenticated actor of a request, resolved once at the edge.
// MentorID is set only when the caller acts as a mentor.
type Caller struct {
	UserID   uuid.UUID
	Role     Role
	MentorID uuid.UUID
}

// IsMentor reports whether the caller carries a resolved mentor profile.
func (c Caller) IsMentor() bool {
	return c.Role == RoleMentor && c.MentorID != uuid.Nil
}
