// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the identity record every caller authenticates as. Mentor-side data
// that is shown publicly lives on the separate Mentor profile.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Role         Role      `json:"role"`

	// Mentor registration fields.
	Expertise  string `json:"expertise,omitempty"`
	Experience int    `json:"experience,omitempty"`
	Domain     string `json:"domain,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
	GitHub     string `json:"github,omitempty"`
	WhyMentor  string `json:"whyMentor,omitempty"`

	// Learner registration fields.
	College  string `json:"college,omitempty"`
	GradYear int    `json:"gradYear,omitempty"`

	DomainInterest []string `json:"domainInterest"`

	IsVerified   bool       `json:"isVerified"`
	OTPHash      string     `json:"-"`
	OTPExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NormalizeEmail lower-cases and trims an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsMentor reports whether the user registered as a mentor.
func (u *User) IsMentor() bool {
	return u.Role == RoleMentor
}

// OTPExpired reports whether the pending verification code is no longer usable.
func (u *User) OTPExpired(now time.Time) bool {
	return u.OTPExpiresAt == nil || now.After(*u.OTPExpiresAt)
}
