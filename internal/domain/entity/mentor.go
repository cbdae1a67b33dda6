package entity

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Mentor is the public profile a mentor-role user is represented by. UserID is
// nil for profiles created directly by an admin or the seed command.
type Mentor struct {
	ID           uuid.UUID  `json:"id"`
	UserID       *uuid.UUID `json:"userId,omitempty"`
	Name         string     `json:"name"`
	Title        string     `json:"role"`
	Company      string     `json:"company"`
	Avatar       string     `json:"avatar"`
	Rating       float64    `json:"rating"`
	Sessions     int        `json:"sessions"`
	Skills       []string   `json:"skills"`
	Domain       string     `json:"domain"`
	HourlyRate   float64    `json:"hourlyRate"`
	Bio          string     `json:"bio"`
	LinkedIn     string     `json:"linkedin,omitempty"`
	GitHub       string     `json:"github,omitempty"`
	Experience   int        `json:"experience,omitempty"`
	Availability string     `json:"availability"`
	Languages    []string   `json:"languages"`
	Education    []string   `json:"education"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// MentorWithUser is a mentor profile together with its linked user, if any.
type MentorWithUser struct {
	Mentor *Mentor
	User   *User
}

// MentorSummary is the directory listing entry: profile fields plus user
// fields, with the user side falling back to the profile's stored copy.
type MentorSummary struct {
	*Mentor

	FullName  string `json:"fullName"`
	Email     string `json:"email,omitempty"`
	Expertise string `json:"expertise,omitempty"`
	WhyMentor string `json:"whyMentor,omitempty"`
}

// MergeMentorWithUser flattens a mentor and its optional user into a summary.
func MergeMentorWithUser(m *MentorWithUser) *MentorSummary {
	mentor := *m.Mentor
	summary := &MentorSummary{
		Mentor:    &mentor,
		FullName:  mentor.Name,
		Expertise: mentor.Title,
		WhyMentor: mentor.Bio,
	}

	user := m.User
	if user == nil {
		return summary
	}

	summary.FullName = firstNonEmpty(user.FullName, mentor.Name)
	summary.Email = user.Email
	summary.Expertise = firstNonEmpty(user.Expertise, mentor.Title)
	summary.WhyMentor = firstNonEmpty(user.WhyMentor, mentor.Bio)
	mentor.Domain = firstNonEmpty(user.Domain, mentor.Domain)
	mentor.LinkedIn = firstNonEmpty(user.LinkedIn, mentor.LinkedIn)
	mentor.GitHub = firstNonEmpty(user.GitHub, mentor.GitHub)
	if user.Experience > 0 {
		mentor.Experience = user.Experience
	}

	return summary
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// Defaults for mentor profiles created from a user record.
const (
	DefaultMentorAvatar       = "/images/mentors/default.jpg"
	DefaultMentorCompany      = "Freelance"
	RegisteredMentorCompany   = "Independent"
	DefaultMentorTitle        = "Mentor"
	DefaultMentorDomain       = "Other"
	DefaultMentorBio          = "Experienced mentor ready to help students grow."
	RegisteredMentorBio       = "No bio provided"
	DefaultMentorAvailability = "Available"
	DefaultMentorLanguage     = "English"

	// DefaultLazyMentorExperience is the years of experience given to a lazily
	// created profile whose user has none.
	DefaultLazyMentorExperience = 2
)

// NewRegisteredMentor builds the profile created alongside a mentor-role user
// at registration.
func NewRegisteredMentor(user *User) *Mentor {
	userID := user.ID

	return &Mentor{
		UserID:       &userID,
		Name:         user.FullName,
		Title:        firstNonEmpty(user.Expertise, DefaultMentorTitle),
		Company:      RegisteredMentorCompany,
		Avatar:       GeneratedAvatarURL(user.FullName),
		Skills:       skillsFrom(user.Expertise),
		Domain:       firstNonEmpty(user.Domain, DefaultMentorDomain),
		HourlyRate:   0,
		Bio:          firstNonEmpty(user.WhyMentor, RegisteredMentorBio),
		LinkedIn:     user.LinkedIn,
		GitHub:       user.GitHub,
		Experience:   user.Experience,
		Availability: DefaultMentorAvailability,
		Languages:    []string{DefaultMentorLanguage},
		Education:    []string{},
	}
}

// NewLazyMentor builds the profile created the first time a mentor-role user
// without one is resolved.
func NewLazyMentor(user *User, hourlyRate float64) *Mentor {
	userID := user.ID
	experience := user.Experience
	if experience <= 0 {
		experience = DefaultLazyMentorExperience
	}

	return &Mentor{
		UserID:       &userID,
		Name:         user.FullName,
		Title:        firstNonEmpty(user.Expertise, DefaultMentorTitle),
		Company:      DefaultMentorCompany,
		Avatar:       DefaultMentorAvatar,
		Skills:       skillsFrom(user.Expertise),
		Domain:       firstNonEmpty(user.Domain, DefaultMentorDomain),
		HourlyRate:   hourlyRate,
		Bio:          firstNonEmpty(user.WhyMentor, DefaultMentorBio),
		LinkedIn:     user.LinkedIn,
		GitHub:       user.GitHub,
		Experience:   experience,
		Availability: DefaultMentorAvailability,
		Languages:    []string{DefaultMentorLanguage},
		Education:    []string{},
	}
}

// GeneratedAvatarURL returns an initials avatar for a display name.
func GeneratedAvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + strings.ReplaceAll(url.QueryEscape(name), "+", "%20") + "&background=6366f1&color=fff"
}

func skillsFrom(expertise string) []string {
	if expertise == "" {
		return []string{}
	}

	return []string{expertise}
}

// ApplyUserProfile copies the user fields that a mentor profile mirrors.
func (m *Mentor) ApplyUserProfile(user *User) {
	m.Name = user.FullName
	if user.Expertise != "" {
		m.Title = user.Expertise
	}
	if user.Domain != "" {
		m.Domain = user.Domain
	}
	if user.WhyMentor != "" {
		m.Bio = user.WhyMentor
	}
	m.LinkedIn = user.LinkedIn
	m.GitHub = user.GitHub
	m.Experience = user.Experience
}
