package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLazyMentor_UsesUserFieldsAndDefaults(t *testing.T) {
	user := &User{ID: uuid.New(), FullName: "Ada Lovelace", Role: RoleMentor, Expertise: "Algorithms"}

	mentor := NewLazyMentor(user, 30)

	require.NotNil(t, mentor.UserID)
	assert.Equal(t, user.ID, *mentor.UserID)
	assert.Equal(t, "Ada Lovelace", mentor.Name)
	assert.Equal(t, "Algorithms", mentor.Title)
	assert.Equal(t, DefaultMentorCompany, mentor.Company)
	assert.Equal(t, DefaultMentorAvatar, mentor.Avatar)
	assert.Equal(t, DefaultMentorBio, mentor.Bio)
	assert.Equal(t, DefaultMentorDomain, mentor.Domain)
	assert.Equal(t, []string{"Algorithms"}, mentor.Skills)
	assert.InDelta(t, 30.0, mentor.HourlyRate, 0.001)
	assert.Equal(t, DefaultMentorAvailability, mentor.Availability)
	assert.Equal(t, []string{"English"}, mentor.Languages)
	assert.Empty(t, mentor.Education)
	assert.Equal(t, DefaultLazyMentorExperience, mentor.Experience)
}

func TestNewLazyMentor_FallsBackWhenUserFieldsEmpty(t *testing.T) {
	mentor := NewLazyMentor(&User{ID: uuid.New(), FullName: "Bo"}, 30)

	assert.Equal(t, DefaultMentorTitle, mentor.Title)
	assert.Empty(t, mentor.Skills)
}

func TestNewLazyMentor_KeepsUserExperience(t *testing.T) {
	mentor := NewLazyMentor(&User{ID: uuid.New(), FullName: "Bo", Experience: 7}, 30)

	assert.Equal(t, 7, mentor.Experience)
}

func TestNewRegisteredMentor(t *testing.T) {
	user := &User{
		ID:        uuid.New(),
		FullName:  "Grace Hopper",
		Expertise: "Compilers",
		Domain:    "Software Engineering",
		WhyMentor: "I like teaching",
	}

	mentor := NewRegisteredMentor(user)

	assert.Equal(t, user.ID, *mentor.UserID)
	assert.Equal(t, RegisteredMentorCompany, mentor.Company)
	assert.Equal(t, "https://ui-avatars.com/api/?name=Grace%20Hopper&background=6366f1&color=fff", mentor.Avatar)
	assert.Equal(t, "I like teaching", mentor.Bio)
	assert.Equal(t, "Software Engineering", mentor.Domain)
	assert.Zero(t, mentor.HourlyRate)
}

func TestMergeMentorWithUser(t *testing.T) {
	userID := uuid.New()
	mentor := &Mentor{ID: uuid.New(), UserID: &userID, Name: "Stored Name", Title: "Stored Title", Domain: "Stored", Bio: "Stored bio"}

	t.Run("user fields win", func(t *testing.T) {
		user := &User{ID: userID, FullName: "Live Name", Email: "live@example.com", Expertise: "Go", Domain: "Backend", Experience: 7}

		summary := MergeMentorWithUser(&MentorWithUser{Mentor: mentor, User: user})

		assert.Equal(t, "Live Name", summary.FullName)
		assert.Equal(t, "live@example.com", summary.Email)
		assert.Equal(t, "Go", summary.Expertise)
		assert.Equal(t, "Backend", summary.Domain)
		assert.Equal(t, 7, summary.Experience)
		assert.Equal(t, "Stored bio", summary.WhyMentor)
	})

	t.Run("missing user falls back to profile", func(t *testing.T) {
		summary := MergeMentorWithUser(&MentorWithUser{Mentor: mentor})

		assert.Equal(t, "Stored Name", summary.FullName)
		assert.Equal(t, "Stored Title", summary.Expertise)
		assert.Equal(t, "Stored", summary.Domain)
		assert.Empty(t, summary.Email)
	})

	t.Run("does not mutate the stored profile", func(t *testing.T) {
		MergeMentorWithUser(&MentorWithUser{Mentor: mentor, User: &User{Domain: "Changed"}})

		assert.Equal(t, "Stored", mentor.Domain)
	})
}
