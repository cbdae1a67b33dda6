// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleLearner is a user who books sessions and messages mentors.
	RoleLearner Role = "learner"
	// RoleMentor is a user backed by a Mentor profile.
	RoleMentor Role = "mentor"
	// RoleAdmin can seed mentors and roadmaps.
	RoleAdmin Role = "admin"
)

// legacyRoles maps the role names older clients still send.
var legacyRoles = map[string]Role{
	"student": RoleLearner,
	"teacher": RoleMentor,
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleLearner, RoleMentor, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole accepts both current and legacy role names. An empty string
// defaults to learner.
func ParseRole(s string) (Role, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RoleLearner, true
	}
	if legacy, ok := legacyRoles[s]; ok {
		return legacy, true
	}

	role := Role(s)

	return role, role.IsValid()
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
