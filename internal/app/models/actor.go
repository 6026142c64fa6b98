package models

import "medilink-service/internal/pkg/constvars"

// Actor is the authenticated identity resolved by the middleware from the
// bearer token: an opaque party ID plus an explicit role tag.
type Actor struct {
	ID   string
	Role string
}

func (a *Actor) IsDoctor() bool  { return a.Role == constvars.RoleDoctor }
func (a *Actor) IsPatient() bool { return a.Role == constvars.RolePatient }
func (a *Actor) IsAdmin() bool   { return a.Role == constvars.RoleAdmin }
