package models

import "time"

// User is an account record. PasswordHash is persisted with the record but
// must never leave the process through an API response or an admin export —
// use Public() for anything user-facing.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"` // stored lower-cased, unique case-insensitively
	Name         string     `json:"name"`
	PasswordHash string     `json:"password_hash,omitempty"`
	Points       int        `json:"points"`
	AvatarURL    string     `json:"avatar_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastVisit    *time.Time `json:"last_visit,omitempty"`
	VisitCount   int        `json:"visit_count"`
}

// PublicUser is the credential-free view of an account.
type PublicUser struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Points     int        `json:"points"`
	AvatarURL  string     `json:"avatar_url,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	LastVisit  *time.Time `json:"last_visit,omitempty"`
	VisitCount int        `json:"visit_count"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Points:     u.Points,
		AvatarURL:  u.AvatarURL,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
		LastVisit:  u.LastVisit,
		VisitCount: u.VisitCount,
	}
}

// Visit is one entry in the analytics visit log, appended on every
// successful registration or login.
type Visit struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	VisitTime time.Time `json:"visit_time"`
	UserID    string    `json:"user_id"`
}
