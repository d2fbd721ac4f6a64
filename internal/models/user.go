package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the profile document created when an account signs up.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey" example:"9b6e3e7d-0f6d-4d3b-8b4e-1c8a9d4c2e11"`
	Email        string    `json:"email" gorm:"uniqueIndex" example:"jane@example.com"`
	Name         string    `json:"name" example:"Jane"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"createdAt" example:"2023-03-01T10:00:00Z"`
}

// BeforeCreate assigns a UUID to the user if none is set and
// normalizes the email address.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)
	return nil
}

func (u *User) AfterFind(_ *gorm.DB) error {
	u.CreatedAt = u.CreatedAt.In(time.UTC)
	return nil
}

// Session is an authenticated session. The token is handed to the client.
type Session struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"index"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the session is no longer valid at t.
func (s Session) Expired(t time.Time) bool {
	return !t.Before(s.ExpiresAt)
}

func (s *Session) AfterFind(_ *gorm.DB) error {
	s.ExpiresAt = s.ExpiresAt.In(time.UTC)
	s.CreatedAt = s.CreatedAt.In(time.UTC)
	return nil
}
