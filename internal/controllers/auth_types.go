package controllers

import (
	"time"

	"github.com/expense-tracker/backend/internal/models"
)

// Credentials are the values of the sign-in form.
type Credentials struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// SignUpRequest holds the values of the sign-up form.
type SignUpRequest struct {
	Credentials
	Name string `json:"name" example:"Jane Doe"` // Display name
}

// Session is a started session.
type Session struct {
	Token     string      `json:"token" example:"1b0d7d9a-8c33-4a2e-9f3d-3c1f5b0de9a2"` // Send as "Authorization: Bearer <token>"
	ExpiresAt time.Time   `json:"expiresAt" example:"2023-04-08T14:30:00Z"`
	User      models.User `json:"user"`
}

type SessionResponse struct {
	Data Session `json:"data"`
}

type UserResponse struct {
	Data models.User `json:"data"`
}
