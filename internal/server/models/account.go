// Package models defines the server-side data model.
package models

import "time"

// Account is a registered user's durable identity and credential record.
//
// ID is an opaque identifier assigned at creation and never reused: a new
// registration with a previously deleted email gets a fresh ID. The password
// hash is a bcrypt digest and must never appear in responses or logs, hence
// the `json:"-"` tag. IsAdmin is set only by out-of-band provisioning (see
// the seed package), never by user-facing endpoints.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
