// Package models defines the server-side row types for the rental domain.
package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	UserStatusActive  = "active"
	UserStatusBlocked = "blocked"
)

type User struct {
	ID           string
	Name         string
	Email        string
	City         string
	Gender       string
	CNIC         string
	Role         string
	Status       string
	PasswordSalt []byte
	PasswordHash []byte
	CreatedAt    time.Time
}

// UserDetailsPatch carries the optional fields of an admin edit; nil means
// leave unchanged.
type UserDetailsPatch struct {
	Status *string `json:"status"`
	Name   *string `json:"name"`
	CNIC   *string `json:"cnic"`
	Gender *string `json:"gender"`
}
