// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Plan represents the user's subscription tier.
type Plan string

const (
	PlanGratuito  Plan = "gratuito"
	PlanEssencial Plan = "essencial"
	PlanPremium   Plan = "premium"
)

// ReportType represents the user's configured report cadence.
type ReportType string

const (
	ReportTypeNenhum  ReportType = "nenhum"
	ReportTypeSemanal ReportType = "semanal"
	ReportTypeMensal  ReportType = "mensal"
)

// User represents a user of the finance tracker.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Plan         Plan
	ReportType   ReportType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Plan:         PlanGratuito,
		ReportType:   ReportTypeNenhum,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
