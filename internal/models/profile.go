package models

import (
	"time"
)

type Role string

const (
	RoleStandard     Role = "standard"
	RoleOrganization Role = "organization"
	RoleAdmin        Role = "admin"
)

// Profile is the server-authoritative record for a member. TimeBalance here
// is the source of truth for the request workflow; the client-style ledger
// is only a local projection of it.
//
// CPF and Phone hold KMS ciphertext at rest and are never returned raw.
type Profile struct {
	UID             string    `firestore:"uid" json:"uid"`
	Name            string    `firestore:"name" json:"name"`
	AvatarURL       string    `firestore:"avatarUrl" json:"avatarUrl,omitempty"`
	TimeBalance     float64   `firestore:"timeBalance" json:"timeBalance"`
	Zone            string    `firestore:"zone" json:"zone,omitempty"`
	CPF             string    `firestore:"cpf,omitempty" json:"-"`
	Phone           string    `firestore:"phone,omitempty" json:"-"`
	Role            Role      `firestore:"role" json:"role"`
	ExperienceHours float64   `firestore:"experienceHours" json:"experienceHours"`
	CreatedAt       time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `firestore:"updatedAt" json:"updatedAt"`
}
