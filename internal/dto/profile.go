package dto

import "github.com/bancotempo/timebank-backend/internal/models"

type RegisterProfileRequest struct {
	Name  string `json:"name"`
	CPF   string `json:"cpf,omitempty"`
	Phone string `json:"phone,omitempty"`
	Zone  string `json:"zone,omitempty"`
	Role  string `json:"role,omitempty"`
}

type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Zone      *string `json:"zone,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// ProfileResponse is the owner's view. CPF is decrypted then masked; it is
// never returned in full.
type ProfileResponse struct {
	UID             string      `json:"uid"`
	Name            string      `json:"name"`
	AvatarURL       string      `json:"avatarUrl,omitempty"`
	TimeBalance     float64     `json:"timeBalance"`
	Zone            string      `json:"zone,omitempty"`
	MaskedCPF       string      `json:"maskedCpf,omitempty"`
	Phone           string      `json:"phone,omitempty"`
	Role            models.Role `json:"role"`
	ExperienceHours float64     `json:"experienceHours"`
}

// PublicProfile is what other members see on service pages.
type PublicProfile struct {
	UID             string  `json:"uid"`
	Name            string  `json:"name"`
	AvatarURL       string  `json:"avatarUrl,omitempty"`
	Zone            string  `json:"zone,omitempty"`
	TimeBalance     float64 `json:"timeBalance"`
	ExperienceHours float64 `json:"experienceHours"`
}
