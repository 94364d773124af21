package domain

import "time"

type Agent struct {
	ID          string       `json:"_id"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug,omitempty"`
	Title       string       `json:"title,omitempty"`
	Image       *Image       `json:"image,omitempty"`
	Bio         string       `json:"bio,omitempty"`
	Email       string       `json:"email,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Specialties []string     `json:"specialties,omitempty"`
	Experience  *float64     `json:"experience,omitempty"` // years
	SocialMedia *SocialMedia `json:"socialMedia,omitempty"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

type AgentDocument struct {
	Agent
	UpdatedAt *time.Time `json:"_updatedAt,omitempty"`
}
