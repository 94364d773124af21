package domain

import "time"

type Testimonial struct {
	ID          string       `json:"_id"`
	Name        string       `json:"name"`
	Role        string       `json:"role,omitempty"`
	Image       *Image       `json:"image,omitempty"`
	Content     string       `json:"content"`
	Rating      int          `json:"rating"`
	Property    *PropertyRef `json:"property,omitempty"`
	Featured    bool         `json:"featured,omitempty"`
	PublishedAt *time.Time   `json:"publishedAt,omitempty"`
}

type TestimonialDocument struct {
	Testimonial
	PropertyID string     `json:"propertyId,omitempty"`
	UpdatedAt  *time.Time `json:"_updatedAt,omitempty"`
}
