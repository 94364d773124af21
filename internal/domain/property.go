package domain

import "time"

type PropertyType string

const (
	TypeHouse      PropertyType = "house"
	TypeApartment  PropertyType = "apartment"
	TypeVilla      PropertyType = "villa"
	TypeCondo      PropertyType = "condo"
	TypeTownhouse  PropertyType = "townhouse"
	TypeLand       PropertyType = "land"
	TypeCommercial PropertyType = "commercial"
)

type ListingStatus string

const (
	StatusSale   ListingStatus = "sale"
	StatusRent   ListingStatus = "rent"
	StatusSold   ListingStatus = "sold"
	StatusRented ListingStatus = "rented"
)

// Property is a listing as projected by the content queries. Fields a query
// does not select stay at their zero value.
type Property struct {
	ID             string         `json:"_id"`
	CreatedAt      *time.Time     `json:"_createdAt,omitempty"`
	Title          string         `json:"title"`
	Slug           string         `json:"slug"`
	PropertyType   PropertyType   `json:"propertyType"`
	Status         ListingStatus  `json:"status"`
	Price          float64        `json:"price"`
	Currency       string         `json:"currency,omitempty"`
	Featured       bool           `json:"featured,omitempty"`
	MainImage      *Image         `json:"mainImage,omitempty"`
	Gallery        []Image        `json:"gallery,omitempty"`
	Description    string         `json:"description,omitempty"`
	Address        Address        `json:"address"`
	Specifications Specifications `json:"specifications"`
	Amenities      []string       `json:"amenities,omitempty"`
	Agent          *Agent         `json:"agent,omitempty"`
	PublishedAt    *time.Time     `json:"publishedAt,omitempty"`
}

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// Specifications holds optional figures; nil means "not provided", which is
// rendered differently from zero.
type Specifications struct {
	Bedrooms  *float64 `json:"bedrooms,omitempty"`
	Bathrooms *float64 `json:"bathrooms,omitempty"`
	Area      *float64 `json:"area,omitempty"`
	LotSize   *float64 `json:"lotSize,omitempty"`
	YearBuilt *int     `json:"yearBuilt,omitempty"`
	Parking   *float64 `json:"parking,omitempty"`
}

// PropertyRef is the one-level expansion of a testimonial's property reference.
type PropertyRef struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// SlugEntry is one row of the slug enumeration query.
type SlugEntry struct {
	Slug string `json:"slug"`
}

// PropertyDocument is a full property as exported for mirroring; the agent is
// carried as a reference id instead of an expansion.
type PropertyDocument struct {
	Property
	AgentID   string     `json:"agentId,omitempty"`
	UpdatedAt *time.Time `json:"_updatedAt,omitempty"`
}
