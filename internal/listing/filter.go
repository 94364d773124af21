// Package listing holds the pure helpers behind the property grid: the
// type/status filter and the display formatting shared by every page.
package listing

import "luxe_estate/internal/domain"

// All disables a filter dimension.
const All = "all"

type Criteria struct {
	Type   string
	Status string
}

func DefaultCriteria() Criteria { return Criteria{Type: All, Status: All} }

type Option struct {
	Value string
	Label string
}

var TypeOptions = []Option{
	{All, "All Types"},
	{string(domain.TypeHouse), "House"},
	{string(domain.TypeApartment), "Apartment"},
	{string(domain.TypeVilla), "Villa"},
	{string(domain.TypeCondo), "Condo"},
	{string(domain.TypeTownhouse), "Townhouse"},
	{string(domain.TypeLand), "Land"},
	{string(domain.TypeCommercial), "Commercial"},
}

var StatusOptions = []Option{
	{All, "All Status"},
	{string(domain.StatusSale), "For Sale"},
	{string(domain.StatusRent), "For Rent"},
}

// ParseCriteria maps raw selections onto the known options; anything else is All.
func ParseCriteria(typ, status string) Criteria {
	return Criteria{Type: pick(TypeOptions, typ), Status: pick(StatusOptions, status)}
}

func pick(opts []Option, v string) string {
	for _, o := range opts {
		if o.Value == v {
			return v
		}
	}
	return All
}

// Filter returns the properties matching both dimensions of c. It always
// works from the full list it is given and never modifies it.
func Filter(all []domain.Property, c Criteria) []domain.Property {
	out := make([]domain.Property, 0, len(all))
	for _, p := range all {
		if c.Type != "" && c.Type != All && string(p.PropertyType) != c.Type {
			continue
		}
		if c.Status != "" && c.Status != All && string(p.Status) != c.Status {
			continue
		}
		out = append(out, p)
	}
	return out
}
