package listing

import "luxe_estate/internal/domain"

var amenityLabels = map[string]string{
	"pool":       "Swimming Pool",
	"gym":        "Gym",
	"garden":     "Garden",
	"balcony":    "Balcony",
	"garage":     "Garage",
	"security":   "Security System",
	"ac":         "Air Conditioning",
	"heating":    "Heating",
	"fireplace":  "Fireplace",
	"hardwood":   "Hardwood Floors",
	"walkin":     "Walk-in Closet",
	"laundry":    "Laundry Room",
	"pets":       "Pet Friendly",
	"accessible": "Wheelchair Accessible",
}

// AmenityLabel returns the display name for an amenity tag, or the tag itself.
func AmenityLabel(tag string) string {
	if l, ok := amenityLabels[tag]; ok {
		return l
	}
	return tag
}

func StatusLabel(s domain.ListingStatus) string {
	switch s {
	case domain.StatusSale:
		return "For Sale"
	case domain.StatusRent:
		return "For Rent"
	case domain.StatusSold:
		return "Sold"
	case domain.StatusRented:
		return "Rented"
	}
	return string(s)
}
