package schema

var Property = DocumentType{
	Name:  "property",
	Title: "Property",
	Icon:  "HomeIcon",
	Fields: []Field{
		{Name: "title", Title: "Property Title", Type: String, Rule: required()},
		{Name: "slug", Title: "Slug", Type: Slug, Source: "title", MaxLength: 96, Rule: required()},
		{Name: "propertyType", Title: "Property Type", Type: String, Layout: "dropdown", Rule: required(), Options: []Option{
			{"House", "house"},
			{"Apartment", "apartment"},
			{"Villa", "villa"},
			{"Condo", "condo"},
			{"Townhouse", "townhouse"},
			{"Land", "land"},
			{"Commercial", "commercial"},
		}},
		{Name: "status", Title: "Status", Type: String, Layout: "radio", Rule: required(), Options: []Option{
			{"For Sale", "sale"},
			{"For Rent", "rent"},
			{"Sold", "sold"},
			{"Rented", "rented"},
		}},
		{Name: "price", Title: "Price", Type: Number, Rule: Rule{Required: true, Min: num(0)}},
		{Name: "currency", Title: "Currency", Type: String, Initial: "USD", Options: []Option{
			{"USD ($)", "USD"},
			{"EUR (€)", "EUR"},
			{"GBP (£)", "GBP"},
		}},
		{Name: "featured", Title: "Featured Property", Type: Boolean, Initial: false},
		{Name: "mainImage", Title: "Main Image", Type: ImageType, Hotspot: true, Rule: required(),
			Fields: []Field{altField(true)}},
		{Name: "gallery", Title: "Image Gallery", Type: Array,
			Of: &Field{Type: ImageType, Hotspot: true, Fields: []Field{altField(false)}}},
		{Name: "description", Title: "Description", Type: Text, Rows: 4, Rule: Rule{Required: true, MinLength: 50}},
		{Name: "address", Title: "Address", Type: Object, Fields: []Field{
			{Name: "street", Title: "Street Address", Type: String, Rule: required()},
			{Name: "city", Title: "City", Type: String, Rule: required()},
			{Name: "state", Title: "State/Province", Type: String},
			{Name: "zipCode", Title: "ZIP/Postal Code", Type: String},
			{Name: "country", Title: "Country", Type: String, Rule: required()},
		}},
		{Name: "specifications", Title: "Specifications", Type: Object, Fields: []Field{
			{Name: "bedrooms", Title: "Bedrooms", Type: Number, Rule: Rule{Min: num(0)}},
			{Name: "bathrooms", Title: "Bathrooms", Type: Number, Rule: Rule{Min: num(0)}},
			{Name: "area", Title: "Area (sq ft)", Type: Number, Rule: Rule{Min: num(0)}},
			{Name: "lotSize", Title: "Lot Size (sq ft)", Type: Number, Rule: Rule{Min: num(0)}},
			{Name: "yearBuilt", Title: "Year Built", Type: Number, Rule: Rule{Min: num(1800), MaxCurrentYear: true}},
			{Name: "parking", Title: "Parking Spaces", Type: Number, Rule: Rule{Min: num(0)}},
		}},
		{Name: "amenities", Title: "Amenities", Type: Array, Of: &Field{Type: String}, Options: []Option{
			{"Swimming Pool", "pool"},
			{"Gym", "gym"},
			{"Garden", "garden"},
			{"Balcony", "balcony"},
			{"Garage", "garage"},
			{"Security System", "security"},
			{"Air Conditioning", "ac"},
			{"Heating", "heating"},
			{"Fireplace", "fireplace"},
			{"Hardwood Floors", "hardwood"},
			{"Walk-in Closet", "walkin"},
			{"Laundry Room", "laundry"},
			{"Pet Friendly", "pets"},
			{"Wheelchair Accessible", "accessible"},
		}},
		{Name: "agent", Title: "Listing Agent", Type: Reference, To: []string{"agent"}},
		{Name: "publishedAt", Title: "Published At", Type: Datetime, Initial: "now"},
	},
	Preview: Preview{Title: "title", Subtitle: "address.city", Media: "mainImage"},
}

var Agent = DocumentType{
	Name:  "agent",
	Title: "Agent",
	Icon:  "UserIcon",
	Fields: []Field{
		{Name: "name", Title: "Full Name", Type: String, Rule: required()},
		{Name: "slug", Title: "Slug", Type: Slug, Source: "name", MaxLength: 96, Rule: required()},
		{Name: "title", Title: "Job Title", Type: String},
		{Name: "image", Title: "Photo", Type: ImageType, Hotspot: true, Fields: []Field{altField(false)}},
		{Name: "bio", Title: "Biography", Type: Text, Rows: 4},
		{Name: "email", Title: "Email", Type: String, Rule: Rule{Email: true}},
		{Name: "phone", Title: "Phone", Type: String},
		{Name: "specialties", Title: "Specialties", Type: Array, Of: &Field{Type: String}},
		{Name: "experience", Title: "Years of Experience", Type: Number, Rule: Rule{Min: num(0)}},
		{Name: "socialMedia", Title: "Social Media", Type: Object, Fields: []Field{
			{Name: "facebook", Title: "Facebook", Type: URL},
			{Name: "twitter", Title: "Twitter", Type: URL},
			{Name: "instagram", Title: "Instagram", Type: URL},
			{Name: "linkedin", Title: "LinkedIn", Type: URL},
		}},
	},
	Preview: Preview{Title: "name", Subtitle: "title", Media: "image"},
}

var Testimonial = DocumentType{
	Name:  "testimonial",
	Title: "Testimonial",
	Icon:  "CommentIcon",
	Fields: []Field{
		{Name: "name", Title: "Client Name", Type: String, Rule: required()},
		{Name: "role", Title: "Role/Title", Type: String},
		{Name: "image", Title: "Client Photo", Type: ImageType, Hotspot: true, Fields: []Field{altField(false)}},
		{Name: "content", Title: "Testimonial", Type: Text, Rows: 4, Rule: Rule{Required: true, MinLength: 20}},
		{Name: "rating", Title: "Rating", Type: Number, Initial: 5, Rule: Rule{Required: true, Min: num(1), Max: num(5), Integer: true}},
		{Name: "property", Title: "Related Property", Type: Reference, To: []string{"property"}},
		{Name: "featured", Title: "Featured Testimonial", Type: Boolean, Initial: false},
		{Name: "publishedAt", Title: "Published At", Type: Datetime, Initial: "now"},
	},
	Preview: Preview{Title: "name", Subtitle: "content", Media: "image"},
}

// Types is every document kind, in desk order.
var Types = []DocumentType{Property, Agent, Testimonial}

// Lookup finds a document kind by name.
func Lookup(name string) (DocumentType, bool) {
	for _, t := range Types {
		if t.Name == name {
			return t, true
		}
	}
	return DocumentType{}, false
}
