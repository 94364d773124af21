package schema_test

import (
	"strings"
	"testing"
	"time"

	"luxe_estate/internal/schema"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func validProperty() map[string]any {
	return map[string]any{
		"_id":          "p-1",
		"title":        "Ocean View Villa",
		"slug":         map[string]any{"current": "ocean-view-villa"},
		"propertyType": "villa",
		"status":       "sale",
		"price":        450000.0,
		"currency":     "USD",
		"featured":     true,
		"mainImage": map[string]any{
			"asset": map[string]any{"_ref": "image-abc-1000x500-jpg"},
			"alt":   "Villa at dusk",
		},
		"description": strings.Repeat("Sunlit rooms facing the sea. ", 3),
		"address": map[string]any{
			"street": "1 Shore Rd", "city": "Malibu", "country": "USA",
		},
		"specifications": map[string]any{"bedrooms": 4.0, "yearBuilt": 2001.0},
		"amenities":      []any{"pool", "garden"},
		"publishedAt":    "2025-06-01T10:00:00.000Z",
	}
}

func paths(vs []schema.Violation) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Path)
	}
	return out
}

func TestValidate_ValidProperty(t *testing.T) {
	if vs := schema.Validate(schema.Property, validProperty(), now); len(vs) != 0 {
		t.Fatalf("unexpected violations: %v", vs)
	}
}

func TestValidate_PropertyRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m map[string]any)
		path   string
	}{
		{"missing title", func(m map[string]any) { delete(m, "title") }, "title"},
		{"empty slug", func(m map[string]any) { m["slug"] = map[string]any{"current": ""} }, "slug"},
		{"negative price", func(m map[string]any) { m["price"] = -1.0 }, "price"},
		{"unknown type", func(m map[string]any) { m["propertyType"] = "castle" }, "propertyType"},
		{"short description", func(m map[string]any) { m["description"] = "Too short." }, "description"},
		{"main image alt", func(m map[string]any) {
			m["mainImage"] = map[string]any{"asset": map[string]any{"_ref": "image-a-1x1-jpg"}}
		}, "mainImage.alt"},
		{"no main image", func(m map[string]any) { delete(m, "mainImage") }, "mainImage"},
		{"future year built", func(m map[string]any) {
			m["specifications"] = map[string]any{"yearBuilt": 2031.0}
		}, "specifications.yearBuilt"},
		{"ancient year built", func(m map[string]any) {
			m["specifications"] = map[string]any{"yearBuilt": 1700.0}
		}, "specifications.yearBuilt"},
		{"missing city", func(m map[string]any) {
			m["address"] = map[string]any{"street": "1 Shore Rd", "country": "USA"}
		}, "address.city"},
		{"unknown amenity", func(m map[string]any) { m["amenities"] = []any{"pool", "helipad"} }, "amenities[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validProperty()
			tt.mutate(doc)
			got := paths(schema.Validate(schema.Property, doc, now))
			if len(got) != 1 || got[0] != tt.path {
				t.Fatalf("violations = %v, want [%s]", got, tt.path)
			}
		})
	}
}

func TestValidate_ProjectedSlugString(t *testing.T) {
	doc := validProperty()
	doc["slug"] = "ocean-view-villa"
	if vs := schema.Validate(schema.Property, doc, now); len(vs) != 0 {
		t.Fatalf("unexpected violations: %v", vs)
	}
}

func TestValidate_TestimonialRating(t *testing.T) {
	doc := map[string]any{
		"name":    "Dana",
		"content": "They found us the perfect home in two weeks.",
		"rating":  6.0,
	}
	got := paths(schema.Validate(schema.Testimonial, doc, now))
	if len(got) != 1 || got[0] != "rating" {
		t.Fatalf("violations = %v, want [rating]", got)
	}

	doc["rating"] = 4.5
	got = paths(schema.Validate(schema.Testimonial, doc, now))
	if len(got) != 1 || got[0] != "rating" {
		t.Fatalf("violations = %v, want [rating]", got)
	}
}

func TestValidate_AgentEmailAndSocial(t *testing.T) {
	doc := map[string]any{
		"name":        "Sam Reyes",
		"slug":        "sam-reyes",
		"email":       "not-an-email",
		"socialMedia": map[string]any{"linkedin": "linkedin.com/in/sam"},
	}
	got := paths(schema.Validate(schema.Agent, doc, now))
	if len(got) != 2 || got[0] != "email" || got[1] != "socialMedia.linkedin" {
		t.Fatalf("violations = %v", got)
	}
}

func TestStudio(t *testing.T) {
	s := schema.NewStudio("38fw45r3", "production")
	if s.BasePath != "/studio" || len(s.Desk) != 3 || len(s.Types) != 3 {
		t.Fatalf("unexpected studio: %+v", s)
	}
	if _, ok := schema.Lookup("agent"); !ok {
		t.Fatal("agent kind not registered")
	}
	if f, ok := schema.Property.Field("currency"); !ok || f.Initial != "USD" {
		t.Fatalf("currency field = %+v", f)
	}
}
