package content_test

import (
	"strings"
	"testing"

	"luxe_estate/internal/content"
	"luxe_estate/internal/domain"
)

func TestFeaturedQueriesAreCappedAndOrdered(t *testing.T) {
	for _, q := range []domain.Query{content.FeaturedPropertiesQuery, content.TestimonialsQuery} {
		if !strings.Contains(q.Text, "featured == true") {
			t.Errorf("%s: expected featured predicate", q.Name)
		}
		if !strings.Contains(q.Text, "order(publishedAt desc) [0...6]") {
			t.Errorf("%s: expected newest-first slice of 6", q.Name)
		}
	}
}

func TestPropertyQueryDeclaresSlug(t *testing.T) {
	missing := content.PropertyQuery.Missing(domain.Params{})
	if len(missing) != 1 || missing[0] != "slug" {
		t.Fatalf("missing = %v, want [slug]", missing)
	}
	if got := content.PropertyQuery.Missing(domain.Params{"slug": "ocean-view-villa"}); len(got) != 0 {
		t.Fatalf("missing = %v, want none", got)
	}
}

func TestQueryNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	all := append([]domain.Query{}, content.SiteQueries...)
	all = append(all, content.MirrorAgentsQuery, content.MirrorPropertiesQuery, content.MirrorTestimonialsQuery)
	for _, q := range all {
		if seen[q.Name] {
			t.Fatalf("duplicate query name %q", q.Name)
		}
		seen[q.Name] = true
	}
}

func TestListQueryDoesNotExpandGallery(t *testing.T) {
	if strings.Contains(content.PropertiesQuery.Text, "gallery") {
		t.Fatal("properties query must not select the gallery")
	}
	if !strings.Contains(content.PropertyQuery.Text, "gallery[]") {
		t.Fatal("property query must select the gallery")
	}
}
