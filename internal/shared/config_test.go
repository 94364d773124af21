package shared_test

import (
	"testing"
	"time"

	"luxe_estate/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SANITY_PROJECT_ID", "NEXT_PUBLIC_SANITY_PROJECT_ID", "SANITY_DATASET",
		"NEXT_PUBLIC_SANITY_DATASET", "CONTENT_BACKEND", "REVALIDATE_SECONDS", "SANITY_USE_CDN", "STUDIO_URL"} {
		t.Setenv(k, "")
	}
	c := shared.Load()
	if c.ProjectID != "38fw45r3" || c.Dataset != "production" {
		t.Fatalf("unexpected project/dataset: %q/%q", c.ProjectID, c.Dataset)
	}
	if c.Revalidate != 60*time.Second {
		t.Fatalf("revalidate = %v, want 60s", c.Revalidate)
	}
	if c.Backend != shared.BackendAPI || !c.UseCDN {
		t.Fatalf("unexpected backend/cdn: %q %v", c.Backend, c.UseCDN)
	}
	if c.StudioURL != "" {
		t.Fatalf("studio url = %q, want empty", c.StudioURL)
	}
}

func TestLoad_PublicFallbackNames(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "")
	t.Setenv("NEXT_PUBLIC_SANITY_PROJECT_ID", "abc123")
	t.Setenv("SANITY_DATASET", "")
	t.Setenv("NEXT_PUBLIC_SANITY_DATASET", "staging")
	c := shared.Load()
	if c.ProjectID != "abc123" || c.Dataset != "staging" {
		t.Fatalf("unexpected project/dataset: %q/%q", c.ProjectID, c.Dataset)
	}
}

func TestLoad_UnknownBackendFallsBack(t *testing.T) {
	t.Setenv("CONTENT_BACKEND", "postgres")
	if c := shared.Load(); c.Backend != shared.BackendAPI {
		t.Fatalf("backend = %q, want api", c.Backend)
	}
}
