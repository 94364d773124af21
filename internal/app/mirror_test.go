package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"luxe_estate/internal/app"
	"luxe_estate/internal/domain"
)

var errUpsert = errors.New("upsert failed")

var mirrorFixtures = map[string]string{
	"mirror-agents": `[{"_id":"a-1","name":"Jane Doe","slug":"jane-doe","email":"jane@luxe.example"}]`,
	"mirror-properties": `[
	  {"_id":"p-1","title":"Ocean View Villa","slug":"ocean-view-villa","propertyType":"villa","status":"sale",
	   "price":450000,"currency":"USD","featured":true,
	   "mainImage":{"asset":{"_id":"image-abc-1000x500-jpg","url":"https://cdn.example/abc.jpg"},"alt":"Villa at dusk"},
	   "description":"` + longText + `",
	   "address":{"street":"1 Shore Rd","city":"Malibu","country":"USA"},
	   "agentId":"a-1","publishedAt":"2025-06-01T10:00:00Z"},
	  {"_id":"p-2","title":"Draft Loft","slug":"draft-loft","propertyType":"castle","status":"rent","price":2500,
	   "description":"too short"}
	]`,
	"mirror-testimonials": `[{"_id":"t-1","name":"Sam","content":"` + longText + `","rating":5,"featured":true,"propertyId":"p-1"}]`,
}

var longText = strings.Repeat("Bright rooms with sea views. ", 3)

func TestMirror_Run(t *testing.T) {
	store := newFakeStore(mirrorFixtures)
	repo := &fakeRepo{}
	svc := app.NewMirrorService(store, repo, nil, 2)

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(repo.agents) != 1 || len(repo.properties) != 2 || len(repo.testimonials) != 1 {
		t.Fatalf("unexpected upserts: %d agents, %d properties, %d testimonials",
			len(repo.agents), len(repo.properties), len(repo.testimonials))
	}
	pr := report["property"]
	if pr == nil || pr.Fetched != 2 || pr.Upserted != 2 || pr.Invalid != 1 {
		t.Fatalf("unexpected property report: %+v", pr)
	}
	if report["agent"].Invalid != 0 || report["testimonial"].Invalid != 0 {
		t.Fatalf("valid documents flagged: %+v %+v", report["agent"], report["testimonial"])
	}

	var villa domain.PropertyDocument
	for _, p := range repo.properties {
		if p.ID == "p-1" {
			villa = p
		}
	}
	if villa.AgentID != "a-1" || villa.Address.City != "Malibu" || villa.MainImage == nil {
		t.Fatalf("decoded document lost fields: %+v", villa)
	}
	if repo.testimonials[0].PropertyID != "p-1" {
		t.Fatalf("testimonial property ref = %q", repo.testimonials[0].PropertyID)
	}
}

func TestMirror_KindsInDependencyOrder(t *testing.T) {
	store := newFakeStore(mirrorFixtures)
	repo := &fakeRepo{}
	if _, err := app.NewMirrorService(store, repo, nil, 1).Run(context.Background()); err != nil {
		t.Fatalf("err: %v", err)
	}
	want := []string{"agent", "property", "property", "testimonial"}
	if strings.Join(repo.order, ",") != strings.Join(want, ",") {
		t.Fatalf("order = %v, want %v", repo.order, want)
	}
}

func TestMirror_UpsertFailureIsReported(t *testing.T) {
	store := newFakeStore(mirrorFixtures)
	repo := &fakeRepo{failID: "p-1"}
	report, err := app.NewMirrorService(store, repo, nil, 2).Run(context.Background())
	if !errors.Is(err, errUpsert) {
		t.Fatalf("expected upsert error, got %v", err)
	}
	if report["property"].Failed != 1 || report["property"].Upserted != 1 {
		t.Fatalf("unexpected report: %+v", report["property"])
	}
	// later kinds still run
	if len(repo.testimonials) != 1 {
		t.Fatalf("testimonials not mirrored after a failed property")
	}
}

func TestMirror_FetchFailure(t *testing.T) {
	store := newFakeStore(mirrorFixtures)
	store.errs["mirror-agents"] = domain.ErrUnavailable
	repo := &fakeRepo{}
	_, err := app.NewMirrorService(store, repo, nil, 2).Run(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if len(repo.properties) != 2 {
		t.Fatalf("properties should still be mirrored")
	}
}

func TestMirror_EvictsSiteCache(t *testing.T) {
	store := newFakeStore(mirrorFixtures)
	cache := &fakeCache{}
	_ = cache.Set(context.Background(), "content:properties", []string{"stale"}, 60)

	if _, err := app.NewMirrorService(store, &fakeRepo{}, cache, 2).Run(context.Background()); err != nil {
		t.Fatalf("err: %v", err)
	}
	if _, ok := cache.store["content:properties"]; ok {
		t.Fatalf("cached property list survived the mirror run")
	}
	var sawDetail bool
	for _, k := range cache.dels {
		if strings.HasPrefix(k, "content:property:") {
			sawDetail = true
		}
	}
	if !sawDetail {
		t.Fatalf("detail cache for mirrored property not evicted: %v", cache.dels)
	}
}

func TestMirror_PrunesDocumentsGoneUpstream(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(mirrorFixtures)
	repo := &fakeRepo{}
	cache := &fakeCache{}
	svc := app.NewMirrorService(store, repo, cache, 2)

	if _, err := svc.Run(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if len(repo.rows["property"]) != 2 {
		t.Fatalf("expected 2 live properties, got %v", repo.rows["property"])
	}

	// both listings unpublished upstream
	store.results["mirror-properties"] = `[]`
	cache.dels = nil
	report, err := svc.Run(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if report["property"].Pruned != 2 {
		t.Fatalf("pruned = %d, want 2", report["property"].Pruned)
	}
	if len(repo.rows["property"]) != 0 {
		t.Fatalf("stale properties left in the read model: %v", repo.rows["property"])
	}
	if len(repo.rows["agent"]) != 1 || len(repo.rows["testimonial"]) != 1 {
		t.Fatalf("unchanged kinds lost rows: %v", repo.rows)
	}
	var evicted int
	for _, k := range cache.dels {
		if strings.HasPrefix(k, "content:property:") {
			evicted++
		}
	}
	if evicted != 2 {
		t.Fatalf("detail cache keys evicted = %d, want 2 (%v)", evicted, cache.dels)
	}
}

func TestMirror_NoPruneAfterFetchFailure(t *testing.T) {
	store := newFakeStore(mirrorFixtures)
	repo := &fakeRepo{}
	svc := app.NewMirrorService(store, repo, nil, 2)
	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}

	store.errs["mirror-properties"] = domain.ErrUnavailable
	repo.pruned = nil
	if _, err := svc.Run(context.Background()); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	for _, k := range repo.pruned {
		if k == "property" {
			t.Fatal("properties pruned after a failed fetch")
		}
	}
	if len(repo.rows["property"]) != 2 {
		t.Fatalf("read model changed after a failed fetch: %v", repo.rows["property"])
	}
}

func TestMirror_NoPruneAfterUpsertFailure(t *testing.T) {
	store := newFakeStore(mirrorFixtures)
	repo := &fakeRepo{failID: "p-1"}
	if _, err := app.NewMirrorService(store, repo, nil, 2).Run(context.Background()); !errors.Is(err, errUpsert) {
		t.Fatalf("expected upsert error, got %v", err)
	}
	if strings.Join(repo.pruned, ",") != "agent,testimonial" {
		t.Fatalf("pruned kinds = %v, want agent and testimonial only", repo.pruned)
	}
}

func TestMirrorReport_Total(t *testing.T) {
	store := newFakeStore(mirrorFixtures)
	report, err := app.NewMirrorService(store, &fakeRepo{}, nil, 2).Run(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	got := report.Total()
	want := app.KindReport{Fetched: 4, Upserted: 4, Invalid: 1}
	if got != want {
		t.Fatalf("Total() = %+v, want %+v", got, want)
	}
}
