//go:build integration || !unit

package httpserver_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

const visibleCardsJS = `() => Array.from(document.querySelectorAll('#property-grid .property-card'))
  .filter(c => !c.hidden)
  .map(c => c.dataset.type + '/' + c.dataset.status)
  .join(',')`

// TestFilterScript_RecomputesVisibility drives static/filter.js in a headless
// browser against the server-rendered list.
func TestFilterScript_RecomputesVisibility(t *testing.T) {
	h, _ := testServer(t, newStore())
	ts := httptest.NewServer(h)
	defer ts.Close()

	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		t.Skipf("no headless browser available: %v", err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		t.Skipf("connect browser: %v", err)
	}
	defer func() { _ = browser.Close() }()

	page := browser.Timeout(30 * time.Second).MustPage(ts.URL + "/properties").MustWaitLoad()

	if got := page.MustEval(visibleCardsJS).String(); got != "villa/sale,apartment/rent,house/sale" {
		t.Fatalf("initial cards = %q", got)
	}

	page.MustElement(`#property-filters select[name="type"]`).MustSelect("Villa")
	if got := page.MustEval(visibleCardsJS).String(); got != "villa/sale" {
		t.Fatalf("after type=villa cards = %q", got)
	}
	if got := page.MustElement("#result-count").MustText(); got != "1" {
		t.Fatalf("result count = %q, want 1", got)
	}
	if info := page.MustInfo(); !strings.HasSuffix(info.URL, "?type=villa") {
		t.Fatalf("url = %q, want the filter reflected in the query", info.URL)
	}

	// conjunction with no match shows the empty message
	page.MustElement(`#property-filters select[name="status"]`).MustSelect("For Rent")
	if got := page.MustEval(visibleCardsJS).String(); got != "" {
		t.Fatalf("villa for rent cards = %q, want none", got)
	}
	if page.MustEval(`() => document.getElementById('no-results').hidden`).Bool() {
		t.Fatal("empty-result message stayed hidden")
	}

	page.MustElement(`#property-filters select[name="type"]`).MustSelect("All Types")
	if got := page.MustEval(visibleCardsJS).String(); got != "apartment/rent" {
		t.Fatalf("all types for rent cards = %q", got)
	}
}
