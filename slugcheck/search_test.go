package slugcheck

import (
	"context"
	"net/http"
	"testing"

	"github.com/kontent-tools/slug-audit/kontent"
)

// isFilterRequest tells equality-filter queries apart from full-scan page
// requests; both land on the delivery items endpoint.
func isFilterRequest(r *http.Request) bool {
	q := r.URL.Query()
	return q.Get("elements.slug") != "" || q.Get("elements.url_slug") != ""
}

func TestSearchUnconfiguredFailsClosed(t *testing.T) {
	finder := &Finder{}

	report := finder.SearchSpecificSlug(context.Background(), "press-kit")

	if report.Success {
		t.Error("unconfigured finder must not report success")
	}
	if report.Error == "" {
		t.Error("unconfigured finder must carry an error message")
	}
	if len(report.Items) != 0 {
		t.Errorf("expected no items, got %+v", report.Items)
	}
}

func TestDuplicatesUnconfiguredFailsClosed(t *testing.T) {
	finder := &Finder{}

	report := finder.FindDuplicateSlugs(context.Background())

	if report.Error == "" {
		t.Error("unconfigured finder must carry an error message")
	}
	if len(report.Duplicates) != 0 {
		t.Errorf("expected no duplicate groups, got %+v", report.Duplicates)
	}
}

func TestSearchUnionDedupesAcrossStrategies(t *testing.T) {
	// Filter queries and the full scan both surface the same variant; it
	// must appear once in the union.
	finder, _ := newTestFinder(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeItemsPage(t, w, []kontent.ContentItem{pageItem("press", "en", "press-kit")}, "")
	}))

	report := finder.SearchSpecificSlug(context.Background(), "press-kit")

	if !report.Success {
		t.Fatalf("search failed: %s", report.Error)
	}
	if len(report.Items) != 1 {
		t.Fatalf("expected the variant once after dedup, got %d: %+v", len(report.Items), report.Items)
	}
	if got := report.Items[0]; got.Codename != "press" || got.Language != "en" {
		t.Errorf("unexpected item in union: %+v", got)
	}
	if report.DirectFilter == nil || len(report.DirectFilter.Items) != 1 {
		t.Errorf("direct filter strategy should have found the item: %+v", report.DirectFilter)
	}
	if report.FullScan == nil || report.FullScan.ExactMatches != 1 {
		t.Errorf("full scan strategy should have found the item: %+v", report.FullScan)
	}
}

func TestSearchSucceedsWhenOnlyScanFinds(t *testing.T) {
	finder, _ := newTestFinder(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isFilterRequest(r) {
			http.Error(w, "filters unsupported", http.StatusInternalServerError)
			return
		}
		writeItemsPage(t, w, []kontent.ContentItem{pageItem("press", "en", "press-kit")}, "")
	}))

	report := finder.SearchSpecificSlug(context.Background(), "press-kit")

	if !report.Success {
		t.Fatalf("search must succeed on full-scan results alone: %s", report.Error)
	}
	if len(report.Items) != 1 {
		t.Fatalf("expected 1 item from the scan, got %d", len(report.Items))
	}
	if report.DirectFilter.Error == "" {
		t.Error("direct filter strategy should report that all its queries failed")
	}
}

func TestSearchRejectsUntrustedFilterResults(t *testing.T) {
	finder, _ := newTestFinder(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isFilterRequest(r) {
			// A remote that ignores the filter and returns junk.
			items := []kontent.ContentItem{
				pageItem("other", "en", "different-slug"),
				pageItem("news_post", "en", "press-kit"),
			}
			items[1].System.Type = "article"
			writeItemsPage(t, w, items, "")
			return
		}
		writeItemsPage(t, w, nil, "")
	}))

	report := finder.SearchSpecificSlug(context.Background(), "press-kit")

	if len(report.DirectFilter.Items) != 0 {
		t.Errorf("client-side verification must drop wrong-slug and non-page results, got %+v",
			report.DirectFilter.Items)
	}
	if len(report.Items) != 0 {
		t.Errorf("expected empty union, got %+v", report.Items)
	}
}

func TestSearchAllStrategiesFailing(t *testing.T) {
	finder, _ := newTestFinder(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))

	report := finder.SearchSpecificSlug(context.Background(), "press-kit")

	if report.Success {
		t.Error("search must fail when every strategy failed and nothing was found")
	}
	if report.Error == "" {
		t.Error("expected a combined error message")
	}
}

func TestSearchSkipsManagementWithoutKey(t *testing.T) {
	finder, _ := newTestFinder(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeItemsPage(t, w, nil, "")
	}))

	report := finder.SearchSpecificSlug(context.Background(), "press-kit")

	if report.Management != nil {
		t.Errorf("management strategy must be skipped without a key, got %+v", report.Management)
	}
}
