package kontent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

// testAPI points a fresh API at the given fixture server, for both the
// delivery and the management surface.
func testAPI(t *testing.T, srv *httptest.Server, deliveryKey string, managementKey string) *API {
	t.Helper()

	api, err := NewAPI("test-project", deliveryKey, managementKey)
	if err != nil {
		t.Fatalf("NewAPI failed: %v", err)
	}

	base, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("couldn't parse test server URL: %v", err)
	}
	api.DeliveryURI = base
	api.ManagementURI = base
	api.Client = srv.Client()
	api.Limiter = nil

	return api
}

func TestNewAPIRequiresProjectID(t *testing.T) {
	if _, err := NewAPI("", "", ""); err == nil {
		t.Fatal("expected error for empty project ID, got nil")
	}
}

func TestGetItemsRequestShape(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"items": [], "pagination": {"skip": 0, "limit": 1000, "count": 0}}`))
	}))
	defer srv.Close()

	api := testAPI(t, srv, "sekrit", "")

	_, err := api.GetItems(context.Background(), ItemsQuery{
		Type:     "page",
		Elements: []string{"url_slug", "slug", "system"},
		Language: "de",
		Skip:     2000,
		Limit:    1000,
	})
	if err != nil {
		t.Fatalf("GetItems failed: %v", err)
	}

	if gotPath != "/test-project/items" {
		t.Errorf("wrong path: %s", gotPath)
	}
	if gotAuth != "Bearer sekrit" {
		t.Errorf("wrong Authorization header: %q", gotAuth)
	}
	for key, want := range map[string]string{
		"system.type": "page",
		"elements":    "url_slug,slug,system",
		"language":    "de",
		"skip":        "2000",
		"limit":       "1000",
	} {
		if got := gotQuery.Get(key); got != want {
			t.Errorf("query %s = %q, want %q", key, got, want)
		}
	}
}

func TestGetItemsNoAuthHeaderWithoutKey(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"items": [], "pagination": {}}`))
	}))
	defer srv.Close()

	api := testAPI(t, srv, "", "")

	if _, err := api.GetItems(context.Background(), ItemsQuery{Limit: 10}); err != nil {
		t.Fatalf("GetItems failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header for public project, got %q", gotAuth)
	}
}

func TestGetItemsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	api := testAPI(t, srv, "", "")

	if _, err := api.GetItems(context.Background(), ItemsQuery{}); err == nil {
		t.Fatal("expected error for 500 response, got nil")
	}
}

func TestFilterURLEncodesDynamicField(t *testing.T) {
	api, err := NewAPI("test-project", "", "")
	if err != nil {
		t.Fatalf("NewAPI failed: %v", err)
	}

	raw, err := api.FilterURL(FilterQuery{
		Type:  "page",
		Field: "url_slug",
		Value: "press-kit",
		Limit: 100,
	})
	if err != nil {
		t.Fatalf("FilterURL failed: %v", err)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("FilterURL produced unparseable URL: %v", err)
	}
	q := u.Query()

	if got := q.Get("elements.url_slug"); got != "press-kit" {
		t.Errorf("elements.url_slug = %q, want press-kit", got)
	}
	if got := q.Get("depth"); got != "0" {
		t.Errorf("depth = %q, want 0 (must not be omitted)", got)
	}
	if got := q.Get("system.type"); got != "page" {
		t.Errorf("system.type = %q, want page", got)
	}
}

func TestFilterURLOmitsTypeWhenUnset(t *testing.T) {
	api, err := NewAPI("test-project", "", "")
	if err != nil {
		t.Fatalf("NewAPI failed: %v", err)
	}

	raw, err := api.FilterURL(FilterQuery{Field: "slug", Value: "x", Limit: 100})
	if err != nil {
		t.Fatalf("FilterURL failed: %v", err)
	}
	if strings.Contains(raw, "system.type") {
		t.Errorf("system.type should be absent from %s", raw)
	}
}

func TestListVariantsFollowsContinuation(t *testing.T) {
	var continuations []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cont := r.Header.Get("x-continuation")
		continuations = append(continuations, cont)

		if cont == "" {
			w.Write([]byte(`{
				"variants": [{"item": {"id": "1", "name": "First"}, "language": {"id": "l1"}, "elements": []}],
				"pagination": {"continuation_token": "tok-2", "next_page": "more"}
			}`))
			return
		}
		w.Write([]byte(`{
			"variants": [{"item": {"id": "2", "name": "Second"}, "language": {"id": "l1"}, "elements": []}],
			"pagination": {"continuation_token": "", "next_page": ""}
		}`))
	}))
	defer srv.Close()

	api := testAPI(t, srv, "", "mgmt-key")

	variants, err := api.ListVariantsOfType(context.Background(), "page")
	if err != nil {
		t.Fatalf("ListVariantsOfType failed: %v", err)
	}

	if len(variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(variants))
	}
	if len(continuations) != 2 || continuations[0] != "" || continuations[1] != "tok-2" {
		t.Errorf("unexpected continuation sequence: %v", continuations)
	}
}

func TestListVariantsRequiresManagementKey(t *testing.T) {
	api, err := NewAPI("test-project", "", "")
	if err != nil {
		t.Fatalf("NewAPI failed: %v", err)
	}

	if _, err := api.ListVariantsOfType(context.Background(), "page"); err == nil {
		t.Fatal("expected error without management key, got nil")
	}
}
