// Package slugcheck finds content items that publish under colliding URL
// slugs.  It fetches the full multi-language "page" inventory from the
// delivery API, normalizes the two slug field spellings in use, and reports
// slugs shared by more than one distinct content item.
package slugcheck

// NormalizedItem is one language variant row with its slug resolved.
// Constructed per fetch, never mutated.
type NormalizedItem struct {
	Name     string
	Codename string
	Type     string
	Language string
	Slug     string

	// SlugField records which element supplied the slug ("url_slug" or
	// "slug").  Diagnostic only; grouping ignores it.
	SlugField string
}

// DuplicateSummaryItem is one distinct content item (by codename) inside a
// duplicate group, with every language it appeared in under that slug.
type DuplicateSummaryItem struct {
	Name          string   `json:"name"`
	Codename      string   `json:"codename"`
	Languages     []string `json:"languages"`
	LanguageCount int      `json:"languageCount"`
	SlugField     string   `json:"slugField"`
}

// DuplicateGroup is one slug published by two or more distinct content items.
type DuplicateGroup struct {
	Slug  string                 `json:"slug"`
	Items []DuplicateSummaryItem `json:"items"`
}

// DuplicateReport is the result of a full duplicate search.  Error is set
// instead of returning a Go error; the zero Duplicates slice with a
// non-empty Error means the search never ran.
type DuplicateReport struct {
	Duplicates    []DuplicateGroup `json:"duplicates"`
	TotalItems    int              `json:"totalItems"`
	TotalRequests int              `json:"totalRequests"`
	UniqueSlugs   int              `json:"uniqueSlugs"`
	Error         string           `json:"error,omitempty"`
}

// SearchReport is the result of a targeted single-slug search, combining
// every retrieval strategy.  Items are unique by (codename, language).
type SearchReport struct {
	Success bool             `json:"success"`
	Items   []NormalizedItem `json:"items"`
	Method  string           `json:"method"`
	Error   string           `json:"error,omitempty"`

	TotalItems int `json:"totalItems"`

	// Per-strategy diagnostics, for the caller to render.
	DirectFilter *DirectFilterReport `json:"directFilter,omitempty"`
	FullScan     *FullScanReport     `json:"fullScan,omitempty"`
	Management   *ManagementReport   `json:"management,omitempty"`
}

// DirectFilterReport covers the equality-filter query strategy.
type DirectFilterReport struct {
	Success bool             `json:"success"`
	Field   string           `json:"field,omitempty"`
	URLs    []string         `json:"urls"`
	Items   []NormalizedItem `json:"items"`
	Error   string           `json:"error,omitempty"`
}

// FullScanReport covers the fetch-everything-and-filter strategy, plus the
// slug-inventory diagnostics only a full scan can compute.
type FullScanReport struct {
	Success       bool             `json:"success"`
	Items         []NormalizedItem `json:"items"`
	TotalItems    int              `json:"totalItems"`
	TotalRequests int              `json:"totalRequests"`

	AllSlugsCount          int      `json:"allSlugsCount"`
	ExactMatches           int      `json:"exactMatches"`
	CaseInsensitiveMatches int      `json:"caseInsensitiveMatches"`
	SimilarSlugs           []string `json:"similarSlugs,omitempty"`
	URLSlugFieldCount      int      `json:"urlSlugFieldCount"`
	SlugFieldCount         int      `json:"slugFieldCount"`

	Error string `json:"error,omitempty"`
}

// ManagementReport covers the management-API probe.  The probe authenticates
// and lists items but does not resolve language variants, so Items stays
// empty and Note explains why.
type ManagementReport struct {
	Success bool             `json:"success"`
	Items   []NormalizedItem `json:"items"`
	Note    string           `json:"note,omitempty"`
	Error   string           `json:"error,omitempty"`
}
