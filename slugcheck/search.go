package slugcheck

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kontent-tools/slug-audit/kontent"
	"golang.org/x/exp/maps"
)

// searchConfigs enumerates the equality-filter query shapes for one
// language: both slug element spellings, each with and without the
// content-type filter.  Some projects' slug elements live on types other
// than "page", hence the unfiltered variants.
func searchConfigs(target string, language string) []kontent.FilterQuery {
	shapes := []kontent.FilterQuery{
		{Type: "page", Field: "slug"},
		{Type: "page", Field: "url_slug"},
		{Field: "slug"},
		{Field: "url_slug"},
	}

	for i := range shapes {
		shapes[i].Value = target
		shapes[i].Language = language
		shapes[i].Depth = 0
		shapes[i].Limit = filterLimit
	}

	return shapes
}

// searchDirect runs every filter-query shape for every configured language.
// Individual query failures are logged and skipped; the strategy as a whole
// only reports an error when no query got through at all.
func (f *Finder) searchDirect(ctx context.Context, target string) *DirectFilterReport {
	report := &DirectFilterReport{URLs: []string{}, Items: []NormalizedItem{}}

	attempted, failed := 0, 0
	for _, language := range f.languages() {
		for _, q := range searchConfigs(target, language) {
			if u, err := f.API.FilterURL(q); err == nil {
				report.URLs = append(report.URLs, u)
			}

			attempted++
			resp, err := f.API.GetItemsFiltered(ctx, q)
			if err != nil {
				failed++
				f.logf("filter query failed (%s field, language %s): %v", q.Field, language, err)
				continue
			}

			for _, raw := range resp.Items {
				// The remote filter isn't trusted; re-check the match.
				if !matchesSlugExactly(raw, target) {
					continue
				}
				if report.Field == "" {
					report.Field = q.Field
				}
				report.Items = append(report.Items, Normalize(raw))
			}
		}
	}

	report.Items = dedupeItems(report.Items)
	report.Success = len(report.Items) > 0
	if attempted > 0 && failed == attempted {
		report.Error = fmt.Sprintf("all %d filter queries failed", attempted)
	}

	return report
}

// fullScan reuses the duplicate-search pagination to fetch the complete
// inventory, then filters client-side.  This is the only strategy that can
// also report near-misses: case-insensitive matches and slugs merely
// containing the search term.
func (f *Finder) fullScan(ctx context.Context, target string) *FullScanReport {
	report := &FullScanReport{Items: []NormalizedItem{}}

	items, requests, err := f.fetchAllLanguages(ctx)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	report.TotalItems = len(items)
	report.TotalRequests = requests

	slugSet := map[string]bool{}
	loweredTarget := strings.ToLower(target)

	for _, item := range items {
		slugSet[item.Slug] = true

		switch item.SlugField {
		case "url_slug":
			report.URLSlugFieldCount++
		case "slug":
			report.SlugFieldCount++
		}

		if item.Slug == target {
			report.Items = append(report.Items, item)
			report.ExactMatches++
		}
		if strings.ToLower(item.Slug) == loweredTarget {
			report.CaseInsensitiveMatches++
		}
	}

	allSlugs := maps.Keys(slugSet)
	sort.Strings(allSlugs)
	report.AllSlugsCount = len(allSlugs)
	report.SimilarSlugs = similarSlugs(allSlugs, target)
	report.Success = true

	return report
}

// searchManagement probes the management API.  It authenticates and lists
// items, but resolving each item's language variants is not implemented, so
// no items are contributed to the union.
func (f *Finder) searchManagement(ctx context.Context) *ManagementReport {
	report := &ManagementReport{Items: []NormalizedItem{}}

	resp, err := f.API.ListManagementItems(ctx)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	report.Success = true
	report.Note = fmt.Sprintf(
		"management API listed %d items; language variant resolution is not implemented, so none were matched against the slug",
		len(resp.Items))

	return report
}
