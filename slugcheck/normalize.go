package slugcheck

import (
	"strings"

	"github.com/kontent-tools/slug-audit/kontent"
)

// Schema-trust boundary: the delivery API should always populate these, but
// malformed rows get defaults instead of empty keys so they stay visible in
// reports.
const (
	unknownName     = "Unknown"
	unknownCodename = "unknown_codename"
	unknownLanguage = "unknown_language"
)

// Normalize extracts the canonical slug row from a raw delivery item.  Pure;
// callers filter out slug-less items beforehand (see isPageWithSlug), so an
// empty Slug only ever appears if a caller skips that filter.
func Normalize(item kontent.ContentItem) NormalizedItem {
	n := NormalizedItem{
		Name:      item.System.Name,
		Codename:  item.System.Codename,
		Type:      item.System.Type,
		Language:  item.System.Language,
		Slug:      item.SlugValue(),
		SlugField: item.SlugFieldName(),
	}

	if n.Name == "" {
		n.Name = unknownName
	}
	if n.Codename == "" {
		n.Codename = unknownCodename
	}
	if n.Language == "" {
		n.Language = unknownLanguage
	}

	return n
}

// isPageWithSlug keeps only "page" items carrying a slug in either field.
func isPageWithSlug(item kontent.ContentItem) bool {
	return item.System.Type == "page" && item.SlugValue() != ""
}

// matchesSlugExactly re-checks a filter-query result client-side.  The
// remote filter is not trusted to have matched the right field, or to have
// matched exactly.
func matchesSlugExactly(item kontent.ContentItem, target string) bool {
	return item.System.Type == "page" && item.SlugValue() == target
}

// dedupeItems collapses rows discovered by more than one strategy, keyed by
// (codename, language) so genuine multilingual variants all survive.
// Preserves first-encounter order.
func dedupeItems(items []NormalizedItem) []NormalizedItem {
	type key struct{ codename, language string }

	seen := map[key]bool{}
	unique := []NormalizedItem{}

	for _, item := range items {
		k := key{item.Codename, item.Language}
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, item)
	}

	return unique
}

// similarSlugs returns every slug containing the search term,
// case-insensitively.  Diagnostic only.
func similarSlugs(allSlugs []string, term string) []string {
	lowered := strings.ToLower(term)

	similar := []string{}
	for _, slug := range allSlugs {
		if strings.Contains(strings.ToLower(slug), lowered) {
			similar = append(similar, slug)
		}
	}

	return similar
}
