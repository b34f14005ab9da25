package slugcheck

import "sort"

// SlugMap groups normalized items by their exact slug value, preserving the
// order in which slugs were first encountered.  Comparison is byte-exact:
// slugs are emitted in canonical form by the source system, so case or
// whitespace variants are distinct keys here and only surface as
// diagnostics in the targeted-search path.
type SlugMap struct {
	order []string
	items map[string][]NormalizedItem
}

// GroupBySlug builds a fresh SlugMap from the given rows.
func GroupBySlug(items []NormalizedItem) *SlugMap {
	m := &SlugMap{items: map[string][]NormalizedItem{}}

	for _, item := range items {
		if item.Slug == "" {
			continue
		}
		if _, ok := m.items[item.Slug]; !ok {
			m.order = append(m.order, item.Slug)
		}
		m.items[item.Slug] = append(m.items[item.Slug], item)
	}

	return m
}

// Len returns the number of unique slugs seen.
func (m *SlugMap) Len() int {
	return len(m.order)
}

// Slugs returns the slug values in first-insertion order.
func (m *SlugMap) Slugs() []string {
	return m.order
}

// Get returns the rows grouped under one slug.
func (m *SlugMap) Get(slug string) []NormalizedItem {
	return m.items[slug]
}

// FilterDuplicates classifies each slug group.  A slug is a true duplicate
// only when it is shared by two or more distinct content items (codenames);
// one codename appearing in several languages is a single multilingual item,
// not a collision.  Group order follows the SlugMap's insertion order, and
// codename order within a group follows first appearance in the rows.
func FilterDuplicates(m *SlugMap) []DuplicateGroup {
	duplicates := []DuplicateGroup{}

	for _, slug := range m.order {
		rows := m.items[slug]

		codenameOrder := []string{}
		byCodename := map[string][]NormalizedItem{}
		for _, row := range rows {
			if _, ok := byCodename[row.Codename]; !ok {
				codenameOrder = append(codenameOrder, row.Codename)
			}
			byCodename[row.Codename] = append(byCodename[row.Codename], row)
		}

		if len(codenameOrder) < 2 {
			continue
		}

		group := DuplicateGroup{Slug: slug}
		for _, codename := range codenameOrder {
			variants := byCodename[codename]

			languages := make([]string, 0, len(variants))
			for _, v := range variants {
				languages = append(languages, v.Language)
			}
			sort.Strings(languages)

			group.Items = append(group.Items, DuplicateSummaryItem{
				Name:          variants[0].Name,
				Codename:      codename,
				Languages:     languages,
				LanguageCount: len(languages),
				SlugField:     variants[0].SlugField,
			})
		}

		duplicates = append(duplicates, group)
	}

	return duplicates
}
