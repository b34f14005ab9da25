package kontent

// System is the metadata block every delivery item carries.
// See https://kontent.ai/learn/docs/apis/openapi/delivery-api/#section/Content-item-object
type System struct {
	Name     string `json:"name,omitempty"`
	Codename string `json:"codename,omitempty"`
	Type     string `json:"type,omitempty"`
	Language string `json:"language,omitempty"`
}

// SlugElement holds a single text element value.
type SlugElement struct {
	Value string `json:"value"`
}

// Elements carries the two possible slug fields.  Older content types in the
// wild use `slug`, newer ones `url_slug`; an item usually populates only one
// of them, but both present must be tolerated.
type Elements struct {
	URLSlug *SlugElement `json:"url_slug,omitempty"`
	Slug    *SlugElement `json:"slug,omitempty"`
}

// ContentItem is one language variant of a content item as returned by the
// delivery API, restricted to the elements this tool asks for.
type ContentItem struct {
	System   System   `json:"system"`
	Elements Elements `json:"elements"`
}

// SlugValue returns the item's slug, preferring url_slug over slug.
// Empty string means neither field carries a value.
func (c ContentItem) SlugValue() string {
	if c.Elements.URLSlug != nil && c.Elements.URLSlug.Value != "" {
		return c.Elements.URLSlug.Value
	}
	if c.Elements.Slug != nil {
		return c.Elements.Slug.Value
	}
	return ""
}

// SlugFieldName reports which element supplied the slug value.  Only
// meaningful for items where SlugValue() is non-empty.
func (c ContentItem) SlugFieldName() string {
	if c.Elements.URLSlug != nil && c.Elements.URLSlug.Value != "" {
		return "url_slug"
	}
	return "slug"
}
