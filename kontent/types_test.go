package kontent

import "testing"

func slugItem(urlSlug, slug string) ContentItem {
	item := ContentItem{}
	if urlSlug != "" {
		item.Elements.URLSlug = &SlugElement{Value: urlSlug}
	}
	if slug != "" {
		item.Elements.Slug = &SlugElement{Value: slug}
	}
	return item
}

func TestSlugValueResolutionOrder(t *testing.T) {
	cases := []struct {
		name      string
		item      ContentItem
		wantValue string
		wantField string
	}{
		{"url_slug only", slugItem("a", ""), "a", "url_slug"},
		{"slug only", slugItem("", "b"), "b", "slug"},
		{"both populated prefers url_slug", slugItem("a", "b"), "a", "url_slug"},
		{"neither", slugItem("", ""), "", "slug"},
		{"empty url_slug falls through", ContentItem{Elements: Elements{
			URLSlug: &SlugElement{Value: ""},
			Slug:    &SlugElement{Value: "b"},
		}}, "b", "slug"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.item.SlugValue(); got != tc.wantValue {
				t.Errorf("SlugValue() = %q, want %q", got, tc.wantValue)
			}
			if got := tc.item.SlugFieldName(); got != tc.wantField {
				t.Errorf("SlugFieldName() = %q, want %q", got, tc.wantField)
			}
		})
	}
}
