package slugcheck

import (
	"reflect"
	"testing"

	"github.com/kontent-tools/slug-audit/kontent"
)

func rawItem(name, codename, itemType, language, urlSlug, slug string) kontent.ContentItem {
	item := kontent.ContentItem{
		System: kontent.System{Name: name, Codename: codename, Type: itemType, Language: language},
	}
	if urlSlug != "" {
		item.Elements.URLSlug = &kontent.SlugElement{Value: urlSlug}
	}
	if slug != "" {
		item.Elements.Slug = &kontent.SlugElement{Value: slug}
	}
	return item
}

func TestNormalizePrefersURLSlug(t *testing.T) {
	n := Normalize(rawItem("Home", "home", "page", "en", "home-page", "legacy-home"))

	if n.Slug != "home-page" {
		t.Errorf("slug = %q, want home-page", n.Slug)
	}
	if n.SlugField != "url_slug" {
		t.Errorf("slugField = %q, want url_slug", n.SlugField)
	}
}

func TestNormalizeFallsBackToSlugElement(t *testing.T) {
	n := Normalize(rawItem("Home", "home", "page", "en", "", "legacy-home"))

	if n.Slug != "legacy-home" {
		t.Errorf("slug = %q, want legacy-home", n.Slug)
	}
	if n.SlugField != "slug" {
		t.Errorf("slugField = %q, want slug", n.SlugField)
	}
}

func TestNormalizeEmptySlugStaysEmpty(t *testing.T) {
	n := Normalize(rawItem("Home", "home", "page", "en", "", ""))
	if n.Slug != "" {
		t.Errorf("an item with both slug fields empty must normalize to empty slug, got %q", n.Slug)
	}
}

func TestNormalizeDefaultsMissingSystemFields(t *testing.T) {
	n := Normalize(rawItem("", "", "page", "", "x", ""))

	if n.Name != unknownName || n.Codename != unknownCodename || n.Language != unknownLanguage {
		t.Errorf("missing system fields must be defaulted, got %+v", n)
	}
}

func TestIsPageWithSlug(t *testing.T) {
	if isPageWithSlug(rawItem("A", "a", "article", "en", "x", "")) {
		t.Error("non-page items must be filtered out")
	}
	if isPageWithSlug(rawItem("A", "a", "page", "en", "", "")) {
		t.Error("slug-less pages must be filtered out")
	}
	if !isPageWithSlug(rawItem("A", "a", "page", "en", "", "x")) {
		t.Error("pages with a slug in either field must pass")
	}
}

func TestDedupeItemsByCodenameAndLanguage(t *testing.T) {
	items := []NormalizedItem{
		row("a", "en", "foo"),
		row("a", "de", "foo"),
		row("a", "en", "foo"), // same variant found via another strategy
		row("b", "en", "foo"),
	}

	got := dedupeItems(items)
	want := []NormalizedItem{
		row("a", "en", "foo"),
		row("a", "de", "foo"),
		row("b", "en", "foo"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dedupeItems = %+v, want %+v", got, want)
	}
}

func TestSimilarSlugsIsCaseInsensitive(t *testing.T) {
	got := similarSlugs([]string{"press-kit", "Press-Kit-2024", "about"}, "press")
	want := []string{"press-kit", "Press-Kit-2024"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("similarSlugs = %v, want %v", got, want)
	}
}
