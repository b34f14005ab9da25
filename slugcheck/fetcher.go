package slugcheck

import (
	"context"
	"fmt"

	"github.com/kontent-tools/slug-audit/kontent"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/sync/errgroup"
)

const (
	// pageSize is the delivery API page size for full scans.
	pageSize = 1000

	// maxRequestsPerLanguage caps each language's pagination loop.  Hitting
	// the cap is a bounded-resource tradeoff, not an error: the loop stops
	// and whatever was accumulated is used, under-counting the inventory.
	maxRequestsPerLanguage = 50

	// filterLimit is the page size for targeted equality-filter lookups.
	filterLimit = 100
)

// languageFetch is the outcome of paginating one language to exhaustion (or
// to the safety cap).
type languageFetch struct {
	items    []NormalizedItem
	requests int
	capped   bool
}

// fetchAllPageItems pulls every "page" item carrying a slug for one
// language, page by page.  A non-2xx response aborts immediately with no
// partial results; only the safety cap returns partial results.
func (f *Finder) fetchAllPageItems(ctx context.Context, language string) (languageFetch, error) {
	fetch := languageFetch{items: []NormalizedItem{}}
	skip := 0

	for {
		fetch.requests++

		resp, err := f.API.GetItems(ctx, kontent.ItemsQuery{
			Type:     "page",
			Elements: []string{"url_slug", "slug", "system"},
			Language: language,
			Skip:     skip,
			Limit:    pageSize,
		})
		if err != nil {
			return languageFetch{}, fmt.Errorf("slugcheck: fetching page items (%s, skip %d): %w", language, skip, err)
		}

		kept := 0
		for _, raw := range resp.Items {
			if isPageWithSlug(raw) {
				fetch.items = append(fetch.items, Normalize(raw))
				kept++
			}
		}
		f.logf("request %d (%s): %d raw items, kept %d, running total %d",
			fetch.requests, language, len(resp.Items), kept, len(fetch.items))

		if resp.Pagination.NextPage == "" {
			break
		}
		if fetch.requests >= maxRequestsPerLanguage {
			f.logf("safety limit reached after %d requests (%s), stopping pagination", fetch.requests, language)
			fetch.capped = true
			break
		}
		skip += pageSize
	}

	return fetch, nil
}

// fetchAllLanguages runs the per-language pagination for every configured
// language and concatenates the results in configuration order.  Languages
// are fetched in parallel; each language's own loop stays strictly
// sequential, and the request cap applies per language.
func (f *Finder) fetchAllLanguages(ctx context.Context) ([]NormalizedItem, int, error) {
	languages := f.languages()
	fetches := make([]languageFetch, len(languages))

	var bar *mpb.Bar
	var progress *mpb.Progress
	if f.Progress {
		progress = mpb.New(mpb.WithWidth(64))
		bar = progress.AddBar(int64(len(languages)),
			mpb.PrependDecorators(
				decor.Name("languages:", decor.WC{C: decor.DindentRight | decor.DextraSpace}),
			),
			mpb.AppendDecorators(
				decor.CountersNoUnit("(%d/%d) "),
				decor.NewPercentage("%d"),
			),
		)
	}

	grp, gctx := errgroup.WithContext(ctx)
	for i, language := range languages {
		i, language := i, language
		grp.Go(func() error {
			fetch, err := f.fetchAllPageItems(gctx, language)
			if err != nil {
				return err
			}
			fetches[i] = fetch
			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		if bar != nil {
			bar.Abort(true)
			progress.Wait()
		}
		return nil, 0, err
	}
	if progress != nil {
		progress.Wait()
	}

	items := []NormalizedItem{}
	requests := 0
	for _, fetch := range fetches {
		items = append(items, fetch.items...)
		requests += fetch.requests
	}
	f.logf("pagination complete: %d requests across %d languages, %d page items with slugs",
		requests, len(languages), len(items))

	return items, requests, nil
}
