package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/kontent-tools/slug-audit/internal/termfmt"
	"github.com/kontent-tools/slug-audit/slugcheck"
)

// renderDuplicateReport prints the duplicate groups for humans.  The report
// structs themselves are the machine-readable surface; this is the only
// place presentation happens.
func renderDuplicateReport(w io.Writer, report slugcheck.DuplicateReport) {
	fmt.Fprintf(w, "Scanned %d page items (%d unique slugs, %d requests).\n\n",
		report.TotalItems, report.UniqueSlugs, report.TotalRequests)

	if len(report.Duplicates) == 0 {
		fmt.Fprintf(w, "%v\n", termfmt.Fg(termfmt.Green).V("No duplicate slugs found."))
		return
	}

	fmt.Fprintf(w, "%v\n\n",
		termfmt.Bold().Fg(termfmt.Red).V(fmt.Sprintf("Found %d duplicate slugs:", len(report.Duplicates))))

	for _, group := range report.Duplicates {
		fmt.Fprintf(w, "  %v (%d items)\n", termfmt.Bold().V(group.Slug), len(group.Items))
		for _, item := range group.Items {
			fmt.Fprintf(w, "    - %s (%s), %d language(s): %s [%s]\n",
				item.Name, item.Codename, item.LanguageCount,
				strings.Join(item.Languages, ", "), item.SlugField)
		}
		fmt.Fprintln(w)
	}
}

func renderSearchReport(w io.Writer, report slugcheck.SearchReport, target string) {
	if len(report.Items) == 0 {
		fmt.Fprintf(w, "%v\n", termfmt.Fg(termfmt.Yellow).V(
			fmt.Sprintf("No items found with slug %q.", target)))
	} else {
		fmt.Fprintf(w, "%v\n",
			termfmt.Bold().V(fmt.Sprintf("Found %d item(s) with slug %q:", len(report.Items), target)))
		for _, item := range report.Items {
			fmt.Fprintf(w, "  - %s (%s, %s) [%s]\n", item.Name, item.Codename, item.Language, item.SlugField)
		}
	}
	fmt.Fprintln(w)

	if direct := report.DirectFilter; direct != nil {
		fmt.Fprintf(w, "Filter queries: %s, %d hits", successWord(direct.Success), len(direct.Items))
		if direct.Field != "" {
			fmt.Fprintf(w, " (first via %s)", direct.Field)
		}
		if direct.Error != "" {
			fmt.Fprintf(w, ": %s", direct.Error)
		}
		fmt.Fprintln(w)
	}

	if scan := report.FullScan; scan != nil {
		fmt.Fprintf(w, "Full scan: %s, %d items in %d requests, %d unique slugs\n",
			successWord(scan.Success), scan.TotalItems, scan.TotalRequests, scan.AllSlugsCount)
		fmt.Fprintf(w, "  exact matches: %d, case-insensitive: %d, url_slug/slug fields: %d/%d\n",
			scan.ExactMatches, scan.CaseInsensitiveMatches, scan.URLSlugFieldCount, scan.SlugFieldCount)
		if len(scan.SimilarSlugs) > 0 {
			fmt.Fprintf(w, "  similar slugs: %s\n", strings.Join(scan.SimilarSlugs, ", "))
		}
	}

	if management := report.Management; management != nil {
		fmt.Fprintf(w, "Management API: %s", successWord(management.Success))
		if management.Note != "" {
			fmt.Fprintf(w, ": %s", management.Note)
		}
		if management.Error != "" {
			fmt.Fprintf(w, ": %s", management.Error)
		}
		fmt.Fprintln(w)
	}
}

func successWord(ok bool) string {
	if ok {
		return fmt.Sprintf("%v", termfmt.Fg(termfmt.Green).V("ok"))
	}
	return fmt.Sprintf("%v", termfmt.Fg(termfmt.Red).V("failed"))
}
