package slugcheck

import (
	"context"
	"log"

	"github.com/kontent-tools/slug-audit/kontent"
)

// DefaultLanguages are the language codenames audited when none are
// configured.
var DefaultLanguages = []string{"de", "en", "zh"}

const missingProjectError = "missing Kontent.ai project ID configuration; set --project-id or KONTENT_PROJECT_ID"

// Finder is the public entry point for slug audits.  It holds only
// read-only configuration, so one Finder is safe for concurrent and
// repeated searches.
type Finder struct {
	// API talks to the remote project.  A nil API (no project configured)
	// makes every search fail closed with an error report.
	API *kontent.API

	// Languages to audit; DefaultLanguages when empty.
	Languages []string

	// Logger receives fetch/grouping diagnostics.  Optional.
	Logger *log.Logger

	// Progress renders a terminal progress bar during full scans.
	Progress bool
}

func (f *Finder) languages() []string {
	if len(f.Languages) > 0 {
		return f.Languages
	}
	return DefaultLanguages
}

func (f *Finder) logf(format string, args ...any) {
	if f.Logger != nil {
		f.Logger.Printf(format, args...)
	}
}

func (f *Finder) configured() bool {
	return f.API != nil && f.API.ProjectID != ""
}

// FindDuplicateSlugs fetches the complete multi-language page inventory and
// reports every slug published by more than one distinct content item.
// Never returns a Go error: configuration and fetch failures are surfaced
// on the report's Error field.
func (f *Finder) FindDuplicateSlugs(ctx context.Context) DuplicateReport {
	if !f.configured() {
		return DuplicateReport{Duplicates: []DuplicateGroup{}, Error: missingProjectError}
	}

	items, requests, err := f.fetchAllLanguages(ctx)
	if err != nil {
		return DuplicateReport{Duplicates: []DuplicateGroup{}, Error: err.Error()}
	}

	slugMap := GroupBySlug(items)
	duplicates := FilterDuplicates(slugMap)
	f.logf("duplicate analysis: %d rows, %d unique slugs, %d duplicate groups",
		len(items), slugMap.Len(), len(duplicates))

	return DuplicateReport{
		Duplicates:    duplicates,
		TotalItems:    len(items),
		TotalRequests: requests,
		UniqueSlugs:   slugMap.Len(),
	}
}

// SearchSpecificSlug looks up one slug via every available strategy and
// unions the results, unique by (codename, language).  Never returns a Go
// error; the report carries per-strategy diagnostics and an Error field.
func (f *Finder) SearchSpecificSlug(ctx context.Context, targetSlug string) SearchReport {
	if !f.configured() {
		return SearchReport{
			Success: false,
			Items:   []NormalizedItem{},
			Method:  "none",
			Error:   missingProjectError,
		}
	}

	direct := f.searchDirect(ctx, targetSlug)
	scan := f.fullScan(ctx, targetSlug)

	var management *ManagementReport
	if f.API.HasManagementKey() {
		management = f.searchManagement(ctx)
	}

	combined := []NormalizedItem{}
	combined = append(combined, direct.Items...)
	combined = append(combined, scan.Items...)
	if management != nil {
		combined = append(combined, management.Items...)
	}
	items := dedupeItems(combined)

	report := SearchReport{
		Success:      true,
		Items:        items,
		Method:       "combined",
		TotalItems:   len(items),
		DirectFilter: direct,
		FullScan:     scan,
		Management:   management,
	}

	// The search as a whole only fails when every strategy failed and
	// nothing at all was found.
	if len(items) == 0 && direct.Error != "" && scan.Error != "" &&
		(management == nil || management.Error != "") {
		report.Success = false
		report.Error = "every search strategy failed: " + scan.Error
	}

	return report
}
