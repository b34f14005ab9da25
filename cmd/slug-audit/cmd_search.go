package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kontent-tools/slug-audit/slugcheck"
	"github.com/spf13/cobra"
)

var searchUsage = strings.TrimSpace(`
Hunt down every occurrence of one slug, across languages and across both
slug element spellings.  Combines direct filter queries, a full inventory
scan, and (when a management key is configured) a management API probe.
`)

var searchCmd = &cobra.Command{
	Use:   "search <slug>",
	Short: "Find all items publishing under one slug",
	Long:  searchUsage,
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolVar(&WithVCR, "with-vcr", false, "use go-vcr to cache responses")
}

func runSearch(cmd *cobra.Command, args []string) error {
	targetSlug := strings.TrimSpace(args[0])
	if targetSlug == "" {
		return fmt.Errorf("search: please provide a non-empty slug")
	}

	api, err := buildAPI()
	if err != nil {
		return err
	}

	if WithVCR && api != nil {
		r, err := setupVCR(api)
		if err != nil {
			return err
		}
		defer r.Stop() // Make sure recorder is stopped once done with it
	}

	finder := &slugcheck.Finder{
		API:       api,
		Languages: Languages,
		Logger:    debugLogger(),
	}

	report := finder.SearchSpecificSlug(cmd.Context(), targetSlug)
	if !report.Success {
		return fmt.Errorf("search: %s", report.Error)
	}

	renderSearchReport(os.Stdout, report, targetSlug)
	return nil
}
