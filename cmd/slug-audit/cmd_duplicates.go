package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kontent-tools/slug-audit/slugcheck"
	"github.com/spf13/cobra"
)

var duplicatesUsage = strings.TrimSpace(`
Crawl every configured language of the project and report each slug that is
published by two or more distinct content items.  One item translated into
several languages is not a collision and is not reported.
`)

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Find slugs shared by distinct content items",
	Long:  duplicatesUsage,
	Args:  cobra.ExactArgs(0),
	RunE:  runDuplicates,
}

var WithVCR bool

func init() {
	rootCmd.AddCommand(duplicatesCmd)

	duplicatesCmd.Flags().BoolVar(&WithVCR, "with-vcr", false, "use go-vcr to cache responses")
}

func runDuplicates(cmd *cobra.Command, args []string) error {
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
		Progress:  !Debug,
	}

	report := finder.FindDuplicateSlugs(cmd.Context())
	if report.Error != "" {
		return fmt.Errorf("duplicates: %s", report.Error)
	}

	renderDuplicateReport(os.Stdout, report)
	return nil
}
