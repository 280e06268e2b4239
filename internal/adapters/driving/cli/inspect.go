package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/searchconsole-cli/internal/searchconsole"
)

var (
	inspectLang string
	inspectJSON bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <url>",
	Short: "Run a URL inspection",
	Long: `Fetches Google's per-URL indexing diagnostic report for a URL under
the selected property.

Example:
  searchconsole inspect https://www.example.com/page --site https://www.example.com/`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectLang, "lang", "", "BCP-47 language code for result messages, e.g. en-US")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	siteURL, err := resolveSite()
	if err != nil {
		return err
	}

	req := &searchconsole.InspectURLRequest{
		InspectionURL: args[0],
		SiteURL:       siteURL,
		LanguageCode:  inspectLang,
	}

	result, err := client.InspectURL(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("url inspection failed: %w", err)
	}
	if result == nil {
		cmd.Println("No inspection result returned.")
		return nil
	}

	if inspectJSON {
		return printJSON(cmd, result)
	}

	if idx := result.IndexStatusResult; idx != nil {
		cmd.Printf("Verdict:        %s\n", idx.Verdict)
		cmd.Printf("Coverage:       %s\n", idx.CoverageState)
		cmd.Printf("Robots.txt:     %s\n", idx.RobotsTxtState)
		cmd.Printf("Indexing:       %s\n", idx.IndexingState)
		cmd.Printf("Last crawl:     %s\n", idx.LastCrawlTime)
		cmd.Printf("Page fetch:     %s\n", idx.PageFetchState)
		if idx.GoogleCanonical != "" {
			cmd.Printf("Google canon.:  %s\n", idx.GoogleCanonical)
		}
		if idx.UserCanonical != "" {
			cmd.Printf("User canon.:    %s\n", idx.UserCanonical)
		}
	}
	if result.InspectionResultLink != "" {
		cmd.Printf("Full report:    %s\n", result.InspectionResultLink)
	}
	return nil
}
