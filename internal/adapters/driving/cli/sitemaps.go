package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/searchconsole-cli/internal/searchconsole"
)

var (
	sitemapsJSON  bool
	sitemapsIndex string
)

var sitemapsCmd = &cobra.Command{
	Use:   "sitemaps",
	Short: "Manage sitemaps for a property",
}

var sitemapsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List submitted sitemaps",
	RunE:  runSitemapsList,
}

var sitemapsGetCmd = &cobra.Command{
	Use:   "get <feedpath>",
	Short: "Show a sitemap's processing state",
	Args:  cobra.ExactArgs(1),
	RunE:  runSitemapsGet,
}

var sitemapsSubmitCmd = &cobra.Command{
	Use:   "submit <feedpath>",
	Short: "Submit a sitemap feed",
	Args:  cobra.ExactArgs(1),
	RunE:  runSitemapsSubmit,
}

var sitemapsRemoveCmd = &cobra.Command{
	Use:   "remove <feedpath>",
	Short: "Delete a sitemap submission",
	Long: `Deletes a sitemap submission from the property. The sitemap file
itself stays on the web; only the Search Console entry is removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runSitemapsRemove,
}

func init() {
	sitemapsListCmd.Flags().BoolVar(&sitemapsJSON, "json", false, "output as JSON")
	sitemapsListCmd.Flags().StringVar(&sitemapsIndex, "index", "", "list only children of this sitemap index URL")
	sitemapsCmd.AddCommand(sitemapsListCmd)
	sitemapsCmd.AddCommand(sitemapsGetCmd)
	sitemapsCmd.AddCommand(sitemapsSubmitCmd)
	sitemapsCmd.AddCommand(sitemapsRemoveCmd)
	rootCmd.AddCommand(sitemapsCmd)
}

func runSitemapsList(cmd *cobra.Command, _ []string) error {
	siteURL, err := resolveSite()
	if err != nil {
		return err
	}

	var opts *searchconsole.ListSitemapsOptions
	if sitemapsIndex != "" {
		opts = &searchconsole.ListSitemapsOptions{SitemapIndex: sitemapsIndex}
	}

	sitemaps, err := client.ListSitemaps(cmd.Context(), siteURL, opts)
	if err != nil {
		return fmt.Errorf("list sitemaps failed: %w", err)
	}

	if sitemapsJSON {
		return printJSON(cmd, sitemaps)
	}

	if len(sitemaps) == 0 {
		cmd.Println("No sitemaps submitted.")
		return nil
	}

	for i := range sitemaps {
		state := "processed"
		if sitemaps[i].IsPending {
			state = "pending"
		}
		cmd.Printf("%s\t%s\t%s\twarnings=%d errors=%d\n",
			sitemaps[i].Path, sitemaps[i].Type, state, sitemaps[i].Warnings, sitemaps[i].Errors)
	}
	return nil
}

func runSitemapsGet(cmd *cobra.Command, args []string) error {
	siteURL, err := resolveSite()
	if err != nil {
		return err
	}

	sitemap, err := client.GetSitemap(cmd.Context(), siteURL, args[0])
	if err != nil {
		if searchconsole.IsNotFound(err) {
			return fmt.Errorf("sitemap %q is not submitted for %q", args[0], siteURL)
		}
		return fmt.Errorf("get sitemap failed: %w", err)
	}

	cmd.Printf("Path:            %s\n", sitemap.Path)
	cmd.Printf("Type:            %s\n", sitemap.Type)
	cmd.Printf("Pending:         %t\n", sitemap.IsPending)
	cmd.Printf("Last submitted:  %s\n", sitemap.LastSubmitted)
	cmd.Printf("Last downloaded: %s\n", sitemap.LastDownloaded)
	cmd.Printf("Warnings:        %d\n", sitemap.Warnings)
	cmd.Printf("Errors:          %d\n", sitemap.Errors)
	for _, content := range sitemap.Contents {
		cmd.Printf("  %s: %d submitted, %d indexed\n", content.Type, content.Submitted, content.Indexed)
	}
	return nil
}

func runSitemapsSubmit(cmd *cobra.Command, args []string) error {
	siteURL, err := resolveSite()
	if err != nil {
		return err
	}

	if err := client.SubmitSitemap(cmd.Context(), siteURL, args[0]); err != nil {
		return fmt.Errorf("submit sitemap failed: %w", err)
	}

	cmd.Printf("Submitted %s for %s.\n", args[0], siteURL)
	return nil
}

func runSitemapsRemove(cmd *cobra.Command, args []string) error {
	siteURL, err := resolveSite()
	if err != nil {
		return err
	}

	if err := client.DeleteSitemap(cmd.Context(), siteURL, args[0]); err != nil {
		return fmt.Errorf("remove sitemap failed: %w", err)
	}

	cmd.Printf("Removed %s from %s.\n", args[0], siteURL)
	return nil
}
