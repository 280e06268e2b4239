package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/searchconsole-cli/internal/searchconsole"
)

var sitesJSON bool

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Manage Search Console properties",
}

var sitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accessible properties",
	RunE:  runSitesList,
}

var sitesGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a property and your permission level",
	RunE:  runSitesGet,
}

var sitesAddCmd = &cobra.Command{
	Use:   "add <site-url>",
	Short: "Add a property to your account",
	Long: `Adds a property to your Search Console account and initiates the
verification process. Use "sc-domain:example.com" for domain properties.`,
	Args: cobra.ExactArgs(1),
	RunE: runSitesAdd,
}

var sitesRemoveCmd = &cobra.Command{
	Use:   "remove <site-url>",
	Short: "Remove a property from your account",
	Args:  cobra.ExactArgs(1),
	RunE:  runSitesRemove,
}

func init() {
	sitesListCmd.Flags().BoolVar(&sitesJSON, "json", false, "output as JSON")
	sitesCmd.AddCommand(sitesListCmd)
	sitesCmd.AddCommand(sitesGetCmd)
	sitesCmd.AddCommand(sitesAddCmd)
	sitesCmd.AddCommand(sitesRemoveCmd)
	rootCmd.AddCommand(sitesCmd)
}

func runSitesList(cmd *cobra.Command, _ []string) error {
	sites, err := client.ListSites(cmd.Context())
	if err != nil {
		return fmt.Errorf("list sites failed: %w", err)
	}

	if sitesJSON {
		return printJSON(cmd, sites)
	}

	if len(sites) == 0 {
		cmd.Println("No properties found.")
		return nil
	}

	for i := range sites {
		cmd.Printf("%s\t%s\n", sites[i].SiteURL, sites[i].PermissionLevel)
	}
	return nil
}

func runSitesGet(cmd *cobra.Command, _ []string) error {
	siteURL, err := resolveSite()
	if err != nil {
		return err
	}

	site, err := client.GetSite(cmd.Context(), siteURL)
	if err != nil {
		if searchconsole.IsNotFound(err) {
			return fmt.Errorf("property %q is not registered in your account", siteURL)
		}
		return fmt.Errorf("get site failed: %w", err)
	}

	cmd.Printf("Site:       %s\n", site.SiteURL)
	cmd.Printf("Permission: %s\n", site.PermissionLevel)
	return nil
}

func runSitesAdd(cmd *cobra.Command, args []string) error {
	siteURL := args[0]

	if _, err := client.AddSite(cmd.Context(), siteURL); err != nil {
		return fmt.Errorf("add site failed: %w", err)
	}

	cmd.Printf("Added %s. Proceed with verification if needed.\n", siteURL)
	return nil
}

func runSitesRemove(cmd *cobra.Command, args []string) error {
	siteURL := args[0]

	if err := client.DeleteSite(cmd.Context(), siteURL); err != nil {
		return fmt.Errorf("remove site failed: %w", err)
	}

	cmd.Printf("Removed %s from your account.\n", siteURL)
	return nil
}
