package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persisted configuration",
	Long:  `Reads and writes ~/.searchconsole/config.toml.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE:  runConfigShow,
}

var configSetAPIKeyCmd = &cobra.Command{
	Use:   "set-api-key <key>",
	Short: "Store the Google API key",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetAPIKey,
}

var configSetDefaultSiteCmd = &cobra.Command{
	Use:   "set-default-site <site-url>",
	Short: "Store the default property used when --site is not given",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetDefaultSite,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetAPIKeyCmd)
	configCmd.AddCommand(configSetDefaultSiteCmd)
	rootCmd.AddCommand(configCmd)
}

var errNoConfigStore = errors.New("config store unavailable")

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errNoConfigStore
	}

	cmd.Printf("Config file:  %s\n", configStore.Path())
	if configStore.APIKey() != "" {
		cmd.Println("API key:      (set)")
	} else {
		cmd.Println("API key:      (not set)")
	}
	cmd.Printf("Default site: %s\n", configStore.DefaultSite())
	return nil
}

func runConfigSetAPIKey(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errNoConfigStore
	}

	if err := configStore.SetAPIKey(args[0]); err != nil {
		return err
	}
	cmd.Println("API key saved.")
	return nil
}

func runConfigSetDefaultSite(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errNoConfigStore
	}

	if err := configStore.SetDefaultSite(args[0]); err != nil {
		return err
	}
	cmd.Printf("Default site set to %s.\n", args[0])
	return nil
}
