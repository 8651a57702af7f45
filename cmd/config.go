package cmd

import (
	"fmt"
	"strings"

	"github.com/fnziad/ZeroTex/internal/app"
	"github.com/fnziad/ZeroTex/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update configuration settings",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(titleStyle.Render("Configuration"))
		fmt.Printf("%s %s\n", labelStyle.Render("Config File:"), config.GetConfigPath())
		for _, k := range config.Keys() {
			v := config.Get(k)
			if v == "" {
				v = mutedStyle.Render("(default)")
			} else {
				v = valueStyle.Render(v)
			}
			fmt.Printf("%s %s\n", labelStyle.Render(k+":"), v)
		}
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a configuration value",
	Example: `  zerotex config set --key template --value modern
  zerotex config set --key measurer --value chrome
  zerotex config set --key paper --value Letter`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		if key == "" {
			return fmt.Errorf("%w: --key is required", app.ErrInvalidArgument)
		}
		if !config.Known(key) {
			return fmt.Errorf("%w: invalid key, must be one of: %s", app.ErrInvalidArgument, strings.Join(config.Keys(), ", "))
		}

		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
		fmt.Printf("✓ Configuration updated: %s\n", key)

		if err := config.Initialize(); err != nil {
			fmt.Println(warnStyle.Render(fmt.Sprintf("Warning: the new value does not load cleanly: %v", err)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)

	setConfigCmd.Flags().String("key", "", "Configuration key")
	setConfigCmd.Flags().String("value", "", "Configuration value")
}
