package cmd

import (
	"fmt"

	"coursectl/pkg/config"
	"coursectl/pkg/loader"
	"coursectl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage coursectl configuration",
	Long:  "View or edit your local configuration settings (like the course data file and accent color).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setFile, _ := cmd.Flags().GetString("set-file")
		setColor, _ := cmd.Flags().GetString("set-color")
		show, _ := cmd.Flags().GetBool("show")

		if setFile != "" || setColor != "" {
			if setFile != "" {
				cfg.DataFile = setFile
			}
			if setColor != "" {
				cfg.AccentColor = setColor
			}
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✅ Configuration saved.")
			return nil
		}

		if show {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Data File: %s\n", cfg.DataPath(loader.DefaultPath))
			fmt.Fprintf(out, "Accent Color: %s\n", cfg.AccentColor)
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-file", "", "Set the course data file")
	configCmd.Flags().String("set-color", "", "Set the accent color (ANSI number or #RRGGBB)")
	configCmd.Flags().Bool("show", false, "Print the current configuration")
}
