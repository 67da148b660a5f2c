package cmd

import (
	"coursectl/pkg/catalog"
	"coursectl/pkg/loader"
	"coursectl/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the form-based interface to load the catalog, browse courses and change settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		return tui.Run(cfg.DataPath(loader.DefaultPath), catalog.NewTree())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
