package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"coursectl/pkg/config"
	"coursectl/pkg/loader"
	"coursectl/pkg/shell"

	"github.com/spf13/cobra"
)

var (
	dataFile string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "coursectl",
	Short: "A course planner for the ABCU course catalog",
	Long: `coursectl loads the ABCU course catalog into memory and lets advisors
list every course in order or look up a single course and its prerequisites.

Run without a subcommand to start the numbered menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseLevel(logLevel)
		if err != nil {
			return err
		}
		slog.SetDefault(newLogger(level, cmd.ErrOrStderr()))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.DataPath(loader.DefaultPath))
		return sh.WithAccent(cfg.AccentColor).Run()
	},
}

// loadConfig reads the user config with the --file flag applied on top.
// A broken config file is reported and ignored.
func loadConfig() *config.AppConfig {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Ignoring config file.", "error", err)
		cfg = &config.AppConfig{}
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	return cfg
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", fmt.Sprintf("Course data file (defaults to the configured file, then %q)", loader.DefaultPath))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Logging level: debug, info, warn or error")
}
