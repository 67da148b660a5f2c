package cmd

import (
	"fmt"

	"coursectl/pkg/catalog"
	"coursectl/pkg/loader"

	"github.com/spf13/cobra"
)

// loadTree reads the configured data file into a fresh tree
func loadTree() (*catalog.Tree, error) {
	path := loadConfig().DataPath(loader.DefaultPath)

	tree := catalog.NewTree()
	if _, err := loader.Load(path, tree); err != nil {
		return nil, fmt.Errorf("could not load courses: %w", err)
	}
	return tree, nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every course in alphanumeric order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree()
		if err != nil {
			return err
		}
		return tree.PrintAll(cmd.OutOrStdout())
	},
}

var showCmd = &cobra.Command{
	Use:   "show <course-id>",
	Short: "Print a course and its prerequisites",
	Long:  `Print a single course and its prerequisites. The course ID is matched case-insensitively against uppercase IDs.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree()
		if err != nil {
			return err
		}
		return tree.PrintOne(cmd.OutOrStdout(), catalog.NormalizeID(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}
