package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a portfolio content file",
	Long: `Load a portfolio content file and report whether it is valid.

Examples:
  folio-cli validate --content content/portfolio.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore(afero.NewOsFs())
		if err != nil {
			return err
		}
		p := store.Current()
		source := contentPath
		if source == "" {
			source = "built-in content"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid: %d skills, %d experience entries, %d projects\n",
			source, len(p.Skills), len(p.Experience), len(p.Projects))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
