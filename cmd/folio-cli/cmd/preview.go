package cmd

import (
	"fmt"

	"github.com/aswini27ms/folio/internal/preview"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the portfolio in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore(afero.NewOsFs())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), preview.Render(store.Current()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
