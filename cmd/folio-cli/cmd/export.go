package cmd

import (
	"fmt"

	"github.com/aswini27ms/folio/internal/export"
	"github.com/aswini27ms/folio/internal/page"
	"github.com/aswini27ms/folio/internal/rendering"
	"github.com/aswini27ms/folio/internal/scrollspy"
	"github.com/aswini27ms/folio/web"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	exportOutDir     string
	exportResumePath string
	exportTheme      string
	exportSeed       uint64
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the portfolio as a static site",
	Long: `Render the portfolio page and its assets into a directory that any
static file host can serve. The contact form posts to a mailto: link and
the navigation runs entirely in the browser.

Examples:
  folio-cli export --out dist
  folio-cli export --out dist --resume files/resume.pdf --theme light`,
	RunE: func(cmd *cobra.Command, args []string) error {
		osFs := afero.NewOsFs()
		store, err := loadStore(osFs)
		if err != nil {
			return err
		}

		builder := page.NewBuilder(store, scrollspy.New(), page.Options{
			ResumeAvailable: exportResumePath != "",
			ResumeFilename:  exportResumePath,
			Seed:            exportSeed,
		})

		res, err := export.Export(cmd.Context(), osFs, builder, rendering.NewUniversalRenderer(), export.Options{
			OutDir:     exportOutDir,
			Assets:     web.Static(),
			ResumeFs:   osFs,
			ResumePath: exportResumePath,
			Theme:      exportTheme,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files to %s\n", len(res.Files), exportOutDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", "dist", "Output directory")
	exportCmd.Flags().StringVar(&exportResumePath, "resume", "", "Résumé file to publish next to the page")
	exportCmd.Flags().StringVar(&exportTheme, "theme", "dark", "Initial theme (dark, light)")
	exportCmd.Flags().Uint64Var(&exportSeed, "seed", 1, "Seed for the decorative layout, 0 for random")
}
