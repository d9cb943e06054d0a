package cmd

import (
	"os"

	"github.com/aswini27ms/folio/internal/content"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var contentPath string

var rootCmd = &cobra.Command{
	Use:   "folio-cli",
	Short: "Folio CLI tool",
	Long: `Folio CLI works with portfolio content outside the web server.

Available commands:
  validate    Check a content file
  export      Render the portfolio as a static site
  preview     Print the portfolio in the terminal

Use "folio-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&contentPath, "content", "c", os.Getenv("CONTENT_PATH"),
		"Portfolio JSON file (defaults to $CONTENT_PATH, then the built-in content)")
}

// loadStore opens the content file named by --content, or the embedded
// portfolio when none is given.
func loadStore(fs afero.Fs) (*content.Store, error) {
	if contentPath == "" {
		return content.NewStore(content.Default()), nil
	}
	return content.NewFileStore(fs, contentPath)
}
