package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var notebooksRoot string

var rootCmd = &cobra.Command{
	Use:   "journal-press",
	Short: "A CLI tool for exporting notebooks to print-ready PDFs",
	Long: `Journal Press reads notebooks (a notebook.json plus an attachments
directory per notebook) and typesets them into paginated PDF documents
with wrapped text, scaled images, and page footers.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&notebooksRoot, "root", "", "Notebooks root directory (overrides NOTEBOOKS_ROOT)")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
