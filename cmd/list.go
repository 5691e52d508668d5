package cmd

import (
	"fmt"

	"github.com/kozaktomas/journal-press/internal/config"
	"github.com/kozaktomas/journal-press/internal/store"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notebooks under the notebooks root",
	Long:  `Lists every notebook directory under the notebooks root along with its name and entry count.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// openStore builds the notebook store from config, honoring the --root flag.
func openStore(cfg *config.Config) *store.Store {
	root := cfg.Notebooks.Root
	if notebooksRoot != "" {
		root = notebooksRoot
	}
	return store.New(root)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	st := openStore(cfg)

	slugs, err := st.ListNotebooks()
	if err != nil {
		return fmt.Errorf("failed to list notebooks: %w", err)
	}
	if len(slugs) == 0 {
		fmt.Printf("No notebooks found in %s\n", st.Root())
		return nil
	}

	for _, slug := range slugs {
		nb, err := st.LoadNotebook(slug)
		if err != nil {
			fmt.Printf("%-30s (unreadable: %v)\n", slug, err)
			continue
		}
		fmt.Printf("%-30s %s (%d entries)\n", slug, nb.Name, len(nb.Logs))
	}
	return nil
}
