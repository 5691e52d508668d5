package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kozaktomas/journal-press/internal/config"
	"github.com/kozaktomas/journal-press/internal/export"
	"github.com/kozaktomas/journal-press/internal/imagemeta"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [notebook]",
	Short: "Show details about a notebook",
	Long: `Displays a notebook's entries and attachments, including the pixel
dimensions and embeddability of each image attachment.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().Bool("json", false, "Output as JSON")
}

type attachmentInfo struct {
	Filename   string `json:"filename"`
	Type       string `json:"type"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Format     string `json:"format,omitempty"`
	Embeddable bool   `json:"embeddable"`
	Error      string `json:"error,omitempty"`
}

type entryInfo struct {
	ID          int              `json:"id"`
	Title       string           `json:"title,omitempty"`
	Date        string           `json:"date"`
	Attachments []attachmentInfo `json:"attachments,omitempty"`
}

type notebookInfo struct {
	Slug    string      `json:"slug"`
	Name    string      `json:"name"`
	Entries []entryInfo `json:"entries"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	st := openStore(cfg)

	nb, err := st.LoadNotebook(args[0])
	if err != nil {
		return fmt.Errorf("failed to load notebook: %w", err)
	}

	info := notebookInfo{Slug: nb.Slug, Name: nb.Name}
	for _, e := range export.NotebookEntries(st, nb) {
		ei := entryInfo{ID: e.ID, Title: e.Title, Date: e.Date}
		for _, a := range e.Attachments {
			ai := attachmentInfo{Filename: a.Name, Type: a.Kind}
			if ai.Filename == "" {
				ai.Filename = a.Path
			}
			meta, err := imagemeta.Resolve(a.Path)
			if err != nil {
				ai.Error = err.Error()
			} else {
				ai.Width = meta.Width
				ai.Height = meta.Height
				ai.Format = meta.Format
				ai.Embeddable = meta.Embeddable()
			}
			ei.Attachments = append(ei.Attachments, ai)
		}
		info.Entries = append(info.Entries, ei)
	}

	if mustGetBool(cmd, "json") {
		return outputJSON(info)
	}

	fmt.Printf("Notebook: %s (%s)\n", info.Name, info.Slug)
	fmt.Printf("Entries:  %d\n\n", len(info.Entries))
	for _, e := range info.Entries {
		title := e.Title
		if title == "" {
			title = fmt.Sprintf("Entry %d", e.ID)
		}
		fmt.Printf("  [%d] %s (%s)\n", e.ID, title, e.Date)
		for _, a := range e.Attachments {
			switch {
			case a.Error != "":
				fmt.Printf("      - %s: unavailable (%s)\n", a.Filename, a.Error)
			case a.Embeddable:
				fmt.Printf("      - %s: %dx%d %s\n", a.Filename, a.Width, a.Height, a.Format)
			default:
				fmt.Printf("      - %s: %dx%d %s (not embeddable)\n", a.Filename, a.Width, a.Height, a.Format)
			}
		}
	}
	return nil
}

// outputJSON writes data as indented JSON to stdout.
func outputJSON(data any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
