package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/kozaktomas/journal-press/internal/config"
	"github.com/kozaktomas/journal-press/internal/export"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [notebook]",
	Short: "Export a notebook to a PDF document",
	Long: `Exports a notebook into a paginated PDF. The document is written to a
temporary file and published atomically, so an interrupted export never
leaves a partial PDF at the output path.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("output", "", "Output PDF path (defaults to <output-dir>/<notebook>.pdf)")
	exportCmd.Flags().String("page-size", "", "Page size: letter, a4 or a5 (defaults to EXPORT_PAGE_SIZE)")
	exportCmd.Flags().Bool("quiet", false, "Suppress the progress bar")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	st := openStore(cfg)

	pageSize := mustGetString(cmd, "page-size")
	if pageSize == "" {
		pageSize = cfg.Export.PageSize
	}
	geo, err := cfg.GeometryFor(pageSize)
	if err != nil {
		return err
	}

	nb, err := st.LoadNotebook(args[0])
	if err != nil {
		return fmt.Errorf("failed to load notebook: %w", err)
	}

	dest := mustGetString(cmd, "output")
	if dest == "" {
		dest = filepath.Join(cfg.Export.OutputDir, nb.Slug+".pdf")
	}

	entries := export.NotebookEntries(st, nb)
	quiet := mustGetBool(cmd, "quiet")

	if !quiet {
		fmt.Printf("Exporting %s (%d entries, %s)\n", nb.Name, len(entries), pageSize)
	}

	// Create progress bar (only for non-quiet output)
	var bar *progressbar.ProgressBar
	if !quiet && len(entries) > 0 {
		bar = progressbar.NewOptions(len(entries),
			progressbar.OptionSetDescription("Exporting entries"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("entries"),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionFullWidth(),
		)
	}

	// Ctrl+C cancels the export at the next entry boundary.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := export.Run(ctx, export.Request{
		Title:    nb.Name,
		Entries:  entries,
		Dest:     dest,
		Geometry: geo,
		Progress: func(fraction float64, message string) {
			if bar != nil {
				_ = bar.Set(int(fraction * float64(len(entries))))
			}
		},
	})
	if err != nil {
		if errors.Is(err, export.ErrCancelled) {
			fmt.Println("\nExport cancelled, no output written")
			return nil
		}
		return fmt.Errorf("export failed: %w", err)
	}

	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}

	fmt.Printf("Wrote %s (%d pages)\n", res.Path, res.PageCount)
	for _, warning := range res.Report.Warnings {
		fmt.Printf("Warning: %s\n", warning)
	}
	return nil
}
