package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gubarz/pdfsplit/internal/chapter"
	"github.com/gubarz/pdfsplit/internal/config"
	"github.com/gubarz/pdfsplit/internal/extract"
	"github.com/gubarz/pdfsplit/internal/pdf"
	"github.com/gubarz/pdfsplit/internal/ui"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "pdfsplit <book.pdf>",
	Short: "Split a PDF into chapters from its outline",
	Long: `Splits a PDF into one file per chapter.

Chapters come from the PDF's embedded outline; pick the extraction
granularity interactively by expanding, collapsing and toggling entries.
PDFs without an outline (or with --manual) take free-form page ranges
instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().BoolP("manual", "m", false, "Enter page ranges manually even if the PDF has an outline")
	rootCmd.Flags().StringP("output", "o", "", "Output directory (default: a directory named after the PDF, next to it)")
	rootCmd.Flags().Bool("expand-all", false, "Start with every outline level expanded")
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

func runSplit(cmd *cobra.Command, args []string) error {
	path := args[0]

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file %q not found", path)
	}

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		config.SetOutputDir(out)
	}
	if expand, _ := cmd.Flags().GetBool("expand-all"); expand {
		config.SetExpandAll(true)
	}
	manual, _ := cmd.Flags().GetBool("manual")

	doc, err := pdf.Open(path)
	if err != nil {
		return err
	}
	defer doc.Close()

	docName := filepath.Base(path)
	ui.RefreshStyles()

	var ranges []chapter.Range
	var cancelled bool
	fellBack := false

	if !manual {
		roots := chapter.FromBookmarks(doc.Outline())
		if len(roots) == 0 {
			fmt.Fprintln(os.Stderr, "No outline found in this PDF, falling back to manual ranges.")
			manual = true
			fellBack = true
		} else {
			chapter.ResolveEnds(roots, doc.PageCount)
			if config.GetExpandAll() {
				for _, r := range roots {
					r.SetExpanded(true)
				}
			}
			ranges, cancelled, err = ui.SelectChapters(roots, docName, doc.PageCount)
			if err != nil {
				return err
			}
		}
	}

	if manual {
		ranges, cancelled, err = ui.EditRanges(docName, doc.PageCount)
		if err != nil {
			return err
		}
	}

	if cancelled {
		fmt.Fprintln(os.Stderr, "No chapters selected.")
		return nil
	}
	if len(ranges) == 0 {
		if fellBack {
			return fmt.Errorf("no usable chapters in %s", path)
		}
		fmt.Fprintln(os.Stderr, "No chapters selected.")
		return nil
	}

	files, skipped := extract.Plan(ranges, doc.PageCount)
	for _, r := range skipped {
		fmt.Fprintf(os.Stderr, "Warning: chapter %q start %d is beyond total pages %d. Skipping.\n",
			r.Title, r.StartPage, doc.PageCount)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No chapters selected.")
		return nil
	}

	outDir := config.GetOutputDir()
	if outDir == "" {
		outDir = extract.OutputDir(path)
	}

	fmt.Fprintf(os.Stderr, "\nExtracting %d chapters...\n", len(files))
	if err := extract.Run(doc, files, outDir); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Done: %d files in %s\n", len(files), outDir)
	return nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
