package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gubarz/pdfsplit/internal/chapter"
	"github.com/gubarz/pdfsplit/internal/pdf"
)

// OutputFile is one planned extraction unit: a collision-safe filename and a
// 0-based half-open page interval clamped to the document.
type OutputFile struct {
	Name  string // filename within the output directory, extension included
	From  int    // 0-based inclusive
	To    int    // 0-based exclusive
	Range chapter.Range
}

// Plan maps each range to an output file. A range whose start lies beyond the
// document is returned in skipped instead of planned; a range whose end does
// is clamped, not rejected. Duplicate filenames get a numeric suffix.
func Plan(ranges []chapter.Range, totalPages int) (files []OutputFile, skipped []chapter.Range) {
	seen := make(map[string]bool)
	count := make(map[string]int)

	for i, r := range ranges {
		if r.StartPage > totalPages {
			skipped = append(skipped, r)
			continue
		}

		base := SanitizeTitle(r.Title)
		if base == "" {
			base = fmt.Sprintf("chapter_%d", i+1)
		}
		// Suffix until free: a later chapter may be literally titled like an
		// earlier suffixed name (e.g. "Notes_2" after two "Notes").
		name := base
		for seen[name] {
			count[base]++
			name = fmt.Sprintf("%s_%d", base, count[base]+1)
		}
		seen[name] = true

		to := r.EndPage
		if to > totalPages {
			to = totalPages
		}

		files = append(files, OutputFile{
			Name:  name + ".pdf",
			From:  r.StartPage - 1,
			To:    to,
			Range: r,
		})
	}
	return files, skipped
}

// SanitizeTitle reduces a chapter title to a filesystem-safe name, keeping
// letters, digits, spaces, hyphens and underscores.
func SanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// OutputDir returns the default output directory for a source document: a
// sibling directory named after the file without its extension.
func OutputDir(pdfPath string) string {
	base := filepath.Base(pdfPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(pdfPath), name)
}

// Run writes every planned file into outDir, reporting progress on stderr.
// Directory creation is idempotent; no partial file survives a failed write.
func Run(doc *pdf.Document, files []OutputFile, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Processing %s (%d pages)...\n", doc.Path, doc.PageCount)

	for _, of := range files {
		if err := doc.WritePages(filepath.Join(outDir, of.Name), of.From, of.To); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Created %s: pages %d-%d (%d pages)\n",
			of.Name, of.From+1, of.To, of.To-of.From)
	}
	return nil
}
