package pdf

import (
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// Bookmark is one outline entry with its resolved destination page.
// Page is 1-based; zero means the destination could not be resolved.
type Bookmark struct {
	Title string
	Page  int
	Kids  []Bookmark
}

// Document is an open source PDF. The underlying file handle is held for the
// duration of one run and rewound before every read.
type Document struct {
	Path      string
	PageCount int

	f *os.File
}

// Open opens the PDF at path and reads its page count.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	count, err := api.PageCount(f, nil)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read PDF %s: %w", path, err)
	}

	return &Document{Path: path, PageCount: count, f: f}, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.f.Close()
}

// Outline returns the document's bookmark tree, or nil when the document has
// no usable outline. Outline errors are treated as "no outline" so the caller
// can fall back to manual ranges.
func (d *Document) Outline() []Bookmark {
	if _, err := d.f.Seek(0, io.SeekStart); err != nil {
		return nil
	}
	bms, err := api.Bookmarks(d.f, nil)
	if err != nil {
		return nil
	}
	return convertBookmarks(bms)
}

func convertBookmarks(bms []pdfcpu.Bookmark) []Bookmark {
	var out []Bookmark
	for _, bm := range bms {
		out = append(out, Bookmark{
			Title: bm.Title,
			Page:  bm.PageFrom,
			Kids:  convertBookmarks(bm.Kids),
		})
	}
	return out
}

// WritePages copies the 0-based half-open page interval [from, to) into a new
// PDF at outPath. On failure the partial output file is removed.
func (d *Document) WritePages(outPath string, from, to int) error {
	if _, err := d.f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind %s: %w", d.Path, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	selection := []string{fmt.Sprintf("%d-%d", from+1, to)}
	if err := api.Trim(d.f, out, selection, nil); err != nil {
		out.Close()
		os.Remove(outPath)
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return out.Close()
}
