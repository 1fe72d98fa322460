package extract

import (
	"path/filepath"
	"testing"

	"github.com/gubarz/pdfsplit/internal/chapter"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "plain title", title: "Chapter One", want: "Chapter One"},
		{name: "keeps hyphens and underscores", title: "Part 1 - the_start", want: "Part 1 - the_start"},
		{name: "strips punctuation", title: `What? "Now": yes/no`, want: "What Now yesno"},
		{name: "trims whitespace", title: "  !!  ", want: ""},
		{name: "unicode punctuation dropped", title: "Résumé § 2", want: "Rsum  2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTitle(tt.title); got != tt.want {
				t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestPlan(t *testing.T) {
	t.Run("maps to zero-based half-open intervals", func(t *testing.T) {
		files, skipped := Plan([]chapter.Range{
			{Title: "Intro", StartPage: 1, EndPage: 10},
			{Title: "Main", StartPage: 11, EndPage: 30},
		}, 30)

		if len(skipped) != 0 {
			t.Fatalf("skipped %d ranges, want 0", len(skipped))
		}
		if len(files) != 2 {
			t.Fatalf("planned %d files, want 2", len(files))
		}
		if files[0].Name != "Intro.pdf" || files[0].From != 0 || files[0].To != 10 {
			t.Errorf("file 0 = %+v, want Intro.pdf [0,10)", files[0])
		}
		if files[1].From != 10 || files[1].To != 30 {
			t.Errorf("file 1 bounds = [%d,%d), want [10,30)", files[1].From, files[1].To)
		}
	})

	t.Run("clamps an end beyond the document", func(t *testing.T) {
		files, skipped := Plan([]chapter.Range{{Title: "Tail", StartPage: 25, EndPage: 99}}, 30)
		if len(skipped) != 0 {
			t.Fatalf("skipped %d ranges, want 0 (clamp, not reject)", len(skipped))
		}
		if files[0].To != 30 {
			t.Errorf("To = %d, want clamped 30", files[0].To)
		}
	})

	t.Run("skips a start beyond the document", func(t *testing.T) {
		files, skipped := Plan([]chapter.Range{
			{Title: "Fine", StartPage: 1, EndPage: 10},
			{Title: "Ghost", StartPage: 31, EndPage: 40},
		}, 30)

		if len(files) != 1 {
			t.Fatalf("planned %d files, want 1", len(files))
		}
		if len(skipped) != 1 || skipped[0].Title != "Ghost" {
			t.Fatalf("skipped = %v, want the Ghost range", skipped)
		}
	})

	t.Run("falls back to an index-based name", func(t *testing.T) {
		files, _ := Plan([]chapter.Range{
			{Title: "Ok", StartPage: 1, EndPage: 1},
			{Title: "???", StartPage: 2, EndPage: 3},
		}, 10)

		if files[1].Name != "chapter_2.pdf" {
			t.Errorf("fallback name = %q, want chapter_2.pdf", files[1].Name)
		}
	})

	t.Run("suffixes colliding filenames", func(t *testing.T) {
		files, _ := Plan([]chapter.Range{
			{Title: "Notes", StartPage: 1, EndPage: 2},
			{Title: "Notes!", StartPage: 3, EndPage: 4},
			{Title: "Notes", StartPage: 5, EndPage: 6},
		}, 10)

		want := []string{"Notes.pdf", "Notes_2.pdf", "Notes_3.pdf"}
		for i, w := range want {
			if files[i].Name != w {
				t.Errorf("file %d name = %q, want %q", i, files[i].Name, w)
			}
		}
	})

	t.Run("suffixed name colliding with a literal title", func(t *testing.T) {
		files, _ := Plan([]chapter.Range{
			{Title: "Notes", StartPage: 1, EndPage: 2},
			{Title: "Notes", StartPage: 3, EndPage: 4},
			{Title: "Notes_2", StartPage: 5, EndPage: 6},
		}, 10)

		seen := make(map[string]bool)
		for _, f := range files {
			if seen[f.Name] {
				t.Fatalf("duplicate filename %q", f.Name)
			}
			seen[f.Name] = true
		}
		if files[1].Name != "Notes_2.pdf" || files[2].Name != "Notes_2_2.pdf" {
			t.Errorf("names = [%q %q %q], want [Notes.pdf Notes_2.pdf Notes_2_2.pdf]",
				files[0].Name, files[1].Name, files[2].Name)
		}
	})

	t.Run("single page range has width one", func(t *testing.T) {
		files, _ := Plan([]chapter.Range{{Title: "One", StartPage: 7, EndPage: 7}}, 10)
		if files[0].From != 6 || files[0].To != 7 {
			t.Errorf("bounds = [%d,%d), want [6,7)", files[0].From, files[0].To)
		}
	})
}

func TestOutputDir(t *testing.T) {
	got := OutputDir(filepath.Join("books", "great-novel.pdf"))
	want := filepath.Join("books", "great-novel")
	if got != want {
		t.Errorf("OutputDir = %q, want %q", got, want)
	}
}
