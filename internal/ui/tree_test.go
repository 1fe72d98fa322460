package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gubarz/pdfsplit/internal/chapter"
)

func sampleTree() []*chapter.Node {
	roots := []*chapter.Node{
		{Title: "One", StartPage: 1, Included: true, Children: []*chapter.Node{
			{Title: "One.A", StartPage: 2, Included: true},
			{Title: "One.B", StartPage: 5, Included: true},
		}},
		{Title: "Two", StartPage: 11, Included: true},
	}
	chapter.ResolveEnds(roots, 20)
	return roots
}

func titles(rows []visibleNode) []string {
	var out []string
	for _, r := range rows {
		out = append(out, r.node.Title)
	}
	return out
}

func TestFlattenVisible(t *testing.T) {
	roots := sampleTree()

	t.Run("collapsed tree shows only roots", func(t *testing.T) {
		got := titles(flattenVisible(roots))
		want := []string{"One", "Two"}
		if len(got) != len(want) {
			t.Fatalf("rows = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("row %d = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("expanding discloses children in document order", func(t *testing.T) {
		roots[0].Expanded = true
		defer func() { roots[0].Expanded = false }()

		rows := flattenVisible(roots)
		got := titles(rows)
		want := []string{"One", "One.A", "One.B", "Two"}
		if len(got) != len(want) {
			t.Fatalf("rows = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("row %d = %q, want %q", i, got[i], want[i])
			}
		}
		if rows[1].depth != 1 || rows[3].depth != 0 {
			t.Errorf("depths = %d,%d, want 1,0", rows[1].depth, rows[3].depth)
		}
	})
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTreeModelKeys(t *testing.T) {
	t.Run("space toggles the node and its subtree", func(t *testing.T) {
		roots := sampleTree()
		m := newTreeModel(roots, "book.pdf", 20)

		m.handleKey(keyMsg(" "))

		if roots[0].Included {
			t.Error("root still included after toggle")
		}
		for _, c := range roots[0].Children {
			if c.Included {
				t.Errorf("child %q not toggled with its parent", c.Title)
			}
		}
		if !roots[1].Included {
			t.Error("sibling must keep its own state")
		}
	})

	t.Run("expand rebuilds the visible rows", func(t *testing.T) {
		roots := sampleTree()
		m := newTreeModel(roots, "book.pdf", 20)

		m.handleKey(tea.KeyMsg{Type: tea.KeyRight})
		if len(m.visible) != 4 {
			t.Fatalf("visible rows = %d, want 4 after expand", len(m.visible))
		}

		m.handleKey(tea.KeyMsg{Type: tea.KeyLeft})
		if len(m.visible) != 2 {
			t.Fatalf("visible rows = %d, want 2 after collapse", len(m.visible))
		}
	})

	t.Run("cursor stays within bounds", func(t *testing.T) {
		roots := sampleTree()
		m := newTreeModel(roots, "book.pdf", 20)

		m.moveCursor(10)
		if m.cursor != len(m.visible)-1 {
			t.Errorf("cursor = %d, want %d", m.cursor, len(m.visible)-1)
		}
		m.moveCursor(-10)
		if m.cursor != 0 {
			t.Errorf("cursor = %d, want 0", m.cursor)
		}
	})
}
