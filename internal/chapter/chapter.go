package chapter

import (
	"github.com/gubarz/pdfsplit/internal/pdf"
)

// Node is one chapter in the document's outline tree. StartPage and EndPage
// are 1-based and inclusive; EndPage is zero until ResolveEnds has run.
// Included and Expanded are mutated by the selection UI.
type Node struct {
	Title     string
	StartPage int
	EndPage   int
	Children  []*Node
	Included  bool
	Expanded  bool
}

// Range is a flat contiguous span of pages designated for extraction.
type Range struct {
	Title     string
	StartPage int
	EndPage   int
}

// FromBookmarks builds a chapter tree from the document's outline. Entries
// whose destination never resolved to a page are dropped, along with their
// position in sibling order; their resolved children are not re-attached.
// All nodes start out included and collapsed.
func FromBookmarks(bms []pdf.Bookmark) []*Node {
	var nodes []*Node
	for _, bm := range bms {
		if bm.Page < 1 {
			continue
		}
		nodes = append(nodes, &Node{
			Title:     bm.Title,
			StartPage: bm.Page,
			Children:  FromBookmarks(bm.Kids),
			Included:  true,
		})
	}
	return nodes
}

// ResolveEnds assigns an end page to every node in the tree. A node ends one
// page before the next sibling starts; the last node of a sibling list ends
// where its parent ends, and the last top-level node ends at totalPages.
// Must run before the tree is displayed or collected.
func ResolveEnds(nodes []*Node, totalPages int) {
	resolveEnds(nodes, totalPages, 0)
}

// resolveEnds carries nextStart as the page where the first item after this
// sibling block begins, or 0 at the outermost tail.
func resolveEnds(nodes []*Node, totalPages, nextStart int) {
	for i, n := range nodes {
		next := nextStart
		if i < len(nodes)-1 {
			next = nodes[i+1].StartPage
		}
		switch {
		case next == 0:
			n.EndPage = totalPages
		case next > n.StartPage:
			n.EndPage = next - 1
		default:
			// Duplicate or out-of-order bookmark pages collapse to a
			// single-page range rather than failing the whole outline.
			n.EndPage = n.StartPage
		}
		if len(n.Children) > 0 {
			resolveEnds(n.Children, n.EndPage, next)
		}
	}
}

// SetIncluded sets the inclusion flag on n and every descendant.
func (n *Node) SetIncluded(included bool) {
	n.Included = included
	for _, c := range n.Children {
		c.SetIncluded(included)
	}
}

// SetExpanded sets the disclosure flag on n and every descendant.
func (n *Node) SetExpanded(expanded bool) {
	n.Expanded = expanded
	for _, c := range n.Children {
		c.SetExpanded(expanded)
	}
}

// Collect walks the tree in document order and returns the ranges to extract.
// An excluded node is skipped along with its whole subtree. An included node
// that is collapsed (or a leaf) contributes its own range as one unit; an
// expanded node contributes only whatever its children contribute.
func Collect(nodes []*Node) []Range {
	var ranges []Range
	for _, n := range nodes {
		if !n.Included {
			continue
		}
		if !n.Expanded || len(n.Children) == 0 {
			ranges = append(ranges, Range{Title: n.Title, StartPage: n.StartPage, EndPage: n.EndPage})
			continue
		}
		ranges = append(ranges, Collect(n.Children)...)
	}
	return ranges
}
