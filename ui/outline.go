package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

var (
	outlineKindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	outlineIDStyle     = lipgloss.NewStyle().Bold(true)
	outlineHintStyle   = lipgloss.NewStyle().Faint(true)
	outlineBranchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).PaddingRight(1)
)

// Outline renders the tree rooted at root as an indented outline, one node
// per line, for terminal display. Hidden nodes are marked "(hidden)".
//
// Styling follows the terminal's color profile; without a color terminal
// the output is plain text.
func Outline(root *Node) string {
	if root == nil {
		return ""
	}

	return outline(root).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(outlineBranchStyle).
		String()
}

func outline(n *Node) *tree.Tree {
	t := tree.Root(outlineEntry(n))

	for _, c := range n.Children {
		if len(c.Children) > 0 {
			t.Child(outline(c))
		} else {
			t.Child(outlineEntry(c))
		}
	}

	return t
}

func outlineEntry(n *Node) string {
	var b strings.Builder

	b.WriteString(outlineKindStyle.Render(n.Kind.String()))
	b.WriteString(" ")
	b.WriteString(outlineIDStyle.Render("#" + n.ID))

	if text := n.Text(); text != "" {
		b.WriteString(" ")
		b.WriteString(outlineHintStyle.Render(`"` + text + `"`))
	}

	if !n.Visible() {
		b.WriteString(" ")
		b.WriteString(outlineHintStyle.Render("(hidden)"))
	}

	return b.String()
}
