package render

import (
	"fmt"
	"strings"

	"github.com/ddddddO/gtree"

	"palette/internal/domain"
)

// TreeOptions controls RenderTree
type TreeOptions struct {
	Entries  bool   // list entries under their folders
	IDs      bool   // show folder identifiers
	Selected string // folder to highlight
}

// RenderTree draws the folder forest
func RenderTree(c *domain.Collection, h *domain.Host, opts TreeOptions) (string, error) {
	root := gtree.NewRoot(LightBlue(fmt.Sprintf("Palette (sort: %s)", c.SortMode)))
	roots := labels{}
	for _, f := range c.Folders {
		addFolder(root, roots, f, h, opts)
	}

	var buf strings.Builder
	if err := gtree.OutputFromRoot(&buf, root); err != nil {
		return "", fmt.Errorf("error rendering tree: %v", err)
	}
	return buf.String(), nil
}

// labels makes sibling labels distinct; gtree merges siblings with equal text
type labels map[string]int

func (l labels) unique(label string) string {
	n := l[label]
	l[label] = n + 1
	return label + strings.Repeat("\u200B", n)
}

func addFolder(parent *gtree.Node, siblings labels, f *domain.Folder, h *domain.Host, opts TreeOptions) {
	label := f.Name
	if opts.IDs {
		label += " " + Grey(f.ID)
	}
	if f.ID == opts.Selected {
		label = Gold("> " + label)
	}

	node := parent.Add(siblings.unique(label))
	children := labels{}
	for _, child := range f.Children {
		addFolder(node, children, child, h, opts)
	}

	if !opts.Entries {
		return
	}
	for i, e := range f.Entries {
		node.Add(children.unique(entryLabel(i, e, h)))
	}
}

func entryLabel(i int, e *domain.Entry, h *domain.Host) string {
	label := fmt.Sprintf("%d %s %s", i, Grey("["+e.Kind.String()+"]"), e.Name(h))
	if !e.IsValid(h) {
		return Red(label + " (invalid)")
	}
	return label
}
