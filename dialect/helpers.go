package dialect

import (
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// childText returns the trimmed text of the first direct child of el
// with the given local name, or "" if none exists.
func childText(el *xmltree.Element, local string) string {
	for i := range el.Children {
		if el.Children[i].Name.Local == local {
			return el.Children[i].Text()
		}
	}
	return ""
}

// hasChild reports whether el has a direct child with the given local
// name.
func hasChild(el *xmltree.Element, local string) bool {
	for i := range el.Children {
		if el.Children[i].Name.Local == local {
			return true
		}
	}
	return false
}

// countDescendants returns the number of elements in tree (root
// included) whose local name equals local.
func countDescendants(tree *xmltree.Element, local string) int {
	n := 0
	for _, el := range tree.Flatten() {
		if el.Name.Local == local {
			n++
		}
	}
	return n
}

// sectionRootsOf returns the direct children of tree as a
// []*xmltree.Element, for handlers whose section-root hint is simply
// "group by top-level child" (§4.5.3 step 1).
func sectionRootsOf(tree *xmltree.Element) []*xmltree.Element {
	roots := make([]*xmltree.Element, len(tree.Children))
	for i := range tree.Children {
		roots[i] = &tree.Children[i]
	}
	return roots
}

// childrenNamed returns every direct child of el whose local name
// equals local, in document order.
func childrenNamed(el *xmltree.Element, local string) []*xmltree.Element {
	var out []*xmltree.Element
	for i := range el.Children {
		if el.Children[i].Name.Local == local {
			out = append(out, &el.Children[i])
		}
	}
	return out
}
