package chunk

import (
	"strings"

	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// subtreeText renders el and its descendants as canonical XML text
// (§3 invariant 1: every Chunk.content round-trips through the
// parser). Built directly on xmltree.Marshal rather than re-walking
// el.Content byte ranges, since Marshal already reconstructs
// namespace declarations correctly for an arbitrary subtree root.
func subtreeText(el *xmltree.Element) string {
	return string(xmltree.Marshal(el))
}

// elementPath returns the local tag name of each element from the
// root of the walk down to and including el, in root-to-leaf order.
func elementPath(ancestors []*xmltree.Element, el *xmltree.Element) []string {
	path := make([]string, 0, len(ancestors)+1)
	for _, a := range ancestors {
		path = append(path, a.Name.Local)
	}
	path = append(path, el.Name.Local)
	return path
}

// ancestorContext renders the open tags of ancestors (outermost
// first) as a single snippet, for Chunk.ParentContext when
// include_ancestors is set (§4.5 option table).
func ancestorContext(ancestors []*xmltree.Element) string {
	if len(ancestors) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range ancestors {
		b.WriteString(xmltree.OpenTag(a))
	}
	return b.String()
}

// distinctTagsIn collects the set of distinct local tag names among
// el and its descendants, for Chunk.ElementsIncluded.
func distinctTagsIn(el *xmltree.Element) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, e := range el.Flatten() {
		if _, ok := seen[e.Name.Local]; !ok {
			seen[e.Name.Local] = struct{}{}
			tags = append(tags, e.Name.Local)
		}
	}
	return tags
}
