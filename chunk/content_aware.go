package chunk

import (
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/internal/dependency"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// ContentAware implements §4.5.3: partition section-root elements into
// tag-sharing groups, then apply the hierarchical buffering algorithm
// within each group, never letting a chunk boundary cross a group
// unless the group alone exceeds max_chunk_size.
func ContentAware(tree *xmltree.Element, sectionRoots []*xmltree.Element, cfg Config) []Chunk {
	roots := sectionRoots
	if len(roots) == 0 {
		roots = make([]*xmltree.Element, len(tree.Children))
		for i := range tree.Children {
			roots[i] = &tree.Children[i]
		}
	}

	groups := groupByTag(roots)

	w := &hierarchicalWalk{cfg: cfg}
	for _, group := range groups {
		for _, el := range group {
			w.walk(el, ancestorsOf(tree, el))
		}
		w.flushGroupBoundary()
	}

	for i := range w.chunks {
		w.chunks[i].Metadata["strategy"] = "content-aware"
	}
	return postProcess(w.chunks)
}

// groupByTag orders section-root elements into groups that share a
// local tag name, siblings within a group kept in document order. The
// group order itself is the tags' first-occurrence order, computed
// via internal/dependency.Graph: each newly seen tag is recorded as
// depending on the previously seen tag, so Graph.Flatten's topological
// walk reconstructs first-occurrence order deterministically
// regardless of the graph's internal (alphabetical) target list.
func groupByTag(roots []*xmltree.Element) [][]*xmltree.Element {
	byTag := make(map[string][]*xmltree.Element)
	var g dependency.Graph
	var prevTag string
	seen := make(map[string]bool)

	for _, el := range roots {
		tag := el.Name.Local
		byTag[tag] = append(byTag[tag], el)
		if !seen[tag] {
			seen[tag] = true
			g.Add(tag, prevTag)
			prevTag = tag
		}
	}

	var order []string
	g.Flatten(func(tag string) {
		if tag != "" {
			order = append(order, tag)
		}
	})

	groups := make([][]*xmltree.Element, 0, len(order))
	for _, tag := range order {
		groups = append(groups, byTag[tag])
	}
	return groups
}

// ancestorsOf returns the path of elements from root down to (but not
// including) target, by identity search over the tree. O(tree size)
// per call; acceptable since content-aware chunking calls it once per
// section root, not once per descendant.
func ancestorsOf(root, target *xmltree.Element) []*xmltree.Element {
	var path []*xmltree.Element
	var find func(el *xmltree.Element, trail []*xmltree.Element) bool
	find = func(el *xmltree.Element, trail []*xmltree.Element) bool {
		if el == target {
			path = append([]*xmltree.Element(nil), trail...)
			return true
		}
		for i := range el.Children {
			if find(&el.Children[i], append(trail, el)) {
				return true
			}
		}
		return false
	}
	find(root, nil)
	return path
}
