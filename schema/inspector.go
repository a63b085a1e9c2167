// Package schema computes structural metrics over a parsed XML tree.
package schema

import (
	"sort"

	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/internal/ordered"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// Record is the pure structural summary of a ParsedTree (§3): element
// count, maximum depth, the set of distinct tag names, the root's
// namespace map, and per-attribute-name occurrence counts across the
// whole tree.
type Record struct {
	RootTag               string
	TotalElements         int
	MaxDepth              int
	NamespaceMap          map[string]string
	DistinctTagList       []string
	AttributeFrequencyMap map[string]int
}

// attrCounts implements ordered.Map so its keys can be walked
// deterministically without exposing the underlying map type.
type attrCounts map[string]int

func (c attrCounts) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}

// Inspect walks tree and computes its Record. Depth is the length of
// the longest root-to-leaf element path, so a single root element with
// no children has MaxDepth == 1 (§3 "SchemaRecord.max_depth ≥ 1 for
// any well-formed document").
func Inspect(tree *xmltree.Element) Record {
	rec := Record{
		RootTag:               tree.Name.Local,
		NamespaceMap:          tree.NamespaceMap(),
		AttributeFrequencyMap: make(map[string]int),
	}

	distinct := make(map[string]struct{})
	var walk func(el *xmltree.Element, depth int)
	walk = func(el *xmltree.Element, depth int) {
		rec.TotalElements++
		if depth > rec.MaxDepth {
			rec.MaxDepth = depth
		}
		distinct[el.Name.Local] = struct{}{}
		for _, attr := range el.Attrs() {
			rec.AttributeFrequencyMap[attr.Name.Local]++
		}
		for i := range el.Children {
			walk(&el.Children[i], depth+1)
		}
	}
	walk(tree, 1)

	rec.DistinctTagList = make([]string, 0, len(distinct))
	for tag := range distinct {
		rec.DistinctTagList = append(rec.DistinctTagList, tag)
	}
	sort.Strings(rec.DistinctTagList)

	return rec
}

// RangeAttributeFrequency calls fn for every attribute name in rec's
// AttributeFrequencyMap in deterministic (sorted) order.
func RangeAttributeFrequency(rec Record, fn func(name string, count int)) {
	ordered.RangeMap(attrCounts(rec.AttributeFrequencyMap), func(name string) {
		fn(name, rec.AttributeFrequencyMap[name])
	})
}
