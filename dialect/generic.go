package dialect

import (
	"github.com/clbanning/mxj"

	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/schema"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// Generic is the always-applicable fallback handler (§4.4). It never
// fails CanHandle and never returns an error from Analyze; at worst
// its structured_data is empty.
type Generic struct{}

// NewGeneric returns the Generic Handler used by the registry's
// fallback path.
func NewGeneric() *Generic { return &Generic{} }

func (Generic) Name() string { return "Generic XML" }

func (Generic) CanHandle(tree *xmltree.Element, namespaces map[string]string) (bool, float64) {
	return true, genericConfidence
}

func (Generic) DetectType(tree *xmltree.Element, namespaces map[string]string) DocumentTypeInfo {
	return DocumentTypeInfo{
		TypeName:   "Generic XML",
		Confidence: genericConfidence,
		Metadata:   map[string]string{"root_tag": tree.Name.Local},
	}
}

func (g Generic) Analyze(tree *xmltree.Element, filePath string) SpecializedAnalysis {
	rec := schema.Inspect(tree)
	return SpecializedAnalysis{
		DocumentTypeInfo: g.DetectType(tree, rec.NamespaceMap),
		KeyFindings: map[string]interface{}{
			"root_tag":            rec.RootTag,
			"total_elements":      rec.TotalElements,
			"max_depth":           rec.MaxDepth,
			"distinct_tags":       rec.DistinctTagList,
			"namespace_count":     len(rec.NamespaceMap),
			"attribute_frequency": rec.AttributeFrequencyMap,
		},
		StructuredData: g.ExtractKeyData(tree),
		AIUseCases: []string{
			"general-purpose document retrieval",
			"structural similarity search",
		},
		QualityMetrics: map[string]float64{
			"handler_confidence": genericConfidence,
		},
		FilePath:    filePath,
		HandlerUsed: "Generic XML",
		Namespaces:  rec.NamespaceMap,
	}
}

// ExtractKeyData folds tree into a nested map via mxj (so downstream
// consumers get a structured_data payload even for an unrecognized
// dialect), and declares the root's direct children as section roots
// for content-aware chunking (§4.5.3 step 1).
func (Generic) ExtractKeyData(tree *xmltree.Element) map[string]interface{} {
	data := make(map[string]interface{})

	if m, err := mxj.NewMapXml(xmltree.Marshal(tree)); err == nil {
		data["structured_data"] = map[string]interface{}(m)
	}

	roots := make([]*xmltree.Element, len(tree.Children))
	for i := range tree.Children {
		roots[i] = &tree.Children[i]
	}
	data[SectionRootsKey] = roots

	return data
}
