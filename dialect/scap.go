package dialect

import (
	"github.com/clbanning/mxj"

	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/schema"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// SCAP recognizes Security Content Automation Protocol benchmark
// documents (XCCDF), identified by a root <Benchmark> element.
type SCAP struct{}

func NewSCAP() *SCAP { return &SCAP{} }

func (SCAP) Name() string { return "SCAP Benchmark" }

func (SCAP) CanHandle(tree *xmltree.Element, namespaces map[string]string) (bool, float64) {
	if tree.Name.Local != "Benchmark" {
		return false, 0
	}
	if len(childrenNamed(tree, "Rule")) > 0 || countDescendants(tree, "Rule") > 0 {
		return true, 0.92
	}
	return true, 0.7
}

func (s SCAP) DetectType(tree *xmltree.Element, namespaces map[string]string) DocumentTypeInfo {
	_, confidence := s.CanHandle(tree, namespaces)
	return DocumentTypeInfo{
		TypeName:   s.Name(),
		Confidence: confidence,
		Version:    tree.Attr("", "id"),
	}
}

func (s SCAP) Analyze(tree *xmltree.Element, filePath string) SpecializedAnalysis {
	rec := schema.Inspect(tree)
	data := s.ExtractKeyData(tree)
	return SpecializedAnalysis{
		DocumentTypeInfo: s.DetectType(tree, rec.NamespaceMap),
		KeyFindings:      data,
		StructuredData:   data,
		AIUseCases:       []string{"compliance rule inventory", "control-to-rule traceability"},
		QualityMetrics: map[string]float64{
			"rule_count": float64(countDescendants(tree, "Rule")),
		},
		FilePath:    filePath,
		HandlerUsed: s.Name(),
		Namespaces:  rec.NamespaceMap,
	}
}

// ExtractKeyData folds each <Rule> subtree into a nested map via mxj,
// the same way RSS folds each <item> (title, description, fixtext,
// reference, and any other per-rule fields all survive, instead of the
// two hand-picked attributes rule_ids/severities used to cover alone).
func (SCAP) ExtractKeyData(tree *xmltree.Element) map[string]interface{} {
	rules := flattenSearch(tree, "Rule")
	ids := make([]string, len(rules))
	severities := make([]string, len(rules))
	structured := make([]map[string]interface{}, len(rules))
	for i, r := range rules {
		ids[i] = r.Attr("", "id")
		severities[i] = r.Attr("", "severity")
		if m, err := mxj.NewMapXml(xmltree.Marshal(r)); err == nil {
			structured[i] = map[string]interface{}(m)
		}
	}
	groups := flattenSearch(tree, "Group")
	return map[string]interface{}{
		"benchmark_id":  tree.Attr("", "id"),
		"rule_count":    len(rules),
		"rule_ids":      ids,
		"severities":    severities,
		"rules":         structured,
		"group_count":   len(groups),
		SectionRootsKey: groups,
	}
}
