package dialect

import (
	"strings"

	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/schema"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// Spring recognizes Spring Framework bean-definition XML.
type Spring struct{}

func NewSpring() *Spring { return &Spring{} }

func (Spring) Name() string { return "Spring Beans" }

func (Spring) CanHandle(tree *xmltree.Element, namespaces map[string]string) (bool, float64) {
	if tree.Name.Local != "beans" {
		return false, 0
	}
	if strings.Contains(namespaces[""], "springframework.org/schema/beans") {
		return true, 0.97
	}
	if len(childrenNamed(tree, "bean")) > 0 {
		return true, 0.7
	}
	return false, 0
}

func (s Spring) DetectType(tree *xmltree.Element, namespaces map[string]string) DocumentTypeInfo {
	_, confidence := s.CanHandle(tree, namespaces)
	return DocumentTypeInfo{
		TypeName:   s.Name(),
		Confidence: confidence,
		Metadata:   map[string]string{"default_lazy_init": tree.Attr("", "default-lazy-init")},
	}
}

func (s Spring) Analyze(tree *xmltree.Element, filePath string) SpecializedAnalysis {
	rec := schema.Inspect(tree)
	data := s.ExtractKeyData(tree)
	return SpecializedAnalysis{
		DocumentTypeInfo: s.DetectType(tree, rec.NamespaceMap),
		KeyFindings:      data,
		StructuredData:   data,
		AIUseCases:       []string{"dependency-injection graph analysis", "bean wiring audit"},
		QualityMetrics: map[string]float64{
			"bean_count": float64(len(childrenNamed(tree, "bean"))),
		},
		FilePath:    filePath,
		HandlerUsed: s.Name(),
		Namespaces:  rec.NamespaceMap,
	}
}

func (Spring) ExtractKeyData(tree *xmltree.Element) map[string]interface{} {
	beans := childrenNamed(tree, "bean")
	ids := make([]string, len(beans))
	classes := make([]string, len(beans))
	for i, b := range beans {
		ids[i] = b.Attr("", "id")
		classes[i] = b.Attr("", "class")
	}
	return map[string]interface{}{
		"bean_ids":      ids,
		"bean_classes":  classes,
		"bean_count":    len(beans),
		SectionRootsKey: beans,
	}
}
