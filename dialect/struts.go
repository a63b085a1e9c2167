package dialect

import (
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/schema"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// Struts recognizes Struts 1.x (<struts-config>) and Struts 2
// (<struts>) configuration files.
type Struts struct{}

func NewStruts() *Struts { return &Struts{} }

func (Struts) Name() string { return "Apache Struts" }

func (Struts) CanHandle(tree *xmltree.Element, namespaces map[string]string) (bool, float64) {
	switch tree.Name.Local {
	case "struts-config":
		return true, 0.95
	case "struts":
		if len(childrenNamed(tree, "package")) > 0 {
			return true, 0.9
		}
		return false, 0
	default:
		return false, 0
	}
}

func (s Struts) DetectType(tree *xmltree.Element, namespaces map[string]string) DocumentTypeInfo {
	_, confidence := s.CanHandle(tree, namespaces)
	version := "1.x"
	if tree.Name.Local == "struts" {
		version = "2.x"
	}
	return DocumentTypeInfo{
		TypeName:   s.Name(),
		Confidence: confidence,
		Version:    version,
	}
}

func (s Struts) Analyze(tree *xmltree.Element, filePath string) SpecializedAnalysis {
	rec := schema.Inspect(tree)
	data := s.ExtractKeyData(tree)
	return SpecializedAnalysis{
		DocumentTypeInfo: s.DetectType(tree, rec.NamespaceMap),
		KeyFindings:      data,
		StructuredData:   data,
		AIUseCases:       []string{"action-mapping inventory", "MVC routing audit"},
		FilePath:         filePath,
		HandlerUsed:      s.Name(),
		Namespaces:       rec.NamespaceMap,
	}
}

func (Struts) ExtractKeyData(tree *xmltree.Element) map[string]interface{} {
	var actionCount int
	if tree.Name.Local == "struts-config" {
		for _, mappings := range childrenNamed(tree, "action-mappings") {
			actionCount += len(childrenNamed(mappings, "action"))
		}
	} else {
		for _, pkg := range childrenNamed(tree, "package") {
			actionCount += len(childrenNamed(pkg, "action"))
		}
	}
	return map[string]interface{}{
		"action_count":  actionCount,
		SectionRootsKey: sectionRootsOf(tree),
	}
}
