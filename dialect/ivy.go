package dialect

import (
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/schema"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// Ivy recognizes Apache Ivy module descriptors.
type Ivy struct{}

func NewIvy() *Ivy { return &Ivy{} }

func (Ivy) Name() string { return "Apache Ivy" }

func (Ivy) CanHandle(tree *xmltree.Element, namespaces map[string]string) (bool, float64) {
	if tree.Name.Local != "ivy-module" {
		return false, 0
	}
	if tree.Attr("", "version") != "" {
		return true, 0.95
	}
	return true, 0.8
}

func (i Ivy) DetectType(tree *xmltree.Element, namespaces map[string]string) DocumentTypeInfo {
	_, confidence := i.CanHandle(tree, namespaces)
	return DocumentTypeInfo{
		TypeName:   i.Name(),
		Confidence: confidence,
		Version:    tree.Attr("", "version"),
	}
}

func (i Ivy) Analyze(tree *xmltree.Element, filePath string) SpecializedAnalysis {
	rec := schema.Inspect(tree)
	data := i.ExtractKeyData(tree)
	return SpecializedAnalysis{
		DocumentTypeInfo: i.DetectType(tree, rec.NamespaceMap),
		KeyFindings:      data,
		StructuredData:   data,
		AIUseCases:       []string{"dependency resolution audit"},
		FilePath:         filePath,
		HandlerUsed:      i.Name(),
		Namespaces:       rec.NamespaceMap,
	}
}

func (Ivy) ExtractKeyData(tree *xmltree.Element) map[string]interface{} {
	var module, organisation string
	for _, info := range childrenNamed(tree, "info") {
		module = info.Attr("", "module")
		organisation = info.Attr("", "organisation")
	}
	var deps []*xmltree.Element
	for _, depsEl := range childrenNamed(tree, "dependencies") {
		deps = append(deps, childrenNamed(depsEl, "dependency")...)
	}
	return map[string]interface{}{
		"module":           module,
		"organisation":     organisation,
		"dependency_count": len(deps),
		SectionRootsKey:    childrenNamed(tree, "dependencies"),
	}
}
