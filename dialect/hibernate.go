package dialect

import (
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/schema"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// Hibernate recognizes Hibernate ORM mapping and configuration files.
type Hibernate struct{}

func NewHibernate() *Hibernate { return &Hibernate{} }

func (Hibernate) Name() string { return "Hibernate" }

func (Hibernate) CanHandle(tree *xmltree.Element, namespaces map[string]string) (bool, float64) {
	switch tree.Name.Local {
	case "hibernate-mapping":
		return true, 0.95
	case "hibernate-configuration":
		return true, 0.95
	default:
		return false, 0
	}
}

func (h Hibernate) DetectType(tree *xmltree.Element, namespaces map[string]string) DocumentTypeInfo {
	_, confidence := h.CanHandle(tree, namespaces)
	kind := "mapping"
	if tree.Name.Local == "hibernate-configuration" {
		kind = "configuration"
	}
	return DocumentTypeInfo{
		TypeName:   h.Name(),
		Confidence: confidence,
		Metadata:   map[string]string{"document_kind": kind},
	}
}

func (h Hibernate) Analyze(tree *xmltree.Element, filePath string) SpecializedAnalysis {
	rec := schema.Inspect(tree)
	data := h.ExtractKeyData(tree)
	return SpecializedAnalysis{
		DocumentTypeInfo: h.DetectType(tree, rec.NamespaceMap),
		KeyFindings:      data,
		StructuredData:   data,
		AIUseCases:       []string{"ORM entity-relationship mapping", "schema migration diffing"},
		QualityMetrics: map[string]float64{
			"class_count": float64(len(childrenNamed(tree, "class"))),
		},
		FilePath:    filePath,
		HandlerUsed: h.Name(),
		Namespaces:  rec.NamespaceMap,
	}
}

func (Hibernate) ExtractKeyData(tree *xmltree.Element) map[string]interface{} {
	classes := childrenNamed(tree, "class")
	names := make([]string, len(classes))
	tables := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Attr("", "name")
		tables[i] = c.Attr("", "table")
	}
	sessionFactories := childrenNamed(tree, "session-factory")
	return map[string]interface{}{
		"class_names":     names,
		"table_names":     tables,
		"class_count":     len(classes),
		"session_factory": len(sessionFactories) > 0,
		SectionRootsKey:   classes,
	}
}
