package dialect

import (
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/schema"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// Ant recognizes Apache Ant build files. Its root tag collides with
// Maven POM's ("project"), so detection leans on the absence of
// <modelVersion> and the presence of <target> children instead.
type Ant struct{}

func NewAnt() *Ant { return &Ant{} }

func (Ant) Name() string { return "Apache Ant" }

func (Ant) CanHandle(tree *xmltree.Element, namespaces map[string]string) (bool, float64) {
	if tree.Name.Local != "project" {
		return false, 0
	}
	if childText(tree, "modelVersion") != "" {
		return false, 0
	}
	targets := len(childrenNamed(tree, "target"))
	if targets == 0 {
		return false, 0
	}
	if tree.Attr("", "default") != "" {
		return true, 0.9
	}
	return true, 0.75
}

func (a Ant) DetectType(tree *xmltree.Element, namespaces map[string]string) DocumentTypeInfo {
	_, confidence := a.CanHandle(tree, namespaces)
	return DocumentTypeInfo{
		TypeName:   a.Name(),
		Confidence: confidence,
		Metadata: map[string]string{
			"name":    tree.Attr("", "name"),
			"default": tree.Attr("", "default"),
			"basedir": tree.Attr("", "basedir"),
		},
	}
}

func (a Ant) Analyze(tree *xmltree.Element, filePath string) SpecializedAnalysis {
	rec := schema.Inspect(tree)
	data := a.ExtractKeyData(tree)
	return SpecializedAnalysis{
		DocumentTypeInfo: a.DetectType(tree, rec.NamespaceMap),
		KeyFindings:      data,
		StructuredData:   data,
		AIUseCases:       []string{"build pipeline summarization", "target dependency mapping"},
		QualityMetrics: map[string]float64{
			"target_count": float64(len(childrenNamed(tree, "target"))),
		},
		FilePath:    filePath,
		HandlerUsed: a.Name(),
		Namespaces:  rec.NamespaceMap,
	}
}

func (Ant) ExtractKeyData(tree *xmltree.Element) map[string]interface{} {
	targets := childrenNamed(tree, "target")
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Attr("", "name")
	}
	return map[string]interface{}{
		"default_target": tree.Attr("", "default"),
		"target_names":   names,
		"target_count":   len(targets),
		SectionRootsKey:  targets,
	}
}
