package dialect

import (
	"strings"

	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/schema"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// POM recognizes Maven Project Object Model files (§8 S1).
type POM struct{}

func NewPOM() *POM { return &POM{} }

func (POM) Name() string { return "Maven POM" }

func (POM) CanHandle(tree *xmltree.Element, namespaces map[string]string) (bool, float64) {
	if tree.Name.Local != "project" {
		return false, 0
	}
	modelVersion := childText(tree, "modelVersion")
	isMavenNS := strings.Contains(namespaces[""], "maven.apache.org/POM")
	switch {
	case modelVersion != "" && isMavenNS:
		return true, 0.98
	case modelVersion != "":
		return true, 0.95
	case isMavenNS:
		return true, 0.9
	default:
		return false, 0
	}
}

func (p POM) DetectType(tree *xmltree.Element, namespaces map[string]string) DocumentTypeInfo {
	_, confidence := p.CanHandle(tree, namespaces)
	return DocumentTypeInfo{
		TypeName:   p.Name(),
		Confidence: confidence,
		Version:    childText(tree, "modelVersion"),
		Metadata: map[string]string{
			"groupId":    childText(tree, "groupId"),
			"artifactId": childText(tree, "artifactId"),
			"packaging":  childText(tree, "packaging"),
		},
	}
}

func (p POM) Analyze(tree *xmltree.Element, filePath string) SpecializedAnalysis {
	rec := schema.Inspect(tree)
	data := p.ExtractKeyData(tree)
	return SpecializedAnalysis{
		DocumentTypeInfo: p.DetectType(tree, rec.NamespaceMap),
		KeyFindings:      data,
		StructuredData:   data,
		AIUseCases: []string{
			"dependency graph construction",
			"build reproducibility auditing",
		},
		QualityMetrics: map[string]float64{
			"has_model_version": boolMetric(childText(tree, "modelVersion") != ""),
		},
		FilePath:    filePath,
		HandlerUsed: p.Name(),
		Namespaces:  rec.NamespaceMap,
	}
}

func (POM) ExtractKeyData(tree *xmltree.Element) map[string]interface{} {
	var dependencies []map[string]string
	for _, depsEl := range childrenNamed(tree, "dependencies") {
		for _, dep := range childrenNamed(depsEl, "dependency") {
			dependencies = append(dependencies, map[string]string{
				"groupId":    childText(dep, "groupId"),
				"artifactId": childText(dep, "artifactId"),
				"version":    childText(dep, "version"),
				"scope":      childText(dep, "scope"),
			})
		}
	}

	return map[string]interface{}{
		"groupId":          childText(tree, "groupId"),
		"artifactId":       childText(tree, "artifactId"),
		"version":          childText(tree, "version"),
		"packaging":        childText(tree, "packaging"),
		"dependency_count": len(dependencies),
		"dependencies":     dependencies,
		SectionRootsKey:    childrenNamed(tree, "dependencies"),
	}
}

func boolMetric(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
