package dialect

import (
	"strings"

	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/schema"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// KML recognizes Keyhole Markup Language documents (§8 S5). KML
// documents are typically shallow, so auto-selection usually routes
// them to sliding-window (§4.5.4) rather than content-aware.
type KML struct{}

func NewKML() *KML { return &KML{} }

func (KML) Name() string { return "KML" }

func (KML) CanHandle(tree *xmltree.Element, namespaces map[string]string) (bool, float64) {
	if tree.Name.Local != "kml" {
		return false, 0
	}
	if strings.Contains(namespaces[""], "opengis.net/kml") {
		return true, 0.97
	}
	return true, 0.85
}

func (k KML) DetectType(tree *xmltree.Element, namespaces map[string]string) DocumentTypeInfo {
	_, confidence := k.CanHandle(tree, namespaces)
	return DocumentTypeInfo{
		TypeName:   k.Name(),
		Confidence: confidence,
		SchemaURI:  namespaces[""],
	}
}

func (k KML) Analyze(tree *xmltree.Element, filePath string) SpecializedAnalysis {
	rec := schema.Inspect(tree)
	data := k.ExtractKeyData(tree)
	return SpecializedAnalysis{
		DocumentTypeInfo: k.DetectType(tree, rec.NamespaceMap),
		KeyFindings:      data,
		StructuredData:   data,
		AIUseCases:       []string{"geospatial feature indexing", "placemark clustering"},
		QualityMetrics: map[string]float64{
			"placemark_count": float64(countDescendants(tree, "Placemark")),
		},
		FilePath:    filePath,
		HandlerUsed: k.Name(),
		Namespaces:  rec.NamespaceMap,
	}
}

func (KML) ExtractKeyData(tree *xmltree.Element) map[string]interface{} {
	placemarks := flattenSearch(tree, "Placemark")
	names := make([]string, len(placemarks))
	for i, p := range placemarks {
		names[i] = childText(p, "name")
	}
	return map[string]interface{}{
		"placemark_count": len(placemarks),
		"placemark_names": names,
		SectionRootsKey:   placemarks,
	}
}

func flattenSearch(tree *xmltree.Element, local string) []*xmltree.Element {
	var out []*xmltree.Element
	for _, el := range tree.Flatten() {
		if el.Name.Local == local {
			out = append(out, el)
		}
	}
	return out
}
