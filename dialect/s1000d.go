package dialect

import (
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/schema"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// s1000dRootTags mirrors the root-tag set the safe parser uses to
// decide whether to apply the S1000D entity whitelist (§4.1); kept in
// sync by hand since the two concerns (entity policy vs. dialect
// detection) are deliberately independent.
var s1000dRootTags = map[string]bool{
	"dmodule": true,
	"pm":      true,
	"dml":     true,
}

// S1000D recognizes S1000D data modules, publication modules, and
// data module lists — the dialect that exercises the safe parser's
// entity-whitelist preprocessing path end to end (§4.1, §8 property 6).
type S1000D struct{}

func NewS1000D() *S1000D { return &S1000D{} }

func (S1000D) Name() string { return "S1000D Data Module" }

func (S1000D) CanHandle(tree *xmltree.Element, namespaces map[string]string) (bool, float64) {
	if s1000dRootTags[tree.Name.Local] {
		return true, 0.95
	}
	if hasChild(tree, "identAndStatusSection") || hasChild(tree, "idstatus") {
		return true, 0.8
	}
	return false, 0
}

func (s S1000D) DetectType(tree *xmltree.Element, namespaces map[string]string) DocumentTypeInfo {
	_, confidence := s.CanHandle(tree, namespaces)
	return DocumentTypeInfo{
		TypeName:   s.Name(),
		Confidence: confidence,
		Metadata:   map[string]string{"module_kind": tree.Name.Local},
	}
}

func (s S1000D) Analyze(tree *xmltree.Element, filePath string) SpecializedAnalysis {
	rec := schema.Inspect(tree)
	data := s.ExtractKeyData(tree)
	return SpecializedAnalysis{
		DocumentTypeInfo: s.DetectType(tree, rec.NamespaceMap),
		KeyFindings:      data,
		StructuredData:   data,
		AIUseCases:       []string{"technical-publication retrieval", "maintenance procedure indexing"},
		FilePath:         filePath,
		HandlerUsed:      s.Name(),
		Namespaces:       rec.NamespaceMap,
	}
}

func (S1000D) ExtractKeyData(tree *xmltree.Element) map[string]interface{} {
	var dmCode string
	if ident := firstChild(tree, "identAndStatusSection"); ident != nil {
		if code := firstChild(ident, "dmAddress"); code != nil {
			if dmc := firstChild(code, "dmIdent"); dmc != nil {
				if c := firstChild(dmc, "dmCode"); c != nil {
					dmCode = c.Attr("", "systemCode")
				}
			}
		}
	}
	graphics := flattenSearch(tree, "graphic")
	refs := make([]string, len(graphics))
	for i, g := range graphics {
		refs[i] = g.Attr("", "infoEntityIdent")
	}
	return map[string]interface{}{
		"module_kind":         tree.Name.Local,
		"dm_code_systemCode":  dmCode,
		"graphic_reference_count": len(graphics),
		"graphic_references":  refs,
		SectionRootsKey:       sectionRootsOf(tree),
	}
}
