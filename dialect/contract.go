// Package dialect defines the handler contract (§4.4) and the
// registry that dispatches a parsed tree to the best-matching
// handler (§4.3).
package dialect

import (
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// DocumentTypeInfo is produced by a handler's DetectType operation
// (§3).
type DocumentTypeInfo struct {
	TypeName   string
	Confidence float64
	Version    string
	SchemaURI  string
	Metadata   map[string]string
}

// SpecializedAnalysis extends DocumentTypeInfo by value (§9 "Result /
// analysis composition": embed rather than a subscript escape hatch)
// with the findings a handler's Analyze operation produces (§3).
type SpecializedAnalysis struct {
	DocumentTypeInfo

	KeyFindings    map[string]interface{}
	StructuredData map[string]interface{}
	AIUseCases     []string
	QualityMetrics map[string]float64
	FilePath       string
	HandlerUsed    string
	Namespaces     map[string]string
}

// Handler is the four-operation contract every dialect plugs in with
// (§4.4). Implementations must not mutate tree, and must never raise
// on well-formed but unexpected content — they degrade to a
// reduced-confidence or partially-empty result instead; only the
// parser raises.
type Handler interface {
	// Name is the handler's stable identifier, used for registry
	// tie-break logging and Chunk/SpecializedAnalysis.HandlerUsed.
	Name() string

	// CanHandle reports whether the handler recognizes tree, and how
	// confident it is. Must run in O(tree size) and must not mutate
	// tree.
	CanHandle(tree *xmltree.Element, namespaces map[string]string) (bool, float64)

	// DetectType is only called after CanHandle returned true.
	DetectType(tree *xmltree.Element, namespaces map[string]string) DocumentTypeInfo

	// Analyze populates TypeName/Confidence consistent with
	// DetectType, plus the dialect-specific findings.
	Analyze(tree *xmltree.Element, filePath string) SpecializedAnalysis

	// ExtractKeyData is stateless structural extraction shared by
	// Analyze and the content-aware chunker. The "section_roots" key,
	// when present, names the elements content-aware chunking groups
	// around (§4.5.3 step 1, §9 "content_aware semantic group
	// boundary").
	ExtractKeyData(tree *xmltree.Element) map[string]interface{}
}

// SectionRootsKey is the ExtractKeyData map key a handler populates to
// declare its content-aware grouping hint (§4.5.3).
const SectionRootsKey = "section_roots"
