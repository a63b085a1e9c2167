package chunk

import (
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/dialect"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/schema"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// configurationLikeDialects are the §4.5.4 type_name values routed to
// the hierarchical strategy regardless of depth or size.
var configurationLikeDialects = map[string]bool{
	"Maven POM":           true,
	"Apache Ant":          true,
	"Spring Beans":        true,
	"Hibernate":           true,
	"Log4j Configuration": true,
	"Apache Ivy":          true,
	"Apache Struts":       true,
}

const (
	shallowDepthThreshold  = 3
	smallDocumentThreshold = 20
)

// Strategy names a chunking strategy, including the policy-level
// "auto" value accepted by the façade.
type Strategy string

const (
	StrategyAuto          Strategy = "auto"
	StrategyHierarchical  Strategy = "hierarchical"
	StrategySlidingWindow Strategy = "sliding-window"
	StrategyContentAware  Strategy = "content-aware"
)

// Auto implements §4.5.4: pick a concrete strategy from the analysis
// and schema record, then run it.
func Auto(tree *xmltree.Element, analysis dialect.SpecializedAnalysis, rec schema.Record, cfg Config) []Chunk {
	switch resolveStrategy(analysis, rec) {
	case StrategySlidingWindow:
		return SlidingWindow(tree, cfg)
	case StrategyContentAware:
		roots, _ := analysis.StructuredData[dialect.SectionRootsKey].([]*xmltree.Element)
		return ContentAware(tree, roots, cfg)
	default:
		return Hierarchical(tree, cfg)
	}
}

func resolveStrategy(analysis dialect.SpecializedAnalysis, rec schema.Record) Strategy {
	if configurationLikeDialects[analysis.TypeName] {
		return StrategyHierarchical
	}
	if rec.MaxDepth <= shallowDepthThreshold || rec.TotalElements <= smallDocumentThreshold {
		return StrategySlidingWindow
	}
	if _, ok := analysis.StructuredData[dialect.SectionRootsKey]; ok {
		return StrategyContentAware
	}
	return StrategyHierarchical
}

// Run dispatches to a named strategy, resolving "auto" via Auto.
func Run(tree *xmltree.Element, strategy Strategy, analysis dialect.SpecializedAnalysis, rec schema.Record, cfg Config) []Chunk {
	switch strategy {
	case StrategyHierarchical:
		return Hierarchical(tree, cfg)
	case StrategySlidingWindow:
		return SlidingWindow(tree, cfg)
	case StrategyContentAware:
		roots, _ := analysis.StructuredData[dialect.SectionRootsKey].([]*xmltree.Element)
		return ContentAware(tree, roots, cfg)
	default:
		return Auto(tree, analysis, rec, cfg)
	}
}
