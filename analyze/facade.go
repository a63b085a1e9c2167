// Package analyze is the public façade (C6): three entry operations,
// AnalyzeSchema, Analyze, and Chunk, wiring the safe parser, schema
// inspector, dialect registry, and chunking engine together.
package analyze

import (
	"context"

	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/chunk"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/dialect"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/internal/xlog"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/schema"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// DefaultMaxBytes is the §4.1 size ceiling used when a caller does not
// override it (100 MiB).
const DefaultMaxBytes = 100 << 20

// Facade bundles the handler registry a caller wants analyze/chunk
// calls to use. The zero value is invalid; use New.
type Facade struct {
	registry *dialect.Registry
}

// New builds a Facade around a registry of the standard handlers in
// the declared order used for tie-breaking (§4.3). Callers needing a
// custom handler set should use NewWithRegistry instead.
func New() *Facade {
	return NewWithRegistry(dialect.NewRegistry(
		dialect.NewPOM(),
		dialect.NewAnt(),
		dialect.NewSpring(),
		dialect.NewHibernate(),
		dialect.NewLog4j(),
		dialect.NewIvy(),
		dialect.NewStruts(),
		dialect.NewRSS(),
		dialect.NewKML(),
		dialect.NewSCAP(),
		dialect.NewS1000D(),
	))
}

// NewWithRegistry builds a Facade around a caller-supplied registry
// (§6 "Handler extension interface").
func NewWithRegistry(registry *dialect.Registry) *Facade {
	return &Facade{registry: registry}
}

// AnalyzeSchema invokes C1 then C2: parse path and compute its
// SchemaRecord.
func (f *Facade) AnalyzeSchema(ctx context.Context, path string, maxBytes int64) (schema.Record, error) {
	logger := xlog.NewInvocation(ctx, "analyze_schema", path)
	tree, err := f.parse(path, maxBytes)
	if err != nil {
		logger.Debug().Err(err).Msg("analyze_schema: parse failed")
		return schema.Record{}, err
	}
	rec := schema.Inspect(tree)
	logger.Debug().Int("total_elements", rec.TotalElements).Msg("analyze_schema: done")
	return rec, nil
}

// Analyze invokes C1 then C3 then the selected handler's Analyze
// (§4.6). The returned record's Confidence mirrors the registry's
// confidence for the selected handler.
func (f *Facade) Analyze(ctx context.Context, path string, maxBytes int64) (dialect.SpecializedAnalysis, error) {
	logger := xlog.NewInvocation(ctx, "analyze", path)
	tree, err := f.parse(path, maxBytes)
	if err != nil {
		logger.Debug().Err(err).Msg("analyze: parse failed")
		return dialect.SpecializedAnalysis{}, err
	}

	handler, confidence := f.registry.Select(ctx, tree, tree.NamespaceMap())
	analysis := handler.Analyze(tree, path)
	analysis.Confidence = confidence
	logger.Debug().Str("handler", handler.Name()).Float64("confidence", confidence).Msg("analyze: done")
	return analysis, nil
}

// Chunk invokes C1 then (for "auto") C3, then C5 (§4.6). strategy may
// be chunk.StrategyAuto or one of the concrete strategy names.
func (f *Facade) Chunk(ctx context.Context, path string, maxBytes int64, strategy chunk.Strategy, cfg chunk.Config) ([]chunk.Chunk, error) {
	logger := xlog.NewInvocation(ctx, "chunk", path)
	if err := cfg.Validate(); err != nil {
		logger.Debug().Err(err).Msg("chunk: bad config")
		return nil, err
	}

	tree, err := f.parse(path, maxBytes)
	if err != nil {
		logger.Debug().Err(err).Msg("chunk: parse failed")
		return nil, err
	}

	if strategy == chunk.StrategyHierarchical {
		return chunk.Hierarchical(tree, cfg), nil
	}
	if strategy == chunk.StrategySlidingWindow {
		return chunk.SlidingWindow(tree, cfg), nil
	}

	handler, confidence := f.registry.Select(ctx, tree, tree.NamespaceMap())
	analysis := handler.Analyze(tree, path)
	analysis.Confidence = confidence
	rec := schema.Inspect(tree)

	chunks := chunk.Run(tree, strategy, analysis, rec, cfg)
	logger.Debug().Int("chunk_count", len(chunks)).Msg("chunk: done")
	return chunks, nil
}

func (f *Facade) parse(path string, maxBytes int64) (*xmltree.Element, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return xmltree.SafeParse(path, maxBytes)
}
