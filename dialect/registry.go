package dialect

import (
	"context"

	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/internal/xlog"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// genericConfidence is the Generic Handler's fixed fallback
// confidence (§3, §4.4).
const genericConfidence = 0.5

// Registry holds an ordered collection of dialect handlers (§4.3).
// Once constructed it is read-only; concurrent Select calls on the
// same Registry share no mutable state (§5).
type Registry struct {
	handlers []Handler
	generic  Handler
}

// NewRegistry builds a Registry from handlers in declared order, plus
// the built-in Generic fallback. Declared order is preserved for
// tie-breaking (§4.3 "ties broken by earlier registry order").
func NewRegistry(handlers ...Handler) *Registry {
	return &Registry{
		handlers: append([]Handler(nil), handlers...),
		generic:  NewGeneric(),
	}
}

// Select runs CanHandle on every registered handler in declared
// order, and returns the one with the highest confidence, ties
// broken by earlier registration. If no handler responds positively,
// the Generic Handler is returned at confidence 0.5.
func (r *Registry) Select(ctx context.Context, tree *xmltree.Element, namespaces map[string]string) (Handler, float64) {
	logger := xlog.FromContext(ctx)

	var best Handler
	bestConfidence := -1.0

	for _, h := range r.handlers {
		ok, confidence := h.CanHandle(tree, namespaces)
		if !ok {
			continue
		}
		if confidence > bestConfidence {
			best = h
			bestConfidence = confidence
		}
	}

	if best == nil {
		logger.Debug().Str("handler", r.generic.Name()).Float64("confidence", genericConfidence).
			Msg("registry: no handler matched, falling back to generic")
		return r.generic, genericConfidence
	}

	logger.Debug().Str("handler", best.Name()).Float64("confidence", bestConfidence).
		Msg("registry: handler selected")
	return best, bestConfidence
}

// Handlers returns the registry's non-generic handlers in declared
// order.
func (r *Registry) Handlers() []Handler {
	return append([]Handler(nil), r.handlers...)
}
