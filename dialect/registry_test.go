package dialect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

type stubHandler struct {
	name       string
	ok         bool
	confidence float64
}

func (s stubHandler) Name() string { return s.name }
func (s stubHandler) CanHandle(tree *xmltree.Element, namespaces map[string]string) (bool, float64) {
	return s.ok, s.confidence
}
func (s stubHandler) DetectType(tree *xmltree.Element, namespaces map[string]string) DocumentTypeInfo {
	return DocumentTypeInfo{TypeName: s.name, Confidence: s.confidence}
}
func (s stubHandler) Analyze(tree *xmltree.Element, filePath string) SpecializedAnalysis {
	return SpecializedAnalysis{DocumentTypeInfo: s.DetectType(tree, nil), HandlerUsed: s.name}
}
func (s stubHandler) ExtractKeyData(tree *xmltree.Element) map[string]interface{} {
	return map[string]interface{}{}
}

func mustParse(t *testing.T, doc string) *xmltree.Element {
	t.Helper()
	el, err := xmltree.Parse([]byte(doc))
	require.NoError(t, err)
	return el
}

func TestRegistrySelectsHighestConfidence(t *testing.T) {
	reg := NewRegistry(
		stubHandler{name: "low", ok: true, confidence: 0.6},
		stubHandler{name: "high", ok: true, confidence: 0.9},
	)
	tree := mustParse(t, `<root/>`)
	h, confidence := reg.Select(context.Background(), tree, nil)
	require.Equal(t, "high", h.Name())
	require.Equal(t, 0.9, confidence)
}

func TestRegistryTieBreaksOnDeclaredOrder(t *testing.T) {
	reg := NewRegistry(
		stubHandler{name: "first", ok: true, confidence: 0.8},
		stubHandler{name: "second", ok: true, confidence: 0.8},
	)
	tree := mustParse(t, `<root/>`)
	h, _ := reg.Select(context.Background(), tree, nil)
	require.Equal(t, "first", h.Name(), "ties break on declared registration order")
}

func TestRegistryFallsBackToGeneric(t *testing.T) {
	reg := NewRegistry(
		stubHandler{name: "never", ok: false, confidence: 0},
	)
	tree := mustParse(t, `<root/>`)
	h, confidence := reg.Select(context.Background(), tree, nil)
	require.IsType(t, &Generic{}, h)
	require.Equal(t, genericConfidence, confidence)
}

func TestRegistryHandlersReturnsDeclaredOrder(t *testing.T) {
	reg := NewRegistry(
		stubHandler{name: "a"},
		stubHandler{name: "b"},
	)
	handlers := reg.Handlers()
	require.Len(t, handlers, 2)
	require.Equal(t, "a", handlers[0].Name())
	require.Equal(t, "b", handlers[1].Name())
}

func TestRegistryEmptyNeverPanics(t *testing.T) {
	reg := NewRegistry()
	tree := mustParse(t, `<root/>`)
	h, confidence := reg.Select(context.Background(), tree, nil)
	require.NotNil(t, h)
	require.Equal(t, genericConfidence, confidence)
}
