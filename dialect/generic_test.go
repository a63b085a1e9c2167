package dialect

import (
	"testing"

	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

const sampleGeneric = `<widget>
  <part id="1">bolt</part>
  <part id="2">nut</part>
</widget>`

func TestGenericCanHandleAlwaysTrue(t *testing.T) {
	tree := mustParse(t, sampleGeneric)
	g := NewGeneric()
	ok, confidence := g.CanHandle(tree, nil)
	if !ok || confidence != genericConfidence {
		t.Fatalf("got ok=%v confidence=%v, want true/%v", ok, confidence, genericConfidence)
	}
}

func TestGenericDetectTypeReportsRootTag(t *testing.T) {
	tree := mustParse(t, sampleGeneric)
	g := NewGeneric()
	info := g.DetectType(tree, nil)
	if info.TypeName != "Generic XML" || info.Metadata["root_tag"] != "widget" {
		t.Fatalf("got %+v", info)
	}
}

func TestGenericExtractKeyDataPopulatesStructuredData(t *testing.T) {
	tree := mustParse(t, sampleGeneric)
	g := NewGeneric()
	data := g.ExtractKeyData(tree)
	structured, ok := data["structured_data"].(map[string]interface{})
	if !ok || structured == nil {
		t.Fatalf("got structured_data %v, want a populated map", data["structured_data"])
	}
}

func TestGenericExtractKeyDataDeclaresTopLevelChildrenAsSectionRoots(t *testing.T) {
	tree := mustParse(t, sampleGeneric)
	g := NewGeneric()
	data := g.ExtractKeyData(tree)
	roots, ok := data[SectionRootsKey].([]*xmltree.Element)
	if !ok || len(roots) != 2 {
		t.Fatalf("got section roots %v, want the two <part> children", data[SectionRootsKey])
	}
	if roots[0].Name.Local != "part" || roots[1].Name.Local != "part" {
		t.Fatalf("got roots %+v, want both tagged part", roots)
	}
}

func TestGenericAnalyzeNeverFails(t *testing.T) {
	tree := mustParse(t, sampleGeneric)
	g := NewGeneric()
	analysis := g.Analyze(tree, "widget.xml")
	if analysis.HandlerUsed != "Generic XML" {
		t.Fatalf("got HandlerUsed %q, want Generic XML", analysis.HandlerUsed)
	}
	if analysis.KeyFindings["attribute_frequency"] == nil {
		t.Fatalf("expected attribute_frequency key finding to be populated")
	}
	if analysis.KeyFindings["total_elements"].(int) < 3 {
		t.Fatalf("got total_elements %v, want at least 3", analysis.KeyFindings["total_elements"])
	}
}
