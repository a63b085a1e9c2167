package schema

import (
	"testing"

	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

func mustParse(t *testing.T, doc string) *xmltree.Element {
	t.Helper()
	root, err := xmltree.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestInspectSingleElement(t *testing.T) {
	root := mustParse(t, `<root/>`)
	rec := Inspect(root)
	if rec.MaxDepth != 1 {
		t.Errorf("MaxDepth = %d, want 1", rec.MaxDepth)
	}
	if rec.TotalElements != 1 {
		t.Errorf("TotalElements = %d, want 1", rec.TotalElements)
	}
	if rec.RootTag != "root" {
		t.Errorf("RootTag = %q", rec.RootTag)
	}
}

func TestInspectDepthAndCount(t *testing.T) {
	root := mustParse(t, `<a><b><c/></b><b attr="x"><c/><c/></b></a>`)
	rec := Inspect(root)
	if rec.MaxDepth != 3 {
		t.Errorf("MaxDepth = %d, want 3", rec.MaxDepth)
	}
	if rec.TotalElements != 6 {
		t.Errorf("TotalElements = %d, want 6", rec.TotalElements)
	}
	if len(rec.DistinctTagList) != 3 {
		t.Errorf("DistinctTagList = %v, want 3 entries", rec.DistinctTagList)
	}
	if rec.AttributeFrequencyMap["attr"] != 1 {
		t.Errorf("AttributeFrequencyMap[attr] = %d, want 1", rec.AttributeFrequencyMap["attr"])
	}
}

func TestInspectNamespaceMap(t *testing.T) {
	root := mustParse(t, `<root xmlns="urn:default" xmlns:x="urn:x"/>`)
	rec := Inspect(root)
	if rec.NamespaceMap[""] != "urn:default" {
		t.Errorf("default namespace = %q", rec.NamespaceMap[""])
	}
	if rec.NamespaceMap["x"] != "urn:x" {
		t.Errorf("x namespace = %q", rec.NamespaceMap["x"])
	}
}

func TestRangeAttributeFrequencyDeterministic(t *testing.T) {
	root := mustParse(t, `<a z="1" y="2" x="3"/>`)
	rec := Inspect(root)
	var order []string
	RangeAttributeFrequency(rec, func(name string, count int) {
		order = append(order, name)
	})
	want := []string{"x", "y", "z"}
	for i, name := range want {
		if order[i] != name {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}
