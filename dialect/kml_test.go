package dialect

import "testing"

const sampleKML = `<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark><name>Trailhead</name></Placemark>
    <Placemark><name>Summit</name></Placemark>
  </Document>
</kml>`

func TestKMLCanHandle(t *testing.T) {
	tree := mustParse(t, sampleKML)
	k := NewKML()
	ok, confidence := k.CanHandle(tree, tree.NamespaceMap())
	if !ok || confidence != 0.97 {
		t.Fatalf("got ok=%v confidence=%v, want true/0.97", ok, confidence)
	}
}

func TestKMLWithoutNamespaceStillDetects(t *testing.T) {
	tree := mustParse(t, `<kml><Document/></kml>`)
	k := NewKML()
	ok, confidence := k.CanHandle(tree, nil)
	if !ok || confidence != 0.85 {
		t.Fatalf("got ok=%v confidence=%v, want true/0.85", ok, confidence)
	}
}

func TestKMLExtractKeyData(t *testing.T) {
	tree := mustParse(t, sampleKML)
	k := NewKML()
	data := k.ExtractKeyData(tree)
	if data["placemark_count"] != 2 {
		t.Fatalf("got placemark_count %v, want 2", data["placemark_count"])
	}
	names, ok := data["placemark_names"].([]string)
	if !ok || names[0] != "Trailhead" || names[1] != "Summit" {
		t.Fatalf("got placemark_names %v", data["placemark_names"])
	}
}
