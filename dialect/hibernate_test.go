package dialect

import "testing"

const sampleHibernateMapping = `<hibernate-mapping>
  <class name="com.example.Widget" table="widgets"/>
</hibernate-mapping>`

func TestHibernateCanHandle(t *testing.T) {
	tree := mustParse(t, sampleHibernateMapping)
	h := NewHibernate()
	ok, confidence := h.CanHandle(tree, nil)
	if !ok || confidence != 0.95 {
		t.Fatalf("got ok=%v confidence=%v, want true/0.95", ok, confidence)
	}
}

func TestHibernateDetectTypeDistinguishesKind(t *testing.T) {
	h := NewHibernate()
	mapping := h.DetectType(mustParse(t, sampleHibernateMapping), nil)
	if mapping.Metadata["document_kind"] != "mapping" {
		t.Fatalf("got %v, want mapping", mapping.Metadata)
	}
	config := h.DetectType(mustParse(t, `<hibernate-configuration/>`), nil)
	if config.Metadata["document_kind"] != "configuration" {
		t.Fatalf("got %v, want configuration", config.Metadata)
	}
}

func TestHibernateExtractKeyData(t *testing.T) {
	tree := mustParse(t, sampleHibernateMapping)
	h := NewHibernate()
	data := h.ExtractKeyData(tree)
	if data["class_count"] != 1 {
		t.Fatalf("got class_count %v, want 1", data["class_count"])
	}
	names, ok := data["class_names"].([]string)
	if !ok || names[0] != "com.example.Widget" {
		t.Fatalf("got class_names %v", data["class_names"])
	}
}
