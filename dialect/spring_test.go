package dialect

import "testing"

const sampleSpring = `<beans xmlns="http://www.springframework.org/schema/beans">
  <bean id="widgetService" class="com.example.WidgetService"/>
  <bean id="widgetRepo" class="com.example.WidgetRepository"/>
</beans>`

func TestSpringCanHandle(t *testing.T) {
	tree := mustParse(t, sampleSpring)
	s := NewSpring()
	ok, confidence := s.CanHandle(tree, tree.NamespaceMap())
	if !ok || confidence != 0.97 {
		t.Fatalf("got ok=%v confidence=%v, want true/0.97", ok, confidence)
	}
}

func TestSpringExtractKeyData(t *testing.T) {
	tree := mustParse(t, sampleSpring)
	s := NewSpring()
	data := s.ExtractKeyData(tree)
	if data["bean_count"] != 2 {
		t.Fatalf("got bean_count %v, want 2", data["bean_count"])
	}
	ids, ok := data["bean_ids"].([]string)
	if !ok || ids[0] != "widgetService" {
		t.Fatalf("got bean_ids %v", data["bean_ids"])
	}
}

func TestSpringRejectsBeanlessRoot(t *testing.T) {
	tree := mustParse(t, `<beans/>`)
	s := NewSpring()
	if ok, _ := s.CanHandle(tree, nil); ok {
		t.Fatalf("Spring should not claim a namespace-less, bean-less <beans> root")
	}
}
