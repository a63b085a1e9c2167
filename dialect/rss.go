package dialect

import (
	"github.com/clbanning/mxj"

	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/schema"
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// RSS recognizes RSS 2.0 feeds (§8 S2). Its section-root hint is the
// feed's <item> elements, so content-aware chunking groups one chunk
// per item plus a metadata chunk for the channel header.
type RSS struct{}

func NewRSS() *RSS { return &RSS{} }

func (RSS) Name() string { return "RSS 2.0" }

func (RSS) CanHandle(tree *xmltree.Element, namespaces map[string]string) (bool, float64) {
	if tree.Name.Local != "rss" {
		return false, 0
	}
	if tree.Attr("", "version") == "2.0" {
		return true, 0.97
	}
	if channel := firstChild(tree, "channel"); channel != nil {
		return true, 0.8
	}
	return false, 0
}

func (r RSS) DetectType(tree *xmltree.Element, namespaces map[string]string) DocumentTypeInfo {
	_, confidence := r.CanHandle(tree, namespaces)
	return DocumentTypeInfo{
		TypeName:   r.Name(),
		Confidence: confidence,
		Version:    tree.Attr("", "version"),
	}
}

func (r RSS) Analyze(tree *xmltree.Element, filePath string) SpecializedAnalysis {
	rec := schema.Inspect(tree)
	data := r.ExtractKeyData(tree)
	return SpecializedAnalysis{
		DocumentTypeInfo: r.DetectType(tree, rec.NamespaceMap),
		KeyFindings:      data,
		StructuredData:   data,
		AIUseCases:       []string{"news/content feed summarization", "per-item semantic indexing"},
		QualityMetrics: map[string]float64{
			"item_count": float64(countDescendants(tree, "item")),
		},
		FilePath:    filePath,
		HandlerUsed: r.Name(),
		Namespaces:  rec.NamespaceMap,
	}
}

func firstChild(el *xmltree.Element, local string) *xmltree.Element {
	for i := range el.Children {
		if el.Children[i].Name.Local == local {
			return &el.Children[i]
		}
	}
	return nil
}

func (RSS) ExtractKeyData(tree *xmltree.Element) map[string]interface{} {
	channel := firstChild(tree, "channel")
	if channel == nil {
		return map[string]interface{}{SectionRootsKey: nil}
	}
	items := childrenNamed(channel, "item")
	titles := make([]string, len(items))
	structured := make([]map[string]interface{}, len(items))
	for i, it := range items {
		titles[i] = childText(it, "title")
		if m, err := mxj.NewMapXml(xmltree.Marshal(it)); err == nil {
			structured[i] = map[string]interface{}(m)
		}
	}
	return map[string]interface{}{
		"channel_title": childText(channel, "title"),
		"channel_link":  childText(channel, "link"),
		"item_count":    len(items),
		"item_titles":   titles,
		"items":         structured,
		SectionRootsKey: childrenNamed(channel, "item"),
	}
}
