package dialect

import "testing"

const sampleRSS = `<rss version="2.0">
  <channel>
    <title>Example Feed</title>
    <link>https://example.com</link>
    <item><title>First post</title><link>https://example.com/1</link></item>
    <item><title>Second post</title><link>https://example.com/2</link></item>
  </channel>
</rss>`

func TestRSSCanHandle(t *testing.T) {
	tree := mustParse(t, sampleRSS)
	r := NewRSS()
	ok, confidence := r.CanHandle(tree, nil)
	if !ok || confidence != 0.97 {
		t.Fatalf("got ok=%v confidence=%v, want true/0.97", ok, confidence)
	}
}

func TestRSSExtractKeyData(t *testing.T) {
	tree := mustParse(t, sampleRSS)
	r := NewRSS()
	data := r.ExtractKeyData(tree)
	if data["channel_title"] != "Example Feed" {
		t.Fatalf("got channel_title %v", data["channel_title"])
	}
	if data["item_count"] != 2 {
		t.Fatalf("got item_count %v, want 2", data["item_count"])
	}
	titles, ok := data["item_titles"].([]string)
	if !ok || titles[0] != "First post" || titles[1] != "Second post" {
		t.Fatalf("got item_titles %v", data["item_titles"])
	}
}

func TestRSSRejectsNonRSSRoot(t *testing.T) {
	tree := mustParse(t, `<feed xmlns="http://www.w3.org/2005/Atom"/>`)
	r := NewRSS()
	if ok, _ := r.CanHandle(tree, nil); ok {
		t.Fatalf("RSS handler should not claim an Atom feed")
	}
}
