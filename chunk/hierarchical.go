package chunk

import (
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

// Hierarchical implements §4.5.1: a depth-first walk that accumulates
// an open buffer of sibling subtrees, only recursing into an element
// when its whole serialized subtree would overflow max_chunk_size.
func Hierarchical(root *xmltree.Element, cfg Config) []Chunk {
	w := &hierarchicalWalk{cfg: cfg}
	w.walk(root, nil)
	w.flush()
	return postProcess(w.chunks)
}

type hierarchicalWalk struct {
	cfg    Config
	chunks []Chunk

	buf          []*xmltree.Element // subtrees absorbed into the open buffer
	bufAncestors []*xmltree.Element // common ancestor path for buf's owner
	bufLen       int
}

func (w *hierarchicalWalk) walk(el *xmltree.Element, ancestors []*xmltree.Element) {
	text := subtreeText(el)

	if w.bufLen+len(text) <= w.cfg.MaxChunkSize {
		w.absorb(el, ancestors, text)
		return
	}

	if len(text) > w.cfg.MaxChunkSize {
		w.flush()
		for i := range el.Children {
			w.walk(&el.Children[i], append(append([]*xmltree.Element(nil), ancestors...), el))
		}
		return
	}

	w.flush()
	w.absorb(el, ancestors, text)
}

func (w *hierarchicalWalk) absorb(el *xmltree.Element, ancestors []*xmltree.Element, text string) {
	if len(w.buf) == 0 {
		w.bufAncestors = ancestors
	}
	w.buf = append(w.buf, el)
	w.bufLen += len(text)
}

// flush emits the current buffer as a chunk (if non-empty), merging
// with the previously emitted chunk when the buffer is under
// min_chunk_size and the merge would still fit max_chunk_size (§4.5.1
// "attempt to merge with the previous emitted chunk").
func (w *hierarchicalWalk) flush() {
	w.flushWith(true)
}

// flushGroupBoundary is like flush but never merges into the
// previously emitted chunk, since that chunk may belong to a
// different content-aware group (§4.5.3 step 3: "groups never cross
// chunk boundaries unless a single group exceeds max_chunk_size
// alone").
func (w *hierarchicalWalk) flushGroupBoundary() {
	w.flushWith(false)
}

func (w *hierarchicalWalk) flushWith(allowMerge bool) {
	if len(w.buf) == 0 {
		return
	}

	var b []byte
	for _, el := range w.buf {
		b = append(b, subtreeText(el)...)
	}
	content := string(b)

	if allowMerge && len(content) < w.cfg.MinChunkSize && len(w.chunks) > 0 {
		prev := &w.chunks[len(w.chunks)-1]
		if len(prev.Content)+len(content) <= w.cfg.MaxChunkSize {
			prev.Content += content
			prev.EndLine = w.buf[len(w.buf)-1].Line
			prev.ElementsIncluded = mergeTags(prev.ElementsIncluded, w.flushedTags())
			w.reset()
			return
		}
	}

	chunk := Chunk{
		Content:          content,
		ElementPath:      elementPath(w.bufAncestors, w.buf[0]),
		StartLine:        w.buf[0].Line,
		EndLine:          w.buf[len(w.buf)-1].Line,
		ElementsIncluded: w.flushedTags(),
		Metadata:         map[string]interface{}{"strategy": "hierarchical"},
		sourceOrder:      len(w.chunks),
	}
	if w.cfg.IncludeAncestors {
		chunk.ParentContext = ancestorContext(w.bufAncestors)
	}
	w.chunks = append(w.chunks, chunk)
	w.reset()
}

func (w *hierarchicalWalk) flushedTags() []string {
	var tags []string
	for _, el := range w.buf {
		tags = mergeTags(tags, distinctTagsIn(el))
	}
	return tags
}

func (w *hierarchicalWalk) reset() {
	w.buf = nil
	w.bufAncestors = nil
	w.bufLen = 0
}

func mergeTags(a, b []string) []string {
	seen := make(map[string]struct{}, len(a))
	out := append([]string(nil), a...)
	for _, t := range a {
		seen[t] = struct{}{}
	}
	for _, t := range b {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
