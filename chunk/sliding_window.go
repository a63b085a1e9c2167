package chunk

import (
	"github.com/redhat-ai-americas/xml-analysis-framework-sub000/xmltree"
)

type span struct{ start, end int }

// SlidingWindow implements §4.5.2: fixed-size windows over the
// canonical serialization of the whole tree, stepping forward by
// max_chunk_size - overlap_size. The final window is extended
// backward rather than left short of min_chunk_size.
func SlidingWindow(root *xmltree.Element, cfg Config) []Chunk {
	text := subtreeText(root)
	step := cfg.MaxChunkSize - cfg.OverlapSize
	if step <= 0 {
		step = cfg.MaxChunkSize
	}

	var spans []span
	for start := 0; start < len(text); start += step {
		end := start + cfg.MaxChunkSize
		if end > len(text) {
			end = len(text)
		}
		spans = append(spans, span{start, end})
		if end == len(text) {
			break
		}
	}
	if len(spans) == 0 {
		spans = append(spans, span{0, 0})
	}

	if len(spans) > 1 {
		last := spans[len(spans)-1]
		if last.end-last.start < cfg.MinChunkSize {
			// The plain loop above already placed last.start at
			// prev.end - overlap_size, which is too close to prev.end
			// to reach min_chunk_size. Rather than recompute a start
			// independent of prev (which would desynchronize the
			// overlap step from the window before prev), merge the
			// short tail into prev: the merged window keeps prev's
			// start, so its relationship to the window before prev
			// still satisfies the overlap invariant.
			prev := spans[len(spans)-2]
			spans = append(spans[:len(spans)-2], span{prev.start, last.end})
		}
	}

	windows := make([]Chunk, len(spans))
	for i, sp := range spans {
		windows[i] = Chunk{
			Content:     text[sp.start:sp.end],
			ElementPath: intersectingPath(root),
			Metadata:    map[string]interface{}{"strategy": "sliding-window"},
			sourceOrder: i,
		}
	}
	return postProcess(windows)
}

// intersectingPath names the elements a window's span could intersect.
// A handler-agnostic text window can't recover its originating
// elements without re-parsing the slice, so sliding-window reports the
// document root as its path; ElementsIncluded is left to the caller
// where finer detail matters.
func intersectingPath(root *xmltree.Element) []string {
	return []string{root.Name.Local}
}
