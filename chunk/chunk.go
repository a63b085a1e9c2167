package chunk

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// Chunk is a bounded substring of the source document annotated with
// structural context (§3).
type Chunk struct {
	ChunkID          string
	Content          string
	ElementPath      []string
	StartLine        int
	EndLine          int
	ElementsIncluded []string
	ParentContext    string
	Metadata         map[string]interface{}
	TokenEstimate    int

	// sourceOrder is the position this chunk first occupied in its
	// strategy's emission order, before post-processing sorts by it.
	// Sliding-window emits in order already; hierarchical and
	// content-aware may merge/recurse out of strict order.
	sourceOrder int
}

// postProcess applies §4.5.5 to strategy output in place: dedupe
// consecutive empty-content chunks, assign token_estimate and
// chunk_id, and sort by source order.
func postProcess(chunks []Chunk) []Chunk {
	deduped := make([]Chunk, 0, len(chunks))
	for i, c := range chunks {
		if c.Content == "" && i > 0 && chunks[i-1].Content == "" {
			continue
		}
		deduped = append(deduped, c)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].sourceOrder < deduped[j].sourceOrder
	})

	for i := range deduped {
		c := &deduped[i]
		c.TokenEstimate = tokenEstimate(c.Content)
		c.ChunkID = chunkID(i, c.Content)
	}
	return deduped
}

// tokenEstimate approximates token count as ceil(len(content)/4),
// floored at 1 (§3 "token_estimate ≥ 1").
func tokenEstimate(content string) int {
	n := (len(content) + 3) / 4
	if n < 1 {
		return 1
	}
	return n
}

// chunkID computes the §4.5.5 deterministic id: "chunk_" + index +
// "_" + the first 8 hex characters of the content's SHA-256 digest.
// Deliberately content-derived, never a per-run correlation id, so
// identical inputs always yield identical ids (§9 "Chunking
// determinism").
func chunkID(index int, content string) string {
	sum := sha256.Sum256([]byte(content))
	return fmt.Sprintf("chunk_%d_%s", index, hex.EncodeToString(sum[:])[:8])
}
