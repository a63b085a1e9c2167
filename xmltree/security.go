package xmltree

import (
	"regexp"
	"sort"
	"strings"
)

// Go's encoding/xml never fetches external resources and never
// expands a general entity unless the caller populates
// xml.Decoder.Entity — so XXE and billion-laughs are not reachable
// through the decoder itself. securityScan exists to turn "the
// decoder would have errored on an unresolved entity" into a named,
// pre-parse SecurityRejected(reason) (§4.1, §7), and to reject DOCTYPE
// constructs the decoder would otherwise silently tolerate (an
// external SYSTEM/PUBLIC subset it never fetches, but also never
// flags).
//
// maxExpansionFactor bounds how large an internal general entity may
// expand relative to the declared subset's own size, guarding against
// billion-laughs style internal entity chains (§8 property 7) without
// ever touching the decoder or materializing an expanded buffer.
const maxExpansionFactor = 1000

var (
	doctypeRe = regexp.MustCompile(`(?is)<!DOCTYPE\s+[A-Za-z_][\w:.-]*\s*(?:(?:SYSTEM|PUBLIC)\s+("[^"]*"|'[^']*')(?:\s+(?:"[^"]*"|'[^']*'))?\s*)?(\[(.*?)\])?\s*>`)

	// sysEntityRe matches <!ENTITY name SYSTEM "uri"> and
	// <!ENTITY % name PUBLIC "pubid" "uri"> style declarations. Group 3
	// captures which keyword was used, since for PUBLIC the system
	// identifier is the *second* literal, not the first.
	sysEntityRe = regexp.MustCompile(`(?is)<!ENTITY\s+(%\s+)?([A-Za-z_][\w.-]*)\s+(SYSTEM|PUBLIC)\s+("[^"]*"|'[^']*')(?:\s+("[^"]*"|'[^']*'))?\s*>`)

	// litEntityRe matches <!ENTITY name "literal value"> declarations
	// (no SYSTEM/PUBLIC keyword).
	litEntityRe = regexp.MustCompile(`(?is)<!ENTITY\s+(%\s+)?([A-Za-z_][\w.-]*)\s+("[^"]*"|'[^']*')\s*>`)

	entityRefRe     = regexp.MustCompile(`&([A-Za-z_][\w.-]*);`)
	networkSchemeRe = regexp.MustCompile(`(?i)^(https?|ftp|file)://`)
)

type entityDecl struct {
	name     string
	param    bool
	literal  string // decoded literal replacement text, for internal entities
	systemID string // non-empty for SYSTEM/PUBLIC external entities
	start    int    // byte offset in the subset, for deterministic ordering
}

func unquote(tok string) string {
	if len(tok) >= 2 {
		return tok[1 : len(tok)-1]
	}
	return tok
}

// securityScan inspects the raw document bytes for DOCTYPE/ENTITY
// constructs before any XML decoding happens. On success it returns
// the (possibly rewritten) document bytes to decode, and, for an
// S1000D document whose entities are all whitelisted, the extracted
// entity name -> system-id map (§4.1).
func securityScan(path string, data []byte) (out []byte, s1000dEntities map[string]string, err error) {
	dtLoc := doctypeRe.FindSubmatchIndex(data)
	if dtLoc == nil {
		return data, nil, nil
	}

	// group 1 is the DOCTYPE's own SYSTEM/PUBLIC literal, if any.
	if dtLoc[2] >= 0 {
		return nil, nil, securityRejected(path, "external-dtd")
	}

	// group 3 is the internal subset's content, excluding the [ ]
	// delimiters (group 2 includes them); group N occupies
	// dtLoc[2N:2N+2].
	var subset []byte
	if dtLoc[6] >= 0 {
		subset = data[dtLoc[6]:dtLoc[7]]
	}
	if len(subset) == 0 {
		return data, nil, nil
	}

	decls := parseEntityDecls(subset)
	if len(decls) == 0 {
		return data, nil, nil
	}

	if looksLikeS1000D(data) {
		return rewriteS1000D(path, data, dtLoc, decls)
	}

	for _, d := range decls {
		if d.systemID != "" {
			if d.param {
				return nil, nil, securityRejected(path, "external-dtd")
			}
			return nil, nil, securityRejected(path, "external-entity")
		}
	}
	if err := checkExpansion(decls); err != nil {
		return nil, nil, securityRejected(path, "entity-expansion")
	}

	// No external refs, expansion within budget: the entities are
	// purely internal and bounded, so it's safe to let the decoder see
	// them expanded as literal text. Strip the DOCTYPE and substitute
	// references textually, since encoding/xml has no notion of
	// internal general entities other than the five predefined ones.
	return stripDoctypeAndSubstitute(data, dtLoc, decls), nil, nil
}

func parseEntityDecls(subset []byte) []entityDecl {
	var decls []entityDecl
	for _, m := range sysEntityRe.FindAllSubmatchIndex(subset, -1) {
		keyword := string(subset[m[6]:m[7]])
		systemID := unquote(string(subset[m[8]:m[9]]))
		if strings.EqualFold(keyword, "PUBLIC") && m[10] >= 0 {
			systemID = unquote(string(subset[m[10]:m[11]]))
		}
		decls = append(decls, entityDecl{
			param:    m[2] >= 0,
			name:     string(subset[m[4]:m[5]]),
			systemID: systemID,
			start:    m[0],
		})
	}
	for _, m := range litEntityRe.FindAllSubmatchIndex(subset, -1) {
		decls = append(decls, entityDecl{
			param:   m[2] >= 0,
			name:    string(subset[m[4]:m[5]]),
			literal: unquote(string(subset[m[6]:m[7]])),
			start:   m[0],
		})
	}
	sort.Slice(decls, func(i, j int) bool { return decls[i].start < decls[j].start })
	return decls
}

type expansionError string

func (e expansionError) Error() string { return string(e) }

// checkExpansion rejects internal entity chains whose fully-resolved
// length would exceed maxExpansionFactor times the size of the
// declarations themselves, and rejects any entity reference cycle.
// Billion-laughs constructions are caught by the ratio check before
// any exponential blowup is ever realized, since the check walks the
// declaration text, never an expanded buffer.
func checkExpansion(decls []entityDecl) error {
	byName := make(map[string]entityDecl, len(decls))
	var declaredSize int
	for _, d := range decls {
		byName[d.name] = d
		declaredSize += len(d.name) + len(d.literal) + 16
	}
	if declaredSize == 0 {
		declaredSize = 1
	}
	budget := declaredSize * maxExpansionFactor

	var resolve func(name string, seen map[string]bool) (int, error)
	resolve = func(name string, seen map[string]bool) (int, error) {
		if seen[name] {
			return 0, expansionError("entity declaration cycle: " + name)
		}
		d, ok := byName[name]
		if !ok {
			return 1, nil
		}
		seen[name] = true
		defer delete(seen, name)
		total := len(d.literal)
		for _, ref := range entityRefRe.FindAllStringSubmatch(d.literal, -1) {
			n, err := resolve(ref[1], seen)
			if err != nil {
				return 0, err
			}
			total += n
			if total > budget {
				return 0, expansionError("entity expansion budget exceeded")
			}
		}
		return total, nil
	}
	for _, d := range decls {
		if _, err := resolve(d.name, map[string]bool{}); err != nil {
			return err
		}
	}
	return nil
}

func stripDoctypeAndSubstitute(data []byte, dtLoc []int, decls []entityDecl) []byte {
	byName := make(map[string]string, len(decls))
	for _, d := range decls {
		if !d.param {
			byName[d.name] = d.literal
		}
	}
	body := make([]byte, 0, len(data))
	body = append(body, data[:dtLoc[0]]...)
	body = append(body, data[dtLoc[1]:]...)
	text := string(body)
	text = entityRefRe.ReplaceAllStringFunc(text, func(ref string) string {
		name := ref[1 : len(ref)-1]
		if v, ok := byName[name]; ok {
			return v
		}
		return ref
	})
	return []byte(text)
}

func hasNetworkScheme(uri string) bool {
	return networkSchemeRe.MatchString(uri)
}
