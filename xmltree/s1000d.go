package xmltree

import (
	"regexp"
)

// s1000dRootTags are the top-level data module / publication module
// tags an S1000D document is expected to use (§4.1).
var s1000dRootTags = map[string]bool{
	"dmodule": true,
	"pm":      true,
	"dml":     true,
}

// icnEntityRe matches the whitelisted S1000D information control
// number naming convention: ICN-<alnum/dash>.<imagetype>.
var icnEntityRe = regexp.MustCompile(`^ICN-[A-Z0-9-]+\.(cgm|jpg|jpeg|png|gif|tif|tiff)$`)

// s1000dMarkerRe looks for a dmIdent/idstatus descendant without doing
// a full parse, since looksLikeS1000D runs before any entities have
// been resolved and a full Parse could still explode on the very
// entities this function exists to gate.
var s1000dMarkerRe = regexp.MustCompile(`(?is)<(?:\w+:)?(dmIdent|idstatus)[\s>]`)

// looksLikeS1000D reports whether data's root element or early
// structure is characteristic of an S1000D data module, publication
// module, or data module list. It intentionally checks only the root
// tag name and a cheap marker-tag scan, not a full parse, since a
// secure decision about which entity policy to apply must be made
// before any parsing of potentially adversarial content.
func looksLikeS1000D(data []byte) bool {
	name := firstElementName(data)
	if name != "" && s1000dRootTags[name] {
		return true
	}
	return s1000dMarkerRe.Match(data)
}

var firstElementRe = regexp.MustCompile(`<([A-Za-z_][\w.:-]*)`)

// firstElementName returns the local name (prefix stripped) of the
// first element start tag found in data. The XML declaration and any
// DOCTYPE never match firstElementRe, since neither starts with a
// name character immediately after '<'.
func firstElementName(data []byte) string {
	for _, loc := range firstElementRe.FindAllSubmatchIndex(data, -1) {
		tag := string(data[loc[2]:loc[3]])
		if i := lastColon(tag); i >= 0 {
			tag = tag[i+1:]
		}
		return tag
	}
	return ""
}

func lastColon(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ':' {
			return i
		}
	}
	return -1
}

// rewriteS1000D applies the S1000D entity whitelist policy (§4.1): an
// S1000D document's internal subset may declare ICN graphic-reference
// entities matching icnEntityRe and nothing else. Any entity outside
// that whitelist — external or internal, ICN-shaped or not — is
// rejected, since S1000D's own entity usage convention is narrow
// enough that anything else is unexpected and therefore suspicious.
func rewriteS1000D(path string, data []byte, dtLoc []int, decls []entityDecl) ([]byte, map[string]string, error) {
	whitelisted := make(map[string]string, len(decls))
	for _, d := range decls {
		if d.param {
			return nil, nil, securityRejected(path, "external-dtd")
		}
		value := d.literal
		if d.systemID != "" {
			value = d.systemID
		}
		if !icnEntityRe.MatchString(value) {
			if d.systemID != "" {
				return nil, nil, securityRejected(path, "external-entity")
			}
			return nil, nil, securityRejected(path, "entity-expansion")
		}
		whitelisted[d.name] = value
	}

	body := make([]byte, 0, len(data))
	body = append(body, data[:dtLoc[0]]...)
	body = append(body, data[dtLoc[1]:]...)
	text := string(body)
	text = entityRefRe.ReplaceAllStringFunc(text, func(ref string) string {
		name := ref[1 : len(ref)-1]
		if v, ok := whitelisted[name]; ok {
			return v
		}
		return ref
	})
	return []byte(text), whitelisted, nil
}
