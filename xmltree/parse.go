package xmltree

import (
	"bytes"
	"io"
	"os"
	"regexp"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}

	xmlDeclEncodingRe = regexp.MustCompile(`^(<\?xml[^>]*?)\s+encoding\s*=\s*("[^"]*"|'[^']*')`)
)

// SafeParse reads the file at path and returns its ParsedTree, after
// applying the size, encoding, and entity/DTD defenses required of
// untrusted input (§4.1, §7). maxBytes is the ceiling checked against
// the file's size before any bytes are read; a maxBytes of zero or
// less means no ceiling is enforced.
func SafeParse(path string, maxBytes int64) (*Element, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, notFound(path, err)
		}
		return nil, unreadable(path, err)
	}
	if maxBytes > 0 && fi.Size() > maxBytes {
		return nil, fileTooLarge(path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, unreadable(path, err)
	}
	if len(raw) == 0 {
		return nil, malformed(path, io.ErrUnexpectedEOF)
	}

	data, err := normalizeEncoding(path, raw)
	if err != nil {
		return nil, err
	}

	scanned, _, err := securityScan(path, data)
	if err != nil {
		return nil, err
	}

	root, err := Parse(scanned)
	if err != nil {
		return nil, malformed(path, err)
	}
	return root, nil
}

// normalizeEncoding transcodes raw into UTF-8 based on a BOM. Without
// a UTF-16 BOM the bytes are passed on unchanged: given no content
// type, charset.DetermineEncoding does not read the xml declaration and
// never reports a certain encoding here. The declaration is checked by
// Parse instead, whose decoder has no CharsetReader, so a declared
// encoding other than UTF-8, or bytes that are not valid UTF-8, make
// SafeParse fail with Malformed; such documents are not transcoded.
func normalizeEncoding(path string, raw []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(raw, bomUTF16LE):
		return transcodeUTF16(path, raw[len(bomUTF16LE):], unicode.LittleEndian)
	case bytes.HasPrefix(raw, bomUTF16BE):
		return transcodeUTF16(path, raw[len(bomUTF16BE):], unicode.BigEndian)
	case bytes.HasPrefix(raw, bomUTF8):
		raw = raw[len(bomUTF8):]
	}

	_, name, certain := charset.DetermineEncoding(raw, "")
	if certain && name != "utf-8" && name != "" {
		return transcodeNamed(path, raw, name)
	}
	return raw, nil
}

func transcodeUTF16(path string, raw []byte, endian unicode.Endianness) ([]byte, error) {
	enc := unicode.UTF16(endian, unicode.IgnoreBOM)
	out, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return nil, malformed(path, err)
	}
	// The bytes are UTF-8 now, so drop the declaration's encoding
	// pseudo-attribute, which Parse would otherwise reject.
	return xmlDeclEncodingRe.ReplaceAll(out, []byte("${1}")), nil
}

func transcodeNamed(path string, raw []byte, name string) ([]byte, error) {
	enc, _ := charset.Lookup(name)
	if enc == nil {
		return raw, nil
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return nil, malformed(path, err)
	}
	return out, nil
}
