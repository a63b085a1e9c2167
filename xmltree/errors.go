package xmltree

import (
	"errors"
	"fmt"
)

// Kind identifies the category of error SafeParse can return. Handler
// operations never raise (see the dialect package); only the parser
// does.
type Kind int

const (
	// KindFileTooLarge means the input exceeded the configured byte
	// ceiling before any parsing work began.
	KindFileTooLarge Kind = iota
	// KindNotFound means the input path does not exist.
	KindNotFound
	// KindUnreadable means the input path exists but could not be
	// read (permissions, I/O error).
	KindUnreadable
	// KindMalformed means the bytes are not well-formed XML, or an
	// empty document, or an encoding declaration that disagrees with
	// the actual bytes.
	KindMalformed
	// KindSecurityRejected means the document was rejected by one of
	// the entity/DTD/network defenses in security.go.
	KindSecurityRejected
)

func (k Kind) String() string {
	switch k {
	case KindFileTooLarge:
		return "FileTooLarge"
	case KindNotFound:
		return "NotFound"
	case KindUnreadable:
		return "Unreadable"
	case KindMalformed:
		return "Malformed"
	case KindSecurityRejected:
		return "SecurityRejected"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by SafeParse. Reason is only
// populated for KindSecurityRejected, and names the specific
// rejection: "entity-expansion", "external-entity", or "external-dtd".
// A file over the size ceiling is reported as KindFileTooLarge instead.
type Error struct {
	Kind         Kind
	Reason       string
	Path         string
	Line, Column int
	Err          error
}

func (e *Error) Error() string {
	var where string
	if e.Line > 0 {
		where = fmt.Sprintf(" at %s:%d:%d", e.Path, e.Line, e.Column)
	} else if e.Path != "" {
		where = fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Kind == KindSecurityRejected && e.Reason != "" {
		return fmt.Sprintf("xmltree: security rejected%s: %s", where, e.Reason)
	}
	if e.Err != nil {
		return fmt.Sprintf("xmltree: %s%s: %v", e.Kind, where, e.Err)
	}
	return fmt.Sprintf("xmltree: %s%s", e.Kind, where)
}

func (e *Error) Unwrap() error { return e.Err }

func fileTooLarge(path string) error {
	return &Error{Kind: KindFileTooLarge, Path: path}
}

func notFound(path string, err error) error {
	return &Error{Kind: KindNotFound, Path: path, Err: err}
}

func unreadable(path string, err error) error {
	return &Error{Kind: KindUnreadable, Path: path, Err: err}
}

func malformed(path string, err error) error {
	return &Error{Kind: KindMalformed, Path: path, Err: err}
}

func securityRejected(path, reason string) error {
	return &Error{Kind: KindSecurityRejected, Path: path, Reason: reason}
}

// IsSecurityRejected reports whether err is a SafeParse security
// rejection, and if so, what reason was given.
func IsSecurityRejected(err error) (reason string, ok bool) {
	var xerr *Error
	if errors.As(err, &xerr) && xerr.Kind == KindSecurityRejected {
		return xerr.Reason, true
	}
	return "", false
}
