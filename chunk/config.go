// Package chunk implements the four chunking strategies (hierarchical,
// sliding-window, content-aware, and auto) that convert a parsed tree
// plus its analysis into a bounded, ordered sequence of Chunk values.
package chunk

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config is the externally supplied ChunkingConfig (§4.5). It is a
// typed struct, so there are no option keys to check: Validate checks
// only the recognized fields' value ranges, and unknown keys in a
// host's own config format are not detected here.
type Config struct {
	MaxChunkSize      int  `validate:"gt=0"`
	MinChunkSize      int  `validate:"gte=0,ltfield=MaxChunkSize"`
	OverlapSize       int  `validate:"gte=0,ltfield=MaxChunkSize"`
	PreserveHierarchy bool
	IncludeAncestors  bool
}

// DefaultConfig returns the §4.5 option table's defaults.
func DefaultConfig() Config {
	return Config{
		MaxChunkSize:      2000,
		MinChunkSize:      500,
		OverlapSize:       100,
		PreserveHierarchy: true,
		IncludeAncestors:  true,
	}
}

// Validate reports a BadConfig error if cfg's fields are out of range
// (§7 "BadConfig | C6 | Programming error; surface.").
func (cfg Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return &BadConfigError{Err: err}
	}
	return nil
}

// BadConfigError wraps a validator failure with the §7 BadConfig kind.
type BadConfigError struct {
	Err error
}

func (e *BadConfigError) Error() string {
	return fmt.Sprintf("chunk: bad config: %v", e.Err)
}

func (e *BadConfigError) Unwrap() error { return e.Err }
