// Package outlinefile reads and writes outlines as JSON, YAML or TOML
// documents.
//
// All formats share the object shapes of [outline.PackedPath.Object] and
// [outline.Path.Object]. TOML has no null value, so entries of the point
// metadata column that hold no metadata are written as empty tables and
// read back as absent, and an absent metadata column is an omitted key.
package outlinefile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a document format.
type Format int

const (
	JSON Format = iota
	YAML
	TOML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	case TOML:
		return "TOML"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrUnknownFormat is returned for file names and format values that
// don't map to a known [Format].
var ErrUnknownFormat = errors.New("unknown outline file format")

// FormatFromExt returns the format matching the extension of filename.
// The comparison ignores case.
func FormatFromExt(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
	}
}
