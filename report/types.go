// Package report defines output formats, the structured record and sentinel
// errors for writing search results.
package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat indicates an output format name that is not supported.
var ErrUnknownFormat = errors.New("report: unknown format")

// NoSquaresMessage is written by WriteText when there are no results.
const NoSquaresMessage = "No valid word square found."

// Format selects an output encoding.
type Format int

const (
	// FormatText is the human-readable listing.
	FormatText Format = iota
	// FormatJSON is an indented JSON array of Record.
	FormatJSON
	// FormatYAML is a YAML sequence of Record.
	FormatYAML
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "text"/"txt", "json" and "yaml"/"yml" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownFormat, s)
	}
}

// Record is the structured form of one square.
type Record struct {
	Index            int      `json:"index" yaml:"index"`                         // 1-based position in the result list
	Square           []string `json:"square" yaml:"square"`                       // rows, top to bottom
	SquareCharacters []string `json:"square_characters" yaml:"square_characters"` // distinct letters, sorted
	SquareLength     int      `json:"square_length" yaml:"square_length"`         // len(SquareCharacters)
}
