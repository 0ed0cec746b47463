// Package graphfile: report model, output formats and sentinel errors.
package graphfile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadHeader is returned when the first line is not a single positive
	// vertex count.
	ErrBadHeader = errors.New("graphfile: malformed vertex-count header")

	// ErrBadRow is returned when a matrix row is missing, blank, holds a
	// non-integer token, or trailing content follows the last row.
	ErrBadRow = errors.New("graphfile: malformed matrix row")

	// ErrUnknownFormat is returned for an output format outside text, json
	// and yaml.
	ErrUnknownFormat = errors.New("graphfile: unknown report format")
)

// notBipartiteLine is the first text line of an odd-cycle verdict.
const notBipartiteLine = "NOT BIPARTITE"

// Format selects the rendering of a Report.
type Format string

// The three supported report renderings.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat normalizes a user-supplied format name. It trims space,
// ignores case and accepts "yml" as an alias for yaml.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Report is one frozen verdict about one graph, ready for rendering.
// Vertex numbers are 1-based here; the conversion from the 0-based core
// happens in the constructors and nowhere else.
//
// Exactly one of Parts and OddCycle is populated:
//
//	Parts    - both classes, discovery order, present on bipartite graphs
//	           (a class may be empty, but the slice of two is always there).
//	OddCycle - the witness cycle in forward walk order otherwise.
type Report struct {
	Order     int     `json:"order" yaml:"order"`
	Edges     int     `json:"edges" yaml:"edges"`
	Bipartite bool    `json:"bipartite" yaml:"bipartite"`
	Parts     [][]int `json:"parts,omitempty" yaml:"parts,omitempty"`
	OddCycle  []int   `json:"odd_cycle,omitempty" yaml:"odd_cycle,omitempty"`
}
