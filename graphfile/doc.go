// Package graphfile reads adjacency matrices from their plain text form and
// writes analysis reports in three formats.
//
// Input format
//
//	The first line holds the vertex count V; the next V lines hold the
//	matrix rows as space-separated 0/1 cells:
//
//	    4
//	    0 1 0 1
//	    1 0 1 0
//	    0 1 0 1
//	    1 0 1 0
//
//	Tokens may be separated by any run of spaces or tabs. Structural rules
//	(squareness, binarity, zero diagonal, symmetry) are enforced by
//	matrix.FromRows; this package only parses the framing and reports
//	ErrBadHeader or ErrBadRow with the offending line.
//
// Reports
//
//	A Report freezes one verdict for presentation. Vertices switch from the
//	0-based internal numbering to the 1-based external one at this boundary,
//	and witness cycles are reversed into forward walk order. The text form
//	matches the classic output file:
//
//	    1 3
//	    2 4
//
//	for a bipartition (one line per class, the second possibly empty), or
//
//	    NOT BIPARTITE
//	    1 2 3
//
//	for an odd-cycle verdict. FormatJSON and FormatYAML render the same
//	Report struct via encoding/json and gopkg.in/yaml.v3.
//
// All file access goes through an afero.Fs, so tests run on an in-memory
// filesystem and callers can sandbox the tool the same way.
package graphfile
