// Package graphfile: plain text matrix decoding.
package graphfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/katalvlaran/bipart/matrix"
)

// maxLineBytes bounds a single input line. A row of V cells occupies about
// 2V bytes, so this admits matrices far beyond what an O(V²) analysis can
// digest anyway.
const maxLineBytes = 1 << 20

// Decode opens path on the given filesystem and decodes the matrix inside.
// Errors carry the path; the underlying framing or structural sentinel
// stays available through errors.Is.
func Decode(fsys afero.Fs, path string) (*matrix.Matrix, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := DecodeReader(f)
	if err != nil {
		return nil, fmt.Errorf("graphfile: decode %s: %w", path, err)
	}

	return m, nil
}

// DecodeReader decodes the plain text matrix format from r: a vertex-count
// header followed by exactly that many 0/1 rows. Framing problems map to
// ErrBadHeader and ErrBadRow; structural problems (squareness, binarity,
// diagonal, symmetry) surface as the matrix package sentinels.
//
// Trailing blank lines are tolerated, trailing content is not.
// Complexity: O(V²) time and memory.
func DecodeReader(r io.Reader) (*matrix.Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	// 1) Header: a single positive integer on the first line.
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("graphfile: read header: %w", err)
		}

		return nil, fmt.Errorf("empty input: %w", ErrBadHeader)
	}
	head := strings.Fields(sc.Text())
	if len(head) != 1 {
		return nil, fmt.Errorf("header %q: %w", sc.Text(), ErrBadHeader)
	}
	order, err := strconv.Atoi(head[0])
	if err != nil {
		return nil, fmt.Errorf("header %q: %w", head[0], ErrBadHeader)
	}
	if order < 1 {
		return nil, fmt.Errorf("vertex count %d must be positive: %w", order, ErrBadHeader)
	}

	// 2) Exactly order rows, each with exactly order integer cells.
	rows := make([][]int, order)
	for i := 0; i < order; i++ {
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return nil, fmt.Errorf("graphfile: read row %d: %w", i+1, err)
			}

			return nil, fmt.Errorf("row %d missing, input ends early: %w", i+1, ErrBadRow)
		}
		cells := strings.Fields(sc.Text())
		if len(cells) != order {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i+1, len(cells), order, ErrBadRow)
		}
		rows[i] = make([]int, order)
		for j, cell := range cells {
			rows[i][j], err = strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d cell %d is %q: %w", i+1, j+1, cell, ErrBadRow)
			}
		}
	}

	// 3) Nothing but whitespace may follow the last row.
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			return nil, fmt.Errorf("trailing content after row %d: %w", order, ErrBadRow)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("graphfile: read trailer: %w", err)
	}

	// 4) Structural validation belongs to the matrix package.
	return matrix.FromRows(rows)
}
