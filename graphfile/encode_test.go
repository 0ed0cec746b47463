package graphfile_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bipart/bipartite"
	"github.com/katalvlaran/bipart/graphfile"
	"github.com/katalvlaran/bipart/matrix"
)

// analyzed decodes the input text and runs the full verdict pipeline,
// returning the finished report.
func analyzed(t *testing.T, input string) *graphfile.Report {
	t.Helper()
	m, err := graphfile.DecodeReader(strings.NewReader(input))
	require.NoError(t, err)

	bp, err := bipartite.Partition(m)
	if err == nil {
		return graphfile.NewPartitionReport(m, bp)
	}
	require.ErrorIs(t, err, bipartite.ErrNotBipartite)

	cycle, err := bipartite.OddCycle(m)
	require.NoError(t, err)

	return graphfile.NewCycleReport(m, cycle)
}

func TestReportEncode_TextBipartite(t *testing.T) {
	rep := analyzed(t, "4\n0 1 0 1\n1 0 1 0\n0 1 0 1\n1 0 1 0\n")

	var buf bytes.Buffer
	require.NoError(t, rep.Encode(&buf, graphfile.FormatText))
	require.Equal(t, "1 3\n2 4\n", buf.String())
}

func TestReportEncode_TextSingleVertex(t *testing.T) {
	// One vertex fills class A alone; the second line stays empty.
	rep := analyzed(t, "1\n0\n")

	var buf bytes.Buffer
	require.NoError(t, rep.Encode(&buf, graphfile.FormatText))
	require.Equal(t, "1\n\n", buf.String())
}

func TestReportEncode_TextTriangle(t *testing.T) {
	// The raw walk [2 1 0] turns into the forward 1-based 1 2 3.
	rep := analyzed(t, "3\n0 1 1\n1 0 1\n1 1 0\n")

	var buf bytes.Buffer
	require.NoError(t, rep.Encode(&buf, graphfile.FormatText))
	require.Equal(t, "NOT BIPARTITE\n1 2 3\n", buf.String())
}

func TestReportEncode_TextTwoTriangles(t *testing.T) {
	// Two disjoint triangles: the report carries only the first one found.
	rep := analyzed(t, "6\n"+
		"0 1 1 0 0 0\n"+
		"1 0 1 0 0 0\n"+
		"1 1 0 0 0 0\n"+
		"0 0 0 0 1 1\n"+
		"0 0 0 1 0 1\n"+
		"0 0 0 1 1 0\n")

	var buf bytes.Buffer
	require.NoError(t, rep.Encode(&buf, graphfile.FormatText))
	require.Equal(t, "NOT BIPARTITE\n1 2 3\n", buf.String())
}

func TestReportEncode_TextDiscoveryOrder(t *testing.T) {
	// Edges 1-5 and 5-4 (1-based): class A collects 1, 4, then the
	// isolated 2 and 3 in root-scan order, not sorted.
	rep := analyzed(t, "5\n0 0 0 0 1\n0 0 0 0 0\n0 0 0 0 0\n0 0 0 0 1\n1 0 0 1 0\n")

	var buf bytes.Buffer
	require.NoError(t, rep.Encode(&buf, graphfile.FormatText))
	require.Equal(t, "1 4 2 3\n5\n", buf.String())
}

func TestReportEncode_JSONShape(t *testing.T) {
	rep := analyzed(t, "4\n0 1 0 1\n1 0 1 0\n0 1 0 1\n1 0 1 0\n")

	var buf bytes.Buffer
	require.NoError(t, rep.Encode(&buf, graphfile.FormatJSON))
	require.True(t, strings.HasSuffix(buf.String(), "\n"))
	require.NotContains(t, buf.String(), "odd_cycle") // omitted on the happy path

	var back graphfile.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, rep, &back)
}

func TestReportEncode_YAMLShape(t *testing.T) {
	rep := analyzed(t, "3\n0 1 1\n1 0 1\n1 1 0\n")

	var buf bytes.Buffer
	require.NoError(t, rep.Encode(&buf, graphfile.FormatYAML))
	require.NotContains(t, buf.String(), "parts") // omitted on the rejecting path

	var back graphfile.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, rep, &back)
}

func TestReportEncode_UnknownFormat(t *testing.T) {
	rep := analyzed(t, "1\n0\n")

	err := rep.Encode(&bytes.Buffer{}, graphfile.Format("xml"))
	require.ErrorIs(t, err, graphfile.ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	testCases := map[string]struct {
		input     string
		wanted    graphfile.Format
		wantedErr error
	}{
		"plain text":      {input: "text", wanted: graphfile.FormatText},
		"upper case":      {input: "JSON", wanted: graphfile.FormatJSON},
		"padded":          {input: "  yaml ", wanted: graphfile.FormatYAML},
		"yml alias":       {input: "yml", wanted: graphfile.FormatYAML},
		"unknown format":  {input: "xml", wantedErr: graphfile.ErrUnknownFormat},
		"empty format":    {input: "", wantedErr: graphfile.ErrUnknownFormat},
		"numeric garbage": {input: "42", wantedErr: graphfile.ErrUnknownFormat},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			f, err := graphfile.ParseFormat(tc.input)
			if tc.wantedErr != nil {
				require.ErrorIs(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wanted, f)
		})
	}
}

func TestWriteReport_WritesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	rep := analyzed(t, "3\n0 1 1\n1 0 1\n1 1 0\n")

	require.NoError(t, graphfile.WriteReport(fs, "out/report.txt", rep, graphfile.FormatText))

	data, err := afero.ReadFile(fs, "out/report.txt")
	require.NoError(t, err)
	require.Equal(t, "NOT BIPARTITE\n1 2 3\n", string(data))
}

func TestEncodeMatrix_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	m, err := matrix.FromRows([][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})
	require.NoError(t, err)

	require.NoError(t, graphfile.EncodeMatrix(fs, "gen/path3.txt", m))

	back, err := graphfile.Decode(fs, "gen/path3.txt")
	require.NoError(t, err)
	require.Equal(t, m.String(), back.String())
}

func TestEncodeMatrixWriter_NilMatrix(t *testing.T) {
	err := graphfile.EncodeMatrixWriter(&bytes.Buffer{}, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
