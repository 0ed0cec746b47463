// Package cli: the check command, one pipeline from matrix file to report.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bipart/bipartite"
	"github.com/katalvlaran/bipart/graphfile"
	"github.com/katalvlaran/bipart/matrix"
)

// checkOpts carries everything one check run needs: arguments, parsed
// flags and the injected filesystem and streams the tests swap out.
type checkOpts struct {
	inputs []string
	output string
	format string
	verify bool

	reportFormat graphfile.Format

	fs     afero.Fs
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// Validate resolves defaulted inputs and outputs and rejects impossible
// flag combinations before any file is touched.
func (o *checkOpts) Validate() error {
	f, err := graphfile.ParseFormat(o.format)
	if err != nil {
		return err
	}
	o.reportFormat = f

	// The bare invocation keeps the classic fixed filename pair; a named
	// input reports to stdout unless --output says otherwise.
	if len(o.inputs) == 0 {
		o.inputs = []string{defaultInput}
		if o.output == "" {
			o.output = defaultOutput
		}
	}
	if o.output == "" {
		o.output = streamMarker
	}

	if len(o.inputs) > 1 {
		if o.output != streamMarker {
			return fmt.Errorf("cannot write %d reports into one --%s file", len(o.inputs), outputFlag)
		}
		for _, input := range o.inputs {
			if input == streamMarker {
				return fmt.Errorf("stdin (%q) cannot be mixed with file inputs", streamMarker)
			}
		}
	}

	return nil
}

// Execute analyzes every input and writes one report per input. Inputs are
// independent, so they run concurrently; summaries still print in argument
// order once all of them finish.
func (o *checkOpts) Execute() error {
	lines := make([]string, len(o.inputs))
	var g errgroup.Group
	for i := range o.inputs {
		i := i // per-iteration copy: required under go < 1.22 loop semantics
		g.Go(func() error {
			line, err := o.checkOne(o.inputs[i], o.targetFor(o.inputs[i]))
			if err != nil {
				return fmt.Errorf("check %s: %w", o.inputs[i], err)
			}
			lines[i] = line

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(o.errOut, line)
	}

	return nil
}

// targetFor resolves the report destination of one input.
func (o *checkOpts) targetFor(input string) string {
	if len(o.inputs) == 1 {
		return o.output
	}

	return input + outputSuffix
}

// checkOne runs decode, analysis and report writing for a single input and
// returns its one-line summary.
func (o *checkOpts) checkOne(input, target string) (string, error) {
	m, err := o.load(input)
	if err != nil {
		return "", err
	}
	rep, err := o.analyze(m)
	if err != nil {
		return "", err
	}
	if err = o.emit(rep, target); err != nil {
		return "", err
	}

	return o.summarize(input, target, rep), nil
}

// load decodes the matrix from a file, or from the input stream for "-".
func (o *checkOpts) load(input string) (*matrix.Matrix, error) {
	if input == streamMarker {
		m, err := graphfile.DecodeReader(o.in)
		if err != nil {
			return nil, fmt.Errorf("decode stdin: %w", err)
		}

		return m, nil
	}

	return graphfile.Decode(o.fs, input)
}

// analyze runs the verdict pipeline: Partition first, OddCycle on
// rejection, optional structural verification of whichever witness came
// out. Both outcomes are reports; only faults are errors.
func (o *checkOpts) analyze(m *matrix.Matrix) (*graphfile.Report, error) {
	bp, err := bipartite.Partition(m)
	if err == nil {
		if o.verify {
			if verr := bipartite.VerifyPartition(m, bp); verr != nil {
				return nil, fmt.Errorf("verify bipartition: %w", verr)
			}
		}

		return graphfile.NewPartitionReport(m, bp), nil
	}
	if !errors.Is(err, bipartite.ErrNotBipartite) {
		return nil, err
	}

	cycle, err := bipartite.OddCycle(m)
	if err != nil {
		// Coloring saw a conflict, so some cycle must close. Disagreement
		// between the two passes is a fault, not a verdict.
		return nil, fmt.Errorf("coloring rejected the graph but no cycle closed: %w", err)
	}
	if o.verify {
		if verr := bipartite.VerifyOddCycle(m, cycle); verr != nil {
			return nil, fmt.Errorf("verify odd cycle: %w", verr)
		}
	}

	return graphfile.NewCycleReport(m, cycle), nil
}

// emit writes the report to its destination: the output stream for "-",
// a file on the injected filesystem otherwise.
func (o *checkOpts) emit(rep *graphfile.Report, target string) error {
	if target == streamMarker {
		return rep.Encode(o.out, o.reportFormat)
	}

	return graphfile.WriteReport(o.fs, target, rep, o.reportFormat)
}

// summarize renders the one-line operator summary for one finished input.
func (o *checkOpts) summarize(input, target string, rep *graphfile.Report) string {
	verdict := failureSprint("not bipartite")
	if rep.Bipartite {
		verdict = successSprint("bipartite")
	}
	name := input
	if input == streamMarker {
		name = "stdin"
	}
	dest := target
	if target == streamMarker {
		dest = "stdout"
	}

	return fmt.Sprintf("%s: %s (%s vertices, %s edges) -> %s",
		name, verdict,
		humanize.Comma(int64(rep.Order)), humanize.Comma(int64(rep.Edges)),
		dest)
}

// addCheckFlags registers the check flags on the given flag set. The
// output default stays empty so Validate can tell "unset" from "-".
func addCheckFlags(fs *pflag.FlagSet, o *checkOpts) {
	fs.StringVarP(&o.output, outputFlag, outputFlagShort, "", outputFlagDescription)
	fs.StringVar(&o.format, formatFlag, string(graphfile.FormatText), formatFlagDescription)
	fs.BoolVar(&o.verify, verifyFlag, false, verifyFlagDescription)
}

// BuildCheckCmd builds the command that decides bipartiteness for one or
// more matrix files.
func BuildCheckCmd() *cobra.Command {
	opts := &checkOpts{fs: afero.NewOsFs()}
	cmd := &cobra.Command{
		Use:   "check [input]...",
		Short: "Decide bipartiteness for matrix files",
		Long: `Decode each input file as an adjacency matrix, decide whether the graph is
bipartite, and write either the two vertex classes or the NOT BIPARTITE
banner with a witness cycle. Pass "-" to read a single matrix from stdin.
Without arguments, check reads "input.txt" and writes "output.txt".`,
		Example: `  bipart check
  bipart check graph.txt
  bipart check --format json a.txt b.txt c.txt
  bipart gen --kind cycle --order 5 | bipart check -`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.inputs = args
			opts.in = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			opts.errOut = cmd.ErrOrStderr()
			if err := opts.Validate(); err != nil {
				return err
			}

			return opts.Execute()
		},
	}
	addCheckFlags(cmd.Flags(), opts)

	return cmd
}
