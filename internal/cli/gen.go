// Package cli: the gen command, matrix fixtures without a text editor.
package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/bipart/graphfile"
	"github.com/katalvlaran/bipart/graphgen"
	"github.com/katalvlaran/bipart/matrix"
)

// Generator shape names accepted by --kind.
const (
	kindCycle     = "cycle"
	kindPath      = "path"
	kindComplete  = "complete"
	kindBipartite = "bipartite"
)

// genOpts carries the gen arguments plus the injected filesystem and
// streams the tests swap out.
type genOpts struct {
	kind   string
	order  int
	left   int
	right  int
	output string

	fs     afero.Fs
	out    io.Writer
	errOut io.Writer
}

// Validate rejects unknown shapes and parameter mismatches up front;
// order bounds are the generators' own contract.
func (o *genOpts) Validate() error {
	switch o.kind {
	case kindCycle, kindPath, kindComplete:
		if o.left != 0 || o.right != 0 {
			return fmt.Errorf("--%s and --%s apply only to --%s %s", leftFlag, rightFlag, kindFlag, kindBipartite)
		}
		if o.order < 1 {
			return fmt.Errorf("--%s is required for --%s %s", orderFlag, kindFlag, o.kind)
		}
	case kindBipartite:
		if o.order != 0 {
			return fmt.Errorf("--%s does not apply to --%s %s, use --%s and --%s", orderFlag, kindFlag, kindBipartite, leftFlag, rightFlag)
		}
		if o.left < 1 || o.right < 1 {
			return fmt.Errorf("--%s and --%s are required for --%s %s", leftFlag, rightFlag, kindFlag, kindBipartite)
		}
	default:
		return fmt.Errorf("unknown shape %q for --%s", o.kind, kindFlag)
	}

	return nil
}

// Execute builds the requested shape and writes it in the input file
// format, ready to feed back into check.
func (o *genOpts) Execute() error {
	m, err := o.build()
	if err != nil {
		return err
	}
	if o.output == streamMarker {
		err = graphfile.EncodeMatrixWriter(o.out, m)
	} else {
		err = graphfile.EncodeMatrix(o.fs, o.output, m)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(o.errOut, o.summarize(m))

	return nil
}

// build dispatches to the generator behind the validated kind.
func (o *genOpts) build() (*matrix.Matrix, error) {
	switch o.kind {
	case kindCycle:
		return graphgen.Cycle(o.order)
	case kindPath:
		return graphgen.Path(o.order)
	case kindComplete:
		return graphgen.Complete(o.order)
	default:
		return graphgen.CompleteBipartite(o.left, o.right)
	}
}

// summarize renders the one-line operator summary of the generated shape.
func (o *genOpts) summarize(m *matrix.Matrix) string {
	dest := o.output
	if dest == streamMarker {
		dest = "stdout"
	}

	return fmt.Sprintf("gen %s: %s vertices, %s edges -> %s",
		o.kind,
		humanize.Comma(int64(m.Order())), humanize.Comma(int64(m.Edges())),
		dest)
}

// addGenFlags registers the gen flags on the given flag set.
func addGenFlags(fs *pflag.FlagSet, o *genOpts) {
	fs.StringVarP(&o.kind, kindFlag, kindFlagShort, kindCycle, kindFlagDescription)
	fs.IntVarP(&o.order, orderFlag, orderFlagShort, 0, orderFlagDescription)
	fs.IntVar(&o.left, leftFlag, 0, leftFlagDescription)
	fs.IntVar(&o.right, rightFlag, 0, rightFlagDescription)
	fs.StringVarP(&o.output, outputFlag, outputFlagShort, streamMarker, outputFlagDescription)
}

// BuildGenCmd builds the command that writes generator shapes as matrix
// files.
func BuildGenCmd() *cobra.Command {
	opts := &genOpts{fs: afero.NewOsFs()}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a matrix file for a standard shape",
		Long: `Build one of the standard shapes (cycle, path, complete, bipartite) and
write it in the matrix input format, so the result pipes straight back
into check.`,
		Example: `  bipart gen --kind cycle --order 7 --output ring.txt
  bipart gen --kind bipartite --left 3 --right 4
  bipart gen --kind complete --order 5 | bipart check -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.out = cmd.OutOrStdout()
			opts.errOut = cmd.ErrOrStderr()
			if err := opts.Validate(); err != nil {
				return err
			}

			return opts.Execute()
		},
	}
	addGenFlags(cmd.Flags(), opts)

	return cmd
}
