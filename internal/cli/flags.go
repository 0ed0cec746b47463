// Package cli: flag names, shorthands and descriptions in one place, so
// commands and tests never drift apart on spelling.
package cli

// Long flag names.
const (
	formatFlag = "format"
	outputFlag = "output"
	verifyFlag = "verify"
	kindFlag   = "kind"
	orderFlag  = "order"
	leftFlag   = "left"
	rightFlag  = "right"
)

// Short flag names.
const (
	outputFlagShort = "o"
	kindFlagShort   = "k"
	orderFlagShort  = "n"
)

// Flag descriptions.
const (
	formatFlagDescription = `Report format: "text", "json" or "yaml".`
	outputFlagDescription = `Report destination. Defaults to "-" (stdout) for a single named
input and to "<input>.out" per input for several; the bare invocation
writes "output.txt".`
	verifyFlagDescription = "Re-check every verdict structurally before writing it."
	kindFlagDescription   = `Shape to generate: "cycle", "path", "complete" or "bipartite".`
	orderFlagDescription  = "Vertex count for the cycle, path and complete shapes."
	leftFlagDescription   = "Left class size for the bipartite shape."
	rightFlagDescription  = "Right class size for the bipartite shape."
)

// streamMarker stands for stdin among inputs and stdout among outputs.
const streamMarker = "-"

// outputSuffix names the per-input report files in multi-input runs.
const outputSuffix = ".out"

// Fixed filenames the bare "bipart check" invocation falls back to.
const (
	defaultInput  = "input.txt"
	defaultOutput = "output.txt"
)
