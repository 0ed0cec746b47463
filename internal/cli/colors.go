// Package cli: terminal color policy for verdict summaries.
package cli

import (
	"os"
	"strings"

	"github.com/fatih/color"
)

const colorEnvVar = "COLOR"

// Verdict painters used in summary lines. They degrade to plain text when
// color is disabled.
var (
	successSprint = color.New(color.FgGreen).SprintFunc()
	failureSprint = color.New(color.FgRed).SprintFunc()
)

// disableColorBasedOnEnvVar determines whether the CLI will produce color
// output based on the environment variable, COLOR.
func disableColorBasedOnEnvVar() {
	value, exists := os.LookupEnv(colorEnvVar)
	if !exists {
		// With COLOR unset, the color library's own terminal detection
		// stands: colored on a TTY, plain when piped.
		return
	}
	switch strings.ToLower(value) {
	case "false":
		color.NoColor = true
	case "true":
		color.NoColor = false
	}
}
