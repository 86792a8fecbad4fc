package envelope

import (
	"fmt"
	"io"
	"os"
)

var (
	// disableWarning is a global flag that controls whether warnings are disabled.
	disableWarning bool

	// warningPrefix is the prefix used for warning messages.
	warningPrefix = "envelope"

	// warningOutput is the io.Writer where warning messages are sent by default.
	// It is set to os.Stderr initially.
	warningOutput io.Writer = os.Stderr
)

// DisableWarning disables the warning mechanism. Aggregation still
// swallows failures afterwards, it just does so silently.
func DisableWarning() {
	disableWarning = true
}

// SetWarningOutput sets the output destination for warning messages.
func SetWarningOutput(output io.Writer) {
	warningOutput = output
}

// SetWarningPrefix sets the prefix prepended to warning messages.
func SetWarningPrefix(prefix string) {
	warningPrefix = prefix
}

// Warningf writes a formatted warning message to the warning output.
// Aggregation never raises; when it swallows a failure it reports through
// this channel instead.
func Warningf(format string, a ...any) {
	if disableWarning {
		return
	}
	if warningPrefix != "" {
		_, _ = io.WriteString(warningOutput, warningPrefix)
		_, _ = io.WriteString(warningOutput, ": ")
	}
	_, _ = fmt.Fprintf(warningOutput, format, a...)
	_, _ = warningOutput.Write([]byte{'\n'})
}
