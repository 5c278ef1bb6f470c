package balloon

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// debugEnabled controls whether tracing is enabled via the BALLOON_DEBUG env var.
var debugEnabled = os.Getenv("BALLOON_DEBUG") == "1"

// traceOutput receives trace lines. Stdout is left to callers printing digests.
var traceOutput io.Writer = os.Stderr

// traceLog outputs a debug message if tracing is enabled
func traceLog(format string, args ...interface{}) {
	if debugEnabled {
		fmt.Fprintf(traceOutput, "[TRACE] "+format+"\n", args...)
	}
}

// traceBytes outputs bytes in hex format with a descriptive name
func traceBytes(name string, data []byte) {
	if debugEnabled {
		traceLog("%s (%d bytes): %s", name, len(data), hex.EncodeToString(data))
	}
}

// traceUint64 outputs a single uint64 value
func traceUint64(name string, value uint64) {
	if debugEnabled {
		traceLog("%s = %d", name, value)
	}
}

// traceSeparator prints a visual separator in debug output
func traceSeparator(title string) {
	if debugEnabled {
		traceLog("========== %s ==========", title)
	}
}

// compareTrace compares expected vs actual hex strings.
// The result is logged when tracing is enabled.
func compareTrace(stage, expected, actual string) bool {
	match := expected == actual
	if debugEnabled {
		if match {
			traceLog("✓ %s matches", stage)
		} else {
			traceLog("✗ MISMATCH %s:", stage)
			traceLog("  Expected: %s", expected)
			traceLog("  Actual:   %s", actual)
		}
	}
	return match
}
