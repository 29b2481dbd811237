//go:build darwin

package desktop

import (
	"os"
	"runtime/debug"
)

// macOS: trade a larger heap for fewer collections while the webview is busy.
// Explicit GOGC / GOMEMLIMIT settings win.
func init() {
	if os.Getenv("GOGC") == "" {
		debug.SetGCPercent(200)
	}
	if os.Getenv("GOMEMLIMIT") == "" {
		debug.SetMemoryLimit(512 << 20)
	}
}
