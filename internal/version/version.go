package version

// Set at build time via -ldflags "-X github.com/geminidesk/gemini-desktop/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info returns the short form shown in the About dialog, e.g. "1.2.0 (abc1234)".
func Info() string {
	if Commit == "" || Commit == "unknown" {
		return Version
	}
	return Version + " (" + Commit + ")"
}

// Full includes the build time, used in the startup log line.
func Full() string {
	return Version + " (commit: " + Commit + ", built: " + BuildTime + ")"
}
