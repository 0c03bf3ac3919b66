package logging

import (
	"fmt"
	"path/filepath"
	"strings"

	"matchbook/internal/engine"
)

// strategyFiles names the per-strategy output file under the CLI's
// output directory — "one file per strategy" per spec.md §6.
var strategyFiles = map[string]string{
	"file-unbuffered": "file_unbuffered.log",
	"file-buffered":   "file_buffered.log",
	"async-string":    "async_string.log",
	"async-closure":   "async_closure.log",
	"async-event":     "async_event.log",
}

// aliases maps every case-insensitive short form onto its canonical
// strategy name.
var aliases = map[string]string{
	"none":            "none",
	"n":               "none",
	"console":         "console",
	"c":               "console",
	"stdout":          "console",
	"file-unbuffered": "file-unbuffered",
	"fu":              "file-unbuffered",
	"unbuffered":      "file-unbuffered",
	"file-buffered":   "file-buffered",
	"fb":              "file-buffered",
	"buffered":        "file-buffered",
	"async-string":    "async-string",
	"as":              "async-string",
	"async-closure":   "async-closure",
	"ac":              "async-closure",
	"deferred":        "async-closure",
	"async-event":     "async-event",
	"ae":              "async-event",
	"tagged":          "async-event",
}

// New constructs the Logger named by mode (case-insensitive, aliases
// allowed). Writing strategies place their output file under outDir.
// Returns an error for any name not in aliases — the CLI surfaces this
// as a non-zero exit with a usage message.
func New(mode, outDir string) (engine.Logger, error) {
	canonical, ok := aliases[strings.ToLower(mode)]
	if !ok {
		return nil, fmt.Errorf("unknown logging strategy %q", mode)
	}

	switch canonical {
	case "none":
		return NewNoop(), nil
	case "console":
		return NewConsole(), nil
	case "file-unbuffered":
		return NewFileUnbuffered(filepath.Join(outDir, strategyFiles[canonical]))
	case "file-buffered":
		return NewFileBuffered(filepath.Join(outDir, strategyFiles[canonical]))
	case "async-string":
		return NewAsyncString(filepath.Join(outDir, strategyFiles[canonical]))
	case "async-closure":
		return NewAsyncClosure(filepath.Join(outDir, strategyFiles[canonical]))
	case "async-event":
		return NewAsyncEvent(filepath.Join(outDir, strategyFiles[canonical]))
	default:
		return nil, fmt.Errorf("unknown logging strategy %q", mode)
	}
}

// Names returns the canonical strategy names, for usage text.
func Names() []string {
	return []string{"none", "console", "file-unbuffered", "file-buffered", "async-string", "async-closure", "async-event"}
}
