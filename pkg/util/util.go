package util

import (
	"regexp"
	"runtime"
	"strings"
)

// seams for tests
var (
	caller    = runtime.Caller
	funcForPC = runtime.FuncForPC
)

/*
CurrentMethod returns the name of the current method.
For example, service.(*ExportService).Export
skip is the number of stack frames to skip.
*/
func CurrentMethod(skip int) string {
	pc, _, _, ok := caller(skip)
	if !ok {
		return "unknown"
	}
	fn := funcForPC(pc)
	if fn == nil {
		return "unknown"
	}

	parts := strings.Split(fn.Name(), "/")
	return parts[len(parts)-1]
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SafeFilename collapses every run of characters outside
// [A-Za-z0-9._-] into a single underscore, strips leading and trailing
// underscores, and caps the result at 80 characters.
func SafeFilename(s string) string {
	safe := unsafeFilenameChars.ReplaceAllString(s, "_")
	safe = strings.Trim(safe, "_")
	if len(safe) > 80 {
		safe = safe[:80]
	}
	return safe
}
