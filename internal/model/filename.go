package model

import (
	"regexp"
	"strings"
)

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots     = regexp.MustCompile(`\.+$`)
	repeatedSpace    = regexp.MustCompile(`\s+`)
)

// SanitizeFileName turns a song or artist name into a name that is valid
// as a file or folder name on every platform.
//
// Invalid characters become underscores, trailing dots are removed and runs
// of whitespace collapse to one space:
//
//	SanitizeFileName("BTS: Love Yourself 結 'Answer'") // "BTS_ Love Yourself 結 'Answer'"
func SanitizeFileName(name string) string {
	name = invalidFileChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
