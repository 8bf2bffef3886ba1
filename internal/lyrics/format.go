package lyrics

import (
	"strings"

	"github.com/handiism/lyricsheet/internal/model"
)

// Format renders lines in the paragraph-block convention: each line's
// original, romanization and translation on consecutive lines, with a blank
// line between lines.
//
// Normalize(Format(lines)) returns lines unchanged unless a field contains a
// newline or a caret, or a line has a translation but no romanization (the
// block format is positional, so the translation would come back as the
// romanization).
//
// Example:
//
//	Format([]model.LyricLine{{Original: "사랑해", Romanization: "saranghae", Translation: "I love you"}})
//	// "사랑해\nsaranghae\nI love you"
func Format(lines []model.LyricLine) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(line.Original)
		if line.Romanization != "" {
			sb.WriteString("\n" + line.Romanization)
		}
		if line.Translation != "" {
			sb.WriteString("\n" + line.Translation)
		}
	}
	return sb.String()
}

// Originals returns only the original text of each line, one per line.
func Originals(lines []model.LyricLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.Original
	}
	return strings.Join(out, "\n")
}
