// Package lyrics normalizes the lyrics cell of the songs sheet into
// model.LyricLine values.
//
// Three authoring conventions have been used in the sheet over time and all
// of them still appear in live rows:
//
//  1. Caret lines: one line per row, fields separated by "^":
//     "사랑해^saranghae^I love you"
//  2. Paragraph blocks: each line is a block of up to three physical lines
//     (original, romanization, translation) separated by blank lines.
//  3. Flat triples: the same three-line groups without blank lines between
//     them.
//
// Normalize tries them in that order.
package lyrics

import (
	"regexp"
	"strings"

	"github.com/handiism/lyricsheet/internal/model"
)

const (
	caretSeparator = "^"
	linesPerBlock  = 3
)

var (
	blankLineSeparator = regexp.MustCompile(`\n\s*\n`)
	lineBreaks         = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Normalize converts one raw lyrics cell into lyric lines in input order.
//
// An empty cell yields an empty slice. Lines without an original are dropped,
// never reported: a malformed cell degrades to fewer lines. "\r\n" and a
// bare "\r" count as line breaks.
func Normalize(raw string) []model.LyricLine {
	raw = lineBreaks.Replace(raw)
	if strings.TrimSpace(raw) == "" {
		return []model.LyricLine{}
	}

	if strings.Contains(raw, caretSeparator) {
		return parseCaretLines(raw)
	}

	lines := make([]model.LyricLine, 0)
	for _, block := range splitBlocks(raw) {
		if line, ok := parseBlock(block); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// parseCaretLines handles the caret convention. A caret anywhere in the cell
// selects it, even if the cell also has blank-line separators.
func parseCaretLines(raw string) []model.LyricLine {
	lines := make([]model.LyricLine, 0)
	for _, physical := range strings.Split(raw, "\n") {
		parts := strings.Split(physical, caretSeparator)

		line := model.LyricLine{Original: strings.TrimSpace(parts[0])}
		if line.Original == "" {
			continue
		}
		if len(parts) > 1 {
			line.Romanization = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			line.Translation = strings.TrimSpace(parts[2])
		}
		lines = append(lines, line)
	}
	return lines
}

// splitBlocks splits a cell into blocks on blank lines.
//
// When that finds a single block of more than three physical lines, the
// cell is assumed to be flat triples and is re-chunked every three non-empty
// lines. This is a best-effort guess: a nine line cell is read as three
// lines of three renderings.
func splitBlocks(raw string) []string {
	blocks := blankLineSeparator.Split(raw, -1)
	if len(blocks) != 1 || len(strings.Split(raw, "\n")) <= linesPerBlock {
		return blocks
	}

	physical := nonEmptyLines(raw)
	chunked := make([]string, 0, (len(physical)+linesPerBlock-1)/linesPerBlock)
	for i := 0; i < len(physical); i += linesPerBlock {
		end := i + linesPerBlock
		if end > len(physical) {
			end = len(physical)
		}
		chunked = append(chunked, strings.Join(physical[i:end], "\n"))
	}
	return chunked
}

// parseBlock maps the first three non-empty lines of a block to original,
// romanization and translation. Lines past the third are ignored.
func parseBlock(block string) (model.LyricLine, bool) {
	lines := nonEmptyLines(block)
	if len(lines) == 0 {
		return model.LyricLine{}, false
	}

	line := model.LyricLine{Original: lines[0]}
	if len(lines) > 1 {
		line.Romanization = lines[1]
	}
	if len(lines) > 2 {
		line.Translation = lines[2]
	}
	return line, true
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
