package sheet

import "strings"

// ParseCSV splits the text of a published sheet into rows of trimmed cells.
//
// The scan is a single pass with an explicit quote state:
//   - A double quote toggles quoting; inside quotes, "" is a literal quote.
//   - A comma outside quotes ends the current cell.
//   - \n, \r or \r\n outside quotes ends the current row. Rows with no cells
//     and an empty buffer (blank lines) are skipped.
//   - Everything else, including commas and newlines inside quotes, is
//     appended to the current cell verbatim.
//
// Cells are trimmed, so a whitespace-only cell becomes "". Rows keep their
// own length; callers decide what a short row means.
//
// Example:
//
//	rows := ParseCSV("title,artist\n\"Hello, World\",IU\n")
//	// rows[1] = []string{"Hello, World", "IU"}
func ParseCSV(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		cell     strings.Builder
		inQuotes bool
	)

	endCell := func() {
		row = append(row, strings.TrimSpace(cell.String()))
		cell.Reset()
	}
	endRow := func() {
		if cell.Len() > 0 || len(row) > 0 {
			endCell()
			rows = append(rows, row)
		}
		row = nil
		cell.Reset()
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		switch {
		case c == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				cell.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			endCell()
		case (c == '\r' || c == '\n') && !inQuotes:
			endRow()
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
		default:
			cell.WriteByte(c)
		}
	}
	endRow()

	return rows
}

// Cell returns the cell at index i, or "" if the row is too short.
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
