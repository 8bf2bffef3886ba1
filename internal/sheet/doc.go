// Package sheet reads the CSV feeds of a published spreadsheet.
//
// # Feeds
//
// A Source builds the export URLs for the songs and artists tabs. Bodies are
// converted with Decode and checked with CheckBody, which rejects the HTML
// page the sheet host serves for unknown or unpublished tabs:
//
//	body, _ := client.Get(ctx, songURL)
//	text, _ := sheet.Decode(body)
//	if err := sheet.CheckBody(text); err != nil {
//	    // try the fallback URL
//	}
//
// # Parsing
//
// ParseCSV turns feed text into rows of trimmed cells, honoring quoted cells
// with embedded commas, newlines and doubled quotes:
//
//	rows := sheet.ParseCSV(text)
//	for _, row := range rows[1:] { // skip header
//	    fmt.Println(sheet.Cell(row, 0))
//	}
package sheet
