package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/handiism/lyricsheet/internal/catalog"
	"github.com/handiism/lyricsheet/internal/lyrics"
	"github.com/handiism/lyricsheet/internal/model"
	"github.com/handiism/lyricsheet/internal/progress"
	"github.com/handiism/lyricsheet/internal/youtube"
)

const (
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
	ansiDim    = "\033[2m"
	ansiReset  = "\033[0m"
)

// formatEvent renders a progress event as one line with a level prefix.
func formatEvent(event progress.Event, colorize bool) string {
	var prefix, color string
	switch event.Level {
	case progress.LevelError:
		prefix, color = "✗ ", ansiRed
	case progress.LevelWarning:
		prefix, color = "! ", ansiYellow
	case progress.LevelSuccess:
		prefix, color = "✓ ", ansiGreen
	case progress.LevelInfo:
		prefix, color = "› ", ansiCyan
	default:
		prefix, color = "  ", ansiDim
	}

	line := prefix + event.Message
	if colorize {
		line = color + line + ansiReset
	}
	return line
}

func songTable(songs []model.Song, colorize bool) string {
	rows := make([][]string, 0, len(songs))
	for _, song := range songs {
		video := ""
		if song.HasVideo() {
			video = song.YoutubeID
		}
		rows = append(rows, []string{
			song.ID,
			song.ReleaseYear,
			song.DisplayArtist(),
			song.Title,
			strings.Join(song.Tags, ", "),
			strconv.Itoa(len(song.Lyrics)),
			video,
		})
	}
	return renderTable(
		[]string{"ID", "Year", "Artist", "Title", "Categories", "Lines", "Video"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
		colorize,
	)
}

func categoryTable(cat *model.Catalog, colorize bool) string {
	var rows [][]string
	for _, category := range cat.Categories() {
		rows = append(rows, []string{category, strconv.Itoa(len(cat.SongsInCategory(category)))})
	}
	return renderTable([]string{"Category", "Songs"}, rows, []columnAlignment{alignLeft, alignRight}, colorize)
}

func droppedTable(rows []catalog.DroppedRow, colorize bool) string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{string(row.Feed), strconv.Itoa(row.Index), row.Reason})
	}
	return renderTable([]string{"Feed", "Row", "Reason"}, out, []columnAlignment{alignLeft, alignRight, alignLeft}, colorize)
}

// songDetail renders one song with its lyrics in paragraph blocks.
func songDetail(song *model.Song, meta model.ArtistMeta) string {
	var b strings.Builder

	title := song.Title
	if song.TranslatedTitle != "" {
		title += " (" + song.TranslatedTitle + ")"
	}
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "%s\n", song.DisplayArtist())
	fmt.Fprintf(&b, "Album:      %s (%s)\n", song.Album, song.ReleaseYear)
	fmt.Fprintf(&b, "Categories: %s\n", strings.Join(song.Tags, ", "))
	if song.HasVideo() {
		fmt.Fprintf(&b, "Video:      %s\n", youtube.WatchURL(song.YoutubeID))
	}
	fmt.Fprintf(&b, "Cover:      %s\n", song.CoverURL)
	if meta.ImageURL != "" {
		fmt.Fprintf(&b, "Artist art: %s\n", meta.ImageURL)
	}
	if song.DateAdded != "" {
		fmt.Fprintf(&b, "Added:      %s\n", song.DateAdded)
	}

	if len(song.Lyrics) > 0 {
		b.WriteString("\n")
		b.WriteString(lyrics.Format(song.Lyrics))
		b.WriteString("\n")
	}

	if song.AIInterpretation != "" {
		b.WriteString("\nInterpretation:\n")
		b.WriteString(song.AIInterpretation)
		b.WriteString("\n")
	}

	return b.String()
}
