// Package model defines the core data structures shared by the
// lyricsheet pipeline and its consumers.
//
// # Song and LyricLine
//
// Song is one mapped row of the songs sheet. Its Lyrics are normalized
// LyricLine values, each holding the original line plus an optional
// romanization and translation:
//
//	for _, line := range song.Lyrics {
//	    fmt.Println(line.Original, line.Romanization, line.Translation)
//	}
//
// # Catalog
//
// Catalog is the output of one ingestion run: the songs plus artist metadata
// keyed by artist display name.
//
//	song, ok := catalog.Song("song-3")
//	meta := catalog.Artists[song.Artist]
//
// # Column Layouts
//
// SongColumns and ArtistColumns name the positional columns of the two
// sheets. DefaultSongColumns and DefaultArtistColumns match the published
// spreadsheet.
package model
