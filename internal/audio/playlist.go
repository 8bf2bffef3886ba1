package audio

import (
	"fmt"
	"strings"

	"github.com/handiism/lyricsheet/internal/model"
	"github.com/handiism/lyricsheet/internal/youtube"
)

// PlaylistFormat represents supported playlist file formats.
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines carrying the artist and title.
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	FormatPLS
)

// ParsePlaylistFormat maps a settings value ("m3u", "pls") to a format.
// Unknown values select M3U.
func ParsePlaylistFormat(s string) PlaylistFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pls":
		return FormatPLS
	default:
		return FormatM3U
	}
}

// Extension returns the file extension of the format, including the dot.
func (f PlaylistFormat) Extension() string {
	if f == FormatPLS {
		return ".pls"
	}
	return ".m3u"
}

// PlaylistCreator generates playlists of YouTube watch URLs.
//
// Songs without a video id are left out.
//
// Example:
//
//	creator := NewPlaylistCreator(FormatM3U, true)
//	content := creator.CreatePlaylist(catalog.Songs)
//	os.WriteFile("lyricsheet.m3u", []byte(content), 0644)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:-1,아이유 (IU) - 밤편지
//	// https://www.youtube.com/watch?v=BzYnNdJhZQw
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool // For M3U: include EXTINF lines
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// extended only affects M3U output.
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// CreatePlaylist returns playlist content for songs, ready to be written to
// a file.
func (p *PlaylistCreator) CreatePlaylist(songs []model.Song) string {
	var playable []model.Song
	for _, song := range songs {
		if song.HasVideo() {
			playable = append(playable, song)
		}
	}

	switch p.format {
	case FormatPLS:
		return p.createPLS(playable)
	default:
		return p.createM3U(playable)
	}
}

// createM3U generates an M3U playlist. Stream entries have no known
// duration, so EXTINF uses -1.
func (p *PlaylistCreator) createM3U(songs []model.Song) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, song := range songs {
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:-1,%s\n", entryTitle(song)))
		}
		sb.WriteString(youtube.WatchURL(song.YoutubeID) + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
//	[playlist]
//	File1=https://www.youtube.com/watch?v=...
//	Title1=Artist - Title
//	Length1=-1
//	NumberOfEntries=1
//	Version=2
func (p *PlaylistCreator) createPLS(songs []model.Song) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, song := range songs {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, youtube.WatchURL(song.YoutubeID)))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, entryTitle(song)))
		sb.WriteString(fmt.Sprintf("Length%d=-1\n", idx))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(songs)))
	sb.WriteString("Version=2\n")

	return sb.String()
}

func entryTitle(song model.Song) string {
	return song.DisplayArtist() + " - " + song.Title
}
