package catalog

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/handiism/lyricsheet/internal/lyrics"
	"github.com/handiism/lyricsheet/internal/model"
	"github.com/handiism/lyricsheet/internal/sheet"
	"github.com/handiism/lyricsheet/internal/youtube"
)

const (
	// DefaultCategory is used when a song row lists no categories.
	DefaultCategory = "K-POP"
	// DefaultAlbum is used when a song row has no album.
	DefaultAlbum = "Single"

	placeholderBase = "https://picsum.photos/seed/"
	coverSize       = 400
	artistImageSize = 200
)

// MapperConfig holds the column layouts and defaults used by a Mapper.
type MapperConfig struct {
	SongColumns     model.SongColumns
	ArtistColumns   model.ArtistColumns
	DefaultCategory string
	DefaultAlbum    string

	// Now supplies the current year for rows without a release year.
	// Defaults to time.Now.
	Now func() time.Time
}

// DefaultMapperConfig returns the layout of the published sheet.
func DefaultMapperConfig() MapperConfig {
	return MapperConfig{
		SongColumns:     model.DefaultSongColumns(),
		ArtistColumns:   model.DefaultArtistColumns(),
		DefaultCategory: DefaultCategory,
		DefaultAlbum:    DefaultAlbum,
		Now:             time.Now,
	}
}

// Mapper converts parsed sheet rows into domain records.
type Mapper struct {
	cfg  MapperConfig
	diag *Diagnostics
}

// NewMapper creates a Mapper. Zero-valued defaults in cfg are filled in.
func NewMapper(cfg MapperConfig) *Mapper {
	if cfg.DefaultCategory == "" {
		cfg.DefaultCategory = DefaultCategory
	}
	if cfg.DefaultAlbum == "" {
		cfg.DefaultAlbum = DefaultAlbum
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Mapper{cfg: cfg}
}

// WithDiagnostics returns a copy of m that records dropped rows into d.
func (m *Mapper) WithDiagnostics(d *Diagnostics) *Mapper {
	clone := *m
	clone.diag = d
	return &clone
}

// Diagnostics returns the attached collector, or nil.
func (m *Mapper) Diagnostics() *Diagnostics {
	return m.diag
}

// MapSong converts a song row. index is the zero-based position of the row
// after the header and becomes the song id. The second return value is false
// if the row was dropped.
func (m *Mapper) MapSong(row []string, index int) (model.Song, bool) {
	cols := m.cfg.SongColumns

	if need := max(cols.Title, cols.Artist, 2) + 1; len(row) < need {
		m.diag.record(FeedSongs, index, fmt.Sprintf("row has %d cells, need at least %d", len(row), need))
		return model.Song{}, false
	}

	title := sheet.Cell(row, cols.Title)
	artist := sheet.Cell(row, cols.Artist)
	if title == "" {
		m.diag.record(FeedSongs, index, "missing title")
		return model.Song{}, false
	}
	if artist == "" {
		m.diag.record(FeedSongs, index, "missing artist")
		return model.Song{}, false
	}

	translatedTitle := sheet.Cell(row, cols.TranslatedTitle)
	tags := m.splitCategories(sheet.Cell(row, cols.Categories))

	album := sheet.Cell(row, cols.Album)
	if album == "" {
		album = m.cfg.DefaultAlbum
	}

	year := sheet.Cell(row, cols.ReleaseYear)
	if year == "" {
		year = strconv.Itoa(m.cfg.Now().Year())
	}

	cover := sheet.Cell(row, cols.Cover)
	if !strings.HasPrefix(cover, "http") {
		seed := translatedTitle
		if seed == "" {
			seed = title
		}
		cover = placeholderURL(seed, coverSize)
	}

	return model.Song{
		ID:               "song-" + strconv.Itoa(index),
		Title:            title,
		TranslatedTitle:  translatedTitle,
		Artist:           artist,
		ArtistSubName:    sheet.Cell(row, cols.ArtistSubName),
		Album:            album,
		CoverURL:         cover,
		YoutubeID:        youtube.ExtractID(sheet.Cell(row, cols.Video)),
		Genre:            tags[0],
		Tags:             tags,
		ReleaseYear:      year,
		Lyrics:           lyrics.Normalize(sheet.Cell(row, cols.Lyrics)),
		AIInterpretation: sheet.Cell(row, cols.AIInterpretation),
		DateAdded:        sheet.Cell(row, cols.DateAdded),
	}, true
}

// MapArtist converts an artist row. Rows without a name are dropped.
func (m *Mapper) MapArtist(row []string, index int) (model.ArtistMeta, bool) {
	cols := m.cfg.ArtistColumns

	name := sheet.Cell(row, cols.Name)
	if name == "" {
		m.diag.record(FeedArtists, index, "missing name")
		return model.ArtistMeta{}, false
	}

	subName := sheet.Cell(row, cols.SubName)
	if subName == "" {
		subName = name
	}

	image := sheet.Cell(row, cols.Image)
	if !strings.HasPrefix(image, "http") {
		image = placeholderURL(name, artistImageSize)
	}

	return model.ArtistMeta{Name: name, SubName: subName, ImageURL: image}, true
}

// splitCategories splits a comma separated cell into distinct, non-empty
// categories. The result is never empty.
func (m *Mapper) splitCategories(cell string) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(cell, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		tags = []string{m.cfg.DefaultCategory}
	}
	return tags
}

func placeholderURL(seed string, size int) string {
	return placeholderBase + url.PathEscape(seed) + "/" + strconv.Itoa(size)
}
