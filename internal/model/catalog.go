package model

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Catalog is the combined result of one ingestion run: every mapped song
// plus artist metadata keyed by exact artist display name.
//
// A Catalog is always well-shaped. A failed run yields an empty Songs slice
// and an empty, non-nil Artists map.
type Catalog struct {
	// RunID identifies the ingestion run that produced this catalog.
	RunID string `json:"runId,omitempty"`

	// FetchedAt is when the run finished.
	FetchedAt time.Time `json:"fetchedAt"`

	Songs   []Song                `json:"songs"`
	Artists map[string]ArtistMeta `json:"artistMeta"`
}

// NewCatalog returns an empty catalog for the given run.
func NewCatalog(runID string) *Catalog {
	return &Catalog{
		RunID:   runID,
		Songs:   []Song{},
		Artists: map[string]ArtistMeta{},
	}
}

// IsEmpty returns true if the catalog holds no songs.
func (c *Catalog) IsEmpty() bool {
	return c == nil || len(c.Songs) == 0
}

// Song returns the song with the given id.
func (c *Catalog) Song(id string) (*Song, bool) {
	for i := range c.Songs {
		if c.Songs[i].ID == id {
			return &c.Songs[i], true
		}
	}
	return nil, false
}

// Artist returns the metadata for an artist display name.
func (c *Catalog) Artist(name string) (ArtistMeta, bool) {
	meta, ok := c.Artists[name]
	return meta, ok
}

// ArtistNames returns all artist names in the catalog, sorted.
func (c *Catalog) ArtistNames() []string {
	names := make([]string, 0, len(c.Artists))
	for name := range c.Artists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Categories returns every distinct tag across all songs, in order of
// first appearance. These are the filter chips shown by the site.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, song := range c.Songs {
		for _, tag := range song.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

// SongsByArtist returns the songs credited to the given artist name.
func (c *Catalog) SongsByArtist(name string) []Song {
	var out []Song
	for _, song := range c.Songs {
		if song.Artist == name {
			out = append(out, song)
		}
	}
	return out
}

// SongsInCategory returns the songs tagged with the given category.
func (c *Catalog) SongsInCategory(category string) []Song {
	var out []Song
	for i := range c.Songs {
		if c.Songs[i].HasTag(category) {
			out = append(out, c.Songs[i])
		}
	}
	return out
}

// Search returns songs whose title, translated title, artist or artist
// sub-name contains query, ignoring case. An empty query matches everything.
func (c *Catalog) Search(query string) []Song {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.Songs
	}

	var out []Song
	for _, song := range c.Songs {
		fields := []string{song.Title, song.TranslatedTitle, song.Artist, song.ArtistSubName}
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field), query) {
				out = append(out, song)
				break
			}
		}
	}
	return out
}

// SortByReleaseYear orders songs newest release year first. The sort is
// stable, so songs from the same year keep sheet order. Years that are not
// numbers sort last.
func SortByReleaseYear(songs []Song) {
	sort.SliceStable(songs, func(i, j int) bool {
		return yearValue(songs[i].ReleaseYear) > yearValue(songs[j].ReleaseYear)
	})
}

func yearValue(year string) int {
	n, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return -1
	}
	return n
}
