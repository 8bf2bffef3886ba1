package model

// LyricLine is one performed line of a song in up to three renderings.
//
// Original is always non-empty. Romanization and Translation are optional;
// an empty string means the sheet did not provide that rendering.
//
// Example:
//
//	line := LyricLine{
//	    Original:     "사랑해",
//	    Romanization: "saranghae",
//	    Translation:  "I love you",
//	}
type LyricLine struct {
	// Time is reserved for synced lyrics. The sheet does not carry it yet.
	Time string `json:"time,omitempty"`

	// Original is the line as sung.
	Original string `json:"original"`

	// Romanization is the line transliterated into Latin script.
	Romanization string `json:"romanization,omitempty"`

	// Translation is the line translated for the site's readers.
	Translation string `json:"translation,omitempty"`
}

// HasRomanization returns true if the line carries a romanization.
func (l LyricLine) HasRomanization() bool {
	return l.Romanization != ""
}

// HasTranslation returns true if the line carries a translation.
func (l LyricLine) HasTranslation() bool {
	return l.Translation != ""
}

// Song is one row of the songs sheet after mapping.
//
// Every Song has a non-empty Title and Artist. Genre is always the first
// entry of Tags, and YoutubeID is either an 11 character video id or empty.
//
// IDs are positional ("song-0", "song-1", ...) and only stable within a
// single fetch: reordering the sheet reassigns them.
type Song struct {
	// ID is "song-" followed by the zero-based data row index.
	ID string `json:"id"`

	// Title is the original-language song title.
	Title string `json:"title"`

	// TranslatedTitle is the title in the reader's language, if provided.
	TranslatedTitle string `json:"translatedTitle,omitempty"`

	// Artist is the display name used as the key into Catalog.Artists.
	Artist string `json:"artist"`

	// ArtistSubName is a translated or alternate artist name from the song row.
	ArtistSubName string `json:"artistSubName,omitempty"`

	// Album defaults to "Single".
	Album string `json:"album"`

	// CoverURL is the cover image, or a deterministic placeholder.
	CoverURL string `json:"coverUrl"`

	// YoutubeID is the canonical 11 character video id, or empty.
	YoutubeID string `json:"youtubeId"`

	// Genre is the primary category.
	Genre string `json:"genre"`

	// Tags holds every category of the song in sheet order, Genre first.
	Tags []string `json:"tags"`

	// ReleaseYear is a four digit year string.
	ReleaseYear string `json:"releaseYear"`

	// Lyrics holds the normalized lines in performance order.
	Lyrics []LyricLine `json:"lyrics"`

	// AIInterpretation is free-form commentary on the song.
	AIInterpretation string `json:"aiInterpretation,omitempty"`

	// DateAdded is when the row was added to the sheet (YYYY-MM-DD).
	DateAdded string `json:"dateAdded,omitempty"`
}

// HasVideo returns true if the song has a playable video id.
func (s *Song) HasVideo() bool {
	return s.YoutubeID != ""
}

// HasTag returns true if tag is one of the song's categories.
func (s *Song) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DisplayArtist returns the artist name followed by its sub-name when
// the two differ, e.g. "아이유 (IU)".
func (s *Song) DisplayArtist() string {
	if s.ArtistSubName == "" || s.ArtistSubName == s.Artist {
		return s.Artist
	}
	return s.Artist + " (" + s.ArtistSubName + ")"
}

// ArtistMeta describes an artist as shown on artist pages.
type ArtistMeta struct {
	Name     string `json:"name"`
	SubName  string `json:"subName"`
	ImageURL string `json:"imageUrl"`
}
