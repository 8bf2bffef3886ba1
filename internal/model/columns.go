package model

// SongColumns maps song fields to positional columns of the songs sheet.
//
// The sheet has no header binding, so a reordered sheet needs new indices
// here or in the settings file.
type SongColumns struct {
	Title            int `json:"title" toml:"title"`
	TranslatedTitle  int `json:"translated_title" toml:"translated_title"`
	Artist           int `json:"artist" toml:"artist"`
	ArtistSubName    int `json:"artist_sub_name" toml:"artist_sub_name"`
	Categories       int `json:"categories" toml:"categories"`
	Album            int `json:"album" toml:"album"`
	ReleaseYear      int `json:"release_year" toml:"release_year"`
	Video            int `json:"video" toml:"video"`
	Cover            int `json:"cover" toml:"cover"`
	Lyrics           int `json:"lyrics" toml:"lyrics"`
	AIInterpretation int `json:"ai_interpretation" toml:"ai_interpretation"`
	DateAdded        int `json:"date_added" toml:"date_added"`
}

// DefaultSongColumns returns the column layout of the published songs sheet.
func DefaultSongColumns() SongColumns {
	return SongColumns{
		Title:            0,
		TranslatedTitle:  1,
		Artist:           2,
		ArtistSubName:    3,
		Categories:       4,
		Album:            5,
		ReleaseYear:      6,
		Video:            7,
		Cover:            8,
		Lyrics:           9,
		AIInterpretation: 10,
		DateAdded:        11,
	}
}

// ArtistColumns maps artist fields to positional columns of the artists sheet.
type ArtistColumns struct {
	Name    int `json:"name" toml:"name"`
	SubName int `json:"sub_name" toml:"sub_name"`
	Image   int `json:"image" toml:"image"`
}

// DefaultArtistColumns returns the column layout of the published artists sheet.
func DefaultArtistColumns() ArtistColumns {
	return ArtistColumns{Name: 0, SubName: 1, Image: 2}
}
