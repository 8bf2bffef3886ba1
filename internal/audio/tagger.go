package audio

import (
	"github.com/bogem/id3v2"
	"github.com/handiism/lyricsheet/internal/lyrics"
	"github.com/handiism/lyricsheet/internal/model"
)

// TagEditAction defines how to handle individual ID3 tags.
//
// Each tag field can be configured independently to determine whether
// it should be modified, cleared, or left unchanged.
type TagEditAction int

const (
	// TagEmpty clears the tag value.
	TagEmpty TagEditAction = iota

	// TagModify updates the tag with the value from the catalog.
	TagModify

	// TagDoNotModify leaves the existing tag value unchanged.
	TagDoNotModify
)

// DefaultLyricsLanguage is the ISO 639-2 code written to USLT and COMM frames.
const DefaultLyricsLanguage = "kor"

const interpretationDescription = "Interpretation"

// TagConfig holds tagging configuration for each ID3 field.
//
// Example:
//
//	cfg := &TagConfig{
//	    ModifyTags: true,
//	    Title:      TagModify,      // TIT2 from the song title
//	    Artist:     TagModify,      // TPE1 from the artist display name
//	    Lyrics:     TagModify,      // USLT with original/romanization/translation blocks
//	    Comments:   TagDoNotModify, // keep whatever comment is there
//	    Language:   "kor",
//	}
type TagConfig struct {
	// ModifyTags is a master switch. If false, no text frames are modified.
	ModifyTags bool

	// Title controls the TIT2 (Title) frame.
	Title TagEditAction

	// Artist controls the TPE1 (Lead artist) frame.
	Artist TagEditAction

	// Album controls the TALB (Album title) frame.
	Album TagEditAction

	// Year controls the recording year frame (TYER or TDRC depending on
	// the tag version).
	Year TagEditAction

	// Genre controls the TCON (Content type) frame.
	Genre TagEditAction

	// Lyrics controls the USLT (Unsynchronized lyrics) frame.
	Lyrics TagEditAction

	// Comments controls the COMM frame holding the song interpretation.
	Comments TagEditAction

	// Language is the three letter language code of the lyrics.
	Language string
}

// DefaultTagConfig returns the default tag configuration, which writes
// every field from the catalog.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags: true,
		Title:      TagModify,
		Artist:     TagModify,
		Album:      TagModify,
		Year:       TagModify,
		Genre:      TagModify,
		Lyrics:     TagModify,
		Comments:   TagModify,
		Language:   DefaultLyricsLanguage,
	}
}

// Tagger writes song metadata and lyrics into MP3 files.
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	if err := tagger.SaveTags("song.mp3", song, coverJPEG); err != nil {
//	    log.Printf("Failed to tag: %v", err)
//	}
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	if config.Language == "" {
		config.Language = DefaultLyricsLanguage
	}
	return &Tagger{config: config}
}

// SaveTags writes ID3 tags for song into the MP3 file at path.
//
// The file must exist. Existing frames are parsed and kept unless the
// configuration says otherwise. artwork is embedded as the front cover when
// non-nil and must be JPEG data.
func (t *Tagger) SaveTags(path string, song *model.Song, artwork []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	if t.config.ModifyTags {
		t.updateTextTags(tag, song)
	}

	if artwork != nil {
		t.updateArtwork(tag, artwork)
	}

	return tag.Save()
}

// updateTextTags updates text-based ID3 frames based on configuration.
func (t *Tagger) updateTextTags(tag *id3v2.Tag, song *model.Song) {
	switch t.config.Title {
	case TagEmpty:
		tag.SetTitle("")
	case TagModify:
		tag.SetTitle(song.Title)
	}

	switch t.config.Artist {
	case TagEmpty:
		tag.SetArtist("")
	case TagModify:
		tag.SetArtist(song.DisplayArtist())
	}

	switch t.config.Album {
	case TagEmpty:
		tag.SetAlbum("")
	case TagModify:
		tag.SetAlbum(song.Album)
	}

	switch t.config.Year {
	case TagEmpty:
		tag.DeleteFrames(tag.CommonID("Year"))
	case TagModify:
		tag.SetYear(song.ReleaseYear)
	}

	switch t.config.Genre {
	case TagEmpty:
		tag.SetGenre("")
	case TagModify:
		tag.SetGenre(song.Genre)
	}

	lyricsID := tag.CommonID("Unsynchronised lyrics/text transcription")
	switch t.config.Lyrics {
	case TagEmpty:
		tag.DeleteFrames(lyricsID)
	case TagModify:
		if len(song.Lyrics) > 0 {
			tag.DeleteFrames(lyricsID)
			tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
				Encoding:          id3v2.EncodingUTF8,
				Language:          t.config.Language,
				ContentDescriptor: song.TranslatedTitle,
				Lyrics:            lyrics.Format(song.Lyrics),
			})
		}
	}

	commentsID := tag.CommonID("Comments")
	switch t.config.Comments {
	case TagEmpty:
		tag.DeleteFrames(commentsID)
	case TagModify:
		if song.AIInterpretation != "" {
			tag.DeleteFrames(commentsID)
			tag.AddCommentFrame(id3v2.CommentFrame{
				Encoding:    id3v2.EncodingUTF8,
				Language:    t.config.Language,
				Description: interpretationDescription,
				Text:        song.AIInterpretation,
			})
		}
	}
}

// updateArtwork embeds cover art as an attached picture frame.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, artwork []byte) {
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	})
}
