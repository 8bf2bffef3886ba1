package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/handiism/lyricsheet/internal/audio"
	"github.com/handiism/lyricsheet/internal/catalog"
	"github.com/handiism/lyricsheet/internal/export"
	"github.com/handiism/lyricsheet/internal/http"
	"github.com/handiism/lyricsheet/internal/model"
	"github.com/handiism/lyricsheet/internal/sheet"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Defaults of the published lyrics sheet.
const (
	DefaultSheetURL  = "https://docs.google.com/spreadsheets/d/e/2PACX-1vQHrCOSe45I2r-X7jM7x-eLLVtDtWeL9zTGO5ndjtF89ojmxTcAcOsUJkRwasCyj21JZhgbXuN5D1Tk/pub"
	DefaultSongGID   = "2105753516"
	DefaultArtistGID = "172424194"
)

// Environment variables read by ApplyEnv.
const (
	EnvSheetURL  = "LYRICSHEET_SHEET_URL"
	EnvSongGID   = "LYRICSHEET_SONG_GID"
	EnvArtistGID = "LYRICSHEET_ARTIST_GID"
	EnvTimeout   = "LYRICSHEET_TIMEOUT"
)

// Settings holds all configuration options.
type Settings struct {
	// Sheet settings
	SheetURL       string  `json:"sheet_url" toml:"sheet_url"`
	SongGID        string  `json:"song_gid" toml:"song_gid"`
	ArtistGID      string  `json:"artist_gid" toml:"artist_gid"`
	RequestTimeout float64 `json:"request_timeout" toml:"request_timeout"` // seconds
	UserAgent      string  `json:"user_agent" toml:"user_agent"`

	// Mapping
	DefaultCategory string              `json:"default_category" toml:"default_category"`
	DefaultAlbum    string              `json:"default_album" toml:"default_album"`
	SongColumns     model.SongColumns   `json:"song_columns" toml:"song_columns"`
	ArtistColumns   model.ArtistColumns `json:"artist_columns" toml:"artist_columns"`

	// Artwork export
	ExportPath             string  `json:"export_path" toml:"export_path"`
	ExportArtists          bool    `json:"export_artists" toml:"export_artists"`
	ExportCovers           bool    `json:"export_covers" toml:"export_covers"`
	MaxConcurrentDownloads int     `json:"max_concurrent_downloads" toml:"max_concurrent_downloads"`
	DownloadMaxRetries     int     `json:"download_max_retries" toml:"download_max_retries"`
	DownloadRetryCooldown  float64 `json:"download_retry_cooldown" toml:"download_retry_cooldown"`
	DownloadRetryExponent  float64 `json:"download_retry_exponent" toml:"download_retry_exponent"`
	ArtworkMaxSize         int     `json:"artwork_max_size" toml:"artwork_max_size"`

	// Playlist settings
	PlaylistFormat string `json:"playlist_format" toml:"playlist_format"` // m3u, pls
	M3UExtended    bool   `json:"m3u_extended" toml:"m3u_extended"`

	// Tag settings
	ModifyTags        bool   `json:"modify_tags" toml:"modify_tags"`
	SaveArtworkInTags bool   `json:"save_artwork_in_tags" toml:"save_artwork_in_tags"`
	LyricsLanguage    string `json:"lyrics_language" toml:"lyrics_language"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		SheetURL:       DefaultSheetURL,
		SongGID:        DefaultSongGID,
		ArtistGID:      DefaultArtistGID,
		RequestTimeout: http.DefaultTimeout.Seconds(),
		UserAgent:      http.DefaultUserAgent,

		DefaultCategory: catalog.DefaultCategory,
		DefaultAlbum:    catalog.DefaultAlbum,
		SongColumns:     model.DefaultSongColumns(),
		ArtistColumns:   model.DefaultArtistColumns(),

		ExportPath:             filepath.Join(homeDir, "Pictures", "Lyricsheet"),
		ExportArtists:          true,
		ExportCovers:           true,
		MaxConcurrentDownloads: 4,
		DownloadMaxRetries:     7,
		DownloadRetryCooldown:  0.2,
		DownloadRetryExponent:  4.0,
		ArtworkMaxSize:         1000,

		PlaylistFormat: "m3u",
		M3UExtended:    true,

		ModifyTags:        true,
		SaveArtworkInTags: true,
		LyricsLanguage:    audio.DefaultLyricsLanguage,
	}
}

// Load reads settings from a JSON or TOML file, chosen by the file
// extension. Fields missing from the file keep their defaults; a missing
// file yields DefaultSettings.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isTOML(path) {
		err = toml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON or TOML file, chosen by the file extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides sheet settings from the environment. Variables are read
// from the given .env files first (".env" when none are given); variables
// already set in the process environment win. Empty or invalid values are
// ignored.
func (s *Settings) ApplyEnv(envFiles ...string) {
	_ = godotenv.Load(envFiles...)

	if v := os.Getenv(EnvSheetURL); v != "" {
		s.SheetURL = v
	}
	if v := os.Getenv(EnvSongGID); v != "" {
		s.SongGID = v
	}
	if v := os.Getenv(EnvArtistGID); v != "" {
		s.ArtistGID = v
	}
	s.RequestTimeout = parseSecondsOrDefault(os.Getenv(EnvTimeout), s.RequestTimeout)
}

// Timeout returns RequestTimeout as a duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.RequestTimeout * float64(time.Second))
}

// ToSource converts settings to the feed locations.
func (s *Settings) ToSource() sheet.Source {
	return sheet.Source{
		BaseURL:   s.SheetURL,
		SongGID:   s.SongGID,
		ArtistGID: s.ArtistGID,
	}
}

// ToClientOptions converts settings to HTTP client options.
func (s *Settings) ToClientOptions() []http.Option {
	return []http.Option{
		http.WithTimeout(s.Timeout()),
		http.WithUserAgent(s.UserAgent),
	}
}

// ToMapperConfig converts settings to the row mapper configuration.
func (s *Settings) ToMapperConfig() catalog.MapperConfig {
	cfg := catalog.DefaultMapperConfig()
	cfg.SongColumns = s.SongColumns
	cfg.ArtistColumns = s.ArtistColumns
	if s.DefaultCategory != "" {
		cfg.DefaultCategory = s.DefaultCategory
	}
	if s.DefaultAlbum != "" {
		cfg.DefaultAlbum = s.DefaultAlbum
	}
	return cfg
}

// ToExportConfig converts settings to the artwork export configuration.
func (s *Settings) ToExportConfig() *export.Config {
	return &export.Config{
		Path:          s.ExportPath,
		Artists:       s.ExportArtists,
		Covers:        s.ExportCovers,
		MaxConcurrent: s.MaxConcurrentDownloads,
		MaxRetries:    s.DownloadMaxRetries,
		RetryCooldown: s.DownloadRetryCooldown,
		RetryExponent: s.DownloadRetryExponent,
		MaxSize:       s.ArtworkMaxSize,
	}
}

// ToTagConfig converts settings to the ID3 tag configuration.
func (s *Settings) ToTagConfig() *audio.TagConfig {
	cfg := audio.DefaultTagConfig()
	cfg.ModifyTags = s.ModifyTags
	if s.LyricsLanguage != "" {
		cfg.Language = s.LyricsLanguage
	}
	return cfg
}

// ToPlaylistCreator converts settings to a playlist writer.
func (s *Settings) ToPlaylistCreator() *audio.PlaylistCreator {
	return audio.NewPlaylistCreator(audio.ParsePlaylistFormat(s.PlaylistFormat), s.M3UExtended)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// parseSecondsOrDefault accepts a Go duration ("15s", "1m") or a number of
// seconds ("15", "2.5").
func parseSecondsOrDefault(v string, def float64) float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d.Seconds()
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
		return f
	}
	return def
}
