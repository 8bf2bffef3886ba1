package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/handiism/lyricsheet/internal/audio"
)

func TestLoad_MissingFile(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.SongGID != DefaultSongGID || settings.SheetURL != DefaultSheetURL {
		t.Errorf("expected defaults, got %+v", settings)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, name := range []string{"settings.json", "settings.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			want := DefaultSettings()
			want.SongGID = "42"
			want.ExportPath = "/srv/art"
			want.SongColumns.Lyrics = 12
			want.M3UExtended = false
			want.RequestTimeout = 2.5

			if err := want.Save(path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if *got != *want {
				t.Errorf("Load() = %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestLoad_PartialTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lyricsheet.toml")
	content := `
song_gid = "7"
request_timeout = 12.0
playlist_format = "pls"

[song_columns]
title = 0
translated_title = 1
artist = 3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.SongGID != "7" {
		t.Errorf("SongGID = %q", settings.SongGID)
	}
	if settings.ArtistGID != DefaultArtistGID {
		t.Errorf("ArtistGID = %q, want default", settings.ArtistGID)
	}
	if settings.SongColumns.Artist != 3 {
		t.Errorf("SongColumns.Artist = %d, want 3", settings.SongColumns.Artist)
	}
	if settings.Timeout() != 12*time.Second {
		t.Errorf("Timeout() = %v", settings.Timeout())
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvSheetURL, "https://example.com/pub")
	t.Setenv(EnvSongGID, "1")
	t.Setenv(EnvArtistGID, "")
	t.Setenv(EnvTimeout, "15s")

	settings := DefaultSettings()
	settings.ApplyEnv(filepath.Join(t.TempDir(), "missing.env"))

	if settings.SheetURL != "https://example.com/pub" {
		t.Errorf("SheetURL = %q", settings.SheetURL)
	}
	if settings.SongGID != "1" {
		t.Errorf("SongGID = %q", settings.SongGID)
	}
	if settings.ArtistGID != DefaultArtistGID {
		t.Errorf("ArtistGID = %q, want default for empty variable", settings.ArtistGID)
	}
	if settings.RequestTimeout != 15 {
		t.Errorf("RequestTimeout = %v, want 15", settings.RequestTimeout)
	}
}

func TestApplyEnv_DotEnvFile(t *testing.T) {
	unsetEnv(t, EnvSheetURL)
	unsetEnv(t, EnvSongGID)
	unsetEnv(t, EnvArtistGID)
	unsetEnv(t, EnvTimeout)

	t.Setenv(EnvArtistGID, "from-process")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := EnvSongGID + "=from-file\n" + EnvArtistGID + "=ignored\n" + EnvTimeout + "=3\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	settings := DefaultSettings()
	settings.ApplyEnv(envFile)

	if settings.SongGID != "from-file" {
		t.Errorf("SongGID = %q, want from-file", settings.SongGID)
	}
	if settings.ArtistGID != "from-process" {
		t.Errorf("ArtistGID = %q, process environment should win", settings.ArtistGID)
	}
	if settings.RequestTimeout != 3 {
		t.Errorf("RequestTimeout = %v, want 3", settings.RequestTimeout)
	}
}

func TestParseSecondsOrDefault(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 30},
		{"1m", 60},
		{"2.5", 2.5},
		{"-5", 30},
		{"soon", 30},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseSecondsOrDefault(tt.in, 30); got != tt.want {
				t.Errorf("parseSecondsOrDefault(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestConverters(t *testing.T) {
	settings := DefaultSettings()
	settings.DefaultCategory = "J-POP"
	settings.DefaultAlbum = ""
	settings.ArtworkMaxSize = 300
	settings.ModifyTags = false
	settings.PlaylistFormat = "pls"

	src := settings.ToSource()
	if src.BaseURL != DefaultSheetURL || src.SongGID != DefaultSongGID || src.ArtistGID != DefaultArtistGID {
		t.Errorf("ToSource() = %+v", src)
	}

	mc := settings.ToMapperConfig()
	if mc.DefaultCategory != "J-POP" || mc.DefaultAlbum != "Single" || mc.Now == nil {
		t.Errorf("ToMapperConfig() = %+v", mc)
	}

	ec := settings.ToExportConfig()
	if ec.MaxSize != 300 || ec.MaxRetries != settings.DownloadMaxRetries || ec.Path != settings.ExportPath {
		t.Errorf("ToExportConfig() = %+v", ec)
	}

	tc := settings.ToTagConfig()
	if tc.ModifyTags || tc.Language != audio.DefaultLyricsLanguage {
		t.Errorf("ToTagConfig() = %+v", tc)
	}

	if len(settings.ToClientOptions()) != 2 {
		t.Error("ToClientOptions() should return timeout and user agent")
	}
	if settings.ToPlaylistCreator() == nil {
		t.Error("ToPlaylistCreator() returned nil")
	}
}
