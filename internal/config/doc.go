// Package config provides configuration management for lyricsheet.
//
// This package handles:
//   - Loading and saving settings from JSON or TOML files
//   - Default configuration values, including the published sheet
//   - Overrides from the environment and an optional .env file
//   - Conversion to the configuration types of other packages
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/lyricsheet.toml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//	settings.ApplyEnv()
//
// # Environment
//
// ApplyEnv reads LYRICSHEET_SHEET_URL, LYRICSHEET_SONG_GID,
// LYRICSHEET_ARTIST_GID and LYRICSHEET_TIMEOUT. The timeout accepts a
// duration such as "15s" or a number of seconds.
//
// # Saving Settings
//
//	settings.ExportPath = "/srv/artwork"
//	err := settings.Save("/path/to/lyricsheet.json")
package config
