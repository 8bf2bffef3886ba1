// Package audio writes catalog songs into audio-player formats: ID3 tags
// for MP3 files and playlists of the songs' videos.
//
// # ID3 Tagging
//
// Use the Tagger to write a song's metadata and lyrics into an MP3 file:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.SaveTags("night-letter.mp3", song, coverJPEG)
//
// The tagger supports:
//   - Title, Artist, Album, Year, Genre
//   - Lyrics as one block per line, the format lyrics.Format produces
//   - The song interpretation as a comment
//   - Cover Art (embedded in MP3)
//
// # Playlist Generation
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist(cat.Songs)
//	os.WriteFile("lyricsheet.m3u", []byte(content), 0644)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
package audio
