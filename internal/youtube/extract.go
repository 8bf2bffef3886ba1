// Package youtube extracts canonical video ids from the video column of the
// songs sheet and builds the URLs consumers need from them.
package youtube

import (
	"regexp"
	"strings"
)

// IDLength is the length of every canonical video id.
const IDLength = 11

var (
	bareID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

	// urlID recognizes the path and query forms a video link can take:
	// youtu.be/ID, /v/ID, /vi/ID, /u/x/ID, /embed/ID, /shorts/ID,
	// watch?v=ID, ?vi=ID and &v=ID. The capture stops at the first #, & or ?.
	urlID = regexp.MustCompile(`^.*(?:(?:youtu\.be/|v/|vi/|u/\w/|embed/|shorts/)|(?:(?:watch)?\?vi?=|&vi?=))([^#&?]*).*`)
)

// ExtractID returns the 11 character video id in s, or "" if there is none.
//
// s may be a bare id or any common link shape, including mobile and short
// links. Anything else, including the empty string, yields "":
//
//	ExtractID("dQw4w9WgXcQ")                                     // "dQw4w9WgXcQ"
//	ExtractID("https://youtu.be/dQw4w9WgXcQ")                    // "dQw4w9WgXcQ"
//	ExtractID("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=1") // "dQw4w9WgXcQ"
//	ExtractID("not a url")                                       // ""
func ExtractID(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if bareID.MatchString(s) {
		return s
	}

	match := urlID.FindStringSubmatch(s)
	if match == nil || len(match[1]) != IDLength {
		return ""
	}
	return match[1]
}

// WatchURL returns the watch page URL for a video id, or "" for an empty id.
func WatchURL(id string) string {
	if id == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + id
}

// ThumbnailURL returns the high quality thumbnail URL for a video id, or ""
// for an empty id.
func ThumbnailURL(id string) string {
	if id == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}
