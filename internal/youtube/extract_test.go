package youtube

import "testing"

func TestExtractID(t *testing.T) {
	const id = "dQw4w9WgXcQ"

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare id", id, id},
		{"bare id with spaces", "  " + id + "\n", id},
		{"bare id with dash and underscore", "a-b_c-d_e-f", "a-b_c-d_e-f"},
		{"short link", "https://youtu.be/" + id, id},
		{"short link with time", "https://youtu.be/" + id + "?t=42", id},
		{"watch link", "https://www.youtube.com/watch?v=" + id, id},
		{"watch link with params", "https://www.youtube.com/watch?v=" + id + "&t=10s", id},
		{"param after others", "https://www.youtube.com/watch?feature=share&v=" + id, id},
		{"mobile", "https://m.youtube.com/watch?v=" + id, id},
		{"embed", "https://www.youtube.com/embed/" + id, id},
		{"embed with query", "https://www.youtube.com/embed/" + id + "?autoplay=1", id},
		{"shorts", "https://youtube.com/shorts/" + id, id},
		{"v path", "https://www.youtube.com/v/" + id, id},
		{"vi query", "https://www.youtube.com/?vi=" + id, id},
		{"user channel", "https://www.youtube.com/u/1/" + id, id},
		{"fragment", "https://www.youtube.com/watch?v=" + id + "#comments", id},
		{"no scheme", "youtu.be/" + id, id},
		{"empty", "", ""},
		{"whitespace", "   ", ""},
		{"not a url", "not a url", ""},
		{"short id", "https://youtu.be/abc", ""},
		{"long id", "https://youtu.be/" + id + "XYZ", ""},
		{"ten chars bare", "dQw4w9WgXc", ""},
		{"other host path", "https://example.com/page", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractID(tt.input); got != tt.want {
				t.Errorf("ExtractID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWatchURL(t *testing.T) {
	if got := WatchURL("dQw4w9WgXcQ"); got != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("WatchURL() = %q", got)
	}
	if got := WatchURL(""); got != "" {
		t.Errorf("WatchURL(\"\") = %q, want empty", got)
	}
}

func TestThumbnailURL(t *testing.T) {
	if got := ThumbnailURL("dQw4w9WgXcQ"); got != "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg" {
		t.Errorf("ThumbnailURL() = %q", got)
	}
	if got := ThumbnailURL(""); got != "" {
		t.Errorf("ThumbnailURL(\"\") = %q, want empty", got)
	}
}
