package lyrics

import (
	"reflect"
	"testing"

	"github.com/handiism/lyricsheet/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []model.LyricLine
	}{
		{
			name: "empty cell",
			raw:  "",
			want: []model.LyricLine{},
		},
		{
			name: "whitespace only",
			raw:  " \n \n",
			want: []model.LyricLine{},
		},
		{
			name: "single three line block",
			raw:  "L1\nL2\nL3",
			want: []model.LyricLine{{Original: "L1", Romanization: "L2", Translation: "L3"}},
		},
		{
			name: "single block trailing newline",
			raw:  "L1\nL2\nL3\n",
			want: []model.LyricLine{{Original: "L1", Romanization: "L2", Translation: "L3"}},
		},
		{
			name: "two line block",
			raw:  "A\nB",
			want: []model.LyricLine{{Original: "A", Romanization: "B"}},
		},
		{
			name: "paragraph blocks",
			raw:  "A1\nA2\nA3\n\nB1\nB2",
			want: []model.LyricLine{
				{Original: "A1", Romanization: "A2", Translation: "A3"},
				{Original: "B1", Romanization: "B2"},
			},
		},
		{
			name: "several blank lines between blocks",
			raw:  "A\n  \n\n B ",
			want: []model.LyricLine{{Original: "A"}, {Original: "B"}},
		},
		{
			name: "extra lines in block ignored",
			raw:  "A\nB\nC\nD\n\nE",
			want: []model.LyricLine{
				{Original: "A", Romanization: "B", Translation: "C"},
				{Original: "E"},
			},
		},
		{
			name: "flat triples re-chunked",
			raw:  "1\n2\n3\n4\n5\n6\n7",
			want: []model.LyricLine{
				{Original: "1", Romanization: "2", Translation: "3"},
				{Original: "4", Romanization: "5", Translation: "6"},
				{Original: "7"},
			},
		},
		{
			name: "whitespace-only line separates blocks",
			raw:  "1\n2\n \n3\n4",
			want: []model.LyricLine{
				{Original: "1", Romanization: "2"},
				{Original: "3", Romanization: "4"},
			},
		},
		{
			name: "crlf blocks",
			raw:  "A\r\nB\r\nC\r\n\r\nD",
			want: []model.LyricLine{
				{Original: "A", Romanization: "B", Translation: "C"},
				{Original: "D"},
			},
		},
		{
			name: "caret lines",
			raw:  "a^b^c\nd^e",
			want: []model.LyricLine{
				{Original: "a", Romanization: "b", Translation: "c"},
				{Original: "d", Romanization: "e"},
			},
		},
		{
			name: "carriage return blocks",
			raw:  "L1\rL2\rL3\r\rM1\rM2\rM3",
			want: []model.LyricLine{
				{Original: "L1", Romanization: "L2", Translation: "L3"},
				{Original: "M1", Romanization: "M2", Translation: "M3"},
			},
		},
		{
			name: "crlf caret lines",
			raw:  "a^b^c\r\nd^e",
			want: []model.LyricLine{
				{Original: "a", Romanization: "b", Translation: "c"},
				{Original: "d", Romanization: "e"},
			},
		},
		{
			name: "caret fields trimmed",
			raw:  " 사랑해 ^ saranghae ^ I love you ",
			want: []model.LyricLine{{Original: "사랑해", Romanization: "saranghae", Translation: "I love you"}},
		},
		{
			name: "caret wins over blank lines",
			raw:  "a^b\n\nc\nd\ne",
			want: []model.LyricLine{
				{Original: "a", Romanization: "b"},
				{Original: "c"},
				{Original: "d"},
				{Original: "e"},
			},
		},
		{
			name: "caret drops empty originals",
			raw:  "^x^y\nz^w\n^",
			want: []model.LyricLine{{Original: "z", Romanization: "w"}},
		},
		{
			name: "caret extra fields ignored",
			raw:  "a^b^c^d",
			want: []model.LyricLine{{Original: "a", Romanization: "b", Translation: "c"}},
		},
		{
			name: "caret empty middle field",
			raw:  "a^^c",
			want: []model.LyricLine{{Original: "a", Translation: "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalize_WellFormedBlockIsStable(t *testing.T) {
	first := Normalize("L1\nL2\nL3")
	again := Normalize(Format(first))
	if !reflect.DeepEqual(first, again) {
		t.Errorf("Normalize(Format(x)) = %+v, want %+v", again, first)
	}
}

func TestFormat(t *testing.T) {
	lines := []model.LyricLine{
		{Original: "A1", Romanization: "A2", Translation: "A3"},
		{Original: "B1"},
		{Original: "C1", Romanization: "C2"},
	}

	want := "A1\nA2\nA3\n\nB1\n\nC1\nC2"
	if got := Format(lines); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	if got := Normalize(Format(lines)); !reflect.DeepEqual(got, lines) {
		t.Errorf("round trip = %+v, want %+v", got, lines)
	}
}

func TestFormat_Empty(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}

func TestOriginals(t *testing.T) {
	lines := []model.LyricLine{
		{Original: "one", Translation: "하나"},
		{Original: "two"},
	}
	if got := Originals(lines); got != "one\ntwo" {
		t.Errorf("Originals() = %q, want %q", got, "one\ntwo")
	}
}
