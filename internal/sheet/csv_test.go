package sheet

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "plain rows",
			input: "a,b,c\nd,e,f\n",
			want:  [][]string{{"a", "b", "c"}, {"d", "e", "f"}},
		},
		{
			name:  "quoted comma",
			input: `a,"b,c",d`,
			want:  [][]string{{"a", "b,c", "d"}},
		},
		{
			name:  "doubled quote",
			input: `"a""b"`,
			want:  [][]string{{`a"b`}},
		},
		{
			name:  "embedded newline",
			input: "title,lyrics\nSong,\"line one\nline two\"\n",
			want:  [][]string{{"title", "lyrics"}, {"Song", "line one\nline two"}},
		},
		{
			name:  "crlf line endings",
			input: "a,b\r\nc,d\r\n",
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "bare cr line endings",
			input: "a,b\rc,d",
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "cells are trimmed",
			input: "  a , b  ,   \n",
			want:  [][]string{{"a", "b", ""}},
		},
		{
			name:  "blank lines skipped",
			input: "a\n\n\r\n\nb\n\n",
			want:  [][]string{{"a"}, {"b"}},
		},
		{
			name:  "no trailing newline",
			input: "a,b",
			want:  [][]string{{"a", "b"}},
		},
		{
			name:  "trailing empty cell",
			input: "a,\n",
			want:  [][]string{{"a", ""}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "quoted crlf kept",
			input: "\"x\r\ny\",z\r\n",
			want:  [][]string{{"x\r\ny", "z"}},
		},
		{
			name:  "multibyte content",
			input: "사랑,\"愛, love\"\n",
			want:  [][]string{{"사랑", "愛, love"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCSV(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseCSV(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Without quotes, parsing must match splitting on terminators then commas.
func TestParseCSV_UnquotedMatchesSplit(t *testing.T) {
	inputs := []string{
		"title,artist,album\nSpring Day,BTS,You Never Walk Alone\n",
		"a, b ,c\r\nd,e , f\r\n",
		"one\ntwo\nthree",
		"x,,y\n,,\n",
	}

	for _, input := range inputs {
		var want [][]string
		normalized := strings.ReplaceAll(input, "\r\n", "\n")
		for _, line := range strings.Split(normalized, "\n") {
			if line == "" {
				continue
			}
			cells := strings.Split(line, ",")
			for i := range cells {
				cells[i] = strings.TrimSpace(cells[i])
			}
			want = append(want, cells)
		}

		got := ParseCSV(input)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ParseCSV(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestCell(t *testing.T) {
	row := []string{"a", "", "c"}

	tests := []struct {
		index int
		want  string
	}{
		{0, "a"},
		{1, ""},
		{2, "c"},
		{3, ""},
		{-1, ""},
	}

	for _, tt := range tests {
		if got := Cell(row, tt.index); got != tt.want {
			t.Errorf("Cell(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}
