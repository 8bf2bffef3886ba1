package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/lyricsheet/internal/catalog"
	"github.com/handiism/lyricsheet/internal/config"
	"github.com/handiism/lyricsheet/internal/model"
)

type stubFetcher struct {
	cat *model.Catalog
	err error
}

func (f stubFetcher) Fetch(context.Context) (*model.Catalog, error) {
	return f.cat, f.err
}

func testCatalog() *model.Catalog {
	cat := model.NewCatalog("run")
	cat.Songs = []model.Song{
		{ID: "song-0", Title: "밤편지", Artist: "아이유", ArtistSubName: "IU", Tags: []string{"Ballad"}, ReleaseYear: "2017",
			Lyrics: []model.LyricLine{{Original: "이 밤", Romanization: "i bam", Translation: "This night"}}},
		{ID: "song-1", Title: "Hype Boy", Artist: "NewJeans", Tags: []string{"K-POP"}, ReleaseYear: "2022"},
	}
	cat.Artists["아이유"] = model.ArtistMeta{Name: "아이유"}
	cat.Artists["NewJeans"] = model.ArtistMeta{Name: "NewJeans"}
	return cat
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	store := catalog.NewStore(stubFetcher{cat: testCatalog()})
	m := newModel(config.DefaultSettings(), store, nil, nil)

	cat, err := store.Refresh(context.Background())
	updated, _ := m.Update(RefreshDoneMsg{Catalog: cat, Err: err})
	return updated.(Model)
}

func press(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestModel_LoadsList(t *testing.T) {
	m := loadedModel(t)

	if m.state != StateList {
		t.Fatalf("state = %v, want StateList", m.state)
	}
	// The store sorts newest first.
	if len(m.songs) != 2 || m.songs[0].Title != "Hype Boy" {
		t.Errorf("songs = %+v", m.songs)
	}
	if !strings.Contains(m.View(), "2 of 2 songs") {
		t.Errorf("View() missing status line:\n%s", m.View())
	}
}

func TestModel_FirstLoadFails(t *testing.T) {
	store := catalog.NewStore(stubFetcher{cat: model.NewCatalog(""), err: errors.New("sheet down")})
	m := newModel(config.DefaultSettings(), store, nil, nil)

	cat, err := store.Refresh(context.Background())
	updated, _ := m.Update(RefreshDoneMsg{Catalog: cat, Err: err})
	m = updated.(Model)

	if m.state != StateError {
		t.Fatalf("state = %v, want StateError", m.state)
	}
	if !strings.Contains(m.View(), "sheet down") {
		t.Error("View() should show the error")
	}
}

func TestModel_FailedRefreshKeepsList(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(RefreshDoneMsg{Catalog: m.store.Snapshot(), Err: errors.New("timeout")})
	m = updated.(Model)

	if m.state != StateList || len(m.songs) != 2 {
		t.Errorf("state = %v, %d songs; want list with previous songs", m.state, len(m.songs))
	}
}

func TestModel_Navigation(t *testing.T) {
	m := loadedModel(t)

	m = press(m, "j")
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}
	m = press(m, "j")
	if m.cursor != 1 {
		t.Errorf("cursor moved past the end: %d", m.cursor)
	}

	m = press(m, "enter")
	if m.state != StateDetail || m.selected == nil || m.selected.Title != "밤편지" {
		t.Fatalf("state = %v, selected = %+v", m.state, m.selected)
	}
	if !strings.Contains(m.View(), "i bam") {
		t.Error("detail view should show romanization")
	}

	m = press(m, "esc")
	if m.state != StateList {
		t.Errorf("state = %v, want StateList after esc", m.state)
	}
}

func TestModel_CategoryFilter(t *testing.T) {
	m := loadedModel(t)

	m = press(m, "c")
	if m.category != 0 || len(m.songs) != 1 {
		t.Fatalf("category = %d, %d songs", m.category, len(m.songs))
	}
	if !m.songs[0].HasTag(m.categories[0]) {
		t.Errorf("song %q not in category %q", m.songs[0].Title, m.categories[0])
	}

	m = press(m, "c")
	m = press(m, "c")
	if m.category != -1 || len(m.songs) != 2 {
		t.Errorf("expected filter to wrap to all songs, got category %d with %d songs", m.category, len(m.songs))
	}
}

func TestModel_Search(t *testing.T) {
	m := loadedModel(t)

	m = press(m, "/")
	if !m.search.Focused() {
		t.Fatal("search should be focused")
	}
	m = press(m, "i")
	m = press(m, "u")
	if len(m.songs) != 1 || m.songs[0].Artist != "아이유" {
		t.Errorf("songs = %+v", m.songs)
	}

	m = press(m, "enter")
	if m.search.Focused() {
		t.Error("enter should leave search")
	}

	m = press(m, "esc")
	if m.search.Value() != "" || len(m.songs) != 2 {
		t.Errorf("esc should clear search, got %q with %d songs", m.search.Value(), len(m.songs))
	}
}
