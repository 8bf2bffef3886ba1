package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/handiism/lyricsheet/internal/model"
	"github.com/handiism/lyricsheet/internal/progress"
	"github.com/handiism/lyricsheet/internal/sheet"
	"golang.org/x/sync/errgroup"
)

// ErrSongFeed is wrapped by Fetch errors when the song feed could not be
// read from either the primary or the fallback URL.
var ErrSongFeed = errors.New("song feed unavailable")

// Getter fetches the body of a URL. *http.Client satisfies it.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Assembler fetches both feeds and builds a catalog from them.
type Assembler struct {
	getter     Getter
	source     sheet.Source
	mapper     *Mapper
	onProgress progress.Func
	now        func() time.Time
}

// NewAssembler creates an Assembler. onProgress may be nil.
func NewAssembler(getter Getter, source sheet.Source, mapper *Mapper, onProgress progress.Func) *Assembler {
	if mapper == nil {
		mapper = NewMapper(DefaultMapperConfig())
	}
	return &Assembler{
		getter:     getter,
		source:     source,
		mapper:     mapper,
		onProgress: onProgress,
		now:        mapper.cfg.Now,
	}
}

// Fetch downloads the song and artist feeds concurrently and builds a
// catalog.
//
// The returned catalog is never nil. When the song feed fails on both the
// primary and the fallback URL, Fetch returns an empty catalog and an error
// wrapping ErrSongFeed. An artist feed failure only produces a warning event;
// artist metadata is then synthesized from the songs.
func (a *Assembler) Fetch(ctx context.Context) (cat *model.Catalog, err error) {
	defer func() {
		if r := recover(); r != nil {
			a.onProgress.Emit(progress.LevelError, "Catalog build failed: %v", r)
			cat = model.NewCatalog(uuid.NewString())
			cat.FetchedAt = a.now()
			err = fmt.Errorf("catalog build panicked: %v", r)
		}
	}()

	var songText, artistText string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(recovered(func() error {
		text, err := a.fetchSongs(gctx)
		if err != nil {
			return err
		}
		songText = text
		return nil
	}))
	g.Go(recovered(func() error {
		text, err := a.fetchArtists(gctx)
		if err != nil {
			a.onProgress.Emit(progress.LevelWarning, "Artist feed unavailable, using song data instead: %v", err)
			return nil
		}
		artistText = text
		return nil
	}))

	if err := g.Wait(); err != nil {
		a.onProgress.Emit(progress.LevelError, "Catalog fetch failed: %v", err)
		empty := model.NewCatalog(uuid.NewString())
		empty.FetchedAt = a.now()
		return empty, err
	}

	cat = a.Build(songText, artistText)
	a.onProgress.Emit(progress.LevelSuccess, "Loaded %d songs and %d artists", len(cat.Songs), len(cat.Artists))
	return cat, nil
}

// Build maps already fetched feed text into a catalog. The first row of each
// feed is a header and is skipped. Artists that appear in songs but not in
// the artist feed get metadata derived from their first song.
func (a *Assembler) Build(songText, artistText string) *model.Catalog {
	cat := model.NewCatalog(uuid.NewString())
	cat.FetchedAt = a.now()

	for i, row := range dataRows(sheet.ParseCSV(songText)) {
		if song, ok := a.mapper.MapSong(row, i); ok {
			cat.Songs = append(cat.Songs, song)
		}
	}

	for i, row := range dataRows(sheet.ParseCSV(artistText)) {
		if meta, ok := a.mapper.MapArtist(row, i); ok {
			cat.Artists[meta.Name] = meta
		}
	}

	for _, song := range cat.Songs {
		if _, ok := cat.Artists[song.Artist]; ok {
			continue
		}
		subName := song.ArtistSubName
		if subName == "" {
			subName = song.Artist
		}
		cat.Artists[song.Artist] = model.ArtistMeta{
			Name:     song.Artist,
			SubName:  subName,
			ImageURL: song.CoverURL,
		}
	}

	return cat
}

// fetchSongs reads the songs tab, falling back to the sheet's first tab when
// the primary URL fails or answers with an empty body or an HTML page.
func (a *Assembler) fetchSongs(ctx context.Context) (string, error) {
	now := a.now()

	primary, err := a.source.SongURL(now)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSongFeed, err)
	}

	a.onProgress.Emit(progress.LevelVerbose, "Fetching song feed: %s", primary)
	text, err := a.fetchFeed(ctx, primary)
	switch {
	case err == nil && strings.TrimSpace(text) != "":
		return text, nil
	case err == nil:
		a.onProgress.Emit(progress.LevelWarning, "Song feed is empty, trying fallback URL")
	default:
		a.onProgress.Emit(progress.LevelWarning, "Song feed failed, trying fallback URL: %v", err)
	}

	fallback, err := a.source.FallbackSongURL(now)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSongFeed, err)
	}

	a.onProgress.Emit(progress.LevelVerbose, "Fetching fallback song feed: %s", fallback)
	text, err = a.fetchFeed(ctx, fallback)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSongFeed, err)
	}
	return text, nil
}

func (a *Assembler) fetchArtists(ctx context.Context) (string, error) {
	artistURL, err := a.source.ArtistURL(a.now())
	if err != nil {
		return "", err
	}
	a.onProgress.Emit(progress.LevelVerbose, "Fetching artist feed: %s", artistURL)
	return a.fetchFeed(ctx, artistURL)
}

// fetchFeed downloads and decodes one feed and rejects HTML answers.
func (a *Assembler) fetchFeed(ctx context.Context, url string) (string, error) {
	body, err := a.getter.Get(ctx, url)
	if err != nil {
		return "", err
	}
	text, err := sheet.Decode(body)
	if err != nil {
		return "", err
	}
	if err := sheet.CheckBody(text); err != nil {
		return "", err
	}
	return text, nil
}

// dataRows drops the header row.
func dataRows(rows [][]string) [][]string {
	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}

// recovered turns a panic inside an errgroup goroutine into an error so it
// reaches Wait instead of crashing the process.
func recovered(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return fn()
	}
}
