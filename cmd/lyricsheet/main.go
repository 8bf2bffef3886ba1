package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/handiism/lyricsheet/internal/audio"
	"github.com/handiism/lyricsheet/internal/catalog"
	"github.com/handiism/lyricsheet/internal/config"
	"github.com/handiism/lyricsheet/internal/export"
	"github.com/handiism/lyricsheet/internal/http"
	"github.com/handiism/lyricsheet/internal/model"
	"github.com/handiism/lyricsheet/internal/progress"
)

func main() {
	// Command line flags
	var (
		configFlag     = flag.String("config", "", "Path to config file (.json or .toml)")
		verboseFlag    = flag.Bool("verbose", false, "Show verbose output")
		listFlag       = flag.Bool("list", false, "List songs")
		jsonFlag       = flag.Bool("json", false, "Print the catalog as JSON")
		songFlag       = flag.String("song", "", "Show one song with lyrics (e.g. song-3)")
		categoriesFlag = flag.Bool("categories", false, "List categories")
		categoryFlag   = flag.String("category", "", "Only list songs in this category")
		searchFlag     = flag.String("search", "", "Only list songs matching title or artist")
		droppedFlag    = flag.Bool("dropped", false, "Report rows skipped while mapping")
		playlistFlag   = flag.String("playlist", "", "Write a playlist of song videos to this file")
		exportFlag     = flag.String("export", "", "Export artist images and covers to this directory")
		tagFlag        = flag.String("tag", "", "Write tags and lyrics of -song into this MP3 file")
	)

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Lyricsheet - Browse the lyrics catalog of a published sheet")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  lyricsheet [options]")
		fmt.Fprintln(os.Stderr, "  lyricsheet -song song-3 -tag night-letter.mp3")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "For interactive mode, use: lyricsheet-tui")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *tagFlag != "" && *songFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: -tag requires -song")
		os.Exit(2)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	settings.ApplyEnv()

	if *exportFlag != "" {
		settings.ExportPath = *exportFlag
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, cancelling...")
		cancel()
	}()

	colorize := shouldColorize(os.Stdout)
	errColorize := shouldColorize(os.Stderr)

	// Progress goes to stderr so -json output stays clean
	onProgress := progress.Func(func(event progress.Event) {
		if event.Level == progress.LevelVerbose && !*verboseFlag {
			return
		}
		fmt.Fprintln(os.Stderr, formatEvent(event, errColorize))
	})

	client := http.NewClient(settings.ToClientOptions()...)

	var diag *catalog.Diagnostics
	mapper := catalog.NewMapper(settings.ToMapperConfig())
	if *droppedFlag {
		diag = catalog.NewDiagnostics()
		mapper = mapper.WithDiagnostics(diag)
	}

	store := catalog.NewStore(catalog.NewAssembler(client, settings.ToSource(), mapper, onProgress))
	cat, err := store.Refresh(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching catalog: %v\n", err)
		os.Exit(1)
	}

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cat); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding catalog: %v\n", err)
			os.Exit(1)
		}
		return
	}

	exporter := export.NewManager(settings.ToExportConfig(), client, onProgress)
	acted := false

	if *songFlag != "" {
		acted = true
		song, ok := cat.Song(*songFlag)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no song with id %q\n", *songFlag)
			os.Exit(1)
		}
		meta, _ := cat.Artist(song.Artist)
		fmt.Print(songDetail(song, meta))

		if *tagFlag != "" {
			if err := tagFile(ctx, settings, exporter, *tagFlag, song, onProgress); err != nil {
				fmt.Fprintf(os.Stderr, "Error tagging %s: %v\n", *tagFlag, err)
				os.Exit(1)
			}
		}
	}

	if *categoriesFlag {
		acted = true
		fmt.Println(categoryTable(cat, colorize))
	}

	if *droppedFlag {
		acted = true
		rows := diag.Rows()
		if len(rows) == 0 {
			fmt.Println("No rows were dropped.")
		} else {
			fmt.Println(droppedTable(rows, colorize))
		}
	}

	if *playlistFlag != "" {
		acted = true
		songs := filterSongs(cat, *searchFlag, *categoryFlag)
		content := settings.ToPlaylistCreator().CreatePlaylist(songs)
		if err := os.WriteFile(*playlistFlag, []byte(content), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing playlist: %v\n", err)
			os.Exit(1)
		}
		onProgress.Emit(progress.LevelSuccess, "Wrote playlist %s", *playlistFlag)
	}

	if *exportFlag != "" {
		acted = true
		if err := exporter.Export(ctx, cat); err != nil {
			if ctx.Err() != nil {
				fmt.Fprintln(os.Stderr, "\nExport cancelled.")
				os.Exit(130)
			}
			fmt.Fprintf(os.Stderr, "Error during export: %v\n", err)
			os.Exit(1)
		}
	}

	if *listFlag || *searchFlag != "" || *categoryFlag != "" || !acted {
		songs := filterSongs(cat, *searchFlag, *categoryFlag)
		fmt.Println(songTable(songs, colorize))
		fmt.Printf("%d of %d songs, %d artists\n", len(songs), len(cat.Songs), len(cat.Artists))
	}
}

func filterSongs(cat *model.Catalog, query, category string) []model.Song {
	songs := cat.Search(query)
	category = strings.TrimSpace(category)
	if category == "" {
		return songs
	}

	var out []model.Song
	for i := range songs {
		if songs[i].HasTag(category) {
			out = append(out, songs[i])
		}
	}
	return out
}

// tagFile writes song metadata into an MP3 file, embedding the cover when
// the settings ask for it and the download succeeds.
func tagFile(ctx context.Context, settings *config.Settings, exporter *export.Manager, path string, song *model.Song, onProgress progress.Func) error {
	var artwork []byte
	if settings.SaveArtworkInTags && song.CoverURL != "" {
		var err error
		artwork, err = exporter.Artwork(ctx, song.CoverURL)
		if err != nil {
			onProgress.Emit(progress.LevelWarning, "Cover not embedded: %v", err)
		}
	}

	tagger := audio.NewTagger(settings.ToTagConfig())
	if err := tagger.SaveTags(path, song, artwork); err != nil {
		return err
	}
	onProgress.Emit(progress.LevelSuccess, "Tagged %s", path)
	return nil
}
