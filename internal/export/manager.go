package export

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/handiism/lyricsheet/internal/imaging"
	"github.com/handiism/lyricsheet/internal/model"
	"github.com/handiism/lyricsheet/internal/progress"
	"golang.org/x/sync/errgroup"
)

const (
	artistsDir = "artists"
	coversDir  = "covers"
)

// ErrNoPath is returned when no export directory is configured.
var ErrNoPath = errors.New("no export path configured")

// Config controls an artwork export.
type Config struct {
	// Path is the directory files are written under.
	Path string

	// Artists and Covers select which images are exported.
	Artists bool
	Covers  bool

	MaxConcurrent int

	// MaxRetries is the number of download attempts per image.
	MaxRetries int

	// RetryCooldown is the first wait between retries, in seconds. Each
	// further retry waits RetryExponent times longer.
	RetryCooldown float64
	RetryExponent float64

	// MaxSize bounds the width and height of written images. Zero keeps
	// the original size.
	MaxSize int
}

// DefaultConfig returns the default export configuration.
func DefaultConfig() *Config {
	return &Config{
		Artists:       true,
		Covers:        true,
		MaxConcurrent: 4,
		MaxRetries:    7,
		RetryCooldown: 0.2,
		RetryExponent: 4.0,
		MaxSize:       1000,
	}
}

// Downloader fetches image bytes. *http.Client satisfies it.
type Downloader interface {
	DownloadBytes(ctx context.Context, url string) ([]byte, error)
}

// File is one image to write.
type File struct {
	Name string
	Path string
}

// Job is one source image and every file it is written to.
type Job struct {
	URL   string
	Files []File
}

// Manager coordinates artwork exports.
type Manager struct {
	cfg    *Config
	client Downloader
	thumbs *imaging.Thumbnailer

	totalFiles    int32
	exportedFiles int32
	failedFiles   int32

	onProgress progress.Func
}

// NewManager creates a new export Manager. A nil cfg uses DefaultConfig.
func NewManager(cfg *Config, client Downloader, onProgress progress.Func) *Manager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Manager{
		cfg:        cfg,
		client:     client,
		thumbs:     imaging.NewThumbnailer(imaging.DefaultQuality),
		onProgress: onProgress,
	}
}

// Plan lists the downloads an export of cat would perform. Files sharing a
// source URL are grouped into one Job. Jobs keep catalog order: artists
// sorted by name, then songs.
func (m *Manager) Plan(cat *model.Catalog) []Job {
	var jobs []Job
	byURL := make(map[string]int)
	usedPaths := make(map[string]struct{})

	add := func(url, dir, name string) {
		if url == "" {
			return
		}
		file := File{Name: name, Path: uniquePath(usedPaths, dir, name)}
		if i, ok := byURL[url]; ok {
			jobs[i].Files = append(jobs[i].Files, file)
			return
		}
		byURL[url] = len(jobs)
		jobs = append(jobs, Job{URL: url, Files: []File{file}})
	}

	if m.cfg.Artists {
		dir := filepath.Join(m.cfg.Path, artistsDir)
		for _, name := range cat.ArtistNames() {
			add(cat.Artists[name].ImageURL, dir, name)
		}
	}

	if m.cfg.Covers {
		dir := filepath.Join(m.cfg.Path, coversDir)
		for _, song := range cat.Songs {
			add(song.CoverURL, dir, song.Artist+" - "+song.Title)
		}
	}

	return jobs
}

// Export downloads and writes the artwork of cat.
//
// Failures of single images are reported as progress events and counted;
// they do not stop the export. The returned error is non-nil only when the
// export could not start or ctx was cancelled.
func (m *Manager) Export(ctx context.Context, cat *model.Catalog) error {
	if m.cfg.Path == "" {
		return ErrNoPath
	}

	jobs := m.Plan(cat)

	var total int32
	for _, job := range jobs {
		total += int32(len(job.Files))
	}
	atomic.StoreInt32(&m.totalFiles, total)
	atomic.StoreInt32(&m.exportedFiles, 0)
	atomic.StoreInt32(&m.failedFiles, 0)

	for _, dir := range []string{artistsDir, coversDir} {
		if err := os.MkdirAll(filepath.Join(m.cfg.Path, dir), 0755); err != nil {
			m.onProgress.Emit(progress.LevelError, "Error creating directory: %v", err)
			return err
		}
	}

	m.onProgress.Emit(progress.LevelInfo, "Exporting %d images from %d sources", total, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(m.cfg.MaxConcurrent, 1))

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			m.exportJob(gctx, job)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	exported, failed, _ := m.GetProgress()
	if failed == 0 {
		m.onProgress.Emit(progress.LevelSuccess, "Exported %d images to %s", exported, m.cfg.Path)
	} else {
		m.onProgress.Emit(progress.LevelWarning, "Exported %d images to %s, %d failed", exported, m.cfg.Path, failed)
	}
	return nil
}

// GetProgress returns the number of written, failed and planned files of
// the current or last export.
func (m *Manager) GetProgress() (exported, failed, total int32) {
	return atomic.LoadInt32(&m.exportedFiles),
		atomic.LoadInt32(&m.failedFiles),
		atomic.LoadInt32(&m.totalFiles)
}

// Artwork downloads url with retries and returns it as a resized JPEG.
func (m *Manager) Artwork(ctx context.Context, url string) ([]byte, error) {
	var data []byte
	var err error

	attempts := max(m.cfg.MaxRetries, 1)
	for tries := 0; tries < attempts; tries++ {
		data, err = m.client.DownloadBytes(ctx, url)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if tries+1 < attempts {
			m.onProgress.Emit(progress.LevelWarning, "Retry %d/%d for %s", tries+1, attempts-1, url)
			m.waitForRetry(ctx, tries)
		}
	}
	if err != nil {
		return nil, err
	}

	if m.cfg.MaxSize > 0 {
		return m.thumbs.Thumbnail(data, m.cfg.MaxSize)
	}
	return m.thumbs.ToJPEG(data)
}

func (m *Manager) exportJob(ctx context.Context, job Job) {
	var pending []File
	for _, file := range job.Files {
		if _, err := os.Stat(file.Path); err == nil {
			m.onProgress.Emit(progress.LevelVerbose, "Skipping existing: %s", filepath.Base(file.Path))
			atomic.AddInt32(&m.exportedFiles, 1)
			continue
		}
		pending = append(pending, file)
	}
	if len(pending) == 0 {
		return
	}

	image, err := m.Artwork(ctx, job.URL)
	if err != nil {
		m.onProgress.Emit(progress.LevelError, "Error downloading %s: %v", job.URL, err)
		atomic.AddInt32(&m.failedFiles, int32(len(pending)))
		return
	}

	for _, file := range pending {
		if err := os.WriteFile(file.Path, image, 0644); err != nil {
			m.onProgress.Emit(progress.LevelError, "Error saving %s: %v", file.Name, err)
			atomic.AddInt32(&m.failedFiles, 1)
			continue
		}
		atomic.AddInt32(&m.exportedFiles, 1)
		m.onProgress.Emit(progress.LevelVerbose, "Saved: %s", filepath.Base(file.Path))
	}
}

func (m *Manager) waitForRetry(ctx context.Context, tries int) {
	cooldown := m.cfg.RetryCooldown * math.Pow(m.cfg.RetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

// uniquePath returns dir/<name>.jpg, adding " (2)", " (3)" and so on when an
// earlier file already claimed the name.
func uniquePath(used map[string]struct{}, dir, name string) string {
	base := model.SanitizeFileName(name)
	if base == "" {
		base = "untitled"
	}

	path := filepath.Join(dir, base+".jpg")
	for n := 2; ; n++ {
		if _, ok := used[path]; !ok {
			break
		}
		path = filepath.Join(dir, fmt.Sprintf("%s (%d).jpg", base, n))
	}
	used[path] = struct{}{}
	return path
}
