package sheet

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrHTMLFeed is returned when a feed URL answers with an HTML page instead
// of CSV. Google Sheets does this when the sheet id or gid is wrong or the
// sheet is no longer published.
var ErrHTMLFeed = errors.New("feed returned an HTML page instead of CSV")

// ErrNoSheetURL is returned when no published sheet URL is configured.
var ErrNoSheetURL = errors.New("no published sheet URL configured")

// Source locates the two feeds of a published spreadsheet.
//
// BaseURL is the sheet's "publish to web" URL, ending in /pub. Each tab of the
// spreadsheet is selected with its gid:
//
//	src := Source{
//	    BaseURL:   "https://docs.google.com/spreadsheets/d/e/<id>/pub",
//	    SongGID:   "2105753516",
//	    ArtistGID: "172424194",
//	}
//	songURL, _ := src.SongURL(time.Now())
type Source struct {
	BaseURL   string
	SongGID   string
	ArtistGID string
}

// SongURL returns the CSV export URL of the songs tab.
func (s Source) SongURL(at time.Time) (string, error) {
	return s.feedURL(s.SongGID, at)
}

// FallbackSongURL returns the CSV export URL without a gid, which Google
// Sheets answers with the first tab. It is used when the songs gid is stale.
func (s Source) FallbackSongURL(at time.Time) (string, error) {
	return s.feedURL("", at)
}

// ArtistURL returns the CSV export URL of the artists tab.
func (s Source) ArtistURL(at time.Time) (string, error) {
	return s.feedURL(s.ArtistGID, at)
}

// feedURL builds the export URL. The t parameter busts caches between the
// sheet and the client; its value is the request time in Unix milliseconds.
func (s Source) feedURL(gid string, at time.Time) (string, error) {
	if strings.TrimSpace(s.BaseURL) == "" {
		return "", ErrNoSheetURL
	}

	u, err := url.Parse(strings.TrimSpace(s.BaseURL))
	if err != nil {
		return "", fmt.Errorf("invalid sheet URL: %w", err)
	}

	q := u.Query()
	q.Set("output", "csv")
	if gid != "" {
		q.Set("gid", gid)
		q.Set("single", "true")
	}
	q.Set("t", strconv.FormatInt(at.UnixMilli(), 10))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// IsHTML reports whether a feed body is an HTML document rather than CSV.
func IsHTML(body string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(body)), "<!doctype html")
}

// CheckBody returns an error wrapping ErrHTMLFeed if body is an HTML page.
// The page title is included because it usually says what went wrong.
func CheckBody(body string) error {
	if !IsHTML(body) {
		return nil
	}
	if title := HTMLTitle(body); title != "" {
		return fmt.Errorf("%w (page title %q)", ErrHTMLFeed, title)
	}
	return ErrHTMLFeed
}

// HTMLTitle returns the trimmed <title> of an HTML document, or "".
func HTMLTitle(body string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// Decode converts a raw feed body to text. A byte order mark selects the
// encoding (UTF-8 or UTF-16) and is removed; without one the body is read
// as UTF-8 and invalid sequences become U+FFFD.
func Decode(body []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	text, _, err := transform.Bytes(decoder, body)
	if err != nil {
		return "", fmt.Errorf("decoding feed body: %w", err)
	}
	return string(text), nil
}
