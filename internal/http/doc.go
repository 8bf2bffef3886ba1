// Package http provides the HTTP client used to fetch sheet feeds and
// artwork.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Turning non-2xx responses into errors wrapping ErrStatus
//
// # Basic Usage
//
//	client := http.NewClient(http.WithTimeout(15 * time.Second))
//
//	// Fetch a CSV feed
//	body, err := client.Get(ctx, feedURL)
//
//	// Fetch an image
//	img, err := client.DownloadBytes(ctx, coverURL)
package http
