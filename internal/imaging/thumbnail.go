// Package imaging resizes and re-encodes artwork for export and tagging.
package imaging

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 90

// ErrInvalidSize is returned for a non-positive maximum size.
var ErrInvalidSize = errors.New("maximum image size must be positive")

// Thumbnailer turns downloaded artwork into JPEG images no larger than a
// square bounding box.
//
// Example usage:
//
//	th := NewThumbnailer(90)
//
//	// A 1500x1000 cover becomes 500x333
//	jpegData, err := th.Thumbnail(coverData, 500)
type Thumbnailer struct {
	quality int
}

// NewThumbnailer creates a Thumbnailer. Out of range qualities fall back to
// DefaultQuality.
func NewThumbnailer(quality int) *Thumbnailer {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}
	return &Thumbnailer{quality: quality}
}

// Thumbnail decodes data and returns it as JPEG, scaled down to fit within
// maxSize x maxSize. The aspect ratio is preserved and smaller images are
// only re-encoded.
//
// The Catmull-Rom kernel is used for scaling.
func (t *Thumbnailer) Thumbnail(data []byte, maxSize int) ([]byte, error) {
	if maxSize <= 0 {
		return nil, ErrInvalidSize
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := FitWithin(bounds.Dx(), bounds.Dy(), maxSize)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return t.encode(dst)
}

// ToJPEG re-encodes data as JPEG without resizing.
func (t *Thumbnailer) ToJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return t.encode(img)
}

func (t *Thumbnailer) encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: t.quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FitWithin returns width and height scaled down to fit a maxSize square,
// keeping the aspect ratio. Dimensions that already fit are returned as is.
// Neither result is smaller than 1.
func FitWithin(width, height, maxSize int) (int, int) {
	if width <= maxSize && height <= maxSize {
		return width, height
	}

	if width >= height {
		height = height * maxSize / width
		width = maxSize
	} else {
		width = width * maxSize / height
		height = maxSize
	}

	return max(width, 1), max(height, 1)
}
