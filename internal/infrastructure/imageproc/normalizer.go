// Package imageproc normalizes camera captures before they are sent for
// extraction or stored.
package imageproc

import (
	"bytes"
	"fmt"

	"checkmaster/internal/usecase/interfaces"

	"github.com/disintegration/imaging"
)

const (
	DefaultMaxDimension = 1600
	DefaultJPEGQuality  = 85
)

// Normalizer decodes an image, applies its EXIF orientation, shrinks it so
// the longest side fits MaxDimension and re-encodes it as JPEG.
type Normalizer struct {
	MaxDimension int
	Quality      int
}

var _ interfaces.IImageNormalizer = (*Normalizer)(nil)

func NewNormalizer() *Normalizer {
	return &Normalizer{MaxDimension: DefaultMaxDimension, Quality: DefaultJPEGQuality}
}

func (n *Normalizer) Normalize(data []byte) ([]byte, string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	if limit := n.MaxDimension; limit > 0 {
		b := img.Bounds()
		switch {
		case b.Dx() >= b.Dy() && b.Dx() > limit:
			img = imaging.Resize(img, limit, 0, imaging.Lanczos)
		case b.Dy() > b.Dx() && b.Dy() > limit:
			img = imaging.Resize(img, 0, limit, imaging.Lanczos)
		}
	}

	quality := n.Quality
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, "", fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}
