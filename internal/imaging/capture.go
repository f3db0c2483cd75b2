package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/corona10/goimagehash"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/edge-ruler-mcp/internal/boundary"
)

// ErrEmptyRegion is returned when a crop region has no area.
var ErrEmptyRegion = errors.New("empty capture region")

// Region is a pixel rectangle within a decoded image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Capture is the raster of one overlay activation.
type Capture struct {
	// Buffer is the measurable raster.
	Buffer *boundary.Buffer

	// Hash is a perceptual fingerprint of the raster. It is nil for
	// degenerate captures.
	Hash *goimagehash.ImageHash
}

// NewCapture builds a Capture from a decoded image.
//
// When region is non-nil the image is cropped to it first, and origin then
// describes the screen rectangle covered by the cropped raster. A zero origin
// makes the raster its own screen space (scale 1).
func NewCapture(img image.Image, origin boundary.Rect, region *Region) (*Capture, error) {
	if region != nil {
		cropped, err := CropRegion(img, *region)
		if err != nil {
			return nil, err
		}
		img = cropped
	}

	hash, err := Fingerprint(img)
	if err != nil {
		return nil, err
	}

	return &Capture{
		Buffer: boundary.NewBuffer(img, origin),
		Hash:   hash,
	}, nil
}

// Similar reports whether two captures are perceptually the same screen,
// allowing up to maxDistance differing hash bits.
func (c *Capture) Similar(other *Capture, maxDistance int) bool {
	if c == nil || other == nil || c.Hash == nil || other.Hash == nil {
		return false
	}
	dist, err := c.Hash.Distance(other.Hash)
	if err != nil {
		return false
	}
	return dist <= maxDistance
}

// CropRegion extracts a region of img. The region is given in the image's own
// pixel coordinates and must lie within its bounds.
func CropRegion(img image.Image, r Region) (image.Image, error) {
	bounds := img.Bounds()

	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return nil, fmt.Errorf("%w: (%d,%d)-(%d,%d)", ErrEmptyRegion, r.X1, r.Y1, r.X2, r.Y2)
	}
	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}

	return imaging.Crop(img, image.Rect(r.X1, r.Y1, r.X2, r.Y2)), nil
}

// Fingerprint computes a perceptual hash of img. Degenerate images have no
// fingerprint and return nil without error.
func Fingerprint(img image.Image) (*goimagehash.ImageHash, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, nil
	}
	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint capture: %w", err)
	}
	return hash, nil
}
