package worldmap

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// Register decoders for the common raster map formats.
	_ "image/jpeg"
	_ "image/png"
)

// Sampler classifies a coordinate as land or water. Implementations must be
// pure functions of their input: NodePlacer calls IsLand repeatedly inside
// retry loops and relies on stable answers.
type Sampler interface {
	IsLand(c Coord) (bool, error)
}

// Ocean classification thresholds for the raster path. The reference map is
// expected to paint oceans in a blue-dominant band.
const (
	oceanBlueFloor   = 80 // minimum blue channel for a pixel to count as ocean
	oceanBlueMarginR = 20 // blue must exceed red by this much
	oceanBlueMarginG = 10 // blue must exceed green by this much
)

// ImageSampler classifies land by pixel lookup against an equirectangular
// reference map with distinctly colored oceans.
type ImageSampler struct {
	img    image.Image
	width  int
	height int
}

// NewImageSampler decodes a reference map from r.
func NewImageSampler(r io.Reader) (*ImageSampler, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode reference map: %w", err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("reference map has empty bounds")
	}
	return &ImageSampler{img: img, width: b.Dx(), height: b.Dy()}, nil
}

// OpenImageSampler loads a reference map from the given file path.
func OpenImageSampler(path string) (*ImageSampler, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewImageSampler(f)
}

// IsLand maps the coordinate into pixel space and classifies the sampled
// pixel against the ocean color band.
func (s *ImageSampler) IsLand(c Coord) (bool, error) {
	if !c.Valid() {
		return false, ErrOutOfBounds
	}

	x := int((c.Lon + 180.0) / 360.0 * float64(s.width))
	y := int((1.0 - (c.Lat+90.0)/180.0) * float64(s.height))
	if x >= s.width {
		x = s.width - 1
	}
	if y >= s.height {
		y = s.height - 1
	}

	b := s.img.Bounds()
	r16, g16, b16, _ := s.img.At(b.Min.X+x, b.Min.Y+y).RGBA()
	r8, g8, b8 := int(r16>>8), int(g16>>8), int(b16>>8)

	ocean := b8 >= oceanBlueFloor && b8 > r8+oceanBlueMarginR && b8 > g8+oceanBlueMarginG
	return !ocean, nil
}

// PolygonSampler classifies land by testing the coordinate against a set of
// precomputed polygons approximating the continents. Used when no reference
// map is available.
type PolygonSampler struct {
	polygons [][]Coord
}

// NewPolygonSampler builds a sampler over the built-in continent polygons.
func NewPolygonSampler() (*PolygonSampler, error) {
	return NewPolygonSamplerWith(landPolygons)
}

// NewPolygonSamplerWith builds a sampler over the given polygons. Errors if
// no usable polygon is supplied so callers cannot silently treat every point
// as water (or land).
func NewPolygonSamplerWith(polygons [][]Coord) (*PolygonSampler, error) {
	usable := 0
	for _, p := range polygons {
		if len(p) >= 3 {
			usable++
		}
	}
	if usable == 0 {
		return nil, ErrSamplingUnavailable
	}
	return &PolygonSampler{polygons: polygons}, nil
}

// IsLand reports whether the coordinate falls inside any land polygon.
func (s *PolygonSampler) IsLand(c Coord) (bool, error) {
	if !c.Valid() {
		return false, ErrOutOfBounds
	}
	for _, polygon := range s.polygons {
		if pointInPolygon(c, polygon) {
			return true, nil
		}
	}
	return false, nil
}

// pointInPolygon is an even-odd ray cast along the longitude axis.
func pointInPolygon(c Coord, polygon []Coord) bool {
	inside := false
	n := len(polygon)
	for i := 0; i < n; i++ {
		a := polygon[i]
		b := polygon[(i+1)%n]
		if (a.Lat > c.Lat) == (b.Lat > c.Lat) {
			continue
		}
		dLat := b.Lat - a.Lat
		if dLat == 0 {
			continue
		}
		crossLon := (b.Lon-a.Lon)/dLat*(c.Lat-a.Lat) + a.Lon
		if c.Lon < crossLon {
			inside = !inside
		}
	}
	return inside
}

// fallbackSampler tries the primary source and falls back to the secondary
// when the primary cannot answer.
type fallbackSampler struct {
	primary  Sampler
	fallback Sampler
}

func (s *fallbackSampler) IsLand(c Coord) (bool, error) {
	land, err := s.primary.IsLand(c)
	if err == nil {
		return land, nil
	}
	if errors.Is(err, ErrOutOfBounds) {
		// Out of bounds is out of bounds regardless of source.
		return false, err
	}
	return s.fallback.IsLand(c)
}

// NewSampler builds the standard sampler chain: raster map when imagePath
// loads, polygon fallback behind it or alone otherwise. Returns
// ErrSamplingUnavailable only when neither source can be constructed.
func NewSampler(imagePath string) (Sampler, error) {
	polygons, polyErr := NewPolygonSampler()

	if imagePath != "" {
		img, err := OpenImageSampler(imagePath)
		if err == nil {
			if polyErr != nil {
				return img, nil
			}
			return &fallbackSampler{primary: img, fallback: polygons}, nil
		}
		// A missing or unreadable map is not fatal, the polygons cover it.
	}

	if polyErr != nil {
		return nil, ErrSamplingUnavailable
	}
	return polygons, nil
}
