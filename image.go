package ginga

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Interp names an interpolation method for scaling image pixels.
// Unknown names are not an error anywhere in this package; they fall
// back to InterpBasic.
type Interp string

// Interpolation methods.
const (
	// InterpBasic is nearest-neighbor sampling, always available.
	InterpBasic Interp = "basic"

	// InterpNearest is an alias for nearest-neighbor sampling.
	InterpNearest Interp = "nearest"

	// InterpLinear performs bilinear interpolation.
	InterpLinear Interp = "linear"

	// InterpArea approximates area-averaged sampling; cheaper than
	// linear with similar results on downscaling.
	InterpArea Interp = "area"

	// InterpBicubic performs Catmull-Rom cubic interpolation.
	InterpBicubic Interp = "bicubic"

	// InterpLanczos is accepted for compatibility and served by the
	// cubic kernel.
	InterpLanczos Interp = "lanczos"
)

// scalers maps interpolation names to x/image scalers. Absence from
// this map is what makes a method "unrecognized".
var scalers = map[Interp]xdraw.Scaler{
	InterpBasic:   xdraw.NearestNeighbor,
	InterpNearest: xdraw.NearestNeighbor,
	InterpLinear:  xdraw.BiLinear,
	InterpArea:    xdraw.ApproxBiLinear,
	InterpBicubic: xdraw.CatmullRom,
	InterpLanczos: xdraw.CatmullRom,
}

// Known reports whether the method is recognized by this build.
func (i Interp) Known() bool {
	_, ok := scalers[i]
	return ok
}

// RGBImage owns raw pixel data placed on a canvas by an image object.
type RGBImage struct {
	pm *Pixmap
}

// NewRGBImage wraps a pixmap as an image.
func NewRGBImage(pm *Pixmap) *RGBImage {
	return &RGBImage{pm: pm}
}

// Width returns the native width in pixels.
func (im *RGBImage) Width() int {
	return im.pm.Width()
}

// Height returns the native height in pixels.
func (im *RGBImage) Height() int {
	return im.pm.Height()
}

// Order returns the image's channel order.
func (im *RGBImage) Order() Order {
	return im.pm.Order()
}

// Pixmap returns the backing pixel buffer.
func (im *RGBImage) Pixmap() *Pixmap {
	return im.pm
}

// ScaledCutout extracts the inclusive source rectangle
// (x1, y1)-(x2, y2), scales it by (sx, sy) with the given interpolation
// method and returns the result in the image's channel order.
//
// The rectangle is clipped to the image bounds. A cutout whose scaled
// extent rounds to zero or less in either axis returns nil: degenerate
// geometry means there is nothing to draw, it is not an error. An
// unrecognized method silently uses InterpBasic.
func (im *RGBImage) ScaledCutout(x1, y1, x2, y2 int, sx, sy float64, method Interp) *Pixmap {
	x1, y1 = max(x1, 0), max(y1, 0)
	x2, y2 = min(x2, im.Width()-1), min(y2, im.Height()-1)
	if x2 < x1 || y2 < y1 {
		return nil
	}

	wd := int(math.Round(float64(x2-x1+1) * sx))
	ht := int(math.Round(float64(y2-y1+1) * sy))
	if wd <= 0 || ht <= 0 {
		return nil
	}

	scaler, ok := scalers[method]
	if !ok {
		Logger().Warn("unknown interpolation method, using basic", "method", string(method))
		scaler = scalers[InterpBasic]
	}

	src := im.pm.ToImage()
	dst := image.NewNRGBA(image.Rect(0, 0, wd, ht))
	scaler.Scale(dst, dst.Rect, src, image.Rect(x1, y1, x2+1, y2+1), xdraw.Src, nil)

	return fromNRGBA(dst, im.pm.Order())
}
