// Package ginga implements canvas image objects for interactively
// displaying raster images inside a viewer, with an incremental
// compositing pipeline and a per-viewer render cache.
//
// # Overview
//
// ginga provides two drawable image kinds: Image (raw RGB/RGBA pixels
// composited as-is) and NormImage (pixels passed through cut-levels
// normalization and a color-mapping table before compositing). Both are
// positioned, scalable canvas objects that render themselves into a
// destination Pixmap on each draw call.
//
// # Quick Start
//
//	import "github.com/charitywei/ginga"
//
//	img := ginga.NewRGBImage(pm)
//	obj := ginga.NewImage(10, 10, img, ginga.WithScale(2, 2))
//
//	// vwr implements ginga.Viewer; dst is the viewer's framebuffer
//	obj.DrawImage(vwr, dst, ginga.WhenceAll)
//
// # Render Pipeline
//
// Each draw call carries a "whence" staleness level deciding which
// pipeline stages must be recomputed:
//   - WhenceAll (0): cutout extraction, alpha split and everything after
//   - WhenceCuts (1): cut-levels normalization and everything after
//   - WhenceColorMap (2): color-table mapping and compositing
//   - WhenceNone (3): compositing only, reusing the cached arrays
//
// Stage outputs are cached per viewer; any geometry or appearance
// mutation resets the affected cache fields so the next draw recomputes
// only what is stale.
//
// # Coordinate System
//
// Object anchors and image pixels live in data space; the viewer
// supplies the data-to-window mapping, pan position and scale. Origin
// (0,0) is top-left, X increases right, Y increases down.
//
// # Collaborators
//
// The windowing toolkit, event loop and coordinate transforms are
// outside this package. A consumer supplies a Viewer implementation;
// SoftwareRenderer provides border/handle stroking for toolkits without
// their own vector layer.
package ginga

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
