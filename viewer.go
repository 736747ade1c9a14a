package ginga

// Viewer is the consumer-side contract an image object draws into.
// Implementations must be comparable (pointer-shaped): the per-viewer
// render cache is keyed by the Viewer value itself.
//
// Draws for one (object, viewer) pair must be serialized by the caller;
// draws for different viewers may run concurrently.
type Viewer interface {
	// DrawRect returns the corners of the visible viewport in data
	// coordinates.
	DrawRect() [4]Point

	// ScaleXY returns the viewer zoom scale per axis.
	ScaleXY() (float64, float64)

	// Pan returns the pan position in data coordinates.
	Pan() (float64, float64)

	// DataOffset returns the constant added to the pan position when
	// locating data pixels (typically 0 or 0.5).
	DataOffset() float64

	// RGBOrder returns the channel order of the viewer's framebuffer.
	RGBOrder() Order

	// RGBMap returns the viewer's current color mapper.
	RGBMap() ColorMapper

	// Interpolation returns the viewer's default interpolation method.
	Interpolation() Interp

	// CutLevels returns the viewer's current (low, high) cut levels.
	CutLevels() (lo, hi float64)

	// AutoCuts returns the viewer's current auto-cuts policy.
	AutoCuts() AutoCuts

	// DataToWindow maps a data coordinate to window coordinates.
	DataToWindow(x, y float64) (float64, float64)

	// Redraw schedules a redraw of the viewer starting at the given
	// whence level.
	Redraw(whence int)

	// ReorderLayers notifies the viewer that object z-orders changed.
	ReorderLayers()

	// Renderer returns the viewer's decoration renderer.
	Renderer() Renderer
}
