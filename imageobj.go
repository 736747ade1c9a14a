package ginga

import (
	"fmt"
	"image"
	"math"
	"time"
)

// Whence levels. A draw request carries the earliest pipeline stage
// that must be recomputed; higher levels reuse more cached work.
const (
	// WhenceAll recomputes the cutout and everything after it.
	WhenceAll = 0

	// WhenceCuts reuses the cutout, recomputes cut levels onward.
	WhenceCuts = 1

	// WhenceColorMap reuses the index array, recomputes the color
	// mapping onward.
	WhenceColorMap = 2

	// WhenceNone reuses every cached array; only compositing runs.
	WhenceNone = 3
)

// ImageObject draws a raw RGB(A) image on a canvas. The image pixels
// are composited as-is, without cut levels or color mapping; see
// NormImageObject for the normalized variant.
//
// Geometry and appearance fields may be read freely. Mutations must go
// through the provided setters (SetScale, SetOrigin, MoveTo, SetImage,
// ...) or be followed by ResetOptimize, so the per-viewer caches are
// invalidated.
type ImageObject struct {
	OnePoint

	ScaleX, ScaleY float64

	// Interpolation selects the scaling method; empty means the
	// viewer's default.
	Interpolation Interp

	// Alpha is the uniform opacity the image is composited with.
	Alpha float64

	LineWidth int
	LineStyle LineStyle
	Color     RGBA
	ShowCap   bool
	FlipY     bool

	// Optimize enables the per-viewer render cache.
	Optimize bool

	// Editable gates the edit handles; off by default.
	Editable bool

	kind     string
	zorder   int
	img      *RGBImage
	cache    cacheMap
	imageSet []func(*RGBImage)
}

// NewImage creates a raw image object anchored at (x, y) in data
// space.
func NewImage(x, y float64, img *RGBImage, opts ...ImageOption) *ImageObject {
	o := &ImageObject{kind: "image", img: img}
	o.X, o.Y = x, y
	applyImageOptions(o, opts)
	return o
}

// Kind returns the registered canvas type name of the object.
func (o *ImageObject) Kind() string {
	return o.kind
}

// ZOrder returns the stacking order of the object.
func (o *ImageObject) ZOrder() int {
	return o.zorder
}

// SetZOrder changes the stacking order and asks every viewer that has
// drawn the object to re-layer and redraw. The render caches stay
// valid: stacking does not affect pixel content.
func (o *ImageObject) SetZOrder(z int) {
	o.zorder = z
	for _, v := range o.cache.viewers() {
		v.ReorderLayers()
		v.Redraw(WhenceColorMap)
	}
}

// Image returns the displayed image, or nil.
func (o *ImageObject) Image() *RGBImage {
	return o.img
}

// SetImage replaces the displayed image, resets every viewer's cache
// and fires the image-set callbacks once.
func (o *ImageObject) SetImage(img *RGBImage) {
	o.img = img
	o.ResetOptimize()

	for _, fn := range o.imageSet {
		fn(img)
	}
}

// OnImageSet registers a callback fired whenever the image reference
// is replaced.
func (o *ImageObject) OnImageSet(fn func(*RGBImage)) {
	o.imageSet = append(o.imageSet, fn)
}

// InCache reports whether the viewer has a cache entry yet.
func (o *ImageObject) InCache(v Viewer) bool {
	return o.cache.has(v)
}

// InvalidateCache resets the viewer's cache entry, forcing a full
// recomputation on its next draw.
func (o *ImageObject) InvalidateCache(v Viewer) {
	o.cache.get(v).reset()
}

// DetachViewer removes the viewer's cache entry entirely. Call when a
// viewer stops displaying the object.
func (o *ImageObject) DetachViewer(v Viewer) {
	o.cache.delete(v)
}

// ResetOptimize resets every viewer's cache entry.
func (o *ImageObject) ResetOptimize() {
	o.cache.each(func(c *viewerCache) { c.reset() })
}

// Draw renders the object's decorations (optional border and caps)
// through the viewer's renderer. Insertion of the image pixels into
// the framebuffer is handled separately by DrawImage.
func (o *ImageObject) Draw(v Viewer) {
	cache := o.cache.get(v)
	if !cache.drawn {
		cache.drawn = true
		v.Redraw(WhenceColorMap)
	}

	cpoints := o.windowPoints(v)
	cr := v.Renderer().SetupContext(Stroke{
		Width: o.LineWidth,
		Style: o.LineStyle,
		Color: o.Color,
		Alpha: o.Alpha,
	})

	if o.LineWidth > 0 {
		cr.StrokePolygon(cpoints[:])
	}
	if o.ShowCap {
		for _, p := range cpoints {
			cr.DrawCap(p.X, p.Y)
		}
	}
}

// DrawImage composites the image into dst, recomputing only the
// pipeline stages the whence level marks stale. A missing image or an
// off-screen placement is a no-op.
func (o *ImageObject) DrawImage(v Viewer, dst *Pixmap, whence int) {
	if o.img == nil {
		return
	}

	t1 := time.Now()
	cache := o.cache.get(v)

	o.commonDraw(v, dst, cache, whence)
	if cache.cutout == nil {
		return
	}
	t2 := time.Now()

	overlayImage(dst, cache.pos, cache.cutout, o.Alpha, true)

	Logger().Debug("draw",
		"kind", o.kind,
		"cutout", t2.Sub(t1),
		"overlay", time.Since(t2),
		"total", time.Since(t1))
}

// commonDraw runs the cutout stage shared by both image variants:
// clip the visible box, intersect the source rectangle, extract and
// scale the cutout, and locate it in the destination buffer.
func (o *ImageObject) commonDraw(v Viewer, dst *Pixmap, cache *viewerCache, whence int) {
	if o.img == nil {
		return
	}
	if whence > WhenceAll && cache.cutout != nil && o.Optimize {
		return
	}

	// extent of our data coverage in the window, rounded outward
	rect := v.DrawRect()
	xmin, ymin := rect[0].X, rect[0].Y
	xmax, ymax := rect[0].X, rect[0].Y
	for _, p := range rect[1:] {
		xmin, ymin = math.Min(xmin, p.X), math.Min(ymin, p.Y)
		xmax, ymax = math.Max(xmax, p.X), math.Max(ymax, p.Y)
	}
	xmin, ymin = math.Floor(xmin), math.Floor(ymin)
	xmax, ymax = math.Ceil(xmax), math.Ceil(ymax)

	// destination anchor in data coordinates
	dstX, dstY := o.X, o.Y

	// cut out only what can appear inside the visible box; at zoomed-in
	// sizes this is what keeps scaling cheap
	a1, b1 := 0.0, 0.0
	a2, b2 := float64(o.img.Width()-1), float64(o.img.Height()-1)
	dstX, dstY, a1, b1, a2, b2 = mergeClip(xmin, ymin, xmax, ymax, dstX, dstY, a1, b1, a2, b2)

	if a2-a1 <= 0 || b2-b1 <= 0 {
		// image is completely off the screen
		cache.cutout = nil
		return
	}

	scaleX, scaleY := v.ScaleXY()
	sx, sy := scaleX*o.ScaleX, scaleY*o.ScaleY

	interp := o.Interpolation
	if interp == "" {
		interp = v.Interpolation()
	}
	// a saved preference may name a method this build does not have
	if !interp.Known() {
		interp = InterpBasic
	}

	data := o.img.ScaledCutout(int(a1), int(b1), int(a2), int(b2), sx, sy, interp)
	if data == nil {
		cache.cutout = nil
		return
	}
	if o.FlipY {
		data = data.FlipV()
	}
	cache.cutout = data

	// offset from the pan position, scaled into window pixels
	panX, panY := v.Pan()
	off := v.DataOffset()
	panX, panY = panX+off, panY+off
	offX := (dstX - panX) * scaleX
	offY := (dstY - panY) * scaleY

	// place relative to the center of the destination buffer
	cache.pos = image.Pt(
		int(math.Round(float64(dst.Width())/2+offX)),
		int(math.Round(float64(dst.Height())/2+offY)))
}

// windowPoints maps the object's corner points to window coordinates.
func (o *ImageObject) windowPoints(v Viewer) [4]Point {
	pts := o.Points()
	var out [4]Point
	for i, p := range pts {
		x, y := v.DataToWindow(p.X, p.Y)
		out[i] = Pt(x, y)
	}
	return out
}

// ScaledWH returns the object's extent in data space after applying
// its own scale factors.
func (o *ImageObject) ScaledWH() (int, int) {
	if o.img == nil {
		return 0, 0
	}
	return int(float64(o.img.Width()) * o.ScaleX),
		int(float64(o.img.Height()) * o.ScaleY)
}

// Coords returns the lower-left and upper-right corners (x1, y1, x2,
// y2) of the object in data space.
func (o *ImageObject) Coords() (float64, float64, float64, float64) {
	wd, ht := o.ScaledWH()
	return o.X, o.Y, o.X + float64(wd) - 1, o.Y + float64(ht) - 1
}

// LLUR is an alias for Coords.
func (o *ImageObject) LLUR() (float64, float64, float64, float64) {
	return o.Coords()
}

// CenterPt returns the center of the object in data space.
func (o *ImageObject) CenterPt() Point {
	x1, y1, x2, y2 := o.Coords()
	return Pt((x1+x2)/2, (y1+y2)/2)
}

// Points returns the four corners of the object in data space.
func (o *ImageObject) Points() [4]Point {
	x1, y1, x2, y2 := o.Coords()
	return [4]Point{Pt(x1, y1), Pt(x2, y1), Pt(x2, y2), Pt(x1, y2)}
}

// ContainsPt reports whether a data-space point lies on the object.
func (o *ImageObject) ContainsPt(x, y float64) bool {
	x1, y1, x2, y2 := o.LLUR()
	return x1 <= x && x <= x2 && y1 <= y && y <= y2
}

// Rotate always fails: image content has no defined rotated-cutout
// semantics.
func (o *ImageObject) Rotate(theta float64) error {
	return fmt.Errorf("%w (theta=%g)", ErrImageRotate, theta)
}

// MoveTo moves the anchor and invalidates the render caches.
func (o *ImageObject) MoveTo(x, y float64) {
	o.OnePoint.MoveTo(x, y)
	o.ResetOptimize()
}

// MoveDelta moves the anchor by an offset and invalidates the render
// caches.
func (o *ImageObject) MoveDelta(dx, dy float64) {
	o.OnePoint.MoveDelta(dx, dy)
	o.ResetOptimize()
}

// SetOrigin moves the anchor; alias of MoveTo kept for symmetry with
// SetScale.
func (o *ImageObject) SetOrigin(x, y float64) {
	o.MoveTo(x, y)
}

// SetScale sets absolute scale factors and invalidates the render
// caches.
func (o *ImageObject) SetScale(sx, sy float64) {
	o.ScaleX, o.ScaleY = sx, sy
	o.ResetOptimize()
}

// ScaleBy multiplies the scale factors and invalidates the render
// caches.
func (o *ImageObject) ScaleBy(fx, fy float64) {
	o.ScaleX *= fx
	o.ScaleY *= fy
	o.ResetOptimize()
}

// SetupEdit captures the drag-start state for an edit operation.
func (o *ImageObject) SetupEdit(detail *EditDetail) {
	detail.CenterPos = o.CenterPt()
	detail.ScaleX = o.ScaleX
	detail.ScaleY = o.ScaleY
}

// SetEditPoint applies a drag of edit handle i to pt. Handle 0 moves
// the object; 1, 2 and 3 scale width, height and both respectively.
// Any other index is rejected.
func (o *ImageObject) SetEditPoint(i int, pt Point, detail *EditDetail) error {
	switch i {
	case 0:
		o.OnePoint.MoveTo(pt.X, pt.Y)
	case 1:
		sx, _ := calcDualScaleFromPt(pt, detail)
		o.ScaleX = detail.ScaleX * sx
	case 2:
		_, sy := calcDualScaleFromPt(pt, detail)
		o.ScaleY = detail.ScaleY * sy
	case 3:
		sx, sy := calcDualScaleFromPt(pt, detail)
		o.ScaleX = detail.ScaleX * sx
		o.ScaleY = detail.ScaleY * sy
	default:
		return fmt.Errorf("%w %d", ErrEditPoint, i)
	}
	o.ResetOptimize()
	return nil
}

// EditPoints returns the object's edit handles: center move point,
// then width, height and corner scale points.
func (o *ImageObject) EditPoints(v Viewer) []EditPoint {
	x1, y1, x2, y2 := o.Coords()
	return []EditPoint{
		{Point: o.CenterPt(), Kind: EditMove},
		{Point: Pt(x2, (y1+y2)/2), Kind: EditScale},
		{Point: Pt((x1+x2)/2, y2), Kind: EditScale},
		{Point: Pt(x2, y2), Kind: EditScale},
	}
}
