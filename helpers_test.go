package ginga

import "testing"

// stubViewer is a minimal Viewer for pipeline tests. The zero value is
// unusable; use newStubViewer.
type stubViewer struct {
	rect     [4]Point
	sx, sy   float64
	panX     float64
	panY     float64
	dataOff  float64
	order    Order
	rgbmap   ColorMapper
	interp   Interp
	lo, hi   float64
	autocuts AutoCuts

	size     float64
	redraws  []int
	reorders int
	renderer Renderer
}

// newStubViewer views the data region [0, size) on both axes at scale
// 1, panned to its center.
func newStubViewer(size int) *stubViewer {
	s := float64(size)
	return &stubViewer{
		size:     s,
		rect:     [4]Point{Pt(0, 0), Pt(s, 0), Pt(s, s), Pt(0, s)},
		sx:       1,
		sy:       1,
		panX:     s / 2,
		panY:     s / 2,
		order:    OrderRGBA,
		rgbmap:   GrayRGBMap(256),
		interp:   InterpBasic,
		lo:       0,
		hi:       255,
		autocuts: MinMaxAutoCuts{},
	}
}

func (s *stubViewer) DrawRect() [4]Point                       { return s.rect }
func (s *stubViewer) ScaleXY() (float64, float64)              { return s.sx, s.sy }
func (s *stubViewer) Pan() (float64, float64)                  { return s.panX, s.panY }
func (s *stubViewer) DataOffset() float64                      { return s.dataOff }
func (s *stubViewer) RGBOrder() Order                          { return s.order }
func (s *stubViewer) RGBMap() ColorMapper                      { return s.rgbmap }
func (s *stubViewer) Interpolation() Interp                    { return s.interp }
func (s *stubViewer) CutLevels() (float64, float64)            { return s.lo, s.hi }
func (s *stubViewer) AutoCuts() AutoCuts                       { return s.autocuts }
func (s *stubViewer) DataToWindow(x, y float64) (float64, float64) {
	return (x-s.panX)*s.sx + s.size/2, (y-s.panY)*s.sy + s.size/2
}
func (s *stubViewer) Redraw(whence int) { s.redraws = append(s.redraws, whence) }
func (s *stubViewer) ReorderLayers()    { s.reorders++ }
func (s *stubViewer) Renderer() Renderer {
	if s.renderer == nil {
		s.renderer = &recordingRenderer{}
	}
	return s.renderer
}

// recordingRenderer records decoration calls instead of rasterizing.
type recordingRenderer struct {
	strokes int
	caps    int
	last    Stroke
}

func (r *recordingRenderer) SetupContext(st Stroke) DrawContext {
	r.last = st
	return &recordingContext{r: r}
}

type recordingContext struct {
	r *recordingRenderer
}

func (c *recordingContext) StrokePolygon(pts []Point) { c.r.strokes++ }
func (c *recordingContext) DrawCap(x, y float64)      { c.r.caps++ }

// gradientPixmap fills a pixmap with a deterministic per-channel
// pattern so displacement bugs show up in comparisons.
func gradientPixmap(w, h int, order Order) *Pixmap {
	pm := NewPixmap(w, h, order)
	ch := order.Channels()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := pm.Pix(x, y)
			for c := 0; c < ch; c++ {
				px[c] = uint8((x*7 + y*13 + c*29) % 256)
			}
		}
	}
	return pm
}

func gradientImage(w, h int, order Order) *RGBImage {
	return NewRGBImage(gradientPixmap(w, h, order))
}

// uniformImage fills every channel with one value.
func uniformImage(w, h int, order Order, v uint8) *RGBImage {
	pm := NewPixmap(w, h, order)
	for i := range pm.Data() {
		pm.Data()[i] = v
	}
	return NewRGBImage(pm)
}

func pixmapsEqual(t *testing.T, a, b *Pixmap) bool {
	t.Helper()
	if a.Width() != b.Width() || a.Height() != b.Height() || a.Order() != b.Order() {
		return false
	}
	for i := range a.Data() {
		if a.Data()[i] != b.Data()[i] {
			return false
		}
	}
	return true
}
