package ginga

import (
	"math"
	"sort"

	"github.com/anthonynsimon/bild/effect"
	"gonum.org/v1/gonum/stat"
)

// AutoCuts is a policy for computing and applying cut levels. Cut
// levels are a (low, high) pair in the source value space; applying
// them maps samples linearly into an integer index range for color
// table lookup.
type AutoCuts interface {
	// CalcCutLevels derives (low, high) cut levels from image content.
	CalcCutLevels(pm *Pixmap) (lo, hi float64)

	// CutLevels maps samples into [vmin, vmax], clipping outside the
	// (lo, hi) window. The index array keeps the pixmap's channel
	// count.
	CutLevels(pm *Pixmap, lo, hi float64, vmin, vmax int) *IndexArray
}

// cutLevels is the shared linear mapping used by every policy.
func cutLevels(pm *Pixmap, lo, hi float64, vmin, vmax int) *IndexArray {
	idx := NewIndexArray(pm.Width(), pm.Height(), pm.Order().Channels())
	delta := hi - lo
	span := float64(vmax - vmin)
	for i, s := range pm.Data() {
		var f float64
		if delta <= 0 {
			// degenerate window: threshold at the low cut
			if float64(s) >= lo {
				f = 1
			}
		} else {
			f = (float64(s) - lo) / delta
			if f < 0 {
				f = 0
			} else if f > 1 {
				f = 1
			}
		}
		idx.Data[i] = uint32(vmin) + uint32(math.Round(f*span))
	}
	return idx
}

// samples flattens pixmap bytes to float64 for the stats helpers.
func samples(pm *Pixmap) []float64 {
	out := make([]float64, len(pm.Data()))
	for i, s := range pm.Data() {
		out[i] = float64(s)
	}
	return out
}

// MinMaxAutoCuts sets the cut levels to the extremes of the data.
type MinMaxAutoCuts struct{}

// CalcCutLevels returns the minimum and maximum sample values.
func (MinMaxAutoCuts) CalcCutLevels(pm *Pixmap) (float64, float64) {
	data := pm.Data()
	if len(data) == 0 {
		return 0, 0
	}
	lo, hi := data[0], data[0]
	for _, s := range data {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	return float64(lo), float64(hi)
}

// CutLevels applies the shared linear mapping.
func (MinMaxAutoCuts) CutLevels(pm *Pixmap, lo, hi float64, vmin, vmax int) *IndexArray {
	return cutLevels(pm, lo, hi, vmin, vmax)
}

// StdDevAutoCuts centers the cut window on the mean, Hensa standard
// deviations wide on each side.
type StdDevAutoCuts struct {
	// Hensa is the number of deviations to keep; 2.5 when zero.
	Hensa float64
}

// CalcCutLevels returns mean ± Hensa·σ.
func (a StdDevAutoCuts) CalcCutLevels(pm *Pixmap) (float64, float64) {
	hensa := a.Hensa
	if hensa == 0 {
		hensa = 2.5
	}
	mean, sigma := stat.MeanStdDev(samples(pm), nil)
	if math.IsNaN(sigma) {
		sigma = 0
	}
	return mean - hensa*sigma, mean + hensa*sigma
}

// CutLevels applies the shared linear mapping.
func (StdDevAutoCuts) CutLevels(pm *Pixmap, lo, hi float64, vmin, vmax int) *IndexArray {
	return cutLevels(pm, lo, hi, vmin, vmax)
}

// HistogramAutoCuts keeps the central Pct of the sample distribution,
// discarding the tails.
type HistogramAutoCuts struct {
	// Pct is the fraction of the distribution to keep; 0.999 when
	// zero.
	Pct float64
}

// CalcCutLevels returns the quantiles bounding the central Pct.
func (a HistogramAutoCuts) CalcCutLevels(pm *Pixmap) (float64, float64) {
	pct := a.Pct
	if pct == 0 {
		pct = 0.999
	}
	data := samples(pm)
	if len(data) == 0 {
		return 0, 0
	}
	sort.Float64s(data)
	tail := (1 - pct) / 2
	lo := stat.Quantile(tail, stat.Empirical, data, nil)
	hi := stat.Quantile(1-tail, stat.Empirical, data, nil)
	return lo, hi
}

// CutLevels applies the shared linear mapping.
func (HistogramAutoCuts) CutLevels(pm *Pixmap, lo, hi float64, vmin, vmax int) *IndexArray {
	return cutLevels(pm, lo, hi, vmin, vmax)
}

// MedianAutoCuts median-filters the image before taking the extremes,
// suppressing hot pixels that would otherwise stretch the window.
type MedianAutoCuts struct {
	// Size is the filter kernel size in pixels; 5 when zero.
	Size float64
}

// CalcCutLevels returns the min/max of the median-filtered image.
func (a MedianAutoCuts) CalcCutLevels(pm *Pixmap) (float64, float64) {
	size := a.Size
	if size == 0 {
		size = 5
	}
	filtered := effect.Median(pm.ToImage(), size)
	return MinMaxAutoCuts{}.CalcCutLevels(FromImage(filtered, pm.Order()))
}

// CutLevels applies the shared linear mapping.
func (MedianAutoCuts) CutLevels(pm *Pixmap, lo, hi float64, vmin, vmax int) *IndexArray {
	return cutLevels(pm, lo, hi, vmin, vmax)
}
