package ginga

import (
	"math"
	"time"
)

// Cuts is an explicit (low, high) cut-levels pair.
type Cuts struct {
	Lo, Hi float64
}

// NormImageObject draws an image whose pixels pass through cut-levels
// normalization and a color-mapping table before compositing. Cuts,
// RGBMap and AutoCuts each fall back to the viewer's current value
// when unset.
type NormImageObject struct {
	ImageObject

	// Cuts overrides the viewer's cut levels when non-nil.
	Cuts *Cuts

	// RGBMap overrides the viewer's color mapper when non-nil.
	RGBMap ColorMapper

	// AutoCuts overrides the viewer's auto-cuts policy when non-nil.
	AutoCuts AutoCuts
}

// NewNormImage creates a normalized image object anchored at (x, y)
// in data space.
func NewNormImage(x, y float64, img *RGBImage, opts ...ImageOption) *NormImageObject {
	o := &NormImageObject{}
	o.kind = "normimage"
	o.img = img
	o.X, o.Y = x, y
	applyNormImageOptions(o, opts)
	return o
}

// DrawImage composites the normalized image into dst. The whence level
// and the cache field states decide which of the three stages (cutout
// and alpha split, cut levels, color mapping) actually run; the final
// overlay runs every time there is a cutout.
func (o *NormImageObject) DrawImage(v Viewer, dst *Pixmap, whence int) {
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

	rgbmap := o.RGBMap
	if rgbmap == nil {
		rgbmap = v.RGBMap()
	}
	imageOrder := o.img.Order()

	if whence <= WhenceAll || !o.Optimize {
		// if the image has an alpha channel, strip it off and save it
		// until it is recombined with the colorized output; the cuts
		// leveling and color mapping then see color channels only
		if ai := imageOrder.Index('A'); ai < 0 {
			cache.alpha = nil
		} else {
			// normalize the alpha plane to the mapper's output range
			maxc := float64(rgbmap.MaxC())
			plane := cache.cutout.Channel(ai)
			for i, s := range plane {
				plane[i] = uint8(math.Round(float64(s) / 255 * maxc))
			}
			cache.alpha = plane
			cache.cutout = cache.cutout.DropChannel(ai)
		}
	}

	if whence <= WhenceCuts || cache.prergb == nil || !o.Optimize {
		// apply visual changes prior to color mapping (cut levels)
		vmax := rgbmap.HashSize() - 1
		cache.prergb = o.applyVisuals(v, cache.cutout, 0, vmax)
	}
	t3 := time.Now()

	dstOrder := v.RGBOrder()

	if whence <= WhenceColorMap || cache.rgbarr == nil || !o.Optimize {
		cache.rgbarr = rgbmap.RGBArray(cache.prergb, dstOrder, imageOrder)

		if cache.alpha != nil {
			if ai := dstOrder.Index('A'); ai >= 0 {
				// stored alpha wins over whatever the table produced
				ch := dstOrder.Channels()
				data := cache.rgbarr.Data()
				for j, a := range cache.alpha {
					data[j*ch+ai] = a
				}
			}
		}
	}
	t4 := time.Now()

	overlayImage(dst, cache.pos, cache.rgbarr, o.Alpha, true)

	Logger().Debug("draw",
		"kind", o.kind,
		"cutout", t2.Sub(t1),
		"visuals", t3.Sub(t2),
		"colormap", t4.Sub(t3),
		"overlay", time.Since(t4),
		"total", time.Since(t1))
}

// applyVisuals runs the configured auto-cuts policy over the cutout,
// mapping values through the cut levels into [vmin, vmax].
func (o *NormImageObject) applyVisuals(v Viewer, data *Pixmap, vmin, vmax int) *IndexArray {
	autocuts := o.AutoCuts
	if autocuts == nil {
		autocuts = v.AutoCuts()
	}

	var lo, hi float64
	if o.Cuts != nil {
		lo, hi = o.Cuts.Lo, o.Cuts.Hi
	} else {
		lo, hi = v.CutLevels()
	}
	return autocuts.CutLevels(data, lo, hi, vmin, vmax)
}

// SetCuts sets explicit cut levels (nil restores the viewer fallback)
// and invalidates the normalization stages.
func (o *NormImageObject) SetCuts(cuts *Cuts) {
	o.Cuts = cuts
	o.ResetOptimize()
}

// SetRGBMap sets a dedicated color mapper (nil restores the viewer
// fallback) and invalidates the normalization stages.
func (o *NormImageObject) SetRGBMap(m ColorMapper) {
	o.RGBMap = m
	o.ResetOptimize()
}

// SetAutoCuts sets a dedicated auto-cuts policy (nil restores the
// viewer fallback) and invalidates the normalization stages.
func (o *NormImageObject) SetAutoCuts(a AutoCuts) {
	o.AutoCuts = a
	o.ResetOptimize()
}
