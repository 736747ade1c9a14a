package ginga

import (
	"image"
	"math"
)

// mergeClip intersects a source rectangle (a1, b1)-(a2, b2), destined
// for anchor (dstX, dstY), against the visible box (x1, y1)-(x2, y2).
// It trims off the parts of the source that would land left of, above,
// right of or below the box and shifts the anchor accordingly. All
// coordinates are in data space.
//
// The returned extents may be zero or negative: that is the normal
// "completely off screen" result, not an error.
func mergeClip(x1, y1, x2, y2, dstX, dstY, a1, b1, a2, b2 float64) (float64, float64, float64, float64, float64, float64) {
	srcWd, srcHt := a2-a1, b2-b1

	// hidden above the top edge
	if ex := y1 - dstY; ex > 0 {
		srcHt -= ex
		dstY += ex
		b1 += ex
	}
	// hidden left of the left edge
	if ex := x1 - dstX; ex > 0 {
		srcWd -= ex
		dstX += ex
		a1 += ex
	}
	// hidden below the bottom edge
	if ex := (dstY + srcHt) - y2; ex > 0 {
		srcHt -= ex
		b2 -= ex
	}
	// hidden right of the right edge
	if ex := (dstX + srcWd) - x2; ex > 0 {
		srcWd -= ex
		a2 -= ex
	}

	return dstX, dstY, a1, b1, a2, b2
}

// overlayImage alpha-blends src into dst with its top-left corner at
// pos, clipping to the destination bounds. Channels are matched by
// letter between the two orders, so src and dst may use different
// layouts.
//
// alpha is a uniform blend weight in [0, 1]; if src carries an alpha
// channel the per-pixel value multiplies it. With fill set, destination
// pixels inside the blended footprint get an opaque alpha; destination
// pixels outside the footprint are never touched either way.
func overlayImage(dst *Pixmap, pos image.Point, src *Pixmap, alpha float64, fill bool) {
	srcX0, srcY0 := 0, 0
	dstX, dstY := pos.X, pos.Y
	wd, ht := src.Width(), src.Height()

	// clip to destination bounds
	if dstX < 0 {
		srcX0 -= dstX
		wd += dstX
		dstX = 0
	}
	if dstY < 0 {
		srcY0 -= dstY
		ht += dstY
		dstY = 0
	}
	if dstX+wd > dst.Width() {
		wd = dst.Width() - dstX
	}
	if dstY+ht > dst.Height() {
		ht = dst.Height() - dstY
	}
	if wd <= 0 || ht <= 0 {
		return
	}

	srcOrder, dstOrder := src.Order(), dst.Order()
	sai := srcOrder.Index('A')
	dai := dstOrder.Index('A')

	// source channel index feeding each destination channel
	srcIdx := make([]int, len(dstOrder))
	for i := 0; i < len(dstOrder); i++ {
		srcIdx[i] = srcOrder.Index(dstOrder[i])
		if srcIdx[i] < 0 && dstOrder[i] != 'A' {
			// mono source feeds every color channel
			srcIdx[i] = srcOrder.Index('M')
		}
	}

	for y := 0; y < ht; y++ {
		for x := 0; x < wd; x++ {
			sp := src.Pix(srcX0+x, srcY0+y)
			dp := dst.Pix(dstX+x, dstY+y)

			a := alpha
			if sai >= 0 {
				a *= float64(sp[sai]) / 255
			}

			for i := 0; i < len(dstOrder); i++ {
				if i == dai {
					continue
				}
				si := srcIdx[i]
				if si < 0 {
					continue
				}
				v := a*float64(sp[si]) + (1-a)*float64(dp[i])
				dp[i] = uint8(math.Round(clamp255(v)))
			}

			if dai >= 0 {
				if fill {
					dp[dai] = 255
				} else if sai >= 0 {
					v := a*255 + (1-a)*float64(dp[dai])
					dp[dai] = uint8(math.Round(clamp255(v)))
				}
			}
		}
	}
}
