package ginga

import "errors"

// Sentinel errors for caller contract violations.
var (
	// ErrImageRotate is returned by Rotate on image objects: image
	// content has no defined rotated-cutout semantics.
	ErrImageRotate = errors.New("ginga: images cannot be rotated")

	// ErrEditPoint is returned for an edit point index outside the
	// documented set.
	ErrEditPoint = errors.New("ginga: no edit point for index")
)
