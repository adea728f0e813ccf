package pixel

import "errors"

var (
	// ErrLayoutMismatch reports backing storage whose length disagrees with
	// width*height*channels, or a buffer whose layout a caller cannot accept.
	ErrLayoutMismatch = errors.New("pixel: data length does not match layout")

	// ErrPlaneIndexOutOfRange reports a channel index at or past the
	// buffer's channel count.
	ErrPlaneIndexOutOfRange = errors.New("pixel: plane index out of range")

	// ErrPlaneSizeMismatch reports a plane whose geometry differs from the
	// buffer it is written into.
	ErrPlaneSizeMismatch = errors.New("pixel: plane size mismatch")
)
