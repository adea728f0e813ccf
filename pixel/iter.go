package pixel

import "iter"

// Iter is the default read view: the buffer's pixels in row-major order with
// the alpha channel, when present, hidden. The yielded slices alias the
// backing store; callers that intend to write through them should use
// IterMut instead.
func (b *Buffer[T]) Iter() iter.Seq[[]T] { return b.view(true) }

// IterMut is the default mutating view. It skips alpha when present, so the
// stored alpha values cannot be disturbed through it. The caller must have
// exclusive access to the buffer for the duration of the walk.
func (b *Buffer[T]) IterMut() iter.Seq[[]T] { return b.view(true) }

// IterNoAlpha yields each pixel truncated to its non-alpha channels. On a
// buffer without alpha it is identical to IterWithAlpha.
func (b *Buffer[T]) IterNoAlpha() iter.Seq[[]T] { return b.view(true) }

// IterNoAlphaMut is the mutating form of IterNoAlpha.
func (b *Buffer[T]) IterNoAlphaMut() iter.Seq[[]T] { return b.view(true) }

// IterWithAlpha yields the full component run of every pixel.
func (b *Buffer[T]) IterWithAlpha() iter.Seq[[]T] { return b.view(false) }

// IterWithAlphaMut is the mutating form of IterWithAlpha.
func (b *Buffer[T]) IterWithAlphaMut() iter.Seq[[]T] { return b.view(false) }

// view walks the backing store one pixel stride at a time. The sequence is
// lazy and single pass; nothing is copied. Truncation only narrows what a
// yielded slice can reach, never what is stored: the capped capacity keeps
// the hidden alpha component out of reach even through reslicing.
func (b *Buffer[T]) view(skipAlpha bool) iter.Seq[[]T] {
	stride := b.layout.Channels
	visible := stride
	if skipAlpha && b.layout.HasAlpha {
		visible--
	}
	pix := b.pix
	return func(yield func([]T) bool) {
		for i := 0; i+stride <= len(pix); i += stride {
			if !yield(pix[i : i+visible : i+visible]) {
				return
			}
		}
	}
}
