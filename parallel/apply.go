package parallel

import (
	"sync"

	"github.com/jnickg/better-images/pixel"
)

// Apply rewrites every pixel of b in place, fanning one row at a time out to
// the pool. fn sees the full tuple, alpha included, exactly as with the
// serial Apply, and must treat pixels independently. Apply returns once
// every row has been processed; the pool stays open for reuse.
func Apply[T pixel.Component](p *Pool, b *pixel.Buffer[T], fn func(pel []T)) {
	pix := b.Pix()
	n := b.Channels()
	rowLen := b.Width() * n

	var wg sync.WaitGroup
	for y := 0; y < b.Height(); y++ {
		row := pix[y*rowLen : (y+1)*rowLen]
		wg.Add(1)
		p.Do(func() {
			defer wg.Done()
			for i := 0; i+n <= len(row); i += n {
				fn(row[i : i+n : i+n])
			}
		})
	}
	wg.Wait()
}

// Map is the allocating variant of Apply: it builds a new buffer of the same
// layout whose pixel i is fn's rewrite of b's pixel i. Observationally
// identical to the serial Map for any worker count.
func Map[T pixel.Component](p *Pool, b *pixel.Buffer[T], fn func(dst, src []T)) *pixel.Buffer[T] {
	out := pixel.Empty[T](b.Layout(), b.Width(), b.Height())
	src, dst := b.Pix(), out.Pix()
	n := b.Channels()
	rowLen := b.Width() * n

	var wg sync.WaitGroup
	for y := 0; y < b.Height(); y++ {
		srcRow := src[y*rowLen : (y+1)*rowLen]
		dstRow := dst[y*rowLen : (y+1)*rowLen]
		wg.Add(1)
		p.Do(func() {
			defer wg.Done()
			for i := 0; i+n <= len(srcRow); i += n {
				fn(dstRow[i:i+n:i+n], srcRow[i:i+n:i+n])
			}
		})
	}
	wg.Wait()
	return out
}
