// Package carousel rotates through a fixed number of slides.
package carousel

// Rotator tracks the current slide of a carousel with n slides.
type Rotator struct {
	n int
	i int
}

// New returns a rotator over n slides starting at the first.
func New(n int) *Rotator {
	if n < 0 {
		n = 0
	}
	return &Rotator{n: n}
}

// Len returns the slide count.
func (r *Rotator) Len() int { return r.n }

// Index returns the current slide.
func (r *Rotator) Index() int { return r.i }

// Next advances one slide, wrapping to the first.
func (r *Rotator) Next() int {
	r.i = r.At(r.i + 1)
	return r.i
}

// Prev steps back one slide, wrapping to the last.
func (r *Rotator) Prev() int {
	r.i = r.At(r.i - 1)
	return r.i
}

// Seek moves to slide i, normalized.
func (r *Rotator) Seek(i int) int {
	r.i = r.At(i)
	return r.i
}

// At normalizes any integer into [0, Len). It returns 0 when there are no slides.
func (r *Rotator) At(i int) int {
	if r.n == 0 {
		return 0
	}
	return ((i % r.n) + r.n) % r.n
}

// Neighbors returns the previous and next indexes of slide i.
func (r *Rotator) Neighbors(i int) (prev, next int) {
	return r.At(i - 1), r.At(i + 1)
}
