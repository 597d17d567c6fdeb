// internal/component/trail.go
package component

import "go-missile-defense/internal/geom"

// Trail is a fixed-capacity ring buffer of recent positions, newest last.
// When full, pushing drops the oldest position.
type Trail struct {
	buf   []geom.Vec
	start int
	size  int
}

// NewTrail creates a trail that remembers up to capacity positions.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{buf: make([]geom.Vec, capacity)}
}

// Push appends a position, evicting the oldest one if the buffer is full.
func (t *Trail) Push(p geom.Vec) {
	if t.size < len(t.buf) {
		t.buf[(t.start+t.size)%len(t.buf)] = p
		t.size++
		return
	}
	t.buf[t.start] = p
	t.start = (t.start + 1) % len(t.buf)
}

// Len returns the number of stored positions.
func (t *Trail) Len() int {
	return t.size
}

// Positions returns the stored positions ordered oldest to newest.
// The returned slice is a copy and safe to hand to the renderer.
func (t *Trail) Positions() []geom.Vec {
	out := make([]geom.Vec, t.size)
	for i := 0; i < t.size; i++ {
		out[i] = t.buf[(t.start+i)%len(t.buf)]
	}
	return out
}
