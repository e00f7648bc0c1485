// Package census measures a generation without touching the engine: live
// population, a content hash, and repeat detection over a short window of
// recent hashes.
package census

import (
	"crypto/md5"
	"encoding/hex"

	"torus-life/pkg/core"
)

// Population returns the number of live cells.
func Population(c core.Cells) (count int) {
	s := c.Size()
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if c.Alive(y, x) {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of the row-major cell states.
func Hash(c core.Cells) string {
	s := c.Size()
	buf := make([]byte, 0, s.W*s.H)
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if c.Alive(y, x) {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		}
	}
	sum := md5.Sum(buf)
	return hex.EncodeToString(sum[:])
}

// DefaultWindow is how many past generations a Tracker remembers.
const DefaultWindow = 16

// Tracker remembers the hashes of the last few generations it was shown.
type Tracker struct {
	window  int
	history []string
}

// NewTracker returns a Tracker that remembers window generations.
func NewTracker(window int) *Tracker {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Tracker{window: window}
}

// Observe records c and reports the period if it repeats a remembered
// generation: 1 for a still life, 2 for a blinker, and so on.
func (t *Tracker) Observe(c core.Cells) (period int, repeated bool) {
	h := Hash(c)
	for i := len(t.history) - 1; i >= 0; i-- {
		if t.history[i] == h {
			period = len(t.history) - i
			repeated = true
			break
		}
	}
	t.history = append(t.history, h)
	if len(t.history) > t.window {
		t.history = t.history[1:]
	}
	return period, repeated
}

// Reset forgets all remembered generations.
func (t *Tracker) Reset() { t.history = t.history[:0] }
