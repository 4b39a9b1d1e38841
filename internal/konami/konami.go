// Package konami detects the classic key sequence on a stream of key codes.
package konami

// sequence is the classic code: up up down down left right left right B A.
var sequence = []string{
	"ArrowUp", "ArrowUp", "ArrowDown", "ArrowDown",
	"ArrowLeft", "ArrowRight", "ArrowLeft", "ArrowRight",
	"KeyB", "KeyA",
}

// Detector consumes key codes one at a time and fires when the last ten
// match the sequence. The window is bounded; anything older is forgotten.
type Detector struct {
	window []string
}

func NewDetector() *Detector {
	return &Detector{window: make([]string, 0, len(sequence))}
}

// Press records a key code and reports whether the sequence just completed.
// On a match the window clears, so holding A does not re-trigger.
func (d *Detector) Press(code string) bool {
	d.window = append(d.window, code)
	if len(d.window) > len(sequence) {
		d.window = d.window[1:]
	}
	if len(d.window) < len(sequence) {
		return false
	}
	for i, want := range sequence {
		if d.window[i] != want {
			return false
		}
	}
	d.window = d.window[:0]
	return true
}

// Reset clears the rolling window.
func (d *Detector) Reset() {
	d.window = d.window[:0]
}
