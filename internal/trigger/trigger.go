// Package trigger implements the hidden keystroke sequence that opens the
// review panel login. Visitors type the sequence anywhere on the public page;
// nothing on screen hints that it exists.
package trigger

import "strings"

// Sequence is the keystroke string that unlocks the login prompt.
const Sequence = "/admin-access"

// Detector consumes keystrokes one at a time and reports when the full
// sequence has been typed. It is a simple prefix matcher: a wrong key throws
// the progress away, except that '/' always restarts a fresh attempt.
// Not safe for concurrent use; give each session its own Detector.
type Detector struct {
	buf string
}

// NewDetector returns a Detector with no progress.
func NewDetector() *Detector {
	return &Detector{}
}

// Feed consumes one keystroke and reports whether it completed the sequence.
// On completion the detector resets, so holding it open costs nothing.
func (d *Detector) Feed(key string) bool {
	next := d.buf + key
	switch {
	case next == Sequence:
		d.buf = ""
		return true
	case strings.HasPrefix(Sequence, next):
		d.buf = next
	case key == "/":
		d.buf = "/"
	default:
		d.buf = ""
	}
	return false
}

// Progress returns how many keystrokes of the sequence have matched so far.
func (d *Detector) Progress() int {
	return len(d.buf)
}

// Reset discards any partial match.
func (d *Detector) Reset() {
	d.buf = ""
}
