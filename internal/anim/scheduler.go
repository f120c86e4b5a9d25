package anim

import (
	"fmt"
	"strings"
)

// Scheduler invokes a callback once at the next frame.
type Scheduler interface {
	RequestFrame(fn func())
}

// Mode selects how frames are paced by a host.
type Mode int

const (
	// ModeRefresh paces frames with the display refresh.
	ModeRefresh Mode = iota
	// ModeFixedDelay paces frames with a fixed timer delay.
	ModeFixedDelay
)

func (m Mode) String() string {
	switch m {
	case ModeRefresh:
		return "refresh"
	case ModeFixedDelay:
		return "fixed"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "refresh":
		return ModeRefresh, nil
	case "fixed":
		return ModeFixedDelay, nil
	}
	return 0, fmt.Errorf("unknown scheduling mode %q", s)
}

// Set implements flag.Value.
func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Queue is a Scheduler holding at most one pending callback.
// Hosts call Step once per frame. A later request replaces an earlier one.
type Queue struct {
	next func()
}

var _ Scheduler = (*Queue)(nil)

func (q *Queue) RequestFrame(fn func()) {
	q.next = fn
}

// Pending reports whether a callback is waiting.
func (q *Queue) Pending() bool {
	return q.next != nil
}

// Step runs the pending callback, if any, and reports whether one ran.
func (q *Queue) Step() bool {
	fn := q.next
	if fn == nil {
		return false
	}
	q.next = nil
	fn()
	return true
}
