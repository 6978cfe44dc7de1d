// Package sim implements an in-memory windowing subsystem with a US keymap.
// It stands in for libwlc in tests and when no display server is reachable.
package sim

import (
	"slices"

	"github.com/bnema/wlcinput/input"
	"github.com/bnema/wlcinput/internal/keysym"
	"github.com/bnema/wlcinput/internal/logger"
)

// Subsystem keeps a cursor position and a set of held keys. Like libwlc it
// hands out its internal key buffer, which changes on the next Press or
// Release.
type Subsystem struct {
	pos     input.Point
	pressed []uint32
}

// New creates a simulated subsystem with the cursor at the origin and no
// keys held.
func New() *Subsystem {
	return &Subsystem{}
}

// Name identifies the backend in logs and status output.
func (s *Subsystem) Name() string {
	return "sim"
}

// Close is a no-op.
func (s *Subsystem) Close() error {
	return nil
}

// Press marks key as held. Pressing a held key again is ignored.
func (s *Subsystem) Press(key uint32) {
	if slices.Contains(s.pressed, key) {
		return
	}
	s.pressed = append(s.pressed, key)
	logger.Debugf("sim: key %d pressed (%d held)", key, len(s.pressed))
}

// Release marks key as no longer held.
func (s *Subsystem) Release(key uint32) {
	i := slices.Index(s.pressed, key)
	if i < 0 {
		return
	}
	// Shift in place so the buffer handed out earlier is overwritten
	copy(s.pressed[i:], s.pressed[i+1:])
	s.pressed[len(s.pressed)-1] = 0
	s.pressed = s.pressed[:len(s.pressed)-1]
	logger.Debugf("sim: key %d released (%d held)", key, len(s.pressed))
}

func (s *Subsystem) CurrentKeys() ([]uint32, int) {
	return s.pressed, len(s.pressed)
}

func (s *Subsystem) KeysymForKey(key uint32, mods *input.KeyModifiers) uint32 {
	return lookup(key, *mods)
}

func (s *Subsystem) UTF32ForKey(key uint32, mods *input.KeyModifiers) uint32 {
	return keysym.ToUTF32(lookup(key, *mods))
}

func (s *Subsystem) PointerPosition(out *input.Point) {
	*out = s.pos
}

func (s *Subsystem) SetPointerPosition(p *input.Point) {
	s.pos = *p
}
