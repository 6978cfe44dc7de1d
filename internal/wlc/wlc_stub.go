//go:build !cgo || !wlc

package wlc

import "github.com/bnema/wlcinput/input"

// Available reports whether libwlc was linked in.
const Available = false

// Subsystem stub for builds without libwlc
type Subsystem struct{}

func New() (*Subsystem, error) {
	return nil, ErrUnavailable
}

func (s *Subsystem) Name() string { return "wlc" }

func (s *Subsystem) Close() error { return nil }

func (s *Subsystem) CurrentKeys() ([]uint32, int) { return nil, 0 }

func (s *Subsystem) KeysymForKey(key uint32, mods *input.KeyModifiers) uint32 { return 0 }

func (s *Subsystem) UTF32ForKey(key uint32, mods *input.KeyModifiers) uint32 { return 0 }

func (s *Subsystem) PointerPosition(out *input.Point) {}

func (s *Subsystem) SetPointerPosition(p *input.Point) {}
