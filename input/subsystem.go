// Package input exposes pointer and keyboard state of a libwlc based
// compositor as safe, owned Go values.
//
// The services are meant to be called from the compositor's main loop, inside
// the callbacks where libwlc allows input calls. They hold no locks; see
// Serialized for callers that cross goroutines.
package input

import "sync"

// Point is an absolute position in the global compositor space.
type Point struct {
	X int32
	Y int32
}

// Subsystem is the windowing subsystem owning the real pointer and keyboard
// state. Each method mirrors one libwlc entry point.
type Subsystem interface {
	// CurrentKeys returns a view on the held keycodes and the reported count.
	// The view is only valid until the call returns and may be longer than n.
	CurrentKeys() (keys []uint32, n int)

	// KeysymForKey translates a keycode, returning 0 for no symbol.
	KeysymForKey(key uint32, mods *KeyModifiers) uint32

	// UTF32ForKey translates a keycode to a code point, returning 0 for none.
	UTF32ForKey(key uint32, mods *KeyModifiers) uint32

	// PointerPosition writes the current cursor position to out.
	PointerPosition(out *Point)

	// SetPointerPosition moves the cursor.
	SetPointerPosition(p *Point)
}

// serializedSubsystem guards every call with one mutex. The key view is
// copied before the lock is released.
type serializedSubsystem struct {
	mu  sync.Mutex
	sub Subsystem
}

// Serialized wraps sub so it can be shared between goroutines.
func Serialized(sub Subsystem) Subsystem {
	if s, ok := sub.(*serializedSubsystem); ok {
		return s
	}
	return &serializedSubsystem{sub: sub}
}

func (s *serializedSubsystem) CurrentKeys() ([]uint32, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := copyKeys(s.sub.CurrentKeys())
	return keys, len(keys)
}

func (s *serializedSubsystem) KeysymForKey(key uint32, mods *KeyModifiers) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sub.KeysymForKey(key, mods)
}

func (s *serializedSubsystem) UTF32ForKey(key uint32, mods *KeyModifiers) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sub.UTF32ForKey(key, mods)
}

func (s *serializedSubsystem) PointerPosition(out *Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sub.PointerPosition(out)
}

func (s *serializedSubsystem) SetPointerPosition(p *Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sub.SetPointerPosition(p)
}
