//go:build cgo && wlc

package wlc

/*
#cgo pkg-config: wlc
#include <stdlib.h>
#include <wlc/wlc.h>
*/
import "C"
import (
	"unsafe"

	"github.com/bnema/wlcinput/input"
)

// Available reports whether libwlc was linked in.
const Available = true

// Subsystem calls straight into libwlc. It must only be used from the
// compositor thread, inside callbacks where libwlc permits input calls.
type Subsystem struct{}

// New returns the libwlc subsystem. It fails with ErrNotRunning until
// wlc_init has set up a backend in this process.
func New() (*Subsystem, error) {
	if C.wlc_get_backend_type() == C.WLC_BACKEND_NONE {
		return nil, ErrNotRunning
	}
	return &Subsystem{}, nil
}

// Name identifies the backend in logs and status output.
func (s *Subsystem) Name() string {
	return "wlc"
}

// Close is a no-op, libwlc owns its state.
func (s *Subsystem) Close() error {
	return nil
}

// CurrentKeys returns a view on libwlc's key array. The array belongs to
// libwlc and may be reused on the next event; input.Keyboard copies it
// before returning.
func (s *Subsystem) CurrentKeys() ([]uint32, int) {
	var count C.size_t
	keys := C.wlc_keyboard_get_current_keys(&count)
	n := int(count)
	if n == 0 || keys == nil {
		return nil, 0
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(keys)), n), n
}

func (s *Subsystem) KeysymForKey(key uint32, mods *input.KeyModifiers) uint32 {
	cmods := toCModifiers(mods)
	return uint32(C.wlc_keyboard_get_keysym_for_key(C.uint32_t(key), &cmods))
}

func (s *Subsystem) UTF32ForKey(key uint32, mods *input.KeyModifiers) uint32 {
	cmods := toCModifiers(mods)
	return uint32(C.wlc_keyboard_get_utf32_for_key(C.uint32_t(key), &cmods))
}

func (s *Subsystem) PointerPosition(out *input.Point) {
	var pos C.struct_wlc_point
	C.wlc_pointer_get_position(&pos)
	out.X = int32(pos.x)
	out.Y = int32(pos.y)
}

func (s *Subsystem) SetPointerPosition(p *input.Point) {
	pos := C.struct_wlc_point{x: C.int32_t(p.X), y: C.int32_t(p.Y)}
	C.wlc_pointer_set_position(&pos)
}

// toCModifiers converts mods to a struct wlc_modifiers.
func toCModifiers(mods *input.KeyModifiers) C.struct_wlc_modifiers {
	if mods == nil {
		return C.struct_wlc_modifiers{}
	}
	return C.struct_wlc_modifiers{
		leds: C.uint32_t(mods.Leds),
		mods: C.uint32_t(mods.Mods),
	}
}
