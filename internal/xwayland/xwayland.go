// Package xwayland implements the windowing subsystem on top of an X11
// server, typically the compositor's XWayland instance.
package xwayland

import (
	"fmt"
	"math"

	"github.com/bnema/wlcinput/input"
	"github.com/bnema/wlcinput/internal/keysym"
	"github.com/bnema/wlcinput/internal/logger"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Subsystem talks to the X server over the core protocol. Keycodes in and
// out are evdev keycodes, like libwlc's.
type Subsystem struct {
	conn *xgb.Conn
	root xproto.Window
	km   *keyboardMap
	keys []uint32
}

// New connects to display, or $DISPLAY when empty, and reads the keyboard
// mapping.
func New(display string) (*Subsystem, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X display %q: %w", display, err)
	}

	s := &Subsystem{
		conn: conn,
		root: xproto.Setup(conn).DefaultScreen(conn).Root,
		keys: make([]uint32, 0, 16),
	}
	if err := s.ReadMapping(); err != nil {
		conn.Close()
		return nil, err
	}

	logger.Debugf("xwayland: connected, keycodes %d-%d, %d keysyms per keycode",
		s.km.minKeycode, s.km.maxKeycode, s.km.perKeycode)
	return s, nil
}

// ReadMapping reloads the keyboard mapping, e.g. after a MappingNotify.
func (s *Subsystem) ReadMapping() error {
	si := xproto.Setup(s.conn)
	count := int(si.MaxKeycode) - int(si.MinKeycode) + 1
	if count <= 0 {
		return fmt.Errorf("bad keycode range %d-%d", si.MinKeycode, si.MaxKeycode)
	}

	reply, err := xproto.GetKeyboardMapping(s.conn, si.MinKeycode, byte(count)).Reply()
	if err != nil {
		return fmt.Errorf("failed to get keyboard mapping: %w", err)
	}
	if reply.KeysymsPerKeycode < 1 {
		return fmt.Errorf("keyboard mapping has no keysyms")
	}

	syms := make([]uint32, len(reply.Keysyms))
	for i, ks := range reply.Keysyms {
		syms[i] = uint32(ks)
	}
	km := &keyboardMap{
		minKeycode: int(si.MinKeycode),
		maxKeycode: int(si.MaxKeycode),
		perKeycode: int(reply.KeysymsPerKeycode),
		syms:       syms,
	}

	modReply, err := xproto.GetModifierMapping(s.conn).Reply()
	if err != nil {
		logger.Debugf("xwayland: GetModifierMapping failed, assuming mod2/mod5: %v", err)
	} else {
		keycodes := make([]byte, len(modReply.Keycodes))
		for i, kc := range modReply.Keycodes {
			keycodes[i] = byte(kc)
		}
		km.bindModifiers(keycodes, int(modReply.KeycodesPerModifier))
	}

	s.km = km
	logger.Debugf("xwayland: num lock on %s, altgr on %s", km.numLockMod(), km.altGrMod())
	return nil
}

// Name identifies the backend in logs and status output.
func (s *Subsystem) Name() string {
	return "xwayland"
}

// Close closes the X connection.
func (s *Subsystem) Close() error {
	s.conn.Close()
	return nil
}

// CurrentKeys decodes QueryKeymap into a buffer reused across calls.
func (s *Subsystem) CurrentKeys() ([]uint32, int) {
	reply, err := xproto.QueryKeymap(s.conn).Reply()
	if err != nil {
		logger.Debugf("xwayland: QueryKeymap failed: %v", err)
		return nil, 0
	}
	s.keys = keycodesFromBitmap(reply.Keys, s.keys)
	return s.keys, len(s.keys)
}

func (s *Subsystem) KeysymForKey(key uint32, mods *input.KeyModifiers) uint32 {
	return s.km.lookup(key, *mods)
}

func (s *Subsystem) UTF32ForKey(key uint32, mods *input.KeyModifiers) uint32 {
	return keysym.ToUTF32(s.km.lookup(key, *mods))
}

func (s *Subsystem) PointerPosition(out *input.Point) {
	reply, err := xproto.QueryPointer(s.conn, s.root).Reply()
	if err != nil {
		logger.Debugf("xwayland: QueryPointer failed: %v", err)
		return
	}
	out.X = int32(reply.RootX)
	out.Y = int32(reply.RootY)
}

func (s *Subsystem) SetPointerPosition(p *input.Point) {
	x, y := clampInt16(p.X), clampInt16(p.Y)
	err := xproto.WarpPointerChecked(s.conn, xproto.WindowNone, s.root, 0, 0, 0, 0, x, y).Check()
	if err != nil {
		logger.Debugf("xwayland: WarpPointer to %d,%d failed: %v", x, y, err)
	}
}

// clampInt16 fits a coordinate into the X protocol's INT16.
func clampInt16(v int32) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
