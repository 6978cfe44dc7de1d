package sim

import (
	"github.com/ThomasT75/uinput"
	"github.com/bnema/wlcinput/input"
	"github.com/bnema/wlcinput/internal/keysym"
)

// levels holds the unshifted and shifted keysym of a key.
type levels struct {
	base  uint32
	shift uint32
}

func same(ks uint32) levels {
	return levels{ks, ks}
}

func pair(base, shift rune) levels {
	return levels{keysym.FromRune(base), keysym.FromRune(shift)}
}

// usKeymap is the pc105 "us" layout over evdev keycodes.
var usKeymap = map[uint32]levels{
	uinput.KeyEsc:       same(keysym.Escape),
	uinput.Key1:         pair('1', '!'),
	uinput.Key2:         pair('2', '@'),
	uinput.Key3:         pair('3', '#'),
	uinput.Key4:         pair('4', '$'),
	uinput.Key5:         pair('5', '%'),
	uinput.Key6:         pair('6', '^'),
	uinput.Key7:         pair('7', '&'),
	uinput.Key8:         pair('8', '*'),
	uinput.Key9:         pair('9', '('),
	uinput.Key0:         pair('0', ')'),
	uinput.KeyMinus:     pair('-', '_'),
	uinput.KeyEqual:     pair('=', '+'),
	uinput.KeyBackspace: same(keysym.BackSpace),
	uinput.KeyTab:       levels{keysym.Tab, keysym.ISOLeftTab},

	uinput.KeyQ:          pair('q', 'Q'),
	uinput.KeyW:          pair('w', 'W'),
	uinput.KeyE:          pair('e', 'E'),
	uinput.KeyR:          pair('r', 'R'),
	uinput.KeyT:          pair('t', 'T'),
	uinput.KeyY:          pair('y', 'Y'),
	uinput.KeyU:          pair('u', 'U'),
	uinput.KeyI:          pair('i', 'I'),
	uinput.KeyO:          pair('o', 'O'),
	uinput.KeyP:          pair('p', 'P'),
	uinput.KeyLeftbrace:  pair('[', '{'),
	uinput.KeyRightbrace: pair(']', '}'),
	uinput.KeyEnter:      same(keysym.Return),
	uinput.KeyLeftctrl:   same(keysym.ControlL),

	uinput.KeyA:          pair('a', 'A'),
	uinput.KeyS:          pair('s', 'S'),
	uinput.KeyD:          pair('d', 'D'),
	uinput.KeyF:          pair('f', 'F'),
	uinput.KeyG:          pair('g', 'G'),
	uinput.KeyH:          pair('h', 'H'),
	uinput.KeyJ:          pair('j', 'J'),
	uinput.KeyK:          pair('k', 'K'),
	uinput.KeyL:          pair('l', 'L'),
	uinput.KeySemicolon:  pair(';', ':'),
	uinput.KeyApostrophe: pair('\'', '"'),
	uinput.KeyGrave:      pair('`', '~'),
	uinput.KeyLeftshift:  same(keysym.ShiftL),
	uinput.KeyBackslash:  pair('\\', '|'),

	uinput.KeyZ:          pair('z', 'Z'),
	uinput.KeyX:          pair('x', 'X'),
	uinput.KeyC:          pair('c', 'C'),
	uinput.KeyV:          pair('v', 'V'),
	uinput.KeyB:          pair('b', 'B'),
	uinput.KeyN:          pair('n', 'N'),
	uinput.KeyM:          pair('m', 'M'),
	uinput.KeyComma:      pair(',', '<'),
	uinput.KeyDot:        pair('.', '>'),
	uinput.KeySlash:      pair('/', '?'),
	uinput.KeyRightshift: same(keysym.ShiftR),
	uinput.KeyLeftalt:    same(keysym.AltL),
	uinput.KeySpace:      same(' '),
	uinput.KeyCapslock:   same(keysym.CapsLock),
	uinput.KeyNumlock:    same(keysym.NumLock),
	uinput.KeyScrolllock: same(keysym.ScrollLock),

	uinput.KeyF1:  same(keysym.F1),
	uinput.KeyF2:  same(keysym.F1 + 1),
	uinput.KeyF3:  same(keysym.F1 + 2),
	uinput.KeyF4:  same(keysym.F1 + 3),
	uinput.KeyF5:  same(keysym.F1 + 4),
	uinput.KeyF6:  same(keysym.F1 + 5),
	uinput.KeyF7:  same(keysym.F1 + 6),
	uinput.KeyF8:  same(keysym.F1 + 7),
	uinput.KeyF9:  same(keysym.F1 + 8),
	uinput.KeyF10: same(keysym.F1 + 9),
	uinput.KeyF11: same(keysym.F1 + 10),
	uinput.KeyF12: same(keysym.F12),

	// Keypad: base is the navigation keysym, shift level the num-lock one
	uinput.KeyKp7:        levels{keysym.KPHome, keysym.KP0 + 7},
	uinput.KeyKp8:        levels{keysym.KPUp, keysym.KP0 + 8},
	uinput.KeyKp9:        levels{keysym.KPPageUp, keysym.KP0 + 9},
	uinput.KeyKp4:        levels{keysym.KPLeft, keysym.KP0 + 4},
	uinput.KeyKp5:        levels{keysym.KPBegin, keysym.KP0 + 5},
	uinput.KeyKp6:        levels{keysym.KPRight, keysym.KP0 + 6},
	uinput.KeyKp1:        levels{keysym.KPEnd, keysym.KP0 + 1},
	uinput.KeyKp2:        levels{keysym.KPDown, keysym.KP0 + 2},
	uinput.KeyKp3:        levels{keysym.KPPageDown, keysym.KP0 + 3},
	uinput.KeyKp0:        levels{keysym.KPInsert, keysym.KP0},
	uinput.KeyKpdot:      levels{keysym.KPDelete, keysym.KPDecimal},
	uinput.KeyKpasterisk: same(keysym.KPMultiply),
	uinput.KeyKpminus:    same(keysym.KPSubtract),
	uinput.KeyKpplus:     same(keysym.KPAdd),
	uinput.KeyKpslash:    same(keysym.KPDivide),
	uinput.KeyKpenter:    same(keysym.KPEnter),

	uinput.KeyRightctrl: same(keysym.ControlR),
	uinput.KeyRightalt:  same(keysym.ISOLevel3Shift),
	uinput.KeyHome:      same(keysym.Home),
	uinput.KeyUp:        same(keysym.Up),
	uinput.KeyPageup:    same(keysym.PageUp),
	uinput.KeyLeft:      same(keysym.Left),
	uinput.KeyRight:     same(keysym.Right),
	uinput.KeyEnd:       same(keysym.End),
	uinput.KeyDown:      same(keysym.Down),
	uinput.KeyPagedown:  same(keysym.PageDown),
	uinput.KeyInsert:    same(keysym.Insert),
	uinput.KeyDelete:    same(keysym.Delete),
	uinput.KeyLeftmeta:  same(keysym.SuperL),
	uinput.KeyRightmeta: same(keysym.SuperR),
}

// lookup picks the keysym for key the way xkbcommon resolves a two level
// key type: letters follow shift xor caps lock, keypad keys follow num lock
// unless shift is held, everything else follows shift.
func lookup(key uint32, mods input.KeyModifiers) uint32 {
	lv, ok := usKeymap[key]
	if !ok {
		return keysym.NoSymbol
	}

	shift := mods.Mods.Contains(input.ModShift)
	caps := mods.Mods.Contains(input.ModCaps) || mods.Leds.Contains(input.LedCapsLock)
	numLock := mods.Mods.Contains(input.ModNumLock) || mods.Leds.Contains(input.LedNumLock)

	switch {
	case keysym.IsKeypad(lv.shift) && lv.base != lv.shift:
		if numLock != shift {
			return lv.shift
		}
		return lv.base
	case keysym.IsLetter(lv.base):
		if shift != caps {
			return lv.shift
		}
		return lv.base
	case shift:
		return lv.shift
	}
	return lv.base
}
