package xwayland

import (
	"github.com/bnema/wlcinput/input"
	"github.com/bnema/wlcinput/internal/keysym"
)

// X keycodes are evdev keycodes shifted by 8.
const evdevOffset = 8

// keyboardMap is the core protocol keyboard mapping: for every keycode in
// [minKeycode, maxKeycode] a row of perKeycode keysyms.
//
// https://tronche.com/gui/x/xlib/input/keyboard-encoding.html
type keyboardMap struct {
	minKeycode int
	maxKeycode int
	perKeycode int
	syms       []uint32

	// Modifier bits bound to Num_Lock and to the AltGr keysyms. Zero
	// means the libwlc defaults, mod2 and mod5.
	numLock input.Modifiers
	altGr   input.Modifiers
}

// row returns the keysyms of an evdev keycode, nil when out of range.
func (km *keyboardMap) row(key uint32) []uint32 {
	if km == nil || km.perKeycode <= 0 || key > 0xff-evdevOffset {
		return nil
	}
	kc := int(key) + evdevOffset
	if kc < km.minKeycode || kc > km.maxKeycode {
		return nil
	}
	start := (kc - km.minKeycode) * km.perKeycode
	end := start + km.perKeycode
	if end > len(km.syms) {
		return nil
	}
	return km.syms[start:end]
}

// lookup resolves an evdev keycode under mods.
func (km *keyboardMap) lookup(key uint32, mods input.KeyModifiers) uint32 {
	if km == nil {
		return keysym.NoSymbol
	}
	return selectKeysym(km.row(key), mods, km.numLockMod(), km.altGrMod())
}

func (km *keyboardMap) numLockMod() input.Modifiers {
	if km.numLock == 0 {
		return input.ModNumLock
	}
	return km.numLock
}

func (km *keyboardMap) altGrMod() input.Modifiers {
	if km.altGr == 0 {
		return input.ModAltGr
	}
	return km.altGr
}

// bindModifiers finds the modifier bits holding Num_Lock and AltGr from a
// GetModifierMapping reply: eight groups of perModifier X keycodes, one per
// modifier bit from shift to mod5.
func (km *keyboardMap) bindModifiers(keycodes []byte, perModifier int) {
	km.numLock, km.altGr = 0, 0
	if perModifier <= 0 {
		return
	}
	for bit := 0; bit < 8 && (bit+1)*perModifier <= len(keycodes); bit++ {
		mod := input.Modifiers(1 << bit)
		for _, kc := range keycodes[bit*perModifier : (bit+1)*perModifier] {
			if int(kc) < evdevOffset {
				continue
			}
			for _, ks := range km.row(uint32(kc) - evdevOffset) {
				switch ks {
				case keysym.NumLock:
					km.numLock = km.numLock.Union(mod)
				case keysym.ISOLevel3Shift, keysym.ModeSwitch:
					km.altGr = km.altGr.Union(mod)
				}
			}
		}
	}
}

// selectKeysym picks a keysym out of a keycode row. Each group has two
// columns; AltGr selects the third group, which xkb fills in when it
// exports its keymap through the core protocol.
func selectKeysym(row []uint32, mods input.KeyModifiers, numLockMod, altGrMod input.Modifiers) uint32 {
	hasShift := mods.Mods.Contains(input.ModShift)
	hasCaps := mods.Mods.Contains(input.ModCaps) || mods.Leds.Contains(input.LedCapsLock)
	hasNumLock := mods.Mods.Contains(numLockMod) || mods.Leds.Contains(input.LedNumLock)
	hasAltGr := mods.Mods.Contains(altGrMod)

	group := 0
	if hasAltGr {
		group = 2
	}

	i1 := group * 2
	i2 := i1 + 1
	if i1 >= len(row) || (group > 0 && row[i1] == keysym.NoSymbol) {
		// Fall back to the first group like Xlib does
		i1, i2 = 0, 1
	}
	if i1 >= len(row) {
		return keysym.NoSymbol
	}
	if i2 >= len(row) {
		i2 = i1
	}

	ks1, ks2 := row[i1], row[i2]
	if ks2 == keysym.NoSymbol {
		ks2 = keysym.ToUpper(ks1)
	}

	if hasNumLock && keysym.IsKeypad(ks2) {
		if hasShift {
			return ks1
		}
		return ks2
	}

	if keysym.IsLetter(ks1) {
		if hasShift != hasCaps {
			return ks2
		}
		return ks1
	}

	if hasShift {
		return ks2
	}
	return ks1
}

// keycodesFromBitmap appends the evdev keycodes set in a QueryKeymap bitmap
// to buf[:0].
func keycodesFromBitmap(bitmap []byte, buf []uint32) []uint32 {
	buf = buf[:0]
	for i, b := range bitmap {
		if b == 0 {
			continue
		}
		for bit := 0; bit < 8; bit++ {
			if b&(1<<bit) == 0 {
				continue
			}
			kc := i*8 + bit
			if kc < evdevOffset {
				continue
			}
			buf = append(buf, uint32(kc-evdevOffset))
		}
	}
	return buf
}
