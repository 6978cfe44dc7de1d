package input

import "slices"

// KeySnapshot is an owned copy of the keycodes held at query time. It does
// not follow later keyboard changes.
type KeySnapshot []uint32

// Len returns the number of held keys.
func (s KeySnapshot) Len() int {
	return len(s)
}

// Contains reports whether key was held.
func (s KeySnapshot) Contains(key uint32) bool {
	return slices.Contains(s, key)
}

// Keyboard queries held keys and translates keycodes through the keymap
// loaded by the compositor.
type Keyboard struct {
	sub Subsystem
}

// NewKeyboard creates a keyboard service on top of sub.
func NewKeyboard(sub Subsystem) *Keyboard {
	return &Keyboard{sub: sub}
}

// CurrentKeys returns the keycodes currently held down. The result is never
// nil; an empty snapshot means no key is pressed.
func (k *Keyboard) CurrentKeys() KeySnapshot {
	return KeySnapshot(copyKeys(k.sub.CurrentKeys()))
}

// copyKeys copies exactly n reported keys out of a subsystem owned view.
// A negative count or a view shorter than n is clamped rather than read past.
func copyKeys(view []uint32, n int) []uint32 {
	if n <= 0 {
		return []uint32{}
	}
	if n > len(view) {
		n = len(view)
	}
	out := make([]uint32, n)
	copy(out, view[:n])
	return out
}

// KeysymForKey translates key under mods. Unknown keys give KeyNoSymbol.
// Undefined modifier and led bits are dropped before the subsystem sees them.
func (k *Keyboard) KeysymForKey(key uint32, mods KeyModifiers) Keysym {
	mods = NewKeyModifiers(mods.Mods, mods.Leds)
	return keysymFromCode(k.sub.KeysymForKey(key, &mods))
}

// UTF32ForKey returns the code point key produces under mods, or 0 when the
// combination has no text, as for modifiers and function keys.
func (k *Keyboard) UTF32ForKey(key uint32, mods KeyModifiers) uint32 {
	mods = NewKeyModifiers(mods.Mods, mods.Leds)
	return k.sub.UTF32ForKey(key, &mods)
}

// RuneForKey is UTF32ForKey as a rune. ok is false when there is no text
// or the code point is not valid Unicode.
func (k *Keyboard) RuneForKey(key uint32, mods KeyModifiers) (r rune, ok bool) {
	cp := k.UTF32ForKey(key, mods)
	if cp == 0 || cp > 0x10ffff || (cp >= 0xd800 && cp <= 0xdfff) {
		return 0, false
	}
	return rune(cp), true
}
