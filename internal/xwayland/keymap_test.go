package xwayland

import (
	"math"
	"testing"

	"github.com/bnema/wlcinput/input"
	"github.com/bnema/wlcinput/internal/keysym"
	"github.com/stretchr/testify/assert"
)

// testMap mimics what XWayland exports for a "us" layout with AltGr symbols
// on the "e" key, 7 keysyms per keycode.
func testMap() *keyboardMap {
	const per = 7
	km := &keyboardMap{minKeycode: 8, maxKeycode: 255, perKeycode: per}
	km.syms = make([]uint32, (km.maxKeycode-km.minKeycode+1)*per)
	set := func(evdev int, syms ...uint32) {
		start := (evdev + evdevOffset - km.minKeycode) * per
		copy(km.syms[start:start+per], syms)
	}
	set(30, 'a', 'A')                                 // KEY_A
	set(18, 'e', 'E', 'e', 'E', keysym.EuroSign, 'E') // KEY_E with AltGr
	set(3, '2', '@')                                  // KEY_2
	set(16, 'q')                                      // KEY_Q, no explicit upper case
	set(42, keysym.ShiftL)                            // KEY_LEFTSHIFT
	set(29, keysym.ControlL)                          // KEY_LEFTCTRL
	set(71, keysym.KPHome, keysym.KP0+7)              // KEY_KP7
	set(28, keysym.Return)                            // KEY_ENTER
	set(100, keysym.ISOLevel3Shift)                   // KEY_RIGHTALT
	set(69, keysym.NumLock)                           // KEY_NUMLOCK
	return km
}

func TestKeyboardMapLookup(t *testing.T) {
	km := testMap()
	mods := func(m input.Modifiers, l input.Leds) input.KeyModifiers {
		return input.NewKeyModifiers(m, l)
	}

	tests := []struct {
		name string
		key  uint32
		mods input.KeyModifiers
		want uint32
	}{
		{"letter", 30, mods(0, 0), 'a'},
		{"shift letter", 30, mods(input.ModShift, 0), 'A'},
		{"caps letter", 30, mods(input.ModCaps, 0), 'A'},
		{"caps led letter", 30, mods(0, input.LedCapsLock), 'A'},
		{"shift and caps", 30, mods(input.ModShift, input.LedCapsLock), 'a'},
		{"implicit upper case", 16, mods(input.ModShift, 0), 'Q'},
		{"digit", 3, mods(0, 0), '2'},
		{"shift digit", 3, mods(input.ModShift, 0), '@'},
		{"caps digit", 3, mods(input.ModCaps, 0), '2'},
		{"altgr group", 18, mods(input.ModAltGr, 0), keysym.EuroSign},
		{"altgr on key without group", 30, mods(input.ModAltGr, 0), 'a'},
		{"keypad", 71, mods(0, 0), keysym.KPHome},
		{"keypad num lock", 71, mods(0, input.LedNumLock), keysym.KP0 + 7},
		{"keypad num lock shift", 71, mods(input.ModShift, input.LedNumLock), keysym.KPHome},
		{"single column key", 28, mods(input.ModShift, 0), keysym.Return},
		{"modifier", 42, mods(input.ModShift|input.ModCtrl, 0), keysym.ShiftL},
		{"unmapped", 200, mods(0, 0), keysym.NoSymbol},
		{"huge keycode", 0xffffffff, mods(0, 0), keysym.NoSymbol},
		{"above x keycodes", 250, mods(0, 0), keysym.NoSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.lookup(tt.key, tt.mods))
		})
	}
}

func TestBindModifiers(t *testing.T) {
	km := testMap()

	// Two keycodes per modifier; Num_Lock on mod3 and ISO_Level3_Shift on
	// mod4 instead of the usual mod2 and mod5
	keycodes := make([]byte, 16)
	keycodes[0] = 42 + evdevOffset // shift
	keycodes[5*2] = 69 + evdevOffset
	keycodes[6*2+1] = 100 + evdevOffset
	km.bindModifiers(keycodes, 2)

	assert.Equal(t, input.ModMod3, km.numLockMod())
	assert.Equal(t, input.ModLogo, km.altGrMod())

	assert.Equal(t, keysym.KP0+7, km.lookup(71, input.NewKeyModifiers(input.ModMod3, 0)))
	assert.Equal(t, uint32(keysym.KPHome), km.lookup(71, input.NewKeyModifiers(input.ModMod2, 0)))
	assert.Equal(t, keysym.EuroSign, km.lookup(18, input.NewKeyModifiers(input.ModLogo, 0)))
	assert.Equal(t, uint32('e'), km.lookup(18, input.NewKeyModifiers(input.ModMod5, 0)))

	// The num lock led works whatever bit carries Num_Lock
	assert.Equal(t, keysym.KP0+7, km.lookup(71, input.NewKeyModifiers(0, input.LedNumLock)))

	km.bindModifiers(nil, 0)
	assert.Equal(t, input.ModNumLock, km.numLockMod())
	assert.Equal(t, input.ModAltGr, km.altGrMod())
}

func TestNilKeyboardMap(t *testing.T) {
	var km *keyboardMap
	assert.Equal(t, keysym.NoSymbol, km.lookup(30, input.KeyModifiers{}))
}

func TestKeycodesFromBitmap(t *testing.T) {
	bitmap := make([]byte, 32)
	// X keycodes 38 (a) and 50 (left shift), plus 3 which is below evdev range
	bitmap[38/8] |= 1 << (38 % 8)
	bitmap[50/8] |= 1 << (50 % 8)
	bitmap[0] |= 1 << 3

	buf := make([]uint32, 0, 4)
	got := keycodesFromBitmap(bitmap, buf)
	assert.Equal(t, []uint32{30, 42}, got)

	got = keycodesFromBitmap(make([]byte, 32), got)
	assert.Empty(t, got)
}

func TestClampInt16(t *testing.T) {
	assert.Equal(t, int16(100), clampInt16(100))
	assert.Equal(t, int16(-100), clampInt16(-100))
	assert.Equal(t, int16(math.MaxInt16), clampInt16(1<<20))
	assert.Equal(t, int16(math.MinInt16), clampInt16(-(1 << 20)))
}
