package keysym

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUTF32(t *testing.T) {
	tests := []struct {
		name string
		ks   uint32
		want uint32
	}{
		{"latin lower", 'a', 'a'},
		{"latin upper", 'Q', 'Q'},
		{"latin1 supplement", 0xe9, 0xe9},
		{"space", ' ', ' '},
		{"return", Return, '\r'},
		{"backspace", BackSpace, '\b'},
		{"tab", Tab, '\t'},
		{"escape", Escape, 0x1b},
		{"delete", Delete, 0x7f},
		{"keypad enter", KPEnter, '\r'},
		{"keypad space", KPSpace, ' '},
		{"keypad digit", KP0 + 7, '7'},
		{"keypad multiply", KPMultiply, '*'},
		{"keypad equal", KPEqual, '='},
		{"euro", EuroSign, 0x20ac},
		{"unicode keysym", 0x01000000 + 0x263a, 0x263a},
		{"unicode keysym below 0x100", 0x01000041, 0x41},
		{"unicode surrogate", 0x0100d800, 0},
		{"latin2 aogonek", 0x01b1, 0x0105},
		{"latin2 Lstroke", 0x01a3, 0x0141},
		{"latin3 gbreve", 0x02bb, 0x011f},
		{"latin4 eng", 0x03bf, 0x014b},
		{"kana a", 0x04b1, 0x30a2},
		{"arabic alef", 0x05c7, 0x0627},
		{"arabic comma", 0x05ac, 0x060c},
		{"cyrillic yu", 0x06c0, 0x044e},
		{"cyrillic a", 0x06c1, 0x0430},
		{"cyrillic YA", 0x06f1, 0x042f},
		{"ukrainian ie", 0x06a4, 0x0454},
		{"greek alpha", 0x07e1, 0x03b1},
		{"greek final sigma", 0x07f3, 0x03c2},
		{"greek OMEGA", 0x07d9, 0x03a9},
		{"technical integral", 0x08bf, 0x222b},
		{"special crossing lines", 0x09ee, 0x253c},
		{"publishing emdash", 0x0aa9, 0x2014},
		{"apl leftcaret", 0x0ba3, '<'},
		{"hebrew aleph", 0x0ce0, 0x05d0},
		{"thai kokai", 0x0da1, 0x0e01},
		{"thai baht", 0x0ddf, 0x0e3f},
		{"hangul i", 0x0ed3, 0x3163},
		{"hangul final hieuh", 0x0eee, 0x11c2},
		{"korean won", 0x0eff, 0x20a9},
		{"latin9 oe", 0x13bd, 0x0153},
		{"unassigned legacy", 0x01a4, 0},
		{"greek gap", 0x07d3, 0},
		{"shift is not text", ShiftL, 0},
		{"control is not text", ControlR, 0},
		{"function key", F1, 0},
		{"arrow", Left, 0},
		{"no symbol", NoSymbol, 0},
		{"dead key", DeadAcute, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToUTF32(tt.ks))
		})
	}
}

func TestFromRuneRoundTrip(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '5', '~', 0xe9, 0x20ac, 0x263a} {
		assert.Equal(t, uint32(r), ToUTF32(FromRune(r)), "rune %q", r)
	}
	assert.Equal(t, NoSymbol, FromRune('\n'))
	assert.Equal(t, NoSymbol, FromRune(0xd800))
}

func TestFromRunePrefersLegacy(t *testing.T) {
	tests := []struct {
		r    rune
		want uint32
	}{
		{0x0105, 0x01b1},
		{0x0430, 0x06c1},
		{0x042f, 0x06f1},
		{0x03b1, 0x07e1},
		{0x05d0, 0x0ce0},
		{0x2500, 0x08a3}, // also 0x09f1, lowest wins
		{0x263a, 0x0100263a},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FromRune(tt.r), "rune %U", tt.r)
		assert.Equal(t, uint32(tt.r), ToUTF32(tt.want), "keysym %#x", tt.want)
	}
}

func TestIsModifier(t *testing.T) {
	for _, ks := range []uint32{ShiftL, ShiftR, ControlL, ControlR, AltL, AltR, SuperL, SuperR, CapsLock, NumLock, ISOLevel3Shift, ModeSwitch} {
		assert.True(t, IsModifier(ks), Name(ks))
	}
	for _, ks := range []uint32{'a', Return, F1, Escape, NoSymbol, KPEnter} {
		assert.False(t, IsModifier(ks), Name(ks))
	}
}

func TestToUpper(t *testing.T) {
	assert.Equal(t, uint32('A'), ToUpper('a'))
	assert.Equal(t, uint32('A'), ToUpper('A'))
	assert.Equal(t, uint32(0xc9), ToUpper(0xe9))
	assert.Equal(t, uint32('1'), ToUpper('1'))
	assert.Equal(t, Return, ToUpper(Return))
	assert.True(t, IsLetter('q'))
	assert.False(t, IsLetter('7'))
	assert.False(t, IsLetter(ShiftL))

	assert.True(t, IsLetter(0x01b1))
	assert.Equal(t, uint32(0x01a1), ToUpper(0x01b1))
	assert.Equal(t, uint32(0x06e1), ToUpper(0x06c1))
	assert.Equal(t, uint32(0x07c1), ToUpper(0x07e1))
}

func TestName(t *testing.T) {
	assert.Equal(t, "a", Name('a'))
	assert.Equal(t, "space", Name(' '))
	assert.Equal(t, "Shift_L", Name(ShiftL))
	assert.Equal(t, "F5", Name(F1+4))
	assert.Equal(t, "KP_3", Name(KP0+3))
	assert.Equal(t, "U263A", Name(0x0100263a))
	assert.Equal(t, "NoSymbol", Name(NoSymbol))
	assert.Equal(t, "0x12345678", Name(0x12345678))
}
