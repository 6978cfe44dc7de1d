// Package keysym holds X11 keysym codes and the keysym -> UTF-32 rules used
// by libxkbcommon, for backends that translate keycodes themselves.
package keysym

import (
	"fmt"
	"unicode"
)

// XKB keysym codes. Latin-1 keysyms equal their code point and are not
// listed here.
const (
	NoSymbol uint32 = 0x000000

	BackSpace  uint32 = 0xff08
	Tab        uint32 = 0xff09
	Linefeed   uint32 = 0xff0a
	Clear      uint32 = 0xff0b
	Return     uint32 = 0xff0d
	Pause      uint32 = 0xff13
	ScrollLock uint32 = 0xff14
	SysReq     uint32 = 0xff15
	Escape     uint32 = 0xff1b
	Delete     uint32 = 0xffff

	Home     uint32 = 0xff50
	Left     uint32 = 0xff51
	Up       uint32 = 0xff52
	Right    uint32 = 0xff53
	Down     uint32 = 0xff54
	PageUp   uint32 = 0xff55
	PageDown uint32 = 0xff56
	End      uint32 = 0xff57
	Print    uint32 = 0xff61
	Insert   uint32 = 0xff63
	Menu     uint32 = 0xff67

	ModeSwitch uint32 = 0xff7e
	NumLock    uint32 = 0xff7f

	KPSpace    uint32 = 0xff80
	KPTab      uint32 = 0xff89
	KPEnter    uint32 = 0xff8d
	KPHome     uint32 = 0xff95
	KPLeft     uint32 = 0xff96
	KPUp       uint32 = 0xff97
	KPRight    uint32 = 0xff98
	KPDown     uint32 = 0xff99
	KPPageUp   uint32 = 0xff9a
	KPPageDown uint32 = 0xff9b
	KPEnd      uint32 = 0xff9c
	KPBegin    uint32 = 0xff9d
	KPInsert   uint32 = 0xff9e
	KPDelete   uint32 = 0xff9f
	KPMultiply uint32 = 0xffaa
	KPAdd      uint32 = 0xffab
	KPSubtract uint32 = 0xffad
	KPDecimal  uint32 = 0xffae
	KPDivide   uint32 = 0xffaf
	KP0        uint32 = 0xffb0
	KP9        uint32 = 0xffb9
	KPEqual    uint32 = 0xffbd

	F1  uint32 = 0xffbe
	F12 uint32 = 0xffc9

	ShiftL    uint32 = 0xffe1
	ShiftR    uint32 = 0xffe2
	ControlL  uint32 = 0xffe3
	ControlR  uint32 = 0xffe4
	CapsLock  uint32 = 0xffe5
	ShiftLock uint32 = 0xffe6
	MetaL     uint32 = 0xffe7
	MetaR     uint32 = 0xffe8
	AltL      uint32 = 0xffe9
	AltR      uint32 = 0xffea
	SuperL    uint32 = 0xffeb
	SuperR    uint32 = 0xffec
	HyperL    uint32 = 0xffed
	HyperR    uint32 = 0xffee

	ISOLock         uint32 = 0xfe01
	ISOLevel3Shift  uint32 = 0xfe03
	ISOLevel5Lock   uint32 = 0xfe13
	ISOLeftTab      uint32 = 0xfe20
	ISOGroupShift   uint32 = ModeSwitch
	ISOLevel5Shift  uint32 = 0xfe11
	DeadGrave       uint32 = 0xfe50
	DeadAcute       uint32 = 0xfe51
	DeadCircumflex  uint32 = 0xfe52
	DeadTilde       uint32 = 0xfe53
	DeadDiaeresis   uint32 = 0xfe57
	EuroSign        uint32 = 0x20ac
	unicodeOffset   uint32 = 0x01000000
	unicodeLast     uint32 = 0x0110ffff
	keypadPrivFirst uint32 = 0x11000000
	keypadPrivLast  uint32 = 0x1100ffff
)

// ToUTF32 returns the code point a keysym produces, or 0 when it has no
// textual representation. Legacy keysyms outside Latin-1 go through the
// keysymdef.h table.
func ToUTF32(ks uint32) uint32 {
	switch {
	case ks >= 0x0020 && ks <= 0x007e, ks >= 0x00a0 && ks <= 0x00ff:
		return ks
	case ks == KPSpace:
		return ' '
	case ks >= BackSpace && ks <= Clear, ks == Return, ks == Escape,
		ks == Delete, ks == KPTab, ks == KPEnter:
		return ks & 0x7f
	case ks >= KPMultiply && ks <= KP9, ks == KPEqual:
		return ks & 0x7f
	case ks == EuroSign:
		return 0x20ac
	case ks >= unicodeOffset && ks <= unicodeLast:
		cp := ks - unicodeOffset
		if cp >= 0xd800 && cp <= 0xdfff {
			return 0
		}
		return cp
	}
	return legacyToUTF32(ks)
}

// FromRune returns the keysym that types r, preferring a legacy keysym over
// the 0x01000000 Unicode form when one exists.
func FromRune(r rune) uint32 {
	cp := uint32(r)
	switch {
	case cp >= 0x20 && cp <= 0x7e, cp >= 0xa0 && cp <= 0xff:
		return cp
	case cp == 0x20ac:
		return EuroSign
	case cp >= 0xd800 && cp <= 0xdfff:
		return NoSymbol
	case cp >= 0x100 && cp <= 0x10ffff:
		if ks, ok := legacyFromUTF32[cp]; ok {
			return ks
		}
		return cp + unicodeOffset
	}
	return NoSymbol
}

// IsModifier reports whether ks is a modifier keysym.
func IsModifier(ks uint32) bool {
	return (ks >= ShiftL && ks <= HyperR) ||
		(ks >= ISOLock && ks <= ISOLevel5Lock) ||
		ks == ModeSwitch || ks == NumLock
}

// IsKeypad reports whether ks belongs to the keypad block.
func IsKeypad(ks uint32) bool {
	return (ks >= KPSpace && ks <= KPEqual) ||
		(ks >= keypadPrivFirst && ks <= keypadPrivLast)
}

// IsLetter reports whether ks has distinct lower and upper case forms.
func IsLetter(ks uint32) bool {
	cp := ToUTF32(ks)
	if cp == 0 {
		return false
	}
	r := rune(cp)
	return unicode.ToLower(r) != unicode.ToUpper(r)
}

// ToUpper returns the upper case keysym for a letter keysym.
func ToUpper(ks uint32) uint32 {
	cp := ToUTF32(ks)
	if cp == 0 {
		return ks
	}
	up := FromRune(unicode.ToUpper(rune(cp)))
	if up == NoSymbol {
		return ks
	}
	return up
}

var names = map[uint32]string{
	NoSymbol:       "NoSymbol",
	BackSpace:      "BackSpace",
	Tab:            "Tab",
	Linefeed:       "Linefeed",
	Clear:          "Clear",
	Return:         "Return",
	Pause:          "Pause",
	ScrollLock:     "Scroll_Lock",
	SysReq:         "Sys_Req",
	Escape:         "Escape",
	Delete:         "Delete",
	Home:           "Home",
	Left:           "Left",
	Up:             "Up",
	Right:          "Right",
	Down:           "Down",
	PageUp:         "Prior",
	PageDown:       "Next",
	End:            "End",
	Print:          "Print",
	Insert:         "Insert",
	Menu:           "Menu",
	ModeSwitch:     "Mode_switch",
	NumLock:        "Num_Lock",
	KPSpace:        "KP_Space",
	KPTab:          "KP_Tab",
	KPEnter:        "KP_Enter",
	KPHome:         "KP_Home",
	KPLeft:         "KP_Left",
	KPUp:           "KP_Up",
	KPRight:        "KP_Right",
	KPDown:         "KP_Down",
	KPPageUp:       "KP_Prior",
	KPPageDown:     "KP_Next",
	KPEnd:          "KP_End",
	KPBegin:        "KP_Begin",
	KPInsert:       "KP_Insert",
	KPDelete:       "KP_Delete",
	KPMultiply:     "KP_Multiply",
	KPAdd:          "KP_Add",
	KPSubtract:     "KP_Subtract",
	KPDecimal:      "KP_Decimal",
	KPDivide:       "KP_Divide",
	KPEqual:        "KP_Equal",
	ShiftL:         "Shift_L",
	ShiftR:         "Shift_R",
	ControlL:       "Control_L",
	ControlR:       "Control_R",
	CapsLock:       "Caps_Lock",
	ShiftLock:      "Shift_Lock",
	MetaL:          "Meta_L",
	MetaR:          "Meta_R",
	AltL:           "Alt_L",
	AltR:           "Alt_R",
	SuperL:         "Super_L",
	SuperR:         "Super_R",
	HyperL:         "Hyper_L",
	HyperR:         "Hyper_R",
	ISOLock:        "ISO_Lock",
	ISOLevel3Shift: "ISO_Level3_Shift",
	ISOLevel5Shift: "ISO_Level5_Shift",
	ISOLevel5Lock:  "ISO_Level5_Lock",
	ISOLeftTab:     "ISO_Left_Tab",
	DeadGrave:      "dead_grave",
	DeadAcute:      "dead_acute",
	DeadCircumflex: "dead_circumflex",
	DeadTilde:      "dead_tilde",
	DeadDiaeresis:  "dead_diaeresis",
	EuroSign:       "EuroSign",

	' ':  "space",
	'!':  "exclam",
	'"':  "quotedbl",
	'#':  "numbersign",
	'$':  "dollar",
	'%':  "percent",
	'&':  "ampersand",
	'\'': "apostrophe",
	'(':  "parenleft",
	')':  "parenright",
	'*':  "asterisk",
	'+':  "plus",
	',':  "comma",
	'-':  "minus",
	'.':  "period",
	'/':  "slash",
	':':  "colon",
	';':  "semicolon",
	'<':  "less",
	'=':  "equal",
	'>':  "greater",
	'?':  "question",
	'@':  "at",
	'[':  "bracketleft",
	'\\': "backslash",
	']':  "bracketright",
	'^':  "asciicircum",
	'_':  "underscore",
	'`':  "grave",
	'{':  "braceleft",
	'|':  "bar",
	'}':  "braceright",
	'~':  "asciitilde",
}

// Name returns the X11 name of ks: "a", "Shift_L", "U20AC" style for
// unnamed Unicode keysyms and "0x..." for anything else.
func Name(ks uint32) string {
	if n, ok := names[ks]; ok {
		return n
	}
	switch {
	case ks >= '0' && ks <= '9', ks >= 'A' && ks <= 'Z', ks >= 'a' && ks <= 'z':
		return string(rune(ks))
	case ks >= F1 && ks <= F12+23:
		return fmt.Sprintf("F%d", ks-F1+1)
	case ks >= KP0 && ks <= KP9:
		return fmt.Sprintf("KP_%d", ks-KP0)
	case ks >= unicodeOffset && ks <= unicodeLast:
		return fmt.Sprintf("U%04X", ks-unicodeOffset)
	}
	return fmt.Sprintf("0x%08x", ks)
}
