package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ThomasT75/uinput"
)

// keyNames maps evdev key names, without the KEY_ prefix, to key codes
var keyNames = map[string]uint32{
	"esc": uinput.KeyEsc, "1": uinput.Key1, "2": uinput.Key2, "3": uinput.Key3,
	"4": uinput.Key4, "5": uinput.Key5, "6": uinput.Key6, "7": uinput.Key7,
	"8": uinput.Key8, "9": uinput.Key9, "0": uinput.Key0,
	"minus": uinput.KeyMinus, "equal": uinput.KeyEqual,
	"backspace": uinput.KeyBackspace, "tab": uinput.KeyTab,

	"q": uinput.KeyQ, "w": uinput.KeyW, "e": uinput.KeyE, "r": uinput.KeyR,
	"t": uinput.KeyT, "y": uinput.KeyY, "u": uinput.KeyU, "i": uinput.KeyI,
	"o": uinput.KeyO, "p": uinput.KeyP,
	"leftbrace": uinput.KeyLeftbrace, "rightbrace": uinput.KeyRightbrace,
	"enter": uinput.KeyEnter, "leftctrl": uinput.KeyLeftctrl,

	"a": uinput.KeyA, "s": uinput.KeyS, "d": uinput.KeyD, "f": uinput.KeyF,
	"g": uinput.KeyG, "h": uinput.KeyH, "j": uinput.KeyJ, "k": uinput.KeyK,
	"l": uinput.KeyL, "semicolon": uinput.KeySemicolon,
	"apostrophe": uinput.KeyApostrophe, "grave": uinput.KeyGrave,
	"leftshift": uinput.KeyLeftshift, "backslash": uinput.KeyBackslash,

	"z": uinput.KeyZ, "x": uinput.KeyX, "c": uinput.KeyC, "v": uinput.KeyV,
	"b": uinput.KeyB, "n": uinput.KeyN, "m": uinput.KeyM,
	"comma": uinput.KeyComma, "dot": uinput.KeyDot, "slash": uinput.KeySlash,
	"rightshift": uinput.KeyRightshift, "leftalt": uinput.KeyLeftalt,
	"space": uinput.KeySpace, "capslock": uinput.KeyCapslock,
	"numlock": uinput.KeyNumlock, "rightctrl": uinput.KeyRightctrl,
	"rightalt": uinput.KeyRightalt, "leftmeta": uinput.KeyLeftmeta,
	"rightmeta": uinput.KeyRightmeta,

	"kp0": uinput.KeyKp0, "kp1": uinput.KeyKp1, "kp2": uinput.KeyKp2,
	"kp3": uinput.KeyKp3, "kp4": uinput.KeyKp4, "kp5": uinput.KeyKp5,
	"kp6": uinput.KeyKp6, "kp7": uinput.KeyKp7, "kp8": uinput.KeyKp8,
	"kp9": uinput.KeyKp9, "kpdot": uinput.KeyKpdot,
	"kpenter": uinput.KeyKpenter, "kpplus": uinput.KeyKpplus,
	"kpminus": uinput.KeyKpminus, "kpasterisk": uinput.KeyKpasterisk,
	"kpslash": uinput.KeyKpslash,

	"up": uinput.KeyUp, "down": uinput.KeyDown, "left": uinput.KeyLeft,
	"right": uinput.KeyRight, "delete": uinput.KeyDelete,
	"home": uinput.KeyHome, "end": uinput.KeyEnd, "insert": uinput.KeyInsert,
	"pageup": uinput.KeyPageup, "pagedown": uinput.KeyPagedown,
	"scrolllock": uinput.KeyScrolllock,

	"f1": uinput.KeyF1, "f2": uinput.KeyF2, "f3": uinput.KeyF3, "f4": uinput.KeyF4,
	"f5": uinput.KeyF5, "f6": uinput.KeyF6, "f7": uinput.KeyF7, "f8": uinput.KeyF8,
	"f9": uinput.KeyF9, "f10": uinput.KeyF10, "f11": uinput.KeyF11, "f12": uinput.KeyF12,
}

var keyCodeNames = func() map[uint32]string {
	m := make(map[uint32]string, len(keyNames))
	for name, code := range keyNames {
		m[code] = name
	}
	return m
}()

// parseKey accepts a key name such as "a", "KEY_LEFTSHIFT" or "kp7", or an
// evdev key code in any Go integer base
func parseKey(arg string) (uint32, error) {
	// Names win so that "1" is the digit key, not KEY_ESC
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(arg)), "key_")
	if code, ok := keyNames[name]; ok {
		return code, nil
	}

	if v, err := strconv.ParseUint(arg, 0, 32); err == nil {
		return uint32(v), nil
	}
	return 0, fmt.Errorf("unknown key %q: use an evdev code or a name such as a, leftshift or kp7", arg)
}

// keyLabel names a key code for display, falling back to the number
func keyLabel(code uint32) string {
	if name, ok := keyCodeNames[code]; ok {
		return name
	}
	return strconv.FormatUint(uint64(code), 10)
}

// knownKeyNames lists the accepted key names, sorted
func knownKeyNames() []string {
	names := make([]string, 0, len(keyNames))
	for name := range keyNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
