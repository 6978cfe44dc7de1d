package input

import (
	"fmt"
	"strings"
)

// Modifiers is the set of modifier keys held while a key event happened.
// The bit layout matches enum wlc_modifier_bit.
type Modifiers uint32

const (
	ModShift Modifiers = 1 << iota
	ModCaps
	ModCtrl
	ModAlt
	ModMod2
	ModMod3
	ModLogo
	ModMod5

	// Aliases used by most keymaps
	ModNumLock = ModMod2
	ModSuper   = ModLogo
	ModAltGr   = ModMod5

	modMask = ModShift | ModCaps | ModCtrl | ModAlt | ModMod2 | ModMod3 | ModLogo | ModMod5
)

var modifierNames = []struct {
	mod  Modifiers
	name string
}{
	{ModShift, "shift"},
	{ModCaps, "caps"},
	{ModCtrl, "ctrl"},
	{ModAlt, "alt"},
	{ModMod2, "mod2"},
	{ModMod3, "mod3"},
	{ModLogo, "logo"},
	{ModMod5, "mod5"},
}

// Union returns the modifiers present in m or o.
func (m Modifiers) Union(o Modifiers) Modifiers {
	return (m | o) & modMask
}

// Intersect returns the modifiers present in both m and o.
func (m Modifiers) Intersect(o Modifiers) Modifiers {
	return (m & o) & modMask
}

// Without returns m with every modifier of o cleared.
func (m Modifiers) Without(o Modifiers) Modifiers {
	return (m &^ o) & modMask
}

// Contains reports whether every modifier of o is present in m.
func (m Modifiers) Contains(o Modifiers) bool {
	o &= modMask
	return m&o == o
}

// IsEmpty reports whether no defined modifier is set.
func (m Modifiers) IsEmpty() bool {
	return m&modMask == 0
}

func (m Modifiers) String() string {
	var parts []string
	for _, n := range modifierNames {
		if m&n.mod != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// ParseModifiers parses a "+" separated list such as "ctrl+shift".
// The empty string and "none" yield the empty set.
func ParseModifiers(s string) (Modifiers, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return 0, nil
	}

	var mods Modifiers
	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		switch part {
		case "shift":
			mods |= ModShift
		case "caps", "capslock", "lock":
			mods |= ModCaps
		case "ctrl", "control":
			mods |= ModCtrl
		case "alt", "mod1":
			mods |= ModAlt
		case "mod2", "numlock", "num":
			mods |= ModMod2
		case "mod3":
			mods |= ModMod3
		case "logo", "super", "mod4", "meta":
			mods |= ModLogo
		case "mod5", "altgr":
			mods |= ModMod5
		default:
			return 0, fmt.Errorf("unknown modifier %q", part)
		}
	}
	return mods, nil
}

// Leds is the set of keyboard lock indicators, matching enum wlc_led_bit.
type Leds uint32

const (
	LedNumLock Leds = 1 << iota
	LedCapsLock
	LedScrollLock

	ledMask = LedNumLock | LedCapsLock | LedScrollLock
)

// Union returns the leds lit in l or o.
func (l Leds) Union(o Leds) Leds {
	return (l | o) & ledMask
}

// Intersect returns the leds lit in both l and o.
func (l Leds) Intersect(o Leds) Leds {
	return (l & o) & ledMask
}

// Contains reports whether every led of o is lit in l.
func (l Leds) Contains(o Leds) bool {
	o &= ledMask
	return l&o == o
}

func (l Leds) String() string {
	var parts []string
	if l&LedNumLock != 0 {
		parts = append(parts, "num")
	}
	if l&LedCapsLock != 0 {
		parts = append(parts, "caps")
	}
	if l&LedScrollLock != 0 {
		parts = append(parts, "scroll")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// ParseLeds parses a "+" separated list such as "num+caps".
func ParseLeds(s string) (Leds, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return 0, nil
	}

	var leds Leds
	for _, part := range strings.Split(s, "+") {
		switch strings.TrimSpace(part) {
		case "num", "numlock":
			leds |= LedNumLock
		case "caps", "capslock":
			leds |= LedCapsLock
		case "scroll", "scrolllock":
			leds |= LedScrollLock
		default:
			return 0, fmt.Errorf("unknown led %q", part)
		}
	}
	return leds, nil
}

// KeyModifiers mirrors struct wlc_modifiers: the lock leds and active
// modifiers delivered with a key event.
type KeyModifiers struct {
	Leds Leds
	Mods Modifiers
}

// NewKeyModifiers builds a KeyModifiers with undefined bits masked off.
func NewKeyModifiers(mods Modifiers, leds Leds) KeyModifiers {
	return KeyModifiers{Leds: leds & ledMask, Mods: mods & modMask}
}

// Union merges two modifier states.
func (k KeyModifiers) Union(o KeyModifiers) KeyModifiers {
	return KeyModifiers{Leds: k.Leds.Union(o.Leds), Mods: k.Mods.Union(o.Mods)}
}

// Intersect keeps what both modifier states share.
func (k KeyModifiers) Intersect(o KeyModifiers) KeyModifiers {
	return KeyModifiers{Leds: k.Leds.Intersect(o.Leds), Mods: k.Mods.Intersect(o.Mods)}
}

func (k KeyModifiers) String() string {
	return fmt.Sprintf("mods=%s leds=%s", k.Mods, k.Leds)
}
