package input

import "github.com/bnema/wlcinput/internal/keysym"

// Keysym is the symbolic meaning of a key under the current keymap, such as
// "a" or "Shift_L". Values only come out of keyboard translation or the named
// keysyms below; the zero value is KeyNoSymbol.
type Keysym struct {
	code uint32
}

// Named keysyms compositors commonly match against. They are read-only
// values, like io.EOF: never assign to them. Compare with == or use
// IsNoSymbol and IsModifier.
var (
	KeyNoSymbol  = Keysym{keysym.NoSymbol}
	KeyBackSpace = Keysym{keysym.BackSpace}
	KeyTab       = Keysym{keysym.Tab}
	KeyReturn    = Keysym{keysym.Return}
	KeyEscape    = Keysym{keysym.Escape}
	KeyDelete    = Keysym{keysym.Delete}
	KeySpace     = Keysym{' '}
	KeyLeft      = Keysym{keysym.Left}
	KeyUp        = Keysym{keysym.Up}
	KeyRight     = Keysym{keysym.Right}
	KeyDown      = Keysym{keysym.Down}
	KeyF1        = Keysym{keysym.F1}
	KeyShiftL    = Keysym{keysym.ShiftL}
	KeyShiftR    = Keysym{keysym.ShiftR}
	KeyControlL  = Keysym{keysym.ControlL}
	KeyControlR  = Keysym{keysym.ControlR}
	KeyAltL      = Keysym{keysym.AltL}
	KeyAltR      = Keysym{keysym.AltR}
	KeySuperL    = Keysym{keysym.SuperL}
	KeySuperR    = Keysym{keysym.SuperR}
	KeyCapsLock  = Keysym{keysym.CapsLock}
	KeyNumLock   = Keysym{keysym.NumLock}
)

// keysymFromCode wraps a code returned by the windowing subsystem.
func keysymFromCode(code uint32) Keysym {
	return Keysym{code: code}
}

// Code returns the raw XKB keysym value.
func (k Keysym) Code() uint32 {
	return k.code
}

// IsNoSymbol reports whether translation found no symbol.
func (k Keysym) IsNoSymbol() bool {
	return k.code == keysym.NoSymbol
}

// IsModifier reports whether the keysym names a modifier key.
func (k Keysym) IsModifier() bool {
	return keysym.IsModifier(k.code)
}

// Name returns the X11 keysym name.
func (k Keysym) Name() string {
	return keysym.Name(k.code)
}

func (k Keysym) String() string {
	return k.Name()
}
