package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubsystem behaves like libwlc: the key view is a reused buffer that is
// clobbered on the next call, and may hold stale entries past the count.
type fakeSubsystem struct {
	buf      []uint32
	reported int
	pos      Point
	keysyms  map[uint32]uint32
	utf32    map[uint32]uint32
	lastMods KeyModifiers
	calls    int
}

func (f *fakeSubsystem) CurrentKeys() ([]uint32, int) {
	f.calls++
	return f.buf, f.reported
}

func (f *fakeSubsystem) KeysymForKey(key uint32, mods *KeyModifiers) uint32 {
	f.lastMods = *mods
	if mods.Mods.Contains(ModShift) {
		if ks, ok := f.keysyms[key|0x8000]; ok {
			return ks
		}
	}
	return f.keysyms[key]
}

func (f *fakeSubsystem) UTF32ForKey(key uint32, mods *KeyModifiers) uint32 {
	f.lastMods = *mods
	return f.utf32[key]
}

func (f *fakeSubsystem) PointerPosition(out *Point) {
	*out = f.pos
}

func (f *fakeSubsystem) SetPointerPosition(p *Point) {
	f.pos = *p
}

func (f *fakeSubsystem) clobber() {
	for i := range f.buf {
		f.buf[i] = 0xdeadbeef
	}
}

func newFake() *fakeSubsystem {
	return &fakeSubsystem{
		keysyms: map[uint32]uint32{
			30:          'a',
			30 | 0x8000: 'A',
			42:          0xffe1,
			29:          0xffe3,
		},
		utf32: map[uint32]uint32{
			30: 'a',
			57: ' ',
		},
	}
}

func TestPointerSetThenGet(t *testing.T) {
	sub := newFake()
	p := NewPointer(sub)

	points := []Point{{0, 0}, {1920, 1080}, {-100, 50}, {2147483647, -2147483648}}
	for _, pt := range points {
		p.SetPosition(pt)
		assert.Equal(t, pt, p.Position())
	}
}

func TestPointerPositionDoesNotShareStorage(t *testing.T) {
	sub := newFake()
	p := NewPointer(sub)

	pt := Point{X: 10, Y: 20}
	p.SetPosition(pt)
	pt.X = 99
	assert.Equal(t, Point{X: 10, Y: 20}, p.Position())
}

func TestCurrentKeys(t *testing.T) {
	tests := []struct {
		name     string
		buf      []uint32
		reported int
		want     KeySnapshot
	}{
		{
			name:     "idle keyboard",
			buf:      nil,
			reported: 0,
			want:     KeySnapshot{},
		},
		{
			name:     "zero count with stale buffer",
			buf:      []uint32{30, 31, 32},
			reported: 0,
			want:     KeySnapshot{},
		},
		{
			name:     "exact count",
			buf:      []uint32{29, 30},
			reported: 2,
			want:     KeySnapshot{29, 30},
		},
		{
			name:     "buffer longer than count",
			buf:      []uint32{42, 30, 0xdead, 0xbeef},
			reported: 2,
			want:     KeySnapshot{42, 30},
		},
		{
			name:     "negative count",
			buf:      []uint32{1, 2},
			reported: -1,
			want:     KeySnapshot{},
		},
		{
			name:     "count past view is clamped",
			buf:      []uint32{5},
			reported: 3,
			want:     KeySnapshot{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := newFake()
			sub.buf = tt.buf
			sub.reported = tt.reported

			got := NewKeyboard(sub).CurrentKeys()
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrentKeysIsACopy(t *testing.T) {
	sub := newFake()
	sub.buf = []uint32{42, 30, 48}
	sub.reported = 3

	kb := NewKeyboard(sub)
	snap := kb.CurrentKeys()
	sub.clobber()

	assert.Equal(t, KeySnapshot{42, 30, 48}, snap)
	assert.True(t, snap.Contains(30))
	assert.False(t, snap.Contains(0xdeadbeef))
	assert.Equal(t, 3, snap.Len())

	snap[0] = 1
	assert.Equal(t, uint32(0xdeadbeef), sub.buf[0])
}

func TestKeysymForKey(t *testing.T) {
	sub := newFake()
	kb := NewKeyboard(sub)

	assert.Equal(t, uint32('a'), kb.KeysymForKey(30, KeyModifiers{}).Code())
	assert.Equal(t, uint32('A'), kb.KeysymForKey(30, NewKeyModifiers(ModShift, 0)).Code())
	assert.Equal(t, KeyShiftL, kb.KeysymForKey(42, KeyModifiers{}))
	assert.True(t, kb.KeysymForKey(42, KeyModifiers{}).IsModifier())

	mods := NewKeyModifiers(ModCtrl|ModAlt, LedNumLock)
	kb.KeysymForKey(30, mods)
	assert.Equal(t, mods, sub.lastMods)
}

func TestTranslationMasksUndefinedBits(t *testing.T) {
	sub := newFake()
	kb := NewKeyboard(sub)
	raw := KeyModifiers{Mods: ModShift | 0xffff0000, Leds: 0xf0 | LedNumLock}
	want := KeyModifiers{Mods: ModShift, Leds: LedNumLock}

	assert.Equal(t, uint32('A'), kb.KeysymForKey(30, raw).Code())
	assert.Equal(t, want, sub.lastMods)

	sub.lastMods = KeyModifiers{}
	kb.UTF32ForKey(30, raw)
	assert.Equal(t, want, sub.lastMods)
}

func TestKeysymForUnknownKeyIsNoSymbol(t *testing.T) {
	kb := NewKeyboard(newFake())

	for _, key := range []uint32{0, 999, 0xffffffff} {
		ks := kb.KeysymForKey(key, NewKeyModifiers(ModShift|ModCtrl, 0))
		assert.Equal(t, KeyNoSymbol, ks)
		assert.True(t, ks.IsNoSymbol())
		assert.Equal(t, "NoSymbol", ks.Name())
	}
}

func TestTranslationIsDeterministic(t *testing.T) {
	kb := NewKeyboard(newFake())
	mods := NewKeyModifiers(ModShift, LedCapsLock)

	first := kb.KeysymForKey(30, mods)
	firstText := kb.UTF32ForKey(30, mods)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, kb.KeysymForKey(30, mods))
		assert.Equal(t, firstText, kb.UTF32ForKey(30, mods))
	}
}

func TestUTF32ForKey(t *testing.T) {
	kb := NewKeyboard(newFake())

	assert.Equal(t, uint32('a'), kb.UTF32ForKey(30, KeyModifiers{}))
	assert.Zero(t, kb.UTF32ForKey(42, KeyModifiers{}))

	r, ok := kb.RuneForKey(57, KeyModifiers{})
	assert.True(t, ok)
	assert.Equal(t, ' ', r)

	_, ok = kb.RuneForKey(42, KeyModifiers{})
	assert.False(t, ok)
}

func TestKeysymValueEquality(t *testing.T) {
	assert.Equal(t, keysymFromCode(0xffe1), KeyShiftL)
	assert.True(t, keysymFromCode(0xffe1) == KeyShiftL)
	assert.NotEqual(t, KeyShiftL, KeyShiftR)
	assert.Equal(t, KeyNoSymbol, Keysym{})
	assert.Equal(t, "Shift_L", KeyShiftL.String())
}

func TestNamedKeysyms(t *testing.T) {
	tests := []struct {
		ks   Keysym
		code uint32
		name string
		mod  bool
	}{
		{KeyNoSymbol, 0, "NoSymbol", false},
		{KeyBackSpace, 0xff08, "BackSpace", false},
		{KeyTab, 0xff09, "Tab", false},
		{KeyReturn, 0xff0d, "Return", false},
		{KeyEscape, 0xff1b, "Escape", false},
		{KeyDelete, 0xffff, "Delete", false},
		{KeySpace, 0x20, "space", false},
		{KeyLeft, 0xff51, "Left", false},
		{KeyUp, 0xff52, "Up", false},
		{KeyRight, 0xff53, "Right", false},
		{KeyDown, 0xff54, "Down", false},
		{KeyF1, 0xffbe, "F1", false},
		{KeyShiftL, 0xffe1, "Shift_L", true},
		{KeyShiftR, 0xffe2, "Shift_R", true},
		{KeyControlL, 0xffe3, "Control_L", true},
		{KeyControlR, 0xffe4, "Control_R", true},
		{KeyAltL, 0xffe9, "Alt_L", true},
		{KeyAltR, 0xffea, "Alt_R", true},
		{KeySuperL, 0xffeb, "Super_L", true},
		{KeySuperR, 0xffec, "Super_R", true},
		{KeyCapsLock, 0xffe5, "Caps_Lock", true},
		{KeyNumLock, 0xff7f, "Num_Lock", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.ks.Code())
			assert.Equal(t, tt.name, tt.ks.Name())
			assert.Equal(t, tt.mod, tt.ks.IsModifier())
			assert.Equal(t, keysymFromCode(tt.code), tt.ks)
		})
	}
}

func TestSerializedSubsystem(t *testing.T) {
	sub := newFake()
	sub.buf = []uint32{30, 31}
	sub.reported = 2

	shared := Serialized(sub)
	assert.Same(t, shared, Serialized(shared))

	kb := NewKeyboard(shared)
	ptr := NewPointer(shared)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				ptr.SetPosition(Point{X: int32(i), Y: int32(j)})
				_ = ptr.Position()
				assert.Equal(t, KeySnapshot{30, 31}, kb.CurrentKeys())
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 8*50, sub.calls)
}
