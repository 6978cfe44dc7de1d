package input

// Pointer reads and moves the global cursor.
type Pointer struct {
	sub Subsystem
}

// NewPointer creates a pointer service on top of sub.
func NewPointer(sub Subsystem) *Pointer {
	return &Pointer{sub: sub}
}

// Position returns the current cursor position.
func (p *Pointer) Position() Point {
	var pos Point
	p.sub.PointerPosition(&pos)
	return pos
}

// SetPosition moves the cursor to pos. Compositors must call it from their
// pointer motion callback on every move, otherwise the drawn cursor and the
// one libwlc tracks drift apart.
func (p *Pointer) SetPosition(pos Point) {
	p.sub.SetPointerPosition(&pos)
}
