package elev

// Door is the car door interlock. Open is ignored while locked, Close while held open.
type Door struct {
	open     bool
	heldOpen bool
	locked   bool
}

func (d *Door) Open() {
	if d.locked {
		return
	}
	d.open = true
}

func (d *Door) Close() {
	if d.heldOpen {
		return
	}
	d.open = false
}

func (d *Door) Lock()   { d.locked = true }
func (d *Door) Unlock() { d.locked = false }

func (d *Door) SetHeldOpen(held bool) { d.heldOpen = held }

func (d *Door) HeldOpen() bool { return d.heldOpen }
func (d *Door) IsOpen() bool   { return d.open }
func (d *Door) IsClosed() bool { return !d.open }
func (d *Door) IsLocked() bool { return d.locked }
