package pinchzoom

import "github.com/hajimehoshi/ebiten/v2"

// maxContacts is the number of simultaneous touches tracked. Further touches
// are ignored until a slot frees up.
const maxContacts = 10

// TouchSource reports the touches currently down. EbitenTouches reads them
// from ebiten; tests substitute their own.
type TouchSource interface {
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (x, y int)
}

// EbitenTouches is the TouchSource backed by ebiten's touch state. It must be
// polled from within Game.Update.
type EbitenTouches struct{}

// AppendTouchIDs appends the ids of the touches currently down.
func (EbitenTouches) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

// TouchPosition returns the screen position of a touch.
func (EbitenTouches) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

type touchSlot struct {
	used bool
	id   int
	x, y float64
}

// TouchTracker polls a TouchSource once per frame and turns the difference
// between consecutive frames into Begin, Move and End calls on an
// Interpreter. Contacts are reported in slot order, so a contact keeps its
// position in the contact list for as long as it is down.
type TouchTracker struct {
	interp *Interpreter
	source TouchSource
	slots  [maxContacts]touchSlot

	idBuf     []ebiten.TouchID
	frame     []Contact
	contacts  []Contact
	remaining []Contact

	injectQueue [][]Contact
	synthetic   bool
	lastInject  []Contact
	script      *GestureScript
}

// NewTouchTracker creates a tracker feeding interp. A nil source polls ebiten.
func NewTouchTracker(interp *Interpreter, source TouchSource) *TouchTracker {
	if source == nil {
		source = EbitenTouches{}
	}
	return &TouchTracker{interp: interp, source: source}
}

// Interpreter returns the interpreter the tracker feeds.
func (t *TouchTracker) Interpreter() *Interpreter {
	return t.interp
}

// Active returns the number of contacts currently down.
func (t *TouchTracker) Active() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].used {
			n++
		}
	}
	return n
}

// Update reads one frame of touch input and forwards the changes to the
// interpreter. current is the viewport as the sink holds it right now. Call
// once per Game.Update.
func (t *TouchTracker) Update(current Viewport) {
	if t.script != nil {
		t.script.step(t)
	}
	frame, ok := t.nextInjected()
	if !ok {
		frame = t.poll()
	}
	t.process(frame, current)
}

// poll reads the touch source into t.frame.
func (t *TouchTracker) poll() []Contact {
	t.idBuf = t.source.AppendTouchIDs(t.idBuf[:0])
	t.frame = t.frame[:0]
	for _, id := range t.idBuf {
		x, y := t.source.TouchPosition(id)
		t.frame = append(t.frame, Contact{ID: int(id), X: float64(x), Y: float64(y)})
	}
	return t.frame
}

// process diffs frame against the tracked slots and drives the interpreter.
func (t *TouchTracker) process(frame []Contact, current Viewport) {
	var released, added, moved bool

	// Lift slots whose contact is gone; refresh survivors.
	for i := range t.slots {
		sl := &t.slots[i]
		if !sl.used {
			continue
		}
		c, ok := findContact(frame, sl.id)
		if !ok {
			sl.used = false
			released = true
			continue
		}
		if c.X != sl.x || c.Y != sl.y {
			sl.x, sl.y = c.X, c.Y
			moved = true
		}
	}
	t.remaining = t.collect(t.remaining)

	// Allocate slots for new contacts.
	for _, c := range frame {
		if t.slotIndex(c.ID) >= 0 {
			continue
		}
		i := t.freeSlot()
		if i < 0 {
			continue
		}
		t.slots[i] = touchSlot{used: true, id: c.ID, x: c.X, y: c.Y}
		added = true
	}
	t.contacts = t.collect(t.contacts)

	if released {
		t.interp.End(t.remaining, current)
	}
	if added {
		t.interp.Begin(t.contacts, current)
		return
	}
	if moved {
		t.interp.Move(t.contacts, current)
	}
}

// collect appends the tracked contacts in slot order to dst[:0].
func (t *TouchTracker) collect(dst []Contact) []Contact {
	dst = dst[:0]
	for i := range t.slots {
		sl := &t.slots[i]
		if sl.used {
			dst = append(dst, Contact{ID: sl.id, X: sl.x, Y: sl.y})
		}
	}
	return dst
}

func (t *TouchTracker) slotIndex(id int) int {
	for i := range t.slots {
		if t.slots[i].used && t.slots[i].id == id {
			return i
		}
	}
	return -1
}

func (t *TouchTracker) freeSlot() int {
	for i := range t.slots {
		if !t.slots[i].used {
			return i
		}
	}
	return -1
}

func findContact(frame []Contact, id int) (Contact, bool) {
	for _, c := range frame {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}
