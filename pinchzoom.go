package pinchzoom

// Zoom limits applied to every viewport the interpreter produces.
const (
	MinZoom = 0.1
	MaxZoom = 3.0
)

// Vec2 is a 2D vector used for positions and offsets in screen space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Vec2 {
	return Vec2{r.X, r.Y}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Contact is one active touch point. ID is unique among simultaneously active
// contacts and stable for the contact's lifetime. X and Y are in screen space.
type Contact struct {
	ID   int
	X, Y float64
}

// Pos returns the contact position as a vector.
func (c Contact) Pos() Vec2 {
	return Vec2{c.X, c.Y}
}

// Phase identifies which contact-lifecycle point triggered a callback.
type Phase uint8

const (
	PhaseBegin Phase = iota // one or more contacts touched down
	PhaseMove               // one or more contacts moved
	PhaseEnd                // one or more contacts lifted
)

func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "begin"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// State is the interpreter's gesture state.
type State uint8

const (
	StateIdle     State = iota // fewer than two contacts, no anchor
	StatePinching              // two contacts, anchor recorded
)

func (s State) String() string {
	if s == StatePinching {
		return "pinching"
	}
	return "idle"
}

// Update is a request to overwrite the viewport transform.
// Transient updates (Commit false) are emitted for every gesture frame and
// must not be recorded as undoable history steps. A committed update marks
// the end of an interaction.
type Update struct {
	Viewport Viewport
	Commit   bool
}

// Surface is the rendering surface the contacts land on.
type Surface interface {
	// Bounds returns the surface rectangle in the contacts' screen space.
	// ok is false while the surface has not been laid out yet.
	Bounds() (r Rect, ok bool)
}

// DefaultSuppressor is implemented by surfaces that can suppress the
// platform's default handling (page scroll, browser zoom) of a two-contact
// gesture.
type DefaultSuppressor interface {
	SuppressDefault()
}

// StaticSurface is a Surface with a fixed, always-measured rectangle.
type StaticSurface Rect

// Bounds returns the fixed rectangle.
func (s StaticSurface) Bounds() (Rect, bool) {
	return Rect(s), true
}

func copyContacts(dst, src []Contact) []Contact {
	return append(dst[:0], src...)
}
