package pinchzoom

import "log/slog"

// session is the transient state of the contact interaction in progress.
// anchorDistance, anchorMidpoint and anchorIDs are meaningful only while
// anchored; anchorView is always a clamped viewport.
type session struct {
	contacts []Contact

	anchored       bool
	anchorIDs      [2]int
	anchorDistance float64
	anchorMidpoint Vec2
	anchorView     Viewport

	origin      Vec2
	originKnown bool

	// emitted is set once the gesture has pushed a transient update. It
	// survives re-anchoring and is cleared only when the gesture ends.
	emitted bool
}

// Interpreter turns a stream of multi-touch contact sets into pan/zoom
// viewport updates: two contacts pinch to zoom around their midpoint and
// drag together to pan.
//
// Begin, Move and End must be called from a single goroutine, in the order
// the host observes the events. Updates are returned to the caller and pushed
// to every registered Sink.
type Interpreter struct {
	cfg     Config
	surface Surface
	session session
	sinks   sinkRegistry
	anim    *viewportAnim
}

// NewInterpreter creates an Interpreter for contacts landing on surface.
// A nil surface places the canvas origin at the screen origin. A zero Config
// is replaced with DefaultConfig; zero MinZoom or MaxZoom take the package
// limits. A config that fails Validate is replaced with DefaultConfig.
func NewInterpreter(surface Surface, cfg Config) *Interpreter {
	return &Interpreter{
		cfg:     cfg.resolve(),
		surface: surface,
		session: session{anchorView: IdentityViewport},
	}
}

// Config returns the interpreter's configuration.
func (g *Interpreter) Config() Config {
	return g.cfg
}

// State reports whether a two-contact gesture is in progress.
func (g *Interpreter) State() State {
	if g.session.anchored {
		return StatePinching
	}
	return StateIdle
}

// Contacts returns a copy of the most recent contact snapshot.
func (g *Interpreter) Contacts() []Contact {
	return copyContacts(nil, g.session.contacts)
}

// Begin handles one or more contacts touching down. contacts is the full set
// of active contacts. Exactly two contacts start a gesture anchored at the
// current viewport.
func (g *Interpreter) Begin(contacts []Contact, current Viewport) {
	g.session.contacts = copyContacts(g.session.contacts, contacts)
	if len(contacts) != 2 {
		return
	}
	g.anchor(contacts, current)
	if sup, ok := g.surface.(DefaultSuppressor); ok {
		sup.SuppressDefault()
	}
}

// Move handles contact positions changing. It returns the new viewport when
// two anchored contacts are active and the surface origin is known; every
// returned update is transient and is also pushed to the registered sinks.
func (g *Interpreter) Move(contacts []Contact, current Viewport) (Update, bool) {
	defer func() { g.session.contacts = copyContacts(g.session.contacts, contacts) }()

	if len(contacts) != 2 {
		return Update{}, false
	}
	if !g.session.anchored {
		g.anchor(contacts, current)
		return Update{}, false
	}
	if g.cfg.ReanchorOnContactChange && !sameIDs(g.session.anchorIDs, contacts) {
		Logger().Debug("pinchzoom: contact set changed, re-anchoring",
			slog.Int("id0", contacts[0].ID), slog.Int("id1", contacts[1].ID))
		g.anchor(contacts, current)
		return Update{}, false
	}
	if !g.session.originKnown && !g.measureOrigin() {
		Logger().Warn("pinchzoom: surface not measured, skipping frame")
		return Update{}, false
	}

	u := Update{Viewport: g.solve(contacts[0].Pos(), contacts[1].Pos())}
	g.session.emitted = true
	g.sinks.emit(u)
	return u, true
}

// End handles one or more contacts lifting. remaining is the set of contacts
// still down. When fewer than two remain the gesture ends; if it changed the
// viewport and CommitOnRelease is set, a committed update carrying current is
// returned and pushed to the sinks.
func (g *Interpreter) End(remaining []Contact, current Viewport) (Update, bool) {
	g.session.contacts = copyContacts(g.session.contacts, remaining)
	if len(remaining) >= 2 {
		return Update{}, false
	}

	var (
		u      Update
		commit bool
	)
	if g.session.anchored && g.session.emitted && g.cfg.CommitOnRelease {
		u = Update{Viewport: current.Clamp(g.cfg.MinZoom, g.cfg.MaxZoom), Commit: true}
		commit = true
	}
	if g.session.anchored {
		Logger().Debug("pinchzoom: gesture ended", slog.Bool("commit", commit))
	}
	g.reset(current)
	if commit {
		g.sinks.emit(u)
	}
	return u, commit
}

// Handle routes a host contact event to Begin, Move or End according to
// phase. It is meant for hosts that deliver all touch events through a single
// callback.
func (g *Interpreter) Handle(phase Phase, contacts []Contact, current Viewport) (Update, bool) {
	switch phase {
	case PhaseBegin:
		g.Begin(contacts, current)
	case PhaseMove:
		return g.Move(contacts, current)
	case PhaseEnd:
		return g.End(contacts, current)
	}
	return Update{}, false
}

// Reset drops any gesture in progress without emitting an update and
// snapshots current as the anchor viewport.
func (g *Interpreter) Reset(current Viewport) {
	g.session.contacts = g.session.contacts[:0]
	g.reset(current)
}

func (g *Interpreter) reset(current Viewport) {
	g.session.anchored = false
	g.session.anchorIDs = [2]int{}
	g.session.anchorDistance = 0
	g.session.anchorMidpoint = Vec2{}
	g.session.anchorView = current.Clamp(g.cfg.MinZoom, g.cfg.MaxZoom)
	g.session.originKnown = false
	g.session.emitted = false
}

// anchor records the two-contact reference geometry, the viewport it starts
// from, and the surface origin.
func (g *Interpreter) anchor(contacts []Contact, current Viewport) {
	a, b := contacts[0].Pos(), contacts[1].Pos()
	s := &g.session
	s.anchored = true
	s.anchorIDs = [2]int{contacts[0].ID, contacts[1].ID}
	s.anchorDistance = Distance(a, b)
	s.anchorMidpoint = Midpoint(a, b)
	s.anchorView = current.Clamp(g.cfg.MinZoom, g.cfg.MaxZoom)
	s.originKnown = false
	g.measureOrigin()
	g.anim = nil

	if s.anchorDistance <= g.cfg.MinAnchorDistance {
		Logger().Warn("pinchzoom: coincident contacts at gesture start, zoom locked",
			slog.Float64("distance", s.anchorDistance))
	}
	Logger().Debug("pinchzoom: gesture anchored",
		slog.Float64("distance", s.anchorDistance),
		slog.Float64("midX", s.anchorMidpoint.X),
		slog.Float64("midY", s.anchorMidpoint.Y),
		slog.Float64("zoom", s.anchorView.Zoom))
}

// measureOrigin queries the surface for its origin. Reports whether the
// origin is now known.
func (g *Interpreter) measureOrigin() bool {
	if g.surface == nil {
		g.session.origin = Vec2{}
		g.session.originKnown = true
		return true
	}
	r, ok := g.surface.Bounds()
	if !ok {
		return false
	}
	g.session.origin = r.Origin()
	g.session.originKnown = true
	return true
}

// solve computes the viewport for live contacts a and b against the anchor.
// The document point under the anchor midpoint stays fixed while zoom
// changes; midpoint travel pans the viewport.
func (g *Interpreter) solve(a, b Vec2) Viewport {
	s := &g.session

	scale := 1.0
	if s.anchorDistance > g.cfg.MinAnchorDistance {
		scale = Distance(a, b) / s.anchorDistance
	}
	zoom := ClampZoom(s.anchorView.Zoom*scale, g.cfg.MinZoom, g.cfg.MaxZoom)
	k := zoom / s.anchorView.Zoom

	drag := Midpoint(a, b).Sub(s.anchorMidpoint)
	adjust := s.anchorMidpoint.Sub(s.origin).Scale(1 - k)

	return Viewport{
		PanX: s.anchorView.PanX*k + adjust.X + drag.X,
		PanY: s.anchorView.PanY*k + adjust.Y + drag.Y,
		Zoom: zoom,
	}
}

// sameIDs reports whether contacts carries the anchored ids, in either order.
func sameIDs(ids [2]int, contacts []Contact) bool {
	a, b := contacts[0].ID, contacts[1].ID
	return (a == ids[0] && b == ids[1]) || (a == ids[1] && b == ids[0])
}
