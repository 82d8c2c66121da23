// Package pinchzoom is the touch-input layer of a 2D canvas editor built on
// [Ebitengine]. It turns the raw stream of simultaneous touch contacts into
// pan/zoom viewport updates.
//
// Two contacts pinch to zoom around their midpoint and drag together to pan.
// The document point under the midpoint at the start of the gesture stays
// under the fingers while the zoom changes, and changing the number of
// fingers never makes the view jump.
//
// # Quick start
//
// [TouchTracker] polls ebiten once per frame and drives an [Interpreter],
// which pushes [Update] values to your document model:
//
//	doc := &Document{View: pinchzoom.IdentityViewport}
//	interp := pinchzoom.NewInterpreter(pinchzoom.StaticSurface(canvasRect), pinchzoom.DefaultConfig())
//	interp.OnUpdate(func(u pinchzoom.Update) {
//		doc.View = u.Viewport
//		if u.Commit {
//			doc.RecordHistory()
//		}
//	})
//	tracker := pinchzoom.NewTouchTracker(interp, nil)
//
//	func (g *Game) Update() error {
//		g.tracker.Update(g.doc.View)
//		return nil
//	}
//
// Draw the document layer through [Viewport.GeoM].
//
// # Hosts without ebiten
//
// Hosts with their own event system call [Interpreter.Begin],
// [Interpreter.Move] and [Interpreter.End] directly, passing the full set of
// active contacts each time.
//
// # Updates and history
//
// Updates emitted while fingers move have Commit set to false and should not
// be recorded as undo steps. When a pinch ends the interpreter emits one
// committed update (see [Config.CommitOnRelease]).
//
// The ecs sub-package stores the viewport in a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package pinchzoom
