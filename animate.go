package pinchzoom

import (
	"log/slog"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// viewportAnim holds the active tweens of an AnimateTo call.
type viewportAnim struct {
	to    Viewport
	panX  *gween.Tween
	panY  *gween.Tween
	zoom  *gween.Tween
	doneX bool
	doneY bool
	doneZ bool
}

// AnimateTo starts moving the viewport from from to to over duration seconds.
// Each Tick emits a transient update; the final Tick emits a committed update
// carrying to exactly. A two-contact gesture starting mid-animation cancels
// it. A nil easeFn uses ease.OutCubic.
func (g *Interpreter) AnimateTo(from, to Viewport, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.OutCubic
	}
	from = from.Clamp(g.cfg.MinZoom, g.cfg.MaxZoom)
	to = to.Clamp(g.cfg.MinZoom, g.cfg.MaxZoom)
	g.anim = &viewportAnim{
		to:   to,
		panX: gween.New(float32(from.PanX), float32(to.PanX), duration, easeFn),
		panY: gween.New(float32(from.PanY), float32(to.PanY), duration, easeFn),
		zoom: gween.New(float32(from.Zoom), float32(to.Zoom), duration, easeFn),
	}
	Logger().Debug("pinchzoom: viewport animation started",
		slog.Float64("zoom", to.Zoom), slog.Float64("duration", float64(duration)))
}

// Animating reports whether an AnimateTo call is still in progress.
func (g *Interpreter) Animating() bool {
	return g.anim != nil
}

// Tick advances a running viewport animation by dt seconds and pushes the
// resulting update to the sinks. It returns false when nothing is animating.
func (g *Interpreter) Tick(dt float32) (Update, bool) {
	a := g.anim
	if a == nil {
		return Update{}, false
	}

	var v Viewport
	var val float32
	val, a.doneX = a.panX.Update(dt)
	v.PanX = float64(val)
	val, a.doneY = a.panY.Update(dt)
	v.PanY = float64(val)
	val, a.doneZ = a.zoom.Update(dt)
	v.Zoom = ClampZoom(float64(val), g.cfg.MinZoom, g.cfg.MaxZoom)

	u := Update{Viewport: v}
	if a.doneX && a.doneY && a.doneZ {
		u = Update{Viewport: a.to, Commit: true}
		g.anim = nil
	}
	g.sinks.emit(u)
	return u, true
}
