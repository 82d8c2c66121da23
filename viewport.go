package pinchzoom

import "github.com/hajimehoshi/ebiten/v2"

// Viewport is the pan offset and zoom factor mapping document coordinates to
// screen coordinates relative to the surface origin:
//
//	screen = doc*Zoom + Pan
//
// Pan is in screen pixels and is not clamped here; Zoom stays within
// [MinZoom, MaxZoom] for every viewport the interpreter produces.
type Viewport struct {
	PanX, PanY float64
	Zoom       float64
}

// IdentityViewport is the viewport with no pan and a zoom of 1.
var IdentityViewport = Viewport{Zoom: 1}

// Clamp returns v with Zoom restricted to [lo, hi].
func (v Viewport) Clamp(lo, hi float64) Viewport {
	v.Zoom = ClampZoom(v.Zoom, lo, hi)
	return v
}

// Matrix returns the document-to-surface affine matrix [a, b, c, d, tx, ty].
func (v Viewport) Matrix() [6]float64 {
	return [6]float64{v.Zoom, 0, 0, v.Zoom, v.PanX, v.PanY}
}

// DocumentToScreen converts document coordinates to surface-local coordinates.
func (v Viewport) DocumentToScreen(dx, dy float64) (sx, sy float64) {
	return applyMatrix(v.Matrix(), dx, dy)
}

// ScreenToDocument converts surface-local coordinates to document coordinates.
// A zero zoom yields the untransformed point.
func (v Viewport) ScreenToDocument(sx, sy float64) (dx, dy float64) {
	if v.Zoom == 0 {
		return sx, sy
	}
	return (sx - v.PanX) / v.Zoom, (sy - v.PanY) / v.Zoom
}

// GeoM returns the viewport as an ebiten.GeoM, followed by a translation to
// the surface origin, ready for drawing the document layer.
func (v Viewport) GeoM(origin Vec2) ebiten.GeoM {
	m := compose([6]float64{1, 0, 0, 1, origin.X, origin.Y}, v.Matrix())
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
