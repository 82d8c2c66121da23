package pinchzoom

// InjectFrame queues a synthetic frame holding exactly contacts. Queued frames
// are consumed one per Update in place of the touch source. After the queue
// drains the last injected frame is held, so synthetic contacts stay down
// until InjectRelease.
func (t *TouchTracker) InjectFrame(contacts []Contact) {
	t.injectQueue = append(t.injectQueue, copyContacts(nil, contacts))
}

// InjectRelease queues a frame with no contacts, lifting every synthetic
// contact. Once consumed the tracker returns to polling its touch source.
func (t *TouchTracker) InjectRelease() {
	t.injectQueue = append(t.injectQueue, []Contact{})
}

// InjectPinch queues a two-contact gesture: the contacts touch down at from,
// move linearly over frames-2 intermediate frames, and arrive at to. The
// contacts stay down afterwards. Contact ids are idA and idB. Minimum frames
// is 2.
func (t *TouchTracker) InjectPinch(idA, idB int, from, to [2]Vec2, frames int) {
	if frames < 2 {
		frames = 2
	}
	steps := frames - 1
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		a := lerp(from[0], to[0], f)
		b := lerp(from[1], to[1], f)
		t.InjectFrame([]Contact{{ID: idA, X: a.X, Y: a.Y}, {ID: idB, X: b.X, Y: b.Y}})
	}
}

// Injecting reports whether synthetic input is queued or being held.
func (t *TouchTracker) Injecting() bool {
	return len(t.injectQueue) > 0 || t.synthetic
}

// nextInjected pops the next synthetic frame, or repeats the held one.
func (t *TouchTracker) nextInjected() ([]Contact, bool) {
	if len(t.injectQueue) == 0 {
		if t.synthetic {
			return t.lastInject, true
		}
		return nil, false
	}
	frame := t.injectQueue[0]
	copy(t.injectQueue, t.injectQueue[1:])
	t.injectQueue[len(t.injectQueue)-1] = nil
	t.injectQueue = t.injectQueue[:len(t.injectQueue)-1]

	t.lastInject = frame
	t.synthetic = len(frame) > 0
	return frame, true
}

func lerp(a, b Vec2, f float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*f, a.Y + (b.Y-a.Y)*f}
}
