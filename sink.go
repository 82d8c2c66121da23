package pinchzoom

// Sink receives viewport update requests. The sink owns the viewport and may
// further constrain it (for example bounding pan to the document extents);
// the interpreter reads the result back through the current viewport passed
// to its next callback.
type Sink interface {
	ApplyViewport(Update)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Update)

// ApplyViewport calls f(u).
func (f SinkFunc) ApplyViewport(u Update) { f(u) }

type sinkEntry struct {
	id   uint32
	sink Sink
}

type sinkRegistry struct {
	entries []sinkEntry
	nextID  uint32
}

func (r *sinkRegistry) add(s Sink) uint32 {
	r.nextID++
	r.entries = append(r.entries, sinkEntry{id: r.nextID, sink: s})
	return r.nextID
}

func (r *sinkRegistry) remove(id uint32) {
	for i := range r.entries {
		if r.entries[i].id == id {
			copy(r.entries[i:], r.entries[i+1:])
			r.entries[len(r.entries)-1] = sinkEntry{}
			r.entries = r.entries[:len(r.entries)-1]
			return
		}
	}
}

func (r *sinkRegistry) emit(u Update) {
	for _, e := range r.entries {
		e.sink.ApplyViewport(u)
	}
}

// CallbackHandle allows removing a registered sink.
type CallbackHandle struct {
	id  uint32
	reg *sinkRegistry
}

// Remove unregisters the sink so it no longer receives updates.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.id)
}

// AddSink registers s to receive every update the interpreter produces, in
// registration order.
func (g *Interpreter) AddSink(s Sink) CallbackHandle {
	return CallbackHandle{id: g.sinks.add(s), reg: &g.sinks}
}

// OnUpdate registers fn to receive every update the interpreter produces.
func (g *Interpreter) OnUpdate(fn func(Update)) CallbackHandle {
	return g.AddSink(SinkFunc(fn))
}
