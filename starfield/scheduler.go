package starfield

// FrameQueue defers callbacks to the next display refresh of a host loop.
// The host calls Flush once per display refresh.
type FrameQueue struct {
	pending []func()
	running []func()
}

// RequestFrame queues cb for the next Flush.
func (q *FrameQueue) RequestFrame(cb func()) {
	q.pending = append(q.pending, cb)
}

// Flush runs every callback queued before the flush started.
// Callbacks queued while flushing run on the next Flush.
// Returns the number of callbacks run.
func (q *FrameQueue) Flush() int {
	q.running, q.pending = q.pending, q.running[:0]
	for i, cb := range q.running {
		cb()
		q.running[i] = nil
	}
	return len(q.running)
}

// Pending returns the number of callbacks waiting for the next Flush.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
