package ledger

import "sync/atomic"

// DefaultSeed is the first account number handed out by a fresh registry.
const DefaultSeed int64 = 100001

// Registry issues account numbers. One registry is created at startup and
// passed to everything that opens accounts.
type Registry struct {
	next atomic.Int64
}

func NewRegistry(seed int64) *Registry {
	r := &Registry{}
	r.next.Store(seed)
	return r
}

// NextID returns the current counter value and advances it.
func (r *Registry) NextID() int64 {
	return r.next.Add(1) - 1
}

// Peek returns the id the next call to NextID will hand out.
func (r *Registry) Peek() int64 {
	return r.next.Load()
}
