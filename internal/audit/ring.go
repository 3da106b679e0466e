package audit

// #region imports
import "sync"

// #endregion

// #region sizes

const (
	// DefaultCapacity is how many logs the ring keeps before trimming.
	DefaultCapacity = 100
	// DefaultExposed is how many Recent returns when asked for <= 0.
	DefaultExposed = 20
)

// #endregion sizes

// #region ring-log

// RingLog is a bounded, append-only decision log owned by the host process
// and injected into the engine. Appends are serialized by one mutex; the
// buffer trims from the front. Cross-request ordering carries no meaning.
type RingLog struct {
	mu      sync.Mutex
	entries []DecisionLog
	cap     int
}

// NewRingLog creates a ring with the given capacity (DefaultCapacity if <= 0).
func NewRingLog(capacity int) *RingLog {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &RingLog{cap: capacity}
}

// Append adds one decision log, dropping the oldest entry past capacity.
func (r *RingLog) Append(entry DecisionLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	if len(r.entries) > r.cap {
		r.entries = r.entries[len(r.entries)-r.cap:]
	}
}

// Recent returns up to n most recent logs, newest first. n <= 0 uses
// DefaultExposed. For operator debugging, not the end-user response.
func (r *RingLog) Recent(n int) []DecisionLog {
	if n <= 0 {
		n = DefaultExposed
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if n > len(r.entries) {
		n = len(r.entries)
	}
	out := make([]DecisionLog, n)
	for i := 0; i < n; i++ {
		out[i] = r.entries[len(r.entries)-1-i]
	}
	return out
}

// Len reports how many logs are currently buffered.
func (r *RingLog) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// #endregion ring-log
