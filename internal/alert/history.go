package alert

import (
	"sync"

	alertdomain "github.com/hydrowatch/hydrowatch/internal/alert/domain"
)

// History is the monitor's own append-only alert log. It is kept separate
// from the Center on purpose: the Center feeds alert listings while History
// records everything the detector raised.
type History struct {
	mu     sync.Mutex
	alerts []alertdomain.Alert
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Append(a alertdomain.Alert) {
	h.mu.Lock()
	h.alerts = append(h.alerts, a)
	h.mu.Unlock()
}

// Snapshot returns an independent copy in insertion order.
func (h *History) Snapshot() []alertdomain.Alert {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]alertdomain.Alert, len(h.alerts))
	copy(out, h.alerts)
	return out
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.alerts)
}
