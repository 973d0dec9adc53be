package session

import (
	"context"
	"time"

	"github.com/aaronzipp/find-the-imposter/internal/render"
	"github.com/aaronzipp/find-the-imposter/internal/sse"
)

// Sweep deletes rooms idle for longer than ttl and returns how many it
// removed. Each room is checked under its own lock so an in-flight command
// either lands before the check or finds the room gone.
func (m *Manager) Sweep(ctx context.Context, ttl time.Duration) int {
	cutoff := m.now().Add(-ttl)
	removed := 0
	for _, l := range m.store.List() {
		l.Lock()
		if l.Closed() || !l.Room.LastActivityAt.Before(cutoff) {
			l.Unlock()
			continue
		}
		deliveries := m.closeLocked(ctx, l, "idle")
		l.Unlock()

		sse.Send(deliveries)
		removed++
	}
	return removed
}

// RunCleanup sweeps every interval until ctx is done
func (m *Manager) RunCleanup(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(ctx, ttl); n > 0 {
				m.log.Info().Int("removed", n).Int("remaining", m.store.Len()).Msg("idle rooms cleaned up")
			}
		}
	}
}

// Disconnect tells every subscriber the server is going away so streaming
// handlers return before the HTTP server drains. Rooms stay in the store and
// the persister.
func (m *Manager) Disconnect() int {
	data := render.JSON(map[string]string{"reason": "server shutting down"})
	sent := 0
	for _, l := range m.store.List() {
		sent += sse.Broadcast(l, sse.EventShutdown, data)
	}
	return sent
}
