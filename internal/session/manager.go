package session

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/aaronzipp/find-the-imposter/internal/errors"
	"github.com/aaronzipp/find-the-imposter/internal/game"
	"github.com/aaronzipp/find-the-imposter/internal/models"
	"github.com/aaronzipp/find-the-imposter/internal/render"
	"github.com/aaronzipp/find-the-imposter/internal/sse"
	"github.com/aaronzipp/find-the-imposter/internal/store"
)

// persistTimeout bounds one snapshot write
const persistTimeout = 2 * time.Second

// Manager is the command and query surface over all rooms. Every command
// runs as one transaction under the room's lock.
type Manager struct {
	store     *store.LobbyStore
	engine    *game.Engine
	persister store.Persister
	now       func() time.Time
	log       zerolog.Logger
}

// Option configures a Manager
type Option func(*Manager)

// WithPersister makes the manager snapshot rooms after every change
func WithPersister(p store.Persister) Option {
	return func(m *Manager) { m.persister = p }
}

// WithClock overrides the clock used for activity tracking and sweeping
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLogger sets the manager's logger
func WithLogger(log zerolog.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// NewManager creates a manager over st using engine for game rules
func NewManager(st *store.LobbyStore, engine *game.Engine, opts ...Option) *Manager {
	m := &Manager{
		store:     st,
		engine:    engine,
		persister: store.NopPersister{},
		now:       engine.Now,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// change describes what a transaction did beyond mutating the aggregate
type change struct {
	quiet   bool   // nothing changed: skip touch, persist and notify
	deleted bool   // the room must be removed
	reason  string // why the room was removed
	kicked  string // player removed by the host
	message *models.Message
}

var errGameNotFound = apperrors.New(apperrors.CodeNotFound, "game not found")

// lookup returns the live lobby for code
func (m *Manager) lookup(code string) (*models.Lobby, error) {
	l, ok := m.store.Get(code)
	if !ok {
		return nil, errGameNotFound
	}
	return l, nil
}

// mutate runs fn as an atomic transaction against one room, then persists
// and notifies subscribers. Payloads are rendered under the lock and sent
// after it is released.
func (m *Manager) mutate(ctx context.Context, code string, fn func(l *models.Lobby) (change, error)) error {
	l, err := m.lookup(code)
	if err != nil {
		return err
	}

	l.Lock()
	if l.Closed() {
		l.Unlock()
		return errGameNotFound
	}
	ch, err := fn(l)
	if err != nil || ch.quiet {
		l.Unlock()
		return err
	}

	var deliveries []sse.Delivery
	if ch.deleted {
		deliveries = m.closeLocked(ctx, l, ch.reason)
	} else {
		l.Room.LastActivityAt = m.now()
		m.save(ctx, l)
		deliveries = m.updatesLocked(l, ch)
	}
	l.Unlock()

	sse.Send(deliveries)
	return nil
}

// read runs fn under the room's read lock
func (m *Manager) read(code string, fn func(l *models.Lobby)) error {
	l, err := m.lookup(code)
	if err != nil {
		return err
	}
	l.RLock()
	defer l.RUnlock()
	if l.Closed() {
		return errGameNotFound
	}
	fn(l)
	return nil
}

// updatesLocked renders what each subscriber should hear about ch
func (m *Manager) updatesLocked(l *models.Lobby, ch change) []sse.Delivery {
	var out []sse.Delivery
	if ch.kicked != "" {
		out = append(out, sse.To(l, ch.kicked, sse.EventKicked, render.JSON(map[string]string{"code": l.Room.Code}))...)
	}
	if ch.message != nil {
		data := render.JSON(ch.message)
		out = append(out, sse.Personalize(l, sse.EventMessage, func(pid string) (string, bool) {
			p, _ := l.Player(pid)
			return data, p != nil
		})...)
		return out
	}
	out = append(out, sse.Personalize(l, sse.EventRoomUpdate, func(pid string) (string, bool) {
		if pid == ch.kicked {
			return "", false
		}
		return render.RoomUpdate(l, pid), true
	})...)
	return out
}

// closeLocked removes the room from the store and the persister and tells
// every subscriber (must be called with write lock held)
func (m *Manager) closeLocked(ctx context.Context, l *models.Lobby, reason string) []sse.Delivery {
	code := l.Room.Code
	l.MarkClosed()
	m.store.Delete(code)
	m.forget(ctx, code)
	m.log.Info().Str("room", code).Str("reason", reason).Msg("room closed")

	data := render.JSON(map[string]string{"code": code, "reason": reason})
	return sse.Personalize(l, sse.EventRoomClosed, func(string) (string, bool) { return data, true })
}

func (m *Manager) save(ctx context.Context, l *models.Lobby) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	if err := m.persister.Save(ctx, l.Snapshot()); err != nil {
		m.log.Error().Err(err).Str("room", l.Room.Code).Msg("failed to persist room")
	}
}

func (m *Manager) forget(ctx context.Context, code string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	if err := m.persister.Delete(ctx, code); err != nil {
		m.log.Error().Err(err).Str("room", code).Msg("failed to delete persisted room")
	}
}

// Restore loads persisted rooms into the store and returns how many were
// loaded
func (m *Manager) Restore(ctx context.Context) (int, error) {
	snaps, err := m.persister.LoadAll(ctx)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeInternal, "restoring rooms", err)
	}
	n := 0
	for _, snap := range snaps {
		if snap.Room.Code == "" || len(snap.Players) == 0 {
			m.log.Warn().Str("room", snap.Room.Code).Msg("skipping unusable snapshot")
			continue
		}
		m.store.Insert(models.LobbyFromSnapshot(snap))
		n++
	}
	return n, nil
}

// Close releases the persister
func (m *Manager) Close() error {
	return m.persister.Close()
}
