package models

import "sync"

// Lobby is the aggregate for one room: the room record, its roster and its
// ledgers. All access goes through the lobby lock.
type Lobby struct {
	Room     Room
	Players  []*Player // join order
	Clues    []ClueEntry
	Votes    []Vote
	Messages []Message

	mu         sync.RWMutex
	closed     bool
	sseClients map[chan SSEMessage]string // channel -> playerID
}

// SSEMessage represents a message pushed to a subscriber
type SSEMessage struct {
	Event string // Event type (e.g., "room-update", "room-closed")
	Data  string // JSON payload
}

// NewLobby creates an empty aggregate around room
func NewLobby(room Room) *Lobby {
	return &Lobby{Room: room}
}

// Lock acquires the lobby's write lock
func (l *Lobby) Lock() {
	l.mu.Lock()
}

// Unlock releases the lobby's write lock
func (l *Lobby) Unlock() {
	l.mu.Unlock()
}

// RLock acquires the lobby's read lock
func (l *Lobby) RLock() {
	l.mu.RLock()
}

// RUnlock releases the lobby's read lock
func (l *Lobby) RUnlock() {
	l.mu.RUnlock()
}

// Closed reports whether the lobby was deleted (must be called with lock held)
func (l *Lobby) Closed() bool {
	return l.closed
}

// MarkClosed flags the lobby as deleted so late callers holding a pointer
// observe it as gone (must be called with write lock held)
func (l *Lobby) MarkClosed() {
	l.closed = true
}

// Player returns the player with id and its roster index, or nil and -1
func (l *Lobby) Player(id string) (*Player, int) {
	for i, p := range l.Players {
		if p.PlayerID == id {
			return p, i
		}
	}
	return nil, -1
}

// PlayerCount returns the number of players in the room
func (l *Lobby) PlayerCount() int {
	return len(l.Players)
}

// AllPlayers reports whether every player satisfies pred. An empty roster
// yields true.
func (l *Lobby) AllPlayers(pred func(*Player) bool) bool {
	for _, p := range l.Players {
		if !pred(p) {
			return false
		}
	}
	return true
}

// GetSSEClients returns a copy of the subscriber map (must be called with lock held)
func (l *Lobby) GetSSEClients() map[chan SSEMessage]string {
	clients := make(map[chan SSEMessage]string, len(l.sseClients))
	for k, v := range l.sseClients {
		clients[k] = v
	}
	return clients
}

// AddSSEClient adds a new subscriber to the lobby
func (l *Lobby) AddSSEClient(client chan SSEMessage, playerID string) {
	if l.sseClients == nil {
		l.sseClients = make(map[chan SSEMessage]string)
	}
	l.sseClients[client] = playerID
}

// RemoveSSEClient removes a subscriber from the lobby
func (l *Lobby) RemoveSSEClient(client chan SSEMessage) {
	delete(l.sseClients, client)
}

// SSEClientCount returns the number of connected subscribers
func (l *Lobby) SSEClientCount() int {
	return len(l.sseClients)
}
