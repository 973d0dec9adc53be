package store

import (
	"sort"
	"sync"

	apperrors "github.com/aaronzipp/find-the-imposter/internal/errors"
	"github.com/aaronzipp/find-the-imposter/internal/game"
	"github.com/aaronzipp/find-the-imposter/internal/models"
)

// maxCodeAttempts bounds how many collisions Create tolerates before giving up
const maxCodeAttempts = 100

// LobbyStore manages lobby storage keyed by room code
type LobbyStore struct {
	lobbies  map[string]*models.Lobby
	mu       sync.RWMutex
	generate func() string
}

// NewLobbyStore creates a new lobby store. generate may be nil, in which case
// random room codes are used.
func NewLobbyStore(generate func() string) *LobbyStore {
	if generate == nil {
		generate = game.GenerateRoomCode
	}
	return &LobbyStore{
		lobbies:  make(map[string]*models.Lobby),
		generate: generate,
	}
}

// Get retrieves a lobby by code. Lookup is case-insensitive.
func (s *LobbyStore) Get(code string) (*models.Lobby, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lobby, exists := s.lobbies[game.NormalizeCode(code)]
	return lobby, exists
}

// Create reserves a fresh code and stores the lobby built for it. The code
// check and the insert happen under one lock, so two creators never share a
// code.
func (s *LobbyStore) Create(build func(code string) *models.Lobby) (*models.Lobby, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for range maxCodeAttempts {
		code := game.NormalizeCode(s.generate())
		if _, taken := s.lobbies[code]; taken {
			continue
		}
		lobby := build(code)
		s.lobbies[code] = lobby
		return lobby, nil
	}
	return nil, apperrors.New(apperrors.CodeInternal, "could not allocate a unique room code")
}

// Insert stores a lobby under its own code, replacing any previous entry
func (s *LobbyStore) Insert(lobby *models.Lobby) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lobbies[game.NormalizeCode(lobby.Room.Code)] = lobby
}

// Delete removes a lobby
func (s *LobbyStore) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lobbies, game.NormalizeCode(code))
}

// List returns every stored lobby ordered by code
func (s *LobbyStore) List() []*models.Lobby {
	s.mu.RLock()
	codes := make([]string, 0, len(s.lobbies))
	for code := range s.lobbies {
		codes = append(codes, code)
	}
	list := make([]*models.Lobby, 0, len(codes))
	sort.Strings(codes)
	for _, code := range codes {
		list = append(list, s.lobbies[code])
	}
	s.mu.RUnlock()
	return list
}

// Len returns the number of stored lobbies
func (s *LobbyStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lobbies)
}
