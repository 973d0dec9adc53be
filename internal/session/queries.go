package session

import (
	"sort"

	apperrors "github.com/aaronzipp/find-the-imposter/internal/errors"
	"github.com/aaronzipp/find-the-imposter/internal/game"
	"github.com/aaronzipp/find-the-imposter/internal/models"
	"github.com/aaronzipp/find-the-imposter/internal/render"
	"github.com/aaronzipp/find-the-imposter/internal/sse"
)

// GetGame returns a copy of the room record
func (m *Manager) GetGame(code string) (models.Room, error) {
	var room models.Room
	err := m.read(code, func(l *models.Lobby) { room = l.Room.Clone() })
	return room, err
}

// GetPlayers returns the roster in join order
func (m *Manager) GetPlayers(code string) ([]models.Player, error) {
	var players []models.Player
	err := m.read(code, func(l *models.Lobby) { players = render.Players(l) })
	return players, err
}

// GetPlayerWord returns what playerID may see of the secret. The result is
// nil outside play statuses.
func (m *Manager) GetPlayerWord(code, playerID string) (*models.PlayerWord, error) {
	var word *models.PlayerWord
	err := m.read(code, func(l *models.Lobby) { word = game.PlayerWord(l, playerID) })
	return word, err
}

// GetImposterCountOptions returns the valid imposter range for the roster
func (m *Manager) GetImposterCountOptions(code string) (models.ImposterCountOptions, error) {
	var opts models.ImposterCountOptions
	err := m.read(code, func(l *models.Lobby) { opts = game.ImposterCountOptions(l) })
	return opts, err
}

// GetChatMessages returns the clue ledger of the current game
func (m *Manager) GetChatMessages(code string) ([]models.ClueEntry, error) {
	var clues []models.ClueEntry
	err := m.read(code, func(l *models.Lobby) { clues = append([]models.ClueEntry{}, l.Clues...) })
	return clues, err
}

// GetVotes returns the ballots cast in the current voting phase
func (m *Manager) GetVotes(code string) ([]models.Vote, error) {
	var votes []models.Vote
	err := m.read(code, func(l *models.Lobby) { votes = append([]models.Vote{}, l.Votes...) })
	return votes, err
}

// GetMessages returns the lobby chat history, oldest first
func (m *Manager) GetMessages(code string) ([]models.Message, error) {
	var msgs []models.Message
	err := m.read(code, func(l *models.Lobby) { msgs = append([]models.Message{}, l.Messages...) })
	return msgs, err
}

// PublicGame is one entry of the public lobby list
type PublicGame struct {
	Room        models.Room
	HostName    string
	PlayerCount int
}

// GetPublicGames lists joinable public online lobbies, newest first
func (m *Manager) GetPublicGames() []PublicGame {
	var games []PublicGame
	for _, l := range m.store.List() {
		l.RLock()
		if !l.Closed() && game.IsListedPublicly(l) {
			entry := PublicGame{Room: l.Room.Clone(), PlayerCount: l.PlayerCount()}
			if host, _ := l.Player(l.Room.HostID); host != nil {
				entry.HostName = host.PlayerName
			}
			games = append(games, entry)
		}
		l.RUnlock()
	}
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Room.CreatedAt.After(games[j].Room.CreatedAt)
	})
	return games
}

// View returns playerID's personalised room state
func (m *Manager) View(code, playerID string) (render.PlayerView, error) {
	var view render.PlayerView
	err := m.read(code, func(l *models.Lobby) { view = render.Room(l, playerID) })
	return view, err
}

// Subscription is a live feed of one player's room events
type Subscription struct {
	Events  <-chan models.SSEMessage
	Initial string // room-update payload at subscribe time
	cancel  func()
}

// Close detaches the subscription from the room
func (s *Subscription) Close() {
	s.cancel()
}

// Subscribe registers a feed for a room member. The channel is never closed;
// readers stop after a room-closed or kicked event or when they go away.
func (m *Manager) Subscribe(code, playerID string) (*Subscription, error) {
	l, err := m.lookup(code)
	if err != nil {
		return nil, err
	}

	ch := make(chan models.SSEMessage, game.SSEBufferSize)
	sse.AddClient(l, ch, playerID)

	l.RLock()
	closed := l.Closed()
	p, _ := l.Player(playerID)
	var initial string
	if !closed && p != nil {
		initial = render.RoomUpdate(l, playerID)
	}
	l.RUnlock()

	if closed || p == nil {
		sse.RemoveClient(l, ch)
		if closed {
			return nil, errGameNotFound
		}
		return nil, apperrors.New(apperrors.CodeForbidden, "not a member of this game")
	}
	return &Subscription{
		Events:  ch,
		Initial: initial,
		cancel:  func() { sse.RemoveClient(l, ch) },
	}, nil
}
