package render

import (
	"encoding/json"
	"time"

	"github.com/aaronzipp/find-the-imposter/internal/game"
	"github.com/aaronzipp/find-the-imposter/internal/models"
)

// GameView is the room record as any client may see it. The secret word,
// the word history and the imposter list stay hidden until results.
type GameView struct {
	Code                string            `json:"code"`
	HostID              string            `json:"hostId"`
	Status              models.GameStatus `json:"status"`
	Mode                models.GameMode   `json:"mode"`
	Visibility          models.Visibility `json:"visibility,omitempty"`
	Category            models.Category   `json:"category,omitempty"`
	CategoryPreference  models.Category   `json:"categoryPreference"`
	ImposterCount       int               `json:"imposterCount"`
	CreatedAt           time.Time         `json:"createdAt"`
	LastActivityAt      time.Time         `json:"lastActivityAt"`
	CurrentRound        int               `json:"currentRound"`
	TurnOrder           []string          `json:"turnOrder,omitempty"`
	CurrentTurnPlayerID string            `json:"currentTurnPlayerId,omitempty"`
	VotedOutPlayerID    string            `json:"votedOutPlayerId,omitempty"`
	ImposterGuess       string            `json:"imposterGuess,omitempty"`
	GameWinner          models.Winner     `json:"gameWinner,omitempty"`

	Word        string   `json:"word,omitempty"`
	ImposterIDs []string `json:"imposterIds,omitempty"`
}

// Game projects a room record into its public view
func Game(room models.Room) GameView {
	v := GameView{
		Code:                room.Code,
		HostID:              room.HostID,
		Status:              room.Status,
		Mode:                room.Mode,
		Visibility:          room.Visibility,
		CategoryPreference:  room.CategoryPreference,
		ImposterCount:       room.ImposterCount,
		CreatedAt:           room.CreatedAt,
		LastActivityAt:      room.LastActivityAt,
		CurrentRound:        room.CurrentRound,
		TurnOrder:           append([]string(nil), room.TurnOrder...),
		CurrentTurnPlayerID: room.CurrentTurnPlayerID,
		VotedOutPlayerID:    room.VotedOutPlayerID,
		ImposterGuess:       room.ImposterGuess,
		GameWinner:          room.GameWinner,
	}
	if !room.Status.IsPreGame() {
		v.Category = room.Category
	}
	if room.Status == models.StatusResults {
		v.Word = room.Word
		v.ImposterIDs = append([]string(nil), room.ImposterIDs...)
	}
	return v
}

// Progress is an "n of total" counter
type Progress struct {
	Count int `json:"count"`
	Total int `json:"total"`
}

// PlayerView is the personalised state pushed to one subscriber
type PlayerView struct {
	Game    GameView                    `json:"game"`
	Players []models.Player             `json:"players"`
	You     *models.PlayerWord          `json:"you"`
	Clues   []models.ClueEntry          `json:"clues"`
	Ready   Progress                    `json:"ready"`
	Voted   Progress                    `json:"voted"`
	Options models.ImposterCountOptions `json:"imposterOptions"`
}

// Room builds playerID's view of the lobby (must be called with lock held)
func Room(l *models.Lobby, playerID string) PlayerView {
	v := PlayerView{
		Game:    Game(l.Room),
		Players: Players(l),
		You:     game.PlayerWord(l, playerID),
		Clues:   append([]models.ClueEntry{}, l.Clues...),
		Options: game.ImposterCountOptions(l),
	}
	total := l.PlayerCount()
	v.Ready.Total, v.Voted.Total = total, total
	for _, p := range l.Players {
		if p.IsReady {
			v.Ready.Count++
		}
		if p.HasVoted {
			v.Voted.Count++
		}
	}
	return v
}

// Players copies the roster in join order (must be called with lock held)
func Players(l *models.Lobby) []models.Player {
	list := make([]models.Player, len(l.Players))
	for i, p := range l.Players {
		list[i] = *p
	}
	return list
}

// RoomUpdate renders playerID's view as a JSON event payload (must be called
// with lock held)
func RoomUpdate(l *models.Lobby, playerID string) string {
	return JSON(Room(l, playerID))
}

// JSON marshals v for an event payload. Views contain only plain data, so a
// marshal failure yields an empty object.
func JSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}
