package models

import "time"

// ClueEntry is one clue word submitted during a round
type ClueEntry struct {
	ID         string    `json:"id"`
	GameCode   string    `json:"gameCode"`
	PlayerID   string    `json:"playerId"`
	PlayerName string    `json:"playerName"`
	Word       string    `json:"word"`
	Round      int       `json:"round"`
	Timestamp  time.Time `json:"timestamp"`
}

// Vote is one ballot cast during the voting phase
type Vote struct {
	ID                 string    `json:"id"`
	GameCode           string    `json:"gameCode"`
	VoterID            string    `json:"voterId"`
	VoterName          string    `json:"voterName"`
	VotedForPlayerID   string    `json:"votedForPlayerId"`
	VotedForPlayerName string    `json:"votedForPlayerName"`
	Timestamp          time.Time `json:"timestamp"`
}

// Message is a free-form lobby chat line
type Message struct {
	ID         string    `json:"id"`
	GameCode   string    `json:"gameCode"`
	PlayerID   string    `json:"playerId"`
	PlayerName string    `json:"playerName"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}
