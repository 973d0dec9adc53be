package models

import "time"

// Player represents a player in a room
type Player struct {
	GameCode         string    `json:"gameCode"`
	PlayerID         string    `json:"playerId"`
	PlayerName       string    `json:"playerName"`
	IsHost           bool      `json:"isHost"`
	IsReady          bool      `json:"isReady"`
	HasSubmittedWord bool      `json:"hasSubmittedWord"`
	HasVoted         bool      `json:"hasVoted"`
	JoinedAt         time.Time `json:"joinedAt"`
}

// PlayerWord is what a single player is allowed to see of the secret
type PlayerWord struct {
	Category   Category `json:"category"`
	Word       *string  `json:"word"` // nil for imposters
	IsImposter bool     `json:"isImposter"`
}

// ImposterCountOptions bounds the imposter count setting for the current roster
type ImposterCountOptions struct {
	Min         int `json:"min"`
	Max         int `json:"max"`
	PlayerCount int `json:"playerCount"`
}
