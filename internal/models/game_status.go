package models

import "strconv"

// GameStatus represents the current state of the game
type GameStatus string

const (
	// In-person family: waiting -> playing -> waiting
	StatusWaiting GameStatus = "waiting"
	StatusPlaying GameStatus = "playing"

	// Online family: lobby -> round-N -> voting -> imposter-guess? -> results -> lobby
	StatusLobby         GameStatus = "lobby"
	StatusRound1        GameStatus = "round-1"
	StatusRound2        GameStatus = "round-2"
	StatusRound3        GameStatus = "round-3"
	StatusVoting        GameStatus = "voting"
	StatusImposterGuess GameStatus = "imposter-guess"
	StatusResults       GameStatus = "results"
)

// RoundStatus returns the status for clue round n (1-based)
func RoundStatus(n int) GameStatus {
	return GameStatus("round-" + strconv.Itoa(n))
}

// IsPreGame reports whether players may still join and configure the room
func (s GameStatus) IsPreGame() bool {
	return s == StatusWaiting || s == StatusLobby
}

// IsRound reports whether clue words are being collected
func (s GameStatus) IsRound() bool {
	return s == StatusRound1 || s == StatusRound2 || s == StatusRound3
}

// IsPlay reports whether the secret word is in play
func (s GameStatus) IsPlay() bool {
	return s == StatusPlaying || s.IsRound()
}

// GameMode selects which status family a room runs
type GameMode string

const (
	ModeInPerson GameMode = "in-person"
	ModeOnline   GameMode = "online"
)

// Valid reports whether m is a known mode
func (m GameMode) Valid() bool {
	return m == ModeInPerson || m == ModeOnline
}

// Visibility controls whether an online room is listed publicly
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Valid reports whether v is a known visibility
func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// Winner names the side that won a finished online game
type Winner string

const (
	WinnerNone      Winner = ""
	WinnerImposters Winner = "imposters"
	WinnerPlayers   Winner = "players"
)
