package models

import "time"

// Room is the game record for one room code
type Room struct {
	Code               string     `json:"code"`
	HostID             string     `json:"hostId"`
	Status             GameStatus `json:"status"`
	Mode               GameMode   `json:"mode"`
	Visibility         Visibility `json:"visibility,omitempty"`
	Word               string     `json:"word"`
	Category           Category   `json:"category"`
	CategoryPreference Category   `json:"categoryPreference"`
	UsedWords          []string   `json:"usedWords"`
	ImposterIDs        []string   `json:"imposterIds"`
	ImposterCount      int        `json:"imposterCount"` // preferred count, clamped at start
	CreatedAt          time.Time  `json:"createdAt"`
	LastActivityAt     time.Time  `json:"lastActivityAt"`

	// Online rounds
	CurrentRound        int      `json:"currentRound"`
	TurnOrder           []string `json:"turnOrder,omitempty"`
	CurrentTurnPlayerID string   `json:"currentTurnPlayerId,omitempty"`
	VotedOutPlayerID    string   `json:"votedOutPlayerId,omitempty"`
	ImposterGuess       string   `json:"imposterGuess,omitempty"`
	GameWinner          Winner   `json:"gameWinner,omitempty"`
}

// IsImposter reports whether playerID was assigned the imposter role
func (r *Room) IsImposter(playerID string) bool {
	for _, id := range r.ImposterIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with r
func (r Room) Clone() Room {
	r.UsedWords = cloneStrings(r.UsedWords)
	r.ImposterIDs = cloneStrings(r.ImposterIDs)
	r.TurnOrder = cloneStrings(r.TurnOrder)
	return r
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
