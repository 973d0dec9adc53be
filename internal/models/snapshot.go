package models

// Snapshot is the persisted form of a Lobby
type Snapshot struct {
	Room     Room        `json:"room"`
	Players  []Player    `json:"players"`
	Clues    []ClueEntry `json:"clues"`
	Votes    []Vote      `json:"votes"`
	Messages []Message   `json:"messages"`
}

// Snapshot copies the aggregate state (must be called with lock held)
func (l *Lobby) Snapshot() Snapshot {
	s := Snapshot{
		Room:     l.Room.Clone(),
		Players:  make([]Player, len(l.Players)),
		Clues:    append([]ClueEntry(nil), l.Clues...),
		Votes:    append([]Vote(nil), l.Votes...),
		Messages: append([]Message(nil), l.Messages...),
	}
	for i, p := range l.Players {
		s.Players[i] = *p
	}
	return s
}

// LobbyFromSnapshot rebuilds an aggregate from persisted state
func LobbyFromSnapshot(s Snapshot) *Lobby {
	l := NewLobby(s.Room.Clone())
	l.Players = make([]*Player, len(s.Players))
	for i := range s.Players {
		p := s.Players[i]
		l.Players[i] = &p
	}
	l.Clues = append([]ClueEntry(nil), s.Clues...)
	l.Votes = append([]Vote(nil), s.Votes...)
	l.Messages = append([]Message(nil), s.Messages...)
	return l
}
