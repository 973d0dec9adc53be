package game

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/aaronzipp/find-the-imposter/internal/errors"
	"github.com/aaronzipp/find-the-imposter/internal/models"
)

// StartGame is the host's explicit start. Online rooms additionally need
// every player ready.
func (e *Engine) StartGame(l *models.Lobby, hostID string) error {
	if l.Room.HostID != hostID {
		return apperrors.New(apperrors.CodeForbidden, "only the host can start the game")
	}
	if !l.Room.Status.IsPreGame() {
		return apperrors.New(apperrors.CodeAlreadyStarted, "game has already started")
	}
	if l.PlayerCount() < MinPlayers {
		return apperrors.Newf(apperrors.CodeInvalidState, "need at least %d players to start", MinPlayers)
	}
	if l.Room.Mode == models.ModeOnline && !l.AllPlayers(func(p *models.Player) bool { return p.IsReady }) {
		return apperrors.New(apperrors.CodeInvalidState, "not all players are ready")
	}
	e.start(l)
	return nil
}

// start assigns word, category and imposters and enters the first play status
func (e *Engine) start(l *models.Lobby) {
	room := &l.Room
	room.Word, room.Category, room.UsedWords = e.PickWord(room.CategoryPreference, room.UsedWords)

	desired := max(room.ImposterCount, 1)
	count := min(desired, MaxImposterCount(l.PlayerCount()))

	order := make([]string, l.PlayerCount())
	for i, j := range e.perm(l.PlayerCount()) {
		order[i] = l.Players[j].PlayerID
	}
	room.ImposterIDs = append([]string(nil), order[:count]...)

	if room.Mode != models.ModeOnline {
		room.Status = models.StatusPlaying
		return
	}

	room.TurnOrder = order
	room.CurrentTurnPlayerID = order[0]
	room.CurrentRound = 1
	room.Status = models.RoundStatus(1)
	room.VotedOutPlayerID = ""
	room.ImposterGuess = ""
	room.GameWinner = models.WinnerNone
	for _, p := range l.Players {
		p.HasSubmittedWord = false
	}
}

// SubmitWord records the current player's clue and advances the turn, the
// round, or the game into voting
func (e *Engine) SubmitWord(l *models.Lobby, playerID, word string) (models.ClueEntry, error) {
	room := &l.Room
	if !room.Status.IsRound() {
		return models.ClueEntry{}, apperrors.New(apperrors.CodeInvalidState, "not in a word submission round")
	}
	if room.CurrentTurnPlayerID != playerID {
		return models.ClueEntry{}, apperrors.New(apperrors.CodeNotYourTurn, "it's not your turn")
	}
	player, _ := l.Player(playerID)
	if player == nil {
		return models.ClueEntry{}, apperrors.New(apperrors.CodeNotFound, "player not found")
	}

	clue := normalizeWord(word)
	if clue == "" || hasSpace(clue) {
		return models.ClueEntry{}, apperrors.New(apperrors.CodeInvalidWord, "must submit a single word")
	}
	if utf8.RuneCountInString(clue) > MaxClueLength {
		return models.ClueEntry{}, apperrors.Newf(apperrors.CodeInvalidWord, "word must be at most %d characters", MaxClueLength)
	}
	if clue == strings.ToUpper(room.Word) {
		return models.ClueEntry{}, apperrors.New(apperrors.CodeInvalidWord, "cannot submit the secret word")
	}

	entry := models.ClueEntry{
		ID:         e.newID(),
		GameCode:   room.Code,
		PlayerID:   playerID,
		PlayerName: player.PlayerName,
		Word:       clue,
		Round:      max(room.CurrentRound, 1),
		Timestamp:  e.now(),
	}
	l.Clues = append(l.Clues, entry)
	player.HasSubmittedWord = true

	if !l.AllPlayers(func(p *models.Player) bool { return p.HasSubmittedWord }) {
		room.CurrentTurnPlayerID = nextInOrder(room.TurnOrder, playerID)
		return entry, nil
	}

	if room.CurrentRound < TotalRounds {
		room.CurrentRound++
		room.Status = models.RoundStatus(room.CurrentRound)
		room.CurrentTurnPlayerID = room.TurnOrder[0]
		for _, p := range l.Players {
			p.HasSubmittedWord = false
		}
		return entry, nil
	}

	room.Status = models.StatusVoting
	room.CurrentTurnPlayerID = ""
	for _, p := range l.Players {
		p.HasVoted = false
	}
	return entry, nil
}

// nextInOrder returns the entry after id, wrapping around
func nextInOrder(order []string, id string) string {
	if len(order) == 0 {
		return ""
	}
	for i, v := range order {
		if v == id {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

// SubmitVote records a ballot and resolves the vote once everyone has voted
func (e *Engine) SubmitVote(l *models.Lobby, voterID, targetID string) (models.Vote, error) {
	room := &l.Room
	if room.Status != models.StatusVoting {
		return models.Vote{}, apperrors.New(apperrors.CodeInvalidState, "not in voting phase")
	}
	voter, _ := l.Player(voterID)
	target, _ := l.Player(targetID)
	if voter == nil || target == nil {
		return models.Vote{}, apperrors.New(apperrors.CodeNotFound, "player not found")
	}
	if voter.HasVoted {
		return models.Vote{}, apperrors.New(apperrors.CodeAlreadyVoted, "you have already voted")
	}

	vote := models.Vote{
		ID:                 e.newID(),
		GameCode:           room.Code,
		VoterID:            voterID,
		VoterName:          voter.PlayerName,
		VotedForPlayerID:   targetID,
		VotedForPlayerName: target.PlayerName,
		Timestamp:          e.now(),
	}
	l.Votes = append(l.Votes, vote)
	voter.HasVoted = true

	if !l.AllPlayers(func(p *models.Player) bool { return p.HasVoted }) {
		return vote, nil
	}

	result := CountVotes(l.Votes)
	room.VotedOutPlayerID = result.VotedOutPlayerID
	if room.IsImposter(result.VotedOutPlayerID) {
		room.Status = models.StatusImposterGuess
	} else {
		room.Status = models.StatusResults
		room.GameWinner = models.WinnerImposters
	}
	return vote, nil
}

// SubmitImposterGuess gives the voted-out imposter one guess at the word
func (e *Engine) SubmitImposterGuess(l *models.Lobby, playerID, guess string) (correct bool, err error) {
	room := &l.Room
	if room.Status != models.StatusImposterGuess {
		return false, apperrors.New(apperrors.CodeInvalidState, "not in imposter guess phase")
	}
	if room.VotedOutPlayerID != playerID {
		return false, apperrors.New(apperrors.CodeForbidden, "only the voted out imposter can guess")
	}

	normalized := normalizeWord(guess)
	correct = normalized == strings.ToUpper(room.Word)
	room.ImposterGuess = normalized
	if correct {
		room.GameWinner = models.WinnerImposters
	} else {
		room.GameWinner = models.WinnerPlayers
	}
	room.Status = models.StatusResults
	return correct, nil
}

// ReturnToLobby resets a finished online game for another round
func (e *Engine) ReturnToLobby(l *models.Lobby, hostID string) error {
	room := &l.Room
	if room.HostID != hostID {
		return apperrors.New(apperrors.CodeForbidden, "only the host can return to lobby")
	}
	if room.Status != models.StatusResults {
		return apperrors.New(apperrors.CodeInvalidState, "game is not in results phase")
	}

	for _, p := range l.Players {
		p.IsReady = false
		p.HasSubmittedWord = false
		p.HasVoted = false
	}
	l.Clues = nil
	l.Votes = nil

	room.Status = models.StatusLobby
	room.CurrentRound = 0
	room.CurrentTurnPlayerID = ""
	room.TurnOrder = nil
	room.VotedOutPlayerID = ""
	room.ImposterGuess = ""
	room.GameWinner = models.WinnerNone
	room.ImposterIDs = nil
	return nil
}

// Restart sends an in-person room back to waiting. The previous word stays in
// the record until the next start picks a new one.
func (e *Engine) Restart(l *models.Lobby, hostID string) error {
	if l.Room.HostID != hostID {
		return apperrors.New(apperrors.CodeForbidden, "only the host can restart the game")
	}
	if l.Room.Mode != models.ModeInPerson {
		return apperrors.New(apperrors.CodeInvalidState, "online games return to the lobby instead")
	}
	for _, p := range l.Players {
		p.IsReady = false
	}
	l.Room.ImposterIDs = nil
	l.Room.Status = models.StatusWaiting
	return nil
}

// SetCategoryPreference changes the category used by the next start
func (e *Engine) SetCategoryPreference(l *models.Lobby, hostID string, pref models.Category) error {
	if err := checkLobbySetting(l, hostID, "category preference"); err != nil {
		return err
	}
	if !IsValidCategoryPreference(pref) {
		return apperrors.WithMetadata(apperrors.CodeValidation, "invalid category", map[string]string{"category": string(pref)})
	}
	l.Room.CategoryPreference = pref
	return nil
}

// SetImposterCount changes the preferred imposter count, bounded by the
// current roster
func (e *Engine) SetImposterCount(l *models.Lobby, hostID string, count int) error {
	if err := checkLobbySetting(l, hostID, "imposter count"); err != nil {
		return err
	}
	if count < 1 {
		return apperrors.New(apperrors.CodeValidation, "must have at least 1 imposter")
	}
	if maxCount := MaxImposterCount(l.PlayerCount()); count > maxCount {
		return apperrors.Newf(apperrors.CodeValidation, "too many imposters for %d players (max: %d)", l.PlayerCount(), maxCount)
	}
	l.Room.ImposterCount = count
	return nil
}

func checkLobbySetting(l *models.Lobby, hostID, setting string) error {
	if l.Room.HostID != hostID {
		return apperrors.Newf(apperrors.CodeForbidden, "only the host can change %s", setting)
	}
	if !l.Room.Status.IsPreGame() {
		return apperrors.Newf(apperrors.CodeInvalidState, "cannot change %s after game has started", setting)
	}
	return nil
}

// SendMessage appends a lobby chat line from a room member
func (e *Engine) SendMessage(l *models.Lobby, playerID, text string) (models.Message, error) {
	player, _ := l.Player(playerID)
	if player == nil {
		return models.Message{}, apperrors.New(apperrors.CodeNotFound, "player not found")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Message{}, apperrors.New(apperrors.CodeValidation, "message is empty")
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return models.Message{}, apperrors.Newf(apperrors.CodeValidation, "message must be at most %d characters", MaxMessageLength)
	}

	msg := models.Message{
		ID:         e.newID(),
		GameCode:   l.Room.Code,
		PlayerID:   playerID,
		PlayerName: player.PlayerName,
		Text:       text,
		Timestamp:  e.now(),
	}
	l.Messages = append(l.Messages, msg)
	if over := len(l.Messages) - MessageHistoryLimit; over > 0 {
		l.Messages = append([]models.Message(nil), l.Messages[over:]...)
	}
	return msg, nil
}
