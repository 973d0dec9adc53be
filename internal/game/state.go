package game

import "github.com/aaronzipp/find-the-imposter/internal/models"

// VoteCount is the tally for one candidate
type VoteCount struct {
	PlayerID string `json:"playerId"`
	Votes    int    `json:"votes"`
}

// VoteResult represents the outcome of vote counting
type VoteResult struct {
	VotedOutPlayerID string
	Counts           []VoteCount // candidates in the order their first vote was cast
}

// CountVotes tallies ballots in the order they were cast. The voted-out player
// has the strictly greatest count; on a tie the candidate who received a vote
// first wins.
func CountVotes(votes []models.Vote) VoteResult {
	index := make(map[string]int)
	var counts []VoteCount
	for _, v := range votes {
		i, ok := index[v.VotedForPlayerID]
		if !ok {
			i = len(counts)
			index[v.VotedForPlayerID] = i
			counts = append(counts, VoteCount{PlayerID: v.VotedForPlayerID})
		}
		counts[i].Votes++
	}

	result := VoteResult{Counts: counts}
	maxVotes := 0
	for _, c := range counts {
		if c.Votes > maxVotes {
			maxVotes = c.Votes
			result.VotedOutPlayerID = c.PlayerID
		}
	}
	return result
}
