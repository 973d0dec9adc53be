package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/aaronzipp/find-the-imposter/internal/models"
)

func ballots(targets ...string) []models.Vote {
	votes := make([]models.Vote, len(targets))
	for i, t := range targets {
		votes[i] = models.Vote{VoterID: t + "-voter", VotedForPlayerID: t}
	}
	return votes
}

func TestCountVotes(t *testing.T) {
	tests := []struct {
		name   string
		votes  []models.Vote
		want   string
		counts []VoteCount
	}{
		{
			name:   "clear majority",
			votes:  ballots("B", "A", "B"),
			want:   "B",
			counts: []VoteCount{{"B", 2}, {"A", 1}},
		},
		{
			name:   "tie goes to first candidate voted for",
			votes:  ballots("A", "B", "A", "B", "C"),
			want:   "A",
			counts: []VoteCount{{"A", 2}, {"B", 2}, {"C", 1}},
		},
		{
			name:   "later candidate overtakes",
			votes:  ballots("A", "B", "B"),
			want:   "B",
			counts: []VoteCount{{"A", 1}, {"B", 2}},
		},
		{
			name: "no votes",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountVotes(tt.votes)
			assert.Equal(t, tt.want, got.VotedOutPlayerID)
			if diff := cmp.Diff(tt.counts, got.Counts); diff != "" {
				t.Errorf("counts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
