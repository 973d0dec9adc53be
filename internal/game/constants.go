package game

const (
	// MinPlayers is the minimum number of players required to start a game
	MinPlayers = 3

	// MaxPlayers is the room capacity
	MaxPlayers = 10

	// MinNonImposters is how many players must always see the secret word
	MinNonImposters = 2

	// TotalRounds is the number of clue rounds before voting in online mode
	TotalRounds = 3

	// MaxNameLength bounds player names (after trimming)
	MaxNameLength = 20

	// MaxClueLength bounds a single clue word
	MaxClueLength = 30

	// MaxMessageLength bounds a lobby chat line
	MaxMessageLength = 500

	// MessageHistoryLimit is how many chat lines a room keeps
	MessageHistoryLimit = 200

	// SSEBufferSize is the buffer size for subscriber channels
	SSEBufferSize = 10

	// SSETimeoutSeconds is the timeout for pushing to one subscriber
	SSETimeoutSeconds = 1

	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6

	// RoomCodeChars are the characters used for generating room codes (excluding ambiguous chars)
	RoomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)
