package game

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
	"strings"
	"unicode"
)

// GenerateRoomCode creates a random room code
func GenerateRoomCode() string {
	code := make([]byte, RoomCodeLength)
	for i := range RoomCodeLength {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(RoomCodeChars))))
		if err != nil {
			// fallback to math/rand if crypto fails
			code[i] = RoomCodeChars[rand.Intn(len(RoomCodeChars))]
			continue
		}
		code[i] = RoomCodeChars[n.Int64()]
	}
	return string(code)
}

// NormalizeCode canonicalizes user input for lookup
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidRoomCode reports whether code has the generated shape
func ValidRoomCode(code string) bool {
	if len(code) != RoomCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(RoomCodeChars, rune(code[i])) {
			return false
		}
	}
	return true
}

// MaxImposterCount always leaves at least two non-imposters
func MaxImposterCount(playerCount int) int {
	return max(1, playerCount-MinNonImposters)
}

// normalizeWord trims and upper-cases a clue or guess
func normalizeWord(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func hasSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
