package uid

import "github.com/google/uuid"

// GenerateGameID returns a random UUID used as the public game ID.
func GenerateGameID() string {
	return uuid.NewString()
}

// IsGameID reports whether s looks like an ID produced by GenerateGameID.
func IsGameID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
