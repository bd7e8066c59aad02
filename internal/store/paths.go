package store

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/bruins-live-service/internal/timeutil"
)

const documentRoot = "bruinsLive/app"

// ConfigPath is the address of the public config document.
func ConfigPath() string {
	return documentRoot + "/config/public"
}

// TodayPath is the address of the today document for dateKey.
func TodayPath(dateKey string) string {
	return documentRoot + "/today/" + dateKey
}

// GamePath is the address of the game document for gameID.
func GamePath(gameID string) string {
	return documentRoot + "/games/" + gameID
}

// ValidateDateKey rejects anything that is not a YYYY-MM-DD civil date.
func ValidateDateKey(dateKey string) error {
	if _, err := timeutil.ParseDate(dateKey); err != nil {
		return fmt.Errorf("%w: date key %q", ErrInvalidKey, dateKey)
	}
	return nil
}

// ValidateGameID rejects empty ids and ids that could escape a key namespace.
func ValidateGameID(gameID string) error {
	if strings.TrimSpace(gameID) == "" || strings.ContainsAny(gameID, "/\\") || strings.Contains(gameID, "..") {
		return fmt.Errorf("%w: game id %q", ErrInvalidKey, gameID)
	}
	return nil
}
