package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// botIDPrefix marks generated fallback identities when no identity file is
// configured.
const botIDPrefix = "bot-"

// Identity is one bot profile.
type Identity struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

var (
	identities        []Identity
	botIDMap          map[string]bool
	botDisplayNameMap map[string]string
	loadOnce          sync.Once
	loadErr           error
)

// LoadIdentities loads bot profiles from the given path. Safe to call more
// than once; only the first call reads the file.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}
		if err := json.Unmarshal(data, &identities); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}

		botIDMap = make(map[string]bool)
		botDisplayNameMap = make(map[string]string)
		for _, identity := range identities {
			if identity.UserID != "" {
				botIDMap[identity.UserID] = true
				botDisplayNameMap[identity.UserID] = identity.DisplayName
			}
		}
	})
	return loadErr
}

// GetIdentity returns the profile to seat at the given table position,
// falling back to a generated one when no file was loaded.
func GetIdentity(pos int) Identity {
	if len(identities) > 0 {
		return identities[pos%len(identities)]
	}
	id := fmt.Sprintf("%sseat-%d", botIDPrefix, pos)
	return Identity{
		UserID:      id,
		Username:    id,
		DisplayName: fmt.Sprintf("Bot %d", pos+1),
	}
}

// IsBot reports whether the user id belongs to a bot seat.
func IsBot(userID string) bool {
	if botIDMap[userID] {
		return true
	}
	return strings.HasPrefix(userID, botIDPrefix)
}

// DisplayName returns the bot's display name, or "" for unknown ids.
func DisplayName(userID string) string {
	if name, ok := botDisplayNameMap[userID]; ok {
		return name
	}
	if strings.HasPrefix(userID, botIDPrefix) {
		return "Bot"
	}
	return ""
}
