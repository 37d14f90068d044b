package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// BetTier is one stake level a table can be created at.
type BetTier struct {
	ID      string `json:"id"`
	BaseBet int64  `json:"base_bet"`
}

// GameConfig is the file-backed game configuration. Zero values fall back to
// defaults at read time, so a partial file is fine.
type GameConfig struct {
	// WinningScore is the cumulative score that ends a game.
	WinningScore int `json:"winning_score"`
	// StandardDeck disables the joker variant, dealing the plain 52-card
	// deck instead.
	StandardDeck bool `json:"standard_deck"`

	DefaultTier string    `json:"default_tier"`
	Tiers       []BetTier `json:"tiers"`

	// BotAutoFillDelaySeconds is how long a solo human waits before the
	// lobby fills with bots.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
}

const (
	defaultWinningScore    = 800
	defaultBaseBet   int64 = 100
	defaultBotDelay        = 5
)

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path. Only the
// first call reads the file.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetWinningScore returns the configured game-ending score.
func GetWinningScore() int {
	if cfg == nil || cfg.WinningScore <= 0 {
		return defaultWinningScore
	}
	return cfg.WinningScore
}

// JokerVariantEnabled reports whether deals use the joker/deuce trump deck.
func JokerVariantEnabled() bool {
	if cfg == nil {
		return true
	}
	return !cfg.StandardDeck
}

// GetBotAutoFillDelay returns the lobby auto-fill delay in seconds.
func GetBotAutoFillDelay() int {
	if cfg == nil || cfg.BotAutoFillDelaySeconds <= 0 {
		return defaultBotDelay
	}
	return cfg.BotAutoFillDelaySeconds
}

// GetBaseBet returns the base bet for a tier ID, or the default tier's when
// not found.
func GetBaseBet(tierID string) int64 {
	if cfg == nil {
		return defaultBaseBet
	}

	target := tierID
	if target == "" {
		target = cfg.DefaultTier
	}

	for _, tier := range cfg.Tiers {
		if tier.ID == target {
			return tier.BaseBet
		}
	}
	for _, tier := range cfg.Tiers {
		if tier.ID == cfg.DefaultTier {
			return tier.BaseBet
		}
	}

	return defaultBaseBet
}
