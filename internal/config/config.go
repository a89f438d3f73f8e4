package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig holds table-level tuning loaded from the data folder.
type GameConfig struct {
	// TurnDurationSeconds is advertised to clients for their turn timers.
	// The engine itself never times a player out.
	TurnDurationSeconds int `json:"turn_duration_seconds"`
	// BotsEnabled allows AI seat-fillers on tables by default; the match
	// environment can still override it.
	BotsEnabled bool `json:"bots_enabled"`
	// BotMinDelaySeconds is the minimum time a bot pretends to think.
	BotMinDelaySeconds int `json:"bot_min_delay_seconds"`
	// BotMaxDelaySeconds is the maximum time a bot pretends to think.
	BotMaxDelaySeconds int `json:"bot_max_delay_seconds"`
	// BotAutoFillDelaySeconds is how long a lone human waits before the
	// remaining seats are filled with bots.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// DefaultGameConfig returns the built-in fallback configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		TurnDurationSeconds:     30,
		BotsEnabled:             false,
		BotMinDelaySeconds:      1,
		BotMaxDelaySeconds:      3,
		BotAutoFillDelaySeconds: 5,
	}
}

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		c := DefaultGameConfig()
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the loaded configuration, or the defaults when no
// file was loaded.
func GetGameConfig() GameConfig {
	if cfg == nil {
		return DefaultGameConfig()
	}
	return *cfg
}
