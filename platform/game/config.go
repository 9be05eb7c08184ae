package game

import (
	"os"
	"strconv"
	"time"
)

// Config holds the engine knobs. Zero values are never used directly;
// build from DefaultConfig or FromEnv.
type Config struct {
	MaxPlayers     int
	StartingMoney  int
	PassGoBonus    int
	JailFine       int
	RoomCodeLen    int
	ReconnectGrace time.Duration
	IdleTTL        time.Duration
	LogCap         int
}

func DefaultConfig() Config {
	return Config{
		MaxPlayers:     8,
		StartingMoney:  1500,
		PassGoBonus:    200,
		JailFine:       50,
		RoomCodeLen:    8,
		ReconnectGrace: 60 * time.Second,
		IdleTTL:        time.Hour,
		LogCap:         50,
	}
}

// FromEnv returns DefaultConfig with environment overrides applied.
func FromEnv() Config {
	cfg := DefaultConfig()
	if v, err := strconv.Atoi(os.Getenv("MAX_PLAYERS")); err == nil && v > 1 {
		cfg.MaxPlayers = v
	}
	return cfg
}
