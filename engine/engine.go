// Package engine declares the parts of the game engine the savegame store
// reads from and writes to.
package engine

//go:generate mockgen -destination=./mock/mock_engine.go . Engine,World,Clock

import (
	"fmt"
	"strings"
)

// GameType classifies the game data the engine runs.
type GameType int

const (
	GameTypeUnknown GameType = iota
	GameTypeGothic1
	GameTypeGothic2
)

func (t GameType) String() string {
	switch t {
	case GameTypeGothic1:
		return "gothic1"
	case GameTypeGothic2:
		return "gothic2"
	}
	return "unknown"
}

// ParseGameType parses "gothic1", "gothic2" or their short forms "g1", "g2".
func ParseGameType(s string) (GameType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gothic1", "gothic", "g1":
		return GameTypeGothic1, nil
	case "gothic2", "g2":
		return GameTypeGothic2, nil
	}
	return GameTypeUnknown, fmt.Errorf("engine: unknown game type %q", s)
}

// World is the world the player is currently in.
type World interface {
	// BasicGameType returns which game the world belongs to.
	BasicGameType() GameType

	// ZenFile returns file name of the world, e.g. "NEWWORLD.ZEN".
	ZenFile() string

	// ExportWorld returns the whole state of the world as JSON text.
	// Strings in the text are encoded in ISO-8859-1 as in the game data.
	ExportWorld() ([]byte, error)
}

// Clock is the game clock.
type Clock interface {
	// TotalSeconds returns elapsed play time in seconds.
	TotalSeconds() float64
	SetTotalSeconds(sec float64)
}

// Engine is the running game engine.
type Engine interface {
	MainWorld() World
	GameClock() Clock

	// LoadWorld replaces the main world by zenFile, restoring its
	// state from the savegame world file at savegamePath.
	LoadWorld(zenFile, savegamePath string) error
}
