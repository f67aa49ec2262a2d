// Package savegame persists the game session into numbered save slots
// and restores it into a running engine.
//
// A slot is a directory under the user data location:
//
//	<userdata>/<Gothic|Gothic 2>/savegame_<idx>/regoth_save.json
//	<userdata>/<Gothic|Gothic 2>/savegame_<idx>/world_<world>.json
//
// Every operation of Store takes the engine as its first argument. The store
// itself keeps no state except its configuration, so a Store can be shared by
// callers which serialize their access.
package savegame

import (
	"github.com/KirmesBude/REGoth/engine"
	"github.com/KirmesBude/REGoth/filesystem"
)

const (
	// Number of slots per game.
	Gothic1MaxSlots = 15
	Gothic2MaxSlots = 20

	// LatestKnownVersion is the version of Info written by this package.
	LatestKnownVersion uint32 = 1

	// InfoFileName is the name of the metadata file in a slot directory.
	InfoFileName = "regoth_save.json"

	// AppName names the user data directory.
	AppName = "REGoth"
)

const (
	slotDirPrefix   = "savegame_"
	worldFilePrefix = "world_"
	worldFileExt    = ".json"
	zenFileExt      = ".zen"

	// files containing one of these are owned by the savegame store.
	infoFileMarker  = "regoth_"
	worldFileMarker = worldFilePrefix

	gothic1Dir = "Gothic"
	gothic2Dir = "Gothic 2"
)

// Info is the metadata of a slot.
// The zero value means the slot has no data.
type Info struct {
	Version    uint32
	Name       string  // display name
	World      string  // world name without extension, e.g. "NEWWORLD"
	TimePlayed float64 // in seconds
}

// Config holds parameters of Store.
type Config struct {
	// UserDataDir is the root of all savegames. Empty means the
	// platform user data location, see filesystem.UserDataDir.
	UserDataDir string `toml:"userdata_dir" env:"USERDATA_DIR"`
}

// Store reads and writes savegame slots.
type Store struct {
	config Config
	fs     filesystem.FileSystem
}

// NewStore returns a Store using fsys for file access.
// nil fsys means filesystem.Default.
func NewStore(config Config, fsys filesystem.FileSystem) *Store {
	if fsys == nil {
		fsys = filesystem.Default
	}
	return &Store{config: config, fs: fsys}
}

// UserDataDir returns the root directory of all savegames.
func (s *Store) UserDataDir() string {
	if dir := s.config.UserDataDir; dir != "" {
		return dir
	}
	return filesystem.UserDataDir(AppName)
}

// MaxSlots returns number of slots available for the game the engine runs.
// Unknown games get the Gothic 2 count.
func (s *Store) MaxSlots(e engine.Engine) int {
	switch gameTypeOf(e) {
	case engine.GameTypeGothic1:
		return Gothic1MaxSlots
	case engine.GameTypeGothic2:
		return Gothic2MaxSlots
	default:
		return Gothic2MaxSlots
	}
}

func gameTypeOf(e engine.Engine) engine.GameType {
	return e.MainWorld().BasicGameType()
}
