package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/KirmesBude/REGoth/engine"
	"github.com/KirmesBude/REGoth/filesystem"
	"github.com/KirmesBude/REGoth/infra/script"
	"github.com/KirmesBude/REGoth/infra/serialize/toml"
	"github.com/KirmesBude/REGoth/savegame"
	"github.com/KirmesBude/REGoth/util/log"
)

const (
	// default configuration file.
	ConfigFile = "regoth-save.conf"

	// prefix of environment variables overriding the configuration,
	// e.g. REGOTH_GAME.
	EnvPrefix = "REGOTH_"

	LogFileStdOut  = "stdout" // specify log outputs to stdout
	LogFileStdErr  = "stderr" // specify log outputs to stderr
	DefaultLogFile = LogFileStdErr

	LogLevelInfo            = "info"  // logging only information level.
	LogLevelDebug           = "debug" // logging all levels, debug and info.
	DefaultLogLevel         = LogLevelInfo
	DefaultLogLimitMegaByte = 10 // 10 * 1000 * 1000 Bytes

	DefaultGame      = "gothic2"
	DefaultScriptDir = "scripts"
)

// Configure for the Applicaltion.
// To build this, use NewConfig instead of struct constructor, Config{}.
type Config struct {
	LogFile          string `toml:"logfile" env:"LOG_FILE"`
	LogLevel         string `toml:"loglevel" env:"LOG_LEVEL"`
	LogLimitMegaByte int64  `toml:"loglimit_megabytes"`

	// game of the savegames, "gothic1" or "gothic2".
	Game string `toml:"game" env:"GAME"`

	Savegame savegame.Config `toml:"savegame"`
	Script   script.Config   `toml:"script"`
}

// return default App config.
func NewConfig() *Config {
	return &Config{
		LogFile:          DefaultLogFile,
		LogLevel:         DefaultLogLevel,
		LogLimitMegaByte: DefaultLogLimitMegaByte,
		Game:             DefaultGame,
		Savegame:         savegame.Config{},
		Script:           script.NewConfig(DefaultScriptDir),
	}
}

// GameType returns the configured game.
func (c *Config) GameType() (engine.GameType, error) {
	return engine.ParseGameType(c.Game)
}

// ErrDefaultConfigGenerated implies that the specified config file is not found,
// and intead of that default config is generated and used.
var ErrDefaultConfigGenerated error = errors.New("default config generated")

// if config file exists load it and return.
// if not exists return default config and write it.
func LoadConfigOrDefault(file string) (*Config, error) {
	if !filesystem.Exist(file) {
		appConf := NewConfig()
		// write default config
		if err := toml.EncodeFile(file, appConf); err != nil {
			return nil, err
		}
		return appConf, ErrDefaultConfigGenerated
	}

	appConf := NewConfig() // default value will be remain when missing at decoded config.
	if err := toml.DecodeFile(file, appConf); err != nil {
		return nil, err
	}
	return appConf, nil
}

// ApplyEnv overwrites appConf by environment variables prefixed with
// EnvPrefix. nil environ means the process environment.
func ApplyEnv(appConf *Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(appConf, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// set up log configuration and return finalize function with internal error.
// when returned error, the finalize function is nil and need not be called.
func SetupLogConfig(appConf *Config) (func(), error) {
	// set log level.
	level, err := log.ParseLevel(appConf.LogLevel)
	if err != nil {
		log.Infof("unknown log level(%s). use 'info' level insteadly.", appConf.LogLevel)
	}
	log.SetLevel(level)

	// set log distination
	var (
		dstString string
		writer    io.WriteCloser
		closeFunc func()
	)
	switch logfile := appConf.LogFile; logfile {
	case LogFileStdOut:
		dstString = "Stdout"
		writer = os.Stdout
		closeFunc = func() {}
	case LogFileStdErr, "":
		dstString = "Stderr"
		writer = os.Stderr
		closeFunc = func() {}
	default:
		dstString = logfile
		fp, err := filesystem.Store(logfile)
		if err != nil {
			return nil, err
		}
		writer = fp
		closeFunc = func() { fp.Close() }
	}
	// 0 or less means unlimited.
	if logLimit := appConf.LogLimitMegaByte * 1000 * 1000; logLimit > 0 {
		log.SetOutput(log.LimitWriter(writer, logLimit))
	} else {
		log.SetOutput(writer)
	}
	if err := testingLogOutput("log output sanity check..."); err != nil {
		closeFunc()
		return nil, err
	}
	log.Debugf("Output log to %s", dstString)

	return closeFunc, nil
}

func testingLogOutput(msg string) error {
	log.Debug(msg)
	err := log.Err()
	switch {
	case errors.Is(err, log.ErrOutputDiscardedByLevel):
	case errors.Is(err, io.EOF):
	case err == nil:
	default:
		return fmt.Errorf("log output error: %w", err)
	}
	return nil // normal operation
}
