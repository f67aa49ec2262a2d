package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirmesBude/REGoth/app/config"
	"github.com/KirmesBude/REGoth/engine"
	"github.com/KirmesBude/REGoth/infra/buildinfo"
	"github.com/KirmesBude/REGoth/savegame"
	"github.com/KirmesBude/REGoth/stub"
	"github.com/KirmesBude/REGoth/util/log"
)

const (
	flagNameConfig   = "config"
	flagNameGame     = "game"
	flagNameUserData = "userdata"
	flagNameLogFile  = "logfile"
	flagNameLogLevel = "loglevel"
	flagNameLogLimit = "loglimit"
)

// session holds state shared by all sub commands.
type session struct {
	configFile string

	// values given by flags. empty means not given.
	game     string
	userData string
	logFile  string
	logLevel string
	logLimit int64

	conf     *config.Config
	store    *savegame.Store
	engine   *stub.Engine
	closeLog func()
}

func newRootCommand() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:   Title,
		Short: "Inspect and maintain REGoth savegame slots",
		Long: `regoth-save works on the savegame slots of REGoth without running the game.

Values of the config file are overwritten by REGOTH_* environment
variables, which are overwritten by flags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return s.setup(cmd) },
		PersistentPostRun: func(_ *cobra.Command, _ []string) { s.teardown() },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&s.configFile, flagNameConfig, config.ConfigFile, "config `file`, generated with defaults when missing")
	pf.StringVar(&s.game, flagNameGame, "", "`game` of the savegames, { gothic1 | gothic2 }")
	pf.StringVar(&s.userData, flagNameUserData, "", "user data `directory` containing the savegames")
	pf.StringVar(&s.logFile, flagNameLogFile, "", "`output-file` to write log. { stdout | stderr } is OK.")
	pf.StringVar(&s.logLevel, flagNameLogLevel, "", "`level` = { info | debug }")
	pf.Int64Var(&s.logLimit, flagNameLogLimit, 0, "limit of log output in megabytes, 0 keeps the config value")

	root.AddCommand(
		newListCommand(s),
		newInfoCommand(s),
		newWorldsCommand(s),
		newClearCommand(s),
		newRecoverCommand(s),
		newExportCommand(s),
		newImportCommand(s),
		newWatchCommand(s),
		newRunCommand(s),
		newVersionCommand(),
	)
	return root
}

func (s *session) setup(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	conf, err := config.LoadConfigOrDefault(s.configFile)
	switch {
	case errors.Is(err, config.ErrDefaultConfigGenerated):
		fmt.Fprintf(cmd.ErrOrStderr(), "Config file (%v) does not exist. Use default config and write it to file.\n", s.configFile)
	case err != nil:
		return err
	}
	if err := config.ApplyEnv(conf, nil); err != nil {
		return err
	}
	s.overwriteConfig(conf)

	closeLog, err := config.SetupLogConfig(conf)
	if err != nil {
		return err
	}
	s.closeLog = closeLog

	gt, err := conf.GameType()
	if err != nil {
		s.teardown()
		return err
	}
	s.conf = conf
	s.store = savegame.NewStore(conf.Savegame, nil)
	s.engine = stub.NewEngine(gt, "")
	log.Debugf("%s %s: game %v, savegames under %s", Title, buildinfo.Get(), gt, s.store.UserDataDir())
	return nil
}

func (s *session) overwriteConfig(conf *config.Config) {
	for _, set := range []struct {
		flag string
		dst  *string
	}{
		{s.game, &conf.Game},
		{s.userData, &conf.Savegame.UserDataDir},
		{s.logFile, &conf.LogFile},
		{s.logLevel, &conf.LogLevel},
	} {
		if set.flag != "" {
			*set.dst = set.flag
		}
	}
	if s.logLimit > 0 {
		conf.LogLimitMegaByte = s.logLimit
	}
}

func (s *session) teardown() {
	if s.closeLog != nil {
		s.closeLog()
		s.closeLog = nil
	}
}

// slotArg parses args[0] as slot index.
func slotArg(args []string) (int, error) {
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid slot %q: %w", args[0], err)
	}
	return idx, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Title, buildinfo.Get())
		},
	}
}

// engineFor returns an engine running zenFile of the configured game.
func (s *session) engineFor(zenFile string) *stub.Engine {
	return stub.NewEngine(s.engine.World.BasicGameType(), zenFile)
}

// defaultZenFile is the first world of each game.
func defaultZenFile(gt engine.GameType) string {
	if gt == engine.GameTypeGothic1 {
		return "WORLD.ZEN"
	}
	return "NEWWORLD.ZEN"
}
