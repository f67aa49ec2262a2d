package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/KirmesBude/REGoth/filesystem"
	"github.com/KirmesBude/REGoth/infra/archive"
	"github.com/KirmesBude/REGoth/infra/script"
	"github.com/KirmesBude/REGoth/savegame"
	"github.com/KirmesBude/REGoth/width"
)

const (
	nameColumnWidth  = 24
	worldColumnWidth = 12
)

func newListCommand(s *session) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List savegame slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			slots, err := s.store.ListSlots(s.engine)
			if err != nil {
				return err
			}
			printSlots(cmd.OutOrStdout(), slots, all)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "also list empty slots")
	return cmd
}

func printSlots(w io.Writer, slots []savegame.SlotSummary, all bool) {
	fmt.Fprintf(w, "%4s  %s  %s  %10s  %s\n", "SLOT",
		width.PadRight("NAME", nameColumnWidth), width.PadRight("WORLD", worldColumnWidth), "PLAYED", "SIZE")
	for _, slot := range slots {
		if !slot.Available {
			if all {
				fmt.Fprintf(w, "%4d  %s\n", slot.Index, width.PadRight("-", nameColumnWidth))
			}
			continue
		}
		name := width.Truncate(slot.Info.Name, nameColumnWidth, "...")
		world := width.Truncate(slot.Info.World, worldColumnWidth, "...")
		fmt.Fprintf(w, "%4d  %s  %s  %10s  %s\n", slot.Index,
			width.PadRight(name, nameColumnWidth), width.PadRight(world, worldColumnWidth),
			formatPlayed(slot.Info.TimePlayed), humanize.Bytes(uint64(slot.Size)))
	}
}

func formatPlayed(seconds float64) string {
	return (time.Duration(seconds * float64(time.Second))).Round(time.Second).String()
}

func newInfoCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "info <slot>",
		Short: "Show metadata of a slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := slotArg(args)
			if err != nil {
				return err
			}
			if err := s.store.CheckSlot(s.engine, idx); err != nil {
				return err
			}
			if !s.store.IsSavegameAvailable(s.engine, idx) {
				return &savegame.Error{Kind: savegame.KindNotAvailable, Slot: idx}
			}
			info, err := s.store.ReadSavegameInfo(s.engine, idx)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "slot:    %d\n", idx)
			fmt.Fprintf(w, "path:    %s\n", s.store.SavegamePath(s.engine, idx))
			fmt.Fprintf(w, "version: %d\n", info.Version)
			fmt.Fprintf(w, "name:    %s\n", info.Name)
			fmt.Fprintf(w, "world:   %s\n", info.World)
			fmt.Fprintf(w, "played:  %s\n", formatPlayed(info.TimePlayed))
			return nil
		},
	}
}

func newWorldsCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "worlds <slot>",
		Short: "List non-empty files of a slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := slotArg(args)
			if err != nil {
				return err
			}
			if err := s.store.CheckSlot(s.engine, idx); err != nil {
				return err
			}
			worlds, err := s.store.SavegameWorlds(s.engine, idx)
			if err != nil {
				return err
			}
			for _, name := range worlds {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newClearCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <slot>",
		Short: "Empty the savegame files of a slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := slotArg(args)
			if err != nil {
				return err
			}
			if err := s.store.CheckSlot(s.engine, idx); err != nil {
				return err
			}
			return s.store.ClearSavegame(s.engine, idx)
		},
	}
}

func newRecoverCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "recover",
		Short: "Restore slots left behind by an interrupted save",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return s.store.Recover(s.engine)
		},
	}
}

func newWatchCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print indexes of slots changed on disk until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return s.watch(ctx, cmd.OutOrStdout())
		},
	}
}

func (s *session) watch(ctx context.Context, w io.Writer) error {
	sw, err := s.store.WatchSlots(s.engine)
	if err != nil {
		return err
	}
	defer sw.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case idx, ok := <-sw.Changes():
			if !ok {
				return nil
			}
			fmt.Fprintf(w, "slot %d changed\n", idx)
		case err, ok := <-sw.Errors():
			if !ok {
				return nil
			}
			return err
		}
	}
}

func newRunCommand(s *session) *cobra.Command {
	var zenFile string
	cmd := &cobra.Command{
		Use:   "run [script-files...]",
		Short: "Run Lua scripts using the savegame module",
		Long: `run executes Lua scripts on a headless engine. Without script files
the files matching the configured load pattern are run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if zenFile == "" {
				zenFile = defaultZenFile(s.engine.World.BasicGameType())
			}
			ip := script.NewInterpreter(s.store, s.engineFor(zenFile), s.conf.Script)
			defer ip.Quit()

			if len(args) == 0 {
				return ip.RunSystem(cmd.Context())
			}
			ip.SetContext(cmd.Context())
			for _, file := range args {
				if err := ip.DoFile(file); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&zenFile, "world", "", "zen `file` of the world the engine runs")
	return cmd
}

func newExportCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "export <slot> <zip-file>",
		Short: "Pack the savegame files of a slot into a zip archive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := slotArg(args)
			if err != nil {
				return err
			}
			files, err := s.store.ExportSlot(s.engine, idx)
			if err != nil {
				return err
			}
			out, err := archive.WriteZip(filesystem.Default, args[1], files)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "slot %d exported to %s\n", idx, out)
			return nil
		},
	}
}

func newImportCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "import <slot> <zip-file>",
		Short: "Replace a slot by the files of a zip archive",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			idx, err := slotArg(args)
			if err != nil {
				return err
			}
			zipPath := args[1]
			files, err := archive.ReadZip(os.DirFS(filepath.Dir(zipPath)), filepath.Base(zipPath))
			if err != nil {
				return err
			}
			return s.store.ImportSlot(s.engine, idx, files)
		},
	}
}
