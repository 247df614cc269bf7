package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tmessner/fieldlog/internal/config"
	"github.com/tmessner/fieldlog/internal/record"
	"github.com/tmessner/fieldlog/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "fieldlog",
	Short: "fieldlog – personal field service activity tracker",
	Long: `fieldlog is a single-binary, file-based tracker for daily service
hours, LDC hours and return visits, organised into service years
(September–August). All data is stored under ~/.fieldlog/.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(sickCmd)
	rootCmd.AddCommand(ldcCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(protectCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(carryoverCmd)
	rootCmd.AddCommand(configCmd)
}

// openState loads the settings, opens the configured store and migrates the
// persisted document, re-anchored to the current month.
func openState() (record.AppState, storage.Store, error) {
	dir, err := storage.BaseDir()
	if err != nil {
		return record.AppState{}, nil, err
	}
	settings := config.Load(storage.NewFileStore(dir))
	st, err := storage.Open(dir, settings.StorageBackend)
	if err != nil {
		return record.AppState{}, nil, err
	}
	raw, _, err := st.Load(record.StateKey)
	if err != nil {
		_ = st.Close()
		return record.AppState{}, nil, err
	}
	state := record.Load(raw, time.Now())
	state, _ = record.SetCurrentDate(state, time.Now())
	return state, st, nil
}

// saveState persists the whole document in one write; mutations are never
// saved partially.
func saveState(st storage.Store, state record.AppState) error {
	doc, err := state.Encode()
	if err != nil {
		return err
	}
	return st.Save(record.StateKey, doc)
}

// announce prints the one-shot mutation signals.
func announce(sig record.Signals) {
	if sig.GoalReached {
		fmt.Println("Monthly goal reached – congratulations!")
	}
	if sig.StreakSaved {
		fmt.Println("A restore was spent to keep your streak alive.")
	}
}
