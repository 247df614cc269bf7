package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmessner/fieldlog/internal/config"
	"github.com/tmessner/fieldlog/internal/storage"
)

var (
	cfgBackend     string
	cfgPerformance string
	cfgReminders   string
	cfgReminder    string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Without flags, prints the current settings. Flags update individual
settings; the storage backend takes effect on the next invocation.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&cfgBackend, "backend", "", "storage backend: file or badger")
	configCmd.Flags().StringVar(&cfgPerformance, "performance-mode", "", "reduce visual effects: on or off")
	configCmd.Flags().StringVar(&cfgReminders, "reminders", "", "daily logging reminder: on or off")
	configCmd.Flags().StringVar(&cfgReminder, "reminder-time", "", "reminder time of day, e.g. 18:00")
}

func parseOnOff(flag, v string) (bool, error) {
	switch v {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("--%s must be on or off, got %q", flag, v)
	}
}

func runConfig(cmd *cobra.Command, args []string) error {
	dir, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	st := storage.NewFileStore(dir)
	settings := config.Load(st)
	changed := false

	if cfgBackend != "" {
		if cfgBackend != storage.BackendFile && cfgBackend != storage.BackendBadger {
			return fmt.Errorf("unknown storage backend %q", cfgBackend)
		}
		settings.StorageBackend = cfgBackend
		changed = true
	}
	if cfgPerformance != "" {
		v, err := parseOnOff("performance-mode", cfgPerformance)
		if err != nil {
			return err
		}
		settings.PerformanceMode = v
		changed = true
	}
	if cfgReminders != "" {
		v, err := parseOnOff("reminders", cfgReminders)
		if err != nil {
			return err
		}
		settings.RemindersEnabled = v
		changed = true
	}
	if cfgReminder != "" {
		if _, err := time.Parse("15:04", cfgReminder); err != nil {
			return fmt.Errorf("cannot read %q as a time of day", cfgReminder)
		}
		settings.ReminderTime = cfgReminder
		changed = true
	}

	if changed {
		if err := config.Save(st, settings); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	reminders := "off"
	if settings.RemindersEnabled {
		reminders = "on"
	}
	performance := "off"
	if settings.PerformanceMode {
		performance = "on"
	}
	fmt.Printf("Storage backend:  %s\n", settings.StorageBackend)
	fmt.Printf("Performance mode: %s\n", performance)
	fmt.Printf("Reminders:        %s at %s\n", reminders, settings.ReminderTime)
	return nil
}
