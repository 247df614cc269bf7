package cmd

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmessner/fieldlog/internal/record"
	"github.com/tmessner/fieldlog/internal/timeparse"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <YYYY-MM> <time>",
	Short: "Import a historical month as one aggregate",
	Long: `Record a past month as a single collapsed aggregate instead of
per-day entries. Summary months are not editable at day granularity and do
not count toward the current month's totals.`,
	Args: cobra.ExactArgs(2),
	RunE: runSummary,
}

var carryoverCmd = &cobra.Command{
	Use:   "carryover <YYYY-MM> <time>",
	Short: "Attribute pre-tracker hours to a month",
	Long: `Attribute hours earned before adopting the tracker to a month
without day-level detail. A zero amount removes the carryover.`,
	Args: cobra.ExactArgs(2),
	RunE: runCarryover,
}

func runSummary(cmd *cobra.Command, args []string) error {
	month, hours, err := parseMonthAndHours(args)
	if err != nil {
		return err
	}

	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	state, _ = record.ImportMonthSummary(state, month.Year(), month.Month(), hours)
	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Imported %s as a %s summary.\n", args[0], formatHours(hours))
	return nil
}

func runCarryover(cmd *cobra.Command, args []string) error {
	month, hours, err := parseMonthAndHours(args)
	if err != nil {
		return err
	}

	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	state, _ = record.SetCarryover(state, month.Year(), month.Month(), hours)
	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if hours == 0 {
		fmt.Printf("Removed carryover for %s.\n", args[0])
	} else {
		fmt.Printf("Recorded %s carryover for %s.\n", formatHours(hours), args[0])
	}
	return nil
}

func parseMonthAndHours(args []string) (time.Time, float64, error) {
	month, err := time.Parse("2006-01", args[0])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("cannot read %q as a month (want YYYY-MM)", args[0])
	}
	hours := timeparse.ParseHours(args[1])
	if math.IsNaN(hours) {
		return time.Time{}, 0, fmt.Errorf("cannot read %q as a time value", args[1])
	}
	return month, hours, nil
}
