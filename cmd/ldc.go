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

var ldcCmd = &cobra.Command{
	Use:   "ldc",
	Short: "Track LDC (construction) hours",
}

var ldcAddCmd = &cobra.Command{
	Use:   "add <time>",
	Short: "Add LDC hours for today",
	Args:  cobra.ExactArgs(1),
	RunE:  runLdcAdd,
}

var ldcClearCmd = &cobra.Command{
	Use:   "clear-month",
	Short: "Remove all LDC hours from the current month",
	Args:  cobra.NoArgs,
	RunE:  runLdcClear,
}

func init() {
	ldcCmd.AddCommand(ldcAddCmd)
	ldcCmd.AddCommand(ldcClearCmd)
}

func runLdcAdd(cmd *cobra.Command, args []string) error {
	amount := timeparse.ParseHours(args[0])
	if math.IsNaN(amount) || amount <= 0 {
		return fmt.Errorf("cannot read %q as a positive time value", args[0])
	}

	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	state, sig := record.AddLdcHours(state, time.Now(), amount)
	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Added %s LDC. Month LDC total: %s.\n",
		formatHours(amount), formatHours(state.CurrentLdcHours))
	announce(sig)
	return nil
}

func runLdcClear(cmd *cobra.Command, args []string) error {
	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	state, _ = record.DeleteLdcHoursForMonth(state)
	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Println("Removed all LDC hours from the current month.")
	return nil
}
