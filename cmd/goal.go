package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmessner/fieldlog/internal/record"
	"github.com/tmessner/fieldlog/internal/timeparse"
)

var goalCmd = &cobra.Command{
	Use:   "goal <hours>",
	Short: "Set the monthly hour goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoal,
}

func runGoal(cmd *cobra.Command, args []string) error {
	goal := timeparse.ParseHours(args[0])
	if math.IsNaN(goal) {
		return fmt.Errorf("cannot read %q as a number of hours", args[0])
	}

	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	state, _ = record.SetGoal(state, goal)
	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Monthly goal set to %s.\n", formatHours(state.Goal))
	return nil
}
