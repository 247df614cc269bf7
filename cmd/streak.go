package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show streak details",
	Args:  cobra.NoArgs,
	RunE:  runStreak,
}

func runStreak(cmd *cobra.Command, args []string) error {
	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	fmt.Printf("Streak: %d day(s)\n", state.Count)
	if state.LastLogDate != nil {
		fmt.Printf("  Last activity: %s\n", state.LastLogDate.Format("2006-01-02"))
	} else {
		fmt.Println("  No activity logged yet.")
	}
	fmt.Printf("  Restores left this month: %d\n", state.Restores)
	if state.ProtectedDay != nil {
		fmt.Printf("  Protected weekday: %s\n", time.Weekday(*state.ProtectedDay))
	}
	fmt.Println("  Weekends never break the streak.")
	return nil
}
