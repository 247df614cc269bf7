package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmessner/fieldlog/internal/dates"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show this month at a glance",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	now := time.Now()
	fmt.Printf("%s (service year %s)\n", now.Format("January 2006"), state.CurrentServiceYear)
	fmt.Printf("  Hours:  %s of %s\n", formatHours(state.CurrentHours), formatHours(state.Goal))
	if state.CurrentLdcHours > 0 {
		fmt.Printf("  LDC:    %s\n", formatHours(state.CurrentLdcHours))
	}
	fmt.Printf("  Streak: %d day(s), %d restore(s) left\n", state.Count, state.Restores)

	c, when := dates.NextCommemoration(now)
	fmt.Printf("  Next:   %s (%s)\n", c.Name, when.Format("2006-01-02"))
	return nil
}

// formatHours renders decimal hours as "2h 30m".
func formatHours(h float64) string {
	minutes := int(h*60 + 0.5)
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
