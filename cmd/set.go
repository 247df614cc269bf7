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

var (
	setDate     string
	setWeather  string
	setCampaign bool
)

var setCmd = &cobra.Command{
	Use:   "set <time>",
	Short: "Set the month total, or one day's hours with --date",
	Long: `Without --date, set this month's running total; the difference is
applied to today's entry. With --date, set the hours recorded for that
specific day instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

func init() {
	setCmd.Flags().StringVar(&setDate, "date", "", "Target day (YYYY-MM-DD) instead of the month total")
	setCmd.Flags().StringVar(&setWeather, "weather", "", "Weather tag: sunny, cloudy, bad")
	setCmd.Flags().BoolVar(&setCampaign, "campaign", false, "Mark the day as a campaign day (with --date)")
}

func runSet(cmd *cobra.Command, args []string) error {
	total := timeparse.ParseHours(args[0])
	if math.IsNaN(total) {
		return fmt.Errorf("cannot read %q as a time value", args[0])
	}
	weather, err := parseWeather(setWeather)
	if err != nil {
		return err
	}

	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	now := time.Now()
	var sig record.Signals
	if setDate != "" {
		day, err := time.Parse("2006-01-02", setDate)
		if err != nil {
			return fmt.Errorf("cannot read %q as a date (want YYYY-MM-DD)", setDate)
		}
		var campaign *bool
		if cmd.Flags().Changed("campaign") {
			campaign = &setCampaign
		}
		state, sig = record.SetHoursForDate(state, now, day, total, weather, campaign)
		fmt.Printf("Set %s for %s.\n", formatHours(total), setDate)
	} else {
		state, sig = record.SetHours(state, now, total)
		fmt.Printf("Month total set to %s of %s.\n",
			formatHours(state.CurrentHours), formatHours(state.Goal))
	}

	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	announce(sig)
	return nil
}
