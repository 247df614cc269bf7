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

var addWeather string

var addCmd = &cobra.Command{
	Use:   "add <time>",
	Short: "Add service hours for today",
	Long: `Add service hours for today. TIME accepts "1:30", "1.30", "1.5"
or "1,5".`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addWeather, "weather", "", "Weather tag: sunny, cloudy, bad")
}

func runAdd(cmd *cobra.Command, args []string) error {
	amount := timeparse.ParseHours(args[0])
	if math.IsNaN(amount) || amount <= 0 {
		return fmt.Errorf("cannot read %q as a positive time value", args[0])
	}
	weather, err := parseWeather(addWeather)
	if err != nil {
		return err
	}

	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	state, sig := record.AddHours(state, time.Now(), amount, weather)
	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Added %s. Month total: %s of %s.\n",
		formatHours(amount), formatHours(state.CurrentHours), formatHours(state.Goal))
	announce(sig)
	return nil
}

// parseWeather validates a --weather flag value; empty means "leave as is".
func parseWeather(raw string) (record.Weather, error) {
	switch record.Weather(raw) {
	case "":
		return "", nil
	case record.WeatherSunny, record.WeatherCloudy, record.WeatherBad:
		return record.Weather(raw), nil
	default:
		return "", fmt.Errorf("unknown weather %q (want sunny, cloudy or bad)", raw)
	}
}
