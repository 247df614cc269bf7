package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmessner/fieldlog/internal/record"
)

var sickClear bool

var sickCmd = &cobra.Command{
	Use:   "sick [date]",
	Short: "Mark a day as sick (defaults to today)",
	Long: `Mark a day as sick. A sick day cannot carry hours: any hours
already logged for it are removed. Use --clear to remove the mark again;
destroyed hours are not restored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSick,
}

func init() {
	sickCmd.Flags().BoolVar(&sickClear, "clear", false, "Clear the sick mark instead of setting it")
}

func runSick(cmd *cobra.Command, args []string) error {
	day := time.Now()
	if len(args) == 1 {
		parsed, err := time.Parse("2006-01-02", args[0])
		if err != nil {
			return fmt.Errorf("cannot read %q as a date (want YYYY-MM-DD)", args[0])
		}
		day = parsed
	}

	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	status := record.StatusSick
	if sickClear {
		status = ""
	}
	state, _ = record.MarkDayStatus(state, day, status)

	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if sickClear {
		fmt.Printf("Cleared sick mark for %s.\n", day.Format("2006-01-02"))
	} else {
		fmt.Printf("Marked %s as sick.\n", day.Format("2006-01-02"))
	}
	return nil
}
