package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmessner/fieldlog/internal/record"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Close the books and start a new service year",
	Long: `Repoint the active service year at the one containing today and
reset the month counters. Prior years stay frozen in the archives.`,
	Args: cobra.NoArgs,
	RunE: runArchive,
}

func runArchive(cmd *cobra.Command, args []string) error {
	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	closed := state.CurrentServiceYear
	closedHours := record.ServiceYearHours(state, closed)

	state, _ = record.ArchiveAndStartNewYear(state, time.Now())
	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if closed != state.CurrentServiceYear {
		fmt.Printf("Closed %s with %s.\n", closed, formatHours(closedHours))
	}
	fmt.Printf("Started service year %s.\n", state.CurrentServiceYear)
	return nil
}
