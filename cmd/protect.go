package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmessner/fieldlog/internal/record"
)

var protectCmd = &cobra.Command{
	Use:   "protect <weekday|none>",
	Short: "Choose a protected weekday for the streak",
	Long: `Choose one weekday that never breaks the streak when skipped
(weekends are always protected). Use "none" to clear it.`,
	Args: cobra.ExactArgs(1),
	RunE: runProtect,
}

func runProtect(cmd *cobra.Command, args []string) error {
	var weekday *int
	raw := strings.ToLower(args[0])
	if raw != "none" {
		found := false
		for d := time.Sunday; d <= time.Saturday; d++ {
			if strings.ToLower(d.String()) == raw {
				n := int(d)
				weekday = &n
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown weekday %q (want monday..sunday or none)", args[0])
		}
	}

	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	state, _ = record.SetProtectedDay(state, weekday)
	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if weekday == nil {
		fmt.Println("Protected weekday cleared.")
	} else {
		fmt.Printf("Protected weekday set to %s.\n", time.Weekday(*weekday))
	}
	return nil
}
