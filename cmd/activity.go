package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmessner/fieldlog/internal/record"
)

var (
	activityLocation  string
	activityComments  string
	activityDate      string
	activityRecurring bool
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Track visits and studies",
}

var activityAddCmd = &cobra.Command{
	Use:   "add <visit|study> <name>",
	Short: "Record a visit or study",
	Args:  cobra.ExactArgs(2),
	RunE:  runActivityAdd,
}

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded activities",
	Args:  cobra.NoArgs,
	RunE:  runActivityList,
}

var activityRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an activity by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivityRemove,
}

func init() {
	activityAddCmd.Flags().StringVar(&activityLocation, "location", "", "Where the activity took place")
	activityAddCmd.Flags().StringVar(&activityComments, "comments", "", "Free-form notes")
	activityAddCmd.Flags().StringVar(&activityDate, "date", "", "Activity date (YYYY-MM-DD), defaults to today")
	activityAddCmd.Flags().BoolVar(&activityRecurring, "recurring", false, "Mark as recurring")

	activityCmd.AddCommand(activityAddCmd)
	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activityRemoveCmd)
}

func runActivityAdd(cmd *cobra.Command, args []string) error {
	var kind record.ActivityType
	switch args[0] {
	case "visit":
		kind = record.ActivityVisit
	case "study":
		kind = record.ActivityStudy
	default:
		return fmt.Errorf("unknown activity type %q (want visit or study)", args[0])
	}

	item := record.ActivityItem{
		Type:      kind,
		Name:      args[1],
		Location:  activityLocation,
		Comments:  activityComments,
		Recurring: activityRecurring,
	}
	if activityDate != "" {
		day, err := time.Parse("2006-01-02", activityDate)
		if err != nil {
			return fmt.Errorf("cannot read %q as a date (want YYYY-MM-DD)", activityDate)
		}
		item.Date = day
	}

	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	state, _ = record.AddActivity(state, item)
	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Recorded %s %q.\n", args[0], args[1])
	return nil
}

func runActivityList(cmd *cobra.Command, args []string) error {
	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	if len(state.Activities) == 0 {
		fmt.Println("No activities recorded.")
		return nil
	}
	for _, a := range state.Activities {
		line := fmt.Sprintf("%s  %-5s  %s", a.Date.Format("2006-01-02"), a.Type, a.Name)
		if a.Location != "" {
			line += "  @ " + a.Location
		}
		if a.Recurring {
			line += "  (recurring)"
		}
		fmt.Println(line)
		fmt.Printf("    id: %s\n", a.ID)
	}
	return nil
}

func runActivityRemove(cmd *cobra.Command, args []string) error {
	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	state, found := record.RemoveActivity(state, args[0])
	if !found {
		return fmt.Errorf("no activity with id %q", args[0])
	}
	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Println("Activity removed.")
	return nil
}
