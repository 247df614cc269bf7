package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmessner/fieldlog/internal/achievements"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show milestone progress",
	Args:  cobra.NoArgs,
	RunE:  runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	for _, def := range achievements.Definitions {
		fmt.Println(def.Name)
		for i, p := range def.EvaluateAll(state) {
			mark := " "
			if p.Unlocked {
				mark = "x"
			}
			fmt.Printf("  [%s] %g (now: %g)\n", mark, def.Tiers[i], p.Current)
		}
	}
	return nil
}
