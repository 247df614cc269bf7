package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmessner/fieldlog/internal/record"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore a backup file",
	Long: `Validate and restore a backup written by "fieldlog export". The
backup replaces the current state entirely; a rejected backup changes
nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading backup: %w", err)
	}

	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	state, err = record.ImportBackup(state, string(data), time.Now())
	if err != nil {
		return err
	}
	if err := saveState(st, state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Println("Backup restored.")
	return nil
}
