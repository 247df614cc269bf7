package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmessner/fieldlog/internal/record"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a full backup to stdout",
	Long: `Write the complete state document to stdout. The payload is the
same JSON stored on disk and can be restored with "fieldlog import".`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	state, st, err := openState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer st.Close()

	payload, err := record.ExportBackup(state)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Println(payload)
	return nil
}
