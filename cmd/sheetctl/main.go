package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetctl",
		Short: "Lead-tracking workflow over a spreadsheet workbook",
		Long: `sheetctl manages a lightweight lead-tracking workflow stored in an
xlsx workbook: capture leads, move them through NEW, IN_PROGRESS, DONE
and CLOSED, summarize the last week per status, and archive aged DONE
leads into a separate sheet.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(setupCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(addTestLeadCmd())
	rootCmd.AddCommand(setStatusCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(archiveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
