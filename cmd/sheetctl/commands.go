package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/atobones/google-sheets-automation/internal/config"
	"github.com/atobones/google-sheets-automation/internal/infra/spreadsheet"
	"github.com/atobones/google-sheets-automation/internal/usecase"
)

// workflow bundles the use cases behind the menu commands. Each command
// opens the workbook, runs one operation and closes it again.
type workflow struct {
	cfg      *config.Config
	workbook *spreadsheet.Workbook

	setup        *usecase.SetupSheetsUseCase
	addLead      *usecase.AddLeadUseCase
	updateStatus *usecase.UpdateLeadStatusUseCase
	report       *usecase.WeeklyReportUseCase
	archive      *usecase.ArchiveDoneLeadsUseCase
}

func newWorkflow() (*workflow, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	workbook, err := spreadsheet.Open(cfg.WorkbookPath)
	if err != nil {
		return nil, err
	}
	schema := usecase.NewSchemaManager(workbook, cfg.Workflow)
	activity := usecase.NewActivityLog(schema)
	return &workflow{
		cfg:          cfg,
		workbook:     workbook,
		setup:        usecase.NewSetupSheetsUseCase(schema, activity),
		addLead:      usecase.NewAddLeadUseCase(schema, activity),
		updateStatus: usecase.NewUpdateLeadStatusUseCase(schema, activity),
		report:       usecase.NewWeeklyReportUseCase(schema, activity),
		archive:      usecase.NewArchiveDoneLeadsUseCase(schema, activity),
	}, nil
}

func (w *workflow) Close() error {
	return w.workbook.Close()
}

func setupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Create the Leads and Logs sheets with their headers",
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow()
			if err != nil {
				return err
			}
			defer wf.Close()
			if err := wf.setup.Execute(cmd.Context()); err != nil {
				return err
			}
			color.Green("Sheets %q and %q are ready in %s.",
				wf.cfg.Workflow.LeadsSheet, wf.cfg.Workflow.LogsSheet, wf.cfg.WorkbookPath)
			return nil
		},
	}
}

func addCmd() *cobra.Command {
	var input usecase.AddLeadInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Capture a new lead",
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow()
			if err != nil {
				return err
			}
			defer wf.Close()
			out, err := wf.addLead.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			color.Green("Lead created: %s", out.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Name, "name", "", "lead name")
	cmd.Flags().StringVar(&input.Phone, "phone", "", "lead phone")
	cmd.Flags().StringVar(&input.Source, "source", "", "where the lead came from (default \"manual\")")
	cmd.Flags().StringVar(&input.Message, "message", "", "free-text message")
	cmd.Flags().StringVar(&input.Assignee, "assignee", "", "who owns this lead")
	return cmd
}

func addTestLeadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-test-lead",
		Short: "Insert one hardcoded demo lead",
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow()
			if err != nil {
				return err
			}
			defer wf.Close()
			out, err := wf.addLead.Execute(cmd.Context(), usecase.AddLeadInput{
				Name:    "Test Lead",
				Phone:   "+10000000000",
				Source:  "test",
				Message: "Inserted by sheetctl add-test-lead",
			})
			if err != nil {
				return err
			}
			color.Green("Test lead created: %s", out.ID)
			return nil
		},
	}
}

func setStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <lead-id> <status>",
		Short: "Move a lead to a new status (NEW, IN_PROGRESS, DONE, CLOSED)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow()
			if err != nil {
				return err
			}
			defer wf.Close()
			input := usecase.UpdateStatusInput{ID: args[0], Status: args[1]}
			if err := wf.updateStatus.Execute(cmd.Context(), input); err != nil {
				return err
			}
			color.Green("Lead %s is now %s.", args[0], args[1])
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Write the weekly per-status report sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow()
			if err != nil {
				return err
			}
			defer wf.Close()
			out, err := wf.report.Execute(cmd.Context())
			if err != nil {
				return err
			}
			if out.Skipped {
				color.Yellow("No leads yet; nothing to report.")
				return nil
			}
			color.Green("Report written to sheet %q.", out.SheetName)
			for _, c := range out.Counts {
				fmt.Printf("  %-12s %d\n", c.Status, c.Count)
			}
			return nil
		},
	}
}

func archiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "Move aged DONE leads to the Archive sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow()
			if err != nil {
				return err
			}
			defer wf.Close()
			out, err := wf.archive.Execute(cmd.Context())
			if err != nil {
				return err
			}
			switch {
			case out.Skipped:
				color.Yellow("No leads yet; nothing to archive.")
			case out.Archived == 0:
				color.Yellow("No DONE leads older than the cutoff.")
			default:
				color.Green("Archived %d lead(s) to %q.", out.Archived, wf.cfg.Workflow.ArchiveSheet)
			}
			return nil
		},
	}
}
