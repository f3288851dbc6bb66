package cmd

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/inepdata/surveysweep"
	"github.com/inepdata/surveysweep/pkg/reconcile"
)

// NewRunCommand creates the run command.
func NewRunCommand(a App) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the quarterly data-quality sweep",
		Long: `Run loads the quarter's PEARS exports, flags every record needing a
correction, writes the corrections workbooks, and sends the notification
emails. With --dry-run the workbooks are still written but no mail is
sent.`,
		RunE: func(c *cobra.Command, _ []string) error {
			pipeline, err := a.Pipeline()
			if err != nil {
				return err
			}

			result, err := pipeline.Run(c.Context())
			if err != nil {
				return err
			}

			return printRunResult(c.OutOrStdout(), result)
		},
	}
}

// printRunResult renders the corrections summary and output paths.
func printRunResult(w io.Writer, result *surveysweep.RunResult) error {
	fmt.Fprintf(w, "Reporting period: %s (%s)\n\n", result.Period.Quarter, result.Period.SurveyLabel)

	if err := renderTable(w, reconcile.SummaryTable(result.Summary)); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nCorrections workbook: %s\n", result.ReportPath)
	fmt.Fprintf(w, "Former staff workbook: %s\n", result.FormerPath)
	fmt.Fprintf(w, "Notifications sent: %d\n", result.Sent)

	if len(result.Failures) > 0 {
		fmt.Fprintf(w, "Delivery failures: %d\n", len(result.Failures))
		for _, f := range result.Failures {
			fmt.Fprintf(w, "  %s <%s>: %v\n", f.Name, f.Email, f.Err)
		}
	}
	return nil
}

// renderTable writes one corrections table in console form.
func renderTable(w io.Writer, t reconcile.Table) error {
	table := tablewriter.NewTable(w)

	headers := make([]any, len(t.Headers))
	for i, h := range t.Headers {
		headers[i] = h
	}
	table.Header(headers...)

	for _, row := range t.Rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}

	return table.Render()
}
