package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/quickcut/internal/export"
	"github.com/BruksfildServices01/quickcut/internal/server"
	"github.com/BruksfildServices01/quickcut/internal/usecase/download"
)

func newExportCmd() *cobra.Command {
	var (
		format string
		period string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export <target>",
		Short: "Write a collection or report to CSV or XLSX",
		Long: `Targets: appointments, barbers, services, customers, or report-<type>
where type is revenue, appointments, services or barbers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := server.Bootstrap(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			file, err := download.New(app.Repo).Execute(cmd.Context(), download.Request{
				Target: args[0],
				Format: format,
				Period: period,
			})
			if err != nil {
				return err
			}

			if output == "" {
				output = file.Name
			}
			if output == "-" {
				_, err = out(cmd).Write(file.Body)
				return err
			}
			if err := os.WriteFile(output, file.Body, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(out(cmd), "wrote %s (%d bytes)\n", output, len(file.Body))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", export.FormatCSV, "csv or xlsx")
	cmd.Flags().StringVarP(&period, "period", "p", "", "report period: week, month, quarter or year")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default <target>-<date>.<format>)")
	return cmd
}
