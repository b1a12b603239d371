package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hourlogger/excel"
	"hourlogger/export"
	"hourlogger/tracker"

	"github.com/spf13/cobra"
)

func newExportCommand(a *app) *cobra.Command {
	var (
		outDir   string
		workbook bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the log as employee_log_<date>.csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = a.cfg.ExportDir
			}

			var path string
			if workbook {
				var err error
				path, err = excel.NewExcelProcessor(a.svc, a.cfg.Location).ExportWorkbook(a.svc.Logs(), outDir, a.svc.Today())
				if err != nil {
					return err
				}
			} else {
				path = filepath.Join(outDir, export.FileName(a.svc.Today(), "csv"))
				content := export.ToDelimitedText(a.svc.Logs(), a.cfg.Location)
				if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (defaults to EXPORT_DIR)")
	cmd.Flags().BoolVar(&workbook, "xlsx", false, "write an Excel workbook instead of CSV")

	return cmd
}

func newClearCommand(a *app) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove today's log entries (requires the clearance password)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("password") {
				fmt.Fprint(cmd.ErrOrStderr(), "Enter password to confirm clearing the logs: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			removed, err := a.svc.ClearToday(password)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d removed)\n", tracker.ClearedMessage.Text, removed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "clearance password")

	return cmd
}

func newImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.xlsx|file.xls>",
		Short: "Import employees from an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			added, err := excel.NewExcelProcessor(a.svc, a.cfg.Location).ImportRoster(args[0])
			for _, e := range added {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", e.ID, e.Name)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d employees\n", len(added))
			return nil
		},
	}
}
