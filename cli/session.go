package cli

import (
	"fmt"
	"strconv"
	"strings"

	"hourlogger/tracker"
	"hourlogger/utils"

	"github.com/spf13/cobra"
)

func newEmployeeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage the employee roster",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add an employee",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employee, err := a.svc.AddEmployee(strings.Join(args, " "))
			if err != nil {
				return userError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (id %d)\n", tracker.AddedMessage(employee.Name).Text, employee.ID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List employees with their current status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, e := range a.svc.Employees() {
				fmt.Fprintf(out, "%d\t%s\t%s\n", e.ID, e.Name, a.svc.Status(e.ID))
			}
			return nil
		},
	})

	return cmd
}

func newCheckInCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkin <employee-id>",
		Short: "Open a work session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}
			if _, err := a.svc.CheckIn(id); err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tracker.CheckedInMessage.Text)
			return nil
		},
	}
}

func newCheckOutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <employee-id>",
		Short: "Close the open work session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}
			if _, err := a.svc.CheckOut(id); err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tracker.CheckedOutMessage.Text)
			return nil
		},
	}
}

func newStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <employee-id>",
		Short: "Show whether an employee is logged in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}
			if _, ok := a.svc.Employee(id); !ok {
				return userError(tracker.ErrUnknownEmployee)
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.svc.Status(id))
			return nil
		},
	}
}

func newLogCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Print the work log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, l := range a.svc.Logs() {
				checkOut := "Currently Logged In"
				if l.CheckOut != nil {
					checkOut = utils.FormatLocale(*l.CheckOut, a.cfg.Location)
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", l.EmployeeName, utils.FormatLocale(l.CheckIn, a.cfg.Location), checkOut)
			}
			return nil
		},
	}
}

func parseEmployeeID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid employee id %q", s)
	}
	return id, nil
}
