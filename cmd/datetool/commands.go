package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/clockforge/datetime-go/datetime"
)

func newNowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current local date and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := datetime.Now()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), now.ISOFormat())
			return nil
		},
	}
}

func newTodayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print the current local date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := datetime.Today()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), today.ISOFormat())
			return nil
		},
	}
}

func newDiffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Print the elapsed time between two ISO datetimes",
		Long: `Print the elapsed time from one instant to another.

Both arguments are ISO datetimes (YYYY-MM-DDTHH:MM:SS[.ffffff]); a bare
date is read as midnight of that day.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseInstant(args[0])
			if err != nil {
				return err
			}
			to, err := parseInstant(args[1])
			if err != nil {
				return err
			}
			slog.Debug("parsed instants", "from", from, "to", to)
			fmt.Fprintln(cmd.OutOrStdout(), to.Sub(from))
			return nil
		},
	}
}

func newFmtCommand() *cobra.Command {
	var layout string

	cmd := &cobra.Command{
		Use:   "fmt <datetime>",
		Short: "Render an ISO datetime through a strftime layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := parseInstant(args[0])
			if err != nil {
				return err
			}
			out, err := dt.Format(layout)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&layout, "layout", "%c", "strftime layout to render with")

	return cmd
}

func newParseCommand() *cobra.Command {
	var layout string

	cmd := &cobra.Command{
		Use:   "parse <value>",
		Short: "Parse a datetime with a strptime layout and print it as ISO",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := datetime.Strptime(args[0], layout)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dt.ISOFormat())
			return nil
		},
	}
	cmd.Flags().StringVar(&layout, "layout", "%Y-%m-%dT%H:%M:%S", "strptime layout to parse with")

	return cmd
}

// parseInstant reads an ISO datetime, falling back to a bare date read
// as midnight.
func parseInstant(s string) (datetime.DateTime, error) {
	if dt, err := datetime.DateTimeFromISOFormat(s); err == nil {
		return dt, nil
	}
	d, err := datetime.DateFromISOFormat(s)
	if err != nil {
		return datetime.DateTime{}, fmt.Errorf("not an ISO date or datetime: %q", s)
	}
	return datetime.Combine(d, datetime.Time{}), nil
}
