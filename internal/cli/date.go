package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/menuworks/enginekit/pkg/datefmt"
)

func addDateCommands(root *cobra.Command, a *app) {
	date := &cobra.Command{
		Use:   "date",
		Short: "Convert dates between display layouts and MySQL format",
	}
	root.AddCommand(date)

	cmd := &cobra.Command{
		Use:   "mysql value",
		Short: "Convert a display date (02.01.2006) to YYYY-MM-DD",
		Args:  cobra.ExactArgs(1),
		RunE:  a.dateMySQL,
	}
	cmd.Flags().String("layout", datefmt.DefaultInputLayout, "Go layout of the input")
	date.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "format value",
		Short: "Render a YYYY-MM-DD date or YYYY-MM-DD HH:MM[:SS] datetime",
		Args:  cobra.ExactArgs(1),
		RunE:  a.dateFormat,
	}
	cmd.Flags().String("layout", "", "Go layout of the output (default 02.01.06, or 02.01.2006 15:04 with --time)")
	cmd.Flags().Bool("time", false, "the value carries a time of day")
	date.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "periodic value",
		Short: "Render a yearless YYYY-MM-DD date as DD.MM, or with --layout in --year",
		Args:  cobra.ExactArgs(1),
		RunE:  a.datePeriodic,
	}
	cmd.Flags().String("layout", "", "Go layout of the output (default: DD.MM from the input text)")
	cmd.Flags().Int("year", time.Now().Year(), "year to place the date in")
	date.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "day n",
		Short: "Render the date of zero-based day n of the year",
		Args:  cobra.ExactArgs(1),
		RunE:  a.dateDay,
	}
	cmd.Flags().String("layout", datefmt.DefaultDayLayout, "Go layout of the output")
	cmd.Flags().Int("year", time.Now().Year(), "year")
	date.AddCommand(cmd)
}

func (a *app) dateMySQL(cmd *cobra.Command, args []string) error {
	layout, _ := cmd.Flags().GetString("layout")
	s, err := datefmt.ToMySQLDate(args[0], layout)
	if err != nil {
		return err
	}
	return a.println(cmd, s)
}

func (a *app) dateFormat(cmd *cobra.Command, args []string) error {
	layout, _ := cmd.Flags().GetString("layout")
	withTime, _ := cmd.Flags().GetBool("time")

	convert := datefmt.ConvertDate
	if withTime {
		convert = datefmt.ConvertDateTime
	}

	s, err := convert(args[0], layout)
	if err != nil {
		return err
	}
	return a.println(cmd, s)
}

func (a *app) datePeriodic(cmd *cobra.Command, args []string) error {
	layout, _ := cmd.Flags().GetString("layout")
	year, _ := cmd.Flags().GetInt("year")

	s, err := datefmt.ConvertDateWithoutYear(args[0], layout, year)
	if err != nil {
		return err
	}
	return a.println(cmd, s)
}

func (a *app) dateDay(cmd *cobra.Command, args []string) error {
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: day %q", ErrInvalidArgument, args[0])
	}
	layout, _ := cmd.Flags().GetString("layout")
	year, _ := cmd.Flags().GetInt("year")

	s, err := datefmt.FormatDayOfYear(day, year, layout)
	if err != nil {
		return err
	}
	return a.println(cmd, s)
}
