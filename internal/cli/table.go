package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/menuworks/enginekit/pkg/logger"
	"github.com/menuworks/enginekit/pkg/tabular"
)

type searchResult struct {
	Position int         `json:"position" yaml:"position"`
	Row      tabular.Row `json:"row" yaml:"row"`
}

type placeholderResult struct {
	SQL  string `json:"sql" yaml:"sql"`
	Args any    `json:"args" yaml:"args"`
}

func addTableCommands(root *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "group field",
		Short: "Group rows by the value of a field",
		Args:  cobra.ExactArgs(1),
		RunE:  a.group,
	}
	a.addInputFlags(cmd)
	cmd.Flags().StringSlice("select", nil, "keep only these fields in grouped rows")
	cmd.Flags().Bool("direct", false, "store the first selected value instead of a row")
	cmd.Flags().Bool("skip-incomplete", false, "skip rows without the field instead of stopping")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "index [field]",
		Short: "Key rows by a unique field (default: id)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.index,
	}
	a.addInputFlags(cmd)
	cmd.Flags().Bool("strict", false, "fail instead of printing the table unchanged when a row lacks the field")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "search needle",
		Short: "Find the first row whose field equals needle",
		Args:  cobra.ExactArgs(1),
		RunE:  a.search,
	}
	a.addInputFlags(cmd)
	cmd.Flags().String("field", tabular.DefaultField, "field to compare")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "ids [field]",
		Short: "List distinct values of a field (default: id) in first-seen order",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.ids,
	}
	a.addInputFlags(cmd)
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "column field",
		Short: "List the values of a field, skipping rows without it",
		Args:  cobra.ExactArgs(1),
		RunE:  a.column,
	}
	a.addInputFlags(cmd)
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "placeholders [value...]",
		Short: "Build a placeholder list for IN (...) or VALUES (...)",
		Long: `Build a placeholder list for the given values.

With --named every value is a name=value pair and the names are used as
placeholders unless --prefix, --dollar or --force-question say otherwise.
With --args the bound arguments are printed next to the SQL fragment.`,
		RunE: a.placeholders,
	}
	cmd.Flags().String("prefix", "", "emit prefix0,prefix1,... (takes precedence over every other style)")
	cmd.Flags().Int("dollar", 0, "emit $n,$n+1,... starting at n")
	cmd.Flags().Bool("force-question", false, "emit ? for named values too")
	cmd.Flags().Bool("named", false, "treat values as name=value pairs")
	cmd.Flags().Bool("args", false, "print the SQL fragment together with its arguments")
	root.AddCommand(cmd)
}

func (a *app) group(cmd *cobra.Command, args []string) error {
	table, err := a.readTable(cmd)
	if err != nil {
		return err
	}

	var opts []tabular.GroupOption
	if fields, _ := cmd.Flags().GetStringSlice("select"); len(fields) > 0 {
		opts = append(opts, tabular.Select(fields...))
	}
	if direct, _ := cmd.Flags().GetBool("direct"); direct {
		opts = append(opts, tabular.DirectValue())
	}
	if skip, _ := cmd.Flags().GetBool("skip-incomplete"); skip {
		opts = append(opts, tabular.SkipIncomplete())
	}

	groups := tabular.GroupBy(table, args[0], opts...)
	a.log.DebugContext(cmd.Context(), "table grouped",
		logger.Field(args[0]),
		slog.Int("groups", groups.Len()),
	)

	return a.render(cmd, groups)
}

func (a *app) index(cmd *cobra.Command, args []string) error {
	table, err := a.readTable(cmd)
	if err != nil {
		return err
	}

	field := tabular.DefaultField
	if len(args) > 0 {
		field = args[0]
	}

	indexed, ok := tabular.Index(table, field)
	if ok {
		return a.render(cmd, indexed)
	}

	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		return fmt.Errorf("%w: %s", ErrIncompleteIndex, field)
	}

	a.log.WarnContext(cmd.Context(), "index skipped, row without field", logger.Field(field))
	return a.render(cmd, table)
}

func (a *app) search(cmd *cobra.Command, args []string) error {
	table, err := a.readTable(cmd)
	if err != nil {
		return err
	}

	field, _ := cmd.Flags().GetString("field")
	pos, ok := tabular.Search(table, args[0], field)
	if !ok {
		return fmt.Errorf("%w: %s=%s", ErrNotFound, field, args[0])
	}

	return a.render(cmd, searchResult{Position: pos, Row: table[pos]})
}

func (a *app) ids(cmd *cobra.Command, args []string) error {
	table, err := a.readTable(cmd)
	if err != nil {
		return err
	}

	field := tabular.DefaultField
	if len(args) > 0 {
		field = args[0]
	}

	return a.render(cmd, tabular.IDs(table, field))
}

func (a *app) column(cmd *cobra.Command, args []string) error {
	table, err := a.readTable(cmd)
	if err != nil {
		return err
	}

	return a.render(cmd, tabular.Column(table, args[0]))
}

func (a *app) placeholders(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	var opts []tabular.PlaceholderOption
	if flags.Changed("prefix") {
		prefix, _ := flags.GetString("prefix")
		opts = append(opts, tabular.WithPrefix(prefix))
	}
	if start, _ := flags.GetInt("dollar"); start > 0 {
		opts = append(opts, tabular.Dollar(start))
	}
	if force, _ := flags.GetBool("force-question"); force {
		opts = append(opts, tabular.ForceQuestionMarks())
	}

	var result placeholderResult
	if named, _ := flags.GetBool("named"); named {
		params := tabular.NewMap[any](len(args))
		for _, arg := range args {
			name, value, ok := strings.Cut(arg, "=")
			if !ok || name == "" {
				return fmt.Errorf("%w: expected name=value, got %q", ErrInvalidArgument, arg)
			}
			params.Set(tabular.Key(name), value)
		}
		result = placeholderResult{SQL: tabular.NamedPlaceholders(params, opts...), Args: params}
	} else {
		result = placeholderResult{SQL: tabular.Placeholders(args, opts...), Args: args}
	}

	if withArgs, _ := flags.GetBool("args"); withArgs {
		return a.render(cmd, result)
	}
	return a.println(cmd, result.SQL)
}
