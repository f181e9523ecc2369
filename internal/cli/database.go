package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/menuworks/enginekit/pkg/datefmt"
	"github.com/menuworks/enginekit/pkg/logger"
	"github.com/menuworks/enginekit/pkg/pg"
	"github.com/menuworks/enginekit/pkg/tabular"
)

// idsToken in a query is replaced by one named placeholder per --ids value.
const idsToken = "{ids}"

func addDatabaseCommands(root *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "query sql [arg...]",
		Short: "Run a query against Postgres and print the result table",
		Long: `Run a query against Postgres (ENGINEKIT_PG_CONN_URL) and print the rows.

Positional arguments are bound as $1, $2, ... With --ids the query must
contain {ids}, which expands to @id0,@id1,... bound to the given values:

  enginekit query 'SELECT * FROM dishes WHERE menu_id IN ({ids})' --ids 3,7 --group menu_id`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.query,
	}
	cmd.Flags().StringSlice("ids", nil, "values for the {ids} placeholder list")
	cmd.Flags().String("group", "", "group the result by this field")
	cmd.Flags().String("index", "", "key the result by this field")
	cmd.Flags().Bool("dates", false, "bind arguments that look like dates (YYYY-MM-DD or DD.MM.YYYY) as DATE")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "ping",
		Short: "Check the Postgres connection",
		Args:  cobra.NoArgs,
		RunE:  a.ping,
	}
	root.AddCommand(cmd)
}

func (a *app) query(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	ctx := cmd.Context()

	sql := args[0]
	var queryArgs []any

	if ids, _ := flags.GetStringSlice("ids"); len(ids) > 0 {
		if !strings.Contains(sql, idsToken) {
			return fmt.Errorf("%w: --ids requires %s in the query", ErrInvalidArgument, idsToken)
		}
		if len(args) > 1 {
			return fmt.Errorf("%w: --ids cannot be combined with positional arguments", ErrInvalidArgument)
		}
		sql = strings.ReplaceAll(sql, idsToken, tabular.Placeholders(ids, tabular.WithPrefix("@id")))
		queryArgs = []any{tabular.NamedArgs("id", ids)}
	} else {
		dates, _ := flags.GetBool("dates")
		for _, arg := range args[1:] {
			if dates {
				if d := datefmt.PgDate(arg, datefmt.DefaultInputLayout); d.Valid {
					queryArgs = append(queryArgs, d)
					continue
				}
			}
			queryArgs = append(queryArgs, arg)
		}
	}

	db, err := a.connect(ctx, a.cfg.Postgres)
	if err != nil {
		return err
	}
	defer db.Close()

	start := time.Now()
	table, err := tabular.Query(ctx, db, sql, queryArgs...)
	if err != nil {
		if pg.IsUndefinedTableError(err) {
			a.log.ErrorContext(ctx, "query references a missing table", logger.Error(err))
		}
		return err
	}
	a.log.DebugContext(ctx, "query finished",
		logger.Rows(len(table)),
		logger.Duration(time.Since(start)),
	)

	if field, _ := flags.GetString("group"); field != "" {
		return a.render(cmd, tabular.GroupBy(table, field))
	}
	if field, _ := flags.GetString("index"); field != "" {
		indexed, ok := tabular.Index(table, field)
		if !ok {
			return fmt.Errorf("%w: %s", ErrIncompleteIndex, field)
		}
		return a.render(cmd, indexed)
	}

	return a.render(cmd, table)
}

func (a *app) ping(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	db, err := a.connect(ctx, a.cfg.Postgres)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := pg.Healthcheck(db)(ctx); err != nil {
		return err
	}

	return a.println(cmd, "ok")
}
