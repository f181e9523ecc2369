package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/menuworks/enginekit/pkg/logger"
	"github.com/menuworks/enginekit/pkg/sanitizer"
	"github.com/menuworks/enginekit/pkg/tabular"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
	outputHTML = "html"
)

// render writes a structured result to stdout in the selected output format.
// Maps built by tabular keep their key order in every format.
func (a *app) render(cmd *cobra.Command, v any) error {
	w := cmd.OutOrStdout()

	switch a.output {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case outputHTML:
		_, err := fmt.Fprintln(w, sanitizer.Dump(v, sanitizer.DumpPre))
		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// println writes a scalar result as a plain line.
func (a *app) println(cmd *cobra.Command, s string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}

func (a *app) addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.input, "input", "i", "-", "table file (.json, .yaml, .yml) or - for stdin")
	cmd.Flags().StringVarP(&a.format, "format", "f", "", "input format: json or yaml (default: from file extension, json for stdin)")
}

// readTable decodes the table named by --input.
func (a *app) readTable(cmd *cobra.Command) (tabular.Table, error) {
	format := tabular.Format(strings.ToLower(a.format))

	var (
		table tabular.Table
		err   error
	)
	switch {
	case a.input == "" || a.input == "-":
		if format == "" {
			format = tabular.FormatJSON
		}
		table, err = tabular.Decode(cmd.InOrStdin(), format)
	case format == "":
		table, err = tabular.DecodeFile(a.input)
	default:
		table, err = decodeFileAs(a.input, format)
	}
	if err != nil {
		return nil, err
	}

	a.log.DebugContext(cmd.Context(), "table loaded",
		logger.Source(a.input),
		logger.Rows(len(table)),
	)
	return table, nil
}

func decodeFileAs(path string, format tabular.Format) (tabular.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tabular.ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	return tabular.Decode(f, format)
}
