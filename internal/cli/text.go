package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/menuworks/enginekit/pkg/file"
	"github.com/menuworks/enginekit/pkg/random"
	"github.com/menuworks/enginekit/pkg/sanitizer"
	"github.com/menuworks/enginekit/pkg/slug"
)

var charsets = map[string]string{
	"alnum":  random.AlphanumericChars,
	"lower":  random.LowerChars,
	"digits": random.DigitChars,
	"hex":    random.HexChars,
}

func addTextCommands(root *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "urlpath raw",
		Short: "Normalize a request path to lowercase [a-z0-9/_-] without trailing slashes",
		Args:  cobra.ExactArgs(1),
		RunE:  a.urlpath,
	}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "slug text...",
		Short: "Transliterate text and turn it into a URL slug",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.slug,
	}
	cmd.Flags().Int("max", 0, "maximum slug length in runes (0: unlimited)")
	cmd.Flags().String("sep", "-", "word separator")
	cmd.Flags().Int("suffix", 0, "append a random suffix of this length")
	cmd.Flags().Bool("keep-case", false, "do not lowercase")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "shard id [filename]",
		Short: "Print the sharded storage directory for an id",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  a.shard,
	}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "random length",
		Short: "Generate a random string",
		Args:  cobra.ExactArgs(1),
		RunE:  a.random,
	}
	cmd.Flags().String("charset", "alnum", "alnum, lower, digits, hex or a literal set of characters")
	root.AddCommand(cmd)
}

func (a *app) urlpath(cmd *cobra.Command, args []string) error {
	return a.println(cmd, sanitizer.URLPath(args[0]))
}

func (a *app) slug(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	maxLen, _ := flags.GetInt("max")
	sep, _ := flags.GetString("sep")
	suffix, _ := flags.GetInt("suffix")
	keepCase, _ := flags.GetBool("keep-case")

	s := slug.Make(strings.Join(args, " "),
		slug.MaxLength(maxLen),
		slug.Separator(sep),
		slug.WithSuffix(suffix),
		slug.Lowercase(!keepCase),
	)
	return a.println(cmd, s)
}

func (a *app) shard(cmd *cobra.Command, args []string) error {
	dir := file.ShardPath(args[0])
	if len(args) > 1 {
		dir += "/" + file.SanitizeFilename(args[1])
	}
	return a.println(cmd, dir)
}

func (a *app) random(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return fmt.Errorf("%w: length %q", ErrInvalidArgument, args[0])
	}

	charset, _ := cmd.Flags().GetString("charset")
	if named, ok := charsets[charset]; ok {
		charset = named
	}

	return a.println(cmd, random.String(n, charset))
}
