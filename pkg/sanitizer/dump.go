package sanitizer

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DumpFormat selects how Dump wraps its output.
type DumpFormat int

const (
	// DumpPre wraps the dump in a <pre> block.
	DumpPre DumpFormat = iota
	// DumpBreaks inserts <br /> before every newline.
	DumpBreaks
)

// Dump renders v as YAML for debug output. The dump is HTML-escaped in both formats.
func Dump(v any, format DumpFormat) string {
	body := Escape(dumpYAML(v))

	if format == DumpBreaks {
		return strings.ReplaceAll(body, "\n", "<br />\n")
	}

	return "<pre>" + body + "</pre>"
}

// yaml.v3 panics on types it cannot marshal (channels, funcs).
func dumpYAML(v any) (dump string) {
	defer func() {
		if recover() != nil {
			dump = fmt.Sprintf("%+v\n", v)
		}
	}()

	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v\n", v)
	}
	return string(out)
}
