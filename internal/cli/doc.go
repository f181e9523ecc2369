// Package cli implements the enginekit command line.
//
// Table commands read a JSON or YAML list of objects from --input (stdin by
// default) and print structured results as JSON, YAML or an escaped HTML dump
// (--output). Scalar results such as placeholders, slugs and shard paths are
// printed as plain lines.
//
//	enginekit group menu_id --select id,name --input dishes.yaml
//	enginekit index < dishes.json
//	enginekit placeholders 4 8 15 --dollar 1
//	enginekit store 42 ./photo.jpg
//
// Configuration comes from ENGINEKIT_* environment variables (see Config),
// optionally loaded from .env files. Logs go to stderr.
package cli
