// Package cmd provides the boardgen subcommands: generate, init, fmt,
// query, and show.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file of flag defaults.
	ConfigIdentifier = "config"

	// LayoutIdentifier is the kong variable identifier containing the path of
	// the default layout file written by init.
	LayoutIdentifier = "layout"

	// OutputIdentifier is the kong variable identifier containing the default
	// output path of generate.
	OutputIdentifier = "output"
)
