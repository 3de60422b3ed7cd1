package cli

import (
	"context"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/boardgen/cli/cmd"
	"github.com/ardnew/boardgen/pkg"
)

// baseConfig is the base name of the configuration file of flag defaults.
const baseConfig = "config.yaml"

// baseLayout is the base name of the default layout file.
const baseLayout = "layout.yaml"

// CLI is the top-level command-line interface for boardgen.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Layout  string           `help:"YAML layout file (default: ${layout} if it exists)." placeholder:"FILE" short:"L" type:"existingfile"`
	Version kong.VersionFlag `help:"Print version and exit."`

	Generate cmd.Generate `cmd:"" default:"withargs" help:"Generate the scoreboard layout document"`
	Init     cmd.Init     `cmd:""                    help:"Write the layout as an editable YAML file"`
	Fmt      cmd.Fmt      `cmd:""                    help:"Format layout documents"`
	Query    cmd.Query    `cmd:""                    help:"List nodes matching a predicate"`
	Show     cmd.Show     `cmd:""                    help:"Print one node of a layout document"`
}

// Run executes the boardgen CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := pkg.MkdirAll()
	if err != nil {
		return err
	}

	configFilePath := pkg.ConfigPath(baseConfig)
	layoutFilePath := pkg.ConfigPath(baseLayout)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
		cmd.LayoutIdentifier: layoutFilePath,
		cmd.OutputIdentifier: cmd.DefaultOutput,
		"version":            pkg.Name + " " + pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those flags
	// during normal parsing, but this early scan also catches boolean flags
	// like --log-pretty.
	cli.Log.scan(args)

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolve, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// A layout file written by init is used unless --layout is given.
	layout := cli.Layout
	if layout == "" {
		if _, err := os.Stat(layoutFilePath); err == nil {
			layout = layoutFilePath
		}
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithLayoutFile(ctx, layout)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return unjoin(ktx.Run(ctx, &cli))
}

// unjoin returns the single error inside a join such as the one kong wraps
// command errors in, so callers logging it see its slog.LogValuer.
// Joins of several errors are returned unchanged.
func unjoin(err error) error {
	for {
		joined, ok := err.(interface{ Unwrap() []error })
		if !ok {
			return err
		}

		errs := joined.Unwrap()
		if len(errs) != 1 {
			return err
		}

		err = errs[0]
	}
}
