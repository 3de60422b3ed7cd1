// Package cli contains the command line interface for boardgen.
//
// # Usage
//
// With no command, boardgen generates the scoreboard layout document:
//
//	boardgen                        # writes GilloDaby_BetterScoreBoard.ui
//	boardgen -o - --rows 4          # writes a 4-row board to stdout
//	boardgen init                   # saves the layout as editable YAML
//	boardgen fmt board.ui           # normalizes a hand-edited document
//	boardgen query 'kind == "Label"' -s board.ui
//	boardgen show Line3Row -s board.ui
//
// # Layout
//
// The layout parameters come from --layout, or from layout.yaml in the
// configuration directory if that file exists, or else the built-in
// defaults. Flags on the generate command override individual parameters.
//
// # Configuration
//
// Flag defaults may be set in config.yaml in the configuration directory
// (see [resolve]). Flags given on the command line take precedence.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize output
//
// Log records are written to stderr.
//
// # Profiling Options
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/boardgen/pprof)
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o boardgen .
package cli
