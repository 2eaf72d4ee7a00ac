// Package commands defines the linediff CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - compare  Classify line differences between two files and export a
//     CSV bundle
//   - render   Convert a Markdown document into a standalone HTML page
//
// # Implementation
//
// The root command builds the logger, loads environment defaults, and wires
// the dependency graph (store, services) before any subcommand runs, so
// handlers share one app context.
package commands
