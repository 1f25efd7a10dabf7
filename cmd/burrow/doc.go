// Package main hosts the burrow CLI entrypoint and command graph.
//
// Running burrow with no subcommand waits for a removable drive and nests its
// contents. Subcommands expose the same run against an explicit directory,
// a view of the mount table as burrow classifies it, and configuration
// scaffolding. The heavy lifting lives in internal/run; commands here only
// resolve configuration and render results.
package main
