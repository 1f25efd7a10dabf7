// Package run wires one burrow invocation end to end: logging, the instance
// lock, the long path adjustment, waiting for a drive, and nesting its
// contents. The CLI calls Execute and renders the returned Summary.
package run
