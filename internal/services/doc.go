// Package services defines shared utilities consumed by the drive monitor,
// the nesting organizer, and the OS integration shims.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, nesting levels, and mount points
//     for logging.
//   - Structured error markers plus the Wrap helper that separate per-item
//     failures from loop-ending ones and from ignorable environment tweaks.
//
// Use these helpers when wiring new components so operational behaviour
// (error classification, observability) stays uniform across the program.
package services
