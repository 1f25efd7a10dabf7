// Package nest turns a directory into a chain of numbered subfolders.
//
// At level L the organizer creates a child named after L inside the current
// directory, moves every other entry into it, and descends. The loop runs until
// the configured depth is reached or the filesystem refuses to create the next
// child, which is the normal way a run ends once paths grow past the volume's
// length limit. Re-running over a partially nested tree converges on the same
// result: the child for the current level is never moved into itself and
// existing destinations are skipped rather than overwritten.
package nest
