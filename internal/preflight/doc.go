// Package preflight provides readiness checks for the directories and
// external commands burrow depends on.
//
// The run command checks the state directory and, once a drive is chosen,
// the organize root before touching it. The "burrow drives" command reports
// the same checks alongside the mount table.
package preflight
