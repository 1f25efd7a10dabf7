package nest

// Reason names why the organizer stopped.
type Reason string

const (
	ReasonMaxDepth      Reason = "max_depth_reached"
	ReasonCreationError Reason = "creation_error"
	ReasonListError     Reason = "list_error"
	ReasonInterrupted   Reason = "interrupted"
)

// Natural reports whether the run ended the way a full run is expected to end.
func (r Reason) Natural() bool {
	return r == ReasonMaxDepth || r == ReasonCreationError
}

// Result summarizes one organize run.
type Result struct {
	Root string
	// Levels is the highest level whose child was created and whose moves were all attempted.
	Levels int
	Reason Reason
	// Err holds the filesystem error behind creation_error or list_error.
	Err error

	Moved   int
	Skipped int
	Failed  int

	SkippedPaths []string
	FailedPaths  []string

	// FinalDir is the deepest directory the run reached.
	FinalDir string
}
