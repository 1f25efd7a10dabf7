package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for run correlation identifiers.
	FieldRunID = "run_id"
	// FieldLevel is the standardized structured logging key for the nesting level.
	FieldLevel = "level"
	// FieldMount is the standardized structured logging key for the organized mount point.
	FieldMount = "mount"
	// FieldEventType classifies a log line for filtering ("drive_detected", "item_skipped", ...).
	FieldEventType = "event_type"
	// FieldErrorHint carries the suggested next step for warnings and errors.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldAlert flags warnings or anomalies that should stand out in structured logs.
	FieldAlert = "alert"
)
