package constants

// JobStatus is the canonical status for rows in ocr_jobs.
type JobStatus string

// Stable values (store these exact strings in the DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"    // accepted, not yet dispatched
	JobStatusRunning   JobStatus = "RUNNING"   // in progress
	JobStatusSucceeded JobStatus = "SUCCEEDED" // artifact written
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure
)

// RunStatus is the canonical status for rows in batch_runs.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "RUNNING"
	RunStatusFinished RunStatus = "FINISHED"
)
