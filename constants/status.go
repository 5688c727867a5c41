package constants

// JobStatus is the canonical status for rows in scan_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusOK     JobStatus = "OK"     // pipeline completed, fields extracted
	JobStatusFailed JobStatus = "FAILED" // terminal failure of any kind
)

// JobStatuses holds the allowed values for the status field in ScanJob.
var JobStatuses = []string{string(JobStatusOK), string(JobStatusFailed)}
