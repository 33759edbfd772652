package domain

import "time"

// JobStatus enumerates job lifecycle states. Transitions are one-way:
// processing moves to exactly one of completed or failed and never back.
type JobStatus string

const (
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Job is the mutable record tracked for one generation run. Timestamps
// marshal as RFC 3339 strings; terminal fields stay absent until set.
type Job struct {
	ID             string      `json:"job_id"`
	Status         JobStatus   `json:"status"`
	ContentType    ContentType `json:"content_type"`
	CreatedAt      time.Time   `json:"created_at"`
	CompletedAt    time.Time   `json:"completed_at,omitzero"`
	FailedAt       time.Time   `json:"failed_at,omitzero"`
	OutputDir      string      `json:"output_dir"`
	OutputFilename string      `json:"output_filename,omitempty"`
	MediaType      string      `json:"media_type,omitempty"`
	Error          string      `json:"error,omitempty"`
	AudioURL       string      `json:"audio_url,omitempty"`
}

// Terminal reports whether the job reached a final state.
func (j Job) Terminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}
