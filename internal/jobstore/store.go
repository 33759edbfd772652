// Package jobstore holds the in-memory source of truth for generation jobs.
// Records live for the process lifetime only; nothing survives a restart.
package jobstore

import (
	"sync"
	"time"

	"contentmaker/internal/domain"
)

// Store maps job identifiers to their records. One runner goroutine writes a
// given job; any number of HTTP readers may observe it concurrently. Terminal
// transitions replace the whole record under the lock, so a reader can never
// see a completed status without its output binding.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]domain.Job
}

// Completion carries every field of the terminal completed transition.
type Completion struct {
	OutputFilename string
	MediaType      string
	AudioURL       string
	At             time.Time
}

func New() *Store {
	return &Store{jobs: make(map[string]domain.Job)}
}

// Insert registers a new record. An existing id is overwritten only if the
// caller generated a colliding UUID, which is not a case worth guarding.
func (s *Store) Insert(job domain.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

// Get returns a copy of the record or domain.ErrNotFound.
func (s *Store) Get(id string) (domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return domain.Job{}, domain.ErrNotFound
	}
	return job, nil
}

// Complete moves a processing job to completed. Once a job is terminal the
// transition is rejected, keeping observed statuses monotonic.
func (s *Store) Complete(id string, c Completion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return domain.ErrNotFound
	}
	if job.Terminal() {
		return domain.ErrTerminal
	}
	job.Status = domain.JobStatusCompleted
	job.CompletedAt = c.At
	job.OutputFilename = c.OutputFilename
	job.MediaType = c.MediaType
	job.AudioURL = c.AudioURL
	s.jobs[id] = job
	return nil
}

// Fail moves a processing job to failed, storing the message verbatim.
func (s *Store) Fail(id, message string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return domain.ErrNotFound
	}
	if job.Terminal() {
		return domain.ErrTerminal
	}
	job.Status = domain.JobStatusFailed
	job.FailedAt = at
	job.Error = message
	s.jobs[id] = job
	return nil
}

// List returns copies of every record in unspecified order.
func (s *Store) List() []domain.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		out = append(out, job)
	}
	return out
}
