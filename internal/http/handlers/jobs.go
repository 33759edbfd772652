package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"contentmaker/internal/domain"
	"contentmaker/internal/pipeline"
)

// Status returns the job record verbatim. Polling this endpoint is the only
// way clients observe completion or failure.
func (a *App) Status(w http.ResponseWriter, r *http.Request) {
	job, err := a.Store.Get(chi.URLParam(r, "job_id"))
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "job not found")
		return
	}
	a.json(w, http.StatusOK, job)
}

// Download serves the primary artifact of a completed job. A still-processing
// job answers 400, distinct from the 404 of an unknown id or a missing file.
func (a *App) Download(w http.ResponseWriter, r *http.Request) {
	job, err := a.Store.Get(chi.URLParam(r, "job_id"))
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "job not found")
		return
	}
	if job.Status != domain.JobStatusCompleted {
		a.error(w, http.StatusBadRequest, "not_completed", "content generation not completed")
		return
	}

	filename, mediaType := job.OutputFilename, job.MediaType
	if filename == "" {
		// Records written before output bindings were stored carry only the
		// content type; fall back to its default artifact.
		filename, mediaType = pipeline.DefaultArtifact(job.ContentType)
	}

	path := filepath.Join(job.OutputDir, filename)
	if _, err := os.Stat(path); err != nil {
		a.error(w, http.StatusNotFound, "not_found", "artifact file not found")
		return
	}

	downloadName := fmt.Sprintf("%s_%s%s", job.ContentType, job.ID, filepath.Ext(filename))
	w.Header().Set("Content-Type", mediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	http.ServeFile(w, r, path)
}
