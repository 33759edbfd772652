package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"contentmaker/internal/domain"
)

// PodcastInfo is the podcast-typed counterpart of VideoInfo.
func (a *App) PodcastInfo(w http.ResponseWriter, r *http.Request) {
	job, err := a.Store.Get(chi.URLParam(r, "job_id"))
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "job not found")
		return
	}
	if job.ContentType != domain.ContentTypePodcast {
		a.error(w, http.StatusBadRequest, "wrong_content_type", "job is not a podcast type")
		return
	}
	if job.Status != domain.JobStatusCompleted {
		a.error(w, http.StatusBadRequest, "not_completed", "podcast generation not completed")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"job_id":       job.ID,
		"content_type": job.ContentType,
		"created_at":   job.CreatedAt,
		"completed_at": job.CompletedAt,
		"audio_url":    job.AudioURL,
		"download_url": fmt.Sprintf("/download/%s", job.ID),
	})
}
