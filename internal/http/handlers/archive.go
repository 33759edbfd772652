package handlers

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"contentmaker/internal/domain"
	"contentmaker/pkg/zip"
)

// Archive bundles every artifact in a completed job's output directory into
// one zip download, intermediates included.
func (a *App) Archive(w http.ResponseWriter, r *http.Request) {
	job, err := a.Store.Get(chi.URLParam(r, "job_id"))
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "job not found")
		return
	}
	if job.Status != domain.JobStatusCompleted {
		a.error(w, http.StatusBadRequest, "not_completed", "content generation not completed")
		return
	}

	entries, err := os.ReadDir(job.OutputDir)
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "artifact directory not found")
		return
	}

	var assets []zip.Asset
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(job.OutputDir, entry.Name()))
		if err != nil {
			continue
		}
		assets = append(assets, zip.Asset{
			Filename: entry.Name(),
			MIME:     mime.TypeByExtension(filepath.Ext(entry.Name())),
			Data:     data,
		})
	}
	if len(assets) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "no artifacts to archive")
		return
	}

	archive := zip.ArchiveAssets(assets)
	if archive == nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to build archive")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("%s_%s_artifacts.zip", job.ContentType, job.ID)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}
