package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"contentmaker/internal/domain"
)

type videoInfo struct {
	JobID       string             `json:"job_id"`
	ContentType domain.ContentType `json:"content_type"`
	CreatedAt   time.Time          `json:"created_at"`
	VideoURL    string             `json:"video_url"`
}

// ListVideos returns completed video jobs inside a trailing time window,
// newest first. Listing lazily publishes each video into the static tree;
// the copy is idempotent, so repeated listings have no further effect.
func (a *App) ListVideos(w http.ResponseWriter, r *http.Request) {
	contentType := r.URL.Query().Get("content_type")
	days := clampQueryInt(r, "days", 7, 1, 30)
	limit := clampQueryInt(r, "limit", 10, 1, 100)
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	videos := make([]videoInfo, 0)
	for _, job := range a.Store.List() {
		if job.Status != domain.JobStatusCompleted || !job.ContentType.ProducesVideo() {
			continue
		}
		if contentType != "" && string(job.ContentType) != contentType {
			continue
		}
		if job.CreatedAt.Before(cutoff) {
			continue
		}
		videoPath := filepath.Join(job.OutputDir, domain.FileVideo)
		if _, err := os.Stat(videoPath); err != nil {
			continue
		}
		url, err := a.Publisher.Video(job.ID, videoPath)
		if err != nil {
			a.Log.Warn().Err(err).Str("job_id", job.ID).Msg("publish video for listing")
			continue
		}
		videos = append(videos, videoInfo{
			JobID:       job.ID,
			ContentType: job.ContentType,
			CreatedAt:   job.CreatedAt,
			VideoURL:    url,
		})
	}

	sort.Slice(videos, func(i, j int) bool { return videos[i].CreatedAt.After(videos[j].CreatedAt) })
	if len(videos) > limit {
		videos = videos[:limit]
	}
	a.json(w, http.StatusOK, videos)
}

// StreamVideo serves the raw video bytes with range support.
func (a *App) StreamVideo(w http.ResponseWriter, r *http.Request) {
	job, path, ok := a.completedVideo(w, r)
	if !ok {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "video file not found")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", domain.MediaTypeVideo)
	w.Header().Set("Accept-Ranges", "bytes")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("%s_%s.mp4", job.ContentType, job.ID)))
	http.ServeContent(w, r, domain.FileVideo, job.CompletedAt, f)
}

// EmbedVideo returns a minimal self-contained HTML player referencing the
// video's public URL.
func (a *App) EmbedVideo(w http.ResponseWriter, r *http.Request) {
	job, _, ok := a.completedVideo(w, r)
	if !ok {
		return
	}

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <title>%s Video</title>
    <style>
        body { margin: 0; padding: 20px; background: #f0f0f0; }
        .video-container { max-width: 800px; margin: 0 auto; }
        video { width: 100%%; border-radius: 8px; }
    </style>
</head>
<body>
    <div class="video-container">
        <video controls>
            <source src="%s" type="video/mp4">
            Your browser does not support the video tag.
        </video>
    </div>
</body>
</html>
`, titleCaser.String(string(job.ContentType)), a.Publisher.VideoURL(job.ID))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// VideoInfo returns metadata and derived URLs for a completed video job.
func (a *App) VideoInfo(w http.ResponseWriter, r *http.Request) {
	job, path, ok := a.completedVideo(w, r)
	if !ok {
		return
	}

	stat, err := os.Stat(path)
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "video file not found")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"job_id":       job.ID,
		"content_type": job.ContentType,
		"created_at":   job.CreatedAt,
		"completed_at": job.CompletedAt,
		"file_size":    stat.Size(),
		"download_url": fmt.Sprintf("/download/%s", job.ID),
		"stream_url":   fmt.Sprintf("/video/%s/stream", job.ID),
		"embed_url":    fmt.Sprintf("/video/%s/embed", job.ID),
		"static_url":   a.Publisher.VideoURL(job.ID),
	})
}

// completedVideo resolves the {job_id} parameter to a completed job and its
// on-disk video path, writing the error response itself when that fails.
func (a *App) completedVideo(w http.ResponseWriter, r *http.Request) (domain.Job, string, bool) {
	job, err := a.Store.Get(chi.URLParam(r, "job_id"))
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "video not found")
		return domain.Job{}, "", false
	}
	if job.Status != domain.JobStatusCompleted {
		a.error(w, http.StatusBadRequest, "not_completed", "video generation not completed")
		return domain.Job{}, "", false
	}
	path := filepath.Join(job.OutputDir, domain.FileVideo)
	if _, err := os.Stat(path); err != nil {
		a.error(w, http.StatusNotFound, "not_found", "video file not found")
		return domain.Job{}, "", false
	}
	return job, path, true
}

func clampQueryInt(r *http.Request, key string, def, min, max int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
