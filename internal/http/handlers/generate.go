package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"contentmaker/internal/domain"
)

type generateResponse struct {
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

var titleCaser = cases.Title(language.English)

// Generate accepts a content request, allocates the job and its output
// directory, schedules the pipeline and acknowledges immediately. Deeper
// option validation happens inside the runner; only the content type
// enumeration is checked here.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.ContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if !req.ContentType.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("unsupported content type: %q", req.ContentType))
		return
	}

	jobID := uuid.NewString()
	outputDir := filepath.Join(a.Cfg.OutputDir, jobID)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		a.Log.Error().Err(err).Str("job_id", jobID).Msg("create job output dir")
		a.error(w, http.StatusInternalServerError, "internal", "failed to allocate job workspace")
		return
	}

	a.Store.Insert(domain.Job{
		ID:          jobID,
		Status:      domain.JobStatusProcessing,
		ContentType: req.ContentType,
		CreatedAt:   time.Now().UTC(),
		OutputDir:   outputDir,
	})

	// Fire and forget: the run outlives the request, so it gets its own
	// context and reports only through the job store.
	go a.Runner.Run(context.Background(), jobID, req, outputDir)

	label := titleCaser.String(strings.ReplaceAll(string(req.ContentType), "_", " "))
	a.json(w, http.StatusOK, generateResponse{
		JobID:   jobID,
		Status:  string(domain.JobStatusProcessing),
		Message: fmt.Sprintf("%s generation started", label),
	})
}
