package handlers

import (
	"encoding/json"
	"net/http"

	"contentmaker/internal/infra"
	"contentmaker/internal/jobstore"
	"contentmaker/internal/pipeline"
	"contentmaker/internal/publish"
)

// App bundles the collaborators every endpoint needs.
type App struct {
	Cfg       *infra.Config
	Log       infra.Logger
	Store     *jobstore.Store
	Runner    *pipeline.Runner
	Publisher *publish.Publisher
}

func NewApp(cfg *infra.Config, log infra.Logger, store *jobstore.Store, runner *pipeline.Runner, publisher *publish.Publisher) *App {
	return &App{Cfg: cfg, Log: log, Store: store, Runner: runner, Publisher: publisher}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]errorBody{"error": {Code: code, Message: message}})
}

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
