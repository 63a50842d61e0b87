package controllers

import (
	"errors"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"lifedash/internal/models"
	"lifedash/internal/providers"
	"lifedash/internal/services"
)

// BackupController exports the full dashboard snapshot and imports uploaded
// backup files in replace or merge mode.
type BackupController struct {
	logger  providers.Logger
	service services.BackupServiceInterface
}

func NewBackupController(logger providers.Logger, service services.BackupServiceInterface) *BackupController {
	return &BackupController{logger: logger, service: service}
}

// Export writes the snapshot indented: the file is meant to be read and
// hand-edited by its owner, not just round-tripped.
func (bc *BackupController) Export(w http.ResponseWriter, r *http.Request) {
	gson, err := json.MarshalIndent(bc.service.Export(), "", "  ")
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	filename := bc.service.ExportFilename(time.Now())
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(gson)
}

func (bc *BackupController) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	q := r.URL.Query()
	mode := q.Get("mode")
	if mode == "" {
		mode = services.ModeMerge
	}
	confirm := q.Get("confirm") == "true"

	state, err := bc.service.Import(raw, mode, confirm)
	switch {
	case errors.Is(err, services.ErrConfirmationRequired):
		http.Error(w, "Confirmation Required", http.StatusConflict)
		return
	case errors.Is(err, services.ErrUnknownMode):
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	case errors.Is(err, services.ErrInvalidBackup):
		http.Error(w, "Unprocessable Entity", http.StatusUnprocessableEntity)
		return
	case err != nil:
		bc.logger.Errorf(providers.TypePost, "Importing backup failed: %s", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	bc.logger.Infof(providers.TypePost, "Imported backup in %s mode", mode)
	writeJSON(w, http.StatusOK, struct {
		State models.AppState `json:"state"`
		Mode  string          `json:"mode"`
	}{state, mode})
}
