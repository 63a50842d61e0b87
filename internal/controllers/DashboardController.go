package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"lifedash/internal/models"
	"lifedash/internal/providers"
	"lifedash/internal/services"
)

// Gallery images travel as data URLs, so bodies run large.
const maxRequestBodySize = 16 << 20 // 16 MB

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return false
	}
	return true
}

// DashboardController serves the canonical app state, its mutators and the
// widget visibility map.
type DashboardController struct {
	logger  providers.Logger
	service services.StateServiceInterface
}

func NewDashboardController(logger providers.Logger, service services.StateServiceInterface) *DashboardController {
	return &DashboardController{logger: logger, service: service}
}

type stateResponse struct {
	State    models.AppState `json:"state"`
	OnAccent string          `json:"onAccent"`
}

func (dc *DashboardController) respondState(w http.ResponseWriter, state models.AppState) {
	writeJSON(w, http.StatusOK, stateResponse{
		State:    state,
		OnAccent: models.OnAccentColor(state.AccentColor),
	})
}

func (dc *DashboardController) GetState(w http.ResponseWriter, r *http.Request) {
	dc.respondState(w, dc.service.GetState())
}

func (dc *DashboardController) SetProfile(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if !decodeBody(w, r, &p) {
		return
	}
	dc.respondState(w, dc.service.SetProfile(p))
}

func (dc *DashboardController) SetWeather(w http.ResponseWriter, r *http.Request) {
	var ws models.WeatherState
	if !decodeBody(w, r, &ws) {
		return
	}
	dc.respondState(w, dc.service.SetWeather(ws))
}

func (dc *DashboardController) SetNotes(w http.ResponseWriter, r *http.Request) {
	var notes []models.Note
	if !decodeBody(w, r, &notes) {
		return
	}
	dc.respondState(w, dc.service.SetNotes(notes))
}

func (dc *DashboardController) SetGallery(w http.ResponseWriter, r *http.Request) {
	var items []models.GalleryItem
	if !decodeBody(w, r, &items) {
		return
	}
	dc.respondState(w, dc.service.SetGallery(items))
}

func (dc *DashboardController) SetBackground(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Background string `json:"background"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	dc.respondState(w, dc.service.SetBackground(payload.Background))
}

func (dc *DashboardController) SetAccentColor(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		AccentColor string `json:"accentColor"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	dc.respondState(w, dc.service.SetAccentColor(payload.AccentColor))
}

func (dc *DashboardController) AddSkill(w http.ResponseWriter, r *http.Request) {
	state, id := dc.service.AddSkill()
	writeJSON(w, http.StatusCreated, struct {
		State models.AppState `json:"state"`
		Added string          `json:"added"`
	}{state, id})
}

func (dc *DashboardController) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Index int          `json:"index"`
		Skill models.Skill `json:"skill"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	state, err := dc.service.UpdateSkillAt(payload.Index, payload.Skill)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	dc.respondState(w, state)
}

func (dc *DashboardController) RemoveSkill(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Id string `json:"id"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	dc.respondState(w, dc.service.RemoveSkill(payload.Id))
}

type visibilityResponse struct {
	Registry []models.WidgetDef   `json:"registry"`
	Visible  models.VisibilityMap `json:"visible"`
}

func (dc *DashboardController) GetVisibility(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, visibilityResponse{
		Registry: models.WidgetRegistry,
		Visible:  dc.service.GetVisibility(),
	})
}

func (dc *DashboardController) ToggleVisibility(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Id string `json:"id"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	writeJSON(w, http.StatusOK, visibilityResponse{
		Registry: models.WidgetRegistry,
		Visible:  dc.service.ToggleVisibility(payload.Id),
	})
}

func (dc *DashboardController) ResetVisibility(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, visibilityResponse{
		Registry: models.WidgetRegistry,
		Visible:  dc.service.ResetVisibility(),
	})
}
