package controllers

import (
	"net/http"
	"time"

	"lifedash/internal/models"
	"lifedash/internal/providers"
	"lifedash/internal/services"
)

// LauncherController covers the quick-launch dock and the world clock, the
// two list widgets that live in their own store blobs.
type LauncherController struct {
	logger      providers.Logger
	quickLaunch services.QuickLaunchServiceInterface
	worldClock  services.WorldClockServiceInterface
}

func NewLauncherController(
	logger providers.Logger,
	quickLaunch services.QuickLaunchServiceInterface,
	worldClock services.WorldClockServiceInterface,
) *LauncherController {
	return &LauncherController{
		logger:      logger,
		quickLaunch: quickLaunch,
		worldClock:  worldClock,
	}
}

type quickLaunchResponse struct {
	Items []models.QuickLaunchItem `json:"items"`
}

func (lc *LauncherController) GetQuickLaunch(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, quickLaunchResponse{lc.quickLaunch.List()})
}

func (lc *LauncherController) AddQuickLaunch(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Url   string `json:"url"`
		Title string `json:"title"`
		Icon  string `json:"icon"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Url == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	added, items := lc.quickLaunch.Add(payload.Url, payload.Title, payload.Icon)
	writeJSON(w, http.StatusCreated, struct {
		Added models.QuickLaunchItem   `json:"added"`
		Items []models.QuickLaunchItem `json:"items"`
	}{added, items})
}

func (lc *LauncherController) RemoveQuickLaunch(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Id string `json:"id"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	writeJSON(w, http.StatusOK, quickLaunchResponse{lc.quickLaunch.Remove(payload.Id)})
}

func (lc *LauncherController) GetWorldClock(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Cities []services.WorldClockEntry `json:"cities"`
	}{lc.worldClock.List(time.Now())})
}

func (lc *LauncherController) AddWorldClock(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Tz    string `json:"tz"`
		Label string `json:"label"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	city, err := lc.worldClock.Add(payload.Tz, payload.Label)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, city)
}

func (lc *LauncherController) RemoveWorldClock(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Id string `json:"id"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Cities []models.City `json:"cities"`
	}{lc.worldClock.Remove(payload.Id)})
}
