package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifedash/internal/models"
	"lifedash/internal/providers"
)

// --- local mocks (scoped to controller tests) ---

type mockLogger struct{}

func (m *mockLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Close()                                                  {}

type mockStateService struct {
	state      models.AppState
	visibility models.VisibilityMap

	profileCalls []models.Profile
	notesCalls   [][]models.Note
	skillErr     error
}

func newMockStateService() *mockStateService {
	return &mockStateService{
		state:      models.DefaultAppState(),
		visibility: models.DefaultVisibility(),
	}
}

func (m *mockStateService) GetState() models.AppState           { return m.state }
func (m *mockStateService) GetVisibility() models.VisibilityMap { return m.visibility }
func (m *mockStateService) SetProfile(p models.Profile) models.AppState {
	m.profileCalls = append(m.profileCalls, p)
	m.state.Profile = p
	return m.state
}
func (m *mockStateService) SetWeather(w models.WeatherState) models.AppState {
	m.state.Weather = w
	return m.state
}
func (m *mockStateService) SetNotes(n []models.Note) models.AppState {
	m.notesCalls = append(m.notesCalls, n)
	m.state.Notes = n
	return m.state
}
func (m *mockStateService) SetGallery(g []models.GalleryItem) models.AppState {
	m.state.Gallery = g
	return m.state
}
func (m *mockStateService) SetBackground(dataUrl string) models.AppState {
	m.state.Background = dataUrl
	return m.state
}
func (m *mockStateService) SetAccentColor(color string) models.AppState {
	m.state.AccentColor = color
	return m.state
}
func (m *mockStateService) AddSkill() (models.AppState, string) {
	skill := models.Skill{Id: "sk_test0001", Name: "New skill", Level: 50}
	m.state.Skills = append(m.state.Skills, skill)
	return m.state, skill.Id
}
func (m *mockStateService) UpdateSkillAt(index int, skill models.Skill) (models.AppState, error) {
	if m.skillErr != nil {
		return m.state, m.skillErr
	}
	m.state.Skills[index] = skill
	return m.state, nil
}
func (m *mockStateService) RemoveSkill(id string) models.AppState {
	kept := m.state.Skills[:0]
	for _, s := range m.state.Skills {
		if s.Id != id {
			kept = append(kept, s)
		}
	}
	m.state.Skills = kept
	return m.state
}
func (m *mockStateService) ToggleVisibility(id string) models.VisibilityMap {
	m.visibility[id] = !m.visibility[id]
	return m.visibility
}
func (m *mockStateService) ResetVisibility() models.VisibilityMap {
	m.visibility = models.DefaultVisibility()
	return m.visibility
}
func (m *mockStateService) ReplaceState(next models.AppState) models.AppState {
	m.state = next
	return m.state
}
func (m *mockStateService) ReplaceVisibility(next models.VisibilityMap) models.VisibilityMap {
	m.visibility = next
	return m.visibility
}
func (m *mockStateService) Hydrate()                        {}
func (m *mockStateService) CollectionSizes() map[string]int { return map[string]int{} }

// --- helpers ---

func decodeStateResponse(t *testing.T, rr *httptest.ResponseRecorder) (models.AppState, string) {
	t.Helper()
	var resp struct {
		State    models.AppState `json:"state"`
		OnAccent string          `json:"onAccent"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.State, resp.OnAccent
}

// --- state tests ---

func TestGetState(t *testing.T) {
	svc := newMockStateService()
	dc := NewDashboardController(&mockLogger{}, svc)

	req := httptest.NewRequest(http.MethodGet, "/state", nil)
	rr := httptest.NewRecorder()
	dc.GetState(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	state, onAccent := decodeStateResponse(t, rr)
	assert.Equal(t, "#7c3aed", state.AccentColor)
	assert.Equal(t, "#ffffff", onAccent)
}

func TestSetProfile(t *testing.T) {
	svc := newMockStateService()
	dc := NewDashboardController(&mockLogger{}, svc)

	payload := `{"name":"Ada","bio":"engineer","email":"ada@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/state/profile", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	dc.SetProfile(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, svc.profileCalls, 1)
	assert.Equal(t, "Ada", svc.profileCalls[0].Name)

	state, _ := decodeStateResponse(t, rr)
	assert.Equal(t, "Ada", state.Profile.Name)
}

func TestSetProfile_InvalidJSON(t *testing.T) {
	svc := newMockStateService()
	dc := NewDashboardController(&mockLogger{}, svc)

	req := httptest.NewRequest(http.MethodPost, "/state/profile", strings.NewReader("not json"))
	rr := httptest.NewRecorder()
	dc.SetProfile(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, svc.profileCalls)
}

func TestSetNotes(t *testing.T) {
	svc := newMockStateService()
	dc := NewDashboardController(&mockLogger{}, svc)

	payload := `[{"id":"n1","text":"buy milk","date":"2026-08-28"}]`
	req := httptest.NewRequest(http.MethodPost, "/state/notes", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	dc.SetNotes(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, svc.notesCalls, 1)
	require.Len(t, svc.notesCalls[0], 1)
	assert.Equal(t, "buy milk", svc.notesCalls[0][0].Text)
}

func TestSetAccentColor_ChangesOnAccent(t *testing.T) {
	svc := newMockStateService()
	dc := NewDashboardController(&mockLogger{}, svc)

	req := httptest.NewRequest(http.MethodPost, "/state/accent", strings.NewReader(`{"accentColor":"#ffffff"}`))
	rr := httptest.NewRecorder()
	dc.SetAccentColor(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	state, onAccent := decodeStateResponse(t, rr)
	assert.Equal(t, "#ffffff", state.AccentColor)
	assert.Equal(t, "#000000", onAccent)
}

func TestSetBackground(t *testing.T) {
	svc := newMockStateService()
	dc := NewDashboardController(&mockLogger{}, svc)

	req := httptest.NewRequest(http.MethodPost, "/state/background", strings.NewReader(`{"background":"data:image/png;base64,AAAA"}`))
	rr := httptest.NewRecorder()
	dc.SetBackground(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	state, _ := decodeStateResponse(t, rr)
	assert.Equal(t, "data:image/png;base64,AAAA", state.Background)
}

// --- skill tests ---

func TestAddSkill(t *testing.T) {
	svc := newMockStateService()
	dc := NewDashboardController(&mockLogger{}, svc)

	req := httptest.NewRequest(http.MethodPost, "/skills/add", nil)
	rr := httptest.NewRecorder()
	dc.AddSkill(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp struct {
		State models.AppState `json:"state"`
		Added string          `json:"added"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "sk_test0001", resp.Added)
	assert.Len(t, resp.State.Skills, len(models.DefaultAppState().Skills)+1)
}

func TestUpdateSkill(t *testing.T) {
	svc := newMockStateService()
	dc := NewDashboardController(&mockLogger{}, svc)

	payload := `{"index":0,"skill":{"id":"sk_x","name":"Go","level":90}}`
	req := httptest.NewRequest(http.MethodPost, "/skills/update", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	dc.UpdateSkill(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	state, _ := decodeStateResponse(t, rr)
	assert.Equal(t, "Go", state.Skills[0].Name)
	assert.Equal(t, 90, state.Skills[0].Level)
}

func TestUpdateSkill_OutOfRange(t *testing.T) {
	svc := newMockStateService()
	svc.skillErr = errors.New("index out of range")
	dc := NewDashboardController(&mockLogger{}, svc)

	payload := `{"index":99,"skill":{"name":"Go"}}`
	req := httptest.NewRequest(http.MethodPost, "/skills/update", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	dc.UpdateSkill(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRemoveSkill(t *testing.T) {
	svc := newMockStateService()
	removeId := svc.state.Skills[0].Id
	before := len(svc.state.Skills)
	dc := NewDashboardController(&mockLogger{}, svc)

	req := httptest.NewRequest(http.MethodPost, "/skills/remove", strings.NewReader(`{"id":"`+removeId+`"}`))
	rr := httptest.NewRecorder()
	dc.RemoveSkill(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	state, _ := decodeStateResponse(t, rr)
	assert.Len(t, state.Skills, before-1)
}

// --- visibility tests ---

func TestGetVisibility(t *testing.T) {
	svc := newMockStateService()
	dc := NewDashboardController(&mockLogger{}, svc)

	req := httptest.NewRequest(http.MethodGet, "/visibility", nil)
	rr := httptest.NewRecorder()
	dc.GetVisibility(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Registry []models.WidgetDef   `json:"registry"`
		Visible  models.VisibilityMap `json:"visible"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Registry, len(models.WidgetRegistry))
	assert.True(t, resp.Visible["clock"])
}

func TestToggleVisibility(t *testing.T) {
	svc := newMockStateService()
	dc := NewDashboardController(&mockLogger{}, svc)

	req := httptest.NewRequest(http.MethodPost, "/visibility/toggle", strings.NewReader(`{"id":"clock"}`))
	rr := httptest.NewRecorder()
	dc.ToggleVisibility(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Visible models.VisibilityMap `json:"visible"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Visible["clock"])
}

func TestResetVisibility(t *testing.T) {
	svc := newMockStateService()
	svc.visibility["clock"] = false
	dc := NewDashboardController(&mockLogger{}, svc)

	req := httptest.NewRequest(http.MethodPost, "/visibility/reset", nil)
	rr := httptest.NewRecorder()
	dc.ResetVisibility(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Visible models.VisibilityMap `json:"visible"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Visible["clock"])
}
