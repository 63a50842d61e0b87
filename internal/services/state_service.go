package services

import (
	"fmt"
	"sync"

	json "github.com/goccy/go-json"

	"lifedash/internal/models"
	"lifedash/internal/providers"
	"lifedash/internal/storage"
)

type StateServiceInterface interface {
	GetState() models.AppState
	GetVisibility() models.VisibilityMap
	SetProfile(p models.Profile) models.AppState
	SetWeather(w models.WeatherState) models.AppState
	SetNotes(n []models.Note) models.AppState
	SetGallery(g []models.GalleryItem) models.AppState
	SetBackground(dataUrl string) models.AppState
	SetAccentColor(color string) models.AppState
	AddSkill() (models.AppState, string)
	UpdateSkillAt(index int, skill models.Skill) (models.AppState, error)
	RemoveSkill(id string) models.AppState
	ToggleVisibility(id string) models.VisibilityMap
	ResetVisibility() models.VisibilityMap
	ReplaceState(next models.AppState) models.AppState
	ReplaceVisibility(next models.VisibilityMap) models.VisibilityMap
	Hydrate()
	CollectionSizes() map[string]int
}

// StateService owns the canonical AppState and the widget visibility map.
// Every mutation replaces the in-memory value with a fresh copy and writes
// the whole blob through to the store. Writes are disabled until Hydrate has
// overlaid persisted data, so a mutation can never clobber state that was
// not yet loaded.
type StateService struct {
	mu       sync.RWMutex
	state    models.AppState
	visible  models.VisibilityMap
	hydrated bool
	store    storage.StoreInterface
	logger   providers.Logger
}

func NewStateService(store storage.StoreInterface, logger providers.Logger) StateServiceInterface {
	return &StateService{
		state:   models.DefaultAppState(),
		visible: models.DefaultVisibility(),
		store:   store,
		logger:  logger,
	}
}

// Hydrate overlays persisted blobs onto the defaults and enables
// write-through. Corrupt blobs are discarded; they heal on the next write.
func (ss *StateService) Hydrate() {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if raw, ok := ss.store.Get(storage.StateKey); ok {
		var loaded models.AppState
		if err := json.Unmarshal(raw, &loaded); err != nil {
			ss.logger.Warnf(providers.TypeApp, "Discarding corrupt state blob: %s", err)
		} else {
			loaded.Normalize()
			ss.state = loaded
		}
	}

	if raw, ok := ss.store.Get(storage.VisibilityKey); ok {
		var loaded models.VisibilityMap
		if err := json.Unmarshal(raw, &loaded); err != nil {
			ss.logger.Warnf(providers.TypeApp, "Discarding corrupt visibility blob: %s", err)
		} else {
			ss.visible = loaded
		}
	}
	ss.visible = ss.visible.Normalize()

	ss.hydrated = true
}

func (ss *StateService) GetState() models.AppState {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.state.Clone()
}

func (ss *StateService) GetVisibility() models.VisibilityMap {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.visible.Clone()
}

// mutate applies fn to a clone of the current state, swaps it in and writes
// it through. Callers hold no locks.
func (ss *StateService) mutate(fn func(s *models.AppState)) models.AppState {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	next := ss.state.Clone()
	fn(&next)
	ss.state = next
	ss.persistStateLocked()
	return next.Clone()
}

func (ss *StateService) persistStateLocked() {
	if !ss.hydrated {
		return
	}
	raw, err := json.Marshal(ss.state)
	if err != nil {
		ss.logger.Errorf(providers.TypeApp, "State marshal failed: %s", err)
		return
	}
	// best-effort: in-memory state stays correct even if the write fails
	if err := ss.store.Set(storage.StateKey, raw); err != nil {
		ss.logger.Errorf(providers.TypeApp, "State write failed: %s", err)
	}
}

func (ss *StateService) persistVisibilityLocked() {
	if !ss.hydrated {
		return
	}
	raw, err := json.Marshal(ss.visible)
	if err != nil {
		ss.logger.Errorf(providers.TypeApp, "Visibility marshal failed: %s", err)
		return
	}
	if err := ss.store.Set(storage.VisibilityKey, raw); err != nil {
		ss.logger.Errorf(providers.TypeApp, "Visibility write failed: %s", err)
	}
}

func (ss *StateService) SetProfile(p models.Profile) models.AppState {
	return ss.mutate(func(s *models.AppState) { s.Profile = p })
}

func (ss *StateService) SetWeather(w models.WeatherState) models.AppState {
	return ss.mutate(func(s *models.AppState) { s.Weather = w })
}

func (ss *StateService) SetNotes(n []models.Note) models.AppState {
	return ss.mutate(func(s *models.AppState) {
		s.Notes = append([]models.Note{}, n...)
	})
}

func (ss *StateService) SetGallery(g []models.GalleryItem) models.AppState {
	return ss.mutate(func(s *models.AppState) {
		s.Gallery = append([]models.GalleryItem{}, g...)
	})
}

func (ss *StateService) SetBackground(dataUrl string) models.AppState {
	return ss.mutate(func(s *models.AppState) { s.Background = dataUrl })
}

func (ss *StateService) SetAccentColor(color string) models.AppState {
	return ss.mutate(func(s *models.AppState) { s.AccentColor = color })
}

// AddSkill appends a placeholder skill and reports its freshly generated id
// so the caller can focus it.
func (ss *StateService) AddSkill() (models.AppState, string) {
	id := models.NewId("sk")
	next := ss.mutate(func(s *models.AppState) {
		s.Skills = append(s.Skills, models.Skill{Id: id, Name: "", Level: 50})
	})
	return next, id
}

// UpdateSkillAt replaces the element at the given list position. No
// concurrency check: the position must correspond to the id the caller saw.
func (ss *StateService) UpdateSkillAt(index int, skill models.Skill) (models.AppState, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if index < 0 || index >= len(ss.state.Skills) {
		return models.AppState{}, fmt.Errorf("skill index %d out of range", index)
	}
	next := ss.state.Clone()
	next.Skills[index] = skill
	ss.state = next
	ss.persistStateLocked()
	return next.Clone(), nil
}

func (ss *StateService) RemoveSkill(id string) models.AppState {
	return ss.mutate(func(s *models.AppState) {
		kept := s.Skills[:0:0]
		for _, sk := range s.Skills {
			if sk.Id != id {
				kept = append(kept, sk)
			}
		}
		if kept == nil {
			kept = []models.Skill{}
		}
		s.Skills = kept
	})
}

// ToggleVisibility flips one widget's flag. Ids outside the registry are
// ignored: the map's key set stays closed at mutation time, not just on load.
func (ss *StateService) ToggleVisibility(id string) models.VisibilityMap {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if !models.KnownWidget(id) {
		return ss.visible.Clone()
	}
	next := ss.visible.Clone()
	next[id] = !next[id]
	ss.visible = next
	ss.persistVisibilityLocked()
	return next.Clone()
}

func (ss *StateService) ResetVisibility() models.VisibilityMap {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.visible = models.DefaultVisibility()
	ss.persistVisibilityLocked()
	return ss.visible.Clone()
}

// ReplaceState swaps in a whole state, normalized. Used by backup import.
func (ss *StateService) ReplaceState(next models.AppState) models.AppState {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	next.Normalize()
	ss.state = next.Clone()
	ss.persistStateLocked()
	return ss.state.Clone()
}

// ReplaceVisibility swaps in a whole visibility map, normalized. Used by
// backup import regardless of mode.
func (ss *StateService) ReplaceVisibility(next models.VisibilityMap) models.VisibilityMap {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.visible = next.Normalize()
	ss.persistVisibilityLocked()
	return ss.visible.Clone()
}

func (ss *StateService) CollectionSizes() map[string]int {
	ss.mu.RLock()
	sizes := map[string]int{
		"skills":  len(ss.state.Skills),
		"notes":   len(ss.state.Notes),
		"gallery": len(ss.state.Gallery),
	}
	ss.mu.RUnlock()

	if raw, ok := ss.store.Get(storage.QuickLaunchKey); ok {
		var items []models.QuickLaunchItem
		if err := json.Unmarshal(raw, &items); err == nil {
			sizes["quicklaunch"] = len(items)
		}
	}
	return sizes
}
