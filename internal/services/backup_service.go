package services

import (
	"errors"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"lifedash/internal/models"
	"lifedash/internal/providers"
)

const (
	ModeReplace = "replace"
	ModeMerge   = "merge"
)

var (
	ErrInvalidBackup        = errors.New("no dashboard state found in file")
	ErrConfirmationRequired = errors.New("replace import requires confirmation")
	ErrUnknownMode          = errors.New("unknown import mode")
)

type BackupServiceInterface interface {
	Export() models.BackupPayload
	ExportFilename(t time.Time) string
	Import(raw []byte, mode string, confirm bool) (models.AppState, error)
}

type BackupService struct {
	state       StateServiceInterface
	quickLaunch QuickLaunchServiceInterface
	logger      providers.Logger
}

func NewBackupService(state StateServiceInterface, quickLaunch QuickLaunchServiceInterface, logger providers.Logger) BackupServiceInterface {
	return &BackupService{
		state:       state,
		quickLaunch: quickLaunch,
		logger:      logger,
	}
}

func (bs *BackupService) Export() models.BackupPayload {
	return models.BackupPayload{
		Schema:      models.BackupSchema,
		Version:     models.BackupVersion,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		App:         models.BackupApp{State: bs.state.GetState()},
		QuickLaunch: bs.quickLaunch.List(),
		Visible:     bs.state.GetVisibility(),
	}
}

// ExportFilename builds the download name, e.g.
// life-dashboard-backup-20240131094502.json.
func (bs *BackupService) ExportFilename(t time.Time) string {
	return "life-dashboard-backup-" + t.UTC().Format("20060102150405") + ".json"
}

// incoming* mirror the backup file's state document with pointer fields so
// absent keys can be told apart from zero values: an import must only
// overwrite what the file actually carries.
type incomingProfile struct {
	Name   *string `json:"name"`
	Bio    *string `json:"bio"`
	Email  *string `json:"email"`
	Avatar *string `json:"avatar"`
}

type incomingWeather struct {
	Kind        *models.WeatherKind `json:"kind"`
	TempC       *int                `json:"tempC"`
	Description *string             `json:"description"`
}

type incomingState struct {
	AccentColor *string              `json:"accentColor"`
	Background  *string              `json:"background"`
	Profile     *incomingProfile     `json:"profile"`
	Weather     *incomingWeather     `json:"weather"`
	Skills      []models.Skill       `json:"skills"`
	Notes       []models.Note        `json:"notes"`
	Gallery     []models.GalleryItem `json:"gallery"`
}

type backupDocument struct {
	Schema  string `json:"schema"`
	Version int    `json:"version"`
	App     *struct {
		State json.RawMessage `json:"state"`
	} `json:"app"`
	QuickLaunch []models.QuickLaunchItem `json:"quickLaunch"`
	Visible     models.VisibilityMap     `json:"visible"`

	// legacy bare-state detection
	Profile json.RawMessage `json:"profile"`
	Skills  json.RawMessage `json:"skills"`
	Notes   json.RawMessage `json:"notes"`
}

// Import applies a user-provided backup file. Nothing is mutated unless the
// document is recognized (and, for replace, confirmed).
func (bs *BackupService) Import(raw []byte, mode string, confirm bool) (models.AppState, error) {
	if mode != ModeReplace && mode != ModeMerge {
		return models.AppState{}, ErrUnknownMode
	}

	var doc backupDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.AppState{}, ErrInvalidBackup
	}

	var stateRaw json.RawMessage
	var importedQL []models.QuickLaunchItem
	var visible models.VisibilityMap

	switch {
	case doc.Schema == models.BackupSchema:
		if doc.App == nil || len(doc.App.State) == 0 {
			return models.AppState{}, ErrInvalidBackup
		}
		stateRaw = doc.App.State
		importedQL = doc.QuickLaunch
		visible = doc.Visible
	case len(doc.Profile) > 0 && len(doc.Skills) > 0 && len(doc.Notes) > 0:
		// legacy export: the whole document is the state
		stateRaw = raw
	default:
		return models.AppState{}, ErrInvalidBackup
	}

	var incoming incomingState
	if err := json.Unmarshal(stateRaw, &incoming); err != nil {
		return models.AppState{}, ErrInvalidBackup
	}

	if mode == ModeReplace && !confirm {
		return models.AppState{}, ErrConfirmationRequired
	}

	var next models.AppState
	if mode == ModeReplace {
		next = bs.applyReplace(incoming)
		bs.quickLaunch.Replace(importedQL)
	} else {
		next = bs.applyMerge(incoming)
		bs.quickLaunch.Merge(importedQL)
	}

	// the visible map, when present, overwrites wholesale in either mode
	if visible != nil {
		bs.state.ReplaceVisibility(visible)
	}

	bs.logger.Infof(providers.TypeApp, "Backup import (%s) applied", mode)
	return next, nil
}

// applyReplace takes the incoming document wholesale, with current values
// only filling fields the file does not carry (defensive against partial
// exports). Lists are replaced, absent lists become empty.
func (bs *BackupService) applyReplace(incoming incomingState) models.AppState {
	next := bs.state.GetState()
	overlayScalars(&next, incoming)
	next.Skills = ensureSkills(incoming.Skills)
	next.Notes = ensureNotes(incoming.Notes)
	next.Gallery = ensureGallery(incoming.Gallery)
	return bs.state.ReplaceState(next)
}

// applyMerge keeps current values where the file is silent and concatenates
// lists with last-occurrence-wins de-duplication, so incoming items replace
// current ones on key collision.
func (bs *BackupService) applyMerge(incoming incomingState) models.AppState {
	next := bs.state.GetState()
	overlayScalars(&next, incoming)

	next.Skills = uniqueBy(append(next.Skills, incoming.Skills...), func(s models.Skill) string {
		if s.Id != "" {
			return s.Id
		}
		return s.Name + "-" + strconv.Itoa(s.Level)
	})
	next.Notes = uniqueBy(append(next.Notes, incoming.Notes...), func(n models.Note) string {
		if n.Id != "" {
			return n.Id
		}
		if n.Text != "" {
			return n.Text
		}
		// neither id nor text: random key, so such notes never collide
		return uuid.NewString()
	})
	next.Gallery = uniqueBy(append(next.Gallery, incoming.Gallery...), func(g models.GalleryItem) string {
		if g.Id != "" {
			return g.Id
		}
		return g.Src
	})
	return bs.state.ReplaceState(next)
}

func overlayScalars(next *models.AppState, incoming incomingState) {
	if incoming.AccentColor != nil {
		next.AccentColor = *incoming.AccentColor
	}
	if incoming.Background != nil {
		next.Background = *incoming.Background
	}
	if p := incoming.Profile; p != nil {
		if p.Name != nil {
			next.Profile.Name = *p.Name
		}
		if p.Bio != nil {
			next.Profile.Bio = *p.Bio
		}
		if p.Email != nil {
			next.Profile.Email = *p.Email
		}
		if p.Avatar != nil {
			next.Profile.Avatar = *p.Avatar
		}
	}
	if w := incoming.Weather; w != nil {
		if w.Kind != nil {
			next.Weather.Kind = *w.Kind
		}
		if w.TempC != nil {
			next.Weather.TempC = *w.TempC
		}
		if w.Description != nil {
			next.Weather.Description = *w.Description
		}
	}
}

func ensureSkills(v []models.Skill) []models.Skill {
	if v == nil {
		return []models.Skill{}
	}
	return v
}

func ensureNotes(v []models.Note) []models.Note {
	if v == nil {
		return []models.Note{}
	}
	return v
}

func ensureGallery(v []models.GalleryItem) []models.GalleryItem {
	if v == nil {
		return []models.GalleryItem{}
	}
	return v
}
