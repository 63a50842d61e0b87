package services

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifedash/internal/models"
	"lifedash/internal/storage"
	"lifedash/internal/testutil"
)

func newHydratedService(t *testing.T) (StateServiceInterface, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	svc := NewStateService(store, &testutil.MockLogger{})
	svc.Hydrate()
	return svc, store
}

func TestStateService_DefaultsBeforeHydrate(t *testing.T) {
	svc := NewStateService(storage.NewMemoryStore(), &testutil.MockLogger{})
	s := svc.GetState()
	assert.Equal(t, "#7c3aed", s.AccentColor)
	require.Len(t, s.Skills, 4)
}

func TestStateService_NoWriteThroughBeforeHydrate(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewStateService(store, &testutil.MockLogger{})

	svc.SetAccentColor("#123456")

	_, ok := store.Get(storage.StateKey)
	assert.False(t, ok, "mutation before hydrate must not persist")
	assert.Equal(t, "#123456", svc.GetState().AccentColor, "but the in-memory state moves")
}

func TestStateService_HydrateOverlaysPersisted(t *testing.T) {
	store := storage.NewMemoryStore()
	persisted := models.DefaultAppState()
	persisted.Profile.Name = "Ada"
	raw, err := json.Marshal(persisted)
	require.NoError(t, err)
	require.NoError(t, store.Set(storage.StateKey, raw))

	svc := NewStateService(store, &testutil.MockLogger{})
	svc.Hydrate()

	assert.Equal(t, "Ada", svc.GetState().Profile.Name)
}

func TestStateService_HydrateDiscardsCorruptBlob(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.StateKey, []byte("{broken")))

	logger := &testutil.MockLogger{}
	svc := NewStateService(store, logger)
	svc.Hydrate()

	assert.Equal(t, "Your Name", svc.GetState().Profile.Name)
	assert.Equal(t, 1, logger.CountLevel("warn"))
}

func TestStateService_HydrateNormalizesVisibility(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.VisibilityKey, []byte(`{"clock":false,"ghost":true}`)))

	svc := NewStateService(store, &testutil.MockLogger{})
	svc.Hydrate()

	v := svc.GetVisibility()
	assert.False(t, v["clock"])
	_, ok := v["ghost"]
	assert.False(t, ok)
	assert.True(t, v["notes"], "missing keys filled from defaults")
}

func TestStateService_MutationsWriteThrough(t *testing.T) {
	svc, store := newHydratedService(t)

	svc.SetProfile(models.Profile{Name: "Grace", Bio: "CS"})

	raw, ok := store.Get(storage.StateKey)
	require.True(t, ok)
	var persisted models.AppState
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, "Grace", persisted.Profile.Name)
}

func TestStateService_ReturnedStateIsACopy(t *testing.T) {
	svc, _ := newHydratedService(t)

	got := svc.SetNotes([]models.Note{{Id: "n1", Text: "x"}})
	got.Notes[0].Text = "mutated"

	assert.Equal(t, "x", svc.GetState().Notes[0].Text)
}

func TestStateService_AddSkill(t *testing.T) {
	svc, _ := newHydratedService(t)

	state, id := svc.AddSkill()

	require.Len(t, state.Skills, 5)
	last := state.Skills[len(state.Skills)-1]
	assert.Equal(t, id, last.Id)
	assert.Equal(t, 50, last.Level)
	assert.Empty(t, last.Name)
}

func TestStateService_UpdateSkillAt(t *testing.T) {
	svc, _ := newHydratedService(t)

	state, err := svc.UpdateSkillAt(0, models.Skill{Id: "sk_x", Name: "Focus", Level: 90})
	require.NoError(t, err)
	assert.Equal(t, "Focus", state.Skills[0].Name)

	_, err = svc.UpdateSkillAt(99, models.Skill{})
	assert.Error(t, err)
	_, err = svc.UpdateSkillAt(-1, models.Skill{})
	assert.Error(t, err)
}

func TestStateService_RemoveSkill(t *testing.T) {
	svc, _ := newHydratedService(t)
	target := svc.GetState().Skills[1].Id

	state := svc.RemoveSkill(target)

	require.Len(t, state.Skills, 3)
	for _, sk := range state.Skills {
		assert.NotEqual(t, target, sk.Id)
	}
}

func TestStateService_RemoveSkill_UnknownIdIsNoop(t *testing.T) {
	svc, _ := newHydratedService(t)
	state := svc.RemoveSkill("sk_nope")
	assert.Len(t, state.Skills, 4)
}

func TestStateService_ToggleVisibility(t *testing.T) {
	svc, store := newHydratedService(t)

	v := svc.ToggleVisibility("worldClock")
	assert.True(t, v["worldClock"])
	v = svc.ToggleVisibility("worldClock")
	assert.False(t, v["worldClock"])

	_, ok := store.Get(storage.VisibilityKey)
	assert.True(t, ok)
}

func TestStateService_ToggleVisibilityUnknownIdIgnored(t *testing.T) {
	svc, store := newHydratedService(t)

	v := svc.ToggleVisibility("notAWidget")

	_, present := v["notAWidget"]
	assert.False(t, present, "unknown ids must not enter the map")
	assert.Equal(t, models.DefaultVisibility(), v)
	_, wrote := store.Get(storage.VisibilityKey)
	assert.False(t, wrote, "an ignored toggle must not persist")
}

func TestStateService_ResetVisibility(t *testing.T) {
	svc, _ := newHydratedService(t)
	svc.ToggleVisibility("clock")
	svc.ToggleVisibility("exif")

	v := svc.ResetVisibility()
	assert.True(t, v["clock"])
	assert.False(t, v["exif"])
}

func TestStateService_ReplaceStateNormalizes(t *testing.T) {
	svc, _ := newHydratedService(t)

	got := svc.ReplaceState(models.AppState{AccentColor: "#111111"})

	assert.Equal(t, "#111111", got.AccentColor)
	assert.NotNil(t, got.Skills)
	assert.NotNil(t, got.Notes)
}

func TestStateService_WriteFailureKeepsMemoryState(t *testing.T) {
	logger := &testutil.MockLogger{}
	svc := NewStateService(&testutil.FailingStore{Err: errors.New("disk full")}, logger)
	svc.Hydrate()

	got := svc.SetAccentColor("#abcdef")

	assert.Equal(t, "#abcdef", got.AccentColor)
	assert.Equal(t, "#abcdef", svc.GetState().AccentColor)
	assert.GreaterOrEqual(t, logger.CountLevel("error"), 1)
}

func TestStateService_CollectionSizes(t *testing.T) {
	svc, _ := newHydratedService(t)
	svc.SetNotes([]models.Note{{Id: "n1"}, {Id: "n2"}})

	sizes := svc.CollectionSizes()
	assert.Equal(t, 4, sizes["skills"])
	assert.Equal(t, 2, sizes["notes"])
	assert.Equal(t, 0, sizes["gallery"])
}
