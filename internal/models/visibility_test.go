package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVisibility_CoreVisibleExtrasHidden(t *testing.T) {
	v := DefaultVisibility()
	require.Len(t, v, len(WidgetRegistry))

	assert.True(t, v["clock"])
	assert.True(t, v["weather"])
	assert.True(t, v["quicklaunch"])
	assert.False(t, v["worldClock"])
	assert.False(t, v["focusTimer"])
	assert.False(t, v["exif"])
}

func TestVisibilityNormalize_PrunesUnknownKeys(t *testing.T) {
	v := VisibilityMap{"clock": false, "ghostWidget": true}
	out := v.Normalize()

	_, ok := out["ghostWidget"]
	assert.False(t, ok)
	assert.False(t, out["clock"], "stored value survives")
}

func TestVisibilityNormalize_FillsMissingFromDefaults(t *testing.T) {
	out := VisibilityMap{}.Normalize()
	require.Len(t, out, len(WidgetRegistry))
	assert.True(t, out["notes"])
	assert.False(t, out["sunArc"])
}

func TestVisibilityNormalize_KeepsStoredOverrides(t *testing.T) {
	v := VisibilityMap{"worldClock": true, "weather": false}
	out := v.Normalize()
	assert.True(t, out["worldClock"])
	assert.False(t, out["weather"])
}

func TestVisibilityClone_Independent(t *testing.T) {
	v := DefaultVisibility()
	c := v.Clone()
	c["clock"] = false
	assert.True(t, v["clock"])
}

func TestWidgetRegistry_UniqueIds(t *testing.T) {
	seen := make(map[string]bool)
	for _, w := range WidgetRegistry {
		assert.False(t, seen[w.Id], "duplicate id %s", w.Id)
		seen[w.Id] = true
	}
}
