package storage

// Persisted key names. Fixed for forward-compatibility: backup files written
// by older builds must keep importing cleanly.
const (
	StateKey       = "life-dashboard-state-v1"
	VisibilityKey  = "life-dashboard-visible-v1"
	QuickLaunchKey = "quick-launch-items-v1"
	LastPosKey     = "ld-last-pos-v1"
	WorldClockKey  = "worldclock-v1"
)
