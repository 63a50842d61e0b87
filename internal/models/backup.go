package models

// BackupSchema is the fixed schema tag every backup file carries.
const BackupSchema = "life-dashboard-backup"

// BackupVersion is the current export version. Version 1 files lack the
// visible map; version 2 files carry it.
const BackupVersion = 2

type BackupApp struct {
	State AppState `json:"state"`
}

// BackupPayload is the downloadable snapshot envelope. It is never
// persisted, only serialized to and from user-held files.
type BackupPayload struct {
	Schema      string            `json:"schema"`
	Version     int               `json:"version"`
	CreatedAt   string            `json:"createdAt"`
	App         BackupApp         `json:"app"`
	QuickLaunch []QuickLaunchItem `json:"quickLaunch"`
	Visible     VisibilityMap     `json:"visible,omitempty"`
}
