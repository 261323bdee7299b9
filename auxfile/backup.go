package auxfile

import (
	"encoding/json"
	"fmt"
	"time"
)

// BackupInfo describes the device being backed up (spec.md §4.5).
type BackupInfo struct {
	DeviceID     string
	DeviceName   string
	Filesystem   string
	BackupPCID   uint32
	BackupPCName string
}

type backupEntry struct {
	DeviceID               string `json:"device_id"`
	DeviceName             string `json:"device_name"`
	BackgroundColor        string `json:"background_color"`
	BackgroundColorLibPlus string `json:"background_color_libplus"`
	DeviceFilesystem       string `json:"device_filesystem"`
	BackupPCID             string `json:"backup_pc_id"`
	BackupPCName           string `json:"backup_pc_name"`
	BackupLocation         string `json:"backup_location"`
	BackupGeneration       string `json:"backup_generation"`
	BackupDate             string `json:"backup_date"`
	BackupFileName         string `json:"backup_file_name"`
}

type backupDocument struct {
	UUID string        `json:"uuid"`
	Info []backupEntry `json:"info"`
}

// newUUID returns a UUID-like identifier derived from a high-resolution
// timestamp, matching the format original_source's Rust writer used
// (hex of nanoseconds since the Unix epoch) rather than a real RFC 4122
// UUID, since nothing in this pack pulls in a UUID library.
func newUUID() string {
	return fmt.Sprintf("%032x", time.Now().UnixNano())
}

// BuildDeviceBackup renders the rbDevLibBaInfo JSON document for info.
func BuildDeviceBackup(info BackupInfo) ([]byte, error) {
	uuid := newUUID()
	now := time.Now().UTC().Format("2006/01/02 15:04:05")
	doc := backupDocument{
		UUID: uuid,
		Info: []backupEntry{{
			DeviceID:               info.DeviceID,
			DeviceName:             info.DeviceName,
			BackgroundColor:        "0",
			BackgroundColorLibPlus: "0",
			DeviceFilesystem:       info.Filesystem,
			BackupPCID:             fmt.Sprintf("%d", info.BackupPCID),
			BackupPCName:           info.BackupPCName,
			BackupLocation:         "1",
			BackupGeneration:       "1",
			BackupDate:             now,
			BackupFileName:         fmt.Sprintf("rbDevLibBa_%d_%s.zip", info.BackupPCID, uuid),
		}},
	}
	return json.MarshalIndent(doc, "", "  ")
}
