package auxfile

import (
	"encoding/binary"
	"encoding/json"
	"testing"
)

func TestDevSettingLayout(t *testing.T) {
	buf := BuildDevSetting()
	if len(buf) != DevSettingLen {
		t.Fatalf("len = %d, want %d", len(buf), DevSettingLen)
	}
	if got := binary.LittleEndian.Uint32(buf[0x00:]); got != 0x60 {
		t.Errorf("header = %#x, want 0x60", got)
	}
	if string(buf[0x04:0x0E]) != "PIONEER DJ" {
		t.Errorf("brand = %q, want %q", buf[0x04:0x0E], "PIONEER DJ")
	}
	if string(buf[0x24:0x2D]) != "rekordbox" {
		t.Errorf("app = %q, want %q", buf[0x24:0x2D], "rekordbox")
	}
	if got := binary.LittleEndian.Uint32(buf[0x68:]); got != 0x12345678 {
		t.Errorf("magic = %#x, want 0x12345678", got)
	}
}

func TestProfileNameOffsetAndTruncation(t *testing.T) {
	buf := BuildProfile("Test DJ")
	if len(buf) != ProfileLen {
		t.Fatalf("len = %d, want %d", len(buf), ProfileLen)
	}
	if string(buf[0x20:0x27]) != "Test DJ" {
		t.Errorf("name = %q, want %q", buf[0x20:0x27], "Test DJ")
	}

	long := BuildProfile("012345678901234567890123456789ABCDEF")
	if long[0x20+31] != 0x00 {
		t.Errorf("long profile name not truncated to leave a null terminator")
	}
}

func TestDeviceBackupJSONShape(t *testing.T) {
	out, err := BuildDeviceBackup(BackupInfo{
		DeviceID: "ABC", DeviceName: "My USB", Filesystem: "FAT32",
		BackupPCID: 1, BackupPCName: "Studio PC",
	})
	if err != nil {
		t.Fatalf("BuildDeviceBackup: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := doc["uuid"]; !ok {
		t.Errorf("missing uuid field")
	}
	info, ok := doc["info"].([]any)
	if !ok || len(info) != 1 {
		t.Fatalf("info field = %#v, want a single-element list", doc["info"])
	}
}
