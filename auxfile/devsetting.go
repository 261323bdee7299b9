// Package auxfile emits the small fixed-layout companion files an export
// carries alongside export.pdb and the per-track ANLZ files: device
// settings, DJ profile, device-backup metadata, and artwork path
// derivation (spec.md §4.5).
package auxfile

import "encoding/binary"

// rekordboxVersion is the version string recorded in DEVSETTING.DAT.
const rekordboxVersion = "6.8.4"

// DevSettingLen is the fixed size of DEVSETTING.DAT.
const DevSettingLen = 140

// BuildDevSetting renders DEVSETTING.DAT's 140 bytes.
func BuildDevSetting() []byte {
	buf := make([]byte, DevSettingLen)
	binary.LittleEndian.PutUint32(buf[0x00:], 0x60)
	copy(buf[0x04:0x04+28], "PIONEER DJ")
	copy(buf[0x24:0x24+32], "rekordbox")
	copy(buf[0x44:0x44+32], rekordboxVersion)
	binary.LittleEndian.PutUint32(buf[0x64:], 0x20)
	binary.LittleEndian.PutUint32(buf[0x68:], 0x12345678)
	binary.LittleEndian.PutUint32(buf[0x6C:], 1)
	for i := 0; i < 6; i++ {
		buf[0x70+i] = 0x01
	}
	binary.LittleEndian.PutUint32(buf[0x88:], 0xD016)
	return buf
}
