package auxfile

// ProfileLen is the fixed size of djprofile.nxs.
const ProfileLen = 160

// BuildProfile renders djprofile.nxs's 160 bytes: profileName at offset
// 0x20, truncated to 31 bytes and null-terminated.
func BuildProfile(profileName string) []byte {
	buf := make([]byte, ProfileLen)
	name := []byte(profileName)
	if len(name) > 31 {
		name = name[:31]
	}
	copy(buf[0x20:], name)
	return buf
}
