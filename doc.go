// Package rekordexport assembles a complete Pioneer DJ CDJ USB export: the
// DeviceSQL library database (export.pdb), per-track ANLZ analysis files,
// device settings and profile, device-backup metadata, and the audio
// payload itself, laid out exactly the way a CDJ expects to find them on a
// USB drive (spec.md §4.6).
//
// Export is the single entry point; every other package in this module
// (page, pdb, anlz, auxfile, layout, track, dsstring) is a pure, I/O-free
// builder that Export drives and writes to disk.
package rekordexport
