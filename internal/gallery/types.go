// Package gallery stores rendered frames in a single sqlite archive file,
// keyed by (sketch, seed, frame) and carrying the parameter record that
// produced each frame.
package gallery

// Metadata describes a gallery archive.
type Metadata struct {
	Name        string
	Description string
	Version     string
}

// ToMap converts metadata to the key/value rows stored in the database.
func (m Metadata) ToMap() map[string]string {
	return map[string]string{
		"name":        m.Name,
		"description": m.Description,
		"version":     m.Version,
	}
}

// Entry is one archived frame.
type Entry struct {
	Sketch string
	Seed   int64
	Frame  int
	// Params is the JSON-encoded parameter record for the run.
	Params string
	// Data is the PNG encoding of the frame.
	Data []byte
}

// Key identifies an archived frame without its payload.
type Key struct {
	Sketch string
	Seed   int64
	Frame  int
}
