package gallery

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

// ErrNotFound is returned when a requested frame is not in the archive.
var ErrNotFound = errors.New("frame not found")

// Reader reads frames from a gallery archive.
type Reader struct {
	db   *sql.DB
	path string
}

// OpenReader opens a gallery archive for reading.
func OpenReader(path string) (*Reader, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='renders'").Scan(&count)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to verify schema: %w", err)
	}
	if count == 0 {
		db.Close()
		return nil, fmt.Errorf("database does not contain a renders table")
	}

	return &Reader{db: db, path: path}, nil
}

// ReadFrame returns the PNG data and params JSON for one archived frame.
func (r *Reader) ReadFrame(sketch string, seed int64, frame int) (Entry, error) {
	entry := Entry{Sketch: sketch, Seed: seed, Frame: frame}
	err := r.db.QueryRow(
		"SELECT params, data FROM renders WHERE sketch=? AND seed=? AND frame=?",
		sketch, seed, frame,
	).Scan(&entry.Params, &entry.Data)

	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s/%d/%d", ErrNotFound, sketch, seed, frame)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to query frame: %w", err)
	}
	return entry, nil
}

// List returns the keys of all archived frames in stable order.
func (r *Reader) List() ([]Key, error) {
	rows, err := r.db.Query("SELECT sketch, seed, frame FROM renders ORDER BY sketch, seed, frame")
	if err != nil {
		return nil, fmt.Errorf("failed to query frames: %w", err)
	}
	defer rows.Close()

	var keys []Key
	for rows.Next() {
		var k Key
		if err := rows.Scan(&k.Sketch, &k.Seed, &k.Frame); err != nil {
			return nil, fmt.Errorf("failed to scan frame row: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Metadata reads the archive metadata.
func (r *Reader) Metadata() (Metadata, error) {
	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to query metadata: %w", err)
	}
	defer rows.Close()

	metaMap := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return Metadata{}, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		metaMap[name] = value
	}
	if err := rows.Err(); err != nil {
		return Metadata{}, err
	}

	return Metadata{
		Name:        metaMap["name"],
		Description: metaMap["description"],
		Version:     metaMap["version"],
	}, nil
}

// Close closes the archive.
func (r *Reader) Close() error {
	return r.db.Close()
}
