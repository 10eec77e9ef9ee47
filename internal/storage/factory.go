package storage

import (
	"errors"
	"strings"
)

const (
	EngineFile   = "file"
	EngineSQLite = "sqlite"
)

// NewByEngine picks the store implementation by name. The file engine gets
// a directory path, the sqlite engine a database file path.
func NewByEngine(engine, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineFile:
		return NewFileStore(path)
	case EngineSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, errors.New("unsupported store engine: " + engine)
	}
}
