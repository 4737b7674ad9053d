// Package jsondb stores the users document as a JSON file on disk.
package jsondb

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/patric-chuzhbe/usersroundtrip/internal/db/storage"
	"github.com/patric-chuzhbe/usersroundtrip/internal/logger"
	"github.com/patric-chuzhbe/usersroundtrip/internal/user"
)

// JSONDB is a file-backed users store. Every Save truncates the file,
// so the file always holds exactly the last saved document.
type JSONDB struct {
	fileName string
	closed   atomic.Bool
}

// New returns a store bound to fileName. The file and its directory are not
// touched until the first Save or Load.
func New(fileName string) *JSONDB {
	return &JSONDB{
		fileName: fileName,
	}
}

// Path returns the file the store reads and writes.
func (db *JSONDB) Path() string {
	return db.fileName
}

func writeToJSONFile(fileName string, users user.Users) (int, error) {
	jsonData, err := json.Marshal(users)
	if err != nil {
		return 0, fmt.Errorf("error marshaling JSON: %w", err)
	}

	file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	if err != nil {
		return 0, fmt.Errorf("error opening file: %w", err)
	}

	n, err := file.Write(jsonData)
	if err != nil {
		file.Close()
		return n, fmt.Errorf("error writing to file: %w", err)
	}

	if err := file.Close(); err != nil {
		return n, fmt.Errorf("error closing file: %w", err)
	}

	return n, nil
}

// parseJSONFile decodes the entire file. Anything after the JSON value is an error.
func parseJSONFile(fileName string, users *user.Users) error {
	jsonData, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	err = json.Unmarshal(jsonData, users)
	if err != nil {
		return fmt.Errorf("error decoding JSON: %w", err)
	}

	return nil
}

// Save writes users to the file, replacing any prior contents.
// The containing directory must already exist.
func (db *JSONDB) Save(ctx context.Context, users user.Users) error {
	if db.closed.Load() {
		return storage.ErrStorageClosed
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	n, err := writeToJSONFile(db.fileName, users)
	if err != nil {
		return fmt.Errorf("in jsondb.Save(%q): %w", db.fileName, err)
	}

	logger.Log.Debugln("users document written", "file", db.fileName, "bytes", n)

	return nil
}

// Load reads the whole file and decodes it.
func (db *JSONDB) Load(ctx context.Context) (user.Users, error) {
	if db.closed.Load() {
		return nil, storage.ErrStorageClosed
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var users user.Users
	if err := parseJSONFile(db.fileName, &users); err != nil {
		return nil, fmt.Errorf("in jsondb.Load(%q): %w", db.fileName, err)
	}

	logger.Log.Debugln("users document read", "file", db.fileName, "records", len(users))

	return users, nil
}

// Close marks the store as closed. The file is left in place.
func (db *JSONDB) Close() error {
	db.closed.Store(true)

	return nil
}
