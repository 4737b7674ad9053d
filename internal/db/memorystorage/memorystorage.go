package memorystorage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/patric-chuzhbe/usersroundtrip/internal/db/storage"
	"github.com/patric-chuzhbe/usersroundtrip/internal/user"
)

// ErrEmpty is returned by Load before anything has been saved.
var ErrEmpty = errors.New("no users document has been saved")

// MemoryStorage keeps the encoded users document in memory.
type MemoryStorage struct {
	mu       sync.Mutex
	document []byte
	closed   bool
}

func New() *MemoryStorage {
	return &MemoryStorage{}
}

func (theStorage *MemoryStorage) Save(ctx context.Context, users user.Users) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	document, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	theStorage.mu.Lock()
	defer theStorage.mu.Unlock()

	if theStorage.closed {
		return storage.ErrStorageClosed
	}
	theStorage.document = document

	return nil
}

func (theStorage *MemoryStorage) Load(ctx context.Context) (user.Users, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	theStorage.mu.Lock()
	defer theStorage.mu.Unlock()

	if theStorage.closed {
		return nil, storage.ErrStorageClosed
	}
	if theStorage.document == nil {
		return nil, ErrEmpty
	}

	var users user.Users
	if err := json.Unmarshal(theStorage.document, &users); err != nil {
		return nil, fmt.Errorf("error decoding JSON: %w", err)
	}

	return users, nil
}

// Document returns a copy of the last saved encoding, or nil.
func (theStorage *MemoryStorage) Document() []byte {
	theStorage.mu.Lock()
	defer theStorage.mu.Unlock()

	if theStorage.document == nil {
		return nil
	}

	return append([]byte(nil), theStorage.document...)
}

func (theStorage *MemoryStorage) Close() error {
	theStorage.mu.Lock()
	defer theStorage.mu.Unlock()

	theStorage.closed = true

	return nil
}
