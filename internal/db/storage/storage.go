// Package storage declares the contract shared by the users document stores.
package storage

import (
	"context"
	"errors"

	"github.com/patric-chuzhbe/usersroundtrip/internal/user"
)

// ErrStorageClosed is returned by stores that are used after Close.
var ErrStorageClosed = errors.New("storage is closed")

// Storage persists a whole users document and reads it back.
// Save always replaces the previous document in full.
type Storage interface {
	Save(ctx context.Context, users user.Users) error

	Load(ctx context.Context) (user.Users, error)

	Close() error
}
