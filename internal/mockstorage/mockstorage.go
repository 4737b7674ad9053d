// Package mockstorage provides a testify-based mock of storage.Storage
// for unit tests of code that persists and reloads users.
package mockstorage

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/patric-chuzhbe/usersroundtrip/internal/user"
)

// StorageMock is a testify mock implementing storage.Storage.
type StorageMock struct {
	mock.Mock
}

// Save mocks persisting a users document.
func (m *StorageMock) Save(ctx context.Context, users user.Users) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

// Load mocks reading the users document back.
func (m *StorageMock) Load(ctx context.Context) (user.Users, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).(user.Users)
	return users, args.Error(1)
}

// Close mocks closing the store.
func (m *StorageMock) Close() error {
	args := m.Called()
	return args.Error(0)
}
