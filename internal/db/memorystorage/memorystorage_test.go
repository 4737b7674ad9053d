package memorystorage

import (
	"context"
	"testing"

	"github.com/patric-chuzhbe/usersroundtrip/internal/db/storage"
	"github.com/patric-chuzhbe/usersroundtrip/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test(t *testing.T) {
	t.Run("The base memorystorage package test", func(t *testing.T) {
		theStorage := New()

		_, err := theStorage.Load(context.Background())
		assert.ErrorIs(t, err, ErrEmpty)
		assert.Nil(t, theStorage.Document())

		err = theStorage.Save(context.Background(), user.Fixture())
		assert.NoError(t, err, "The `theStorage.Save()` should not return error")
		assert.Equal(t, `[{"name":"Aye Chan","email":"fate.macz@gmail.com"}]`, string(theStorage.Document()))

		users, err := theStorage.Load(context.Background())
		assert.NoError(t, err, "The `theStorage.Load()` should not return error")
		assert.Equal(t, user.Fixture(), users)

		err = theStorage.Close()
		assert.NoError(t, err, "The memorystorage.Close() should not return error")

		_, err = theStorage.Load(context.Background())
		assert.ErrorIs(t, err, storage.ErrStorageClosed)
		assert.ErrorIs(t, theStorage.Save(context.Background(), user.Fixture()), storage.ErrStorageClosed)
	})
}

func TestSaveReplacesDocument(t *testing.T) {
	theStorage := New()

	require.NoError(t, theStorage.Save(context.Background(), user.Users{
		{Name: "first", Email: "first@example.com"},
		{Name: "second", Email: "second@example.com"},
	}))
	require.NoError(t, theStorage.Save(context.Background(), user.Fixture()))

	users, err := theStorage.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user.Fixture(), users)
}

func TestLoadedUsersAreIndependent(t *testing.T) {
	theStorage := New()
	require.NoError(t, theStorage.Save(context.Background(), user.Fixture()))

	users, err := theStorage.Load(context.Background())
	require.NoError(t, err)
	users[0].Name = "mutated"

	again, err := theStorage.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Aye Chan", again[0].Name)
}
