package menu_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/domain"
	"passvault/internal/menu"
	"passvault/internal/services/key"
	"passvault/internal/services/password"
	"passvault/internal/store"
)

func newMachine() *menu.Machine {
	keys := key.New(store.NewKeyFileStore(), nil)
	return menu.New(keys, password.New(keys, store.NewRecordFileStore(), nil))
}

func TestMachine_HappyPath(t *testing.T) {
	dir := t.TempDir()
	m := newMachine()
	require.Equal(t, menu.AwaitingKey, m.State())

	res, err := m.Apply(menu.CreateKey, menu.Request{Path: filepath.Join(dir, "vault.key")})
	require.NoError(t, err)
	require.NoError(t, res.Warning)
	assert.True(t, res.Key.IsSet())
	assert.Equal(t, menu.AwaitingFile, m.State())

	_, err = m.Apply(menu.CreateFile, menu.Request{Path: filepath.Join(dir, "passwords.txt")})
	require.NoError(t, err)
	assert.Equal(t, menu.Managing, m.State())

	_, err = m.Apply(menu.Add, menu.Request{Site: "example.com", Secret: "secret1"})
	require.NoError(t, err)

	res, err = m.Apply(menu.Get, menu.Request{Site: "example.com"})
	require.NoError(t, err)
	assert.Equal(t, "secret1", res.Secret)

	res, err = m.Apply(menu.List, menu.Request{})
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com"}, res.Sites)

	_, err = m.Apply(menu.Quit, menu.Request{})
	require.NoError(t, err)
	assert.True(t, m.Done())
	assert.Empty(t, m.Actions())

	_, err = m.Apply(menu.List, menu.Request{})
	assert.ErrorIs(t, err, menu.ErrDone)
}

func TestMachine_RejectsOutOfOrderActions(t *testing.T) {
	m := newMachine()

	for _, a := range []menu.Action{menu.CreateFile, menu.LoadFile, menu.Add, menu.Get, menu.List} {
		_, err := m.Apply(a, menu.Request{Path: "x", Site: "s"})
		assert.ErrorIs(t, err, menu.ErrActionNotPermitted, a.String())
		assert.Equal(t, menu.AwaitingKey, m.State())
	}

	_, err := m.Apply(menu.SetKey, menu.Request{Key: make([]byte, 32)})
	require.NoError(t, err)
	for _, a := range []menu.Action{menu.Add, menu.Get, menu.List} {
		_, err := m.Apply(a, menu.Request{Site: "s"})
		assert.ErrorIs(t, err, menu.ErrActionNotPermitted, a.String())
	}

	_, err = m.Apply(menu.CreateFile, menu.Request{Path: filepath.Join(t.TempDir(), "p.txt")})
	require.NoError(t, err)
	for _, a := range []menu.Action{menu.CreateKey, menu.LoadKey, menu.SetKey} {
		assert.False(t, m.Permitted(a), a.String())
	}
}

func TestMachine_FailedActionKeepsState(t *testing.T) {
	m := newMachine()

	_, err := m.Apply(menu.LoadKey, menu.Request{Path: filepath.Join(t.TempDir(), "missing.key")})
	assert.ErrorIs(t, err, domain.ErrPath)
	assert.Equal(t, menu.AwaitingKey, m.State())

	_, err = m.Apply(menu.SetKey, menu.Request{})
	assert.ErrorIs(t, err, domain.ErrKeyNotSet)
	assert.Equal(t, menu.AwaitingKey, m.State())

	_, err = m.Apply(menu.SetKey, menu.Request{Key: make([]byte, 32)})
	require.NoError(t, err)

	_, err = m.Apply(menu.LoadFile, menu.Request{Path: filepath.Join(t.TempDir(), "missing.txt")})
	assert.ErrorIs(t, err, domain.ErrPath)
	assert.Equal(t, menu.AwaitingFile, m.State())
}

func TestMachine_CreateKeyUnsavedStillAdvances(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, store.NewRecordFileStore().Create(blocker))

	m := newMachine()
	res, err := m.Apply(menu.CreateKey, menu.Request{Path: filepath.Join(blocker, "vault.key")})
	require.NoError(t, err)
	require.Error(t, res.Warning)
	assert.True(t, errors.Is(res.Warning, domain.ErrPath))
	assert.True(t, res.Key.IsSet())
	assert.Equal(t, menu.AwaitingFile, m.State())
}

func TestMachine_ActionsPerState(t *testing.T) {
	m := newMachine()
	assert.Equal(t, []menu.Action{menu.CreateKey, menu.LoadKey, menu.SetKey, menu.Quit}, m.Actions())

	_, err := m.Apply(menu.SetKey, menu.Request{Key: []byte("k")})
	require.NoError(t, err)
	assert.Contains(t, m.Actions(), menu.LoadFile)
	assert.NotContains(t, m.Actions(), menu.Add)
}
