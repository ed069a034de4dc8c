package privilege

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ruteri/pgtls-bootstrap/interfaces"
	"github.com/ruteri/pgtls-bootstrap/toolchain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIdentityCanChown(t *testing.T) {
	user := Identity{UID: 1000, GID: 1000, Groups: []int{1000, 27}}

	tests := []struct {
		name     string
		identity Identity
		owner    interfaces.Ownership
		expected bool
	}{
		{name: "root can give away", identity: Identity{UID: 0}, owner: interfaces.Ownership{UID: 70, GID: 70}, expected: true},
		{name: "user keeps ownership", identity: user, owner: interfaces.Ownership{UID: 1000, GID: 1000}, expected: true},
		{name: "user switches to own group", identity: user, owner: interfaces.Ownership{UID: 1000, GID: 27}, expected: true},
		{name: "user cannot switch to foreign group", identity: user, owner: interfaces.Ownership{UID: 1000, GID: 70}, expected: false},
		{name: "user cannot give away", identity: user, owner: interfaces.Ownership{UID: 70, GID: 1000}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.identity.CanChown(tt.owner))
		})
	}
}

func TestIdentityCanChmod(t *testing.T) {
	assert.True(t, Identity{UID: 0}.CanChmod(70))
	assert.True(t, Identity{UID: 1000}.CanChmod(1000))
	assert.False(t, Identity{UID: 1000}.CanChmod(70))
}

func TestCurrentIdentity(t *testing.T) {
	id, err := CurrentIdentity()
	require.NoError(t, err)
	assert.Equal(t, os.Geteuid(), id.UID)
	assert.Equal(t, os.Getegid(), id.GID)
	assert.Equal(t, IsRoot(), id.IsRoot())
}

func TestScopedFSDirect(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no ownership on windows")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := &toolchain.MockRunner{}

	id, err := CurrentIdentity()
	require.NoError(t, err)
	scoped := NewScopedFS(runner, id, true, logger)

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	file := filepath.Join(nested, "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	self := interfaces.Ownership{UID: id.UID, GID: id.GID}
	assert.Empty(t, scoped.RequiredTools(self))
	require.NoError(t, scoped.ChownRecursive(context.Background(), root, self))

	owner, err := Owner(file)
	require.NoError(t, err)
	assert.Equal(t, id.UID, owner.UID)

	require.NoError(t, scoped.Chmod(context.Background(), file, 0o600))
	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func TestScopedFSElevatesChown(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := &toolchain.MockRunner{}
	scoped := NewScopedFS(runner, Identity{UID: 1000, GID: 1000}, true, logger)

	owner := interfaces.Ownership{UID: 70, GID: 70}
	assert.Equal(t, []string{"sudo", "chown", "chmod"}, scoped.RequiredTools(owner))
	require.NoError(t, scoped.CanApply(owner))

	runner.On("Run", mock.Anything, "sudo", []string{"chown", "-R", "70:70", "data"}).Return([]byte{}, nil).Once()
	require.NoError(t, scoped.ChownRecursive(context.Background(), "data", owner))

	runner.On("Run", mock.Anything, "sudo", []string{"chown", "-R", "70:70", "certs"}).Return(nil, errors.New("sudo: a password is required")).Once()
	err := scoped.ChownRecursive(context.Background(), "certs", owner)
	require.ErrorIs(t, err, interfaces.ErrOwnershipChange)
	assert.Contains(t, err.Error(), "password is required")

	runner.AssertExpectations(t)
}

func TestScopedFSElevationDisabled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := &toolchain.MockRunner{}
	scoped := NewScopedFS(runner, Identity{UID: 1000, GID: 1000}, false, logger)

	owner := interfaces.Ownership{UID: 70, GID: 70}
	assert.Empty(t, scoped.RequiredTools(owner))

	err := scoped.CanApply(owner)
	require.ErrorIs(t, err, interfaces.ErrOwnershipChange)
	assert.ErrorIs(t, err, ErrElevationRequired)
	require.NoError(t, scoped.CanApply(interfaces.Ownership{UID: 1000, GID: 1000}))

	err = scoped.ChownRecursive(context.Background(), "data", owner)
	require.ErrorIs(t, err, interfaces.ErrOwnershipChange)
	assert.ErrorIs(t, err, ErrElevationRequired)

	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func TestScopedFSElevatesChmodOnForeignPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no ownership on windows")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := &toolchain.MockRunner{}

	dir := t.TempDir()
	owner, err := Owner(dir)
	require.NoError(t, err)

	// pretend to be somebody else so the directory looks foreign
	other := Identity{UID: owner.UID + 1, GID: owner.GID + 1}
	scoped := NewScopedFS(runner, other, true, logger)

	runner.On("Run", mock.Anything, "sudo", []string{"chmod", "700", dir}).Return([]byte{}, nil).Once()
	require.NoError(t, scoped.Chmod(context.Background(), dir, 0o700))
	runner.AssertExpectations(t)

	denied := NewScopedFS(runner, other, false, logger)
	err = denied.Chmod(context.Background(), dir, 0o700)
	require.ErrorIs(t, err, interfaces.ErrPermissionSet)
	assert.ErrorIs(t, err, ErrElevationRequired)
}

func TestScopedFSChmodMissingPath(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := NewScopedFS(&toolchain.MockRunner{}, Identity{UID: 1000}, true, logger)

	err := scoped.Chmod(context.Background(), filepath.Join(t.TempDir(), "missing"), 0o600)
	assert.ErrorIs(t, err, interfaces.ErrPermissionSet)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
