package privilege

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ruteri/pgtls-bootstrap/interfaces"
)

// SudoBinary is the elevation helper used for single privileged operations.
const SudoBinary = "sudo"

// ErrElevationRequired is wrapped when an operation needs privileges the
// process lacks and elevation is disabled.
var ErrElevationRequired = errors.New("operation requires elevated privileges")

// ScopedFS implements interfaces.PrivilegedFS. Each operation runs in-process
// when the effective identity is allowed to perform it; otherwise only that
// operation is delegated to sudo.
type ScopedFS struct {
	runner    interfaces.CommandRunner
	identity  Identity
	allowSudo bool
	log       *slog.Logger
}

// NewScopedFS creates a ScopedFS for identity. With allowSudo false,
// operations that need elevation fail with ErrElevationRequired.
func NewScopedFS(runner interfaces.CommandRunner, identity Identity, allowSudo bool, log *slog.Logger) *ScopedFS {
	return &ScopedFS{
		runner:    runner,
		identity:  identity,
		allowSudo: allowSudo,
		log:       log,
	}
}

// ChownRecursive sets owner on path and everything beneath it. Symlinks are
// not followed.
func (s *ScopedFS) ChownRecursive(ctx context.Context, path string, owner interfaces.Ownership) error {
	if s.identity.CanChown(owner) {
		if err := chownTree(path, owner); err != nil {
			return fmt.Errorf("%w: %s: %w", interfaces.ErrOwnershipChange, path, err)
		}
		return nil
	}

	if !s.allowSudo {
		return fmt.Errorf("%w: %s to %s: %w", interfaces.ErrOwnershipChange, path, owner, ErrElevationRequired)
	}

	s.log.Info("Elevating privileges for ownership change", "path", path, "owner", owner.String())
	if _, err := s.runner.Run(ctx, SudoBinary, "chown", "-R", owner.String(), path); err != nil {
		return fmt.Errorf("%w: %s: %w", interfaces.ErrOwnershipChange, path, err)
	}
	return nil
}

// Chmod sets the mode bits of path, elevating when path is owned by another user.
func (s *ScopedFS) Chmod(ctx context.Context, path string, mode os.FileMode) error {
	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", interfaces.ErrPermissionSet, path, err)
	}

	uid, known := fileOwner(info)
	if !known || s.identity.CanChmod(uid) {
		if err := os.Chmod(path, mode); err != nil {
			return fmt.Errorf("%w: %s: %w", interfaces.ErrPermissionSet, path, err)
		}
		return nil
	}

	if !s.allowSudo {
		return fmt.Errorf("%w: %s owned by uid %d: %w", interfaces.ErrPermissionSet, path, uid, ErrElevationRequired)
	}

	s.log.Debug("Elevating privileges for mode change", "path", path, "mode", fmt.Sprintf("%04o", mode.Perm()))
	if _, err := s.runner.Run(ctx, SudoBinary, "chmod", strconv.FormatUint(uint64(mode.Perm()), 8), path); err != nil {
		return fmt.Errorf("%w: %s: %w", interfaces.ErrPermissionSet, path, err)
	}
	return nil
}

// RequiredTools returns the elevation tools needed to hand paths owned by the
// current identity over to owner.
func (s *ScopedFS) RequiredTools(owner interfaces.Ownership) []string {
	if s.identity.CanChown(owner) || !s.allowSudo {
		return nil
	}
	return []string{SudoBinary, "chown", "chmod"}
}

// CanApply fails with ErrOwnershipChange when owner can neither be applied
// directly nor through sudo.
func (s *ScopedFS) CanApply(owner interfaces.Ownership) error {
	if s.identity.CanChown(owner) || s.allowSudo {
		return nil
	}
	return fmt.Errorf("%w: uid %d cannot hand paths to %s: %w", interfaces.ErrOwnershipChange, s.identity.UID, owner, ErrElevationRequired)
}

func chownTree(root string, owner interfaces.Ownership) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return os.Lchown(path, owner.UID, owner.GID)
	})
}
