// Package privilege provides effective-user detection and ownership/mode
// changes that elevate privilege for a single operation when needed.
package privilege

import (
	"fmt"
	"os"
	"slices"

	"github.com/ruteri/pgtls-bootstrap/interfaces"
)

// Identity is the effective identity of the current process.
type Identity struct {
	UID    int
	GID    int
	Groups []int
}

// CurrentIdentity returns the effective uid, gid and supplementary groups.
func CurrentIdentity() (Identity, error) {
	groups, err := os.Getgroups()
	if err != nil {
		return Identity{}, fmt.Errorf("failed to read supplementary groups: %w", err)
	}

	return Identity{
		UID:    os.Geteuid(),
		GID:    os.Getegid(),
		Groups: groups,
	}, nil
}

// IsRoot checks if the identity has root privileges (euid == 0).
func (id Identity) IsRoot() bool {
	return id.UID == 0
}

// CanChown reports whether the identity may give away files it owns to owner
// without elevation. Only root may change the user; anyone may change the
// group to one they belong to.
func (id Identity) CanChown(owner interfaces.Ownership) bool {
	if id.IsRoot() {
		return true
	}
	if owner.UID != id.UID {
		return false
	}
	return owner.GID == id.GID || slices.Contains(id.Groups, owner.GID)
}

// CanChmod reports whether the identity may change the mode of a path owned
// by uid.
func (id Identity) CanChmod(uid int) bool {
	return id.IsRoot() || id.UID == uid
}

// IsRoot checks if the current process is running with root privileges (euid
// == 0).
func IsRoot() bool {
	return os.Geteuid() == 0
}

// IsRunningUnderSudo checks if the process is running under sudo by checking
// for the SUDO_USER environment variable.
func IsRunningUnderSudo() bool {
	return os.Getenv("SUDO_USER") != ""
}

// Owner returns the ownership of path without following symlinks.
func Owner(path string) (interfaces.Ownership, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return interfaces.Ownership{}, err
	}

	uid, okUID := fileOwner(info)
	gid, okGID := fileGroup(info)
	if !okUID || !okGID {
		return interfaces.Ownership{}, fmt.Errorf("ownership of %s is not available on this platform", path)
	}
	return interfaces.Ownership{UID: uid, GID: gid}, nil
}
