//go:build unix

package toolchain

import (
	"sync"

	"golang.org/x/sys/unix"
)

var umaskMu sync.Mutex

// WithUmask runs fn with the process file-creation mask set to mask and
// restores the previous mask when fn returns. Child processes started by fn
// inherit the mask.
func WithUmask(mask int, fn func() error) error {
	umaskMu.Lock()
	defer umaskMu.Unlock()

	old := unix.Umask(mask)
	defer unix.Umask(old)

	return fn()
}
