//go:build unix

package toolchain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestWithUmaskRestoresMask(t *testing.T) {
	old := unix.Umask(0o027)
	defer unix.Umask(old)

	var inside int
	require.NoError(t, WithUmask(0o077, func() error {
		inside = unix.Umask(0o077)
		return nil
	}))

	assert.Equal(t, 0o077, inside)
	assert.Equal(t, 0o027, unix.Umask(0o027))
}
