package interfaces

import (
	"context"
	"os"
)

// CommandRunner executes external tools.
type CommandRunner interface {
	// Run executes name with args and returns its combined output.
	// A non-zero exit status is reported as an error that includes the output.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// CertificateGenerator produces a self-signed certificate and an unencrypted
// private key at the paths named by the request.
type CertificateGenerator interface {
	// Generate writes both files. The key file must never be readable by
	// group or other, not even transiently.
	Generate(ctx context.Context, req CertificateRequest) error

	// RequiredTools lists the external executables Generate will invoke.
	RequiredTools() []string

	// Name identifies the generator in logs.
	Name() string
}

// PrivilegedFS applies ownership and mode changes that may need more
// privilege than the current process holds.
type PrivilegedFS interface {
	// ChownRecursive sets owner on path and everything below it.
	ChownRecursive(ctx context.Context, path string, owner Ownership) error

	// Chmod sets the mode bits of a single path.
	Chmod(ctx context.Context, path string, mode os.FileMode) error

	// RequiredTools lists the external executables needed to apply owner
	// to paths owned by the current process.
	RequiredTools(owner Ownership) []string

	// CanApply reports, without touching the filesystem, whether owner can
	// be applied to paths created by the current process.
	CanApply(owner Ownership) error
}
