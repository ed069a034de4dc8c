//go:build !unix

package toolchain

// WithUmask runs fn. Platforms without a file-creation mask rely on the
// explicit modes passed by callers.
func WithUmask(_ int, fn func() error) error {
	return fn()
}
