//go:build !cgo

package sqlinit

// ParserAvailable reports whether Check parses SQL.
const ParserAvailable = false

// Check is a no-op without cgo; rendering relies on quoting alone.
func Check(string) error {
	return nil
}
