//go:build !unix

package privilege

import "io/fs"

func fileOwner(fs.FileInfo) (int, bool) { return 0, false }

func fileGroup(fs.FileInfo) (int, bool) { return 0, false }
