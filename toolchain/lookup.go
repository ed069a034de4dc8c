package toolchain

import (
	"fmt"
	"os/exec"
	"slices"
	"strings"

	"github.com/ruteri/pgtls-bootstrap/interfaces"
)

// LookPathFunc resolves an executable name. exec.LookPath satisfies it.
type LookPathFunc func(file string) (string, error)

// Require checks that every tool resolves with lookPath and reports all
// unresolvable ones in a single ErrMissingDependency error. Duplicate names
// are checked once. A nil lookPath means exec.LookPath.
func Require(lookPath LookPathFunc, tools ...string) error {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	var missing []string
	seen := make(map[string]bool, len(tools))
	for _, tool := range tools {
		if tool == "" || seen[tool] {
			continue
		}
		seen[tool] = true

		if _, err := lookPath(tool); err != nil {
			missing = append(missing, tool)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	slices.Sort(missing)
	return fmt.Errorf("%w: %s not found in PATH", interfaces.ErrMissingDependency, strings.Join(missing, ", "))
}
