package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/filemark/pkg/core"
)

// Locate looks upwards from startDir for a directory containing one of
// the given store file names, checked in order (so the current format
// wins over the legacy one when both exist in the same directory).
//
// maxAncestors bounds how many directories may be visited. A value <= 0
// takes the default: the number of path segments of startDir, which in
// practice means "up to the filesystem root".
func Locate(startDir string, maxAncestors int, names ...string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	if maxAncestors <= 0 {
		maxAncestors = pathDepth(abs)
	}

	dir := abs
	for hops := 0; hops < maxAncestors; hops++ {
		for _, name := range names {
			if hasFile(dir, name) {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w within %d levels of %s", core.ErrNoStore, maxAncestors, abs)
}

// pathDepth counts the segments of an absolute path. Never zero, so a
// derived bound always allows at least the start directory itself.
func pathDepth(abs string) int {
	trimmed := strings.Trim(filepath.ToSlash(abs), "/")
	if trimmed == "" {
		return 1
	}
	return strings.Count(trimmed, "/") + 1
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
