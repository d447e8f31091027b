package hosts

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	atomicfile "github.com/natefinch/atomic"
)

var defaultPath string

func init() {
	defaultPath = "/etc/hosts"
	if runtime.GOOS == "windows" {
		defaultPath = os.ExpandEnv("${SystemRoot}\\System32\\drivers\\etc\\hosts")
	}
}

// DefaultPath returns the platform's system hosts file path.
func DefaultPath() string { return defaultPath }

// Load reads and parses the hosts file at path. Parsing never fails;
// read failures map onto the engine's error taxonomy.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return Parse(string(data)), nil
}

// Save serializes the file and replaces path atomically: the content is
// written to a temporary file in the target's directory and renamed over
// the target, so concurrent readers see either the old or the new
// content, never a partial write. On failure the target is untouched.
func (f *File) Save(path string) error {
	if err := atomicfile.WriteFile(path, strings.NewReader(f.String())); err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		}
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}
