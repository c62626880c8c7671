package supervisor

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/connect-tool/coresdk-go/internal/errors"
	"github.com/connect-tool/coresdk-go/internal/platform"
)

// CoreExecutableName is the base name of the core binary, without the
// platform suffix.
const CoreExecutableName = "connect-tool-core"

// Locator locates the core executable on disk.
type Locator interface {
	// Locate returns the absolute path to the core executable or an error.
	Locate() (string, error)
}

// locator implements the Locator interface.
type locator struct {
	log      *slog.Logger
	ops      platform.Ops
	corePath string
}

// Compile-time verification that locator implements Locator.
var _ Locator = (*locator)(nil)

// NewLocator creates a locator. An explicit corePath skips adjacent-file
// resolution and is used as-is, existence permitting.
func NewLocator(log *slog.Logger, ops platform.Ops, corePath string) Locator {
	return &locator{
		log:      log,
		ops:      ops,
		corePath: corePath,
	}
}

// Locate finds the core executable.
//
// With an explicit path configured, only that path is considered. The
// default is to look next to the frontend's own executable, since the
// two ship together in one install directory.
func (l *locator) Locate() (string, error) {
	if l.corePath != "" {
		l.log.Debug("Using explicit core path", "core_path", l.corePath)

		if _, err := os.Stat(l.corePath); err != nil {
			l.log.Debug("Explicit core path not found", "core_path", l.corePath)

			return "", &errors.CoreNotFoundError{Path: l.corePath}
		}

		return l.corePath, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate frontend executable: %w", err)
	}

	path := AdjacentCorePath(exe, l.ops)
	l.log.Debug("Resolved adjacent core path", "core_path", path)

	if _, err := os.Stat(path); err != nil {
		l.log.Warn("Core executable not found", "core_path", path)

		return "", &errors.CoreNotFoundError{Path: path}
	}

	return path, nil
}

// AdjacentCorePath returns where the core is expected to live relative
// to the given frontend executable: the same directory, named
// CoreExecutableName plus the platform's executable suffix.
func AdjacentCorePath(frontendExe string, ops platform.Ops) string {
	return filepath.Join(filepath.Dir(frontendExe), CoreExecutableName+ops.ExecutableSuffix())
}
