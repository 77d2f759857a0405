package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
)

// SaveScreenshot writes the level as a timestamped PNG in dir and returns
// the path written.
func SaveScreenshot(dir string, l *world.Level, now time.Time) (string, error) {
	filename := fmt.Sprintf("level-%s.png", now.Format("20060102-150405"))
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", errors.New("creating screenshot failed").
			WithType(ErrTypeExport).
			WithTag("path", path).
			Wrap(err)
	}

	if err := closeAfter(f, SaveLevelPNG(f, l)); err != nil {
		return "", errors.New("writing screenshot failed").
			WithType(ErrTypeExport).
			WithTag("path", path).
			Wrap(err)
	}
	return path, nil
}
