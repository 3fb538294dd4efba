package images

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Loader reads product images from a single base directory.
type Loader struct {
	dir string
}

func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load returns the raw bytes of fileName. The name is not validated.
func (l *Loader) Load(fileName string) ([]byte, error) {
	path := filepath.Join(l.dir, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image %s: %w", path, err)
	}
	slog.Debug("image loaded", "file", path, "bytes", len(data))
	return data, nil
}

// Encode returns fileName as standard base64, which never contains a
// quote or a line break and can sit inside a SQL string literal as is.
func (l *Loader) Encode(fileName string) (string, error) {
	data, err := l.Load(fileName)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
