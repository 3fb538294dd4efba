package importsql

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFile writes content to path, replacing any existing file. Missing
// parent directories are created.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Report prints the completion summary for a script written to path.
func Report(w io.Writer, path string, s *Script) error {
	_, err := fmt.Fprintf(w, "Archivo generado: %s\n%d productos con imágenes Base64\n", path, s.Products)
	return err
}
