// File: pkg/collect/helpers.go
package collect

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ensureDirectory ensures a directory exists, creating it and any missing
// parents if necessary.
func ensureDirectory(fsys afero.Fs, path string, logger *zap.Logger) error {
	if path == "" || path == "." {
		return nil
	}
	if info, err := fsys.Stat(path); err == nil && info.IsDir() {
		return nil
	}
	if err := fsys.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Created directory", zap.String("path", path))
	return nil
}

// writeSection writes one file section: header, content and a newline.
func writeSection(w io.StringWriter, header, content string) error {
	for _, s := range []string{header, content, "\n"} {
		if _, err := w.WriteString(s); err != nil {
			return err
		}
	}
	return nil
}
