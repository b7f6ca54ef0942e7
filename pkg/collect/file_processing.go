package collect

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// readCandidate loads a candidate and decodes it as text. A decode failure is
// reported as errNotText; any other error comes from the filesystem.
func (c *Collector) readCandidate(path string) (string, error) {
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return "", err
	}

	content, err := decodeText(data)
	if err != nil {
		return "", err
	}
	c.logger.Debug("Read file content", zap.String("file", path), zap.Int("contentSizeBytes", len(data)))
	return content, nil
}

// sectionHeader returns the text written before a file's content.
func sectionHeader(path string, useBanner bool) string {
	if useBanner {
		return banner(path)
	}
	return fmt.Sprintf("\n// File: %s\n", path)
}

// banner frames the path between two comment rules.
func banner(text string) string {
	return fmt.Sprintf("%s\n// File: %s\n%s\n", bannerRule, text, bannerRule)
}
