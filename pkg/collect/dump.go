// File: pkg/collect/dump.go
package collect

import (
	"bufio"
	"errors"
	"fmt"
	"iter"
	"path/filepath"

	"go.uber.org/zap"
)

// Dump writes every text candidate to outputPath, truncating it first, and
// returns how many sections were written.
//
// Failing to create the output or its parent directories, or to write to it,
// aborts the dump. A candidate that cannot be read is logged and skipped; a
// candidate that is not valid text is skipped silently unless Verbose is set.
func (c *Collector) Dump(candidates iter.Seq[string], outputPath string) (summary RunSummary, err error) {
	c.logger.Debug("Writing combined content to output file", zap.String("outputFile", outputPath))

	if err := ensureDirectory(c.fs, filepath.Dir(outputPath), c.logger); err != nil {
		return summary, fmt.Errorf("failed to create output directory: %w", err)
	}

	outFile, err := c.fs.Create(outputPath)
	if err != nil {
		c.logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return summary, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := outFile.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	writer := bufio.NewWriter(outFile)
	for path := range candidates {
		content, readErr := c.readCandidate(path)
		switch {
		case errors.Is(readErr, errNotText):
			summary.Binary++
			if c.opts.Verbose {
				c.logger.Info("Skipping binary file", zap.String("file", path))
			}
			continue
		case readErr != nil:
			summary.Failed++
			c.logger.Error("Error reading file", zap.String("file", path), zap.Error(readErr))
			continue
		}

		if err := writeSection(writer, sectionHeader(path, c.opts.UseBanner), content); err != nil {
			c.logger.Error("Failed to write section", zap.String("file", outputPath), zap.String("contentPath", path), zap.Error(err))
			return summary, fmt.Errorf("failed to write content: %w", err)
		}
		summary.Files++
		summary.Bytes += int64(len(content))
		if c.opts.Verbose {
			c.logger.Info("Add", zap.String("file", path))
		}
	}

	if err := writer.Flush(); err != nil {
		c.logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return summary, fmt.Errorf("failed to flush output: %w", err)
	}
	return summary, nil
}
