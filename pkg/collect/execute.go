// File: pkg/collect/execute.go
package collect

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Run parses the exclusions, then walks args.Root and dumps it into
// args.Output. Exclusions are validated before anything on disk is touched.
// The output path is always excluded from its own dump.
func Run(fsys afero.Fs, args Arguments, logger *zap.Logger) (RunSummary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	patterns, err := ParsePatterns(args.Exclude)
	if err != nil {
		logger.Debug("Rejected exclusion patterns", zap.String("exclude", args.Exclude), zap.Error(err))
		return RunSummary{}, err
	}
	patterns = patterns.WithLiteral(args.Output)
	logger.Debug("Compiled exclusion patterns", zap.Strings("patterns", patterns.Sources()))

	root := args.Root
	if root == "" {
		root = DefaultRoot
	}

	c := New(fsys, Options{
		Patterns:       patterns,
		Verbose:        args.Verbose,
		UseBanner:      args.UseBanner,
		Hidden:         args.Hidden,
		NoIgnore:       args.NoIgnore,
		IgnoreFileName: args.IgnoreFileName,
	}, logger)

	summary, err := c.Dump(c.Walk(root), args.Output)
	if err != nil {
		return summary, fmt.Errorf("dump of %s failed: %w", root, err)
	}

	logger.Debug("Dump completed",
		zap.String("outputFile", args.Output),
		zap.Int("files", summary.Files),
		zap.Int("binarySkipped", summary.Binary),
		zap.Int("failed", summary.Failed),
		zap.String("size", humanize.Bytes(uint64(summary.Bytes))),
		zap.Duration("elapsed", time.Since(startTime)))
	return summary, nil
}
