// Package collect gathers the text files of a directory tree into a single
// annotated dump file.
//
// A run has two phases. Walk lazily yields candidate files, honoring
// per-directory ignore files and the user's exclusion globs. Dump consumes
// those candidates in order and appends each text file to the output behind
// a header.
package collect

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Collector walks a tree and dumps its text files.
type Collector struct {
	fs     afero.Fs
	opts   Options
	logger *zap.Logger
}

// New creates a Collector reading and writing through fsys.
func New(fsys afero.Fs, opts Options, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		fs:     fsys,
		opts:   opts,
		logger: logger,
	}
}
