// File: pkg/collect/config.go
package collect

// Defaults shared by the CLI and the config layer.
const (
	DefaultRoot           = "."
	DefaultOutput         = "code_dump.txt"
	DefaultIgnoreFileName = ".dumpignore"
)

// Arguments holds the configuration options for a single dump run.
type Arguments struct {
	Root           string // Directory (or file) to scan.
	Output         string // Destination path for the combined output file.
	Exclude        string // Comma-separated exclusion globs.
	Verbose        bool   // If true, report every added and skipped file.
	UseBanner      bool   // Large three-line banner instead of the compact header.
	Hidden         bool   // Include dot-files and dot-directories.
	NoIgnore       bool   // Disable every ignore file, including git excludes.
	IgnoreFileName string // Per-directory ignore file name; empty means DefaultIgnoreFileName.
}

// Options configures a Collector.
type Options struct {
	Patterns       PatternSet // User exclusions, output self-exclusion included.
	Verbose        bool
	UseBanner      bool
	Hidden         bool
	NoIgnore       bool
	IgnoreFileName string
}

func (o Options) ignoreFileName() string {
	if o.IgnoreFileName == "" {
		return DefaultIgnoreFileName
	}
	return o.IgnoreFileName
}
