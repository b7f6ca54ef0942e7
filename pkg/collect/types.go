package collect

// RunSummary describes the outcome of a dump.
type RunSummary struct {
	Files  int   // Sections written to the output.
	Binary int   // Candidates skipped because they are not valid text.
	Failed int   // Candidates that could not be read.
	Bytes  int64 // File content bytes written, headers excluded.
}

// Constants
const (
	bannerRule = "//---------------------------------------------------"
)
