package batch

import "ddsforge/internal/dds"

// Job is one manifest line: compress inputPath into outputPath, fitting
// within MaxExtent, in the given format. Immutable once parsed.
type Job struct {
	InputPath  string
	OutputPath string
	MaxExtent  int
	Format     dds.Format
	Hint       dds.SRGBHint
}

// Result records one job's terminal state.
type Result struct {
	Job     Job
	OK      bool
	Reason  string // failure reason when !OK
	OrigW   int
	OrigH   int
	NewW    int
	NewH    int
	Mips    int
	Warning string // non-fatal patch problem after a successful compress
}

// Stats aggregates a batch run. Succeeded+Failed equals the number of
// jobs attempted.
type Stats struct {
	Succeeded int
	Failed    int
}

// ProgressUpdate feeds the terminal UI; one update per job event plus an
// initial total.
type ProgressUpdate struct {
	TotalDelta  int
	DoneDelta   int
	FailedDelta int
	Path        string
}
