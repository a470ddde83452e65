package batch

import "ddsforge/internal/dds"

// Request is one compression submission: the backend loads InputPath,
// resizes to exactly Width x Height, builds Mips mip levels, and writes
// a DX10 container to OutputPath. The caller has already resolved the
// color space and mip plan; the backend must honor them as given.
type Request struct {
	InputPath  string
	OutputPath string
	Width      int
	Height     int
	Mips       int
	Format     dds.Format
	SRGB       bool
}

// Backend creates compression contexts. Acquire is called exactly once
// per batch; the returned Context is shared across every job.
type Backend interface {
	Acquire() (Context, error)
}

// Context is a live hardware-acceleration session. It is owned by the
// orchestrator for the batch's lifetime and must not be used from more
// than one job at a time.
type Context interface {
	// Accelerated reports whether GPU acceleration is active.
	Accelerated() bool
	// Compress runs one submission to completion. Errors are
	// per-job recoverable; the batch continues.
	Compress(req Request) error
	// Close releases the session. Called once at batch end.
	Close() error
}
