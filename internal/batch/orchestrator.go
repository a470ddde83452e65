// Package batch orchestrates a multi-texture compression run: manifest
// loading, per-job planning and submission over one shared backend
// context, header repair, and structured progress reporting.
package batch

import (
	"fmt"
	"os"

	"ddsforge/internal/dds"
)

// Run drives every job through probe, color-space resolution, mip
// planning, backend submission, and header patching, in manifest order.
//
// The backend context is acquired once for the whole batch and released
// on return regardless of per-job failures. Jobs run strictly
// sequentially; the context is never touched by two jobs at once. Every
// per-job error is converted into a FAIL line and the batch continues.
func Run(jobs []Job, backend Backend, rep *Reporter, updates chan<- ProgressUpdate) (Stats, error) {
	var stats Stats

	rep.BatchStart()
	if updates != nil {
		updates <- ProgressUpdate{TotalDelta: len(jobs)}
	}

	bctx, err := backend.Acquire()
	if err != nil {
		return stats, fmt.Errorf("acquire compression context: %w", err)
	}
	defer bctx.Close()

	rep.Acceleration(bctx.Accelerated())

	for i, job := range jobs {
		res := processJob(job, bctx)

		if res.OK {
			stats.Succeeded++
			if res.Warning != "" {
				rep.JobWarn(i, res)
			}
			rep.JobOK(i, res)
		} else {
			stats.Failed++
			rep.JobFail(i, res)
		}

		if updates != nil {
			update := ProgressUpdate{DoneDelta: 1, Path: job.InputPath}
			if !res.OK {
				update.FailedDelta = 1
			}
			updates <- update
		}
	}

	rep.BatchEnd(stats)
	return stats, nil
}

// processJob runs one job to its terminal state. The plan phase (probe,
// color-space resolution, mip planning) completes before the backend
// ever opens the output path: when input and output alias, the resolve
// step must read the original bytes, not truncated ones.
func processJob(job Job, bctx Context) Result {
	res := Result{Job: job}

	hdr, err := probeInput(job.InputPath)
	if err != nil {
		res.Reason = "Failed to load DDS file"
		return res
	}
	res.OrigW = int(hdr.Width)
	res.OrigH = int(hdr.Height)

	srgb := dds.ResolveSRGB(job.InputPath, job.Hint)

	res.NewW, res.NewH = dds.FitExtent(res.OrigW, res.OrigH, job.MaxExtent)
	res.Mips = dds.MipCount(res.NewW, res.NewH)

	err = bctx.Compress(Request{
		InputPath:  job.InputPath,
		OutputPath: job.OutputPath,
		Width:      res.NewW,
		Height:     res.NewH,
		Mips:       res.Mips,
		Format:     job.Format,
		SRGB:       srgb,
	})
	if err != nil {
		res.Reason = err.Error()
		return res
	}

	// The job already succeeded by the backend's account; a patch
	// problem is surfaced as a warning, never a failure.
	if err := dds.Patch(job.OutputPath, res.NewW, res.NewH, job.Format); err != nil {
		res.Warning = fmt.Sprintf("header patch skipped: %v", err)
	}

	res.OK = true
	return res
}

func probeInput(path string) (dds.Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return dds.Header{}, err
	}
	defer f.Close()

	return dds.ParseHeader(f)
}
