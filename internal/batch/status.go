package batch

import (
	"fmt"
	"io"
)

// Reporter writes the machine-readable progress protocol, one
// colon-delimited line per event:
//
//	BATCH_START:<jobCount>
//	CUDA:enabled | CUDA:disabled
//	OK:<i+1>/<total>:<input>:<oW>x<oH>-><nW>x<nH>:<FMT>:<mips>
//	FAIL:<i+1>/<total>:<input>:<reason>
//	WARN:<i+1>/<total>:<input>:<reason>
//	BATCH_END:<succeeded>:<failed>
//
// A driving UI consumes these lines to render per-job progress. WARN
// reports a post-compression patch problem that does not flip the job's
// reported status.
type Reporter struct {
	w     io.Writer
	total int
}

func NewReporter(w io.Writer, total int) *Reporter {
	return &Reporter{w: w, total: total}
}

func (r *Reporter) BatchStart() {
	fmt.Fprintf(r.w, "BATCH_START:%d\n", r.total)
}

func (r *Reporter) Acceleration(enabled bool) {
	if enabled {
		fmt.Fprintln(r.w, "CUDA:enabled")
	} else {
		fmt.Fprintln(r.w, "CUDA:disabled")
	}
}

func (r *Reporter) JobOK(index int, res Result) {
	fmt.Fprintf(r.w, "OK:%d/%d:%s:%dx%d->%dx%d:%s:%d\n",
		index+1, r.total, res.Job.InputPath,
		res.OrigW, res.OrigH, res.NewW, res.NewH,
		res.Job.Format, res.Mips)
}

func (r *Reporter) JobFail(index int, res Result) {
	fmt.Fprintf(r.w, "FAIL:%d/%d:%s:%s\n",
		index+1, r.total, res.Job.InputPath, res.Reason)
}

func (r *Reporter) JobWarn(index int, res Result) {
	fmt.Fprintf(r.w, "WARN:%d/%d:%s:%s\n",
		index+1, r.total, res.Job.InputPath, res.Warning)
}

func (r *Reporter) BatchEnd(stats Stats) {
	fmt.Fprintf(r.w, "BATCH_END:%d:%d\n", stats.Succeeded, stats.Failed)
}
