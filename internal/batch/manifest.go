package batch

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"ddsforge/internal/dds"
)

// ParseManifest reads job lines from r. One job per line, pipe-delimited:
//
//	input.dds|output.dds|maxExtent|format|srgbHint
//
// format is optional (empty means BC7). srgbHint is optional: empty means
// auto, 0 forces linear, 1 forces sRGB. Empty lines and lines starting
// with '#' are skipped. Lines with an empty input, empty output, or
// non-positive maxExtent are dropped silently; the loader is best-effort
// extraction, not validation.
func ParseManifest(r io.Reader) ([]Job, error) {
	var jobs []Job

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "|")
		job := Job{InputPath: field(fields, 0), OutputPath: field(fields, 1)}
		job.MaxExtent, _ = strconv.Atoi(field(fields, 2))
		job.Format = dds.ParseFormat(field(fields, 3))
		job.Hint = parseHint(field(fields, 4))

		if job.InputPath == "" || job.OutputPath == "" || job.MaxExtent <= 0 {
			continue
		}
		jobs = append(jobs, job)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// LoadManifest opens and parses a manifest file.
func LoadManifest(path string) ([]Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseManifest(f)
}

func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

func parseHint(s string) dds.SRGBHint {
	switch s {
	case "0":
		return dds.HintLinear
	case "1":
		return dds.HintSRGB
	default:
		return dds.HintAuto
	}
}
