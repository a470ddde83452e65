// Package nvtt drives an external NVTT-style compression tool as the
// batch backend. The image decoding, resampling, and block-compression
// math all live in the tool; this package only builds argument lists,
// runs the process, and classifies failures.
package nvtt

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"ddsforge/internal/batch"
	"ddsforge/internal/dds"
)

const defaultTool = "texconv"

// Tool configures the external compressor. It implements batch.Backend.
type Tool struct {
	Path string // compressor executable; defaults to "texconv"
	GPU  int    // adapter index passed to the tool; negative disables GPU
}

// Acquire resolves the compressor once for the whole batch and probes
// for CUDA availability. The returned session is the single shared
// accelerator context.
func (t Tool) Acquire() (batch.Context, error) {
	path := t.Path
	if path == "" {
		path = defaultTool
	}
	resolved, err := exec.LookPath(path)
	if err != nil {
		return nil, fmt.Errorf("compression tool not found: %s", path)
	}

	return &session{
		tool:  resolved,
		gpu:   t.GPU,
		accel: t.GPU >= 0 && haveCUDA(),
	}, nil
}

type session struct {
	tool  string
	gpu   int
	accel bool
}

func (s *session) Accelerated() bool { return s.accel }

func (s *session) Close() error { return nil }

// Compress runs one submission synchronously. The call either fully
// succeeds or fully fails; there are no partial results.
func (s *session) Compress(req batch.Request) error {
	outDir := filepath.Dir(req.OutputPath)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("Failed to write DDS header: %v", err)
	}

	cmd := exec.Command(s.tool, buildArgs(req, s.gpu, outDir)...)

	var stderrBuf bytes.Buffer
	cmd.Stdout = &stderrBuf
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		return classify(stderrBuf.String())
	}

	// The tool names its output after the input; move it into place
	// when the manifest asked for a different name.
	produced := filepath.Join(outDir, toolOutputName(req.InputPath))
	if filepath.Clean(produced) != filepath.Clean(req.OutputPath) {
		if err := os.Rename(produced, req.OutputPath); err != nil {
			return fmt.Errorf("Compression failed: %v", err)
		}
	}

	if _, err := os.Stat(req.OutputPath); err != nil {
		return fmt.Errorf("Compression failed: output file missing")
	}

	return nil
}

// buildArgs constructs the complete tool argument slice for one
// submission. The caller has already fixed the exact target dimensions
// and mip count; the tool must not re-derive them.
func buildArgs(req batch.Request, gpu int, outDir string) []string {
	args := make([]string, 0, 20)

	args = append(args, "-nologo", "-y", "-dx10")
	args = append(args, "-f", toolFormat(req.Format, req.SRGB))
	args = append(args, "-w", strconv.Itoa(req.Width))
	args = append(args, "-h", strconv.Itoa(req.Height))
	args = append(args, "-m", strconv.Itoa(req.Mips))

	if gpu >= 0 {
		args = append(args, "-gpu", strconv.Itoa(gpu))
	} else {
		args = append(args, "-nogpu")
	}

	if req.SRGB {
		args = append(args, "-srgb")
	}

	args = append(args, "-o", outDir, req.InputPath)
	return args
}

// toolFormat maps a Format to the tool's format-name syntax, selecting
// the sRGB variant when the format has one.
func toolFormat(f dds.Format, srgb bool) string {
	if f == dds.FormatBC6 {
		return "BC6H_UF16"
	}
	if srgb && dds.IsSRGBCode(f.DXGIFormat(true)) {
		return f.String() + "_UNORM_SRGB"
	}
	return f.String() + "_UNORM"
}

func toolOutputName(inputPath string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".dds"
}

// classify turns captured tool output into the per-job failure reasons
// the status protocol reports.
func classify(output string) error {
	lower := strings.ToLower(output)
	switch {
	case strings.Contains(lower, "failed to load") || strings.Contains(lower, "could not open"):
		return fmt.Errorf("Failed to load DDS file")
	case strings.Contains(lower, "failed to write") || strings.Contains(lower, "header"):
		return fmt.Errorf("Failed to write DDS header")
	default:
		line := firstLine(output)
		if line == "" {
			return fmt.Errorf("Compression failed")
		}
		return fmt.Errorf("Compression failed: %s", line)
	}
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

func haveCUDA() bool {
	_, err := exec.LookPath("nvidia-smi")
	return err == nil
}
