package nvtt

import (
	"strings"
	"testing"

	"ddsforge/internal/batch"
	"ddsforge/internal/dds"
)

func TestBuildArgs(t *testing.T) {
	req := batch.Request{
		InputPath:  "in/tex.dds",
		OutputPath: "out/tex.dds",
		Width:      512,
		Height:     256,
		Mips:       10,
		Format:     dds.FormatBC7,
		SRGB:       true,
	}

	args := strings.Join(buildArgs(req, 0, "out"), " ")

	for _, want := range []string{
		"-dx10",
		"-f BC7_UNORM_SRGB",
		"-w 512",
		"-h 256",
		"-m 10",
		"-gpu 0",
		"-srgb",
		"-o out in/tex.dds",
	} {
		if !strings.Contains(args, want) {
			t.Fatalf("args missing %q: %s", want, args)
		}
	}
}

func TestBuildArgsNoGPU(t *testing.T) {
	req := batch.Request{InputPath: "a.dds", OutputPath: "b.dds", Width: 4, Height: 4, Mips: 3, Format: dds.FormatBC4}

	args := strings.Join(buildArgs(req, -1, "."), " ")
	if !strings.Contains(args, "-nogpu") {
		t.Fatalf("expected -nogpu: %s", args)
	}
	if strings.Contains(args, "-srgb") {
		t.Fatalf("unexpected -srgb: %s", args)
	}
}

func TestToolFormat(t *testing.T) {
	for _, c := range []struct {
		format dds.Format
		srgb   bool
		want   string
	}{
		{dds.FormatBC7, true, "BC7_UNORM_SRGB"},
		{dds.FormatBC7, false, "BC7_UNORM"},
		{dds.FormatBC1, true, "BC1_UNORM_SRGB"},
		{dds.FormatBC3, true, "BC3_UNORM_SRGB"},
		// BC4 and BC5 have no sRGB variant; the flag must not
		// produce a nonexistent format name.
		{dds.FormatBC4, true, "BC4_UNORM"},
		{dds.FormatBC5, true, "BC5_UNORM"},
		{dds.FormatBC6, false, "BC6H_UF16"},
		{dds.FormatBC6, true, "BC6H_UF16"},
	} {
		if got := toolFormat(c.format, c.srgb); got != c.want {
			t.Fatalf("toolFormat(%s, %v) = %q, want %q", c.format, c.srgb, got, c.want)
		}
	}
}

func TestToolOutputName(t *testing.T) {
	for _, c := range []struct{ in, want string }{
		{"textures/rock.png", "rock.dds"},
		{"rock.dds", "rock.dds"},
		{"/abs/path/wall.tga", "wall.dds"},
	} {
		if got := toolOutputName(c.in); got != c.want {
			t.Fatalf("toolOutputName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestClassify(t *testing.T) {
	for _, c := range []struct {
		output string
		want   string
	}{
		{"ERROR: Failed to load input.dds", "Failed to load DDS file"},
		{"could not open file", "Failed to load DDS file"},
		{"failed to write header block", "Failed to write DDS header"},
		{"unexpected GPU fault\nmore context", "Compression failed: unexpected GPU fault"},
		{"", "Compression failed"},
	} {
		if got := classify(c.output); got.Error() != c.want {
			t.Fatalf("classify(%q) = %q, want %q", c.output, got, c.want)
		}
	}
}

func TestAcquireMissingTool(t *testing.T) {
	backend := Tool{Path: "definitely-not-a-real-compressor-binary"}
	if _, err := backend.Acquire(); err == nil {
		t.Fatalf("expected error for missing tool")
	}
}
