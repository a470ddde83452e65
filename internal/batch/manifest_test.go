package batch

import (
	"strings"
	"testing"

	"ddsforge/internal/dds"
)

func TestParseManifestSkipsInvalidLines(t *testing.T) {
	manifest := strings.Join([]string{
		"# comment line",
		"",
		"a.dds|b.dds|0|bc7", // non-positive extent
		"|b.dds|1024|bc7",   // empty input
		"a.dds||1024|bc7",   // empty output
	}, "\n")

	jobs, err := ParseManifest(strings.NewReader(manifest))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("got %d jobs, want 0: %#v", len(jobs), jobs)
	}
}

func TestParseManifestFields(t *testing.T) {
	manifest := strings.Join([]string{
		"in.dds|out.dds|2048|bc4|1",
		"tex/d.dds|tex/d_out.dds|1024||0",
		"n.dds|n out.dds|512|bc5",
	}, "\n")

	jobs, err := ParseManifest(strings.NewReader(manifest))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("got %d jobs, want 3", len(jobs))
	}

	if jobs[0].Format != dds.FormatBC4 || jobs[0].Hint != dds.HintSRGB || jobs[0].MaxExtent != 2048 {
		t.Fatalf("job 0 = %#v", jobs[0])
	}
	// Empty format defaults to BC7; hint 0 forces linear.
	if jobs[1].Format != dds.FormatBC7 || jobs[1].Hint != dds.HintLinear {
		t.Fatalf("job 1 = %#v", jobs[1])
	}
	// Absent hint field means auto.
	if jobs[2].Format != dds.FormatBC5 || jobs[2].Hint != dds.HintAuto {
		t.Fatalf("job 2 = %#v", jobs[2])
	}
	if jobs[2].OutputPath != "n out.dds" {
		t.Fatalf("job 2 output = %q", jobs[2].OutputPath)
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	if _, err := LoadManifest(t.TempDir() + "/absent.txt"); err == nil {
		t.Fatalf("expected error for missing manifest")
	}
}
