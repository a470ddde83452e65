package dds

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func TestLinearSize(t *testing.T) {
	for _, c := range []struct {
		w, h   int
		format Format
		want   uint32
	}{
		{1024, 1024, FormatBC7, 1048576}, // 256*256*16
		{10, 10, FormatBC4, 72},          // 3*3*8
		{4, 4, FormatBC1, 8},
		{1, 1, FormatBC7, 16}, // clamps to one block
		{2, 2, FormatBC4, 8},
	} {
		if got := LinearSize(c.w, c.h, c.format); got != c.want {
			t.Fatalf("LinearSize(%d,%d,%s) = %d, want %d", c.w, c.h, c.format, got, c.want)
		}
	}
}

func TestPatchEdits(t *testing.T) {
	dir := t.TempDir()
	path := buildDDS(t, dir, "out.dds", 64, 32, fourCCDX10, 98)

	// Pre-seed fields the way the backend leaves them: watermark in the
	// reserved region, bogus depth, nonzero miscFlags2.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	copy(raw[offReserved1:offReserved1+reserved1Words*4], bytes.Repeat([]byte{0xAB}, reserved1Words*4))
	binary.LittleEndian.PutUint32(raw[offDepth:], 0)
	binary.LittleEndian.PutUint32(raw[offLinearSize:], 0)
	binary.LittleEndian.PutUint32(raw[offMiscFlags2:], 3)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("seed fixture: %v", err)
	}

	if err := Patch(path, 64, 32, FormatBC7); err != nil {
		t.Fatalf("patch: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read patched: %v", err)
	}

	if flags := binary.LittleEndian.Uint32(got[offFlags:]); flags&ddsdLinearSize == 0 {
		t.Fatalf("linear-size flag not set: 0x%X", flags)
	}
	// The pre-existing flag bits survive the read-modify-write.
	if flags := binary.LittleEndian.Uint32(got[offFlags:]); flags&0x1007 != 0x1007 {
		t.Fatalf("existing flag bits clobbered: 0x%X", flags)
	}
	if ls := binary.LittleEndian.Uint32(got[offLinearSize:]); ls != 16*8*16 {
		t.Fatalf("linearSize = %d, want %d", ls, 16*8*16)
	}
	if depth := binary.LittleEndian.Uint32(got[offDepth:]); depth != 1 {
		t.Fatalf("depth = %d, want 1", depth)
	}
	if !bytes.Equal(got[offReserved1:offReserved1+reserved1Words*4], make([]byte, reserved1Words*4)) {
		t.Fatalf("reserved region not zeroed: %q", got[offReserved1:offReserved1+reserved1Words*4])
	}
	if mf2 := binary.LittleEndian.Uint32(got[offMiscFlags2:]); mf2 != 0 {
		t.Fatalf("miscFlags2 = %d, want 0", mf2)
	}
}

func TestPatchIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := buildDDS(t, dir, "out.dds", 100, 60, fourCCDX10, 80)

	if err := Patch(path, 100, 60, FormatBC4); err != nil {
		t.Fatalf("first patch: %v", err)
	}
	once, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if err := Patch(path, 100, 60, FormatBC4); err != nil {
		t.Fatalf("second patch: %v", err)
	}
	twice, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if !bytes.Equal(once, twice) {
		t.Fatalf("patch is not idempotent")
	}
}

func TestPatchLegacyFileSkipsMiscFlags2(t *testing.T) {
	dir := t.TempDir()
	path := buildDDS(t, dir, "legacy.dds", 16, 16, fourCCDXT1, 0)

	if err := Patch(path, 16, 16, FormatBC1); err != nil {
		t.Fatalf("patch: %v", err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	// The 128-byte file must not grow past the legacy header; the
	// extension write is guarded by the length check.
	if fi.Size() != legacyHeaderSize {
		t.Fatalf("file size = %d, want %d", fi.Size(), legacyHeaderSize)
	}
}

func TestPatchMissingFile(t *testing.T) {
	if err := Patch(filepath.Join(t.TempDir(), "gone.dds"), 16, 16, FormatBC7); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
