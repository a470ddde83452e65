package dds

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// buildDDS synthesizes a minimal container: 128-byte legacy header, plus
// a 20-byte DX10 extension when dxgi is non-zero.
func buildDDS(t *testing.T, dir, name string, width, height uint32, fourCC uint32, dxgi uint32) string {
	t.Helper()

	size := legacyHeaderSize
	if dxgi != 0 {
		size += dx10HeaderSize
	}
	buf := make([]byte, size)

	binary.LittleEndian.PutUint32(buf[0:], ddsMagic)
	binary.LittleEndian.PutUint32(buf[4:], 124)
	binary.LittleEndian.PutUint32(buf[offFlags:], 0x1007) // caps|height|width|pixelformat
	binary.LittleEndian.PutUint32(buf[offHeight:], height)
	binary.LittleEndian.PutUint32(buf[offWidth:], width)
	binary.LittleEndian.PutUint32(buf[76:], 32) // pixelformat dwSize
	binary.LittleEndian.PutUint32(buf[offPFFlags:], ddpfFourCC)
	binary.LittleEndian.PutUint32(buf[offFourCC:], fourCC)
	if dxgi != 0 {
		binary.LittleEndian.PutUint32(buf[offDXGIFormat:], dxgi)
		binary.LittleEndian.PutUint32(buf[132:], 3) // texture2d
		binary.LittleEndian.PutUint32(buf[140:], 1) // arraySize
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}
