package dds

import (
	"encoding/binary"
	"io"
	"os"
)

// SRGBHint is the caller-supplied color-space classification for inputs
// whose own header carries no color-space metadata.
type SRGBHint int

const (
	HintAuto SRGBHint = iota
	HintLinear
	HintSRGB
)

func (h SRGBHint) String() string {
	switch h {
	case HintLinear:
		return "linear"
	case HintSRGB:
		return "srgb"
	default:
		return "auto"
	}
}

// DXGI codes that declare sRGB-encoded content: R8G8B8A8_UNORM_SRGB,
// BC1_SRGB, BC2_SRGB, BC3_SRGB, B8G8R8A8_UNORM_SRGB, BC7_SRGB.
var srgbDXGICodes = map[uint32]bool{
	28: true,
	72: true,
	75: true,
	78: true,
	91: true,
	99: true,
}

// IsSRGBCode reports whether a DXGI format code declares sRGB content.
func IsSRGBCode(code uint32) bool {
	return srgbDXGICodes[code]
}

// HasDX10Header reports whether the file carries a DX10 extended header,
// identified by the "DX10" FourCC at offset 84. Open errors and short
// files report false: the caller treats unknown as legacy.
func HasDX10Header(path string) bool {
	buf, ok := readPrefix(path, offFourCC+4)
	if !ok {
		return false
	}
	return binary.LittleEndian.Uint32(buf[offFourCC:]) == fourCCDX10
}

// SourceDXGIFormat returns the DXGI code from the DX10 extended header,
// or ok=false when the header is absent or the file is unreadable.
func SourceDXGIFormat(path string) (uint32, bool) {
	buf, ok := readPrefix(path, offDXGIFormat+4)
	if !ok {
		return 0, false
	}
	if binary.LittleEndian.Uint32(buf[offFourCC:]) != fourCCDX10 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(buf[offDXGIFormat:]), true
}

// ResolveSRGB decides whether the image at path holds sRGB-encoded data.
//
// DX10 sources declare their color space in the DXGI format code, which
// is authoritative; the hint is ignored. Legacy sources carry no
// color-space metadata at all, so the decision falls back entirely to
// the hint, and only an explicit HintSRGB selects sRGB. HintAuto behaves
// like HintLinear in the legacy branch.
//
// Callers must resolve before creating or truncating the output file:
// when input and output paths alias, a later read would see the
// already-mutated bytes.
func ResolveSRGB(path string, hint SRGBHint) bool {
	if HasDX10Header(path) {
		code, _ := SourceDXGIFormat(path)
		return IsSRGBCode(code)
	}
	return hint == HintSRGB
}

// readPrefix reads exactly n leading bytes of the file. Any failure,
// including a file shorter than n, reports ok=false with no error; the
// inspectors are deliberately permissive.
func readPrefix(path string, n int) ([]byte, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	buf := make([]byte, n)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, false
	}
	return buf, true
}
