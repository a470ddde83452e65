package dds

import "strings"

// Format identifies a block-compressed target format.
type Format int

const (
	FormatBC7 Format = iota
	FormatBC1
	FormatBC3
	FormatBC4
	FormatBC5
	FormatBC6
)

// formatInfo is the single source of truth for per-format arithmetic.
// Both the header patcher and the backend driver derive from it so the
// two can never disagree about block sizes or DXGI codes.
type formatInfo struct {
	name      string
	blockSize int    // bytes per 4x4 block
	dxgi      uint32 // DXGI_FORMAT code (UNORM / UF16 variant)
	dxgiSRGB  uint32 // sRGB variant, 0 when the format has none
}

var formatTable = map[Format]formatInfo{
	FormatBC1: {name: "BC1", blockSize: 8, dxgi: 71, dxgiSRGB: 72},
	FormatBC3: {name: "BC3", blockSize: 16, dxgi: 77, dxgiSRGB: 78},
	FormatBC4: {name: "BC4", blockSize: 8, dxgi: 80},
	FormatBC5: {name: "BC5", blockSize: 16, dxgi: 83},
	FormatBC6: {name: "BC6", blockSize: 16, dxgi: 95},
	FormatBC7: {name: "BC7", blockSize: 16, dxgi: 98, dxgiSRGB: 99},
}

// ParseFormat maps a manifest format name to a Format. Empty and unknown
// names fall back to BC7, matching the compression tool's own parse.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bc1":
		return FormatBC1
	case "bc3":
		return FormatBC3
	case "bc4":
		return FormatBC4
	case "bc5":
		return FormatBC5
	case "bc6":
		return FormatBC6
	default:
		return FormatBC7
	}
}

func (f Format) String() string {
	if info, ok := formatTable[f]; ok {
		return info.name
	}
	return "Unknown"
}

// BlockSize returns the byte size of one 4x4 compressed block: 8 for the
// 4-bit-per-texel formats (BC1, BC4), 16 for everything else.
func (f Format) BlockSize() int {
	if info, ok := formatTable[f]; ok {
		return info.blockSize
	}
	return 16
}

// DXGIFormat returns the DXGI code for the format, preferring the sRGB
// variant when srgb is set and the format has one.
func (f Format) DXGIFormat(srgb bool) uint32 {
	info, ok := formatTable[f]
	if !ok {
		return 0
	}
	if srgb && info.dxgiSRGB != 0 {
		return info.dxgiSRGB
	}
	return info.dxgi
}
