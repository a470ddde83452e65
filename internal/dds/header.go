// Package dds handles the fixed-layout DDS container header: parsing,
// color-space inspection, mip-chain arithmetic, and post-compression
// header repair.
package dds

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Byte offsets within a DDS file, counted from the start of the file
// (magic included). These are contractual: existing consumers of the
// format depend on them exactly.
const (
	offFlags      = 8   // DDS_HEADER.dwFlags
	offHeight     = 12  // DDS_HEADER.dwHeight
	offWidth      = 16  // DDS_HEADER.dwWidth
	offLinearSize = 20  // DDS_HEADER.dwPitchOrLinearSize
	offDepth      = 24  // DDS_HEADER.dwDepth
	offMipCount   = 28  // DDS_HEADER.dwMipMapCount
	offReserved1  = 32  // DDS_HEADER.dwReserved1[11]
	offPFFlags    = 80  // DDS_PIXELFORMAT.dwFlags
	offFourCC     = 84  // DDS_PIXELFORMAT.dwFourCC
	offDXGIFormat = 128 // DDS_HEADER_DXT10.dxgiFormat
	offMiscFlags2 = 144 // DDS_HEADER_DXT10.miscFlags2

	reserved1Words = 11

	ddsMagic         = 0x20534444 // "DDS "
	ddsdLinearSize   = 0x80000
	ddpfFourCC       = 0x4
	legacyHeaderSize = 128 // magic + 124-byte header
	dx10HeaderSize   = 20
)

// FourCC codes seen in legacy pixel formats.
const (
	fourCCDXT1 = 0x31545844 // "DXT1"
	fourCCDXT2 = 0x32545844
	fourCCDXT3 = 0x33545844
	fourCCDXT4 = 0x34545844
	fourCCDXT5 = 0x35545844
	fourCCDX10 = 0x30315844 // "DX10"
	fourCCBC4U = 0x55344342
	fourCCBC4S = 0x53344342
	fourCCBC5U = 0x55354342
	fourCCBC5S = 0x53354342
	fourCCATI1 = 0x31495441
	fourCCATI2 = 0x32495441
)

// Header is the parsed view of a DDS file's leading bytes. Only the
// fields this pipeline acts on are surfaced.
type Header struct {
	Width      uint32
	Height     uint32
	MipCount   uint32
	FormatName string
	HasDX10    bool
	DXGIFormat uint32 // valid only when HasDX10
}

// ParseHeader reads at most the first 148 bytes of the stream (legacy
// header plus optional DX10 extension) and never touches texture data.
func ParseHeader(rs io.ReadSeeker) (Header, error) {
	var hdr Header

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return hdr, err
	}

	buf := make([]byte, legacyHeaderSize+dx10HeaderSize)
	n, err := io.ReadFull(rs, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return hdr, err
	}
	if n < legacyHeaderSize {
		return hdr, fmt.Errorf("file too small for DDS header: %d bytes", n)
	}
	buf = buf[:n]

	if magic := binary.LittleEndian.Uint32(buf[0:]); magic != ddsMagic {
		return hdr, fmt.Errorf("bad DDS magic: 0x%08X", magic)
	}

	hdr.Height = binary.LittleEndian.Uint32(buf[offHeight:])
	hdr.Width = binary.LittleEndian.Uint32(buf[offWidth:])
	hdr.MipCount = binary.LittleEndian.Uint32(buf[offMipCount:])

	pfFlags := binary.LittleEndian.Uint32(buf[offPFFlags:])
	fourCC := binary.LittleEndian.Uint32(buf[offFourCC:])

	if pfFlags&ddpfFourCC == 0 {
		hdr.FormatName = "UNCOMPRESSED"
		return hdr, nil
	}

	switch fourCC {
	case fourCCDXT1:
		hdr.FormatName = "BC1"
	case fourCCDXT2, fourCCDXT3:
		hdr.FormatName = "BC2"
	case fourCCDXT4, fourCCDXT5:
		hdr.FormatName = "BC3"
	case fourCCBC4U, fourCCBC4S, fourCCATI1:
		hdr.FormatName = "BC4"
	case fourCCBC5U, fourCCBC5S, fourCCATI2:
		hdr.FormatName = "BC5"
	case fourCCDX10:
		hdr.HasDX10 = true
		if len(buf) >= offDXGIFormat+4 {
			hdr.DXGIFormat = binary.LittleEndian.Uint32(buf[offDXGIFormat:])
			hdr.FormatName = dxgiName(hdr.DXGIFormat)
		} else {
			hdr.FormatName = "UNKNOWN"
		}
	default:
		hdr.FormatName = fmt.Sprintf("FourCC_%s", fourCCString(fourCC))
	}

	return hdr, nil
}

func dxgiName(code uint32) string {
	switch code {
	case 71, 72:
		return "BC1"
	case 74, 75:
		return "BC2"
	case 77, 78:
		return "BC3"
	case 80, 81:
		return "BC4"
	case 83, 84:
		return "BC5"
	case 95, 96:
		return "BC6H"
	case 98, 99:
		return "BC7"
	default:
		return fmt.Sprintf("DXGI_%d", code)
	}
}

func fourCCString(fourCC uint32) string {
	b := []byte{
		byte(fourCC),
		byte(fourCC >> 8),
		byte(fourCC >> 16),
		byte(fourCC >> 24),
	}
	return string(b)
}
