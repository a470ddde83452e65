package dds

import (
	"encoding/binary"
	"os"
)

// Patch rewrites the header fields the compression backend emits
// incorrectly, so the output matches texconv reference output:
//
//  1. ORs DDSD_LINEARSIZE into dwFlags, preserving the other bits.
//  2. Writes dwPitchOrLinearSize as the byte size of the top-level
//     compressed surface only, never the sum across mips.
//  3. Writes dwDepth = 1; every container in this pipeline is 2D.
//  4. Zeroes the 11-word dwReserved1 region, removing the backend's
//     identifying watermark. Full overwrite, not a merge.
//  5. Zeroes miscFlags2 in the DX10 extension (alpha mode unknown),
//     guarded by a length check for truncated files.
//
// Patch runs strictly after the backend has finished writing header and
// all mip levels. It is idempotent.
func Patch(path string, width, height int, format Format) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	word := make([]byte, 4)

	// 1. dwFlags |= DDSD_LINEARSIZE
	if _, err := f.ReadAt(word, offFlags); err != nil {
		return err
	}
	flags := binary.LittleEndian.Uint32(word) | ddsdLinearSize
	binary.LittleEndian.PutUint32(word, flags)
	if _, err := f.WriteAt(word, offFlags); err != nil {
		return err
	}

	// 2. dwPitchOrLinearSize = top-level surface byte size
	binary.LittleEndian.PutUint32(word, LinearSize(width, height, format))
	if _, err := f.WriteAt(word, offLinearSize); err != nil {
		return err
	}

	// 3. dwDepth = 1
	binary.LittleEndian.PutUint32(word, 1)
	if _, err := f.WriteAt(word, offDepth); err != nil {
		return err
	}

	// 4. dwReserved1[11] = 0
	if _, err := f.WriteAt(make([]byte, reserved1Words*4), offReserved1); err != nil {
		return err
	}

	// 5. miscFlags2 = 0 (DDS_ALPHA_MODE_UNKNOWN), only when the file
	// actually extends through the DX10 header.
	fi, err := f.Stat()
	if err != nil {
		return err
	}
	if fi.Size() >= offMiscFlags2+4 {
		binary.LittleEndian.PutUint32(word, 0)
		if _, err := f.WriteAt(word, offMiscFlags2); err != nil {
			return err
		}
	}

	return nil
}

// LinearSize is the byte size of the top-level compressed surface:
// blocks-across x blocks-down x block size, each block count a ceiling
// division by 4 clamped to one block minimum.
func LinearSize(width, height int, format Format) uint32 {
	wBlocks := (width + 3) / 4
	if wBlocks < 1 {
		wBlocks = 1
	}
	hBlocks := (height + 3) / 4
	if hBlocks < 1 {
		hBlocks = 1
	}
	return uint32(wBlocks * hBlocks * format.BlockSize())
}
