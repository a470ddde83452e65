package dds

// Extent is one mip level's dimensions.
type Extent struct {
	Width  int
	Height int
}

// MipChain returns the full mip chain for a base resolution: level 0 is
// the base, each following level floor-halves both dimensions with a
// floor of 1, and the terminal 1x1 level is included.
//
// The stepping must match the backend's own mip generation exactly, or
// the mip count written into the header disagrees with the number of
// levels actually submitted.
func MipChain(width, height int) []Extent {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	chain := []Extent{{Width: width, Height: height}}
	w, h := width, height
	for w > 1 || h > 1 {
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
		chain = append(chain, Extent{Width: w, Height: h})
	}
	return chain
}

// MipCount returns the number of levels MipChain produces.
func MipCount(width, height int) int {
	return len(MipChain(width, height))
}

// FitExtent scales (width, height) down so the larger dimension equals
// maxExtent, preserving aspect ratio with round-to-nearest and a floor
// of 1. Images already within the bound are returned unchanged.
//
// The orchestrator passes these exact dimensions to the backend, so the
// patched header and the compressed surfaces cannot drift apart.
func FitExtent(width, height, maxExtent int) (int, int) {
	if maxExtent < 1 || (width <= maxExtent && height <= maxExtent) {
		return width, height
	}

	if width >= height {
		return maxExtent, scaleDim(height, maxExtent, width)
	}
	return scaleDim(width, maxExtent, height), maxExtent
}

func scaleDim(dim, maxExtent, major int) int {
	scaled := (dim*maxExtent + major/2) / major
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}
