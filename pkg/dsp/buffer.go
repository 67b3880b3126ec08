package dsp

// ClearChannels zeroes every channel of a channel-major block
func ClearChannels(block [][]float32) {
	for _, ch := range block {
		clear(ch)
	}
}

// FlushDenormal returns 0 for magnitudes below SmallFloat32
func FlushDenormal(x float32) float32 {
	if x < SmallFloat32 && x > -SmallFloat32 {
		return 0
	}
	return x
}
