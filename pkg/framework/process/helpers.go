package process

// ProcessChannels processes all channels present on both sides
func (c *Context) ProcessChannels(fn func(ch int, input, output []float32)) {
	for ch := 0; ch < c.NumChannels(); ch++ {
		fn(ch, c.Input[ch], c.Output[ch])
	}
}

// Deinterleave splits frames of interleaved samples into channel-major dst.
// Each dst channel must hold at least len(src)/len(dst) samples.
func Deinterleave(dst [][]float32, src []float32) {
	channels := len(dst)
	if channels == 0 {
		return
	}
	frames := len(src) / channels
	for ch := 0; ch < channels; ch++ {
		out := dst[ch][:frames]
		for i := range out {
			out[i] = src[i*channels+ch]
		}
	}
}

// Interleave writes channel-major src into interleaved dst
func Interleave(dst []float32, src [][]float32) {
	channels := len(src)
	if channels == 0 {
		return
	}
	frames := len(dst) / channels
	for ch := 0; ch < channels; ch++ {
		in := src[ch][:frames]
		for i, v := range in {
			dst[i*channels+ch] = v
		}
	}
}
