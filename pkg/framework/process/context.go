// Package process provides the audio processing context handed to processors.
package process

// Context carries one block of channel-major audio. It holds no buffers of
// its own; the host points Input and Output at its channel slices.
type Context struct {
	Input      [][]float32
	Output     [][]float32
	SampleRate float64
}

// NewContext creates a context for the given sample rate
func NewContext(sampleRate float64) *Context {
	return &Context{SampleRate: sampleRate}
}

// NumSamples returns the number of samples to process
func (c *Context) NumSamples() int {
	if len(c.Input) > 0 && len(c.Input[0]) > 0 {
		return len(c.Input[0])
	}
	if len(c.Output) > 0 && len(c.Output[0]) > 0 {
		return len(c.Output[0])
	}
	return 0
}

// NumInputChannels returns the number of input channels
func (c *Context) NumInputChannels() int {
	return len(c.Input)
}

// NumOutputChannels returns the number of output channels
func (c *Context) NumOutputChannels() int {
	return len(c.Output)
}

// NumChannels returns the number of channels present on both sides
func (c *Context) NumChannels() int {
	return min(c.NumInputChannels(), c.NumOutputChannels())
}

// PassThrough copies input to output (for bypass)
func (c *Context) PassThrough() {
	for ch := 0; ch < c.NumChannels(); ch++ {
		copy(c.Output[ch], c.Input[ch])
	}
}

// Clear zeros the output buffers
func (c *Context) Clear() {
	for ch := range c.Output {
		clear(c.Output[ch])
	}
}

// ClearUnmatchedOutputs zeros output channels that have no matching input,
// so hosts never hear whatever garbage they held.
func (c *Context) ClearUnmatchedOutputs() {
	for ch := c.NumInputChannels(); ch < c.NumOutputChannels(); ch++ {
		clear(c.Output[ch])
	}
}
