// Package analysis provides measurement tools for checking filter output.
//
// Level Metering:
//   - Block peak and RMS levels
//   - Per-channel level meter with dB readout
//
// Frequency Response:
//   - Magnitude response of a block processor via impulse and FFT
//   - Bin to frequency mapping
package analysis
