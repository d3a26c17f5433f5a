// Package waveform turns an audio file into a normalized peak sequence.
//
// The audio is first decoded by sox into a raw stream of signed
// little-endian 32-bit words at a fixed sample rate. The stream is split
// into one segment per output pixel; the minimum and maximum word of each
// segment give its peak height, and heights are scaled by the tallest one.
// The result is the candidate document wavecmp verifies against a
// reference sequence.
package waveform
