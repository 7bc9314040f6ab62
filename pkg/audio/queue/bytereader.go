package queue

import (
	"encoding/binary"
	"io"
	"math"
)

// ByteReader exposes a queue as an io.Reader of float32le bytes, the
// representation the oto and pulse playback loops pull from. While the
// queue is open but empty it yields silence so the device loop never
// starves; once the queue ended and drained it returns io.EOF.
type ByteReader struct {
	Queue *Queue
}

var _ io.Reader = (*ByteReader)(nil)

func (r *ByteReader) Read(p []byte) (int, error) {
	numSamples := len(p) / 4
	if numSamples == 0 {
		return 0, nil
	}
	samples := make([]float32, numSamples)
	n := r.Queue.TryRead(samples)
	if n == 0 {
		if r.Queue.Ended() {
			return 0, io.EOF
		}
		// silence
		for i := range p[:numSamples*4] {
			p[i] = 0
		}
		return numSamples * 4, nil
	}
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(samples[i]))
	}
	return n * 4, nil
}

// PushBytes decodes float32le bytes into the queue; the capture
// counterpart of ByteReader for backends that deliver raw byte blocks.
func PushBytes(q *Queue, p []byte) {
	numSamples := len(p) / 4
	if numSamples == 0 {
		return
	}
	samples := make([]float32, numSamples)
	for i := 0; i < numSamples; i++ {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(p[i*4:]))
	}
	q.Push(samples)
}
