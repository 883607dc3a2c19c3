package audio

import (
	"io"
	"math"

	"github.com/gopxl/beep"
)

// Bytes per stereo float32 frame.
const frameBytes = 8

// Upper bound on how much drain will pull from one streamer.
const maxRenderSeconds = 4

// drain streams s to exhaustion.
func drain(s beep.Streamer, rate beep.SampleRate) [][2]float64 {
	limit := int(rate) * maxRenderSeconds
	var out [][2]float64
	var buf [512][2]float64
	for len(out) < limit {
		n, ok := s.Stream(buf[:])
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// encode converts samples to interleaved float32 little-endian, soft
// saturating anything outside [-1,1].
func encode(samples [][2]float64) []byte {
	buf := make([]byte, len(samples)*frameBytes)
	for i, s := range samples {
		putStereoF32LR(buf, i, softSat(s[0]), softSat(s[1]))
	}
	return buf
}

// putStereoF32LR writes independent left/right samples at frame i.
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	o := i * frameBytes
	buf[o] = byte(lv)
	buf[o+1] = byte(lv >> 8)
	buf[o+2] = byte(lv >> 16)
	buf[o+3] = byte(lv >> 24)
	buf[o+4] = byte(rv)
	buf[o+5] = byte(rv >> 8)
	buf[o+6] = byte(rv >> 16)
	buf[o+7] = byte(rv >> 24)
}

// softSat is a cubic soft clipper that flattens out at +-1.
func softSat(x float64) float64 {
	switch {
	case x >= 1:
		return 1
	case x <= -1:
		return -1
	}
	return x * (1.5 - 0.5*x*x)
}

// lcg advances seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// soundReader plays a rendered buffer once.
type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
