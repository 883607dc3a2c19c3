package audio

import "sync"

// streamQueue feeds a long-lived player. Reads never block and never end:
// when the queue runs dry the player gets silence.
type streamQueue struct {
	mu       sync.Mutex
	buf      []byte
	maxBytes int
}

func newStreamQueue(maxBytes int) *streamQueue {
	return &streamQueue{maxBytes: maxBytes}
}

// Push appends PCM. When the reader falls behind, the oldest audio is
// dropped so music stays in time with the game.
func (q *streamQueue) Push(pcm []byte) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.buf = append(q.buf, pcm...)
	if over := len(q.buf) - q.maxBytes; over > 0 {
		over += (frameBytes - over%frameBytes) % frameBytes
		q.buf = append(q.buf[:0], q.buf[over:]...)
	}
}

func (q *streamQueue) Read(p []byte) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := min(len(p), len(q.buf))
	n -= n % frameBytes
	copy(p, q.buf[:n])
	q.buf = append(q.buf[:0], q.buf[n:]...)
	clear(p[n:])
	return len(p), nil
}

// Len is the number of queued bytes.
func (q *streamQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}

// Clear drops everything queued.
func (q *streamQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.buf = q.buf[:0]
}
