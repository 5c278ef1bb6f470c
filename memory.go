package balloon

import (
	"github.com/opd-ai/go-balloon/internal"
)

// allocateBuffer returns zeroed backing memory for blocks*width bytes.
// A single allocation keeps the blocks contiguous.
func allocateBuffer(blocks uint64, width int) []byte {
	return make([]byte, blocks*uint64(width))
}

// releaseBuffer clears a buffer once its computation is done.
// In Go, we rely on GC, but the password-derived blocks are wiped first.
func releaseBuffer(buf []byte) {
	zeroBytes(buf)
}

// getFieldHasher retrieves a hash state for the hasher's primitive.
func (h *Hasher) getFieldHasher() *internal.FieldHasher {
	return h.states.Get().(*internal.FieldHasher)
}

// putFieldHasher returns a hash state to the pool for reuse.
func (h *Hasher) putFieldHasher(fh *internal.FieldHasher) {
	if fh != nil {
		h.states.Put(fh)
	}
}

// zeroBytes clears a byte slice securely.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
