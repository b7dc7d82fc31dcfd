package hash

import (
	"sync"

	"github.com/zeebo/blake3"
)

var hashers = sync.Pool{
	New: func() any { return blake3.New() },
}

func acquire() *blake3.Hasher {
	return hashers.Get().(*blake3.Hasher)
}

// release resets h before returning it to the pool.
func release(h *blake3.Hasher) {
	h.Reset()
	hashers.Put(h)
}
