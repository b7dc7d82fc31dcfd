// Package hash provides pooled blake3 hashing.
package hash

// Size of a digest in bytes.
const Size = 32

// Sum returns the blake3 digest of the concatenated chunks.
func Sum(chunks ...[]byte) (digest [Size]byte) {
	hasher := acquire()
	defer release(hasher)
	for _, chunk := range chunks {
		hasher.Write(chunk) // never returns an error
	}
	hasher.Sum(digest[:0])
	return digest
}
